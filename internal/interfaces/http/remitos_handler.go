package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/forms"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/listing"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/ports"
)

// remitoRequest cabecera del remito más sus líneas.
type remitoRequest struct {
	forms.RemitoDraft
	Items []forms.RemitoItemDraft `json:"items"`
}

// RemitosHandler maneja /panel/remitos.
type RemitosHandler struct {
	api       ports.RemitosAPI
	catalogos listing.Catalogos
	local     ports.RemitoPDFGenerator
	log       zerolog.Logger
}

// NewRemitosHandler local puede ser nil: el PDF se pide siempre al backend.
func NewRemitosHandler(api ports.RemitosAPI, catalogos listing.Catalogos, local ports.RemitoPDFGenerator, log zerolog.Logger) *RemitosHandler {
	return &RemitosHandler{api: api, catalogos: catalogos, local: local, log: log}
}

func (h *RemitosHandler) pagina() *listing.RemitosPage {
	return listing.NewRemitosPage(h.api, h.catalogos, h.local, ports.SiempreConfirmar, h.log)
}

// cargarRemito vuelca el cuerpo sobre el borrador. Un cliente recién vinculado
// completa nombre y dirección si vinieron en blanco.
func cargarRemito(c *fiber.Ctx, f *forms.RemitoForm) (bool, error) {
	previo := f.Draft.ClienteID
	req := remitoRequest{RemitoDraft: f.Draft}
	if err := c.BodyParser(&req); err != nil {
		return false, nil
	}
	f.Draft = req.RemitoDraft
	if req.ClienteID != previo {
		f.SeleccionarCliente(req.ClienteID)
	}
	if req.Items != nil {
		if err := f.CargarItems(req.Items); err != nil {
			return true, err
		}
	}
	return true, nil
}

// List godoc
// @Summary  Listado de remitos
// @Tags     remitos
// @Security Bearer
// @Produce  json
// @Param    q  query  string  false  "Número o destinatario"
// @Success  200  {object}  dto.Pagina[dto.RemitoFila,dto.ResumenRemitos]
// @Router   /panel/remitos [get]
func (h *RemitosHandler) List(c *fiber.Ctx) error {
	p := h.pagina()
	_ = p.Cargar(c.Context())
	return c.JSON(paginaDe(p, p.Filas(c.Query("q")), p.Resumen()))
}

// Create godoc
// @Summary  Alta de remito
// @Tags     remitos
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body  body  remitoRequest  true  "Cabecera e items"
// @Success  201  {object}  entity.Remito
// @Failure  422  {object}  dto.ValidationErrorResponse
// @Router   /panel/remitos [post]
func (h *RemitosHandler) Create(c *fiber.Ctx) error {
	p := h.pagina()
	f := p.AbrirNuevo(c.Context())
	ok, err := cargarRemito(c, f)
	if !ok {
		return badRequest(c, "cuerpo inválido")
	}
	if err != nil {
		return responderError(c, err)
	}
	out, err := p.Guardar(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary  Edición de remito
// @Tags     remitos
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id    path  int            true  "ID"
// @Param    body  body  remitoRequest  true  "Cabecera e items"
// @Success  200  {object}  entity.Remito
// @Failure  404  {object}  dto.ErrorResponse
// @Failure  422  {object}  dto.ValidationErrorResponse
// @Router   /panel/remitos/{id} [put]
func (h *RemitosHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "id inválido")
	}
	p := h.pagina()
	if err := p.Cargar(c.Context()); err != nil {
		return responderError(c, err)
	}
	f, err := p.AbrirEdicion(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	ok, err = cargarRemito(c, f)
	if !ok {
		return badRequest(c, "cuerpo inválido")
	}
	if err != nil {
		return responderError(c, err)
	}
	out, err := p.Guardar(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      PDF del remito
// @Description  Lo genera el backend; con local=1 se arma en este servidor.
// @Tags         remitos
// @Security     Bearer
// @Produce      application/pdf
// @Param        id     path   int     true   "ID"
// @Param        local  query  string  false  "1 para generar localmente"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /panel/remitos/{id}/pdf [get]
func (h *RemitosHandler) PDF(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "id inválido")
	}
	p := h.pagina()
	if err := p.Cargar(c.Context()); err != nil {
		return responderError(c, err)
	}
	generar := p.DescargarPDF
	if c.QueryBool("local") {
		generar = p.GenerarPDFLocal
	}
	nombre, b, err := generar(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", nombre))
	return c.Send(b)
}
