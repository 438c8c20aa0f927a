package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/listing"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/ports"
)

// ProveedoresHandler maneja /panel/proveedores.
type ProveedoresHandler struct {
	api ports.ProveedoresAPI
	log zerolog.Logger
}

// NewProveedoresHandler construye el handler.
func NewProveedoresHandler(api ports.ProveedoresAPI, log zerolog.Logger) *ProveedoresHandler {
	return &ProveedoresHandler{api: api, log: log}
}

// Cada request arma su propia página: los controladores no se comparten entre goroutines.
func (h *ProveedoresHandler) pagina() *listing.ProveedoresPage {
	return listing.NewProveedoresPage(h.api, ports.SiempreConfirmar, h.log)
}

func (h *ProveedoresHandler) responder(c *fiber.Ctx, p *listing.ProveedoresPage, q string) error {
	return c.JSON(paginaDe(p, p.Filtrar(q), p.Resumen()))
}

// List godoc
// @Summary      Listado de proveedores
// @Description  Trae los proveedores, filtra por nombre, CUIT o email y calcula el resumen.
// @Tags         proveedores
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Texto de búsqueda"
// @Success      200  {object}  dto.Pagina[entity.Proveedor,dto.ResumenProveedores]
// @Router       /panel/proveedores [get]
func (h *ProveedoresHandler) List(c *fiber.Ctx) error {
	p := h.pagina()
	_ = p.Cargar(c.Context())
	return h.responder(c, p, c.Query("q"))
}

// Create godoc
// @Summary  Alta de proveedor
// @Tags     proveedores
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body  body  forms.ProveedorDraft  true  "Borrador"
// @Success  201  {object}  entity.Proveedor
// @Failure  422  {object}  dto.ValidationErrorResponse
// @Router   /panel/proveedores [post]
func (h *ProveedoresHandler) Create(c *fiber.Ctx) error {
	p := h.pagina()
	f := p.AbrirNuevo()
	if err := c.BodyParser(&f.Draft); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := p.Guardar(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary  Edición de proveedor
// @Tags     proveedores
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id    path  int                 true  "ID"
// @Param    body  body  forms.ProveedorDraft  true  "Borrador"
// @Success  200  {object}  entity.Proveedor
// @Failure  404  {object}  dto.ErrorResponse
// @Failure  422  {object}  dto.ValidationErrorResponse
// @Router   /panel/proveedores/{id} [put]
func (h *ProveedoresHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "id inválido")
	}
	p := h.pagina()
	if err := p.Cargar(c.Context()); err != nil {
		return responderError(c, err)
	}
	f, err := p.AbrirEdicion(id)
	if err != nil {
		return responderError(c, err)
	}
	if err := c.BodyParser(&f.Draft); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := p.Guardar(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary  Baja de proveedor
// @Tags     proveedores
// @Security Bearer
// @Produce  json
// @Param    id  path  int  true  "ID"
// @Success  200  {object}  dto.Pagina[entity.Proveedor,dto.ResumenProveedores]
// @Router   /panel/proveedores/{id} [delete]
func (h *ProveedoresHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "id inválido")
	}
	p := h.pagina()
	if _, err := p.Eliminar(c.Context(), id); err != nil {
		return responderError(c, err)
	}
	return h.responder(c, p, "")
}
