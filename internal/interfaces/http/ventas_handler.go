package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/forms"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/listing"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/ports"
)

// ventaRequest cabecera de la venta más sus líneas.
type ventaRequest struct {
	forms.VentaDraft
	Items []forms.VentaItemDraft `json:"items"`
}

// VentasHandler maneja /panel/ventas.
type VentasHandler struct {
	api       ports.VentasAPI
	catalogos listing.Catalogos
	log       zerolog.Logger
}

// NewVentasHandler construye el handler; los catálogos alimentan los selectores del formulario.
func NewVentasHandler(api ports.VentasAPI, catalogos listing.Catalogos, log zerolog.Logger) *VentasHandler {
	return &VentasHandler{api: api, catalogos: catalogos, log: log}
}

func (h *VentasHandler) pagina() *listing.VentasPage {
	return listing.NewVentasPage(h.api, h.catalogos, ports.SiempreConfirmar, h.log)
}

func (h *VentasHandler) responder(c *fiber.Ctx, p *listing.VentasPage, f listing.FiltroVentas) error {
	return c.JSON(paginaDe(p, p.Filas(f), p.Resumen()))
}

// cargarVenta vuelca el cuerpo sobre el borrador ya precargado. Sin "items"
// se conservan las líneas del formulario.
func cargarVenta(c *fiber.Ctx, f *forms.VentaForm) (bool, error) {
	req := ventaRequest{VentaDraft: f.Draft}
	if err := c.BodyParser(&req); err != nil {
		return false, nil
	}
	f.Draft = req.VentaDraft
	if req.Items != nil {
		if err := f.CargarItems(req.Items); err != nil {
			return true, err
		}
	}
	return true, nil
}

// List godoc
// @Summary      Listado de ventas
// @Description  Filtra por número interno o cliente, estado (COMPLETA, PENDIENTE, ANULADA) y medio de pago.
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Número o cliente"
// @Param        estado  query  string  false  "Estado"
// @Param        medio   query  string  false  "Medio de pago"
// @Success      200  {object}  dto.Pagina[dto.VentaFila,dto.ResumenVentas]
// @Router       /panel/ventas [get]
func (h *VentasHandler) List(c *fiber.Ctx) error {
	p := h.pagina()
	_ = p.Cargar(c.Context())
	return h.responder(c, p, listing.FiltroVentas{Texto: c.Query("q"), Estado: c.Query("estado"), Medio: medioQuery(c)})
}

// Create godoc
// @Summary  Alta de venta
// @Tags     ventas
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body  body  ventaRequest  true  "Cabecera e items"
// @Success  201  {object}  entity.Venta
// @Failure  422  {object}  dto.ValidationErrorResponse
// @Router   /panel/ventas [post]
func (h *VentasHandler) Create(c *fiber.Ctx) error {
	p := h.pagina()
	f := p.AbrirNuevo(c.Context())
	ok, err := cargarVenta(c, f)
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
// @Summary  Edición de venta
// @Tags     ventas
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id    path  int           true  "ID"
// @Param    body  body  ventaRequest  true  "Cabecera e items"
// @Success  200  {object}  entity.Venta
// @Failure  409  {object}  dto.ErrorResponse
// @Failure  422  {object}  dto.ValidationErrorResponse
// @Router   /panel/ventas/{id} [put]
func (h *VentasHandler) Update(c *fiber.Ctx) error {
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
	ok, err = cargarVenta(c, f)
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

// Anular godoc
// @Summary  Anular venta
// @Tags     ventas
// @Security Bearer
// @Produce  json
// @Param    id  path  int  true  "ID"
// @Success  200  {object}  dto.Pagina[dto.VentaFila,dto.ResumenVentas]
// @Failure  409  {object}  dto.ErrorResponse
// @Router   /panel/ventas/{id}/anular [put]
func (h *VentasHandler) Anular(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "id inválido")
	}
	p := h.pagina()
	if err := p.Cargar(c.Context()); err != nil {
		return responderError(c, err)
	}
	if _, err := p.Anular(c.Context(), id); err != nil {
		return responderError(c, err)
	}
	return h.responder(c, p, listing.FiltroVentas{})
}
