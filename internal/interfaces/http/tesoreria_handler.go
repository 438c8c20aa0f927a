package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/listing"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/ports"
)

// TesoreriaHandler maneja /panel/tesoreria.
type TesoreriaHandler struct {
	api ports.TesoreriaAPI
	log zerolog.Logger
}

// NewTesoreriaHandler construye el handler.
func NewTesoreriaHandler(api ports.TesoreriaAPI, log zerolog.Logger) *TesoreriaHandler {
	return &TesoreriaHandler{api: api, log: log}
}

func (h *TesoreriaHandler) pagina() *listing.TesoreriaPage {
	return listing.NewTesoreriaPage(h.api, ports.SiempreConfirmar, h.log)
}

func (h *TesoreriaHandler) responder(c *fiber.Ctx, p *listing.TesoreriaPage, f listing.FiltroTesoreria) error {
	return c.JSON(paginaDe(p, p.Filas(f), p.Resumen()))
}

// List godoc
// @Summary      Movimientos de tesorería
// @Description  Filtra por descripción, referencia o número de cheque, tipo y medio de pago.
// @Tags         tesoreria
// @Security     Bearer
// @Produce      json
// @Param        q      query  string  false  "Texto de búsqueda"
// @Param        tipo   query  string  false  "INGRESO o EGRESO"
// @Param        medio  query  string  false  "Medio de pago"
// @Success      200  {object}  dto.Pagina[dto.MovimientoFila,dto.ResumenTesoreria]
// @Router       /panel/tesoreria [get]
func (h *TesoreriaHandler) List(c *fiber.Ctx) error {
	p := h.pagina()
	_ = p.Cargar(c.Context())
	return h.responder(c, p, listing.FiltroTesoreria{Texto: c.Query("q"), Tipo: c.Query("tipo"), Medio: medioQuery(c)})
}

// Create godoc
// @Summary  Alta de movimiento
// @Tags     tesoreria
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body  body  forms.MovimientoDraft  true  "Borrador"
// @Success  201  {object}  entity.MovimientoTesoreria
// @Failure  422  {object}  dto.ValidationErrorResponse
// @Router   /panel/tesoreria [post]
func (h *TesoreriaHandler) Create(c *fiber.Ctx) error {
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
// @Summary  Edición de movimiento
// @Tags     tesoreria
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id    path  int                    true  "ID"
// @Param    body  body  forms.MovimientoDraft  true  "Borrador"
// @Success  200  {object}  entity.MovimientoTesoreria
// @Failure  409  {object}  dto.ErrorResponse
// @Failure  422  {object}  dto.ValidationErrorResponse
// @Router   /panel/tesoreria/{id} [put]
func (h *TesoreriaHandler) Update(c *fiber.Ctx) error {
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

// Cobrar godoc
// @Summary  Marcar como cobrado
// @Tags     tesoreria
// @Security Bearer
// @Produce  json
// @Param    id  path  int  true  "ID"
// @Success  200  {object}  dto.Pagina[dto.MovimientoFila,dto.ResumenTesoreria]
// @Failure  409  {object}  dto.ErrorResponse
// @Router   /panel/tesoreria/{id}/cobrar [put]
func (h *TesoreriaHandler) Cobrar(c *fiber.Ctx) error {
	return h.accion(c, (*listing.TesoreriaPage).Cobrar)
}

// Anular godoc
// @Summary  Anular movimiento
// @Tags     tesoreria
// @Security Bearer
// @Produce  json
// @Param    id  path  int  true  "ID"
// @Success  200  {object}  dto.Pagina[dto.MovimientoFila,dto.ResumenTesoreria]
// @Failure  409  {object}  dto.ErrorResponse
// @Router   /panel/tesoreria/{id}/anular [put]
func (h *TesoreriaHandler) Anular(c *fiber.Ctx) error {
	return h.accion(c, (*listing.TesoreriaPage).Anular)
}

func (h *TesoreriaHandler) accion(c *fiber.Ctx, fn func(*listing.TesoreriaPage, context.Context, int64) (bool, error)) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "id inválido")
	}
	p := h.pagina()
	if err := p.Cargar(c.Context()); err != nil {
		return responderError(c, err)
	}
	if _, err := fn(p, c.Context(), id); err != nil {
		return responderError(c, err)
	}
	return h.responder(c, p, listing.FiltroTesoreria{})
}
