package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/dto"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/listing"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/ports"
)

// ProductosHandler maneja /panel/productos.
type ProductosHandler struct {
	api ports.ProductosAPI
	log zerolog.Logger
}

// NewProductosHandler construye el handler.
func NewProductosHandler(api ports.ProductosAPI, log zerolog.Logger) *ProductosHandler {
	return &ProductosHandler{api: api, log: log}
}

// Cada request arma su propia página: los controladores no se comparten entre goroutines.
func (h *ProductosHandler) pagina() *listing.ProductosPage {
	return listing.NewProductosPage(h.api, ports.SiempreConfirmar, h.log)
}

func (h *ProductosHandler) responder(c *fiber.Ctx, p *listing.ProductosPage, f listing.FiltroProductos) error {
	return c.JSON(paginaDe(p, p.Filas(f), p.Resumen()))
}

// List godoc
// @Summary      Listado de productos
// @Description  Trae la mercadería, filtra por nombre o SKU y estado, y calcula el resumen.
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Nombre o SKU"
// @Param        estado  query  string  false  "todos, activos o inactivos"
// @Success      200  {object}  dto.Pagina[dto.ProductoFila,dto.ResumenProductos]
// @Router       /panel/productos [get]
func (h *ProductosHandler) List(c *fiber.Ctx) error {
	p := h.pagina()
	_ = p.Cargar(c.Context())
	return h.responder(c, p, listing.FiltroProductos{Texto: c.Query("q"), Estado: c.Query("estado")})
}

// Create godoc
// @Summary  Alta de producto
// @Tags     productos
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body  body  forms.ProductoDraft  true  "Borrador"
// @Success  201  {object}  entity.Producto
// @Failure  422  {object}  dto.ValidationErrorResponse
// @Router   /panel/productos [post]
func (h *ProductosHandler) Create(c *fiber.Ctx) error {
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
// @Summary  Edición de producto
// @Tags     productos
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id    path  int                 true  "ID"
// @Param    body  body  forms.ProductoDraft  true  "Borrador"
// @Success  200  {object}  entity.Producto
// @Failure  404  {object}  dto.ErrorResponse
// @Failure  422  {object}  dto.ValidationErrorResponse
// @Router   /panel/productos/{id} [put]
func (h *ProductosHandler) Update(c *fiber.Ctx) error {
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
// @Summary  Baja de producto
// @Tags     productos
// @Security Bearer
// @Produce  json
// @Param    id  path  int  true  "ID"
// @Success  200  {object}  dto.Pagina[dto.ProductoFila,dto.ResumenProductos]
// @Router   /panel/productos/{id} [delete]
func (h *ProductosHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "id inválido")
	}
	p := h.pagina()
	if _, err := p.Eliminar(c.Context(), id); err != nil {
		return responderError(c, err)
	}
	return h.responder(c, p, listing.FiltroProductos{})
}

// PorVencer godoc
// @Summary      Productos próximos a vencer
// @Description  Productos que vencen dentro de los próximos 29 días, para el aviso de mercadería.
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AlertaProductoDTO
// @Router       /panel/productos/por-vencer [get]
func (h *ProductosHandler) PorVencer(c *fiber.Ctx) error {
	p := h.pagina()
	if err := p.Cargar(c.Context()); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.AlertasProductos(p.Proximos()))
}
