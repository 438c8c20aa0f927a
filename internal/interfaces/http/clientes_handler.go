package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/autocomplete"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/listing"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/ports"
)

// ClientesHandler maneja /panel/clientes.
type ClientesHandler struct {
	api ports.ClientesAPI
	log zerolog.Logger
}

// NewClientesHandler construye el handler.
func NewClientesHandler(api ports.ClientesAPI, log zerolog.Logger) *ClientesHandler {
	return &ClientesHandler{api: api, log: log}
}

// Cada request arma su propia página: los controladores no se comparten entre goroutines.
func (h *ClientesHandler) pagina() *listing.ClientesPage {
	return listing.NewClientesPage(h.api, ports.SiempreConfirmar, h.log)
}

func (h *ClientesHandler) responder(c *fiber.Ctx, p *listing.ClientesPage, q string) error {
	return c.JSON(paginaDe(p, p.Filtrar(q), p.Resumen()))
}

// List godoc
// @Summary      Listado de clientes
// @Description  Trae los clientes, filtra por nombre, documento o email y calcula el resumen.
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Texto de búsqueda"
// @Success      200  {object}  dto.Pagina[entity.Cliente,dto.ResumenClientes]
// @Router       /panel/clientes [get]
func (h *ClientesHandler) List(c *fiber.Ctx) error {
	p := h.pagina()
	_ = p.Cargar(c.Context())
	return h.responder(c, p, c.Query("q"))
}

// Create godoc
// @Summary  Alta de cliente
// @Tags     clientes
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body  body  forms.ClienteDraft  true  "Borrador"
// @Success  201  {object}  entity.Cliente
// @Failure  422  {object}  dto.ValidationErrorResponse
// @Router   /panel/clientes [post]
func (h *ClientesHandler) Create(c *fiber.Ctx) error {
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
// @Summary  Edición de cliente
// @Tags     clientes
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id    path  int                 true  "ID"
// @Param    body  body  forms.ClienteDraft  true  "Borrador"
// @Success  200  {object}  entity.Cliente
// @Failure  404  {object}  dto.ErrorResponse
// @Failure  422  {object}  dto.ValidationErrorResponse
// @Router   /panel/clientes/{id} [put]
func (h *ClientesHandler) Update(c *fiber.Ctx) error {
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
// @Summary  Baja de cliente
// @Tags     clientes
// @Security Bearer
// @Produce  json
// @Param    id  path  int  true  "ID"
// @Success  200  {object}  dto.Pagina[entity.Cliente,dto.ResumenClientes]
// @Router   /panel/clientes/{id} [delete]
func (h *ClientesHandler) Delete(c *fiber.Ctx) error {
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

// Sugerencias godoc
// @Summary      Autocompletado de clientes
// @Description  Hasta 8 clientes: primero los que empiezan con el texto.
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  true  "Texto escrito"
// @Success      200  {array}  entity.Cliente
// @Router       /panel/clientes/sugerencias [get]
func (h *ClientesHandler) Sugerencias(c *fiber.Ctx) error {
	clientes, err := h.api.Listar(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(autocomplete.Sugerir(clientes, c.Query("q"), autocomplete.MaxSugerencias))
}
