package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/home"
)

// InicioHandler maneja la página de inicio del panel.
type InicioHandler struct {
	uc *home.DigestUseCase
}

// NewInicioHandler construye el handler.
func NewInicioHandler(uc *home.DigestUseCase) *InicioHandler {
	return &InicioHandler{uc: uc}
}

// Get devuelve los avisos de vencimiento y los accesos a cada módulo.
// GET /panel/home
//
// Respuesta: InicioDTO (productosPorVencer[0-10 días], chequesPorVencer[0-15 días],
// modulos, mostrarAlertas, periodo). Si el backend no responde los avisos
// vienen vacíos y los accesos igual se devuelven.
//
// @Summary  Inicio
// @Tags     inicio
// @Security Bearer
// @Produce  json
// @Success  200  {object}  dto.InicioDTO
// @Router   /panel/home [get]
func (h *InicioHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.Obtener(c.Context()))
}
