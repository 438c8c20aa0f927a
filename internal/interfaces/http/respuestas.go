package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/dto"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/forms"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/listing"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// responderError traduce errores de formulario, de dominio y del backend a HTTP.
func responderError(c *fiber.Ctx, err error) error {
	var campos forms.FieldErrors
	if errors.As(err, &campos) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Code: "VALIDATION", Message: "hay campos con errores", Campos: campos,
		})
	}
	var alerta *forms.ValidationError
	if errors.As(err, &alerta) {
		resp := dto.ValidationErrorResponse{Code: "VALIDATION", Message: alerta.Message}
		if alerta.Field != "" {
			resp.Campos = map[string]string{alerta.Field: alerta.Message}
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(resp)
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrAccionNoPermitida), errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrUltimoItem), errors.Is(err, domain.ErrIndiceInvalido):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrBackendUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "BACKEND_UNAVAILABLE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND_ERROR", Message: err.Error()})
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: msg})
}

// parseID lee :id como entero positivo.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// estadoListado lo que expone cualquier controlador de listado.
type estadoListado interface {
	Estado() listing.Estado
	Err() error
}

// paginaDe arma la respuesta de un listado. Un listado que no cargó responde
// igual, con la colección vacía y el estado de error.
func paginaDe[T any, R any](ctrl estadoListado, items []T, resumen R) dto.Pagina[T, R] {
	if items == nil {
		items = []T{}
	}
	out := dto.Pagina[T, R]{Items: items, Resumen: resumen, Estado: ctrl.Estado().String()}
	if err := ctrl.Err(); err != nil {
		out.Error = err.Error()
	}
	return out
}

// medioQuery acepta el medio de pago en cualquier capitalización.
func medioQuery(c *fiber.Ctx) entity.MedioPago {
	q := c.Query("medio")
	if m, ok := entity.ParseMedioPago(q); ok {
		return m
	}
	return entity.MedioPago(q)
}
