package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrBackendUnavailable = errors.New("no se pudo contactar al servidor")

	// Editor de items
	ErrUltimoItem     = errors.New("debe quedar al menos un item")
	ErrIndiceInvalido = errors.New("índice de item inválido")

	// Acciones de fila que no aplican al estado actual del registro
	ErrAccionNoPermitida = errors.New("acción no permitida para el estado del registro")
)
