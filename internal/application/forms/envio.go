package forms

import (
	"context"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/ports"
)

// Formulario contrato común: id del registro existente (0 = alta) y
// normalización, que valida antes de armar el payload.
type Formulario[P any] interface {
	ID() int64
	Normalizar() (P, error)
}

// Enviar valida, normaliza y despacha: PUT /:id si hay registro existente, POST si no.
// Un error de validación corta antes de cualquier llamada de red.
func Enviar[T any, P any](ctx context.Context, f Formulario[P], destino ports.Guardable[T, P]) (*T, error) {
	payload, err := f.Normalizar()
	if err != nil {
		return nil, err
	}
	if id := f.ID(); id != 0 {
		return destino.Actualizar(ctx, id, payload)
	}
	return destino.Crear(ctx, payload)
}
