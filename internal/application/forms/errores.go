// Package forms contiene los formularios de alta/edición de cada entidad:
// borrador, validación, normalización del payload y despacho alta/reemplazo.
package forms

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain"
)

// ValidationError falla única que se muestra como alerta y corta la validación.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

// FieldErrors errores por campo; se juntan todos antes de informar.
type FieldErrors map[string]string

// Add registra el primer mensaje de cada campo.
func (f FieldErrors) Add(field, message string) {
	if _, ok := f[field]; !ok {
		f[field] = message
	}
}

// Err devuelve nil si no hay errores.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return f
}

func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, f[k]))
	}
	return strings.Join(parts, "; ")
}

func (f FieldErrors) Unwrap() error { return domain.ErrInvalidInput }
