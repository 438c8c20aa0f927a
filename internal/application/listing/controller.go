// Package listing implementa los controladores de página: traen la colección,
// derivan la vista filtrada y las estadísticas, y despachan las acciones de fila.
// La colección traída es la única fuente de verdad: después de cada cambio se vuelve a pedir.
package listing

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/ports"
)

// Estado de la carga de un listado.
type Estado int

const (
	Inactivo Estado = iota
	Cargando
	Listo
	ConError
)

func (e Estado) String() string {
	switch e {
	case Cargando:
		return "loading"
	case Listo:
		return "success"
	case ConError:
		return "error"
	default:
		return "idle"
	}
}

// Controller dueño exclusivo de su copia de la colección.
// No es seguro para uso concurrente: cada pantalla o request usa el suyo.
type Controller[T any] struct {
	nombre string
	fuente ports.Listable[T]
	log    zerolog.Logger

	estado Estado
	items  []T
	err    error
}

// NewController construye el controlador en estado inactivo.
func NewController[T any](nombre string, fuente ports.Listable[T], log zerolog.Logger) *Controller[T] {
	return &Controller[T]{
		nombre: nombre,
		fuente: fuente,
		log:    log.With().Str("listado", nombre).Logger(),
	}
}

// Cargar pide la colección. Si falla la colección queda vacía y el estado en
// ConError hasta la próxima carga; no hay reintentos.
func (c *Controller[T]) Cargar(ctx context.Context) error {
	c.estado = Cargando
	items, err := c.fuente.Listar(ctx)
	if err != nil {
		c.items = nil
		c.err = err
		c.estado = ConError
		c.log.Warn().Err(err).Msg("no se pudo cargar el listado")
		return err
	}
	c.items = items
	c.err = nil
	c.estado = Listo
	c.log.Debug().Int("registros", len(items)).Msg("listado cargado")
	return nil
}

// Estado actual de la carga.
func (c *Controller[T]) Estado() Estado { return c.estado }

// Err último error de carga.
func (c *Controller[T]) Err() error { return c.err }

// Nombre del listado.
func (c *Controller[T]) Nombre() string { return c.nombre }

// Items copia de la colección.
func (c *Controller[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Filtrar proyección de la colección; no la modifica.
func (c *Controller[T]) Filtrar(pred func(T) bool) []T {
	out := make([]T, 0, len(c.items))
	for _, it := range c.items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

// Buscar primer elemento que cumple pred.
func (c *Controller[T]) Buscar(pred func(T) bool) (T, bool) {
	for _, it := range c.items {
		if pred(it) {
			return it, true
		}
	}
	var cero T
	return cero, false
}
