// Package items mantiene la lista editable de líneas de una venta o un remito.
// Mientras el borrador está abierto la lista nunca queda vacía.
package items

import (
	"fmt"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain"
)

// Lista secuencia ordenada con al menos un elemento.
type Lista[T any] struct {
	items []T
	nuevo func() T
}

// NuevaLista arranca con los elementos dados o, si no hay, con uno en blanco.
func NuevaLista[T any](nuevo func() T, iniciales ...T) *Lista[T] {
	l := &Lista[T]{nuevo: nuevo}
	l.items = append(l.items, iniciales...)
	if len(l.items) == 0 {
		l.items = append(l.items, nuevo())
	}
	return l
}

// Agregar suma un elemento en blanco al final y devuelve su índice.
func (l *Lista[T]) Agregar() int {
	l.items = append(l.items, l.nuevo())
	return len(l.items) - 1
}

// PuedeQuitar es la condición que habilita el botón de quitar.
func (l *Lista[T]) PuedeQuitar() bool {
	return len(l.items) > 1
}

// Quitar elimina el elemento i; falla si es el último que queda.
func (l *Lista[T]) Quitar(i int) error {
	if err := l.validarIndice(i); err != nil {
		return err
	}
	if !l.PuedeQuitar() {
		return domain.ErrUltimoItem
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return nil
}

// Len cantidad de elementos.
func (l *Lista[T]) Len() int { return len(l.items) }

// Items copia de los elementos.
func (l *Lista[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Modificar aplica f sobre el elemento i.
func (l *Lista[T]) Modificar(i int, f func(*T)) error {
	if err := l.validarIndice(i); err != nil {
		return err
	}
	f(&l.items[i])
	return nil
}

func (l *Lista[T]) validarIndice(i int) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("%w: %d (hay %d)", domain.ErrIndiceInvalido, i, len(l.items))
	}
	return nil
}
