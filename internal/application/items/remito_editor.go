package items

import (
	"github.com/shopspring/decimal"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// LineaRemito item del borrador de remito.
type LineaRemito struct {
	ProductoID int64
	Nombre     string
	Cantidad   decimal.Decimal
	Notas      string
}

// CambiosRemito campos a fusionar; nil deja el valor actual.
type CambiosRemito struct {
	Cantidad *decimal.Decimal
	Notas    *string
}

func lineaRemitoVacia() LineaRemito {
	return LineaRemito{Cantidad: decimal.NewFromInt(1)}
}

// RemitoEditor líneas de un remito.
type RemitoEditor struct {
	lista    *Lista[LineaRemito]
	catalogo Catalogo
}

// NuevoRemitoEditor carga los items existentes o una línea en blanco.
func NuevoRemitoEditor(productos []entity.Producto, existentes []entity.RemitoItem) *RemitoEditor {
	lineas := make([]LineaRemito, 0, len(existentes))
	for _, it := range existentes {
		l := LineaRemito{Cantidad: it.Cantidad, Notas: it.Notas}
		if it.Producto != nil {
			l.ProductoID = it.Producto.ID
			l.Nombre = it.Producto.Nombre
		}
		lineas = append(lineas, l)
	}
	return &RemitoEditor{
		lista:    NuevaLista(lineaRemitoVacia, lineas...),
		catalogo: NuevoCatalogo(productos),
	}
}

func (e *RemitoEditor) Agregar() int       { return e.lista.Agregar() }
func (e *RemitoEditor) PuedeQuitar() bool  { return e.lista.PuedeQuitar() }
func (e *RemitoEditor) Quitar(i int) error { return e.lista.Quitar(i) }
func (e *RemitoEditor) Len() int           { return e.lista.Len() }

// Lineas copia de las líneas.
func (e *RemitoEditor) Lineas() []LineaRemito { return e.lista.Items() }

// Actualizar fusiona cantidad y notas.
func (e *RemitoEditor) Actualizar(i int, c CambiosRemito) error {
	return e.lista.Modificar(i, func(l *LineaRemito) {
		if c.Cantidad != nil {
			l.Cantidad = *c.Cantidad
		}
		if c.Notas != nil {
			l.Notas = *c.Notas
		}
	})
}

// SeleccionarProducto asigna el producto o lo limpia si el id no existe.
func (e *RemitoEditor) SeleccionarProducto(i int, productoID int64) error {
	return e.lista.Modificar(i, func(l *LineaRemito) {
		if p, ok := e.catalogo.Buscar(productoID); ok {
			l.ProductoID = p.ID
			l.Nombre = p.Nombre
			return
		}
		l.ProductoID = 0
		l.Nombre = ""
	})
}
