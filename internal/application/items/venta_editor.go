package items

import (
	"github.com/shopspring/decimal"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/calculo"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// LineaVenta item del borrador. ProductoID 0 significa sin producto elegido.
type LineaVenta struct {
	ProductoID     int64
	Nombre         string
	Cantidad       decimal.Decimal
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
}

// CambiosVenta campos a fusionar; nil deja el valor actual.
type CambiosVenta struct {
	Cantidad       *decimal.Decimal
	PrecioUnitario *decimal.Decimal
}

func lineaVentaVacia() LineaVenta {
	return LineaVenta{Cantidad: decimal.NewFromInt(1), PrecioUnitario: decimal.Zero, Subtotal: decimal.Zero}
}

// VentaEditor líneas de una venta con subtotales y total derivados.
type VentaEditor struct {
	lista    *Lista[LineaVenta]
	catalogo Catalogo
}

// NuevoVentaEditor carga los items de una venta existente (o uno en blanco).
func NuevoVentaEditor(productos []entity.Producto, existentes []entity.VentaItem) *VentaEditor {
	lineas := make([]LineaVenta, 0, len(existentes))
	for _, it := range existentes {
		l := LineaVenta{Cantidad: it.Cantidad, PrecioUnitario: it.PrecioUnitario}
		if it.Producto != nil {
			l.ProductoID = it.Producto.ID
			l.Nombre = it.Producto.Nombre
		}
		l.Subtotal = calculo.Subtotal(l.Cantidad, l.PrecioUnitario)
		lineas = append(lineas, l)
	}
	return &VentaEditor{
		lista:    NuevaLista(lineaVentaVacia, lineas...),
		catalogo: NuevoCatalogo(productos),
	}
}

// Agregar suma una línea en blanco (cantidad 1, precio 0).
func (e *VentaEditor) Agregar() int { return e.lista.Agregar() }

// PuedeQuitar falso con una sola línea.
func (e *VentaEditor) PuedeQuitar() bool { return e.lista.PuedeQuitar() }

// Quitar elimina la línea i conservando al menos una.
func (e *VentaEditor) Quitar(i int) error { return e.lista.Quitar(i) }

// Actualizar fusiona los cambios y siempre recalcula el subtotal.
func (e *VentaEditor) Actualizar(i int, c CambiosVenta) error {
	return e.lista.Modificar(i, func(l *LineaVenta) {
		if c.Cantidad != nil {
			l.Cantidad = *c.Cantidad
		}
		if c.PrecioUnitario != nil {
			l.PrecioUnitario = *c.PrecioUnitario
		}
		l.Subtotal = calculo.Subtotal(l.Cantidad, l.PrecioUnitario)
	})
}

// SeleccionarProducto toma el precio de venta del producto; si el id no existe
// limpia el producto y pone el precio en 0.
func (e *VentaEditor) SeleccionarProducto(i int, productoID int64) error {
	return e.lista.Modificar(i, func(l *LineaVenta) {
		p, ok := e.catalogo.Buscar(productoID)
		if ok {
			l.ProductoID = p.ID
			l.Nombre = p.Nombre
			l.PrecioUnitario = p.PrecioVenta
		} else {
			l.ProductoID = 0
			l.Nombre = ""
			l.PrecioUnitario = decimal.Zero
		}
		l.Subtotal = calculo.Subtotal(l.Cantidad, l.PrecioUnitario)
	})
}

// Lineas copia de las líneas.
func (e *VentaEditor) Lineas() []LineaVenta { return e.lista.Items() }

// Len cantidad de líneas.
func (e *VentaEditor) Len() int { return e.lista.Len() }

// Total Σ subtotal, siempre derivado de las líneas.
func (e *VentaEditor) Total() decimal.Decimal {
	return calculo.SumarPor(e.lista.Items(), func(l LineaVenta) decimal.Decimal { return l.Subtotal })
}
