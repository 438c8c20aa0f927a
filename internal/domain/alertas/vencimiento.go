// Package alertas clasifica productos por vencimiento y cheques por fecha de
// vencimiento. Es informativo: no dispara acciones.
package alertas

import (
	"sort"
	"time"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// EstadoVencimiento de un producto.
type EstadoVencimiento string

const (
	Vencido   EstadoVencimiento = "vencido"
	PorVencer EstadoVencimiento = "por-vencer"
	Normal    EstadoVencimiento = "normal"
)

// Ventanas en días (ambos extremos incluidos, desde 0).
const (
	VentanaPorVencer       = 29 // resaltado en mercadería
	VentanaInicioProductos = 10 // resumen de inicio
	VentanaInicioCheques   = 15 // resumen de inicio
	VentanaChequeProximo   = 7  // resaltado en tesorería
)

// Clasificar bucket para una cantidad de días restantes.
func Clasificar(dias int) EstadoVencimiento {
	switch {
	case dias < 0:
		return Vencido
	case dias <= VentanaPorVencer:
		return PorVencer
	default:
		return Normal
	}
}

// EstadoProducto sin fecha de vencimiento siempre es normal.
func EstadoProducto(p entity.Producto, ahora time.Time) EstadoVencimiento {
	dias, ok := p.DiasParaVencer(ahora)
	if !ok {
		return Normal
	}
	return Clasificar(dias)
}

// EnVentana 0 <= dias <= ventana.
func EnVentana(dias, ventana int) bool {
	return dias >= 0 && dias <= ventana
}

// ProductoAlerta producto con sus días restantes.
type ProductoAlerta struct {
	Producto entity.Producto
	Dias     int
}

// ChequeAlerta movimiento cheque con sus días restantes.
type ChequeAlerta struct {
	Movimiento entity.MovimientoTesoreria
	Dias       int
}

// ProductosEnVentana productos que vencen dentro de la ventana, los más próximos primero.
func ProductosEnVentana(productos []entity.Producto, ahora time.Time, ventana int) []ProductoAlerta {
	out := make([]ProductoAlerta, 0)
	for _, p := range productos {
		dias, ok := p.DiasParaVencer(ahora)
		if ok && EnVentana(dias, ventana) {
			out = append(out, ProductoAlerta{Producto: p, Dias: dias})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Dias < out[j].Dias })
	return out
}

// ChequesEnVentana movimientos cheque no anulados que vencen dentro de la ventana.
func ChequesEnVentana(movs []entity.MovimientoTesoreria, ahora time.Time, ventana int) []ChequeAlerta {
	out := make([]ChequeAlerta, 0)
	for _, m := range movs {
		dias, ok := m.DiasParaVencerCheque(ahora)
		if ok && EnVentana(dias, ventana) {
			out = append(out, ChequeAlerta{Movimiento: m, Dias: dias})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Dias < out[j].Dias })
	return out
}

// ChequeProximo resaltado de fila en tesorería (0 a 7 días).
func ChequeProximo(m entity.MovimientoTesoreria, ahora time.Time) bool {
	dias, ok := m.DiasParaVencerCheque(ahora)
	return ok && EnVentana(dias, VentanaChequeProximo)
}
