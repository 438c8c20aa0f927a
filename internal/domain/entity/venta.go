package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Estados de una venta. ANULADA la asigna el backend al anular.
const (
	VentaCompleta  = "COMPLETA"
	VentaPendiente = "PENDIENTE"
	VentaAnulada   = "ANULADA"
)

// Venta cabecera con sus items. Total = Σ subtotal de los items.
type Venta struct {
	ID            int64           `json:"id,omitempty"`
	NumeroInterno int64           `json:"numeroInterno,omitempty"`
	Fecha         FechaHora       `json:"fecha"`
	Cliente       *Cliente        `json:"cliente,omitempty"`
	NombreCliente string          `json:"nombreCliente"`
	Descripcion   string          `json:"descripcion,omitempty"`
	MedioPago     MedioPago       `json:"medioPago"`
	Estado        string          `json:"estado"`
	Anulada       bool            `json:"anulada"`
	Total         decimal.Decimal `json:"total"`
	Items         []VentaItem     `json:"items"`

	ChequeBanco            string `json:"chequeBanco,omitempty"`
	ChequeNumero           string `json:"chequeNumero,omitempty"`
	ChequeLibrador         string `json:"chequeLibrador,omitempty"`
	ChequeFechaEmision     Fecha  `json:"chequeFechaEmision"`
	ChequeFechaCobro       Fecha  `json:"chequeFechaCobro"`
	ChequeFechaVencimiento Fecha  `json:"chequeFechaVencimiento"`
}

// VentaItem línea de venta.
type VentaItem struct {
	ID             int64           `json:"id,omitempty"`
	Producto       *Producto       `json:"producto"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// EstaAnulada contempla el flag y el estado.
func (v Venta) EstaAnulada() bool {
	return v.Anulada || v.Estado == VentaAnulada
}

// Pago reconstruye la variante de pago desde los campos planos.
func (v Venta) Pago() Pago {
	if !v.MedioPago.EsCheque() {
		return NuevoPago(v.MedioPago, nil)
	}
	return NuevoPago(v.MedioPago, &Cheque{
		Banco:            v.ChequeBanco,
		Numero:           v.ChequeNumero,
		Librador:         v.ChequeLibrador,
		FechaEmision:     v.ChequeFechaEmision,
		FechaCobro:       v.ChequeFechaCobro,
		FechaVencimiento: v.ChequeFechaVencimiento,
	})
}

// ResumenItems primeros dos productos y "(+N)" por el resto.
func (v Venta) ResumenItems() string {
	nombres := make([]string, 0, len(v.Items))
	for _, it := range v.Items {
		nombres = append(nombres, nombreProducto(it.Producto))
	}
	return resumirNombres(nombres)
}

func nombreProducto(p *Producto) string {
	if p == nil || p.Nombre == "" {
		return "Producto"
	}
	return p.Nombre
}

func resumirNombres(nombres []string) string {
	switch {
	case len(nombres) == 0:
		return "Sin items"
	case len(nombres) <= 2:
		return strings.Join(nombres, ", ")
	}
	return fmt.Sprintf("%s (+%d)", strings.Join(nombres[:2], ", "), len(nombres)-2)
}

// PuedeAnular y PuedeEditar: una venta anulada queda de sólo lectura.
func (v Venta) PuedeAnular() bool { return !v.EstaAnulada() }
func (v Venta) PuedeEditar() bool { return !v.EstaAnulada() }
