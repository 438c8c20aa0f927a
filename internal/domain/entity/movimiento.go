package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de tesorería.
const (
	MovimientoIngreso = "INGRESO"
	MovimientoEgreso  = "EGRESO"
)

// MovimientoTesoreria ingreso o egreso de caja.
// Se crea pendiente; cobrado y anulado son transiciones de una sola vía.
type MovimientoTesoreria struct {
	ID          int64           `json:"id,omitempty"`
	Tipo        string          `json:"tipo"`
	MedioPago   MedioPago       `json:"medioPago"`
	Importe     decimal.Decimal `json:"importe"`
	Referencia  string          `json:"referencia,omitempty"`
	Descripcion string          `json:"descripcion"`
	Fecha       FechaHora       `json:"fecha"`
	Anulado     bool            `json:"anulado"`
	Cobrado     bool            `json:"cobrado"`
	VentaID     *int64          `json:"ventaId,omitempty"`

	Banco            string `json:"banco,omitempty"`
	NumeroCheque     string `json:"numeroCheque,omitempty"`
	Librador         string `json:"librador,omitempty"`
	FechaEmision     Fecha  `json:"fechaEmision"`
	FechaCobro       Fecha  `json:"fechaCobro"`
	FechaVencimiento Fecha  `json:"fechaVencimiento"`
	TipoCheque       string `json:"tipoCheque,omitempty"`
}

// EsIngreso tipo INGRESO, sin distinguir mayúsculas.
func (m MovimientoTesoreria) EsIngreso() bool {
	return strings.EqualFold(strings.TrimSpace(m.Tipo), MovimientoIngreso)
}

// EsCheque medio cheque o cheque electrónico.
func (m MovimientoTesoreria) EsCheque() bool { return m.MedioPago.EsCheque() }

// PuedeCobrar sólo ingresos vigentes que todavía no se cobraron.
func (m MovimientoTesoreria) PuedeCobrar() bool {
	return !m.Anulado && !m.Cobrado && m.EsIngreso()
}

// PuedeAnular cualquier movimiento no anulado.
func (m MovimientoTesoreria) PuedeAnular() bool { return !m.Anulado }

// PuedeEditar los anulados quedan de sólo lectura.
func (m MovimientoTesoreria) PuedeEditar() bool { return !m.Anulado }

// Pago reconstruye la variante de pago desde los campos planos.
func (m MovimientoTesoreria) Pago() Pago {
	if !m.MedioPago.EsCheque() {
		return NuevoPago(m.MedioPago, nil)
	}
	return NuevoPago(m.MedioPago, &Cheque{
		Banco:            m.Banco,
		Numero:           m.NumeroCheque,
		Librador:         m.Librador,
		FechaEmision:     m.FechaEmision,
		FechaCobro:       m.FechaCobro,
		FechaVencimiento: m.FechaVencimiento,
	})
}

// DiasParaVencerCheque sólo para movimientos cheque vigentes con vencimiento.
func (m MovimientoTesoreria) DiasParaVencerCheque(ahora time.Time) (int, bool) {
	if m.Anulado || !m.EsCheque() {
		return 0, false
	}
	return m.Pago().Cheque.DiasParaVencer(ahora)
}
