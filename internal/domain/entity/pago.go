package entity

import (
	"time"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/calculo"
)

// Cheque datos de un pago con cheque físico o electrónico.
type Cheque struct {
	Banco            string
	Numero           string
	Librador         string
	FechaEmision     Fecha
	FechaCobro       Fecha
	FechaVencimiento Fecha
}

// Tipos de cheque informados a tesorería.
const (
	ChequeFisico      = "FISICO"
	ChequeElectronico = "ELECTRONICO"
)

// Pago es el medio de pago con su variante: sólo los medios cheque llevan Cheque.
type Pago struct {
	Medio  MedioPago
	Cheque *Cheque
}

// NuevoPago descarta los datos de cheque cuando el medio no es cheque.
func NuevoPago(medio MedioPago, cheque *Cheque) Pago {
	if !medio.EsCheque() {
		return Pago{Medio: medio}
	}
	return Pago{Medio: medio, Cheque: cheque}
}

// EsCheque indica si la variante es cheque.
func (p Pago) EsCheque() bool {
	return p.Medio.EsCheque() && p.Cheque != nil
}

// TipoCheque FISICO o ELECTRONICO; vacío si no es cheque.
func (p Pago) TipoCheque() string {
	switch p.Medio {
	case MedioCheque:
		return ChequeFisico
	case MedioChequeElectronico:
		return ChequeElectronico
	}
	return ""
}

// VencimientoSugerido es la fecha de cobro más 30 días, el valor que asume el
// backend cuando no se informa vencimiento.
func VencimientoSugerido(fechaCobro Fecha) Fecha {
	if fechaCobro.Vacia() {
		return Fecha{}
	}
	return NuevaFecha(fechaCobro.AddDate(0, 0, 30))
}

// DiasParaVencer días hasta el vencimiento del cheque; false sin fecha.
func (c Cheque) DiasParaVencer(ahora time.Time) (int, bool) {
	if c.FechaVencimiento.Vacia() {
		return 0, false
	}
	return calculo.DiasHasta(c.FechaVencimiento.Time, ahora), true
}
