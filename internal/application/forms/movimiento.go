package forms

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/dto"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// MovimientoDraft campos editables de un movimiento de tesorería.
type MovimientoDraft struct {
	Tipo        string      `json:"tipo" validate:"oneof=INGRESO EGRESO"`
	MedioPago   string      `json:"medioPago" validate:"medio_pago"`
	Importe     string      `json:"importe" validate:"decimal_positivo"`
	Referencia  string      `json:"referencia"`
	Descripcion string      `json:"descripcion"`
	Cheque      ChequeDraft `json:"cheque" validate:"-"`
}

var mensajesMovimiento = mensajes{
	"tipo":        "Tipo de movimiento inválido",
	"medioPago":   "Medio de pago inválido",
	"importe":     "El importe debe ser mayor a 0",
	"descripcion": "La descripción es requerida",
}

// MovimientoForm alta o edición de un movimiento.
// En la edición conserva fecha, cobrado, anulado y venta de origen: el PUT reemplaza el registro.
type MovimientoForm struct {
	existente *entity.MovimientoTesoreria
	ahora     func() time.Time
	Draft     MovimientoDraft
}

// NuevoMovimientoForm un alta arranca como INGRESO en EFECTIVO.
func NuevoMovimientoForm(existente *entity.MovimientoTesoreria) *MovimientoForm {
	f := &MovimientoForm{
		ahora: time.Now,
		Draft: MovimientoDraft{Tipo: entity.MovimientoIngreso, MedioPago: string(entity.MedioEfectivo)},
	}
	if existente != nil {
		cp := *existente
		f.existente = &cp
		f.Draft = MovimientoDraft{
			Tipo:        existente.Tipo,
			MedioPago:   string(existente.MedioPago),
			Importe:     textoDecimal(existente.Importe),
			Referencia:  existente.Referencia,
			Descripcion: existente.Descripcion,
			Cheque:      ChequeDraftDesde(existente.Pago().Cheque),
		}
	}
	return f
}

// ConReloj reemplaza el reloj usado para sellar la fecha de alta.
func (f *MovimientoForm) ConReloj(ahora func() time.Time) *MovimientoForm {
	f.ahora = ahora
	return f
}

func (f *MovimientoForm) ID() int64 {
	if f.existente == nil {
		return 0
	}
	return f.existente.ID
}

// ChequeAplica indica si los campos de cheque se piden y se envían.
func (f *MovimientoForm) ChequeAplica() bool {
	return ChequeAplica(entity.MedioPago(f.Draft.MedioPago))
}

// Validar junta los errores de cabecera y de cheque en un único mapa.
func (f *MovimientoForm) Validar() error {
	errs := validarCampos(f.Draft, mensajesMovimiento)
	if f.existente == nil && strings.TrimSpace(f.Draft.Descripcion) == "" {
		errs.Add("descripcion", mensajesMovimiento["descripcion"])
	}
	if f.ChequeAplica() {
		f.Draft.Cheque.Validar(errs)
	}
	return errs.Err()
}

// Normalizar valida y arma el registro completo.
func (f *MovimientoForm) Normalizar() (dto.MovimientoPayload, error) {
	if err := f.Validar(); err != nil {
		return dto.MovimientoPayload{}, err
	}
	d := f.Draft
	medio := entity.MedioPago(d.MedioPago)
	pg, err := pago(medio, d.Cheque)
	if err != nil {
		return dto.MovimientoPayload{}, err
	}

	p := dto.MovimientoPayload{
		Tipo:        d.Tipo,
		Importe:     decimalODefecto(d.Importe, decimal.Zero),
		Referencia:  strings.TrimSpace(d.Referencia),
		Descripcion: strings.TrimSpace(d.Descripcion),
		Fecha:       entity.FechaHora{Time: f.ahora().Truncate(time.Second)},
	}
	if e := f.existente; e != nil {
		p.ID = e.ID
		p.Fecha = e.Fecha
		p.Anulado = e.Anulado
		p.Cobrado = e.Cobrado
		p.VentaID = e.VentaID
	}
	p.AplicarPago(pg)
	return p, nil
}
