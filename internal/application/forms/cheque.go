package forms

import (
	"fmt"
	"strings"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// ChequeDraft campos que sólo se piden cuando el medio de pago es cheque.
// fechaVencimiento es obligatoria: las alertas de cheques dependen de ella.
type ChequeDraft struct {
	Banco            string `json:"banco" validate:"requerido"`
	NumeroCheque     string `json:"numeroCheque" validate:"requerido"`
	Librador         string `json:"librador" validate:"requerido"`
	FechaEmision     string `json:"fechaEmision" validate:"requerido,fecha"`
	FechaCobro       string `json:"fechaCobro" validate:"requerido,fecha"`
	FechaVencimiento string `json:"fechaVencimiento" validate:"requerido,fecha"`
}

var mensajesCheque = mensajes{
	"banco":                      "El banco es requerido",
	"numeroCheque":               "El número de cheque es requerido",
	"librador":                   "El librador es requerido",
	"fechaEmision.requerido":     "La fecha de emisión es requerida",
	"fechaEmision.fecha":         "La fecha de emisión no es válida",
	"fechaCobro.requerido":       "La fecha de cobro es requerida",
	"fechaCobro.fecha":           "La fecha de cobro no es válida",
	"fechaVencimiento.requerido": "La fecha de vencimiento es requerida",
	"fechaVencimiento.fecha":     "La fecha de vencimiento no es válida",
}

// ChequeAplica indica si el medio exige los datos de cheque.
func ChequeAplica(medio entity.MedioPago) bool {
	return medio.EsCheque()
}

// ChequeDraftDesde precarga el borrador desde un cheque guardado.
func ChequeDraftDesde(c *entity.Cheque) ChequeDraft {
	if c == nil {
		return ChequeDraft{}
	}
	return ChequeDraft{
		Banco:            c.Banco,
		NumeroCheque:     c.Numero,
		Librador:         c.Librador,
		FechaEmision:     c.FechaEmision.String(),
		FechaCobro:       c.FechaCobro.String(),
		FechaVencimiento: c.FechaVencimiento.String(),
	}
}

// SugerirVencimiento completa el vencimiento con cobro + 30 días si está en blanco.
// Devuelve true si cambió el borrador.
func (c *ChequeDraft) SugerirVencimiento() bool {
	if strings.TrimSpace(c.FechaVencimiento) != "" {
		return false
	}
	cobro, err := entity.ParseFecha(c.FechaCobro)
	if err != nil || cobro.Vacia() {
		return false
	}
	c.FechaVencimiento = entity.VencimientoSugerido(cobro).String()
	return true
}

// Validar agrega al mapa todos los errores del cheque.
func (c ChequeDraft) Validar(errs FieldErrors) {
	for campo, msg := range validarCampos(c, mensajesCheque) {
		errs.Add(campo, msg)
	}
}

// ValidarPrimero corta en el primer campo faltante (alerta).
func (c ChequeDraft) ValidarPrimero() *ValidationError {
	return primerError(c, mensajesCheque)
}

// Cheque convierte el borrador ya validado.
func (c ChequeDraft) Cheque() (*entity.Cheque, error) {
	emision, err := entity.ParseFecha(c.FechaEmision)
	if err != nil {
		return nil, fmt.Errorf("cheque: %w", err)
	}
	cobro, err := entity.ParseFecha(c.FechaCobro)
	if err != nil {
		return nil, fmt.Errorf("cheque: %w", err)
	}
	venc, err := entity.ParseFecha(c.FechaVencimiento)
	if err != nil {
		return nil, fmt.Errorf("cheque: %w", err)
	}
	return &entity.Cheque{
		Banco:            strings.TrimSpace(c.Banco),
		Numero:           strings.TrimSpace(c.NumeroCheque),
		Librador:         strings.TrimSpace(c.Librador),
		FechaEmision:     emision,
		FechaCobro:       cobro,
		FechaVencimiento: venc,
	}, nil
}

// pago arma la variante de pago; los datos de cheque sólo si el medio es cheque.
func pago(medio entity.MedioPago, c ChequeDraft) (entity.Pago, error) {
	if !ChequeAplica(medio) {
		return entity.NuevoPago(medio, nil), nil
	}
	ch, err := c.Cheque()
	if err != nil {
		return entity.Pago{}, err
	}
	return entity.NuevoPago(medio, ch), nil
}
