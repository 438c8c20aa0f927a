package forms

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/pkg/validator"
)

func init() {
	validator.Register("condicion_iva", func(v string) bool {
		return v == "" || slices.Contains(entity.CondicionesIva, v)
	})
	validator.Register("aclaracion_iva", entity.AclaracionValida)
	validator.Register("medio_pago", func(v string) bool {
		return entity.MedioPago(v).Valido()
	})
}

// mensajes campo.regla → texto mostrado al usuario.
type mensajes map[string]string

const mensajeGenerico = "Valor inválido"

// validarCampos corre las reglas del struct y devuelve todos los errores juntos.
func validarCampos(draft any, msgs mensajes) FieldErrors {
	errs := FieldErrors{}
	for _, fe := range validator.ValidateStruct(draft) {
		errs.Add(fe.Field, msgs.para(fe.Field, fe.Tag))
	}
	return errs
}

// primerError la primera falla en orden de declaración, como alerta.
func primerError(draft any, msgs mensajes) *ValidationError {
	fallas := validator.ValidateStruct(draft)
	if len(fallas) == 0 {
		return nil
	}
	fe := fallas[0]
	return &ValidationError{Field: fe.Field, Message: msgs.para(fe.Field, fe.Tag)}
}

func (m mensajes) para(field, tag string) string {
	if s, ok := m[field+"."+tag]; ok {
		return s
	}
	if s, ok := m[field]; ok {
		return s
	}
	return mensajeGenerico
}

// decimalODefecto en blanco devuelve def. El formato ya fue validado.
func decimalODefecto(s string, def decimal.Decimal) decimal.Decimal {
	if strings.TrimSpace(s) == "" {
		return def
	}
	d, err := validator.ParseDecimal(s)
	if err != nil {
		return def
	}
	return d
}

// textoDecimal representación para precargar un borrador.
func textoDecimal(d decimal.Decimal) string {
	return d.String()
}
