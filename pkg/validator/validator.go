package validator

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldError falla de un campo: nombre JSON, regla y parámetro de la regla.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

var validate = validator.New()

// emailSimple forma permisiva local@dominio.tld.
var emailSimple = regexp.MustCompile(`\S+@\S+\.\S+`)

func init() {
	// Los errores se informan con el nombre JSON del campo
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister("requerido", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister("email_simple", func(fl validator.FieldLevel) bool {
		return emailSimple.MatchString(fl.Field().String())
	})
	mustRegister("decimal", func(fl validator.FieldLevel) bool {
		_, err := ParseDecimal(fl.Field().String())
		return err == nil
	})
	mustRegister("decimal_positivo", func(fl validator.FieldLevel) bool {
		d, err := ParseDecimal(fl.Field().String())
		return err == nil && d.IsPositive()
	})
	mustRegister("decimal_no_negativo", func(fl validator.FieldLevel) bool {
		d, err := ParseDecimal(fl.Field().String())
		return err == nil && !d.IsNegative()
	})
	mustRegister("fecha", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", strings.TrimSpace(fl.Field().String()))
		return err == nil
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic("validator: registrar " + tag + ": " + err.Error())
	}
}

// Register agrega una regla propia (se llama desde init de los paquetes que la usan).
func Register(tag string, fn func(value string) bool) {
	mustRegister(tag, func(fl validator.FieldLevel) bool {
		return fn(fl.Field().String())
	})
}

// ValidateStruct devuelve las fallas en el orden de declaración de los campos.
func ValidateStruct(data interface{}) []*FieldError {
	var out []*FieldError
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []*FieldError{{Field: "", Tag: "invalid", Param: err.Error()}}
	}
	for _, e := range verrs {
		out = append(out, &FieldError{
			Field: e.Field(),
			Tag:   e.Tag(),
			Param: e.Param(),
		})
	}
	return out
}

// ParseDecimal acepta coma o punto decimal ("1234,50" o "1234.50").
// Un campo en blanco es un error; los formularios deciden el valor por defecto.
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	return decimal.NewFromString(s)
}
