// Package calculo reúne funciones puras de importes y fechas usadas por
// formularios, listados y alertas.
package calculo

import "github.com/shopspring/decimal"

// DecimalesMoneda cantidad de decimales de importes y subtotales.
const DecimalesMoneda = 2

// Redondear redondea a 2 decimales (mitad hacia afuera).
func Redondear(d decimal.Decimal) decimal.Decimal {
	return d.Round(DecimalesMoneda)
}

// Subtotal = round(cantidad × precioUnitario, 2).
func Subtotal(cantidad, precioUnitario decimal.Decimal) decimal.Decimal {
	return Redondear(cantidad.Mul(precioUnitario))
}

// Total suma los valores y redondea el resultado.
func Total(valores ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range valores {
		total = total.Add(v)
	}
	return Redondear(total)
}

// SumarPor suma f(x) sobre los elementos.
func SumarPor[T any](xs []T, f func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, x := range xs {
		total = total.Add(f(x))
	}
	return Redondear(total)
}

// ContarPor cuenta los elementos que cumplen pred.
func ContarPor[T any](xs []T, pred func(T) bool) int {
	n := 0
	for _, x := range xs {
		if pred(x) {
			n++
		}
	}
	return n
}

// FormatearCantidad muestra enteros sin decimales y el resto con 2.
// Ej: 3 → "3", 2.5 → "2.50"
func FormatearCantidad(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return d.StringFixed(0)
	}
	return d.StringFixed(DecimalesMoneda)
}
