package calculo_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/calculo"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSubtotal_RedondeaADosDecimales(t *testing.T) {
	assert.True(t, calculo.Subtotal(dec("2"), dec("10.00")).Equal(dec("20.00")))
	assert.True(t, calculo.Subtotal(dec("3"), dec("0.335")).Equal(dec("1.01")), "1.005 redondea hacia arriba")
	assert.True(t, calculo.Subtotal(dec("0.5"), dec("3.33")).Equal(dec("1.67")))
}

func TestTotal_SumaYRedondea(t *testing.T) {
	assert.Equal(t, "25.50", calculo.Total(dec("20.00"), dec("5.50")).StringFixed(2))
	assert.True(t, calculo.Total().IsZero())
}

func TestSumarYContarPor(t *testing.T) {
	xs := []int{1, 2, 3, 4}
	assert.Equal(t, 2, calculo.ContarPor(xs, func(n int) bool { return n%2 == 0 }))
	got := calculo.SumarPor(xs, func(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) })
	assert.True(t, got.Equal(dec("10")))
}

func TestFormatearCantidad(t *testing.T) {
	assert.Equal(t, "3", calculo.FormatearCantidad(dec("3.000")))
	assert.Equal(t, "2.50", calculo.FormatearCantidad(dec("2.5")))
}

func TestDiasHasta_RedondeaHaciaArriba(t *testing.T) {
	ahora := time.Date(2026, 3, 10, 15, 30, 0, 0, time.Local)
	hoy := calculo.InicioDelDia(ahora)

	assert.Equal(t, 29, calculo.DiasHasta(hoy.AddDate(0, 0, 29), ahora))
	assert.Equal(t, 1, calculo.DiasHasta(hoy.AddDate(0, 0, 1), ahora))
	assert.Equal(t, 0, calculo.DiasHasta(hoy, ahora), "el mismo día cuenta como 0")
	assert.Equal(t, -1, calculo.DiasHasta(hoy.AddDate(0, 0, -1), ahora))
}

func TestFechas_Auxiliares(t *testing.T) {
	a := time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)
	b := time.Date(2026, 3, 10, 23, 0, 0, 0, time.Local)
	c := time.Date(2026, 3, 28, 0, 0, 0, 0, time.Local)

	assert.True(t, calculo.MismoDia(a, b))
	assert.False(t, calculo.MismoDia(a, c))
	assert.True(t, calculo.MismoMes(a, c))
	assert.Equal(t, "10/03/2026", calculo.FormatearFecha(a))
	assert.Equal(t, "", calculo.FormatearFecha(time.Time{}))
	assert.Equal(t, "Marzo 2026", calculo.EtiquetaMes(a))
}
