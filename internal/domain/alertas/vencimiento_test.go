package alertas_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/alertas"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

var ahora = time.Date(2026, 5, 20, 11, 0, 0, 0, time.Local)

func enDias(n int) entity.Fecha {
	return entity.NuevaFecha(ahora.AddDate(0, 0, n))
}

func chequeEnDias(n int) entity.MovimientoTesoreria {
	return entity.MovimientoTesoreria{
		ID:               int64(100 + n),
		Tipo:             entity.MovimientoIngreso,
		MedioPago:        entity.MedioCheque,
		Importe:          decimal.NewFromInt(1000),
		FechaVencimiento: enDias(n),
	}
}

func TestEstadoProducto_Buckets(t *testing.T) {
	casos := []struct {
		nombre string
		fecha  entity.Fecha
		want   alertas.EstadoVencimiento
	}{
		{"hoy+29 por vencer", enDias(29), alertas.PorVencer},
		{"hoy+30 normal", enDias(30), alertas.Normal},
		{"ayer vencido", enDias(-1), alertas.Vencido},
		{"hoy por vencer", enDias(0), alertas.PorVencer},
		{"sin fecha normal", entity.Fecha{}, alertas.Normal},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			p := entity.Producto{Nombre: "Glifosato", FechaVencimiento: c.fecha}
			assert.Equal(t, c.want, alertas.EstadoProducto(p, ahora))
		})
	}
}

func TestProductosEnVentana_InicioDiezDias(t *testing.T) {
	productos := []entity.Producto{
		{ID: 1, Nombre: "A", FechaVencimiento: enDias(11)},
		{ID: 2, Nombre: "B", FechaVencimiento: enDias(10)},
		{ID: 3, Nombre: "C", FechaVencimiento: enDias(0)},
		{ID: 4, Nombre: "D", FechaVencimiento: enDias(-2)},
		{ID: 5, Nombre: "E"},
	}
	got := alertas.ProductosEnVentana(productos, ahora, alertas.VentanaInicioProductos)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].Producto.ID, "ordenado por días restantes")
	assert.Equal(t, int64(2), got[1].Producto.ID)
	assert.Equal(t, 10, got[1].Dias)
}

func TestChequeProximo_SieteDias(t *testing.T) {
	assert.True(t, alertas.ChequeProximo(chequeEnDias(7), ahora), "vence en 7 días: resaltado")
	assert.False(t, alertas.ChequeProximo(chequeEnDias(8), ahora), "vence en 8 días: no")
}

func TestChequesEnVentana_InicioQuinceDias(t *testing.T) {
	movs := []entity.MovimientoTesoreria{chequeEnDias(15), chequeEnDias(16)}
	got := alertas.ChequesEnVentana(movs, ahora, alertas.VentanaInicioCheques)
	require.Len(t, got, 1)
	assert.Equal(t, 15, got[0].Dias)
}

func TestChequesEnVentana_IgnoraAnuladosYNoCheques(t *testing.T) {
	anulado := chequeEnDias(3)
	anulado.Anulado = true
	efectivo := chequeEnDias(3)
	efectivo.MedioPago = entity.MedioEfectivo
	electronico := chequeEnDias(3)
	electronico.MedioPago = entity.MedioChequeElectronico

	got := alertas.ChequesEnVentana([]entity.MovimientoTesoreria{anulado, efectivo, electronico}, ahora, alertas.VentanaInicioCheques)
	require.Len(t, got, 1)
	assert.Equal(t, entity.MedioChequeElectronico, got[0].Movimiento.MedioPago)
}
