package home_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/home"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

type listaFake[T any] struct {
	items []T
	err   error
}

func (l listaFake[T]) Listar(context.Context) ([]T, error) { return l.items, l.err }

func ahoraFijo() time.Time { return time.Date(2026, 2, 2, 9, 30, 0, 0, time.Local) }

func enDias(n int) entity.Fecha { return entity.NuevaFecha(ahoraFijo().AddDate(0, 0, n)) }

func cheque(id int64, dias int) entity.MovimientoTesoreria {
	return entity.MovimientoTesoreria{
		ID: id, Tipo: entity.MovimientoIngreso, MedioPago: entity.MedioCheque,
		Importe: decimal.NewFromInt(100), NumeroCheque: "N", FechaVencimiento: enDias(dias),
	}
}

func TestDigest_Ventanas(t *testing.T) {
	productos := listaFake[entity.Producto]{items: []entity.Producto{
		{ID: 1, Nombre: "Diez días", FechaVencimiento: enDias(10)},
		{ID: 2, Nombre: "Once días", FechaVencimiento: enDias(11)},
		{ID: 3, Nombre: "Hoy", FechaVencimiento: enDias(0)},
		{ID: 4, Nombre: "Vencido", FechaVencimiento: enDias(-2)},
		{ID: 5, Nombre: "Sin fecha"},
	}}
	anulado := cheque(14, 3)
	anulado.Anulado = true
	efectivo := entity.MovimientoTesoreria{ID: 15, MedioPago: entity.MedioEfectivo, FechaVencimiento: enDias(3)}
	tesoreria := listaFake[entity.MovimientoTesoreria]{items: []entity.MovimientoTesoreria{
		cheque(11, 15), cheque(12, 16), cheque(13, 1), anulado, efectivo,
	}}

	uc := home.NewDigestUseCase(productos, tesoreria, zerolog.Nop()).ConReloj(ahoraFijo)
	out := uc.Obtener(context.Background())

	require.Len(t, out.ProductosPorVencer, 2)
	assert.Equal(t, int64(3), out.ProductosPorVencer[0].ID, "los más próximos primero")
	assert.Equal(t, 0, out.ProductosPorVencer[0].Dias)
	assert.Equal(t, int64(1), out.ProductosPorVencer[1].ID)
	assert.Equal(t, 10, out.ProductosPorVencer[1].Dias)

	require.Len(t, out.ChequesPorVencer, 2)
	assert.Equal(t, int64(13), out.ChequesPorVencer[0].ID)
	assert.Equal(t, int64(11), out.ChequesPorVencer[1].ID)
	assert.Equal(t, 15, out.ChequesPorVencer[1].Dias)

	assert.True(t, out.MostrarAlertas)
	assert.Equal(t, "Febrero 2026", out.Periodo)
	assert.Len(t, out.Modulos, 6)
}

func TestDigest_FuenteCaidaQuedaVacia(t *testing.T) {
	productos := listaFake[entity.Producto]{err: errors.New("connection refused")}
	tesoreria := listaFake[entity.MovimientoTesoreria]{items: []entity.MovimientoTesoreria{cheque(1, 5)}}

	out := home.NewDigestUseCase(productos, tesoreria, zerolog.Nop()).ConReloj(ahoraFijo).Obtener(context.Background())
	assert.NotNil(t, out.ProductosPorVencer)
	assert.Empty(t, out.ProductosPorVencer)
	assert.Len(t, out.ChequesPorVencer, 1)
	assert.True(t, out.MostrarAlertas)
}

func TestDigest_SinAlertas(t *testing.T) {
	out := home.NewDigestUseCase(listaFake[entity.Producto]{}, listaFake[entity.MovimientoTesoreria]{}, zerolog.Nop()).
		ConReloj(ahoraFijo).Obtener(context.Background())
	assert.False(t, out.MostrarAlertas)
}
