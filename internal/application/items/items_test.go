package items_test

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/items"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/calculo"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }

func catalogo() []entity.Producto {
	return []entity.Producto{
		{ID: 1, Nombre: "Alambre liso", PrecioVenta: dec("10.00")},
		{ID: 2, Nombre: "Varilla", PrecioVenta: dec("5.50")},
		{ID: 3, Nombre: "Tranquera", PrecioVenta: dec("1234.99")},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// VentaEditor
// ──────────────────────────────────────────────────────────────────────────────

func TestVentaEditor_ArrancaConUnaLineaEnBlanco(t *testing.T) {
	e := items.NuevoVentaEditor(catalogo(), nil)
	require.Equal(t, 1, e.Len())

	l := e.Lineas()[0]
	assert.Equal(t, int64(0), l.ProductoID)
	assert.True(t, l.Cantidad.Equal(decimal.NewFromInt(1)))
	assert.True(t, l.PrecioUnitario.IsZero())
	assert.False(t, e.PuedeQuitar(), "con una sola línea no se puede quitar")
}

func TestVentaEditor_QuitarNuncaDejaLaListaVacia(t *testing.T) {
	e := items.NuevoVentaEditor(catalogo(), nil)
	err := e.Quitar(0)
	require.ErrorIs(t, err, domain.ErrUltimoItem)
	assert.Equal(t, 1, e.Len())

	e.Agregar()
	assert.True(t, e.PuedeQuitar())
	require.NoError(t, e.Quitar(1))
	assert.Equal(t, 1, e.Len())

	assert.ErrorIs(t, e.Quitar(5), domain.ErrIndiceInvalido)
}

func TestVentaEditor_EscenarioDosItemsTotal2550(t *testing.T) {
	e := items.NuevoVentaEditor(catalogo(), nil)
	require.NoError(t, e.SeleccionarProducto(0, 1))
	require.NoError(t, e.Actualizar(0, items.CambiosVenta{Cantidad: ptr(dec("2"))}))

	i := e.Agregar()
	require.NoError(t, e.SeleccionarProducto(i, 2))

	lineas := e.Lineas()
	assert.Equal(t, "20.00", lineas[0].Subtotal.StringFixed(2))
	assert.Equal(t, "5.50", lineas[1].Subtotal.StringFixed(2))
	assert.Equal(t, "25.50", e.Total().StringFixed(2))
}

func TestVentaEditor_ActualizarSiempreRecalculaSubtotal(t *testing.T) {
	e := items.NuevoVentaEditor(catalogo(), nil)
	require.NoError(t, e.Actualizar(0, items.CambiosVenta{PrecioUnitario: ptr(dec("3.335"))}))
	assert.Equal(t, "3.34", e.Lineas()[0].Subtotal.StringFixed(2), "cambia sólo el precio")

	require.NoError(t, e.Actualizar(0, items.CambiosVenta{Cantidad: ptr(dec("3"))}))
	assert.Equal(t, "10.01", e.Lineas()[0].Subtotal.StringFixed(2), "cambia sólo la cantidad")

	require.NoError(t, e.Actualizar(0, items.CambiosVenta{}))
	assert.Equal(t, "10.01", e.Lineas()[0].Subtotal.StringFixed(2), "sin cambios también recalcula")
}

func TestVentaEditor_ProductoInexistenteLimpiaPrecio(t *testing.T) {
	e := items.NuevoVentaEditor(catalogo(), nil)
	require.NoError(t, e.SeleccionarProducto(0, 3))
	assert.Equal(t, "1234.99", e.Lineas()[0].PrecioUnitario.StringFixed(2))

	require.NoError(t, e.SeleccionarProducto(0, 999))
	l := e.Lineas()[0]
	assert.Equal(t, int64(0), l.ProductoID)
	assert.True(t, l.PrecioUnitario.IsZero())
	assert.True(t, l.Subtotal.IsZero())
}

func TestVentaEditor_CargaItemsExistentes(t *testing.T) {
	existentes := []entity.VentaItem{
		{Producto: &entity.Producto{ID: 2, Nombre: "Varilla"}, Cantidad: dec("4"), PrecioUnitario: dec("5.50")},
	}
	e := items.NuevoVentaEditor(catalogo(), existentes)
	require.Equal(t, 1, e.Len())
	assert.Equal(t, "22.00", e.Total().StringFixed(2))
}

// El total nunca se desvía de la suma de subtotales tras cualquier secuencia de operaciones.
func TestVentaEditor_TotalIgualASumaDeSubtotales(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	e := items.NuevoVentaEditor(catalogo(), nil)

	for paso := 0; paso < 500; paso++ {
		switch rng.Intn(4) {
		case 0:
			e.Agregar()
		case 1:
			_ = e.Quitar(rng.Intn(e.Len()))
		case 2:
			cant := decimal.NewFromInt(int64(rng.Intn(50))).Div(decimal.NewFromInt(int64(1 + rng.Intn(4))))
			precio := decimal.NewFromInt(int64(rng.Intn(100000))).Div(decimal.NewFromInt(100))
			require.NoError(t, e.Actualizar(rng.Intn(e.Len()), items.CambiosVenta{Cantidad: &cant, PrecioUnitario: &precio}))
		case 3:
			require.NoError(t, e.SeleccionarProducto(rng.Intn(e.Len()), int64(rng.Intn(5))))
		}

		require.GreaterOrEqual(t, e.Len(), 1)
		subtotales := make([]decimal.Decimal, 0, e.Len())
		for _, l := range e.Lineas() {
			require.True(t, l.Subtotal.Equal(calculo.Subtotal(l.Cantidad, l.PrecioUnitario)))
			subtotales = append(subtotales, l.Subtotal)
		}
		require.True(t, e.Total().Equal(calculo.Total(subtotales...)), "paso %d", paso)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RemitoEditor
// ──────────────────────────────────────────────────────────────────────────────

func TestRemitoEditor_SeleccionYNotas(t *testing.T) {
	e := items.NuevoRemitoEditor(catalogo(), nil)
	require.NoError(t, e.SeleccionarProducto(0, 1))
	notas := "entregar en galpón"
	require.NoError(t, e.Actualizar(0, items.CambiosRemito{Cantidad: ptr(dec("12")), Notas: &notas}))

	l := e.Lineas()[0]
	assert.Equal(t, "Alambre liso", l.Nombre)
	assert.Equal(t, "12", l.Cantidad.String())
	assert.Equal(t, notas, l.Notas)

	require.NoError(t, e.SeleccionarProducto(0, 77))
	assert.Equal(t, int64(0), e.Lineas()[0].ProductoID)
	assert.ErrorIs(t, e.Quitar(0), domain.ErrUltimoItem)
}
