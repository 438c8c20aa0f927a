package entity_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

func TestMedioPago_EsCheque(t *testing.T) {
	for _, m := range entity.MediosPago {
		want := m == entity.MedioCheque || m == entity.MedioChequeElectronico
		assert.Equal(t, want, m.EsCheque(), string(m))
	}
}

func TestParseMedioPago_NormalizaAcento(t *testing.T) {
	m, ok := entity.ParseMedioPago("CHEQUE_ELECTRÓNICO")
	require.True(t, ok)
	assert.Equal(t, entity.MedioChequeElectronico, m)

	_, ok = entity.ParseMedioPago("BITCOIN")
	assert.False(t, ok)
}

func TestProducto_AliasPrecioVentaLegado(t *testing.T) {
	var p entity.Producto
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"nombre":"Alambre","precio_venta":1234.5,"stock":10.0000,"activo":true}`), &p))
	assert.Equal(t, "1234.50", p.PrecioVenta.StringFixed(2))
	assert.Equal(t, int64(10), p.StockEntero())

	require.NoError(t, json.Unmarshal([]byte(`{"precioVenta":99,"precio_venta":1}`), &p))
	assert.Equal(t, "99", p.PrecioVenta.String(), "precioVenta tiene prioridad")
}

func TestProveedor_AliasCondicionIva(t *testing.T) {
	var p entity.Proveedor
	require.NoError(t, json.Unmarshal([]byte(`{"nombre":"Agro SA","condicion_iva":"Exento"}`), &p))
	assert.Equal(t, entity.IvaExento, p.CondicionIva)
}

func TestFecha_LecturaFlexibleYEscritura(t *testing.T) {
	var m entity.MovimientoTesoreria
	body := `{"fecha":"2026-01-02T10:30:00","fechaVencimiento":"2026-02-01","fechaCobro":null,"fechaEmision":""}`
	require.NoError(t, json.Unmarshal([]byte(body), &m))
	assert.Equal(t, 10, m.Fecha.Hour())
	assert.Equal(t, "2026-02-01", m.FechaVencimiento.String())
	assert.True(t, m.FechaCobro.Vacia())
	assert.True(t, m.FechaEmision.Vacia())

	out, err := json.Marshal(struct {
		F entity.Fecha `json:"f"`
		V entity.Fecha `json:"v"`
	}{F: m.FechaVencimiento})
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":"2026-02-01","v":null}`, string(out))
}

func TestDecimal_SeSerializaComoNumero(t *testing.T) {
	out, err := json.Marshal(entity.VentaItem{Cantidad: decimal.NewFromInt(2), PrecioUnitario: decimal.RequireFromString("10.5")})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"cantidad":2`)
	assert.Contains(t, string(out), `"precioUnitario":10.5`)
}

func TestResumenItems(t *testing.T) {
	item := func(n string) entity.VentaItem { return entity.VentaItem{Producto: &entity.Producto{Nombre: n}} }

	assert.Equal(t, "Sin items", entity.Venta{}.ResumenItems())
	assert.Equal(t, "Semilla, Urea", entity.Venta{Items: []entity.VentaItem{item("Semilla"), item("Urea")}}.ResumenItems())
	assert.Equal(t, "Semilla, Urea (+2)", entity.Venta{Items: []entity.VentaItem{item("Semilla"), item("Urea"), item("Malla"), item("Pala")}}.ResumenItems())
}

func TestFecha_ConZonaTomaElDiaDeSuZona(t *testing.T) {
	local := time.Local
	time.Local = time.FixedZone("ART", -3*60*60)
	t.Cleanup(func() { time.Local = local })

	f, err := entity.ParseFecha("2026-03-20T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-20", f.String())

	f, err = entity.ParseFecha("2026-03-20T23:30:00-03:00")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-20", f.String())

	var m entity.MovimientoTesoreria
	require.NoError(t, json.Unmarshal([]byte(`{"fechaVencimiento":"2026-03-20T00:00:00Z"}`), &m))
	assert.Equal(t, "2026-03-20", m.FechaVencimiento.String())
	assert.Equal(t, 20, m.FechaVencimiento.Day())
}

func TestMovimiento_TipoSinDistinguirMayusculas(t *testing.T) {
	m := entity.MovimientoTesoreria{Tipo: "ingreso"}
	assert.True(t, m.EsIngreso())
	assert.True(t, m.PuedeCobrar())

	egreso := entity.MovimientoTesoreria{Tipo: "egreso"}
	assert.False(t, egreso.EsIngreso())
}

func TestMovimiento_Transiciones(t *testing.T) {
	m := entity.MovimientoTesoreria{Tipo: entity.MovimientoIngreso}
	assert.True(t, m.PuedeCobrar())

	m.Cobrado = true
	assert.False(t, m.PuedeCobrar(), "un cobrado no vuelve a cobrarse")
	assert.True(t, m.PuedeAnular())

	egreso := entity.MovimientoTesoreria{Tipo: entity.MovimientoEgreso}
	assert.False(t, egreso.PuedeCobrar())

	anulado := entity.MovimientoTesoreria{Tipo: entity.MovimientoIngreso, Anulado: true}
	assert.False(t, anulado.PuedeCobrar())
	assert.False(t, anulado.PuedeEditar())
}

func TestRemito_NombresYArchivo(t *testing.T) {
	r := entity.Remito{Numero: 42, Cliente: &entity.Cliente{Nombre: "La Tranquera"}}
	assert.Equal(t, "remito_42.pdf", r.NombreArchivoPDF())
	assert.Equal(t, "La Tranquera", r.NombreDestinatario())
	assert.Equal(t, "Consumidor Final", entity.EtiquetaAclaracion(""))
	assert.Equal(t, "Monotributista", entity.EtiquetaAclaracion(entity.AclaracionMonotributo))
}

func TestPago_DescartaChequeSiNoAplica(t *testing.T) {
	p := entity.NuevoPago(entity.MedioEfectivo, &entity.Cheque{Banco: "Nación"})
	assert.Nil(t, p.Cheque)
	assert.False(t, p.EsCheque())

	cobro, err := entity.ParseFecha("2026-04-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-05-01", entity.VencimientoSugerido(cobro).String())
}
