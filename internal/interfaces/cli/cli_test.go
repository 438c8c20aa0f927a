package cli_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/dto"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/forms"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/interfaces/cli"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/pkg/config"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type recursoFake[T any, P any] struct {
	items     []T
	errListar error

	creados    []P
	eliminados []int64
	anulados   []int64
	cobrados   []int64
	pdf        []byte
}

func (r *recursoFake[T, P]) Listar(context.Context) ([]T, error) {
	if r.errListar != nil {
		return nil, r.errListar
	}
	return r.items, nil
}

func (r *recursoFake[T, P]) Crear(_ context.Context, p P) (*T, error) {
	r.creados = append(r.creados, p)
	var out T
	return &out, nil
}

func (r *recursoFake[T, P]) Actualizar(_ context.Context, _ int64, _ P) (*T, error) {
	var out T
	return &out, nil
}

func (r *recursoFake[T, P]) Eliminar(_ context.Context, id int64) error {
	r.eliminados = append(r.eliminados, id)
	return nil
}

func (r *recursoFake[T, P]) Anular(_ context.Context, id int64) error {
	r.anulados = append(r.anulados, id)
	return nil
}

func (r *recursoFake[T, P]) Cobrar(_ context.Context, id int64) error {
	r.cobrados = append(r.cobrados, id)
	return nil
}

func (r *recursoFake[T, P]) DescargarPDF(context.Context, int64) ([]byte, error) {
	return r.pdf, nil
}

type entorno struct {
	clientes  *recursoFake[entity.Cliente, dto.ClientePayload]
	productos *recursoFake[entity.Producto, dto.ProductoPayload]
	remitos   *recursoFake[entity.Remito, dto.RemitoPayload]
	tesoreria *recursoFake[entity.MovimientoTesoreria, dto.MovimientoPayload]
	out       *bytes.Buffer
	deps      cli.Deps
}

func nuevoEntorno(t *testing.T, entrada string) *entorno {
	t.Helper()
	e := &entorno{
		clientes: &recursoFake[entity.Cliente, dto.ClientePayload]{items: []entity.Cliente{
			{ID: 1, Nombre: "Estancia La Paloma", Email: "paloma@campo.com.ar"},
			{ID: 2, Nombre: "Juan Pérez", Telefono: "3400-1234"},
		}},
		productos: &recursoFake[entity.Producto, dto.ProductoPayload]{},
		remitos: &recursoFake[entity.Remito, dto.RemitoPayload]{
			items: []entity.Remito{{ID: 7, Numero: 15}},
			pdf:   []byte("%PDF-1.4"),
		},
		tesoreria: &recursoFake[entity.MovimientoTesoreria, dto.MovimientoPayload]{items: []entity.MovimientoTesoreria{
			{ID: 20, Tipo: entity.MovimientoIngreso, MedioPago: entity.MedioEfectivo, Importe: decimal.NewFromInt(100)},
			{ID: 21, Tipo: entity.MovimientoEgreso, MedioPago: entity.MedioEfectivo, Importe: decimal.NewFromInt(40)},
		}},
		out: &bytes.Buffer{},
	}
	e.deps = cli.Deps{
		Clientes:    e.clientes,
		Proveedores: &recursoFake[entity.Proveedor, dto.ProveedorPayload]{},
		Productos:   e.productos,
		Ventas:      &recursoFake[entity.Venta, dto.VentaPayload]{},
		Remitos:     e.remitos,
		Tesoreria:   e.tesoreria,
		JWT:         config.JWTConfig{Secret: "secreto-cli", Issuer: "sistema-gestion", Expiration: 5},
		PDFDir:      t.TempDir(),
		Log:         zerolog.Nop(),
		In:          strings.NewReader(entrada),
		Out:         e.out,
	}
	return e
}

func (e *entorno) run(args ...string) error {
	return cli.New(e.deps).Run(context.Background(), args)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCLI_SinArgumentosMuestraUso(t *testing.T) {
	e := nuevoEntorno(t, "")
	err := e.run()
	assert.ErrorIs(t, err, cli.ErrUso)
	assert.Contains(t, e.out.String(), "Uso: gestion")
}

func TestCLI_ComandoDesconocido(t *testing.T) {
	e := nuevoEntorno(t, "")
	assert.ErrorIs(t, e.run("facturar"), cli.ErrUso)
}

func TestCLI_ListadoClientesConFiltroYResumen(t *testing.T) {
	e := nuevoEntorno(t, "")
	require.NoError(t, e.run("clientes", "juan"))

	out := e.out.String()
	assert.Contains(t, out, "Juan Pérez")
	assert.NotContains(t, out, "Estancia La Paloma")
	assert.Contains(t, out, "Total: 2")
}

func TestCLI_ListadoConBackendCaidoDevuelveError(t *testing.T) {
	e := nuevoEntorno(t, "")
	e.clientes.errListar = domain.ErrBackendUnavailable

	err := e.run("clientes")
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	assert.Contains(t, e.out.String(), "No se pudo cargar el listado")
	assert.Contains(t, e.out.String(), "Total: 0")
}

func TestCLI_EliminarCanceladoNoLlamaAlBackend(t *testing.T) {
	e := nuevoEntorno(t, "n\n")
	require.NoError(t, e.run("eliminar-cliente", "2"))

	assert.Empty(t, e.clientes.eliminados)
	assert.Contains(t, e.out.String(), "¿Eliminar cliente? [s/N]")
	assert.Contains(t, e.out.String(), "Cancelado.")
}

func TestCLI_EliminarConfirmado(t *testing.T) {
	e := nuevoEntorno(t, "s\n")
	require.NoError(t, e.run("eliminar-cliente", "2"))

	assert.Equal(t, []int64{2}, e.clientes.eliminados)
	assert.Contains(t, e.out.String(), "Cliente eliminado.")
}

func TestCLI_IDInvalido(t *testing.T) {
	e := nuevoEntorno(t, "s\n")
	assert.ErrorIs(t, e.run("eliminar-cliente", "abc"), cli.ErrUso)
	assert.ErrorIs(t, e.run("cobrar"), cli.ErrUso)
}

func TestCLI_CobrarEgresoNoPermitido(t *testing.T) {
	e := nuevoEntorno(t, "s\n")
	err := e.run("cobrar", "21")

	assert.ErrorIs(t, err, domain.ErrAccionNoPermitida)
	assert.Empty(t, e.tesoreria.cobrados)
	assert.NotContains(t, e.out.String(), "[s/N]", "no se pregunta por una acción no disponible")
}

func TestCLI_CobrarIngreso(t *testing.T) {
	e := nuevoEntorno(t, "si\n")
	require.NoError(t, e.run("cobrar", "20"))
	assert.Equal(t, []int64{20}, e.tesoreria.cobrados)
}

func TestCLI_MovimientoConChequeSugiereVencimiento(t *testing.T) {
	e := nuevoEntorno(t, "")
	err := e.run("movimiento",
		"--tipo", "INGRESO", "--medio", "CHEQUE", "--importe", "1500,50", "--descripcion", "Cobro cheque",
		"--banco", "Nación", "--numero", "000123", "--librador", "Juan Pérez",
		"--emision", "2026-03-01", "--cobro", "2026-03-10",
	)
	require.NoError(t, err)
	require.Len(t, e.tesoreria.creados, 1)

	p := e.tesoreria.creados[0]
	assert.Equal(t, "1500.50", p.Importe.StringFixed(2))
	require.NotNil(t, p.FechaVencimiento)
	assert.Equal(t, "2026-04-09", p.FechaVencimiento.String())
	assert.Contains(t, e.out.String(), "2026-04-09")
}

func TestCLI_MovimientoInvalidoNoSeEnvia(t *testing.T) {
	e := nuevoEntorno(t, "")
	err := e.run("movimiento", "--importe", "0")

	var campos forms.FieldErrors
	require.True(t, errors.As(err, &campos))
	assert.Contains(t, campos, "importe")
	assert.Empty(t, e.tesoreria.creados)
}

func TestCLI_RemitoPDFSeGuardaConSuNombre(t *testing.T) {
	e := nuevoEntorno(t, "")
	require.NoError(t, e.run("remito-pdf", "7"))

	b, err := os.ReadFile(filepath.Join(e.deps.PDFDir, "remito_15.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(b))
}

func TestCLI_TokenFirmaElUsuario(t *testing.T) {
	e := nuevoEntorno(t, "")
	require.NoError(t, e.run("token", "mostrador"))

	usuario, err := jwt.Parse("secreto-cli", strings.TrimSpace(e.out.String()))
	require.NoError(t, err)
	assert.Equal(t, "mostrador", usuario)
}

func TestCLI_BuscarClienteUsaElSelector(t *testing.T) {
	e := nuevoEntorno(t, "")
	var recibidos int
	e.deps.ElegirCliente = func(cs []entity.Cliente, _ io.Reader, _ io.Writer) (entity.Cliente, bool, error) {
		recibidos = len(cs)
		return cs[1], true, nil
	}
	require.NoError(t, e.run("buscar-cliente"))

	assert.Equal(t, 2, recibidos)
	assert.Contains(t, e.out.String(), "Cliente 2: Juan Pérez")
}
