package importacion_test

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/dto"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/forms"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/importacion"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// ── Helpers ──

type productosFake struct {
	creados []dto.ProductoPayload
	errPor  map[string]error
}

func (p *productosFake) Crear(_ context.Context, payload dto.ProductoPayload) (*entity.Producto, error) {
	if err := p.errPor[payload.SKU]; err != nil {
		return nil, err
	}
	p.creados = append(p.creados, payload)
	return &entity.Producto{ID: int64(len(p.creados)), SKU: payload.SKU, Nombre: payload.Nombre}, nil
}

func (p *productosFake) Actualizar(_ context.Context, id int64, payload dto.ProductoPayload) (*entity.Producto, error) {
	panic("la importación sólo da altas")
}

func importar(t *testing.T, dest *productosFake, contenido string, latin1 bool) importacion.Resultado {
	t.Helper()
	im := importacion.NewImportador(dest, zerolog.Nop())
	im.Latin1 = latin1
	res, err := im.Importar(context.Background(), strings.NewReader(contenido))
	require.NoError(t, err)
	return res
}

// ── Tests ──

func TestImportar_FilasValidasConEncabezado(t *testing.T) {
	dest := &productosFake{}
	csv := "sku;nombre;precioCosto;precioVenta;stock;unidad;vencimiento\n" +
		"ALM-17;Alambre 17/15;8,50;10,00;120;rollo;\n" +
		"GLI-5;Glifosato 5L;20;32,75;12.9;bidón;2026-11-01\n"

	res := importar(t, dest, csv, false)

	assert.Equal(t, 2, res.Creados)
	assert.Empty(t, res.Rechazados)
	require.Len(t, dest.creados, 2)
	assert.Equal(t, "ALM-17", dest.creados[0].SKU)
	assert.True(t, decimal.RequireFromString("8.5").Equal(dest.creados[0].PrecioCosto))
	assert.True(t, dest.creados[0].FechaVencimiento.Vacia())
	assert.True(t, dest.creados[0].Activo)
	assert.Equal(t, int64(12), dest.creados[1].Stock)
	assert.Equal(t, "2026-11-01", dest.creados[1].FechaVencimiento.String())
}

func TestImportar_DecodificaLatin1(t *testing.T) {
	dest := &productosFake{}
	// "Tranquera caña" con ñ = 0xF1 en ISO-8859-1
	csv := "TRQ-1;Tranquera ca\xf1a;100;150;3;unidad;\n"

	res := importar(t, dest, csv, true)

	require.Equal(t, 1, res.Creados)
	assert.Equal(t, "Tranquera caña", dest.creados[0].Nombre)
}

func TestImportar_FilaInvalidaSeSaltea(t *testing.T) {
	dest := &productosFake{}
	csv := "ALM-17;Alambre;8;10;1;rollo;\n" +
		";Sin SKU;1;1;1;u;\n" +
		"VAR-1;Varilla;-3;5;1;u;\n" +
		"\n" +
		"# comentario\n" +
		"POS-1;Poste;1;2;3;u;no-es-fecha\n"

	res := importar(t, dest, csv, false)

	assert.Equal(t, 1, res.Creados)
	require.Len(t, res.Rechazados, 3)
	assert.Equal(t, 2, res.Rechazados[0].Linea)
	var fe forms.FieldErrors
	require.ErrorAs(t, res.Rechazados[0].Err, &fe)
	assert.Contains(t, fe, "sku")
	assert.Equal(t, "VAR-1", res.Rechazados[1].SKU)
	require.ErrorAs(t, res.Rechazados[1].Err, &fe)
	assert.Contains(t, fe, "precioCosto")
	assert.Equal(t, "POS-1", res.Rechazados[2].SKU)
}

func TestImportar_ConflictoDelBackendSeInforma(t *testing.T) {
	dest := &productosFake{errPor: map[string]error{"ALM-17": domain.ErrConflict}}
	csv := "ALM-17;Alambre;8;10;1;rollo;\nVAR-1;Varilla;3;5;1;u;\n"

	res := importar(t, dest, csv, false)

	assert.Equal(t, 1, res.Creados)
	require.Len(t, res.Rechazados, 1)
	assert.ErrorIs(t, res.Rechazados[0].Err, domain.ErrConflict)
}

func TestImportar_BackendCaidoCorta(t *testing.T) {
	dest := &productosFake{errPor: map[string]error{"VAR-1": domain.ErrBackendUnavailable}}
	csv := "ALM-17;Alambre;8;10;1;rollo;\nVAR-1;Varilla;3;5;1;u;\nPOS-1;Poste;1;2;3;u;\n"
	im := importacion.NewImportador(dest, zerolog.Nop())
	im.Latin1 = false

	res, err := im.Importar(context.Background(), strings.NewReader(csv))

	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	assert.Equal(t, 1, res.Creados)
	assert.Len(t, dest.creados, 1)
}
