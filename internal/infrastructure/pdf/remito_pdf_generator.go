// Package pdf genera localmente la representación impresa de un remito.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                 REMITO   N° n   Fecha dd/mm/aaaa             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS DEL CLIENTE: Nombre / Dirección / CP / Condición IVA  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: CANTIDAD | DESCRIPCIÓN                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Observaciones                                               │
//	│  TOTAL A PAGAR: $ ______            Firma: ____________      │
//	│  Leyenda                                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/ports"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/calculo"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// Verificar en tiempo de compilación que MarotoRemitoGenerator implementa el puerto.
var _ ports.RemitoPDFGenerator = (*MarotoRemitoGenerator)(nil)

// Leyenda al pie de cada remito.
const Leyenda = "PRECIOS EN PESOS ARGENTINOS - DOCUMENTO NO VÁLIDO COMO FACTURA"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 34, Green: 110, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoRemitoGenerator implementa ports.RemitoPDFGenerator usando Maroto v2.
type MarotoRemitoGenerator struct {
	negocio string
}

// NewMarotoRemitoGenerator construye el generador; negocio figura como autor del documento.
func NewMarotoRemitoGenerator(negocio string) *MarotoRemitoGenerator {
	return &MarotoRemitoGenerator{negocio: negocio}
}

// GenerarRemitoPDF genera el PDF y devuelve sus bytes.
func (g *MarotoRemitoGenerator) GenerarRemitoPDF(_ context.Context, remito *entity.Remito) ([]byte, error) {
	if remito == nil {
		return nil, fmt.Errorf("pdf: remito nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(fmt.Sprintf("Remito N° %d", remito.Numero), true).
		WithAuthor(g.negocio, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(remito))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRows(remito)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(remito.Items)...)

	m.AddRows(row.New(6))
	m.AddRows(observacionesRows(remito.Observaciones)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.5}))
	m.AddRows(cierreRows()...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título centrado, número y fecha.
func headerRow(r *entity.Remito) core.Row {
	fecha := "-"
	if !r.Fecha.Vacia() {
		fecha = calculo.FormatearFecha(r.Fecha.Time)
	}
	return row.New(24).Add(
		col.New(12).Add(
			text.New("REMITO", props.Text{
				Style: fontstyle.Bold, Size: 18, Align: align.Center, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %d", r.Numero), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 10,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 9, Align: align.Center, Top: 17, Color: colorGray,
			}),
		),
	)
}

// clienteRows: bloque DATOS DEL CLIENTE con etiqueta y valor por fila.
func clienteRows(r *entity.Remito) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("DATOS DEL CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	datos := [][2]string{
		{"Nombre:", r.NombreDestinatario()},
		{"Dirección:", r.ClienteDireccion},
		{"Código Postal:", r.ClienteCodigoPostal},
		{"Condición IVA:", entity.EtiquetaAclaracion(r.ClienteAclaracion)},
	}
	for _, d := range datos {
		rows = append(rows, row.New(6).Add(
			col.New(3).Add(text.New(d[0], props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
			col.New(9).Add(text.New(d[1], props.Text{Size: 9, Top: 1})),
		))
	}
	return rows
}

// tableHeaderRow: cabecera de la tabla de items.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("CANTIDAD", 2, align.Center),
		h("DESCRIPCIÓN", 10, align.Left),
	)
}

// tableDetailRows: una fila por item. Sin producto se imprimen las notas.
func tableDetailRows(items []entity.RemitoItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				calculo.FormatearCantidad(it.Cantidad),
				props.Text{Size: 9, Align: align.Center, Top: 1},
			)),
			col.New(10).Add(text.New(
				descripcionItem(it),
				props.Text{Size: 9, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

func descripcionItem(it entity.RemitoItem) string {
	if it.Producto != nil && it.Producto.Nombre != "" {
		return it.Producto.Nombre
	}
	return it.Notas
}

// observacionesRows: se omite el bloque si no hay observaciones.
func observacionesRows(obs string) []core.Row {
	obs = strings.TrimSpace(obs)
	if obs == "" {
		return nil
	}
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("Observaciones:", props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
		)),
	}
	for _, l := range splitEvery(obs, 80) {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("• "+l, props.Text{Size: 9, Top: 0.5}),
		)))
	}
	return append(rows, row.New(3))
}

// cierreRows: total a completar a mano, firma y leyenda.
func cierreRows() []core.Row {
	return []core.Row{
		row.New(12).Add(
			col.New(7).Add(text.New("TOTAL A PAGAR: $ ___________________", props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 4,
			})),
			col.New(5).Add(text.New("Firma: ______________________", props.Text{
				Size: 10, Align: align.Right, Top: 4,
			})),
		),
		row.New(10),
		row.New(6).Add(col.New(12).Add(
			text.New(Leyenda, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: colorGray,
			}),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

// splitEvery divide s en trozos de a lo sumo n runas.
func splitEvery(s string, n int) []string {
	var parts []string
	rs := []rune(s)
	for len(rs) > n {
		parts = append(parts, string(rs[:n]))
		rs = rs[n:]
	}
	if len(rs) > 0 {
		parts = append(parts, string(rs))
	}
	return parts
}
