package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/listing"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/calculo"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// filtro argumentos de un listado: flags opcionales y el resto como texto.
type filtro struct {
	texto  string
	estado string
	tipo   string
	medio  entity.MedioPago
}

func parseFiltro(nombre string, args []string, conEstado, conTipo, conMedio bool) (filtro, error) {
	fs := flag.NewFlagSet(nombre, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var estado, tipo, medio string
	if conEstado {
		fs.StringVar(&estado, "estado", "", "estado")
	}
	if conTipo {
		fs.StringVar(&tipo, "tipo", "", "tipo")
	}
	if conMedio {
		fs.StringVar(&medio, "medio", "", "medio de pago")
	}
	if err := fs.Parse(args); err != nil {
		return filtro{}, fmt.Errorf("%s: %v: %w", nombre, err, ErrUso)
	}
	f := filtro{
		texto:  strings.Join(fs.Args(), " "),
		estado: strings.ToUpper(strings.TrimSpace(estado)),
		tipo:   strings.ToUpper(strings.TrimSpace(tipo)),
	}
	if medio != "" {
		m, ok := entity.ParseMedioPago(medio)
		if !ok {
			return filtro{}, fmt.Errorf("medio de pago desconocido %q: %w", medio, ErrUso)
		}
		f.medio = m
	}
	return f, nil
}

func (c *CLI) tabla() *tabwriter.Writer {
	return tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
}

func (c *CLI) moneda(d decimal.Decimal) string {
	return c.p.Sprintf("$ %.2f", d.InexactFloat64())
}

// avisoCarga un listado que no cargó se muestra vacío con el motivo.
func (c *CLI) avisoCarga(err error) {
	if err != nil {
		fmt.Fprintf(c.out, "No se pudo cargar el listado: %v\n\n", err)
	}
}

func fecha(f entity.Fecha) string {
	if f.Vacia() {
		return "-"
	}
	return calculo.FormatearFecha(f.Time)
}

func fechaHora(f entity.FechaHora) string {
	if f.Vacia() {
		return "-"
	}
	return calculo.FormatearFecha(f.Time)
}

func guion(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// ── Clientes ──────────────────────────────────────────────────────────────────

func (c *CLI) clientes(ctx context.Context, args []string) error {
	p := listing.NewClientesPage(c.d.Clientes, c, c.d.Log)
	err := p.Cargar(ctx)
	c.avisoCarga(err)

	w := c.tabla()
	fmt.Fprintln(w, "ID\tNOMBRE\tDOCUMENTO\tTELÉFONO\tEMAIL")
	for _, cl := range p.Filtrar(strings.Join(args, " ")) {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", cl.ID, cl.Nombre, guion(cl.Documento), guion(cl.Telefono), guion(cl.Email))
	}
	w.Flush()

	r := p.Resumen()
	c.p.Fprintf(c.out, "\nTotal: %d · Con email: %d · Con teléfono: %d · Con documento: %d\n",
		r.Total, r.ConEmail, r.ConTelefono, r.ConDocumento)
	return err
}

// ── Proveedores ───────────────────────────────────────────────────────────────

func (c *CLI) proveedores(ctx context.Context, args []string) error {
	p := listing.NewProveedoresPage(c.d.Proveedores, c, c.d.Log)
	err := p.Cargar(ctx)
	c.avisoCarga(err)

	w := c.tabla()
	fmt.Fprintln(w, "ID\tNOMBRE\tCUIT\tCONDICIÓN IVA\tEMAIL")
	for _, pr := range p.Filtrar(strings.Join(args, " ")) {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", pr.ID, pr.Nombre, guion(pr.Cuit), guion(pr.CondicionIva), guion(pr.Email))
	}
	w.Flush()

	r := p.Resumen()
	c.p.Fprintf(c.out, "\nTotal: %d · Con email: %d · Con CUIT: %d · Responsables inscriptos: %d\n",
		r.Total, r.ConEmail, r.ConCuit, r.ResponsablesInscriptos)
	return err
}

// ── Mercadería ────────────────────────────────────────────────────────────────

func (c *CLI) productos(ctx context.Context, args []string) error {
	f, err := parseFiltro("productos", args, true, false, false)
	if err != nil {
		return err
	}
	p := listing.NewProductosPage(c.d.Productos, c, c.d.Log)
	errCarga := p.Cargar(ctx)
	c.avisoCarga(errCarga)

	if p.AlertaVisible() {
		fmt.Fprintf(c.out, "Atención: %d producto(s) vencen en los próximos 29 días.\n\n", len(p.Proximos()))
	}

	w := c.tabla()
	fmt.Fprintln(w, "ID\tSKU\tNOMBRE\tPRECIO VENTA\tSTOCK\tVENCE\tESTADO")
	for _, fila := range p.Filas(listing.FiltroProductos{Texto: f.texto, Estado: strings.ToLower(f.estado)}) {
		estado := "Activo"
		if !fila.Activo {
			estado = "Inactivo"
		}
		vence := fecha(fila.FechaVencimiento)
		if fila.DiasParaVencer != nil {
			vence = fmt.Sprintf("%s (%s)", vence, fila.EstadoVencimiento)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\t%s\n", fila.ID, fila.SKU, fila.Nombre,
			c.moneda(fila.PrecioVenta), fila.StockEntero(), vence, estado)
	}
	w.Flush()

	r := p.Resumen()
	c.p.Fprintf(c.out, "\nTotal: %d · Activos: %d · Con stock: %d · Sin stock: %d · Por vencer: %d · Vencidos: %d\n",
		r.Total, r.Activos, r.ConStock, r.SinStock, r.PorVencer, r.Vencidos)
	return errCarga
}

// ── Ventas ────────────────────────────────────────────────────────────────────

func (c *CLI) ventas(ctx context.Context, args []string) error {
	f, err := parseFiltro("ventas", args, true, false, true)
	if err != nil {
		return err
	}
	p := listing.NewVentasPage(c.d.Ventas, c.catalogos(), c, c.d.Log)
	errCarga := p.Cargar(ctx)
	c.avisoCarga(errCarga)

	w := c.tabla()
	fmt.Fprintln(w, "ID\tN°\tFECHA\tCLIENTE\tITEMS\tMEDIO\tTOTAL\tESTADO")
	for _, fila := range p.Filas(listing.FiltroVentas{Texto: f.texto, Estado: f.estado, Medio: f.medio}) {
		estado := fila.Estado
		if fila.EstaAnulada() {
			estado = entity.VentaAnulada
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n", fila.ID, fila.NumeroInterno, fechaHora(fila.Fecha),
			fila.NombreCliente, fila.ResumenItems, fila.MedioPago.Etiqueta(), c.moneda(fila.Total), estado)
	}
	w.Flush()

	r := p.Resumen()
	c.p.Fprintf(c.out, "\nTotal: %d · Ingresos: %s · Ventas de hoy: %d · Anuladas: %d\n",
		r.Total, c.moneda(r.Ingresos), r.VentasHoy, r.Anuladas)
	return errCarga
}

// ── Remitos ───────────────────────────────────────────────────────────────────

func (c *CLI) remitos(ctx context.Context, args []string) error {
	p := listing.NewRemitosPage(c.d.Remitos, c.catalogos(), c.d.PDFLocal, c, c.d.Log)
	err := p.Cargar(ctx)
	c.avisoCarga(err)

	w := c.tabla()
	fmt.Fprintln(w, "ID\tN°\tFECHA\tDESTINATARIO\tITEMS\tPDF")
	for _, fila := range p.Filas(strings.Join(args, " ")) {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\n", fila.ID, fila.Numero, fechaHora(fila.Fecha),
			guion(fila.NombreDestinatario()), fila.ResumenItems, fila.ArchivoPDF)
	}
	w.Flush()

	r := p.Resumen()
	c.p.Fprintf(c.out, "\nTotal: %d · Con cliente: %d · De hoy: %d · Este mes: %d\n",
		r.Total, r.ConCliente, r.Hoy, r.EsteMes)
	return err
}

// ── Tesorería ─────────────────────────────────────────────────────────────────

func (c *CLI) tesoreria(ctx context.Context, args []string) error {
	f, err := parseFiltro("tesoreria", args, false, true, true)
	if err != nil {
		return err
	}
	p := listing.NewTesoreriaPage(c.d.Tesoreria, c, c.d.Log)
	errCarga := p.Cargar(ctx)
	c.avisoCarga(errCarga)

	w := c.tabla()
	fmt.Fprintln(w, "ID\tFECHA\tTIPO\tMEDIO\tDESCRIPCIÓN\tIMPORTE\tESTADO\t")
	for _, fila := range p.Filas(listing.FiltroTesoreria{Texto: f.texto, Tipo: f.tipo, Medio: f.medio}) {
		estado := "Pendiente"
		switch {
		case fila.Anulado:
			estado = "Anulado"
		case fila.Cobrado:
			estado = "Cobrado"
		}
		marca := ""
		if fila.ChequeProximo {
			marca = "vence pronto"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n", fila.ID, fechaHora(fila.Fecha), fila.Tipo,
			fila.MedioPago.Etiqueta(), guion(fila.Descripcion), c.moneda(fila.Importe), estado, marca)
	}
	w.Flush()

	r := p.Resumen()
	c.p.Fprintf(c.out, "\nIngresos: %s · Egresos: %s · Saldo: %s\nMovimientos: %d · Cheques pendientes: %d · Cheques próximos: %d\n",
		c.moneda(r.Ingresos), c.moneda(r.Egresos), c.moneda(r.Saldo), r.Movimientos, r.ChequesPendientes, r.ChequesProximos)
	return errCarga
}
