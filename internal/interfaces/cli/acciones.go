package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/listing"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/pkg/jwt"
)

// ── Alertas ───────────────────────────────────────────────────────────────────

func (c *CLI) alertas(ctx context.Context) error {
	if c.d.Inicio == nil {
		return errors.New("alertas no disponibles")
	}
	in := c.d.Inicio.Obtener(ctx)
	fmt.Fprintf(c.out, "Vencimientos · %s\n\n", in.Periodo)
	if !in.MostrarAlertas {
		fmt.Fprintln(c.out, "Sin vencimientos próximos.")
		return nil
	}
	if len(in.ProductosPorVencer) > 0 {
		fmt.Fprintln(c.out, "Productos (próximos 10 días)")
		w := c.tabla()
		fmt.Fprintln(w, "SKU\tNOMBRE\tVENCE\tDÍAS")
		for _, a := range in.ProductosPorVencer {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", a.SKU, a.Nombre, fecha(a.FechaVencimiento), a.Dias)
		}
		w.Flush()
		fmt.Fprintln(c.out)
	}
	if len(in.ChequesPorVencer) > 0 {
		fmt.Fprintln(c.out, "Cheques (próximos 15 días)")
		w := c.tabla()
		fmt.Fprintln(w, "BANCO\tNÚMERO\tLIBRADOR\tIMPORTE\tVENCE\tDÍAS")
		for _, a := range in.ChequesPorVencer {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n", guion(a.Banco), guion(a.NumeroCheque), guion(a.Librador),
				c.moneda(a.Importe), fecha(a.FechaVencimiento), a.Dias)
		}
		w.Flush()
	}
	return nil
}

// ── Remito PDF ────────────────────────────────────────────────────────────────

func (c *CLI) remitoPDF(ctx context.Context, args []string) error {
	local := false
	var ids []string
	for _, a := range args {
		switch a {
		case "--local", "-local":
			local = true
		default:
			ids = append(ids, a)
		}
	}
	return c.conID(ids, func(id int64) error {
		p := listing.NewRemitosPage(c.d.Remitos, c.catalogos(), c.d.PDFLocal, c, c.d.Log)
		if err := p.Cargar(ctx); err != nil {
			return err
		}
		generar := p.DescargarPDF
		if local {
			generar = p.GenerarPDFLocal
		}
		nombre, b, err := generar(ctx, id)
		if err != nil {
			return err
		}
		ruta := filepath.Join(c.d.PDFDir, nombre)
		if err := os.WriteFile(ruta, b, 0o644); err != nil {
			return fmt.Errorf("guardar %s: %w", ruta, err)
		}
		fmt.Fprintf(c.out, "Remito guardado en %s\n", ruta)
		return nil
	})
}

// ── Alta de movimiento ────────────────────────────────────────────────────────

func (c *CLI) nuevoMovimiento(ctx context.Context, args []string) error {
	p := listing.NewTesoreriaPage(c.d.Tesoreria, c, c.d.Log)
	f := p.AbrirNuevo()
	d := &f.Draft

	fs := flag.NewFlagSet("movimiento", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&d.Tipo, "tipo", d.Tipo, "INGRESO o EGRESO")
	fs.StringVar(&d.MedioPago, "medio", d.MedioPago, "medio de pago")
	fs.StringVar(&d.Importe, "importe", "", "importe")
	fs.StringVar(&d.Referencia, "referencia", "", "referencia")
	fs.StringVar(&d.Descripcion, "descripcion", "", "descripción")
	fs.StringVar(&d.Cheque.Banco, "banco", "", "banco del cheque")
	fs.StringVar(&d.Cheque.NumeroCheque, "numero", "", "número de cheque")
	fs.StringVar(&d.Cheque.Librador, "librador", "", "librador")
	fs.StringVar(&d.Cheque.FechaEmision, "emision", "", "fecha de emisión AAAA-MM-DD")
	fs.StringVar(&d.Cheque.FechaCobro, "cobro", "", "fecha de cobro AAAA-MM-DD")
	fs.StringVar(&d.Cheque.FechaVencimiento, "vencimiento", "", "fecha de vencimiento AAAA-MM-DD")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("movimiento: %v: %w", err, ErrUso)
	}
	d.Tipo = strings.ToUpper(strings.TrimSpace(d.Tipo))
	if m, ok := entity.ParseMedioPago(d.MedioPago); ok {
		d.MedioPago = string(m)
	}

	if f.ChequeAplica() && d.Cheque.SugerirVencimiento() {
		fmt.Fprintf(c.out, "Vencimiento del cheque: %s (cobro + 30 días)\n", d.Cheque.FechaVencimiento)
	}
	m, err := p.Guardar(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Movimiento %d registrado: %s %s\n", m.ID, m.Tipo, c.moneda(m.Importe))
	return nil
}

// ── Cliente ───────────────────────────────────────────────────────────────────

func (c *CLI) buscarCliente(ctx context.Context) error {
	if c.d.ElegirCliente == nil {
		return errors.New("selector de clientes no disponible")
	}
	clientes, err := c.d.Clientes.Listar(ctx)
	if err != nil {
		return err
	}
	cl, ok, err := c.d.ElegirCliente(clientes, c.in, c.out)
	if err != nil {
		return err
	}
	switch {
	case !ok:
		fmt.Fprintln(c.out, "Cancelado.")
	case cl.ID == 0:
		fmt.Fprintf(c.out, "Cliente sin registrar: %s\n", cl.Nombre)
	default:
		fmt.Fprintf(c.out, "Cliente %d: %s\n", cl.ID, cl.Nombre)
	}
	return nil
}

// ── Token ─────────────────────────────────────────────────────────────────────

func (c *CLI) token(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("se esperaba el usuario: %w", ErrUso)
	}
	tok, err := jwt.Generate(c.d.JWT.Secret, args[0], c.d.JWT.Issuer, c.d.JWT.Expiration)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, tok)
	return nil
}
