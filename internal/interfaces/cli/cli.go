// Package cli front end de terminal: listados con resumen, alertas, acciones
// con confirmación [s/N], alta de movimientos y descarga de remitos.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/home"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/listing"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/ports"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/pkg/config"
)

// ErrUso comando o argumentos inválidos.
var ErrUso = errors.New("uso incorrecto")

// Deps dependencias de la CLI.
type Deps struct {
	Clientes    ports.ClientesAPI
	Proveedores ports.ProveedoresAPI
	Productos   ports.ProductosAPI
	Ventas      ports.VentasAPI
	Remitos     ports.RemitosAPI
	Tesoreria   ports.TesoreriaAPI
	PDFLocal    ports.RemitoPDFGenerator
	Inicio      *home.DigestUseCase
	JWT         config.JWTConfig
	PDFDir      string
	Log         zerolog.Logger

	In  io.Reader
	Out io.Writer

	// ElegirCliente selector interactivo; nil deshabilita buscar-cliente.
	ElegirCliente func(clientes []entity.Cliente, in io.Reader, out io.Writer) (entity.Cliente, bool, error)
}

// CLI ejecuta un comando por invocación.
type CLI struct {
	d   Deps
	in  *bufio.Reader
	out io.Writer
	p   *message.Printer
}

// New construye la CLI.
func New(d Deps) *CLI {
	if d.PDFDir == "" {
		d.PDFDir = "."
	}
	return &CLI{
		d:   d,
		in:  bufio.NewReader(d.In),
		out: d.Out,
		p:   message.NewPrinter(language.MustParse("es-AR")),
	}
}

// Confirmar pregunta por la terminal; sólo "s" o "si" confirman.
func (c *CLI) Confirmar(mensaje string) bool {
	fmt.Fprintf(c.out, "%s [s/N] ", mensaje)
	linea, _ := c.in.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(linea)) {
	case "s", "si", "sí":
		return true
	}
	return false
}

var _ ports.Confirmador = (*CLI)(nil)

// Run despacha args (sin el nombre del programa).
func (c *CLI) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.uso()
		return ErrUso
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "clientes":
		return c.clientes(ctx, rest)
	case "proveedores":
		return c.proveedores(ctx, rest)
	case "productos", "mercaderia":
		return c.productos(ctx, rest)
	case "ventas":
		return c.ventas(ctx, rest)
	case "remitos":
		return c.remitos(ctx, rest)
	case "tesoreria":
		return c.tesoreria(ctx, rest)
	case "alertas":
		return c.alertas(ctx)
	case "remito-pdf":
		return c.remitoPDF(ctx, rest)
	case "cobrar":
		return c.conID(rest, func(id int64) error {
			p := listing.NewTesoreriaPage(c.d.Tesoreria, c, c.d.Log)
			return c.actuar(ctx, p.Cargar, func() (bool, error) { return p.Cobrar(ctx, id) }, "Movimiento cobrado.")
		})
	case "anular-movimiento":
		return c.conID(rest, func(id int64) error {
			p := listing.NewTesoreriaPage(c.d.Tesoreria, c, c.d.Log)
			return c.actuar(ctx, p.Cargar, func() (bool, error) { return p.Anular(ctx, id) }, "Movimiento anulado.")
		})
	case "anular-venta":
		return c.conID(rest, func(id int64) error {
			p := listing.NewVentasPage(c.d.Ventas, c.catalogos(), c, c.d.Log)
			return c.actuar(ctx, p.Cargar, func() (bool, error) { return p.Anular(ctx, id) }, "Venta anulada.")
		})
	case "eliminar-cliente":
		return c.conID(rest, func(id int64) error {
			p := listing.NewClientesPage(c.d.Clientes, c, c.d.Log)
			return c.actuar(ctx, nil, func() (bool, error) { return p.Eliminar(ctx, id) }, "Cliente eliminado.")
		})
	case "eliminar-proveedor":
		return c.conID(rest, func(id int64) error {
			p := listing.NewProveedoresPage(c.d.Proveedores, c, c.d.Log)
			return c.actuar(ctx, nil, func() (bool, error) { return p.Eliminar(ctx, id) }, "Proveedor eliminado.")
		})
	case "eliminar-producto":
		return c.conID(rest, func(id int64) error {
			p := listing.NewProductosPage(c.d.Productos, c, c.d.Log)
			return c.actuar(ctx, nil, func() (bool, error) { return p.Eliminar(ctx, id) }, "Producto eliminado.")
		})
	case "movimiento":
		return c.nuevoMovimiento(ctx, rest)
	case "buscar-cliente":
		return c.buscarCliente(ctx)
	case "token":
		return c.token(rest)
	case "ayuda", "help", "-h", "--help":
		c.uso()
		return nil
	default:
		c.uso()
		return fmt.Errorf("comando desconocido %q: %w", cmd, ErrUso)
	}
}

func (c *CLI) catalogos() listing.Catalogos {
	return listing.Catalogos{Productos: c.d.Productos, Clientes: c.d.Clientes}
}

// conID exige un único argumento numérico.
func (c *CLI) conID(args []string, fn func(id int64) error) error {
	if len(args) != 1 {
		return fmt.Errorf("se esperaba un id: %w", ErrUso)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("id inválido %q: %w", args[0], ErrUso)
	}
	return fn(id)
}

// actuar carga (si hace falta), pide confirmación y ejecuta.
func (c *CLI) actuar(ctx context.Context, cargar func(context.Context) error, fn func() (bool, error), ok string) error {
	if cargar != nil {
		if err := cargar(ctx); err != nil {
			return err
		}
	}
	hecho, err := fn()
	if err != nil {
		return err
	}
	if !hecho {
		fmt.Fprintln(c.out, "Cancelado.")
		return nil
	}
	fmt.Fprintln(c.out, ok)
	return nil
}

func (c *CLI) uso() {
	fmt.Fprint(c.out, `Uso: gestion <comando> [argumentos]

Listados (texto opcional para filtrar):
  clientes [buscar]
  proveedores [buscar]
  productos [--estado todos|activos|inactivos] [buscar]
  ventas [--estado COMPLETA|PENDIENTE|ANULADA] [--medio MEDIO] [buscar]
  remitos [buscar]
  tesoreria [--tipo INGRESO|EGRESO] [--medio MEDIO] [buscar]
  alertas

Acciones:
  remito-pdf <id> [--local]
  cobrar <id>
  anular-venta <id>
  anular-movimiento <id>
  eliminar-cliente <id> | eliminar-proveedor <id> | eliminar-producto <id>
  movimiento --tipo INGRESO --medio EFECTIVO --importe 1500 --descripcion "..."
  buscar-cliente
  token <usuario>
`)
}
