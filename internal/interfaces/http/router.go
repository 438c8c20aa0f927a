package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/home"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/listing"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/ports"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Clientes    ports.ClientesAPI
	Proveedores ports.ProveedoresAPI
	Productos   ports.ProductosAPI
	Ventas      ports.VentasAPI
	Remitos     ports.RemitosAPI
	Tesoreria   ports.TesoreriaAPI
	PDFLocal    ports.RemitoPDFGenerator
	Inicio      *home.DigestUseCase
	Log         zerolog.Logger
	// JWTSecret vacío deja el panel sin autenticación
	JWTSecret string
}

// Router registra las rutas del panel.
func Router(app *fiber.App, deps RouterDeps) {
	var panel fiber.Router = app.Group("/panel")
	if deps.JWTSecret != "" {
		panel = app.Group("/panel", AuthMiddleware(deps.JWTSecret))
	}

	catalogos := listing.Catalogos{Productos: deps.Productos, Clientes: deps.Clientes}

	// Inicio
	panel.Get("/home", NewInicioHandler(deps.Inicio).Get)

	// Clientes (sugerencias antes de /:id)
	clientes := panel.Group("/clientes")
	clienteHandler := NewClientesHandler(deps.Clientes, deps.Log)
	clientes.Get("/sugerencias", clienteHandler.Sugerencias)
	clientes.Get("/", clienteHandler.List)
	clientes.Post("/", clienteHandler.Create)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Proveedores
	proveedores := panel.Group("/proveedores")
	proveedorHandler := NewProveedoresHandler(deps.Proveedores, deps.Log)
	proveedores.Get("/", proveedorHandler.List)
	proveedores.Post("/", proveedorHandler.Create)
	proveedores.Put("/:id", proveedorHandler.Update)
	proveedores.Delete("/:id", proveedorHandler.Delete)

	// Productos (mercadería)
	productos := panel.Group("/productos")
	productoHandler := NewProductosHandler(deps.Productos, deps.Log)
	productos.Get("/por-vencer", productoHandler.PorVencer)
	productos.Get("/", productoHandler.List)
	productos.Post("/", productoHandler.Create)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	// Ventas
	ventas := panel.Group("/ventas")
	ventaHandler := NewVentasHandler(deps.Ventas, catalogos, deps.Log)
	ventas.Get("/", ventaHandler.List)
	ventas.Post("/", ventaHandler.Create)
	ventas.Put("/:id", ventaHandler.Update)
	ventas.Put("/:id/anular", ventaHandler.Anular)

	// Remitos
	remitos := panel.Group("/remitos")
	remitoHandler := NewRemitosHandler(deps.Remitos, catalogos, deps.PDFLocal, deps.Log)
	remitos.Get("/", remitoHandler.List)
	remitos.Post("/", remitoHandler.Create)
	remitos.Put("/:id", remitoHandler.Update)
	remitos.Get("/:id/pdf", remitoHandler.PDF)

	// Tesorería
	tesoreria := panel.Group("/tesoreria")
	tesoreriaHandler := NewTesoreriaHandler(deps.Tesoreria, deps.Log)
	tesoreria.Get("/", tesoreriaHandler.List)
	tesoreria.Post("/", tesoreriaHandler.Create)
	tesoreria.Put("/:id", tesoreriaHandler.Update)
	tesoreria.Put("/:id/cobrar", tesoreriaHandler.Cobrar)
	tesoreria.Put("/:id/anular", tesoreriaHandler.Anular)
}
