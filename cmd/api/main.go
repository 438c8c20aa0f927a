package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/home"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/infrastructure/backend"
	infrapdf "github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/infrastructure/pdf"
	httpRouter "github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/interfaces/http"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/pkg/config"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.URL).
		Msg("iniciando panel")

	client, err := backend.NewClient(cfg.Backend, log.Componente("backend"))
	if err != nil {
		log.Fatal().Err(err).Msg("cliente del backend")
	}
	api := backend.NewAPI(client)

	// PDF local del remito, para cuando el backend no lo puede generar
	pdfGenerator := infrapdf.NewMarotoRemitoGenerator(cfg.App.Name)
	inicioUC := home.NewDigestUseCase(api.Productos, api.Tesoreria, log.Zerolog())

	app := fiber.New(fiber.Config{
		AppName:     cfg.App.Name,
		ReadTimeout: time.Second * 10,
		IdleTimeout: time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Panel de gestión",
		}))
	} else {
		log.Warn().Str("archivo", swaggerFile).Msg("swagger no disponible")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Clientes:    api.Clientes,
		Proveedores: api.Proveedores,
		Productos:   api.Productos,
		Ventas:      api.Ventas,
		Remitos:     api.Remitos,
		Tesoreria:   api.Tesoreria,
		PDFLocal:    pdfGenerator,
		Inicio:      inicioUC,
		Log:         log.Componente("panel"),
		JWTSecret:   cfg.JWT.Secret,
	})
	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: el panel no pide autenticación")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("panel detenido")
}
