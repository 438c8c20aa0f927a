package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/home"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/infrastructure/backend"
	infrapdf "github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/infrastructure/pdf"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/interfaces/cli"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/interfaces/tui"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/pkg/config"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	// los logs van a stderr para no mezclarse con los listados
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		Out:   os.Stderr,
	})

	client, err := backend.NewClient(cfg.Backend, log.Componente("backend"))
	if err != nil {
		log.Fatal().Err(err).Msg("cliente del backend")
	}
	api := backend.NewAPI(client)

	app := cli.New(cli.Deps{
		Clientes:      api.Clientes,
		Proveedores:   api.Proveedores,
		Productos:     api.Productos,
		Ventas:        api.Ventas,
		Remitos:       api.Remitos,
		Tesoreria:     api.Tesoreria,
		PDFLocal:      infrapdf.NewMarotoRemitoGenerator(cfg.App.Name),
		Inicio:        home.NewDigestUseCase(api.Productos, api.Tesoreria, log.Zerolog()),
		JWT:           cfg.JWT,
		PDFDir:        cfg.PDF.Dir,
		Log:           log.Componente("cli"),
		In:            os.Stdin,
		Out:           os.Stdout,
		ElegirCliente: tui.Elegir,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, cli.ErrUso) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
