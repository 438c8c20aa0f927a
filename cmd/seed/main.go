// seed carga el catálogo inicial de productos desde la planilla del sistema anterior.
//
// Uso: go run ./cmd/seed [ruta/productos.csv]
// Por defecto busca productos.csv en el directorio actual. La planilla va
// separada por ';' y codificada en ISO-8859-1, con las columnas
// sku;nombre;precioCosto;precioVenta;stock;unidad;vencimiento
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/importacion"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/infrastructure/backend"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/pkg/config"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/pkg/logger"
)

func main() {
	csvPath := "productos.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Out: os.Stderr})

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir planilla: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	client, err := backend.NewClient(cfg.Backend, log.Componente("backend"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cliente del backend: %v\n", err)
		os.Exit(1)
	}
	api := backend.NewAPI(client)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := importacion.NewImportador(api.Productos, log.Componente("seed")).Importar(ctx, f)
	for _, r := range res.Rechazados {
		fmt.Printf("línea %d (%s): %v\n", r.Linea, r.SKU, r.Err)
	}
	fmt.Printf("Productos creados: %d, rechazados: %d\n", res.Creados, len(res.Rechazados))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Importación interrumpida: %v\n", err)
		os.Exit(1)
	}
}
