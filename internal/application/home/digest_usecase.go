// Package home arma la pantalla de inicio: accesos a los módulos y los
// resúmenes de productos y cheques próximos a vencer.
package home

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/dto"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/ports"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/alertas"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/calculo"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// Modulos accesos directos de la pantalla de inicio, en el orden en que se muestran.
var Modulos = []dto.ModuloDTO{
	{Nombre: "Mercadería", Descripcion: "Carga de productos y stock", Ruta: "/mercaderia"},
	{Nombre: "Ventas", Descripcion: "Registrar ventas e historial", Ruta: "/ventas"},
	{Nombre: "Clientes", Descripcion: "Datos de contacto", Ruta: "/clientes"},
	{Nombre: "Remitos", Descripcion: "Gestión de remitos", Ruta: "/remitos"},
	{Nombre: "Proveedores", Descripcion: "Datos de contacto", Ruta: "/proveedores"},
	{Nombre: "Tesorería", Descripcion: "Movimientos del negocio", Ruta: "/tesoreria"},
}

// DigestUseCase resumen de vencimientos para la pantalla de inicio.
//
// Fuentes: listado de productos y listado de tesorería. Un listado que falla
// se trata como vacío; el inicio nunca muestra una página de error.
type DigestUseCase struct {
	productos ports.Listable[entity.Producto]
	tesoreria ports.Listable[entity.MovimientoTesoreria]
	log       zerolog.Logger
	ahora     func() time.Time
}

// NewDigestUseCase construye el caso de uso.
func NewDigestUseCase(
	productos ports.Listable[entity.Producto],
	tesoreria ports.Listable[entity.MovimientoTesoreria],
	log zerolog.Logger,
) *DigestUseCase {
	return &DigestUseCase{
		productos: productos,
		tesoreria: tesoreria,
		log:       log.With().Str("modulo", "inicio").Logger(),
		ahora:     time.Now,
	}
}

// ConReloj reemplaza el reloj.
func (uc *DigestUseCase) ConReloj(ahora func() time.Time) *DigestUseCase {
	uc.ahora = ahora
	return uc
}

// Obtener construye el InicioDTO.
//
// Dos pedidos en paralelo:
//  1. productos  → vencen en 0 a 10 días
//  2. tesorería  → cheques vigentes que vencen en 0 a 15 días
func (uc *DigestUseCase) Obtener(ctx context.Context) *dto.InicioDTO {
	now := uc.ahora()

	type productosResult struct {
		items []entity.Producto
		err   error
	}
	type movimientosResult struct {
		items []entity.MovimientoTesoreria
		err   error
	}

	productosCh := make(chan productosResult, 1)
	movimientosCh := make(chan movimientosResult, 1)

	go func() {
		ps, err := uc.productos.Listar(ctx)
		productosCh <- productosResult{ps, err}
	}()
	go func() {
		ms, err := uc.tesoreria.Listar(ctx)
		movimientosCh <- movimientosResult{ms, err}
	}()

	prods := <-productosCh
	movs := <-movimientosCh

	if prods.err != nil {
		uc.log.Warn().Err(prods.err).Msg("inicio: no se pudieron traer los productos")
		prods.items = nil
	}
	if movs.err != nil {
		uc.log.Warn().Err(movs.err).Msg("inicio: no se pudieron traer los movimientos")
		movs.items = nil
	}

	// ── Construir DTO ──────────────────────────────────────────────────────────
	out := &dto.InicioDTO{
		ProductosPorVencer: dto.AlertasProductos(alertas.ProductosEnVentana(prods.items, now, alertas.VentanaInicioProductos)),
		ChequesPorVencer:   make([]dto.AlertaChequeDTO, 0),
		Modulos:            Modulos,
		Periodo:            calculo.EtiquetaMes(now),
	}
	for _, a := range alertas.ChequesEnVentana(movs.items, now, alertas.VentanaInicioCheques) {
		m := a.Movimiento
		out.ChequesPorVencer = append(out.ChequesPorVencer, dto.AlertaChequeDTO{
			ID:               m.ID,
			Banco:            m.Banco,
			NumeroCheque:     m.NumeroCheque,
			Librador:         m.Librador,
			Importe:          m.Importe,
			MedioPago:        m.MedioPago,
			FechaVencimiento: m.FechaVencimiento,
			Dias:             a.Dias,
		})
	}
	out.MostrarAlertas = len(out.ProductosPorVencer) > 0 || len(out.ChequesPorVencer) > 0
	return out
}
