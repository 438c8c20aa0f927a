package listing

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/dto"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/forms"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/ports"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/calculo"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// FiltroVentas texto sobre número interno o cliente; Estado y Medio vacíos no filtran.
type FiltroVentas struct {
	Texto  string
	Estado string
	Medio  entity.MedioPago
}

// VentasPage listado de ventas.
type VentasPage struct {
	*pagina[entity.Venta, dto.VentaPayload]
	api       ports.VentasAPI
	catalogos Catalogos
}

// NewVentasPage construye la página.
func NewVentasPage(api ports.VentasAPI, catalogos Catalogos, conf ports.Confirmador, log zerolog.Logger) *VentasPage {
	return &VentasPage{
		pagina: nuevaPagina[entity.Venta, dto.VentaPayload]("ventas", api, conf,
			func(v entity.Venta) int64 { return v.ID }, log),
		api:       api,
		catalogos: catalogos,
	}
}

// Filtrar aplica texto, estado y medio de pago.
func (p *VentasPage) Filtrar(f FiltroVentas) []entity.Venta {
	return p.Controller.Filtrar(func(v entity.Venta) bool {
		if f.Estado != "" && !strings.EqualFold(estadoVenta(v), strings.TrimSpace(f.Estado)) {
			return false
		}
		if f.Medio != "" && v.MedioPago != f.Medio {
			return false
		}
		return Coincide(f.Texto, strconv.FormatInt(v.NumeroInterno, 10), v.NombreCliente)
	})
}

// estadoVenta una venta con el flag anulada se lista como ANULADA aunque el estado diga otra cosa.
func estadoVenta(v entity.Venta) string {
	if v.EstaAnulada() {
		return entity.VentaAnulada
	}
	return v.Estado
}

// Filas ventas filtradas con resumen de items y acciones.
func (p *VentasPage) Filas(f FiltroVentas) []dto.VentaFila {
	vs := p.Filtrar(f)
	out := make([]dto.VentaFila, 0, len(vs))
	for _, v := range vs {
		out = append(out, dto.VentaFila{Venta: v, ResumenItems: v.ResumenItems(), PuedeAnular: v.PuedeAnular()})
	}
	return out
}

// Resumen los ingresos excluyen las ventas anuladas.
func (p *VentasPage) Resumen() dto.ResumenVentas {
	ahora := p.ahora()
	vs := p.Items()
	return dto.ResumenVentas{
		Total: len(vs),
		Ingresos: calculo.SumarPor(vs, func(v entity.Venta) decimal.Decimal {
			if v.EstaAnulada() {
				return decimal.Zero
			}
			return v.Total
		}),
		VentasHoy: calculo.ContarPor(vs, func(v entity.Venta) bool {
			return !v.EstaAnulada() && !v.Fecha.Vacia() && calculo.MismoDia(v.Fecha.Time, ahora)
		}),
		Anuladas: calculo.ContarPor(vs, entity.Venta.EstaAnulada),
	}
}

// AbrirNuevo trae los catálogos y abre el formulario de alta.
func (p *VentasPage) AbrirNuevo(ctx context.Context) *forms.VentaForm {
	productos, clientes := p.catalogos.cargar(ctx, p.log)
	f := forms.NuevoVentaForm(nil, productos, clientes)
	p.abrir(f)
	return f
}

// AbrirEdicion una venta anulada no se edita.
func (p *VentasPage) AbrirEdicion(ctx context.Context, id int64) (*forms.VentaForm, error) {
	v, err := p.porID(id)
	if err != nil {
		return nil, err
	}
	if !v.PuedeEditar() {
		return nil, fmt.Errorf("venta %d anulada: %w", id, domain.ErrAccionNoPermitida)
	}
	productos, clientes := p.catalogos.cargar(ctx, p.log)
	f := forms.NuevoVentaForm(&v, productos, clientes)
	p.abrir(f)
	return f, nil
}

// Anular confirma, anula y recarga. Sólo para ventas vigentes.
func (p *VentasPage) Anular(ctx context.Context, id int64) (bool, error) {
	v, err := p.porID(id)
	if err != nil {
		return false, err
	}
	if !v.PuedeAnular() {
		return false, fmt.Errorf("venta %d ya anulada: %w", id, domain.ErrAccionNoPermitida)
	}
	return p.accion(ctx, "¿Anular esta venta?", func(ctx context.Context) error {
		return p.api.Anular(ctx, id)
	})
}
