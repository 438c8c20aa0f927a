package listing

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/dto"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/forms"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/ports"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/alertas"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/calculo"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// FiltroTesoreria texto sobre descripción, referencia o número de cheque; Tipo y Medio vacíos no filtran.
type FiltroTesoreria struct {
	Texto string
	Tipo  string
	Medio entity.MedioPago
}

// TesoreriaPage listado de movimientos de caja.
type TesoreriaPage struct {
	*pagina[entity.MovimientoTesoreria, dto.MovimientoPayload]
	api ports.TesoreriaAPI
}

// NewTesoreriaPage construye la página.
func NewTesoreriaPage(api ports.TesoreriaAPI, conf ports.Confirmador, log zerolog.Logger) *TesoreriaPage {
	return &TesoreriaPage{
		pagina: nuevaPagina[entity.MovimientoTesoreria, dto.MovimientoPayload]("tesoreria", api, conf,
			func(m entity.MovimientoTesoreria) int64 { return m.ID }, log),
		api: api,
	}
}

// Filtrar aplica texto, tipo y medio de pago.
func (p *TesoreriaPage) Filtrar(f FiltroTesoreria) []entity.MovimientoTesoreria {
	return p.Controller.Filtrar(func(m entity.MovimientoTesoreria) bool {
		if f.Tipo != "" && !strings.EqualFold(m.Tipo, strings.TrimSpace(f.Tipo)) {
			return false
		}
		if f.Medio != "" && m.MedioPago != f.Medio {
			return false
		}
		return Coincide(f.Texto, m.Descripcion, m.Referencia, m.NumeroCheque)
	})
}

// Filas movimientos filtrados con acciones habilitadas y resaltado de cheques próximos.
func (p *TesoreriaPage) Filas(f FiltroTesoreria) []dto.MovimientoFila {
	ahora := p.ahora()
	ms := p.Filtrar(f)
	out := make([]dto.MovimientoFila, 0, len(ms))
	for _, m := range ms {
		out = append(out, dto.MovimientoFila{
			MovimientoTesoreria: m,
			PuedeCobrar:         m.PuedeCobrar(),
			PuedeAnular:         m.PuedeAnular(),
			ChequeProximo:       alertas.ChequeProximo(m, ahora),
		})
	}
	return out
}

// Resumen importes y contadores sobre los movimientos no anulados.
func (p *TesoreriaPage) Resumen() dto.ResumenTesoreria {
	ahora := p.ahora()
	vigentes := make([]entity.MovimientoTesoreria, 0)
	for _, m := range p.Items() {
		if !m.Anulado {
			vigentes = append(vigentes, m)
		}
	}
	importeSi := func(ingreso bool) func(entity.MovimientoTesoreria) decimal.Decimal {
		return func(m entity.MovimientoTesoreria) decimal.Decimal {
			if m.EsIngreso() != ingreso {
				return decimal.Zero
			}
			return m.Importe
		}
	}
	ingresos := calculo.SumarPor(vigentes, importeSi(true))
	egresos := calculo.SumarPor(vigentes, importeSi(false))
	return dto.ResumenTesoreria{
		Ingresos:    ingresos,
		Egresos:     egresos,
		Saldo:       calculo.Redondear(ingresos.Sub(egresos)),
		Movimientos: len(vigentes),
		ChequesPendientes: calculo.ContarPor(vigentes, func(m entity.MovimientoTesoreria) bool {
			return m.EsCheque() && m.PuedeCobrar()
		}),
		ChequesProximos: calculo.ContarPor(vigentes, func(m entity.MovimientoTesoreria) bool {
			return alertas.ChequeProximo(m, ahora)
		}),
	}
}

// AbrirNuevo abre el formulario de alta.
func (p *TesoreriaPage) AbrirNuevo() *forms.MovimientoForm {
	f := forms.NuevoMovimientoForm(nil).ConReloj(p.ahora)
	p.abrir(f)
	return f
}

// AbrirEdicion un movimiento anulado no se edita.
func (p *TesoreriaPage) AbrirEdicion(id int64) (*forms.MovimientoForm, error) {
	m, err := p.porID(id)
	if err != nil {
		return nil, err
	}
	if !m.PuedeEditar() {
		return nil, fmt.Errorf("movimiento %d anulado: %w", id, domain.ErrAccionNoPermitida)
	}
	f := forms.NuevoMovimientoForm(&m).ConReloj(p.ahora)
	p.abrir(f)
	return f, nil
}

// Cobrar marca como cobrado un ingreso vigente.
func (p *TesoreriaPage) Cobrar(ctx context.Context, id int64) (bool, error) {
	m, err := p.porID(id)
	if err != nil {
		return false, err
	}
	if !m.PuedeCobrar() {
		return false, fmt.Errorf("movimiento %d no se puede cobrar: %w", id, domain.ErrAccionNoPermitida)
	}
	return p.accion(ctx, "¿Marcar este movimiento como cobrado?", func(ctx context.Context) error {
		return p.api.Cobrar(ctx, id)
	})
}

// Anular reemplaza el registro completo con anulado=true; no hay endpoint propio.
func (p *TesoreriaPage) Anular(ctx context.Context, id int64) (bool, error) {
	m, err := p.porID(id)
	if err != nil {
		return false, err
	}
	if !m.PuedeAnular() {
		return false, fmt.Errorf("movimiento %d ya anulado: %w", id, domain.ErrAccionNoPermitida)
	}
	return p.accion(ctx, "¿Anular este movimiento?", func(ctx context.Context) error {
		payload := dto.MovimientoDesdeEntidad(m)
		payload.Anulado = true
		_, err := p.api.Actualizar(ctx, id, payload)
		return err
	})
}
