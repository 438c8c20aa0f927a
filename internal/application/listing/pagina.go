package listing

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/forms"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/ports"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain"
)

// pagina comportamiento compartido: listado, formulario modal y acciones con confirmación.
type pagina[T any, P any] struct {
	*Controller[T]
	destino ports.Guardable[T, P]
	conf    ports.Confirmador
	idDe    func(T) int64
	ahora   func() time.Time

	// formulario abierto; a lo sumo uno por página
	form forms.Formulario[P]
}

func nuevaPagina[T any, P any](
	nombre string,
	api ports.Recurso[T, P],
	conf ports.Confirmador,
	idDe func(T) int64,
	log zerolog.Logger,
) *pagina[T, P] {
	if conf == nil {
		conf = ports.SiempreConfirmar
	}
	return &pagina[T, P]{
		Controller: NewController[T](nombre, api, log),
		destino:    api,
		conf:       conf,
		idDe:       idDe,
		ahora:      time.Now,
	}
}

// FormAbierto indica si hay un formulario modal abierto.
func (p *pagina[T, P]) FormAbierto() bool { return p.form != nil }

// Cerrar descarta el borrador.
func (p *pagina[T, P]) Cerrar() { p.form = nil }

func (p *pagina[T, P]) abrir(f forms.Formulario[P]) { p.form = f }

// Guardar envía el formulario abierto. Si sale bien lo cierra y recarga el
// listado; si falla el formulario queda abierto para reintentar.
func (p *pagina[T, P]) Guardar(ctx context.Context) (*T, error) {
	if p.form == nil {
		return nil, fmt.Errorf("%s: no hay formulario abierto: %w", p.nombre, domain.ErrAccionNoPermitida)
	}
	out, err := forms.Enviar[T, P](ctx, p.form, p.destino)
	if err != nil {
		return nil, err
	}
	p.form = nil
	_ = p.Cargar(ctx)
	return out, nil
}

// porID busca en la colección cargada.
func (p *pagina[T, P]) porID(id int64) (T, error) {
	it, ok := p.Buscar(func(x T) bool { return p.idDe(x) == id })
	if !ok {
		return it, fmt.Errorf("%s %d: %w", p.nombre, id, domain.ErrNotFound)
	}
	return it, nil
}

// accion pide confirmación, ejecuta y recarga. Devuelve false si se canceló.
// Si la acción falla no se recarga: el error se informa al usuario.
func (p *pagina[T, P]) accion(ctx context.Context, mensaje string, fn func(context.Context) error) (bool, error) {
	if !p.conf.Confirmar(mensaje) {
		return false, nil
	}
	if err := fn(ctx); err != nil {
		return false, err
	}
	_ = p.Cargar(ctx)
	return true, nil
}

// ConReloj reemplaza el reloj usado en estadísticas y alertas.
func (p *pagina[T, P]) ConReloj(ahora func() time.Time) { p.ahora = ahora }
