package listing

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/dto"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/forms"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/ports"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/calculo"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// ClientesPage listado de clientes.
type ClientesPage struct {
	*pagina[entity.Cliente, dto.ClientePayload]
	api ports.ClientesAPI
}

// NewClientesPage construye la página.
func NewClientesPage(api ports.ClientesAPI, conf ports.Confirmador, log zerolog.Logger) *ClientesPage {
	return &ClientesPage{
		pagina: nuevaPagina[entity.Cliente, dto.ClientePayload]("clientes", api, conf,
			func(c entity.Cliente) int64 { return c.ID }, log),
		api: api,
	}
}

// Filtrar por nombre, documento o email.
func (p *ClientesPage) Filtrar(texto string) []entity.Cliente {
	return p.Controller.Filtrar(func(c entity.Cliente) bool {
		return Coincide(texto, c.Nombre, c.Documento, c.Email)
	})
}

// Resumen estadísticas sobre la colección completa.
func (p *ClientesPage) Resumen() dto.ResumenClientes {
	cs := p.Items()
	return dto.ResumenClientes{
		Total:        len(cs),
		ConEmail:     calculo.ContarPor(cs, func(c entity.Cliente) bool { return noVacio(c.Email) }),
		ConTelefono:  calculo.ContarPor(cs, func(c entity.Cliente) bool { return noVacio(c.Telefono) }),
		ConDocumento: calculo.ContarPor(cs, func(c entity.Cliente) bool { return noVacio(c.Documento) }),
	}
}

// AbrirNuevo abre el formulario de alta.
func (p *ClientesPage) AbrirNuevo() *forms.ClienteForm {
	f := forms.NuevoClienteForm(nil)
	p.abrir(f)
	return f
}

// AbrirEdicion abre el formulario precargado con la fila.
func (p *ClientesPage) AbrirEdicion(id int64) (*forms.ClienteForm, error) {
	c, err := p.porID(id)
	if err != nil {
		return nil, err
	}
	f := forms.NuevoClienteForm(&c)
	p.abrir(f)
	return f, nil
}

// Eliminar confirma, borra y recarga.
func (p *ClientesPage) Eliminar(ctx context.Context, id int64) (bool, error) {
	return p.accion(ctx, "¿Eliminar cliente?", func(ctx context.Context) error {
		return p.api.Eliminar(ctx, id)
	})
}

func noVacio(s string) bool { return strings.TrimSpace(s) != "" }
