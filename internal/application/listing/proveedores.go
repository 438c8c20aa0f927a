package listing

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/dto"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/forms"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/ports"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/calculo"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// ProveedoresPage listado de proveedores.
type ProveedoresPage struct {
	*pagina[entity.Proveedor, dto.ProveedorPayload]
	api ports.ProveedoresAPI
}

// NewProveedoresPage construye la página.
func NewProveedoresPage(api ports.ProveedoresAPI, conf ports.Confirmador, log zerolog.Logger) *ProveedoresPage {
	return &ProveedoresPage{
		pagina: nuevaPagina[entity.Proveedor, dto.ProveedorPayload]("proveedores", api, conf,
			func(p entity.Proveedor) int64 { return p.ID }, log),
		api: api,
	}
}

// Filtrar por nombre, CUIT o email.
func (p *ProveedoresPage) Filtrar(texto string) []entity.Proveedor {
	return p.Controller.Filtrar(func(pr entity.Proveedor) bool {
		return Coincide(texto, pr.Nombre, pr.Cuit, pr.Email)
	})
}

// Resumen estadísticas sobre la colección completa.
func (p *ProveedoresPage) Resumen() dto.ResumenProveedores {
	ps := p.Items()
	return dto.ResumenProveedores{
		Total:    len(ps),
		ConEmail: calculo.ContarPor(ps, func(x entity.Proveedor) bool { return noVacio(x.Email) }),
		ConCuit:  calculo.ContarPor(ps, func(x entity.Proveedor) bool { return noVacio(x.Cuit) }),
		ResponsablesInscriptos: calculo.ContarPor(ps, func(x entity.Proveedor) bool {
			return x.CondicionIva == entity.IvaResponsableInscripto
		}),
	}
}

// AbrirNuevo abre el formulario de alta.
func (p *ProveedoresPage) AbrirNuevo() *forms.ProveedorForm {
	f := forms.NuevoProveedorForm(nil)
	p.abrir(f)
	return f
}

// AbrirEdicion abre el formulario precargado con la fila.
func (p *ProveedoresPage) AbrirEdicion(id int64) (*forms.ProveedorForm, error) {
	pr, err := p.porID(id)
	if err != nil {
		return nil, err
	}
	f := forms.NuevoProveedorForm(&pr)
	p.abrir(f)
	return f, nil
}

// Eliminar confirma, borra y recarga.
func (p *ProveedoresPage) Eliminar(ctx context.Context, id int64) (bool, error) {
	return p.accion(ctx, "¿Eliminar proveedor?", func(ctx context.Context) error {
		return p.api.Eliminar(ctx, id)
	})
}
