package listing

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/dto"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/forms"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/ports"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/alertas"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/calculo"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// Filtro de estado de productos.
const (
	ProductosTodos     = "todos"
	ProductosActivos   = "activos"
	ProductosInactivos = "inactivos"
)

// FiltroProductos texto sobre nombre o SKU más estado.
type FiltroProductos struct {
	Texto  string
	Estado string
}

// ProductosPage listado de mercadería con alertas de vencimiento.
type ProductosPage struct {
	*pagina[entity.Producto, dto.ProductoPayload]
	api          ports.ProductosAPI
	alertaOculta bool
}

// NewProductosPage construye la página.
func NewProductosPage(api ports.ProductosAPI, conf ports.Confirmador, log zerolog.Logger) *ProductosPage {
	return &ProductosPage{
		pagina: nuevaPagina[entity.Producto, dto.ProductoPayload]("productos", api, conf,
			func(p entity.Producto) int64 { return p.ID }, log),
		api: api,
	}
}

// Filtrar aplica texto y estado.
func (p *ProductosPage) Filtrar(f FiltroProductos) []entity.Producto {
	return p.Controller.Filtrar(func(pr entity.Producto) bool {
		switch f.Estado {
		case ProductosActivos:
			if !pr.Activo {
				return false
			}
		case ProductosInactivos:
			if pr.Activo {
				return false
			}
		}
		return Coincide(f.Texto, pr.Nombre, pr.SKU)
	})
}

// Filas productos filtrados con su estado de vencimiento para resaltar.
func (p *ProductosPage) Filas(f FiltroProductos) []dto.ProductoFila {
	ahora := p.ahora()
	ps := p.Filtrar(f)
	out := make([]dto.ProductoFila, 0, len(ps))
	for _, pr := range ps {
		fila := dto.ProductoFila{Producto: pr, EstadoVencimiento: string(alertas.EstadoProducto(pr, ahora))}
		if dias, ok := pr.DiasParaVencer(ahora); ok {
			fila.DiasParaVencer = &dias
		}
		out = append(out, fila)
	}
	return out
}

// Resumen estadísticas sobre la colección completa.
func (p *ProductosPage) Resumen() dto.ResumenProductos {
	ahora := p.ahora()
	ps := p.Items()
	return dto.ResumenProductos{
		Total:    len(ps),
		Activos:  calculo.ContarPor(ps, func(x entity.Producto) bool { return x.Activo }),
		ConStock: calculo.ContarPor(ps, func(x entity.Producto) bool { return x.TieneStock() }),
		SinStock: calculo.ContarPor(ps, func(x entity.Producto) bool { return !x.TieneStock() }),
		PorVencer: calculo.ContarPor(ps, func(x entity.Producto) bool {
			return alertas.EstadoProducto(x, ahora) == alertas.PorVencer
		}),
		Vencidos: calculo.ContarPor(ps, func(x entity.Producto) bool {
			return alertas.EstadoProducto(x, ahora) == alertas.Vencido
		}),
	}
}

// Proximos productos que vencen en 0 a 29 días (banner de la página).
func (p *ProductosPage) Proximos() []alertas.ProductoAlerta {
	return alertas.ProductosEnVentana(p.Items(), p.ahora(), alertas.VentanaPorVencer)
}

// AlertaVisible el banner se muestra si hay próximos y no se ocultó.
func (p *ProductosPage) AlertaVisible() bool {
	return !p.alertaOculta && len(p.Proximos()) > 0
}

// OcultarAlerta descarta el banner en esta instancia de la página.
func (p *ProductosPage) OcultarAlerta() { p.alertaOculta = true }

// AbrirNuevo abre el formulario de alta.
func (p *ProductosPage) AbrirNuevo() *forms.ProductoForm {
	f := forms.NuevoProductoForm(nil)
	p.abrir(f)
	return f
}

// AbrirEdicion abre el formulario precargado con la fila.
func (p *ProductosPage) AbrirEdicion(id int64) (*forms.ProductoForm, error) {
	pr, err := p.porID(id)
	if err != nil {
		return nil, err
	}
	f := forms.NuevoProductoForm(&pr)
	p.abrir(f)
	return f, nil
}

// Eliminar confirma, borra y recarga.
func (p *ProductosPage) Eliminar(ctx context.Context, id int64) (bool, error) {
	return p.accion(ctx, "¿Seguro que quieres eliminar este producto?", func(ctx context.Context) error {
		return p.api.Eliminar(ctx, id)
	})
}
