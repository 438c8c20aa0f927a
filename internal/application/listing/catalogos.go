package listing

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/ports"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// Catalogos fuentes de productos y clientes que piden los formularios de venta y remito.
type Catalogos struct {
	Productos ports.Listable[entity.Producto]
	Clientes  ports.Listable[entity.Cliente]
}

// cargar trae ambos catálogos. Un catálogo que falla queda vacío: el formulario
// se abre igual y el usuario ve los selectores sin opciones.
func (c Catalogos) cargar(ctx context.Context, log zerolog.Logger) ([]entity.Producto, []entity.Cliente) {
	var productos []entity.Producto
	var clientes []entity.Cliente
	if c.Productos != nil {
		ps, err := c.Productos.Listar(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("no se pudo cargar el catálogo de productos")
		} else {
			productos = ps
		}
	}
	if c.Clientes != nil {
		cs, err := c.Clientes.Listar(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("no se pudo cargar el catálogo de clientes")
		} else {
			clientes = cs
		}
	}
	return productos, clientes
}
