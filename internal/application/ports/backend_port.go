package ports

import (
	"context"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/dto"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// Puertos de salida hacia el backend REST. Cada listado y formulario conoce
// sólo estos contratos; el adaptador HTTP vive en infrastructure/backend.

// Listable obtiene la colección completa de un recurso.
type Listable[T any] interface {
	Listar(ctx context.Context) ([]T, error)
}

// Guardable alta (POST) y reemplazo por id (PUT /:id) con el registro completo.
type Guardable[T any, P any] interface {
	Crear(ctx context.Context, payload P) (*T, error)
	Actualizar(ctx context.Context, id int64, payload P) (*T, error)
}

// Recurso lectura más alta/reemplazo.
type Recurso[T any, P any] interface {
	Listable[T]
	Guardable[T, P]
}

// Eliminable DELETE /:id.
type Eliminable interface {
	Eliminar(ctx context.Context, id int64) error
}

// ClientesAPI /clientes.
type ClientesAPI interface {
	Recurso[entity.Cliente, dto.ClientePayload]
	Eliminable
}

// ProveedoresAPI /proveedores.
type ProveedoresAPI interface {
	Recurso[entity.Proveedor, dto.ProveedorPayload]
	Eliminable
}

// ProductosAPI /productos.
type ProductosAPI interface {
	Recurso[entity.Producto, dto.ProductoPayload]
	Eliminable
}

// VentasAPI /ventas, con PUT /:id/anular.
type VentasAPI interface {
	Recurso[entity.Venta, dto.VentaPayload]
	Anular(ctx context.Context, id int64) error
}

// RemitosAPI /remitos, con GET /:id/pdf.
type RemitosAPI interface {
	Recurso[entity.Remito, dto.RemitoPayload]
	DescargarPDF(ctx context.Context, id int64) ([]byte, error)
}

// TesoreriaAPI /tesoreria, con PUT /:id/cobrar.
type TesoreriaAPI interface {
	Recurso[entity.MovimientoTesoreria, dto.MovimientoPayload]
	Cobrar(ctx context.Context, id int64) error
}
