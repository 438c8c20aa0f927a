package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/dto"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/ports"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// Verificar en tiempo de compilación que los clientes implementan los puertos.
var (
	_ ports.ClientesAPI    = (*ClientesClient)(nil)
	_ ports.ProveedoresAPI = (*ProveedoresClient)(nil)
	_ ports.ProductosAPI   = (*ProductosClient)(nil)
	_ ports.VentasAPI      = (*VentasClient)(nil)
	_ ports.RemitosAPI     = (*RemitosClient)(nil)
	_ ports.TesoreriaAPI   = (*TesoreriaClient)(nil)
)

// Recurso GET, POST y PUT /:id sobre una colección.
type Recurso[T any, P any] struct {
	c    *Client
	ruta string
}

func nuevoRecurso[T any, P any](c *Client, ruta string) Recurso[T, P] {
	return Recurso[T, P]{c: c, ruta: ruta}
}

// Listar GET /<ruta>. Una respuesta vacía es una colección vacía.
func (r Recurso[T, P]) Listar(ctx context.Context) ([]T, error) {
	out := make([]T, 0)
	if err := r.c.doJSON(ctx, http.MethodGet, r.ruta, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = make([]T, 0)
	}
	return out, nil
}

// Crear POST /<ruta>.
func (r Recurso[T, P]) Crear(ctx context.Context, payload P) (*T, error) {
	var out T
	if err := r.c.doJSON(ctx, http.MethodPost, r.ruta, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Actualizar PUT /<ruta>/:id con el registro completo.
func (r Recurso[T, P]) Actualizar(ctx context.Context, id int64, payload P) (*T, error) {
	var out T
	if err := r.c.doJSON(ctx, http.MethodPut, r.porID(id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// eliminar DELETE /<ruta>/:id. Sólo lo exponen los recursos que lo admiten.
func (r Recurso[T, P]) eliminar(ctx context.Context, id int64) error {
	_, err := r.c.do(ctx, http.MethodDelete, r.porID(id), nil, limiteJSON)
	return err
}

func (r Recurso[T, P]) porID(id int64) string {
	return fmt.Sprintf("%s/%d", r.ruta, id)
}

// ── Recursos ──────────────────────────────────────────────────────────────────

// ClientesClient /clientes.
type ClientesClient struct {
	Recurso[entity.Cliente, dto.ClientePayload]
}

// Eliminar DELETE /clientes/:id.
func (r *ClientesClient) Eliminar(ctx context.Context, id int64) error { return r.eliminar(ctx, id) }

// ProveedoresClient /proveedores.
type ProveedoresClient struct {
	Recurso[entity.Proveedor, dto.ProveedorPayload]
}

// Eliminar DELETE /proveedores/:id.
func (r *ProveedoresClient) Eliminar(ctx context.Context, id int64) error { return r.eliminar(ctx, id) }

// ProductosClient /productos.
type ProductosClient struct {
	Recurso[entity.Producto, dto.ProductoPayload]
}

// Eliminar DELETE /productos/:id.
func (r *ProductosClient) Eliminar(ctx context.Context, id int64) error { return r.eliminar(ctx, id) }

// VentasClient /ventas.
type VentasClient struct {
	Recurso[entity.Venta, dto.VentaPayload]
}

// Anular PUT /ventas/:id/anular.
func (r *VentasClient) Anular(ctx context.Context, id int64) error {
	_, err := r.c.do(ctx, http.MethodPut, r.porID(id)+"/anular", nil, limiteJSON)
	return err
}

// RemitosClient /remitos.
type RemitosClient struct {
	Recurso[entity.Remito, dto.RemitoPayload]
}

// DescargarPDF GET /remitos/:id/pdf.
func (r *RemitosClient) DescargarPDF(ctx context.Context, id int64) ([]byte, error) {
	return r.c.do(ctx, http.MethodGet, r.porID(id)+"/pdf", nil, limitePDF)
}

// TesoreriaClient /tesoreria.
type TesoreriaClient struct {
	Recurso[entity.MovimientoTesoreria, dto.MovimientoPayload]
}

// Cobrar PUT /tesoreria/:id/cobrar.
func (r *TesoreriaClient) Cobrar(ctx context.Context, id int64) error {
	_, err := r.c.do(ctx, http.MethodPut, r.porID(id)+"/cobrar", nil, limiteJSON)
	return err
}

// API todos los recursos sobre un mismo Client.
type API struct {
	Clientes    *ClientesClient
	Proveedores *ProveedoresClient
	Productos   *ProductosClient
	Ventas      *VentasClient
	Remitos     *RemitosClient
	Tesoreria   *TesoreriaClient
}

// NewAPI arma los clientes de cada recurso.
func NewAPI(c *Client) *API {
	return &API{
		Clientes:    &ClientesClient{nuevoRecurso[entity.Cliente, dto.ClientePayload](c, "clientes")},
		Proveedores: &ProveedoresClient{nuevoRecurso[entity.Proveedor, dto.ProveedorPayload](c, "proveedores")},
		Productos:   &ProductosClient{nuevoRecurso[entity.Producto, dto.ProductoPayload](c, "productos")},
		Ventas:      &VentasClient{nuevoRecurso[entity.Venta, dto.VentaPayload](c, "ventas")},
		Remitos:     &RemitosClient{nuevoRecurso[entity.Remito, dto.RemitoPayload](c, "remitos")},
		Tesoreria:   &TesoreriaClient{nuevoRecurso[entity.MovimientoTesoreria, dto.MovimientoPayload](c, "tesoreria")},
	}
}
