package dto

import (
	"github.com/shopspring/decimal"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/alertas"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// Resúmenes de cada página. Se recalculan sobre la colección vigente en cada consulta.

// ResumenClientes estadísticas de la página de clientes.
type ResumenClientes struct {
	Total        int `json:"total"`
	ConEmail     int `json:"conEmail"`
	ConTelefono  int `json:"conTelefono"`
	ConDocumento int `json:"conDocumento"`
}

// ResumenProveedores estadísticas de la página de proveedores.
type ResumenProveedores struct {
	Total                  int `json:"total"`
	ConEmail               int `json:"conEmail"`
	ConCuit                int `json:"conCuit"`
	ResponsablesInscriptos int `json:"responsablesInscriptos"`
}

// ResumenProductos estadísticas de mercadería.
type ResumenProductos struct {
	Total     int `json:"total"`
	Activos   int `json:"activos"`
	ConStock  int `json:"conStock"`
	SinStock  int `json:"sinStock"`
	PorVencer int `json:"porVencer"`
	Vencidos  int `json:"vencidos"`
}

// ResumenVentas estadísticas de ventas; Ingresos excluye anuladas.
type ResumenVentas struct {
	Total     int             `json:"total"`
	Ingresos  decimal.Decimal `json:"ingresos"`
	VentasHoy int             `json:"ventasHoy"`
	Anuladas  int             `json:"anuladas"`
}

// ResumenRemitos estadísticas de remitos.
type ResumenRemitos struct {
	Total      int `json:"total"`
	ConCliente int `json:"conCliente"`
	Hoy        int `json:"hoy"`
	EsteMes    int `json:"esteMes"`
}

// ResumenTesoreria estadísticas de tesorería; importes sobre movimientos no anulados.
type ResumenTesoreria struct {
	Ingresos          decimal.Decimal `json:"ingresos"`
	Egresos           decimal.Decimal `json:"egresos"`
	Saldo             decimal.Decimal `json:"saldo"`
	Movimientos       int             `json:"movimientos"`
	ChequesPendientes int             `json:"chequesPendientes"`
	ChequesProximos   int             `json:"chequesProximos"`
}

// ── Filas de listado ──────────────────────────────────────────────────────────

// ProductoFila producto con su estado de vencimiento.
type ProductoFila struct {
	entity.Producto
	EstadoVencimiento string `json:"estadoVencimiento"`
	DiasParaVencer    *int   `json:"diasParaVencer,omitempty"`
}

// VentaFila venta con el resumen de items y las acciones disponibles.
type VentaFila struct {
	entity.Venta
	ResumenItems string `json:"resumenItems"`
	PuedeAnular  bool   `json:"puedeAnular"`
}

// RemitoFila remito con resumen de items y nombre del archivo PDF.
type RemitoFila struct {
	entity.Remito
	ResumenItems string `json:"resumenItems"`
	ArchivoPDF   string `json:"archivoPdf"`
}

// MovimientoFila movimiento con acciones habilitadas y resaltado de cheque próximo.
type MovimientoFila struct {
	entity.MovimientoTesoreria
	PuedeCobrar   bool `json:"puedeCobrar"`
	PuedeAnular   bool `json:"puedeAnular"`
	ChequeProximo bool `json:"chequeProximo"`
}

// Pagina respuesta de un listado del panel.
type Pagina[T any, R any] struct {
	Items   []T    `json:"items"`
	Resumen R      `json:"resumen"`
	Estado  string `json:"estado"`
	Error   string `json:"error,omitempty"`
}

// ── Inicio ────────────────────────────────────────────────────────────────────

// AlertaProductoDTO producto próximo a vencer.
type AlertaProductoDTO struct {
	ID               int64        `json:"id"`
	Nombre           string       `json:"nombre"`
	SKU              string       `json:"sku"`
	FechaVencimiento entity.Fecha `json:"fechaVencimiento"`
	Dias             int          `json:"dias"`
}

// AlertasProductos convierte las alertas de vencimiento; nunca devuelve nil.
func AlertasProductos(as []alertas.ProductoAlerta) []AlertaProductoDTO {
	out := make([]AlertaProductoDTO, 0, len(as))
	for _, a := range as {
		out = append(out, AlertaProductoDTO{
			ID:               a.Producto.ID,
			Nombre:           a.Producto.Nombre,
			SKU:              a.Producto.SKU,
			FechaVencimiento: a.Producto.FechaVencimiento,
			Dias:             a.Dias,
		})
	}
	return out
}

// AlertaChequeDTO cheque próximo a vencer.
type AlertaChequeDTO struct {
	ID               int64            `json:"id"`
	Banco            string           `json:"banco"`
	NumeroCheque     string           `json:"numeroCheque"`
	Librador         string           `json:"librador"`
	Importe          decimal.Decimal  `json:"importe"`
	MedioPago        entity.MedioPago `json:"medioPago"`
	FechaVencimiento entity.Fecha     `json:"fechaVencimiento"`
	Dias             int              `json:"dias"`
}

// ModuloDTO acceso directo a un módulo.
type ModuloDTO struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Ruta        string `json:"ruta"`
}

// InicioDTO respuesta de GET /panel/home.
type InicioDTO struct {
	ProductosPorVencer []AlertaProductoDTO `json:"productosPorVencer"`
	ChequesPorVencer   []AlertaChequeDTO   `json:"chequesPorVencer"`
	Modulos            []ModuloDTO         `json:"modulos"`
	MostrarAlertas     bool                `json:"mostrarAlertas"`
	Periodo            string              `json:"periodo"`
}
