package dto

import (
	"github.com/shopspring/decimal"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// Payloads normalizados que se envían completos en POST (alta) y PUT /:id (reemplazo).

// ClientePayload cuerpo de /clientes.
type ClientePayload struct {
	ID        int64  `json:"id,omitempty"`
	Nombre    string `json:"nombre"`
	Documento string `json:"documento"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	Notas     string `json:"notas"`
}

// ProveedorPayload cuerpo de /proveedores.
type ProveedorPayload struct {
	ID           int64  `json:"id,omitempty"`
	Nombre       string `json:"nombre"`
	Cuit         string `json:"cuit"`
	Direccion    string `json:"direccion"`
	Telefono     string `json:"telefono"`
	Email        string `json:"email"`
	CondicionIva string `json:"condicionIva"`
	Notas        string `json:"notas"`
}

// ProductoPayload cuerpo de /productos. FechaVencimiento viaja null si está en blanco.
type ProductoPayload struct {
	ID               int64           `json:"id,omitempty"`
	SKU              string          `json:"sku"`
	Nombre           string          `json:"nombre"`
	Descripcion      string          `json:"descripcion"`
	PrecioCosto      decimal.Decimal `json:"precioCosto"`
	PrecioVenta      decimal.Decimal `json:"precioVenta"`
	Stock            int64           `json:"stock"`
	UnidadMedida     string          `json:"unidadMedida"`
	Activo           bool            `json:"activo"`
	FechaVencimiento entity.Fecha    `json:"fechaVencimiento"`
}

// VentaItemPayload línea de venta.
type VentaItemPayload struct {
	Producto       Ref             `json:"producto"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// VentaPayload cuerpo de /ventas. Los campos de cheque se omiten si el medio no es cheque.
type VentaPayload struct {
	ID            int64              `json:"id,omitempty"`
	NumeroInterno int64              `json:"numeroInterno,omitempty"`
	Fecha         *entity.FechaHora  `json:"fecha,omitempty"`
	Cliente       *Ref               `json:"cliente,omitempty"`
	NombreCliente string             `json:"nombreCliente"`
	Descripcion   string             `json:"descripcion"`
	MedioPago     entity.MedioPago   `json:"medioPago"`
	Estado        string             `json:"estado"`
	Total         decimal.Decimal    `json:"total"`
	Items         []VentaItemPayload `json:"items"`

	ChequeBanco            string        `json:"chequeBanco,omitempty"`
	ChequeNumero           string        `json:"chequeNumero,omitempty"`
	ChequeLibrador         string        `json:"chequeLibrador,omitempty"`
	ChequeFechaEmision     *entity.Fecha `json:"chequeFechaEmision,omitempty"`
	ChequeFechaCobro       *entity.Fecha `json:"chequeFechaCobro,omitempty"`
	ChequeFechaVencimiento *entity.Fecha `json:"chequeFechaVencimiento,omitempty"`
}

// AplicarPago aplana la variante de pago en los campos cheque*.
func (p *VentaPayload) AplicarPago(pago entity.Pago) {
	p.MedioPago = pago.Medio
	if !pago.EsCheque() {
		return
	}
	c := pago.Cheque
	p.ChequeBanco = c.Banco
	p.ChequeNumero = c.Numero
	p.ChequeLibrador = c.Librador
	p.ChequeFechaEmision = fechaOpcional(c.FechaEmision)
	p.ChequeFechaCobro = fechaOpcional(c.FechaCobro)
	p.ChequeFechaVencimiento = fechaOpcional(c.FechaVencimiento)
}

// RemitoItemPayload línea de remito.
type RemitoItemPayload struct {
	Producto Ref             `json:"producto"`
	Cantidad decimal.Decimal `json:"cantidad"`
	Notas    string          `json:"notas"`
}

// RemitoPayload cuerpo de /remitos. Proveedor y cliente viajan null si no se eligieron.
type RemitoPayload struct {
	ID                  int64               `json:"id,omitempty"`
	Fecha               entity.FechaHora    `json:"fecha"`
	Proveedor           *Ref                `json:"proveedor"`
	Cliente             *Ref                `json:"cliente"`
	ClienteNombre       string              `json:"clienteNombre"`
	ClienteDireccion    string              `json:"clienteDireccion"`
	ClienteCodigoPostal string              `json:"clienteCodigoPostal"`
	ClienteAclaracion   string              `json:"clienteAclaracion"`
	Observaciones       string              `json:"observaciones"`
	Items               []RemitoItemPayload `json:"items"`
}

// MovimientoPayload cuerpo de /tesoreria (registro completo).
type MovimientoPayload struct {
	ID          int64            `json:"id,omitempty"`
	Tipo        string           `json:"tipo"`
	MedioPago   entity.MedioPago `json:"medioPago"`
	Importe     decimal.Decimal  `json:"importe"`
	Referencia  string           `json:"referencia"`
	Descripcion string           `json:"descripcion"`
	Fecha       entity.FechaHora `json:"fecha"`
	Anulado     bool             `json:"anulado"`
	Cobrado     bool             `json:"cobrado"`
	VentaID     *int64           `json:"ventaId,omitempty"`

	Banco            string        `json:"banco,omitempty"`
	NumeroCheque     string        `json:"numeroCheque,omitempty"`
	Librador         string        `json:"librador,omitempty"`
	FechaEmision     *entity.Fecha `json:"fechaEmision,omitempty"`
	FechaCobro       *entity.Fecha `json:"fechaCobro,omitempty"`
	FechaVencimiento *entity.Fecha `json:"fechaVencimiento,omitempty"`
	TipoCheque       string        `json:"tipoCheque,omitempty"`
}

// AplicarPago aplana la variante de pago en los campos de cheque.
func (p *MovimientoPayload) AplicarPago(pago entity.Pago) {
	p.MedioPago = pago.Medio
	if !pago.EsCheque() {
		return
	}
	c := pago.Cheque
	p.Banco = c.Banco
	p.NumeroCheque = c.Numero
	p.Librador = c.Librador
	p.FechaEmision = fechaOpcional(c.FechaEmision)
	p.FechaCobro = fechaOpcional(c.FechaCobro)
	p.FechaVencimiento = fechaOpcional(c.FechaVencimiento)
	p.TipoCheque = pago.TipoCheque()
}

// MovimientoDesdeEntidad reconstruye el registro completo para un reemplazo (PUT).
func MovimientoDesdeEntidad(m entity.MovimientoTesoreria) MovimientoPayload {
	p := MovimientoPayload{
		ID:          m.ID,
		Tipo:        m.Tipo,
		Importe:     m.Importe,
		Referencia:  m.Referencia,
		Descripcion: m.Descripcion,
		Fecha:       m.Fecha,
		Anulado:     m.Anulado,
		Cobrado:     m.Cobrado,
		VentaID:     m.VentaID,
	}
	p.AplicarPago(m.Pago())
	return p
}

func fechaOpcional(f entity.Fecha) *entity.Fecha {
	if f.Vacia() {
		return nil
	}
	return &f
}
