package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/calculo"
)

// Producto representa un artículo de mercadería.
// Stock puede ser negativo (pedido pendiente); la vista trata <= 0 como sin stock.
type Producto struct {
	ID               int64           `json:"id,omitempty"`
	SKU              string          `json:"sku"`
	Nombre           string          `json:"nombre"`
	Descripcion      string          `json:"descripcion,omitempty"`
	PrecioCosto      decimal.Decimal `json:"precioCosto"`
	PrecioVenta      decimal.Decimal `json:"precioVenta"`
	Stock            decimal.Decimal `json:"stock"`
	UnidadMedida     string          `json:"unidadMedida,omitempty"`
	Activo           bool            `json:"activo"`
	FechaVencimiento Fecha           `json:"fechaVencimiento"`
}

// UnmarshalJSON resuelve el alias heredado precio_venta cuando precioVenta no viene.
func (p *Producto) UnmarshalJSON(b []byte) error {
	type alias Producto
	aux := struct {
		*alias
		PrecioVenta       *decimal.Decimal `json:"precioVenta"`
		PrecioVentaLegado *decimal.Decimal `json:"precio_venta"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	switch {
	case aux.PrecioVenta != nil:
		p.PrecioVenta = *aux.PrecioVenta
	case aux.PrecioVentaLegado != nil:
		p.PrecioVenta = *aux.PrecioVentaLegado
	default:
		p.PrecioVenta = decimal.Zero
	}
	return nil
}

// StockEntero devuelve el stock truncado a unidades.
func (p Producto) StockEntero() int64 {
	return p.Stock.IntPart()
}

// TieneStock stock > 0.
func (p Producto) TieneStock() bool {
	return p.Stock.IsPositive()
}

// DiasParaVencer devuelve los días hasta el vencimiento y false si no tiene fecha.
func (p Producto) DiasParaVencer(ahora time.Time) (int, bool) {
	if p.FechaVencimiento.Vacia() {
		return 0, false
	}
	return calculo.DiasHasta(p.FechaVencimiento.Time, ahora), true
}
