package forms

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/dto"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// ProductoDraft campos editables; los numéricos llegan como texto.
type ProductoDraft struct {
	SKU              string `json:"sku" validate:"requerido"`
	Nombre           string `json:"nombre" validate:"requerido"`
	Descripcion      string `json:"descripcion"`
	PrecioCosto      string `json:"precioCosto" validate:"omitempty,decimal_no_negativo"`
	PrecioVenta      string `json:"precioVenta" validate:"omitempty,decimal_no_negativo"`
	Stock            string `json:"stock" validate:"omitempty,decimal"`
	UnidadMedida     string `json:"unidadMedida"`
	Activo           bool   `json:"activo"`
	FechaVencimiento string `json:"fechaVencimiento" validate:"omitempty,fecha"`
}

var mensajesProducto = mensajes{
	"sku":              "El SKU es requerido",
	"nombre":           "El nombre es requerido",
	"precioCosto":      "El precio de costo debe ser un número mayor o igual a 0",
	"precioVenta":      "El precio de venta debe ser un número mayor o igual a 0",
	"stock":            "El stock debe ser un número",
	"fechaVencimiento": "La fecha de vencimiento no es válida",
}

// ProductoForm alta o edición de un producto.
type ProductoForm struct {
	id    int64
	Draft ProductoDraft
}

// NuevoProductoForm un alta arranca activa; la edición precarga el stock truncado.
func NuevoProductoForm(existente *entity.Producto) *ProductoForm {
	f := &ProductoForm{Draft: ProductoDraft{Activo: true}}
	if existente != nil {
		f.id = existente.ID
		f.Draft = ProductoDraft{
			SKU:              existente.SKU,
			Nombre:           existente.Nombre,
			Descripcion:      existente.Descripcion,
			PrecioCosto:      textoDecimal(existente.PrecioCosto),
			PrecioVenta:      textoDecimal(existente.PrecioVenta),
			Stock:            decimal.NewFromInt(existente.StockEntero()).String(),
			UnidadMedida:     existente.UnidadMedida,
			Activo:           existente.Activo,
			FechaVencimiento: existente.FechaVencimiento.String(),
		}
	}
	return f
}

func (f *ProductoForm) ID() int64 { return f.id }

// Validar devuelve FieldErrors con todos los campos inválidos.
func (f *ProductoForm) Validar() error {
	return validarCampos(f.Draft, mensajesProducto).Err()
}

// Normalizar precios y stock en blanco quedan en 0; el stock se trunca a entero.
func (f *ProductoForm) Normalizar() (dto.ProductoPayload, error) {
	if err := f.Validar(); err != nil {
		return dto.ProductoPayload{}, err
	}
	d := f.Draft
	venc, err := entity.ParseFecha(d.FechaVencimiento)
	if err != nil {
		return dto.ProductoPayload{}, FieldErrors{"fechaVencimiento": mensajesProducto["fechaVencimiento"]}
	}
	return dto.ProductoPayload{
		ID:               f.id,
		SKU:              strings.TrimSpace(d.SKU),
		Nombre:           strings.TrimSpace(d.Nombre),
		Descripcion:      strings.TrimSpace(d.Descripcion),
		PrecioCosto:      decimalODefecto(d.PrecioCosto, decimal.Zero),
		PrecioVenta:      decimalODefecto(d.PrecioVenta, decimal.Zero),
		Stock:            decimalODefecto(d.Stock, decimal.Zero).IntPart(),
		UnidadMedida:     strings.TrimSpace(d.UnidadMedida),
		Activo:           d.Activo,
		FechaVencimiento: venc,
	}, nil
}
