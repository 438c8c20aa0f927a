package forms

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/dto"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/items"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/pkg/validator"
)

// Alertas de items de venta (cortan en la primera falla).
const (
	alertaVentaSinItems    = "Agregue al menos un item."
	alertaVentaSinProducto = "Complete todos los productos."
	alertaVentaCantidad    = "Cantidad inválida en un item."
	alertaVentaPrecio      = "Precio inválido en un item."
)

// VentaDraft cabecera de la venta. Cliente es texto libre; ClienteID se
// resuelve contra la lista de clientes cuando coincide.
type VentaDraft struct {
	NombreCliente string      `json:"nombreCliente" validate:"requerido"`
	ClienteID     int64       `json:"clienteId"`
	Descripcion   string      `json:"descripcion"`
	MedioPago     string      `json:"medioPago" validate:"medio_pago"`
	Estado        string      `json:"estado" validate:"oneof=COMPLETA PENDIENTE"`
	Cheque        ChequeDraft `json:"cheque" validate:"-"`
}

// VentaItemDraft línea tal como llega de una pantalla o del panel.
// PrecioUnitario en blanco toma el precio de venta del producto.
type VentaItemDraft struct {
	ProductoID     int64  `json:"productoId"`
	Cantidad       string `json:"cantidad"`
	PrecioUnitario string `json:"precioUnitario"`
}

var mensajesVenta = mensajes{
	"nombreCliente": "El nombre del cliente es requerido",
	"medioPago":     "Medio de pago inválido",
	"estado":        "Estado inválido",
}

// VentaForm alta o edición de una venta con su editor de items.
type VentaForm struct {
	existente *entity.Venta
	productos []entity.Producto
	clientes  []entity.Cliente
	Draft     VentaDraft
	Items     *items.VentaEditor
}

// NuevoVentaForm un alta arranca COMPLETA, en EFECTIVO y con un item en blanco.
func NuevoVentaForm(existente *entity.Venta, productos []entity.Producto, clientes []entity.Cliente) *VentaForm {
	f := &VentaForm{
		productos: productos,
		clientes:  clientes,
		Draft: VentaDraft{
			MedioPago: string(entity.MedioEfectivo),
			Estado:    entity.VentaCompleta,
		},
		Items: items.NuevoVentaEditor(productos, nil),
	}
	if existente != nil {
		cp := *existente
		f.existente = &cp
		f.Draft = VentaDraft{
			NombreCliente: existente.NombreCliente,
			Descripcion:   existente.Descripcion,
			MedioPago:     string(existente.MedioPago),
			Estado:        existente.Estado,
			Cheque:        ChequeDraftDesde(existente.Pago().Cheque),
		}
		if strings.TrimSpace(f.Draft.Estado) == "" {
			f.Draft.Estado = entity.VentaCompleta
		}
		if existente.Cliente != nil {
			f.Draft.ClienteID = existente.Cliente.ID
		}
		f.Items = items.NuevoVentaEditor(productos, existente.Items)
	}
	return f
}

func (f *VentaForm) ID() int64 {
	if f.existente == nil {
		return 0
	}
	return f.existente.ID
}

// SeleccionarCliente elección desde el autocompletado.
func (f *VentaForm) SeleccionarCliente(c entity.Cliente) {
	f.Draft.NombreCliente = c.Nombre
	f.Draft.ClienteID = c.ID
}

// ChequeAplica indica si los campos de cheque se piden y se envían.
func (f *VentaForm) ChequeAplica() bool {
	return ChequeAplica(entity.MedioPago(f.Draft.MedioPago))
}

// CargarItems reemplaza las líneas del editor. Un producto inexistente queda
// sin seleccionar y lo rechaza la validación.
func (f *VentaForm) CargarItems(lineas []VentaItemDraft) error {
	f.Items = items.NuevoVentaEditor(f.productos, nil)
	for i, l := range lineas {
		if i > 0 {
			f.Items.Agregar()
		}
		if err := f.Items.SeleccionarProducto(i, l.ProductoID); err != nil {
			return err
		}
		cambios := items.CambiosVenta{}
		if strings.TrimSpace(l.Cantidad) != "" {
			cant, err := validator.ParseDecimal(l.Cantidad)
			if err != nil {
				return &ValidationError{Field: "items", Message: alertaVentaCantidad}
			}
			cambios.Cantidad = &cant
		}
		if strings.TrimSpace(l.PrecioUnitario) != "" {
			precio, err := validator.ParseDecimal(l.PrecioUnitario)
			if err != nil {
				return &ValidationError{Field: "items", Message: alertaVentaPrecio}
			}
			cambios.PrecioUnitario = &precio
		}
		if err := f.Items.Actualizar(i, cambios); err != nil {
			return err
		}
	}
	return nil
}

// Validar: los campos de cabecera se juntan en FieldErrors; items y cheque
// cortan en la primera falla con *ValidationError.
func (f *VentaForm) Validar() error {
	if f.existente != nil && f.existente.EstaAnulada() {
		return domain.ErrAccionNoPermitida
	}
	if err := validarCampos(f.Draft, mensajesVenta).Err(); err != nil {
		return err
	}
	if err := f.validarItems(); err != nil {
		return err
	}
	if f.ChequeAplica() {
		if err := f.Draft.Cheque.ValidarPrimero(); err != nil {
			return err
		}
	}
	return nil
}

func (f *VentaForm) validarItems() *ValidationError {
	lineas := f.Items.Lineas()
	if len(lineas) == 0 {
		return &ValidationError{Field: "items", Message: alertaVentaSinItems}
	}
	for _, l := range lineas {
		if l.ProductoID == 0 {
			return &ValidationError{Field: "items", Message: alertaVentaSinProducto}
		}
	}
	for _, l := range lineas {
		if !l.Cantidad.IsPositive() {
			return &ValidationError{Field: "items", Message: alertaVentaCantidad}
		}
		if l.PrecioUnitario.IsNegative() {
			return &ValidationError{Field: "items", Message: alertaVentaPrecio}
		}
	}
	return nil
}

// Normalizar arma la venta completa; el total sale del editor.
func (f *VentaForm) Normalizar() (dto.VentaPayload, error) {
	if err := f.Validar(); err != nil {
		return dto.VentaPayload{}, err
	}
	d := f.Draft
	pg, err := pago(entity.MedioPago(d.MedioPago), d.Cheque)
	if err != nil {
		return dto.VentaPayload{}, err
	}

	lineas := f.Items.Lineas()
	p := dto.VentaPayload{
		Cliente:       dto.NuevaRef(f.resolverCliente()),
		NombreCliente: strings.TrimSpace(d.NombreCliente),
		Descripcion:   strings.TrimSpace(d.Descripcion),
		Estado:        d.Estado,
		Total:         f.Items.Total(),
		Items:         make([]dto.VentaItemPayload, 0, len(lineas)),
	}
	for _, l := range lineas {
		p.Items = append(p.Items, dto.VentaItemPayload{
			Producto:       dto.Ref{ID: l.ProductoID},
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.PrecioUnitario,
			Subtotal:       l.Subtotal,
		})
	}
	if e := f.existente; e != nil {
		p.ID = e.ID
		p.NumeroInterno = e.NumeroInterno
		if !e.Fecha.Vacia() {
			fecha := e.Fecha
			p.Fecha = &fecha
		}
	}
	p.AplicarPago(pg)
	return p, nil
}

// resolverCliente usa el id elegido o busca el nombre exacto (sin distinguir mayúsculas).
func (f *VentaForm) resolverCliente() int64 {
	if f.Draft.ClienteID != 0 {
		return f.Draft.ClienteID
	}
	nombre := strings.TrimSpace(f.Draft.NombreCliente)
	for _, c := range f.clientes {
		if strings.EqualFold(strings.TrimSpace(c.Nombre), nombre) {
			return c.ID
		}
	}
	return 0
}

// Total derivado de los items.
func (f *VentaForm) Total() decimal.Decimal { return f.Items.Total() }
