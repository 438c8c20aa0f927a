package forms

import (
	"strings"
	"time"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/dto"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/items"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/pkg/validator"
)

// Alertas de items de remito (cortan en la primera falla).
const (
	alertaRemitoSinItems    = "Agregá al menos un item."
	alertaRemitoSinProducto = "Cada item debe tener un producto seleccionado."
	alertaRemitoCantidad    = "Cantidad inválida en un item."
)

// RemitoDraft cabecera del remito con los datos del destinatario copiados al documento.
type RemitoDraft struct {
	Fecha               string `json:"fecha" validate:"requerido,fecha"`
	ProveedorID         int64  `json:"proveedorId"`
	ClienteID           int64  `json:"clienteId"`
	ClienteNombre       string `json:"clienteNombre"`
	ClienteDireccion    string `json:"clienteDireccion"`
	ClienteCodigoPostal string `json:"clienteCodigoPostal"`
	ClienteAclaracion   string `json:"clienteAclaracion" validate:"aclaracion_iva"`
	Observaciones       string `json:"observaciones"`
}

// RemitoItemDraft línea tal como llega de una pantalla o del panel.
type RemitoItemDraft struct {
	ProductoID int64  `json:"productoId"`
	Cantidad   string `json:"cantidad"`
	Notas      string `json:"notas"`
}

var mensajesRemito = mensajes{
	"fecha.requerido":   "La fecha es requerida",
	"fecha.fecha":       "La fecha no es válida",
	"clienteAclaracion": "Condición de IVA inválida",
}

// RemitoForm alta o edición de un remito.
type RemitoForm struct {
	existente *entity.Remito
	productos []entity.Producto
	clientes  []entity.Cliente
	Draft     RemitoDraft
	Items     *items.RemitoEditor
}

// NuevoRemitoForm un alta arranca con la fecha de hoy y un item en blanco.
func NuevoRemitoForm(existente *entity.Remito, productos []entity.Producto, clientes []entity.Cliente, hoy time.Time) *RemitoForm {
	f := &RemitoForm{
		productos: productos,
		clientes:  clientes,
		Draft:     RemitoDraft{Fecha: entity.NuevaFecha(hoy).String()},
		Items:     items.NuevoRemitoEditor(productos, nil),
	}
	if existente != nil {
		cp := *existente
		f.existente = &cp
		f.Draft = RemitoDraft{
			Fecha:               existente.Fecha.Dia().String(),
			ClienteNombre:       existente.ClienteNombre,
			ClienteDireccion:    existente.ClienteDireccion,
			ClienteCodigoPostal: existente.ClienteCodigoPostal,
			ClienteAclaracion:   existente.ClienteAclaracion,
			Observaciones:       existente.Observaciones,
		}
		if existente.Proveedor != nil {
			f.Draft.ProveedorID = existente.Proveedor.ID
		}
		if existente.Cliente != nil {
			f.Draft.ClienteID = existente.Cliente.ID
		}
		f.Items = items.NuevoRemitoEditor(productos, existente.Items)
	}
	return f
}

func (f *RemitoForm) ID() int64 {
	if f.existente == nil {
		return 0
	}
	return f.existente.ID
}

// SeleccionarCliente vincula el cliente y completa nombre y dirección si están en blanco.
// Con id 0 se desvincula.
func (f *RemitoForm) SeleccionarCliente(id int64) {
	f.Draft.ClienteID = id
	c, ok := f.buscarCliente(id)
	if !ok {
		return
	}
	if strings.TrimSpace(f.Draft.ClienteNombre) == "" {
		f.Draft.ClienteNombre = c.Nombre
	}
	if strings.TrimSpace(f.Draft.ClienteDireccion) == "" {
		f.Draft.ClienteDireccion = c.Direccion
	}
}

func (f *RemitoForm) buscarCliente(id int64) (entity.Cliente, bool) {
	if id == 0 {
		return entity.Cliente{}, false
	}
	for _, c := range f.clientes {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Cliente{}, false
}

// CargarItems reemplaza las líneas del editor.
func (f *RemitoForm) CargarItems(lineas []RemitoItemDraft) error {
	f.Items = items.NuevoRemitoEditor(f.productos, nil)
	for i, l := range lineas {
		if i > 0 {
			f.Items.Agregar()
		}
		if err := f.Items.SeleccionarProducto(i, l.ProductoID); err != nil {
			return err
		}
		notas := l.Notas
		cambios := items.CambiosRemito{Notas: &notas}
		if strings.TrimSpace(l.Cantidad) != "" {
			cant, err := validator.ParseDecimal(l.Cantidad)
			if err != nil {
				return &ValidationError{Field: "items", Message: alertaRemitoCantidad}
			}
			cambios.Cantidad = &cant
		}
		if err := f.Items.Actualizar(i, cambios); err != nil {
			return err
		}
	}
	return nil
}

// Validar: cabecera agregada en FieldErrors; items cortan en la primera falla.
func (f *RemitoForm) Validar() error {
	if err := validarCampos(f.Draft, mensajesRemito).Err(); err != nil {
		return err
	}
	lineas := f.Items.Lineas()
	if len(lineas) == 0 {
		return &ValidationError{Field: "items", Message: alertaRemitoSinItems}
	}
	for _, l := range lineas {
		if l.ProductoID == 0 {
			return &ValidationError{Field: "items", Message: alertaRemitoSinProducto}
		}
		if !l.Cantidad.IsPositive() {
			return &ValidationError{Field: "items", Message: alertaRemitoCantidad}
		}
	}
	return nil
}

// Normalizar arma el remito completo. El nombre del destinatario cae en el
// nombre del cliente vinculado si quedó en blanco.
func (f *RemitoForm) Normalizar() (dto.RemitoPayload, error) {
	if err := f.Validar(); err != nil {
		return dto.RemitoPayload{}, err
	}
	d := f.Draft
	dia, err := entity.ParseFecha(d.Fecha)
	if err != nil {
		return dto.RemitoPayload{}, FieldErrors{"fecha": mensajesRemito["fecha.fecha"]}
	}

	nombre := strings.TrimSpace(d.ClienteNombre)
	if nombre == "" {
		if c, ok := f.buscarCliente(d.ClienteID); ok {
			nombre = c.Nombre
		}
	}

	p := dto.RemitoPayload{
		Fecha:               entity.FechaHora{Time: dia.Time},
		Proveedor:           dto.NuevaRef(d.ProveedorID),
		Cliente:             dto.NuevaRef(d.ClienteID),
		ClienteNombre:       nombre,
		ClienteDireccion:    strings.TrimSpace(d.ClienteDireccion),
		ClienteCodigoPostal: strings.TrimSpace(d.ClienteCodigoPostal),
		ClienteAclaracion:   d.ClienteAclaracion,
		Observaciones:       strings.TrimSpace(d.Observaciones),
	}
	if e := f.existente; e != nil {
		p.ID = e.ID
		// misma fecha: se conserva la hora original
		if e.Fecha.Dia().String() == dia.String() {
			p.Fecha = e.Fecha
		}
	}
	for _, l := range f.Items.Lineas() {
		p.Items = append(p.Items, dto.RemitoItemPayload{
			Producto: dto.Ref{ID: l.ProductoID},
			Cantidad: l.Cantidad,
			Notas:    strings.TrimSpace(l.Notas),
		})
	}
	return p, nil
}
