package forms

import (
	"strings"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/dto"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// ProveedorDraft campos editables del proveedor.
type ProveedorDraft struct {
	Nombre       string `json:"nombre" validate:"requerido"`
	Cuit         string `json:"cuit"`
	Direccion    string `json:"direccion"`
	Telefono     string `json:"telefono"`
	Email        string `json:"email" validate:"omitempty,email_simple"`
	CondicionIva string `json:"condicionIva" validate:"condicion_iva"`
	Notas        string `json:"notas"`
}

var mensajesProveedor = mensajes{
	"nombre":       "El nombre es requerido",
	"email":        "El email no es válido",
	"condicionIva": "Condición de IVA inválida",
}

// ProveedorForm alta o edición de un proveedor.
type ProveedorForm struct {
	id    int64
	Draft ProveedorDraft
}

// NuevoProveedorForm precarga el borrador desde un proveedor existente.
func NuevoProveedorForm(existente *entity.Proveedor) *ProveedorForm {
	f := &ProveedorForm{}
	if existente != nil {
		f.id = existente.ID
		f.Draft = ProveedorDraft{
			Nombre:       existente.Nombre,
			Cuit:         existente.Cuit,
			Direccion:    existente.Direccion,
			Telefono:     existente.Telefono,
			Email:        existente.Email,
			CondicionIva: existente.CondicionIva,
			Notas:        existente.Notas,
		}
	}
	return f
}

func (f *ProveedorForm) ID() int64 { return f.id }

// Validar devuelve FieldErrors con todos los campos inválidos.
func (f *ProveedorForm) Validar() error {
	return validarCampos(f.Draft, mensajesProveedor).Err()
}

// Normalizar valida y arma el payload.
func (f *ProveedorForm) Normalizar() (dto.ProveedorPayload, error) {
	if err := f.Validar(); err != nil {
		return dto.ProveedorPayload{}, err
	}
	d := f.Draft
	return dto.ProveedorPayload{
		ID:           f.id,
		Nombre:       strings.TrimSpace(d.Nombre),
		Cuit:         strings.TrimSpace(d.Cuit),
		Direccion:    strings.TrimSpace(d.Direccion),
		Telefono:     strings.TrimSpace(d.Telefono),
		Email:        strings.TrimSpace(d.Email),
		CondicionIva: d.CondicionIva,
		Notas:        strings.TrimSpace(d.Notas),
	}, nil
}
