package forms

import (
	"strings"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/dto"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// ClienteDraft campos editables del cliente.
type ClienteDraft struct {
	Nombre    string `json:"nombre" validate:"requerido"`
	Documento string `json:"documento"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email" validate:"omitempty,email_simple"`
	Notas     string `json:"notas"`
}

var mensajesCliente = mensajes{
	"nombre": "El nombre es requerido",
	"email":  "El email no es válido",
}

// ClienteForm alta o edición de un cliente.
type ClienteForm struct {
	id    int64
	Draft ClienteDraft
}

// NuevoClienteForm precarga el borrador si se edita un cliente existente.
func NuevoClienteForm(existente *entity.Cliente) *ClienteForm {
	f := &ClienteForm{}
	if existente != nil {
		f.id = existente.ID
		f.Draft = ClienteDraft{
			Nombre:    existente.Nombre,
			Documento: existente.Documento,
			Direccion: existente.Direccion,
			Telefono:  existente.Telefono,
			Email:     existente.Email,
			Notas:     existente.Notas,
		}
	}
	return f
}

// ID del cliente editado; 0 en un alta.
func (f *ClienteForm) ID() int64 { return f.id }

// Validar devuelve FieldErrors con todos los campos inválidos.
func (f *ClienteForm) Validar() error {
	return validarCampos(f.Draft, mensajesCliente).Err()
}

// Normalizar valida y arma el payload con los textos recortados.
func (f *ClienteForm) Normalizar() (dto.ClientePayload, error) {
	if err := f.Validar(); err != nil {
		return dto.ClientePayload{}, err
	}
	d := f.Draft
	return dto.ClientePayload{
		ID:        f.id,
		Nombre:    strings.TrimSpace(d.Nombre),
		Documento: strings.TrimSpace(d.Documento),
		Direccion: strings.TrimSpace(d.Direccion),
		Telefono:  strings.TrimSpace(d.Telefono),
		Email:     strings.TrimSpace(d.Email),
		Notas:     strings.TrimSpace(d.Notas),
	}, nil
}
