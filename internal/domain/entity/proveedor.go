package entity

import "encoding/json"

// Condiciones frente al IVA de un proveedor.
const (
	IvaResponsableInscripto = "Responsable Inscripto"
	IvaMonotributista       = "Monotributista"
	IvaExento               = "Exento"
	IvaConsumidorFinal      = "Consumidor Final"
)

// CondicionesIva valores admitidos para Proveedor.CondicionIva.
var CondicionesIva = []string{
	IvaResponsableInscripto, IvaMonotributista, IvaExento, IvaConsumidorFinal,
}

// Proveedor tiene la forma de Cliente más CUIT y condición de IVA.
type Proveedor struct {
	ID           int64  `json:"id,omitempty"`
	Nombre       string `json:"nombre"`
	Cuit         string `json:"cuit,omitempty"`
	Direccion    string `json:"direccion,omitempty"`
	Telefono     string `json:"telefono,omitempty"`
	Email        string `json:"email,omitempty"`
	CondicionIva string `json:"condicionIva,omitempty"`
	Notas        string `json:"notas,omitempty"`
}

// UnmarshalJSON acepta el alias heredado condicion_iva.
func (p *Proveedor) UnmarshalJSON(b []byte) error {
	type alias Proveedor
	aux := struct {
		*alias
		CondicionIvaLegado string `json:"condicion_iva"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if p.CondicionIva == "" {
		p.CondicionIva = aux.CondicionIvaLegado
	}
	return nil
}
