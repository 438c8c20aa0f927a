package entity

// Cliente persona o empresa a la que se vende. La identidad la asigna el backend.
type Cliente struct {
	ID        int64  `json:"id,omitempty"`
	Nombre    string `json:"nombre"`
	Documento string `json:"documento,omitempty"`
	Direccion string `json:"direccion,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
	Notas     string `json:"notas,omitempty"`
}
