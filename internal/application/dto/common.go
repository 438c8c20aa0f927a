package dto

// Ref referencia por id a otra entidad en un payload ({"id": n}).
type Ref struct {
	ID int64 `json:"id"`
}

// NuevaRef devuelve nil para id 0 (referencia ausente).
func NuevaRef(id int64) *Ref {
	if id == 0 {
		return nil
	}
	return &Ref{ID: id}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse errores por campo (422).
type ValidationErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Campos  map[string]string `json:"campos,omitempty"`
}
