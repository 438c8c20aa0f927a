package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Códigos de condición de IVA usados en remitos (clienteAclaracion).
const (
	AclaracionConsumidorFinal      = "CONSUMIDOR_FINAL"
	AclaracionResponsableInscripto = "RESPONSABLE_INSCRIPTO"
	AclaracionMonotributo          = "MONOTRIBUTO"
	AclaracionExento               = "EXENTO"
	AclaracionNoResponsable        = "NO_RESPONSABLE"
	AclaracionOtro                 = "OTRO"
)

var etiquetasAclaracion = map[string]string{
	AclaracionConsumidorFinal:      "Consumidor Final",
	AclaracionResponsableInscripto: "Responsable Inscripto",
	AclaracionMonotributo:          "Monotributista",
	AclaracionExento:               "Exento",
	AclaracionNoResponsable:        "No Responsable",
	AclaracionOtro:                 "Otro",
}

// AclaracionValida indica si el código pertenece a la lista (vacío se admite).
func AclaracionValida(codigo string) bool {
	if codigo == "" {
		return true
	}
	_, ok := etiquetasAclaracion[codigo]
	return ok
}

// EtiquetaAclaracion texto impreso en el remito; vacío equivale a Consumidor Final.
func EtiquetaAclaracion(codigo string) string {
	if codigo == "" {
		return etiquetasAclaracion[AclaracionConsumidorFinal]
	}
	if e, ok := etiquetasAclaracion[codigo]; ok {
		return e
	}
	return codigo
}

// Remito nota de entrega; Numero es secuencial y lo asigna el backend.
type Remito struct {
	ID                  int64        `json:"id,omitempty"`
	Numero              int64        `json:"numero,omitempty"`
	Fecha               FechaHora    `json:"fecha"`
	Proveedor           *Proveedor   `json:"proveedor"`
	Cliente             *Cliente     `json:"cliente"`
	ClienteNombre       string       `json:"clienteNombre,omitempty"`
	ClienteDireccion    string       `json:"clienteDireccion,omitempty"`
	ClienteCodigoPostal string       `json:"clienteCodigoPostal,omitempty"`
	ClienteAclaracion   string       `json:"clienteAclaracion,omitempty"`
	Observaciones       string       `json:"observaciones,omitempty"`
	Items               []RemitoItem `json:"items"`
}

// RemitoItem línea de remito.
type RemitoItem struct {
	ID       int64           `json:"id,omitempty"`
	Producto *Producto       `json:"producto"`
	Cantidad decimal.Decimal `json:"cantidad"`
	Notas    string          `json:"notas,omitempty"`
}

// NombreArchivoPDF nombre con el que se guarda la descarga.
func (r Remito) NombreArchivoPDF() string {
	return fmt.Sprintf("remito_%d.pdf", r.Numero)
}

// NombreDestinatario snapshot del cliente o, si falta, el nombre del cliente vinculado.
func (r Remito) NombreDestinatario() string {
	if r.ClienteNombre != "" {
		return r.ClienteNombre
	}
	if r.Cliente != nil {
		return r.Cliente.Nombre
	}
	return ""
}

// ResumenItems primeros dos productos y "(+N)" por el resto.
func (r Remito) ResumenItems() string {
	nombres := make([]string, 0, len(r.Items))
	for _, it := range r.Items {
		nombres = append(nombres, nombreProducto(it.Producto))
	}
	return resumirNombres(nombres)
}
