package entity

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MedioPago medio de pago compartido por ventas y movimientos de tesorería.
type MedioPago string

const (
	MedioEfectivo          MedioPago = "EFECTIVO"
	MedioTransferencia     MedioPago = "TRANSFERENCIA"
	MedioTarjetaDebito     MedioPago = "TARJETA_DEBITO"
	MedioTarjetaCredito    MedioPago = "TARJETA_CREDITO"
	MedioCheque            MedioPago = "CHEQUE"
	MedioChequeElectronico MedioPago = "CHEQUE_ELECTRONICO"
	MedioMercadoPago       MedioPago = "MERCADO_PAGO"
)

// MediosPago en el orden en que se ofrecen.
var MediosPago = []MedioPago{
	MedioEfectivo, MedioTransferencia, MedioTarjetaDebito, MedioTarjetaCredito,
	MedioCheque, MedioChequeElectronico, MedioMercadoPago,
}

var etiquetasMedio = map[MedioPago]string{
	MedioEfectivo:          "Efectivo",
	MedioTransferencia:     "Transferencia",
	MedioTarjetaDebito:     "Tarjeta de Débito",
	MedioTarjetaCredito:    "Tarjeta de Crédito",
	MedioCheque:            "Cheque",
	MedioChequeElectronico: "Cheque Electrónico",
	MedioMercadoPago:       "Mercado Pago",
}

// ParseMedioPago normaliza el texto recibido. Acepta la variante acentuada
// CHEQUE_ELECTRÓNICO que guardaban versiones viejas del formulario.
func ParseMedioPago(s string) (MedioPago, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "Ó", "O")
	s = strings.ReplaceAll(s, " ", "_")
	m := MedioPago(s)
	return m, m.Valido()
}

// Valido indica si el medio pertenece al enum.
func (m MedioPago) Valido() bool {
	_, ok := etiquetasMedio[m]
	return ok
}

// EsCheque es verdadero para CHEQUE y CHEQUE_ELECTRONICO.
func (m MedioPago) EsCheque() bool {
	return m == MedioCheque || m == MedioChequeElectronico
}

// Etiqueta texto para mostrar.
func (m MedioPago) Etiqueta() string {
	if e, ok := etiquetasMedio[m]; ok {
		return e
	}
	return string(m)
}

func (m *MedioPago) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("medioPago: %w", err)
	}
	if s == nil {
		*m = ""
		return nil
	}
	if v, ok := ParseMedioPago(*s); ok {
		*m = v
		return nil
	}
	*m = MedioPago(*s)
	return nil
}
