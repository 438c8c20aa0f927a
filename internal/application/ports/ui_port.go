package ports

import (
	"context"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// Confirmador pide confirmación antes de una acción destructiva.
// Devuelve false si el usuario cancela.
type Confirmador interface {
	Confirmar(mensaje string) bool
}

// ConfirmadorFunc adapta una función a Confirmador.
type ConfirmadorFunc func(mensaje string) bool

func (f ConfirmadorFunc) Confirmar(mensaje string) bool { return f(mensaje) }

// SiempreConfirmar para llamadores que ya confirmaron (panel HTTP, tests).
var SiempreConfirmar Confirmador = ConfirmadorFunc(func(string) bool { return true })

// RemitoPDFGenerator genera localmente la representación impresa de un remito.
type RemitoPDFGenerator interface {
	GenerarRemitoPDF(ctx context.Context, remito *entity.Remito) ([]byte, error)
}
