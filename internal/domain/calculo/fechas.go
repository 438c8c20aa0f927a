package calculo

import (
	"fmt"
	"math"
	"time"
)

const (
	LayoutPantalla = "02/01/2006"
	milisPorDia    = 86400000
)

// DiasHasta = ceil((objetivo - ahora) / 86400000 ms).
// Negativo si el objetivo ya pasó; 0 durante el mismo día.
func DiasHasta(objetivo, ahora time.Time) int {
	ms := objetivo.Sub(ahora).Milliseconds()
	return int(math.Ceil(float64(ms) / milisPorDia))
}

// FormatearFecha dd/mm/aaaa; vacío para la fecha cero.
func FormatearFecha(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(LayoutPantalla)
}

// InicioDelDia medianoche local del día de t.
func InicioDelDia(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// MismoDia compara año, mes y día.
func MismoDia(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// MismoMes compara año y mes.
func MismoMes(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// EtiquetaMes devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func EtiquetaMes(t time.Time) string {
	meses := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", meses[t.Month()-1], t.Year())
}
