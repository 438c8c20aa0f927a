package listing

import (
	"strings"

	"golang.org/x/text/cases"
)

// Coincide búsqueda de subcadena sin distinguir mayúsculas en cualquiera de los campos.
// Un texto vacío coincide con todo.
func Coincide(texto string, campos ...string) bool {
	texto = strings.TrimSpace(texto)
	if texto == "" {
		return true
	}
	fold := cases.Fold()
	buscado := fold.String(texto)
	for _, c := range campos {
		if c != "" && strings.Contains(fold.String(c), buscado) {
			return true
		}
	}
	return false
}
