// Package autocomplete sugiere clientes a partir del texto libre que se escribe
// en el campo cliente, con navegación por teclado.
package autocomplete

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// MaxSugerencias tope de la lista desplegable.
const MaxSugerencias = 8

// Tecla de navegación.
type Tecla int

const (
	Arriba Tecla = iota
	Abajo
	Enter
	Escape
)

// Sugeridor estado del desplegable. Indice -1 significa sin resaltado.
type Sugeridor struct {
	clientes []entity.Cliente

	texto       string
	sugerencias []entity.Cliente
	indice      int
	abierto     bool
	elegido     *entity.Cliente
}

// New construye el sugeridor sobre la lista de clientes ya traída.
func New(clientes []entity.Cliente) *Sugeridor {
	cp := make([]entity.Cliente, len(clientes))
	copy(cp, clientes)
	return &Sugeridor{clientes: cp, indice: -1}
}

// Sugerir primero los nombres que empiezan con el texto y después los que lo
// contienen, respetando el orden de la lista, hasta tope resultados.
func Sugerir(clientes []entity.Cliente, texto string, tope int) []entity.Cliente {
	texto = strings.TrimSpace(texto)
	out := make([]entity.Cliente, 0)
	if texto == "" || tope <= 0 {
		return out
	}
	fold := cases.Fold()
	buscado := fold.String(texto)
	var contienen []entity.Cliente
	for _, c := range clientes {
		nombre := fold.String(c.Nombre)
		switch {
		case strings.HasPrefix(nombre, buscado):
			out = append(out, c)
		case strings.Contains(nombre, buscado):
			contienen = append(contienen, c)
		}
	}
	out = append(out, contienen...)
	if len(out) > tope {
		out = out[:tope]
	}
	return out
}

// Escribir actualiza el texto y recalcula las sugerencias. Escribir descarta
// la elección previa: el texto vuelve a ser libre.
func (s *Sugeridor) Escribir(texto string) {
	s.texto = texto
	s.elegido = nil
	s.sugerencias = Sugerir(s.clientes, texto, MaxSugerencias)
	s.indice = -1
	s.abierto = len(s.sugerencias) > 0
}

// Tecla procesa una tecla. Con Enter sobre una sugerencia resaltada devuelve
// el cliente elegido.
func (s *Sugeridor) Tecla(t Tecla) (entity.Cliente, bool) {
	switch t {
	case Abajo:
		if len(s.sugerencias) == 0 {
			return entity.Cliente{}, false
		}
		s.abierto = true
		if s.indice < len(s.sugerencias)-1 {
			s.indice++
		}
	case Arriba:
		if s.abierto && s.indice > 0 {
			s.indice--
		}
	case Enter:
		if s.abierto && s.indice >= 0 {
			return s.Seleccionar(s.indice)
		}
	case Escape:
		s.cerrar()
	}
	return entity.Cliente{}, false
}

// Seleccionar elige la sugerencia i: el texto pasa a ser el nombre del cliente
// y el desplegable se cierra.
func (s *Sugeridor) Seleccionar(i int) (entity.Cliente, bool) {
	if i < 0 || i >= len(s.sugerencias) {
		return entity.Cliente{}, false
	}
	c := s.sugerencias[i]
	s.texto = c.Nombre
	s.elegido = &c
	s.cerrar()
	return c, true
}

func (s *Sugeridor) cerrar() {
	s.abierto = false
	s.indice = -1
}

// Texto actual del campo.
func (s *Sugeridor) Texto() string { return s.texto }

// Sugerencias visibles; vacío si el desplegable está cerrado.
func (s *Sugeridor) Sugerencias() []entity.Cliente {
	if !s.abierto {
		return nil
	}
	out := make([]entity.Cliente, len(s.sugerencias))
	copy(out, s.sugerencias)
	return out
}

// Indice resaltado, -1 si ninguno.
func (s *Sugeridor) Indice() int { return s.indice }

// Abierto indica si el desplegable se muestra.
func (s *Sugeridor) Abierto() bool { return s.abierto }

// Elegido cliente seleccionado desde el desplegable, si lo hay.
func (s *Sugeridor) Elegido() (entity.Cliente, bool) {
	if s.elegido == nil {
		return entity.Cliente{}, false
	}
	return *s.elegido, true
}
