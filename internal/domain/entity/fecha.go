package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	LayoutFecha     = "2006-01-02"
	LayoutFechaHora = "2006-01-02T15:04:05"
)

// layoutsLectura formatos aceptados al leer fechas del backend.
var layoutsLectura = []string{
	LayoutFechaHora,
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
	LayoutFecha,
}

// Fecha es una fecha calendario (sin hora). Se serializa "2006-01-02" o null.
type Fecha struct {
	time.Time
}

// NuevaFecha recorta t al día de su propia zona (medianoche local).
func NuevaFecha(t time.Time) Fecha {
	y, m, d := t.Date()
	return Fecha{time.Date(y, m, d, 0, 0, 0, 0, time.Local)}
}

// ParseFecha acepta "2006-01-02" (o una fecha-hora, de la que toma el día).
// Un string vacío devuelve la fecha cero sin error.
func ParseFecha(s string) (Fecha, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Fecha{}, nil
	}
	t, err := parseFlexible(s)
	if err != nil {
		return Fecha{}, fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	return NuevaFecha(t), nil
}

// Vacia indica si la fecha no fue cargada.
func (f Fecha) Vacia() bool { return f.Time.IsZero() }

// String devuelve "2006-01-02" o "".
func (f Fecha) String() string {
	if f.Vacia() {
		return ""
	}
	return f.Format(LayoutFecha)
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.Vacia() {
		return []byte("null"), nil
	}
	return json.Marshal(f.Format(LayoutFecha))
}

func (f *Fecha) UnmarshalJSON(b []byte) error {
	s, ok, err := stringJSON(b)
	if err != nil || !ok {
		*f = Fecha{}
		return err
	}
	v, err := ParseFecha(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// FechaHora es un instante local sin zona en el cable ("2006-01-02T15:04:05").
type FechaHora struct {
	time.Time
}

// Vacia indica si no fue cargada.
func (f FechaHora) Vacia() bool { return f.Time.IsZero() }

// Dia devuelve la parte fecha.
func (f FechaHora) Dia() Fecha {
	if f.Vacia() {
		return Fecha{}
	}
	return NuevaFecha(f.Time)
}

func (f FechaHora) MarshalJSON() ([]byte, error) {
	if f.Vacia() {
		return []byte("null"), nil
	}
	return json.Marshal(f.Format(LayoutFechaHora))
}

func (f *FechaHora) UnmarshalJSON(b []byte) error {
	s, ok, err := stringJSON(b)
	if err != nil || !ok {
		*f = FechaHora{}
		return err
	}
	t, err := parseFlexible(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("fecha-hora inválida %q: %w", s, err)
	}
	*f = FechaHora{t.Local()}
	return nil
}

// stringJSON devuelve (valor, presente, error). null y "" cuentan como ausentes.
func stringJSON(b []byte) (string, bool, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return "", false, nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return "", false, fmt.Errorf("fecha: se esperaba string: %w", err)
	}
	if strings.TrimSpace(s) == "" {
		return "", false, nil
	}
	return s, true, nil
}

func parseFlexible(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range layoutsLectura {
		// RFC3339 conserva su zona: la fecha calendario se toma en esa zona
		if layout == time.RFC3339Nano {
			t, err := time.Parse(layout, s)
			if err == nil {
				return t, nil
			}
			lastErr = err
			continue
		}
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
