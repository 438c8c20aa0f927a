// Package importacion carga el catálogo inicial de productos desde la planilla
// que exporta el sistema viejo del local (CSV separado por ';' en Latin-1).
package importacion

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/dto"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/forms"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/ports"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// Columnas en el orden de la planilla.
var Columnas = []string{"sku", "nombre", "precioCosto", "precioVenta", "stock", "unidad", "vencimiento"}

// Rechazo fila que no se pudo dar de alta.
type Rechazo struct {
	Linea int
	SKU   string
	Err   error
}

// Resultado de una importación.
type Resultado struct {
	Creados    int
	Rechazados []Rechazo
}

// Importador valida cada fila con el formulario de alta y la envía al backend.
type Importador struct {
	destino ports.Guardable[entity.Producto, dto.ProductoPayload]
	log     zerolog.Logger
	// Latin1 decodifica la entrada como ISO-8859-1 (así la exporta el sistema anterior)
	Latin1 bool
}

func NewImportador(destino ports.Guardable[entity.Producto, dto.ProductoPayload], log zerolog.Logger) *Importador {
	return &Importador{destino: destino, log: log, Latin1: true}
}

// Importar recorre las filas. Una fila inválida o rechazada por el backend se
// informa y se saltea; un backend caído corta la importación.
func (im *Importador) Importar(ctx context.Context, r io.Reader) (Resultado, error) {
	if im.Latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var res Resultado
	for n := 0; ; n++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("leer planilla: %w", err)
		}
		linea, _ := cr.FieldPos(0)
		if n == 0 && esEncabezado(rec) {
			continue
		}
		if vacia(rec) {
			continue
		}

		f, err := formularioDeFila(rec)
		if err == nil {
			_, err = forms.Enviar[entity.Producto, dto.ProductoPayload](ctx, f, im.destino)
		}
		if err != nil {
			if errors.Is(err, domain.ErrBackendUnavailable) || ctx.Err() != nil {
				return res, err
			}
			sku := campo(rec, 0)
			im.log.Warn().Int("linea", linea).Str("sku", sku).Err(err).Msg("fila rechazada")
			res.Rechazados = append(res.Rechazados, Rechazo{Linea: linea, SKU: sku, Err: err})
			continue
		}
		res.Creados++
	}
	im.log.Info().Int("creados", res.Creados).Int("rechazados", len(res.Rechazados)).Msg("importación terminada")
	return res, nil
}

func formularioDeFila(rec []string) (*forms.ProductoForm, error) {
	if len(rec) < 2 {
		return nil, &forms.ValidationError{
			Field:   "sku",
			Message: fmt.Sprintf("se esperaban %d columnas, llegaron %d", len(Columnas), len(rec)),
		}
	}
	f := forms.NuevoProductoForm(nil)
	f.Draft.SKU = campo(rec, 0)
	f.Draft.Nombre = campo(rec, 1)
	f.Draft.PrecioCosto = campo(rec, 2)
	f.Draft.PrecioVenta = campo(rec, 3)
	f.Draft.Stock = campo(rec, 4)
	f.Draft.UnidadMedida = campo(rec, 5)
	f.Draft.FechaVencimiento = campo(rec, 6)
	return f, nil
}

func campo(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func esEncabezado(rec []string) bool {
	return strings.EqualFold(campo(rec, 0), Columnas[0])
}

func vacia(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
