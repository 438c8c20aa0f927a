package listing

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/dto"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/forms"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/ports"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/calculo"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

// RemitosPage listado de remitos.
type RemitosPage struct {
	*pagina[entity.Remito, dto.RemitoPayload]
	api       ports.RemitosAPI
	catalogos Catalogos
	local     ports.RemitoPDFGenerator
}

// NewRemitosPage construye la página. local puede ser nil si no se genera PDF en el cliente.
func NewRemitosPage(api ports.RemitosAPI, catalogos Catalogos, local ports.RemitoPDFGenerator, conf ports.Confirmador, log zerolog.Logger) *RemitosPage {
	return &RemitosPage{
		pagina: nuevaPagina[entity.Remito, dto.RemitoPayload]("remitos", api, conf,
			func(r entity.Remito) int64 { return r.ID }, log),
		api:       api,
		catalogos: catalogos,
		local:     local,
	}
}

// Filtrar por número o nombre del destinatario.
func (p *RemitosPage) Filtrar(texto string) []entity.Remito {
	return p.Controller.Filtrar(func(r entity.Remito) bool {
		return Coincide(texto, strconv.FormatInt(r.Numero, 10), r.NombreDestinatario())
	})
}

// Filas remitos filtrados con resumen de items y nombre de archivo.
func (p *RemitosPage) Filas(texto string) []dto.RemitoFila {
	rs := p.Filtrar(texto)
	out := make([]dto.RemitoFila, 0, len(rs))
	for _, r := range rs {
		out = append(out, dto.RemitoFila{Remito: r, ResumenItems: r.ResumenItems(), ArchivoPDF: r.NombreArchivoPDF()})
	}
	return out
}

// Resumen estadísticas sobre la colección completa.
func (p *RemitosPage) Resumen() dto.ResumenRemitos {
	ahora := p.ahora()
	rs := p.Items()
	return dto.ResumenRemitos{
		Total:      len(rs),
		ConCliente: calculo.ContarPor(rs, func(r entity.Remito) bool { return r.Cliente != nil }),
		Hoy: calculo.ContarPor(rs, func(r entity.Remito) bool {
			return !r.Fecha.Vacia() && calculo.MismoDia(r.Fecha.Time, ahora)
		}),
		EsteMes: calculo.ContarPor(rs, func(r entity.Remito) bool {
			return !r.Fecha.Vacia() && calculo.MismoMes(r.Fecha.Time, ahora)
		}),
	}
}

// AbrirNuevo trae los catálogos y abre el formulario con la fecha de hoy.
func (p *RemitosPage) AbrirNuevo(ctx context.Context) *forms.RemitoForm {
	productos, clientes := p.catalogos.cargar(ctx, p.log)
	f := forms.NuevoRemitoForm(nil, productos, clientes, p.ahora())
	p.abrir(f)
	return f
}

// AbrirEdicion abre el formulario precargado con la fila.
func (p *RemitosPage) AbrirEdicion(ctx context.Context, id int64) (*forms.RemitoForm, error) {
	r, err := p.porID(id)
	if err != nil {
		return nil, err
	}
	productos, clientes := p.catalogos.cargar(ctx, p.log)
	f := forms.NuevoRemitoForm(&r, productos, clientes, p.ahora())
	p.abrir(f)
	return f, nil
}

// DescargarPDF devuelve el nombre de archivo y el contenido que genera el backend.
func (p *RemitosPage) DescargarPDF(ctx context.Context, id int64) (string, []byte, error) {
	r, err := p.porID(id)
	if err != nil {
		return "", nil, err
	}
	b, err := p.api.DescargarPDF(ctx, id)
	if err != nil {
		return "", nil, err
	}
	return r.NombreArchivoPDF(), b, nil
}

// GenerarPDFLocal arma el PDF en el cliente, para cuando el backend no responde.
func (p *RemitosPage) GenerarPDFLocal(ctx context.Context, id int64) (string, []byte, error) {
	r, err := p.porID(id)
	if err != nil {
		return "", nil, err
	}
	if p.local == nil {
		return p.DescargarPDF(ctx, id)
	}
	b, err := p.local.GenerarRemitoPDF(ctx, &r)
	if err != nil {
		return "", nil, err
	}
	return r.NombreArchivoPDF(), b, nil
}
