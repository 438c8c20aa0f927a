package backend_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/dto"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/infrastructure/backend"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// peticion lo que el servidor de prueba recibió.
type peticion struct {
	Method      string
	Path        string
	ContentType string
	RequestID   string
	Body        string
}

type servidor struct {
	mu        sync.Mutex
	recibidas []peticion
}

func (s *servidor) ultima(t *testing.T) peticion {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.recibidas)
	return s.recibidas[len(s.recibidas)-1]
}

// nuevoServidor registra cada petición y responde con handler.
func nuevoServidor(t *testing.T, handler http.HandlerFunc) (*backend.API, *servidor) {
	t.Helper()
	s := &servidor{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.recibidas = append(s.recibidas, peticion{
			Method:      r.Method,
			Path:        r.URL.Path,
			ContentType: r.Header.Get("Content-Type"),
			RequestID:   r.Header.Get("X-Request-ID"),
			Body:        string(b),
		})
		s.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(ts.Close)

	c, err := backend.NewClient(config.BackendConfig{URL: ts.URL + "/api"}, zerolog.Nop())
	require.NoError(t, err)
	return backend.NewAPI(c), s
}

func responderJSON(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestListar_Productos(t *testing.T) {
	api, srv := nuevoServidor(t, responderJSON(200,
		`[{"id":1,"sku":"A1","nombre":"Alambre","precio_venta":12.5,"stock":3,"activo":true,"fechaVencimiento":"2026-05-01"}]`))

	ps, err := api.Productos.Listar(context.Background())
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.True(t, decimal.RequireFromString("12.5").Equal(ps[0].PrecioVenta), "alias precio_venta")
	assert.Equal(t, "2026-05-01", ps[0].FechaVencimiento.String())

	p := srv.ultima(t)
	assert.Equal(t, http.MethodGet, p.Method)
	assert.Equal(t, "/api/productos", p.Path)
	assert.NotEmpty(t, p.RequestID)
	assert.Empty(t, p.ContentType)
}

func TestListar_NullEsVacio(t *testing.T) {
	api, _ := nuevoServidor(t, responderJSON(200, `null`))
	cs, err := api.Clientes.Listar(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, cs)
	assert.Empty(t, cs)
}

func TestCrear_EnviaJSON(t *testing.T) {
	api, srv := nuevoServidor(t, responderJSON(200, `{"id":9,"nombre":"Ana"}`))

	c, err := api.Clientes.Crear(context.Background(), dto.ClientePayload{Nombre: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), c.ID)

	p := srv.ultima(t)
	assert.Equal(t, http.MethodPost, p.Method)
	assert.Equal(t, "/api/clientes", p.Path)
	assert.Equal(t, "application/json", p.ContentType)
	var enviado map[string]any
	require.NoError(t, json.Unmarshal([]byte(p.Body), &enviado))
	assert.Equal(t, "Ana", enviado["nombre"])
}

func TestActualizar_PorID(t *testing.T) {
	api, srv := nuevoServidor(t, responderJSON(200, `{"id":4,"tipo":"INGRESO","medioPago":"CHEQUE_ELECTRÓNICO","importe":100,"anulado":true}`))

	m, err := api.Tesoreria.Actualizar(context.Background(), 4, dto.MovimientoPayload{ID: 4, Anulado: true})
	require.NoError(t, err)
	assert.True(t, m.Anulado)
	assert.Equal(t, entity.MedioChequeElectronico, m.MedioPago)

	p := srv.ultima(t)
	assert.Equal(t, http.MethodPut, p.Method)
	assert.Equal(t, "/api/tesoreria/4", p.Path)
}

func TestAcciones_Rutas(t *testing.T) {
	api, srv := nuevoServidor(t, responderJSON(200, ``))
	ctx := context.Background()

	require.NoError(t, api.Ventas.Anular(ctx, 7))
	assert.Equal(t, peticion{Method: http.MethodPut, Path: "/api/ventas/7/anular"}, sinCabeceras(srv.ultima(t)))

	require.NoError(t, api.Tesoreria.Cobrar(ctx, 8))
	assert.Equal(t, peticion{Method: http.MethodPut, Path: "/api/tesoreria/8/cobrar"}, sinCabeceras(srv.ultima(t)))

	require.NoError(t, api.Productos.Eliminar(ctx, 9))
	assert.Equal(t, peticion{Method: http.MethodDelete, Path: "/api/productos/9"}, sinCabeceras(srv.ultima(t)))
}

func sinCabeceras(p peticion) peticion {
	return peticion{Method: p.Method, Path: p.Path}
}

func TestDescargarPDF(t *testing.T) {
	api, srv := nuevoServidor(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 ..."))
	})

	b, err := api.Remitos.DescargarPDF(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 ...", string(b))
	assert.Equal(t, "/api/remitos/3/pdf", srv.ultima(t).Path)
}

func TestDescargarPDF_MayorAlTopeEsError(t *testing.T) {
	const tope = 20 << 20
	api, _ := nuevoServidor(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(bytes.Repeat([]byte{'x'}, tope+1))
	})

	b, err := api.Remitos.DescargarPDF(context.Background(), 3)
	assert.ErrorIs(t, err, backend.ErrRespuestaGrande)
	assert.Nil(t, b)
}

func TestDescargarPDF_JustoEnElTope(t *testing.T) {
	const tope = 20 << 20
	api, _ := nuevoServidor(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(bytes.Repeat([]byte{'x'}, tope))
	})

	b, err := api.Remitos.DescargarPDF(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, b, tope)
}

func TestErrores_StatusADominio(t *testing.T) {
	casos := []struct {
		status int
		want   error
	}{
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusConflict, domain.ErrConflict},
		{http.StatusBadRequest, domain.ErrInvalidInput},
		{http.StatusUnprocessableEntity, domain.ErrInvalidInput},
		{http.StatusForbidden, domain.ErrUnauthorized},
	}
	for _, tc := range casos {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			api, _ := nuevoServidor(t, responderJSON(tc.status, ``))
			err := api.Clientes.Eliminar(context.Background(), 1)
			assert.ErrorIs(t, err, tc.want)
			apiErr, ok := backend.EsErrorServidor(err)
			require.True(t, ok)
			assert.Equal(t, tc.status, apiErr.Status)
		})
	}
}

func TestErrores_TextoDelServidor(t *testing.T) {
	api, _ := nuevoServidor(t, responderJSON(500, `{"timestamp":"x","status":500,"message":"Stock insuficiente"}`))
	_, err := api.Ventas.Crear(context.Background(), dto.VentaPayload{})
	require.Error(t, err)
	assert.Equal(t, "Stock insuficiente", err.Error())

	api, _ = nuevoServidor(t, responderJSON(500, `Error interno`))
	_, err = api.Ventas.Crear(context.Background(), dto.VentaPayload{})
	assert.Equal(t, "Error interno", err.Error())

	api, _ = nuevoServidor(t, responderJSON(502, ``))
	_, err = api.Ventas.Crear(context.Background(), dto.VentaPayload{})
	assert.Equal(t, "error del servidor (HTTP 502)", err.Error())
}

func TestErrores_ServidorCaido(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	c, err := backend.NewClient(config.BackendConfig{URL: url + "/api/"}, zerolog.Nop())
	require.NoError(t, err)
	_, err = backend.NewAPI(c).Clientes.Listar(context.Background())
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	_, esServidor := backend.EsErrorServidor(err)
	assert.False(t, esServidor)
}

func TestErrores_ContextoCancelado(t *testing.T) {
	api, _ := nuevoServidor(t, responderJSON(200, `[]`))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := api.Clientes.Listar(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNewClient_URLInvalida(t *testing.T) {
	_, err := backend.NewClient(config.BackendConfig{URL: "localhost:8080"}, zerolog.Nop())
	assert.Error(t, err)
}
