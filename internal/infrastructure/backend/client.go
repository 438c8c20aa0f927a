// Package backend es el adaptador HTTP hacia la API REST de la agro-ferretería.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/pkg/config"
)

const (
	limiteJSON = 10 << 20
	limitePDF  = 20 << 20
	limiteErr  = 64 << 10
)

// ErrRespuestaGrande la respuesta supera el tope de lectura del recurso.
var ErrRespuestaGrande = errors.New("respuesta del servidor demasiado grande")

// Client cliente HTTP compartido por todos los recursos.
type Client struct {
	base *url.URL
	http *http.Client
	log  zerolog.Logger
}

// NewClient construye el cliente. La URL base debe terminar en "/".
func NewClient(cfg config.BackendConfig, log zerolog.Logger) (*Client, error) {
	raw := strings.TrimSpace(cfg.URL)
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("backend: URL base inválida %q: %w", cfg.URL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("backend: URL base sin esquema http(s): %q", cfg.URL)
	}
	return &Client{
		base: base,
		http: &http.Client{Timeout: cfg.Timeout()},
		log:  log,
	}, nil
}

// APIError respuesta no 2xx del backend.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if msg := mensajeServidor(e.Body); msg != "" {
		return msg
	}
	return fmt.Sprintf("error del servidor (HTTP %d)", e.Status)
}

// Unwrap traduce el status a un error de dominio.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthorized
	}
	return nil
}

// mensajeServidor toma "message" o "error" si el cuerpo es JSON; si no, el texto tal cual.
func mensajeServidor(body string) string {
	body = strings.TrimSpace(body)
	if body == "" {
		return ""
	}
	var m struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if strings.HasPrefix(body, "{") && json.Unmarshal([]byte(body), &m) == nil {
		if m.Message != "" {
			return m.Message
		}
		if m.Error != "" {
			return m.Error
		}
	}
	return body
}

func (c *Client) resolver(ruta string) string {
	return c.base.ResolveReference(&url.URL{Path: ruta}).String()
}

// do envía la petición y devuelve el cuerpo de una respuesta 2xx.
func (c *Client) do(ctx context.Context, method, ruta string, in any, limite int64) ([]byte, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("backend: serializar %s %s: %w", method, ruta, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.resolver(ruta), body)
	if err != nil {
		return nil, fmt.Errorf("backend: crear request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.log.With().Str("method", method).Str("ruta", ruta).Str("request_id", reqID).Logger()
	log.Debug().Msg("request")
	inicio := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("backend: %s %s: %w", method, ruta, ctx.Err())
		}
		log.Warn().Err(err).Msg("sin respuesta del servidor")
		return nil, fmt.Errorf("backend: %s %s: %w: %w", method, ruta, domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, limiteErr))
		log.Warn().Int("status", resp.StatusCode).Dur("duracion", time.Since(inicio)).Msg("respuesta con error")
		return nil, &APIError{Status: resp.StatusCode, Body: string(raw)}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, limite+1))
	if err != nil {
		return nil, fmt.Errorf("backend: leer respuesta %s %s: %w: %w", method, ruta, domain.ErrBackendUnavailable, err)
	}
	if int64(len(raw)) > limite {
		log.Warn().Int64("limite", limite).Msg("respuesta demasiado grande")
		return nil, fmt.Errorf("backend: %s %s: %w", method, ruta, ErrRespuestaGrande)
	}
	log.Debug().Int("status", resp.StatusCode).Int("bytes", len(raw)).Dur("duracion", time.Since(inicio)).Msg("response")
	return raw, nil
}

// doJSON decodifica la respuesta en out. Un cuerpo vacío deja out sin tocar.
func (c *Client) doJSON(ctx context.Context, method, ruta string, in, out any) error {
	raw, err := c.do(ctx, method, ruta, in, limiteJSON)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("backend: decodificar %s %s: %w", method, ruta, err)
	}
	return nil
}

// EsErrorServidor indica si err vino de una respuesta no 2xx.
func EsErrorServidor(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
