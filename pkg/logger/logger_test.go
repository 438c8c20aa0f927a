package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/pkg/logger"
)

func TestNew_JSONEnProduccion(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "warn", Out: &buf})

	l.Info().Msg("no aparece")
	l.Warn().Str("listado", "ventas").Msg("fallo")

	var linea map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &linea))
	assert.Equal(t, "warn", linea["level"])
	assert.Equal(t, "ventas", linea["listado"])
	assert.Equal(t, "fallo", linea["message"])
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { logger.Nop().Error().Msg("descartado") })
}

func TestComponente_AgregaCampo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "DEBUG", Out: &buf})

	zl := l.Componente("backend")
	zl.Debug().Msg("request")

	var linea map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &linea))
	assert.Equal(t, "backend", linea["componente"])
	assert.Equal(t, "debug", linea["level"])
}

func TestNew_NivelDesconocidoQuedaEnInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "verboso", Out: &buf})

	l.Debug().Msg("no aparece")
	l.Info().Msg("aparece")

	assert.NotContains(t, buf.String(), "no aparece")
	assert.Contains(t, buf.String(), "aparece")
}
