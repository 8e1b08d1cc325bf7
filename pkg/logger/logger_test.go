package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithComponent_EtiquetaCadaEvento(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, Config{Level: "info"}).WithComponent("pedidos")

	l.Info().Str("order_id", "abc-123").Msg("pedido creado")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "pedidos", entry["component"])
	assert.Equal(t, "pedido creado", entry["message"])
	assert.Equal(t, "abc-123", entry["order_id"])
}

func TestWithComponent_NoAlteraElLoggerBase(t *testing.T) {
	var buf bytes.Buffer
	base := newWithWriter(&buf, Config{Level: "info"})
	base.WithComponent("inventario")

	base.Info().Msg("evento sin componente")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "component")
}

func TestNivel_FiltraEventosPorDebajo(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, Config{Level: "warn"})

	l.Debug().Msg("no debe emitirse")
	l.Info().Msg("tampoco")
	assert.Empty(t, buf.Bytes())

	l.Warn().Msg("sí se emite")
	assert.NotEmpty(t, buf.Bytes())
}

func TestParseLevel_DesconocidoCaeEnInfo(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verboso"))
	assert.Equal(t, zerolog.TraceLevel, parseLevel("trace"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
}
