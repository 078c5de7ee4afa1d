package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NivelConocido(t *testing.T) {
	l := New(Config{Level: "debug"})
	assert.Equal(t, zerolog.DebugLevel, l.Zerolog().GetLevel())
}

func TestNew_NivelDesconocido_CaeAInfo(t *testing.T) {
	l := New(Config{Level: "verbose"})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())

	l = New(Config{})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())
}

func TestNew_CampoService(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "info", Service: "pharmanalyse", Out: &buf})

	l.Info().Msg("démarrage")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "pharmanalyse", line["service"])
	assert.Equal(t, "démarrage", line["message"])
	assert.Equal(t, "info", line["level"])
}
