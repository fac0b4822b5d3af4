package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "info", LogFormatJsonValue)
	require.NoError(t, err)

	l.Debug().Msg("hidden")
	l.Info().Str("suite", "sparse").Msg("visible")

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "visible", rec["message"])
	assert.Equal(t, "sparse", rec["suite"])
	assert.Contains(t, rec, "time")
}

func TestNew_DebugAddsCaller(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "debug", LogFormatJsonValue)
	require.NoError(t, err)

	l.Debug().Msg("x")
	assert.Contains(t, buf.String(), `"caller"`)
	assert.Contains(t, buf.String(), `"pid"`)
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "warn", LogFormatTextValue)
	require.NoError(t, err)

	l.Info().Msg("hidden")
	l.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "trace", LogFormatTextValue)
	assert.Error(t, err)
	_, err = New(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)
	assert.Error(t, SetLogLevel("loud", LogFormatJsonValue))
}
