package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel(" DEBUG "))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
	assert.Equal(t, zerolog.Disabled, ParseLevel("off"))
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: zerolog.InfoLevel, Format: FormatJSON, App: "pet-care", Out: &buf})

	log.Debug().Msg("hidden")
	log.Info().Str("plan_id", "p-1").Msg("care plan completed")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "pet-care", entry["app"])
	assert.Equal(t, "p-1", entry["plan_id"])
	assert.Equal(t, "care plan completed", entry["message"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: zerolog.DebugLevel, Format: ParseFormat("text"), Out: &buf})

	log.Warn().Str("pet_id", "pet-9").Msg("slow store")

	out := buf.String()
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "slow store")
	assert.Contains(t, out, "pet_id=pet-9")
}
