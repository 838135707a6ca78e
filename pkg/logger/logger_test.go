package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("coffee", "info", &buf)

	log.Info().Str("uri", "upi://pay?pa=a%40bank&cu=INR").Msg("link built")

	var output map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &output)
	require.NoError(t, err, "logger output should be valid JSON")

	assert.Equal(t, "link built", output["message"])
	assert.Equal(t, "upi://pay?pa=a%40bank&cu=INR", output["uri"])
	assert.Equal(t, "coffee", output["service"])
	assert.Equal(t, "info", output["level"])
	assert.Contains(t, output, "time", "should include timestamp")
}

func TestNew_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("coffee", "debug", &buf)

	log.Debug().Msg("debug msg")
	assert.NotEmpty(t, buf.String(), "debug messages should be logged at debug level")
}

func TestNew_InfoLevel_FiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("coffee", "info", &buf)

	log.Debug().Msg("should not appear")
	assert.Empty(t, buf.String(), "debug messages should be filtered at info level")
}

func TestNew_LevelIsCaseInsensitive(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("coffee", " WARN ", &buf)

	log.Info().Msg("should not appear")
	assert.Empty(t, buf.String())

	log.Warn().Msg("warn msg")
	assert.NotEmpty(t, buf.String())
}

func TestNew_InvalidLevel_DefaultsToInfo(t *testing.T) {
	for _, level := range []string{"invalid", ""} {
		t.Run(level, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter("coffee", level, &buf)

			log.Debug().Msg("should not appear")
			assert.Empty(t, buf.String(), "invalid level should default to info, filtering debug")

			log.Info().Msg("should appear")
			assert.NotEmpty(t, buf.String())
		})
	}
}

func TestNew_Disabled(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("coffee", "disabled", &buf)

	log.Error().Msg("should not appear")
	assert.Empty(t, buf.String())
}

func TestNew_PrettyMode(t *testing.T) {
	// Just ensure it doesn't panic — pretty mode writes to stdout.
	log := New("coffee", "info", true)
	log.Info().Msg("pretty mode test")
}
