package log

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// TestInitJSONOutput tests level mapping and JSON output to a writer
func TestInitJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: Level("warn"), JSONOutput: true, Output: &buf})
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	Logger.Info().Msg("below threshold")
	Logger.Warn().Msg("kept")

	out := buf.String()
	assert.NotContains(t, out, "below threshold")
	assert.Contains(t, out, `"message":"kept"`)
	assert.Contains(t, out, `"level":"warn"`)
}

// TestInitDefaults tests that unknown levels fall back to info
func TestInitDefaults(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: Level("bogus"), JSONOutput: true, Output: &buf})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	logger := WithComponent("api")
	logger.Info().Msg("hello")
	assert.Contains(t, buf.String(), `"component":"api"`)
}
