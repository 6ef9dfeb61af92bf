package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}

func TestInit(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	Init("production", "error")
	assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())
}
