package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInit_SetsGlobalLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	Init("warn")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	Init("debug")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	Init("loud")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
