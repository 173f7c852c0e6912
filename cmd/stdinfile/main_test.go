package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogging(t *testing.T) {
	var buf bytes.Buffer

	setupLogging(&buf, true, true)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.True(t, color.NoColor)

	log.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")

	buf.Reset()
	setupLogging(&buf, false, false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	assert.False(t, color.NoColor)

	log.Debug().Msg("hidden")
	assert.Empty(t, buf.String())
}
