package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestParseDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "NODE_ENV", "TOKEN_TTL", "WORDS_LANGUAGE"} {
		t.Setenv(k, "")
	}
	c, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "5175", c.Port)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 24*time.Hour, c.TokenTTL)
	assert.False(t, c.Production())

	tag, err := c.Lang()
	require.NoError(t, err)
	assert.Equal(t, language.English, tag)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("WORDS_LANGUAGE", "fr")
	t.Setenv("TOKEN_TTL", "90m")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("WORDS_START_FILE", "/tmp/start.txt")

	c, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "9000", c.Port)
	assert.Equal(t, 90*time.Minute, c.TokenTTL)
	assert.True(t, c.Production())
	assert.Equal(t, "/tmp/start.txt", c.StartFile)

	tag, _ := c.Lang()
	assert.Equal(t, language.French, tag)
}

func TestParseRejectsBadValues(t *testing.T) {
	t.Setenv("TOKEN_TTL", "soon")
	_, err := Parse()
	assert.Error(t, err)
}

func TestParseRejectsBadLanguage(t *testing.T) {
	t.Setenv("WORDS_LANGUAGE", "not a language!")
	_, err := Parse()
	assert.Error(t, err)
}

func TestApplyLogLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(prev)

	Config{LogLevel: "warn"}.ApplyLogLevel()
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	Config{LogLevel: "loud"}.ApplyLogLevel()
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
