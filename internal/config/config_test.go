package config

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"ANTIVIBE_API_URL", "ANTIVIBE_TIMEOUT", "ANTIVIBE_LENIENT_DECODING",
		"ANTIVIBE_CLIENT_RPS", "ANTIVIBE_RATE_LIMIT", "PORT", "ENVIRONMENT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadEnvironmentVariables_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/api", cfg.APIURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.False(t, cfg.LenientDecoding)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "60-M", cfg.HintRateLimit)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoadEnvironmentVariables_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ANTIVIBE_API_URL", "http://hints.internal:9000/api")
	t.Setenv("ANTIVIBE_TIMEOUT", "750ms")
	t.Setenv("ANTIVIBE_LENIENT_DECODING", "true")
	t.Setenv("ANTIVIBE_CLIENT_RPS", "2.5")

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "http://hints.internal:9000/api", cfg.APIURL)
	assert.Equal(t, 750*time.Millisecond, cfg.Timeout)
	assert.True(t, cfg.LenientDecoding)
	assert.Equal(t, 2.5, cfg.ClientRPS)
}

func TestLoadEnvironmentVariables_Invalid(t *testing.T) {
	tests := map[string]string{
		"ANTIVIBE_TIMEOUT":         "soon",
		"ANTIVIBE_LENIENT_DECODING": "maybe",
		"ANTIVIBE_CLIENT_RPS":      "-1",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := LoadEnvironmentVariables()

			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestParseHintFlags(t *testing.T) {
	f, err := ParseHintFlags([]string{"-file", "main.py", "-level", "3", "-problem", "two sum", "-dump"}, io.Discard)

	require.NoError(t, err)
	assert.Equal(t, "main.py", f.File)
	assert.Equal(t, "3", f.Level)
	assert.Equal(t, "two sum", f.Problem)
	assert.True(t, f.Dump)
	assert.Empty(t, f.HTMLPath)
}

func TestParseHintFlags_Required(t *testing.T) {
	_, err := ParseHintFlags([]string{"-problem", "two sum"}, io.Discard)
	assert.ErrorContains(t, err, "-file")

	_, err = ParseHintFlags([]string{"-file", "main.py"}, io.Discard)
	assert.ErrorContains(t, err, "-problem")

	_, err = ParseHintFlags([]string{"-bogus"}, io.Discard)
	assert.Error(t, err)
}

func TestParseTUIFlags(t *testing.T) {
	f, err := ParseTUIFlags(nil, io.Discard)

	require.NoError(t, err)
	assert.Equal(t, "antivibe.log", f.LogFile)
	assert.Empty(t, f.File)
}
