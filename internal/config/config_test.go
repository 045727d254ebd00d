package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"FINLAB_DB", "FINLAB_CONTENT", "FINLAB_LOG", "FINLAB_LOG_LEVEL",
		"FINLAB_SESSION_MIN", "FINLAB_SESSION_MAX",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 7, cfg.SessionMin)
	assert.Equal(t, 8, cfg.SessionMax)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("FINLAB_DB", "/tmp/fl.db")
	t.Setenv("FINLAB_CONTENT", "/tmp/content.json")
	t.Setenv("FINLAB_LOG", "/tmp/fl.log")
	t.Setenv("FINLAB_LOG_LEVEL", "DEBUG")
	t.Setenv("FINLAB_SESSION_MIN", "3")
	t.Setenv("FINLAB_SESSION_MAX", "5")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		DBPath:      "/tmp/fl.db",
		ContentPath: "/tmp/content.json",
		LogFile:     "/tmp/fl.log",
		LogLevel:    "debug",
		SessionMin:  3,
		SessionMax:  5,
	}, cfg)

	sel := cfg.Selection()
	assert.Equal(t, 3, sel.MinLength)
	assert.Equal(t, 5, sel.MaxLength)
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"non-integer length", map[string]string{"FINLAB_SESSION_MIN": "seven"}},
		{"zero length", map[string]string{"FINLAB_SESSION_MIN": "0"}},
		{"max below min", map[string]string{"FINLAB_SESSION_MIN": "8", "FINLAB_SESSION_MAX": "4"}},
		{"unknown level", map[string]string{"FINLAB_LOG_LEVEL": "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
