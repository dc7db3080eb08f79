package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5, cfg.Confirmation.MaxAttempts)
	assert.Equal(t, 72*time.Hour, cfg.Cart.TTL())
	assert.Equal(t, "eur", cfg.Payments.Currency)
	assert.Equal(t, 10, cfg.Providers.TeeOne.Timeout)

	loc, err := cfg.Search.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Madrid", loc.String())
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse(`
[server]
http_port = 9090

[packages]
early_bird_cutoff_hour = 9
twilight_start_hour = 14
early_bird_keywords = ["early bird", "madrugador", "frühaufsteher"]

[providers.zest]
enabled = true
url = "https://api.zest.example"
api_key = "k"

[confirmation]
max_attempts = 3
delay_ms = 500
`)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 9, cfg.Packages.EarlyBirdCutoffHour)
	assert.Equal(t, 14, cfg.Packages.TwilightStartHour)
	assert.Len(t, cfg.Packages.EarlyBirdKeywords, 3)
	assert.True(t, cfg.Providers.Zest.Enabled)
	// Незаданные поля провайдера сохраняют значения по умолчанию
	assert.Equal(t, 10, cfg.Providers.Zest.Timeout)
	assert.Equal(t, 3, cfg.Confirmation.MaxAttempts)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad port":             "[server]\nhttp_port = 0",
		"bad cutoff":           "[packages]\nearly_bird_cutoff_hour = 30",
		"no attempts":          "[confirmation]\nmax_attempts = 0",
		"provider without url": "[providers.teeone]\nenabled = true",
		"unknown timezone":     "[search]\ntimezone = \"Mars/Olympus\"",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(data)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[logs]\nlevel = \"debug\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logs.Level)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
