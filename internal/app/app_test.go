package app_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enigma/internal/app"
	"enigma/internal/domain"
)

func TestLoadConfig_FromEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ENIGMA_HOME", home)
	t.Setenv("ENIGMA_LOG_LEVEL", "debug")
	t.Setenv("ENIGMA_LOG_FORMAT", "json")

	cfg, err := app.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, app.Config{Home: home, LogLevel: "debug", LogFormat: "json"}, cfg)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("ENIGMA_HOME", "")
	t.Setenv("HOME", t.TempDir())

	cfg, err := app.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, ".enigma", filepath.Base(cfg.Home))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := app.NewLogger(&buf, "info", "json")
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("shown", "k", "v")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "v", rec["k"])

	_, err = app.NewLogger(&buf, "loud", "text")
	assert.Error(t, err)
	_, err = app.NewLogger(&buf, "info", "xml")
	assert.Error(t, err)
}

func TestNewWire(t *testing.T) {
	cfg := app.Config{Home: filepath.Join(t.TempDir(), "nested"), LogLevel: "warn", LogFormat: "text"}
	var logs bytes.Buffer
	a, err := app.NewWire(cfg, &logs)
	require.NoError(t, err)

	res, err := a.Cipher.Run(domain.DefaultSettings(), "AAAAA")
	require.NoError(t, err)
	assert.Equal(t, "BDZGO", res.Text)

	_, err = a.Profiles.Save("p1", domain.DefaultSettings(), "")
	require.NoError(t, err)
	infos, err := a.Profiles.List()
	require.NoError(t, err)
	assert.Equal(t, []domain.ProfileInfo{{Name: "p1"}}, infos)
}
