package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", cfg.Predictor.BaseURL)
	assert.Equal(t, 10, cfg.History.Capacity)
	assert.Equal(t, "dark", cfg.UI.Theme)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".vitaldeck", "config.yaml")

	cfg := DefaultConfig()
	cfg.Predictor.BaseURL = "https://predict.example.com"
	cfg.Predictor.Timeout = "10s"
	cfg.History.Capacity = 25
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://predict.example.com", loaded.Predictor.BaseURL)
	assert.Equal(t, 25, loaded.History.Capacity)
	assert.Equal(t, 10*time.Second, loaded.Predictor.RequestTimeout())
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, DefaultConfig().Save(path))

	// Overwrite with junk.
	require.NoError(t, os.WriteFile(path, []byte("predictor: [not a map"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("VITALDECK_SERVER", "http://10.0.0.2:5000")
	t.Setenv("VITALDECK_TIMEOUT", "5s")
	t.Setenv("VITALDECK_THEME", "light")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.2:5000", cfg.Predictor.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Predictor.RequestTimeout())
	assert.Equal(t, "light", cfg.UI.Theme)
}

func TestRequestTimeoutFallback(t *testing.T) {
	p := PredictorConfig{Timeout: "garbage"}
	assert.Equal(t, 30*time.Second, p.RequestTimeout())

	p = PredictorConfig{Timeout: "-2s"}
	assert.Equal(t, 30*time.Second, p.RequestTimeout())
}
