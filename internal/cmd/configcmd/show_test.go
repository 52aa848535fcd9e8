package configcmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/bbcode-cli/internal/config"
)

// clearEnv unsets every variable config reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range config.EnvVars() {
		t.Setenv(v, "")
		require.NoError(t, os.Unsetenv(v))
	}
}

func TestRunShow_WithConfigFile(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg := &config.Config{OutputFormat: "markdown", MaxDepth: 32}
	require.NoError(t, cfg.Save(configPath))

	var out bytes.Buffer
	require.NoError(t, runShow(configPath, true, &out))

	s := out.String()
	assert.Contains(t, s, "Output format: markdown  (source: config)")
	assert.Contains(t, s, "Max depth:     32  (source: config)")
	assert.Contains(t, s, "Verbose:       false  (source: default)")
	assert.Contains(t, s, "Config file: "+configPath)
	assert.NotContains(t, s, "file not found")
}

func TestRunShow_NoConfigFile(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")

	var out bytes.Buffer
	require.NoError(t, runShow(configPath, true, &out))

	s := out.String()
	assert.Contains(t, s, "Output format: html  (source: default)")
	assert.Contains(t, s, "0 (built-in limit)")
	assert.Contains(t, s, "(file not found)")
}

func TestRunShow_EnvOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("BBC_OUTPUT_FORMAT", "text")
	t.Setenv("NO_COLOR", "1")
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg := &config.Config{OutputFormat: "json"}
	require.NoError(t, cfg.Save(configPath))

	var out bytes.Buffer
	require.NoError(t, runShow(configPath, true, &out))

	s := out.String()
	assert.Contains(t, s, "Output format: text  (source: BBC_OUTPUT_FORMAT)")
	assert.Contains(t, s, "No color:      true  (source: NO_COLOR)")
}

func TestRunShow_InvalidEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("BBC_MAX_DEPTH", "lots")

	err := runShow(filepath.Join(t.TempDir(), "config.yml"), true, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BBC_MAX_DEPTH")
}
