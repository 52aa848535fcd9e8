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

func TestRunClear_WithExistingConfig(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "bbc", "config.yml")

	cfg := &config.Config{OutputFormat: "text"}
	require.NoError(t, cfg.Save(configPath))

	var out bytes.Buffer
	require.NoError(t, runClear(configPath, true, &out))

	_, err := os.Stat(configPath)
	assert.True(t, os.IsNotExist(err))
	assert.Contains(t, out.String(), "Configuration cleared from "+configPath)
}

func TestRunClear_NoConfigFile(t *testing.T) {
	clearEnv(t)

	var out bytes.Buffer
	require.NoError(t, runClear(filepath.Join(t.TempDir(), "config.yml"), true, &out))
	assert.Contains(t, out.String(), "No config file to remove")
}

func TestRunClear_Idempotent(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")

	require.NoError(t, runClear(configPath, true, &bytes.Buffer{}))
	require.NoError(t, runClear(configPath, true, &bytes.Buffer{}))
}

func TestRunClear_NotesActiveEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("BBC_VERBOSE", "true")

	var out bytes.Buffer
	require.NoError(t, runClear(filepath.Join(t.TempDir(), "config.yml"), true, &out))
	assert.Contains(t, out.String(), "Environment variables will still be used: BBC_VERBOSE")
}
