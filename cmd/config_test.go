package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfigCmdUsage verifies the config command has correct configuration
func TestConfigCmdUsage(t *testing.T) {
	if configCmd.Use != "config" {
		t.Errorf("expected Use to be 'config', got '%s'", configCmd.Use)
	}
	if configCmd.Short == "" {
		t.Error("Short description should not be empty")
	}
}

func TestConfigShowCmd(t *testing.T) {
	setupTest(t)

	stdout, _, err := executeCommand(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "level: INFO")
	assert.Contains(t, stdout, "Source: defaults")

	setupTest(t)
	path := writeConfig(t, raylibConfig)
	stdout, _, err = executeCommand(t, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "RECIPE")
	assert.Contains(t, stdout, "lint")
	assert.Contains(t, stdout, "Source: "+path)
}

func TestConfigValidateCmd(t *testing.T) {
	setupTest(t)
	_, _, err := executeCommand(t, "config", "validate")
	assert.ErrorContains(t, err, "not found")

	setupTest(t)
	path := writeConfig(t, raylibConfig)
	stdout, _, err := executeCommand(t, "config", "validate", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "OK (2 recipes)")

	setupTest(t)
	path = writeConfig(t, "recipes:\n  default:\n    - check: true\n")
	_, _, err = executeCommand(t, "config", "validate", "--config", path)
	assert.ErrorContains(t, err, "INVALID")
}

func TestConfigPathCmd(t *testing.T) {
	setupTest(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")

	stdout, _, err := executeCommand(t, "config", "path", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, path+"\n", stdout)
}
