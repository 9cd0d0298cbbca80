package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidoctool/aidoc/pkg/config"
)

func TestEnvReport_MasksAPIKey(t *testing.T) {
	t.Setenv(config.EnvProvider, "anthropic")
	t.Setenv(config.EnvModel, "claude-sonnet-4-20250514")
	t.Setenv(config.EnvAPIKey, "sk-secret")

	lines := envReport(false)

	assert.Contains(t, lines, config.EnvProvider+"=anthropic")
	assert.Contains(t, lines, config.EnvModel+"=claude-sonnet-4-20250514")
	assert.Contains(t, lines, config.EnvAPIKey+"=sk-***")
	assert.NotContains(t, lines, config.EnvAPIKey+"=sk-secret")
}

func TestEnvReport_Verbose(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "sk-secret")

	assert.Contains(t, envReport(true), config.EnvAPIKey+"=sk-secret")
}

func TestEnvReport_UnsetVariables(t *testing.T) {
	for _, name := range []string{config.EnvProvider, config.EnvModel, config.EnvAPIKey} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}

	lines := envReport(false)

	assert.Contains(t, lines, config.EnvProvider+" (unset)")
	assert.Contains(t, lines, config.EnvModel+" (unset)")
	assert.Contains(t, lines, config.EnvAPIKey+" (unset)")
}
