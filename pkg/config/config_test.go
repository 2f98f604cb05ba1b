package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 10*time.Minute, cfg.Relay.IdleTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Relay.NudgeDelay)
	assert.Equal(t, 3, cfg.Delivery.MaxRetries)
	assert.Equal(t, 30*time.Second, cfg.SyncQueue.PollInterval)
	assert.Equal(t, 25*time.Second, cfg.Server.WebhookDeadline)
	assert.Equal(t, "general", cfg.Agents.Default)
}

func TestInitializeWithoutYAML(t *testing.T) {
	cfg, err := Initialize(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "claude", cfg.Model.ClaudePath)
}

func TestInitializeMergesYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := `
relay:
  idle_timeout: 2m
model:
  claude_path: /opt/bin/claude
channels:
  slack:
    token: "{{.RELAY_TEST_SLACK_TOKEN}}"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "relay.yaml"), []byte(yaml), 0o600))
	t.Setenv("RELAY_TEST_SLACK_TOKEN", "xoxb-test")

	cfg, err := Initialize(dir)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Minute, cfg.Relay.IdleTimeout)
	assert.Equal(t, "/opt/bin/claude", cfg.Model.ClaudePath)
	assert.Equal(t, "xoxb-test", cfg.Channels.Slack.Token)
	// Untouched defaults survive the merge.
	assert.Equal(t, 4*time.Second, cfg.Relay.TypingInterval)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("IDLE_MS", "120000")
	t.Setenv("MODEL_TIMEOUT_MS", "420000")
	t.Setenv("MAX_RETRIES", "5")
	t.Setenv("RETRY_POLL_MS", "10000")

	cfg, err := Initialize(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 2*time.Minute, cfg.Relay.IdleTimeout)
	assert.Equal(t, 7*time.Minute, cfg.Model.TimeoutWithTools)
	assert.Equal(t, 5, cfg.Delivery.MaxRetries)
	assert.Equal(t, 10*time.Second, cfg.SyncQueue.PollInterval)
}

func TestEnvOverridesIgnoreMalformed(t *testing.T) {
	t.Setenv("IDLE_MS", "soon")
	t.Setenv("MAX_RETRIES", "-1")

	cfg, err := Initialize(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 10*time.Minute, cfg.Relay.IdleTimeout)
	assert.Equal(t, 3, cfg.Delivery.MaxRetries)
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Model.ClaudePath = ""
	cfg.Delivery.MaxRetries = 0
	cfg.Server.WebhookDeadline = 45 * time.Second

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "claude_path")
	assert.Contains(t, err.Error(), "max_retries")
	assert.Contains(t, err.Error(), "webhook_deadline")
}

func TestExpandEnvLeavesDollarsAlone(t *testing.T) {
	t.Setenv("RELAY_TEST_VAR", "value")
	out := ExpandEnv([]byte(`pattern: "^secret.*$"` + "\n" + `token: "{{.RELAY_TEST_VAR}}"`))
	assert.Contains(t, string(out), "^secret.*$")
	assert.Contains(t, string(out), "value")
}
