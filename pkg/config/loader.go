package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"dario.cat/mergo"
	"github.com/goccy/go-yaml"
)

// Initialize loads configuration from the given directory.
//
// Layering, lowest precedence first: built-in defaults, relay.yaml
// (optional, with {{.ENV}} expansion), then the documented environment
// variables. The result is validated before being returned.
func Initialize(configDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.configDir = configDir

	path := filepath.Join(configDir, "relay.yaml")
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fileCfg Config
		if err := yaml.Unmarshal(ExpandEnv(data), &fileCfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if err := mergo.Merge(cfg, &fileCfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merging %s: %w", path, err)
		}
		slog.Info("Loaded configuration file", "path", path)
	case os.IsNotExist(err):
		slog.Info("No relay.yaml found, using defaults and environment", "dir", configDir)
	default:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides maps the documented environment variables onto the
// config. Unknown variables are ignored; malformed values are logged
// and skipped in favor of the current value.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CLAUDE_PATH"); v != "" {
		cfg.Model.ClaudePath = v
	}
	if v := os.Getenv("USER_TIMEZONE"); v != "" {
		cfg.Relay.Timezone = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Channels.Telegram.Token = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Channels.Telegram.ChatID = v
	}
	if v := os.Getenv("SLACK_BOT_TOKEN"); v != "" {
		cfg.Channels.Slack.Token = v
	}
	if v := os.Getenv("SLACK_CHANNEL"); v != "" {
		cfg.Channels.Slack.Channel = v
	}
	if v := os.Getenv("SLACK_SIGNING_SECRET"); v != "" {
		cfg.Channels.Slack.SigningSecret = v
	}
	if v := os.Getenv("VOICE_TRANSCRIBE_URL"); v != "" {
		cfg.Channels.Voice.Enabled = true
		cfg.Channels.Voice.TranscribeURL = v
	}
	if v := os.Getenv("VOICE_SYNTHESIZE_URL"); v != "" {
		cfg.Channels.Voice.Enabled = true
		cfg.Channels.Voice.SynthesizeURL = v
	}
	if v := os.Getenv("TRACKER_BASE_URL"); v != "" {
		cfg.Tracker.BaseURL = v
	}
	if v := os.Getenv("TRACKER_API_KEY"); v != "" {
		cfg.Tracker.APIKey = v
	}

	setDurationMS(&cfg.Relay.IdleTimeout, "IDLE_MS")
	setDurationMS(&cfg.Model.TimeoutWithTools, "MODEL_TIMEOUT_MS")
	setDurationMS(&cfg.Relay.NudgeDelay, "NUDGE_DELAY_MS")
	setDurationMS(&cfg.SyncQueue.PollInterval, "RETRY_POLL_MS")
	setDurationMS(&cfg.Server.WebhookDeadline, "WEBHOOK_DEADLINE_MS")

	if v := os.Getenv("MAX_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			slog.Warn("Ignoring malformed MAX_RETRIES", "value", v)
		} else {
			cfg.Delivery.MaxRetries = n
		}
	}
}

// setDurationMS parses an integer-milliseconds env var into dst.
func setDurationMS(dst *time.Duration, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil || ms <= 0 {
		slog.Warn("Ignoring malformed duration override", "var", key, "value", v)
		return
	}
	*dst = time.Duration(ms) * time.Millisecond
}
