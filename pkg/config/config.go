// Package config loads and validates relay configuration.
//
// Configuration comes from three layers, lowest precedence first:
// built-in defaults, an optional relay.yaml in the config directory
// (with {{.ENV_VAR}} template expansion), and the documented
// environment variables (IDLE_MS, MODEL_TIMEOUT_MS, ...). Required
// settings fail fast at startup with a readable message.
package config

import "time"

// Config is the umbrella configuration object returned by Initialize
// and passed to components at construction time.
type Config struct {
	configDir string

	Server    ServerConfig    `yaml:"server"`
	Relay     RelayConfig     `yaml:"relay"`
	Model     ModelConfig     `yaml:"model"`
	Delivery  DeliveryConfig  `yaml:"delivery"`
	SyncQueue SyncQueueConfig `yaml:"sync_queue"`
	Channels  ChannelsConfig  `yaml:"channels"`
	Tracker   TrackerConfig   `yaml:"tracker"`
	Search    SearchConfig    `yaml:"search"`
	Retention RetentionConfig `yaml:"retention"`
	Agents    AgentsConfig    `yaml:"agents"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	// Port the API server listens on.
	Port string `yaml:"port"`

	// WebhookDeadline is the synchronous reply budget for enterprise
	// chat webhooks. The upstream hard limit is ~30s; keep a margin.
	WebhookDeadline time.Duration `yaml:"webhook_deadline"`
}

// RelayConfig holds timers and windows for the dispatcher, delivery
// nudging, approvals, and consolidation.
type RelayConfig struct {
	// IdleTimeout is the per-channel quiet period before the channel's
	// unsummarized messages are consolidated.
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// TypingInterval is the keepalive cadence while a turn is running.
	TypingInterval time.Duration `yaml:"typing_interval"`

	// NudgeDelay is how long a delivered reply may sit unacknowledged
	// before the nudge callback fires (once per pending response).
	NudgeDelay time.Duration `yaml:"nudge_delay"`

	// NudgeCheckInterval is the pending-response scan cadence.
	NudgeCheckInterval time.Duration `yaml:"nudge_check_interval"`

	// NudgeGC is when unacknowledged pending responses are dropped.
	NudgeGC time.Duration `yaml:"nudge_gc"`

	// ApprovalTTL bounds how long a pending confirmation stays live.
	ApprovalTTL time.Duration `yaml:"approval_ttl"`

	// ConsolidationInterval is the periodic batch consolidation cadence.
	ConsolidationInterval time.Duration `yaml:"consolidation_interval"`

	// Timezone used when rendering deadlines and timestamps for the user.
	Timezone string `yaml:"timezone"`

	// LockFile is the single-instance PID lock path.
	LockFile string `yaml:"lock_file"`
}

// ModelConfig holds model-subprocess settings for the gateway.
type ModelConfig struct {
	// ClaudePath is the CLI binary invoked per turn.
	ClaudePath string `yaml:"claude_path"`

	// Model overrides the CLI default model when non-empty.
	Model string `yaml:"model"`

	// TimeoutWithTools applies when the invocation allows tools.
	TimeoutWithTools time.Duration `yaml:"timeout_with_tools"`

	// TimeoutNoTools applies to plain text-only invocations.
	TimeoutNoTools time.Duration `yaml:"timeout_no_tools"`

	// KillGrace is the SIGTERM-to-SIGKILL escalation window.
	KillGrace time.Duration `yaml:"kill_grace"`

	// SessionFile persists the resumable model session id.
	SessionFile string `yaml:"session_file"`

	// RecoveryLock suppresses dependent side-effects after a timeout.
	RecoveryLock time.Duration `yaml:"recovery_lock"`

	// SubscriptionMode strips ambient API-key auth from the child env.
	SubscriptionMode bool `yaml:"subscription_mode"`

	// AllowedTools passed through to the CLI when non-empty.
	AllowedTools []string `yaml:"allowed_tools"`
}

// DeliveryConfig holds retry and fallback settings for outbound sends.
type DeliveryConfig struct {
	MaxRetries int `yaml:"max_retries"`

	// BackoffBase doubles per attempt: base, 2*base, 4*base, ...
	BackoffBase time.Duration `yaml:"backoff_base"`

	// FallbackChannel receives degraded deliveries when the primary
	// channel exhausts its retries.
	FallbackChannel string `yaml:"fallback_channel"`
}

// SyncQueueConfig holds the durable retry-queue worker settings.
type SyncQueueConfig struct {
	PollInterval time.Duration `yaml:"poll_interval"`
	BatchSize    int           `yaml:"batch_size"`
	MaxAttempts  int           `yaml:"max_attempts"`

	// BackoffBase doubles per failed attempt: 30s, 60s, 120s, ...
	BackoffBase time.Duration `yaml:"backoff_base"`

	// PurgeAfter is how long completed rows are kept before purging.
	PurgeAfter time.Duration `yaml:"purge_after"`
}

// ChannelsConfig holds per-transport credentials. Empty credentials
// disable a transport; the relay runs with whatever is configured.
type ChannelsConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Slack    SlackConfig    `yaml:"slack"`

	Voice VoiceConfig `yaml:"voice"`
}

// VoiceConfig wires the telephony websocket to an external speech
// service. Both URLs must be set for voice to come up.
type VoiceConfig struct {
	Enabled bool `yaml:"enabled"`

	// TranscribeURL accepts raw mu-law audio and returns plain text.
	TranscribeURL string `yaml:"transcribe_url"`

	// SynthesizeURL accepts plain text and returns mu-law audio.
	SynthesizeURL string `yaml:"synthesize_url"`
}

// TelegramConfig holds Bot API credentials.
type TelegramConfig struct {
	Token  string `yaml:"token"`
	ChatID string `yaml:"chat_id"`
}

// SlackConfig holds enterprise chat credentials.
type SlackConfig struct {
	Token   string `yaml:"token"`
	Channel string `yaml:"channel"`

	// SigningSecret verifies inbound webhook signatures.
	SigningSecret string `yaml:"signing_secret"`
}

// TrackerConfig holds project-tracker API settings for the sync queue.
type TrackerConfig struct {
	BaseURL   string `yaml:"base_url"`
	APIKey    string `yaml:"api_key"`
	Workspace string `yaml:"workspace"`
	Project   string `yaml:"project"`
}

// SearchConfig holds semantic/full-text search settings.
type SearchConfig struct {
	// Enabled turns the Postgres RPC search implementation on. When
	// off, search-backed context fragments resolve to empty strings.
	Enabled bool `yaml:"enabled"`

	// FetchTimeout bounds each context-fragment fetch.
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
}

// RetentionConfig holds cleanup-service settings.
type RetentionConfig struct {
	CleanupInterval time.Duration `yaml:"cleanup_interval"`

	// EventTTL is how long transient websocket events are kept.
	EventTTL time.Duration `yaml:"event_ttl"`

	// AgentSessionIdle expires active agent sessions with no activity.
	AgentSessionIdle time.Duration `yaml:"agent_session_idle"`

	// SummarizedTTL is how long summarized messages are kept. Their
	// content lives on in conversation summaries and memory records.
	SummarizedTTL time.Duration `yaml:"summarized_ttl"`
}

// AgentsConfig holds the known agent names for message routing.
type AgentsConfig struct {
	// Default receives turns the classifier cannot place.
	Default string `yaml:"default"`

	// Known lists the routable agent names.
	Known []string `yaml:"known"`
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// ModelTimeout returns the invocation timeout for the given tool policy.
func (c *ModelConfig) ModelTimeout(withTools bool) time.Duration {
	if withTools {
		return c.TimeoutWithTools
	}
	return c.TimeoutNoTools
}
