package config

import "time"

// DefaultConfig returns the built-in defaults. YAML and environment
// overrides are merged on top of this by Initialize.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			WebhookDeadline: 25 * time.Second,
		},
		Relay: RelayConfig{
			IdleTimeout:           10 * time.Minute,
			TypingInterval:        4 * time.Second,
			NudgeDelay:            5 * time.Minute,
			NudgeCheckInterval:    60 * time.Second,
			NudgeGC:               60 * time.Minute,
			ApprovalTTL:           15 * time.Minute,
			ConsolidationInterval: 4 * time.Hour,
			Timezone:              "UTC",
			LockFile:              "bot.lock",
		},
		Model: ModelConfig{
			ClaudePath:       "claude",
			TimeoutWithTools: 7 * time.Minute,
			TimeoutNoTools:   60 * time.Second,
			KillGrace:        5 * time.Second,
			SessionFile:      "session.json",
			RecoveryLock:     60 * time.Second,
		},
		Delivery: DeliveryConfig{
			MaxRetries:  3,
			BackoffBase: 2 * time.Second,
		},
		SyncQueue: SyncQueueConfig{
			PollInterval: 30 * time.Second,
			BatchSize:    10,
			MaxAttempts:  5,
			BackoffBase:  30 * time.Second,
			PurgeAfter:   7 * 24 * time.Hour,
		},
		Search: SearchConfig{
			FetchTimeout: 3 * time.Second,
		},
		Retention: RetentionConfig{
			CleanupInterval:  time.Hour,
			EventTTL:         10 * time.Minute,
			AgentSessionIdle: 2 * time.Hour,
			SummarizedTTL:    90 * 24 * time.Hour,
		},
		Agents: AgentsConfig{
			Default: "general",
			Known:   []string{"general", "research", "coding", "planner"},
		},
	}
}
