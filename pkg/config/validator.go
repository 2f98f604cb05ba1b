package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks the configuration for values that would break the
// relay at runtime. It returns a single error listing every problem so
// operators can fix a broken deployment in one pass.
func (c *Config) Validate() error {
	var problems []string

	if c.Model.ClaudePath == "" {
		problems = append(problems, "model.claude_path (or CLAUDE_PATH) must point at the claude CLI binary")
	}
	if c.Model.TimeoutWithTools <= 0 || c.Model.TimeoutNoTools <= 0 {
		problems = append(problems, "model timeouts must be positive durations")
	}
	if c.Model.KillGrace <= 0 {
		problems = append(problems, "model.kill_grace must be a positive duration")
	}
	if c.Delivery.MaxRetries < 1 {
		problems = append(problems, "delivery.max_retries must be at least 1")
	}
	if c.Delivery.BackoffBase <= 0 {
		problems = append(problems, "delivery.backoff_base must be a positive duration")
	}
	if c.SyncQueue.BatchSize < 1 {
		problems = append(problems, "sync_queue.batch_size must be at least 1")
	}
	if c.SyncQueue.MaxAttempts < 1 {
		problems = append(problems, "sync_queue.max_attempts must be at least 1")
	}
	if c.Relay.IdleTimeout < time.Second {
		problems = append(problems, "relay.idle_timeout is implausibly short (minimum 1s)")
	}
	if c.Server.WebhookDeadline <= 0 || c.Server.WebhookDeadline >= 30*time.Second {
		problems = append(problems, "server.webhook_deadline must be positive and under the 30s transport hard limit")
	}
	if _, err := time.LoadLocation(c.Relay.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("relay.timezone %q is not a valid IANA zone", c.Relay.Timezone))
	}
	if c.Agents.Default == "" {
		problems = append(problems, "agents.default must name the fallback agent")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}
