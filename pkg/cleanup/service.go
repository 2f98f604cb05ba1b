// Package cleanup enforces data retention in the background.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/elliebot/relay/pkg/config"
)

// eventPurger prunes the transient websocket event store.
type eventPurger interface {
	PurgeBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// messagePurger prunes summarized messages past retention.
type messagePurger interface {
	PurgeSummarizedBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// sessionExpirer completes agent sessions with no recent activity.
type sessionExpirer interface {
	ExpireIdle(ctx context.Context, idle time.Duration) (int, error)
}

// queuePurger prunes completed sync-queue rows.
type queuePurger interface {
	PurgeCompleted(ctx context.Context) (int, error)
}

// Service periodically enforces retention policies:
//   - Removes websocket event rows past their TTL
//   - Expires idle agent sessions
//   - Purges completed sync-queue rows
//   - Purges summarized messages past long-term retention
//
// All operations are idempotent.
type Service struct {
	cfg      config.RetentionConfig
	events   eventPurger
	messages messagePurger
	sessions sessionExpirer
	queue    queuePurger

	cancel context.CancelFunc
	done   chan struct{}
	now    func() time.Time
	logger *slog.Logger
}

// NewService creates a cleanup service.
func NewService(cfg config.RetentionConfig, events eventPurger, messages messagePurger, sessions sessionExpirer, queue queuePurger) *Service {
	return &Service{
		cfg:      cfg,
		events:   events,
		messages: messages,
		sessions: sessions,
		queue:    queue,
		now:      time.Now,
		logger:   slog.Default().With("component", "cleanup"),
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("cleanup service started",
		"interval", s.cfg.CleanupInterval,
		"event_ttl", s.cfg.EventTTL,
		"agent_session_idle", s.cfg.AgentSessionIdle,
		"summarized_ttl", s.cfg.SummarizedTTL)
}

// Stop signals the loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll executes every retention task once.
func (s *Service) RunAll(ctx context.Context) {
	s.purgeEvents(ctx)
	s.expireAgentSessions(ctx)
	s.purgeQueue(ctx)
	s.purgeMessages(ctx)
}

func (s *Service) purgeEvents(ctx context.Context) {
	if s.events == nil || s.cfg.EventTTL <= 0 {
		return
	}
	count, err := s.events.PurgeBefore(ctx, s.now().Add(-s.cfg.EventTTL))
	if err != nil {
		s.logger.Error("retention: event purge failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("retention: purged websocket events", "count", count)
	}
}

func (s *Service) expireAgentSessions(ctx context.Context) {
	if s.sessions == nil || s.cfg.AgentSessionIdle <= 0 {
		return
	}
	count, err := s.sessions.ExpireIdle(ctx, s.cfg.AgentSessionIdle)
	if err != nil {
		s.logger.Error("retention: agent session expiry failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("retention: expired idle agent sessions", "count", count)
	}
}

func (s *Service) purgeQueue(ctx context.Context) {
	if s.queue == nil {
		return
	}
	count, err := s.queue.PurgeCompleted(ctx)
	if err != nil {
		s.logger.Error("retention: sync queue purge failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("retention: purged completed sync items", "count", count)
	}
}

func (s *Service) purgeMessages(ctx context.Context) {
	if s.messages == nil || s.cfg.SummarizedTTL <= 0 {
		return
	}
	count, err := s.messages.PurgeSummarizedBefore(ctx, s.now().Add(-s.cfg.SummarizedTTL))
	if err != nil {
		s.logger.Error("retention: message purge failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("retention: purged summarized messages", "count", count)
	}
}
