package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/elliebot/relay/ent"
	"github.com/elliebot/relay/ent/agentsession"
)

// AgentSessionService tracks which agent owns a channel's activity
// window. The database enforces at most one active session per channel
// through a partial unique index.
type AgentSessionService struct {
	client *ent.Client
	logger *slog.Logger
	now    func() time.Time
}

// NewAgentSessionService creates the service.
func NewAgentSessionService(client *ent.Client) *AgentSessionService {
	return &AgentSessionService{
		client: client,
		logger: slog.Default().With("component", "agent_sessions"),
		now:    time.Now,
	}
}

// EnsureActive returns the channel's active session for agent,
// touching its activity timestamp. A different agent taking over
// completes the old session and starts a fresh one.
func (s *AgentSessionService) EnsureActive(ctx context.Context, channel, agent string) (*ent.AgentSession, error) {
	active, err := s.client.AgentSession.Query().
		Where(
			agentsession.ChannelEQ(channel),
			agentsession.StateEQ(agentsession.StateActive),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query active agent session: %w", err)
	}

	if active != nil {
		if active.Agent == agent {
			touched, err := active.Update().SetLastActivity(s.now()).Save(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to touch agent session %s: %w", active.ID, err)
			}
			return touched, nil
		}
		// Handover: the unique index requires the old session to leave
		// the active state before the new one is created.
		if err := active.Update().SetState(agentsession.StateCompleted).Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to complete agent session %s: %w", active.ID, err)
		}
		s.logger.Info("Agent handover", "channel", channel,
			"from", active.Agent, "to", agent)
	}

	created, err := s.client.AgentSession.Create().
		SetID(uuid.New().String()).
		SetChannel(channel).
		SetAgent(agent).
		SetLastActivity(s.now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent session: %w", err)
	}
	return created, nil
}

// AttributeWindow returns the agent most recently active on the
// channel during [start, end], defaulting to general. The consolidator
// uses this to attribute a block to an agent.
func (s *AgentSessionService) AttributeWindow(ctx context.Context, channel string, start, end time.Time) (string, error) {
	row, err := s.client.AgentSession.Query().
		Where(
			agentsession.ChannelEQ(channel),
			agentsession.CreatedAtLTE(end),
			agentsession.LastActivityGTE(start),
		).
		Order(ent.Desc(agentsession.FieldLastActivity)).
		First(ctx)
	if ent.IsNotFound(err) {
		return "general", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to attribute agent window: %w", err)
	}
	return row.Agent, nil
}

// ExpireIdle moves active sessions with no activity past the idle
// window into the expired state. Returns how many expired.
func (s *AgentSessionService) ExpireIdle(ctx context.Context, idle time.Duration) (int, error) {
	n, err := s.client.AgentSession.Update().
		Where(
			agentsession.StateEQ(agentsession.StateActive),
			agentsession.LastActivityLT(s.now().Add(-idle)),
		).
		SetState(agentsession.StateExpired).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to expire idle agent sessions: %w", err)
	}
	if n > 0 {
		s.logger.Info("Expired idle agent sessions", "count", n)
	}
	return n, nil
}
