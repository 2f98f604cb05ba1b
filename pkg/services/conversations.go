package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/elliebot/relay/ent"
	"github.com/elliebot/relay/ent/conversation"
)

// ConversationService owns conversation lifecycle: one open
// conversation per channel at most, terminal once closed.
type ConversationService struct {
	client *ent.Client
	logger *slog.Logger
	now    func() time.Time
}

// NewConversationService creates the service.
func NewConversationService(client *ent.Client) *ConversationService {
	return &ConversationService{
		client: client,
		logger: slog.Default().With("component", "conversations"),
		now:    time.Now,
	}
}

// GetOrCreateActive returns the channel's open conversation, creating
// one when none exists.
func (s *ConversationService) GetOrCreateActive(ctx context.Context, channel string) (*ent.Conversation, error) {
	active, err := s.client.Conversation.Query().
		Where(
			conversation.ChannelEQ(channel),
			conversation.EndedAtIsNil(),
		).
		Order(ent.Desc(conversation.FieldStartedAt)).
		First(ctx)
	if err == nil {
		return active, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query active conversation: %w", err)
	}

	created, err := s.client.Conversation.Create().
		SetID(uuid.New().String()).
		SetChannel(channel).
		SetStartedAt(s.now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	s.logger.Info("Opened conversation", "conversation_id", created.ID, "channel", channel)
	return created, nil
}

// CreateBlock inserts a closed-range conversation for a consolidation
// block.
func (s *ConversationService) CreateBlock(ctx context.Context, channel, agent string, startedAt, endedAt time.Time, messageCount int) (*ent.Conversation, error) {
	row, err := s.client.Conversation.Create().
		SetID(uuid.New().String()).
		SetChannel(channel).
		SetAgent(agent).
		SetStartedAt(startedAt).
		SetEndedAt(endedAt).
		SetMessageCount(messageCount).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation block: %w", err)
	}
	return row, nil
}

// SetSummary writes the extracted summary onto the conversation.
func (s *ConversationService) SetSummary(ctx context.Context, conversationID, summary string) error {
	err := s.client.Conversation.UpdateOneID(conversationID).
		SetSummary(summary).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set summary on %s: %w", conversationID, err)
	}
	return nil
}

// Delete removes a conversation row; rollback path for a failed
// consolidation block.
func (s *ConversationService) Delete(ctx context.Context, conversationID string) error {
	err := s.client.Conversation.DeleteOneID(conversationID).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to delete conversation %s: %w", conversationID, err)
	}
	return nil
}

// Close ends the conversation now. Closing an already-closed
// conversation is a no-op.
func (s *ConversationService) Close(ctx context.Context, conversationID string) error {
	row, err := s.client.Conversation.Get(ctx, conversationID)
	if err != nil {
		return fmt.Errorf("failed to load conversation %s: %w", conversationID, err)
	}
	if row.EndedAt != nil {
		return nil
	}
	if err := row.Update().SetEndedAt(s.now()).Exec(ctx); err != nil {
		return fmt.Errorf("failed to close conversation %s: %w", conversationID, err)
	}
	s.logger.Info("Closed conversation", "conversation_id", conversationID)
	return nil
}

// CloseActive closes the channel's open conversation if there is one.
// Returns the closed conversation id, or "" when nothing was open.
func (s *ConversationService) CloseActive(ctx context.Context, channel string) (string, error) {
	active, err := s.client.Conversation.Query().
		Where(
			conversation.ChannelEQ(channel),
			conversation.EndedAtIsNil(),
		).
		Order(ent.Desc(conversation.FieldStartedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query active conversation: %w", err)
	}
	if err := active.Update().SetEndedAt(s.now()).Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to close conversation %s: %w", active.ID, err)
	}
	s.logger.Info("Closed conversation", "conversation_id", active.ID, "channel", channel)
	return active.ID, nil
}

// Context is what the classifier sees about a channel's current
// conversation.
type Context struct {
	ConversationID string `json:"conversation_id,omitempty"`
	Channel        string `json:"channel"`
	Summary        string `json:"summary,omitempty"`
	MessageCount   int    `json:"message_count"`
	Active         bool   `json:"active"`
}

// CurrentContext returns the active conversation's context for a
// channel, falling back to the most recently closed one.
func (s *ConversationService) CurrentContext(ctx context.Context, channel string) (Context, error) {
	row, err := s.client.Conversation.Query().
		Where(conversation.ChannelEQ(channel)).
		Order(ent.Desc(conversation.FieldStartedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return Context{Channel: channel}, nil
	}
	if err != nil {
		return Context{}, fmt.Errorf("failed to query conversation context: %w", err)
	}

	out := Context{
		ConversationID: row.ID,
		Channel:        channel,
		MessageCount:   row.MessageCount,
		Active:         row.EndedAt == nil,
	}
	if row.Summary != nil {
		out.Summary = *row.Summary
	}
	return out, nil
}
