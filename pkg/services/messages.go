// Package services contains the persistence layer over the Ent
// client: message history, conversation lifecycle, and agent-session
// attribution. Components depend on these services rather than on Ent
// queries directly.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/elliebot/relay/ent"
	"github.com/elliebot/relay/ent/message"
)

// MessageService persists and reads per-turn messages.
type MessageService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewMessageService creates the service.
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{
		client: client,
		logger: slog.Default().With("component", "messages"),
	}
}

// Save persists one turn and returns the stored row.
func (s *MessageService) Save(ctx context.Context, role message.Role, channel, content string, metadata map[string]interface{}) (*ent.Message, error) {
	create := s.client.Message.Create().
		SetID(uuid.New().String()).
		SetRole(role).
		SetChannel(channel).
		SetContent(content)
	if metadata != nil {
		create.SetMetadata(metadata)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save %s message: %w", role, err)
	}
	return row, nil
}

// SaveUser persists an inbound user turn.
func (s *MessageService) SaveUser(ctx context.Context, channel, content string, metadata map[string]interface{}) (*ent.Message, error) {
	return s.Save(ctx, message.RoleUser, channel, content, metadata)
}

// SaveAssistant persists an outbound assistant turn.
func (s *MessageService) SaveAssistant(ctx context.Context, channel, content string, metadata map[string]interface{}) (*ent.Message, error) {
	return s.Save(ctx, message.RoleAssistant, channel, content, metadata)
}

// RecentHistory returns the channel's latest messages in chronological
// order.
func (s *MessageService) RecentHistory(ctx context.Context, channel string, limit int) ([]*ent.Message, error) {
	rows, err := s.client.Message.Query().
		Where(message.ChannelEQ(channel)).
		Order(ent.Desc(message.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent history: %w", err)
	}

	// Reverse into chronological order.
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows, nil
}

// UnsummarizedBatch returns up to limit unsummarized messages oldest
// first, optionally restricted to one channel.
func (s *MessageService) UnsummarizedBatch(ctx context.Context, channel string, limit int) ([]*ent.Message, error) {
	q := s.client.Message.Query().
		Where(message.SummarizedEQ(false)).
		Order(ent.Asc(message.FieldCreatedAt)).
		Limit(limit)
	if channel != "" {
		q.Where(message.ChannelEQ(channel))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load unsummarized messages: %w", err)
	}
	return rows, nil
}

// MergeDeliveryRecord folds a delivery record into the message's
// metadata without clobbering unrelated keys, and mirrors the status
// column.
func (s *MessageService) MergeDeliveryRecord(ctx context.Context, messageID string, record map[string]interface{}) error {
	row, err := s.client.Message.Get(ctx, messageID)
	if err != nil {
		return fmt.Errorf("failed to load message %s: %w", messageID, err)
	}

	meta := make(map[string]interface{}, len(row.Metadata)+len(record))
	for k, v := range row.Metadata {
		meta[k] = v
	}
	for k, v := range record {
		meta[k] = v
	}

	update := s.client.Message.UpdateOne(row).SetMetadata(meta)
	if status, ok := record["status"].(string); ok {
		update.SetDeliveryStatus(status)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to merge delivery record on %s: %w", messageID, err)
	}
	return nil
}

// AssignConversation stamps conversation_id on a block of messages.
// Used by the consolidator before summary extraction.
func (s *MessageService) AssignConversation(ctx context.Context, messageIDs []string, conversationID string) error {
	err := s.client.Message.Update().
		Where(message.IDIn(messageIDs...)).
		SetConversationID(conversationID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to assign conversation %s: %w", conversationID, err)
	}
	return nil
}

// ClearConversation reverts AssignConversation during rollback.
func (s *MessageService) ClearConversation(ctx context.Context, messageIDs []string) error {
	err := s.client.Message.Update().
		Where(message.IDIn(messageIDs...)).
		ClearConversationID().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear conversation assignment: %w", err)
	}
	return nil
}

// MarkSummarized flips summarized=true; called only after the summary
// extraction succeeded.
func (s *MessageService) MarkSummarized(ctx context.Context, messageIDs []string) error {
	err := s.client.Message.Update().
		Where(message.IDIn(messageIDs...)).
		SetSummarized(true).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark messages summarized: %w", err)
	}
	return nil
}

// PurgeSummarizedBefore deletes summarized messages older than cutoff.
// Their content lives on in conversation summaries and memories.
func (s *MessageService) PurgeSummarizedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Message.Delete().
		Where(
			message.SummarizedEQ(true),
			message.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge summarized messages: %w", err)
	}
	return n, nil
}
