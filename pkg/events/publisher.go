package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// notifyLimit is a safety margin under PostgreSQL's 8000-byte NOTIFY
// payload limit. Payloads over this are replaced by a truncation envelope
// carrying only routing fields; clients fetch the full event from the DB.
const notifyLimit = 7900

// Publisher publishes relay events for WebSocket delivery.
// Persistent events are stored in the events table then broadcast via
// NOTIFY in the same transaction; transient events are NOTIFY only.
//
// Each public method accepts a typed payload struct from payloads.go.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher over the database's *sql.DB handle.
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// MessageCreated persists and broadcasts a message.created event on the
// message's chat channel.
func (p *Publisher) MessageCreated(ctx context.Context, payload MessageCreatedPayload) error {
	payload.Type = EventTypeMessageCreated
	payload.Timestamp = stamp()
	return p.persistAndNotify(ctx, ChatChannel(payload.Channel), mustJSON(payload))
}

// ApprovalRequested persists and broadcasts an approval.requested event.
func (p *Publisher) ApprovalRequested(ctx context.Context, payload ApprovalRequestedPayload) error {
	payload.Type = EventTypeApprovalRequested
	payload.Timestamp = stamp()
	return p.persistAndNotify(ctx, ChatChannel(payload.Channel), mustJSON(payload))
}

// ApprovalResolved persists and broadcasts an approval.resolved event.
func (p *Publisher) ApprovalResolved(ctx context.Context, payload ApprovalResolvedPayload) error {
	payload.Type = EventTypeApprovalResolved
	payload.Timestamp = stamp()
	return p.persistAndNotify(ctx, ChatChannel(payload.Channel), mustJSON(payload))
}

// ConsolidationCompleted persists and broadcasts a consolidation.completed event.
func (p *Publisher) ConsolidationCompleted(ctx context.Context, payload ConsolidationPayload) error {
	payload.Type = EventTypeConsolidation
	payload.Timestamp = stamp()
	return p.persistAndNotify(ctx, ChatChannel(payload.Channel), mustJSON(payload))
}

// TurnStatus broadcasts a turn.status transient event (no DB persistence).
func (p *Publisher) TurnStatus(ctx context.Context, payload TurnStatusPayload) error {
	payload.Type = EventTypeTurnStatus
	payload.Timestamp = stamp()
	return p.notifyOnly(ctx, ChatChannel(payload.Channel), mustJSON(payload))
}

// Typing broadcasts a typing transient event.
func (p *Publisher) Typing(ctx context.Context, channel string) error {
	payload := TypingPayload{Type: EventTypeTyping, Channel: channel, Timestamp: stamp()}
	return p.notifyOnly(ctx, ChatChannel(channel), mustJSON(payload))
}

// QueueStatus broadcasts a queue.status transient event on the relay channel.
func (p *Publisher) QueueStatus(ctx context.Context, payload QueueStatusPayload) error {
	payload.Type = EventTypeQueueStatus
	payload.Timestamp = stamp()
	return p.notifyOnly(ctx, RelayChannel, mustJSON(payload))
}

// persistAndNotify stores a pre-marshaled event and broadcasts it via
// NOTIFY in a single transaction. pg_notify is transactional, so the
// INSERT and the broadcast become visible atomically at COMMIT.
func (p *Publisher) persistAndNotify(ctx context.Context, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (channel, payload, created_at) VALUES ($1, $2, $3) RETURNING id`,
		channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// The NOTIFY copy carries db_event_id so clients can track their
	// catchup position. The stored payload does not.
	notifyPayload, err := injectDBEventID(payloadJSON, eventID)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// notifyOnly broadcasts a pre-marshaled event without persisting it.
func (p *Publisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectDBEventID adds db_event_id to the payload for NOTIFY delivery and
// truncates if the result exceeds the NOTIFY size limit.
func injectDBEventID(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	return truncateIfNeeded(string(enriched))
}

// truncateIfNeeded returns the payload as-is when it fits the NOTIFY limit,
// otherwise a minimal envelope with only the routing fields a client needs
// to fetch the full event through catchup.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= notifyLimit {
		return payloadStr, nil
	}

	var routing struct {
		Type      string `json:"type"`
		Channel   string `json:"channel"`
		MessageID string `json:"message_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal([]byte(payloadStr), &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"channel":   routing.Channel,
		"truncated": true,
	}
	if routing.MessageID != "" {
		truncated["message_id"] = routing.MessageID
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	out, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(out), nil
}

func stamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// mustJSON marshals a payload struct. The payload types contain only
// marshalable fields, so failure here is a programming error.
func mustJSON(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("events: marshal payload: %v", err))
	}
	return data
}
