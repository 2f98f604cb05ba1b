package services

import (
	"context"
	"fmt"
	"time"

	"github.com/elliebot/relay/ent"
	"github.com/elliebot/relay/ent/event"
)

// EventService reads and prunes the transient websocket event store.
// Writes go through events.Publisher so the INSERT and NOTIFY share a
// transaction; this service only covers catchup queries and retention.
type EventService struct {
	client *ent.Client
}

// NewEventService creates an EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// EventsSince retrieves up to limit events on a channel with ID greater
// than sinceID, oldest first. Used by the websocket catchup protocol.
func (s *EventService) EventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error) {
	events, err := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	return events, nil
}

// PurgeBefore removes events created before the cutoff. Called by the
// retention service; browser clients only ever catch up on recent history.
func (s *EventService) PurgeBefore(ctx context.Context, cutoff time.Time) (int, error) {
	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge events: %w", err)
	}
	return count, nil
}
