package events

import (
	"context"
	"encoding/json"

	"github.com/elliebot/relay/pkg/services"
)

// EventServiceAdapter wraps services.EventService to implement CatchupQuerier.
type EventServiceAdapter struct {
	eventService *services.EventService
}

// NewEventServiceAdapter creates a CatchupQuerier from an EventService.
func NewEventServiceAdapter(es *services.EventService) *EventServiceAdapter {
	return &EventServiceAdapter{eventService: es}
}

// EventsSince queries stored events after sinceID for the catchup protocol.
// Rows whose payload no longer parses as JSON are skipped rather than
// failing the whole catchup.
func (a *EventServiceAdapter) EventsSince(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error) {
	rows, err := a.eventService.EventsSince(ctx, channel, sinceID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]CatchupEvent, 0, len(rows))
	for _, row := range rows {
		var payload map[string]any
		if err := json.Unmarshal([]byte(row.Payload), &payload); err != nil {
			continue
		}
		result = append(result, CatchupEvent{ID: row.ID, Payload: payload})
	}
	return result, nil
}
