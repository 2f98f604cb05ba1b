// Package events delivers real-time relay events to browser chat clients
// over WebSocket, using PostgreSQL NOTIFY/LISTEN so every process sees
// events regardless of which one produced them.
//
// Events come in two flavors:
//
//   - Persistent: stored in the events table, then broadcast via NOTIFY
//     inside the same transaction. Reconnecting clients catch up on these
//     via the catchup protocol (last_event_id).
//   - Transient: broadcast via NOTIFY only. Lost on disconnect, which is
//     fine for typing indicators and queue snapshots.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// A user or assistant message was saved on a channel.
	EventTypeMessageCreated = "message.created"

	// An action proposed by the model is awaiting approval.
	EventTypeApprovalRequested = "approval.requested"
	EventTypeApprovalResolved  = "approval.resolved"

	// A consolidation pass finished for a channel.
	EventTypeConsolidation = "consolidation.completed"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Turn lifecycle: queued, started, completed, failed.
	EventTypeTurnStatus = "turn.status"

	// Assistant is composing a reply on a channel.
	EventTypeTyping = "typing"

	// Dispatcher queue snapshot changed.
	EventTypeQueueStatus = "queue.status"
)

// Turn lifecycle status values (used in TurnStatusPayload.Status).
const (
	TurnQueued    = "queued"
	TurnStarted   = "started"
	TurnCompleted = "completed"
	TurnFailed    = "failed"
)

// RelayChannel carries process-wide events (queue snapshots) that are not
// tied to a single chat channel.
const RelayChannel = "relay"

// ChatChannel returns the NOTIFY channel name for a chat channel's events.
// Format: "chat:{channel}", e.g. "chat:web".
func ChatChannel(channel string) string {
	return "chat:" + channel
}

// ClientMessage is the JSON structure for client to server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping", "message"
	Channel     string `json:"channel,omitempty"`       // NOTIFY channel name, e.g. "chat:web"
	Text        string `json:"text,omitempty"`          // inbound chat text for "message"
	LastEventID *int   `json:"last_event_id,omitempty"` // for catchup
}
