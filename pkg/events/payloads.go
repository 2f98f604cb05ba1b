package events

// MessageCreatedPayload is the payload for message.created events.
// Published whenever a message is persisted so browser clients render the
// conversation without polling.
type MessageCreatedPayload struct {
	Type      string `json:"type"`       // always EventTypeMessageCreated
	MessageID string `json:"message_id"` // message UUID
	Channel   string `json:"channel"`    // originating chat channel
	Role      string `json:"role"`       // "user" or "assistant"
	Content   string `json:"content"`    // message text
	Agent     string `json:"agent,omitempty"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// TurnStatusPayload is the payload for turn.status transient events.
// Gives the browser a live view of where a turn is in the dispatch gate.
type TurnStatusPayload struct {
	Type      string `json:"type"`    // always EventTypeTurnStatus
	Channel   string `json:"channel"` // chat channel the turn belongs to
	Status    string `json:"status"`  // queued, started, completed, failed
	Position  int    `json:"position,omitempty"`
	Agent     string `json:"agent,omitempty"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// TypingPayload is the payload for typing transient events.
type TypingPayload struct {
	Type      string `json:"type"`    // always EventTypeTyping
	Channel   string `json:"channel"` // chat channel
	Timestamp string `json:"timestamp"`
}

// ApprovalRequestedPayload is the payload for approval.requested events.
// Published when the model proposes a consequential action that needs a
// yes/no from the user.
type ApprovalRequestedPayload struct {
	Type        string `json:"type"`        // always EventTypeApprovalRequested
	ApprovalID  string `json:"approval_id"` // pending action UUID
	Channel     string `json:"channel"`     // chat channel awaiting the answer
	Description string `json:"description"` // what the model wants to do
	Timestamp   string `json:"timestamp"`
}

// ApprovalResolvedPayload is the payload for approval.resolved events.
type ApprovalResolvedPayload struct {
	Type       string `json:"type"`        // always EventTypeApprovalResolved
	ApprovalID string `json:"approval_id"` // pending action UUID
	Channel    string `json:"channel"`
	Approved   bool   `json:"approved"`
	Timestamp  string `json:"timestamp"`
}

// QueueStatusPayload is the payload for queue.status transient events.
// Mirrors the dispatcher snapshot exposed on GET /queue-status.
type QueueStatusPayload struct {
	Type        string `json:"type"` // always EventTypeQueueStatus
	Busy        bool   `json:"busy"`
	QueueLength int    `json:"queue_length"`
	Current     string `json:"current,omitempty"` // channel of the running item
	Timestamp   string `json:"timestamp"`
}

// ConsolidationPayload is the payload for consolidation.completed events.
type ConsolidationPayload struct {
	Type             string `json:"type"` // always EventTypeConsolidation
	Channel          string `json:"channel"`
	Blocks           int    `json:"blocks"`
	MemoriesInserted int    `json:"memories_inserted"`
	Timestamp        string `json:"timestamp"`
}
