package api

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status      string                 `json:"status"`
	Version     string                 `json:"version"`
	Checks      map[string]HealthCheck `json:"checks"`
	Channels    []string               `json:"channels"`
	VoiceActive bool                   `json:"voice_active"`
}

// HealthCheck is one component's health entry.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ConsolidateResponse is returned by POST /api/consolidate.
type ConsolidateResponse struct {
	Reports map[string]ConsolidateReport `json:"reports"`
}

// ConsolidateReport summarises one channel's consolidation run.
type ConsolidateReport struct {
	Blocks           int    `json:"blocks"`
	BlocksFailed     int    `json:"blocks_failed"`
	MessagesCovered  int    `json:"messages_covered"`
	MemoriesInserted int    `json:"memories_inserted"`
	Error            string `json:"error,omitempty"`
}

// CloseConversationResponse is returned by POST /api/conversation/close.
type CloseConversationResponse struct {
	ConversationID string `json:"conversation_id"`
	Closed         bool   `json:"closed"`
}

// WebhookReply is the synchronous body for POST /webhook/chat.
type WebhookReply struct {
	Text         string `json:"text"`
	Acknowledged bool   `json:"acknowledged,omitempty"`
}
