package voice

import (
	"fmt"
	"sort"
	"strings"
)

// AssistantRequest is the voice-assistant webhook body: a recognized
// intent plus its filled slots.
type AssistantRequest struct {
	Intent string            `json:"intent"`
	Slots  map[string]string `json:"slots,omitempty"`
}

// AssistantResponse is spoken back by the assistant device.
type AssistantResponse struct {
	Speech     string `json:"speech"`
	EndSession bool   `json:"end_session"`
}

// TurnText renders an intent invocation as a pipeline turn. Free-text
// slots pass through verbatim; structured intents become a readable
// request line so the model sees what the user asked for.
func (r AssistantRequest) TurnText() string {
	for _, key := range []string{"text", "query", "utterance"} {
		if v := r.Slots[key]; v != "" {
			return v
		}
	}

	if len(r.Slots) == 0 {
		return r.Intent
	}

	keys := make([]string, 0, len(r.Slots))
	for k := range r.Slots {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, r.Slots[k]))
	}
	return fmt.Sprintf("%s (%s)", r.Intent, strings.Join(parts, ", "))
}
