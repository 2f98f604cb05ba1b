package prompt

import (
	"fmt"
	"strings"
)

// systemPreamble opens every prompt. The agent name shifts the
// persona's focus without changing the voice.
func systemPreamble(agent string) string {
	base := "You are Ellie, a personal assistant relaying through chat. " +
		"Be concise and direct; answer in plain prose suitable for a chat message. " +
		"Never include markdown headers in replies."
	if agent == "" || agent == "general" {
		return base
	}
	return base + fmt.Sprintf(" For this turn you are acting as the %s agent.", agent)
}

// toolPolicy tells the model what it may touch this turn.
func toolPolicy(allowedTools []string) string {
	if len(allowedTools) == 0 {
		return "No tools are available this turn. Answer from context alone."
	}
	return "Tools available this turn: " + strings.Join(allowedTools, ", ") + "."
}

// userIdentity situates the reply on its channel.
func userIdentity(channel string) string {
	switch channel {
	case "voice":
		return "The user is on a phone call. Keep replies short and speakable; no formatting at all."
	case "assistant":
		return "The user is talking through a voice assistant. One or two sentences, speakable."
	case "slack":
		return "The user is in a work chat. Slack-style formatting is fine."
	default:
		return "The user is on " + channel + "."
	}
}

// memoryPolicy teaches the extraction markers. The tag extractor
// strips these from the delivered reply.
const memoryPolicy = `To remember something durable, include [REMEMBER: fact] in your reply ` +
	`([REMEMBER-PRIVATE: …] or [REMEMBER-GLOBAL: …] to narrow or widen who sees it). ` +
	`Record a new goal with [GOAL: description | DEADLINE: 2026-01-31] (deadline optional, ISO format). ` +
	`Mark a goal finished with [DONE: words matching the goal]. ` +
	`These markers are stripped before the user sees the reply, so never reference them in prose.`

// approvalPolicy teaches the confirmation marker.
const approvalPolicy = `When an action needs the user's sign-off before you do it, describe it inside ` +
	`[CONFIRM: …]. Each one becomes an approve/deny prompt on the user's device. ` +
	`Do not perform the action yourself; only propose it.`
