package slackchat

import (
	"encoding/json"
	"fmt"

	goslack "github.com/slack-go/slack"
)

// Button action ids on approval cards.
const (
	actionApprove = "approve_action"
	actionDeny    = "deny_action"
)

// Decision is the user's answer parsed from an interaction callback.
type Decision struct {
	ActionID    string // pending action UUID carried in the button value
	Approved    bool
	UserID      string
	MessageTS   string // card message, so it can be edited after resolution
	ResponseURL string
}

// BuildConfirmationBlocks creates an approval card: the proposed action as
// a section plus approve/deny buttons carrying the action id.
func BuildConfirmationBlocks(actionID, description string) []goslack.Block {
	text := fmt.Sprintf(":raising_hand: *Approval needed*\n%s", description)

	approve := goslack.NewButtonBlockElement(actionApprove, actionID,
		goslack.NewTextBlockObject(goslack.PlainTextType, "Approve", false, false))
	approve.Style = goslack.StylePrimary

	deny := goslack.NewButtonBlockElement(actionDeny, actionID,
		goslack.NewTextBlockObject(goslack.PlainTextType, "Deny", false, false))
	deny.Style = goslack.StyleDanger

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
		goslack.NewActionBlock("approval", approve, deny),
	}
}

// ParseDecision extracts an approval decision from the raw interaction
// callback payload (the "payload" form field of the interactivity POST).
// Returns ok=false for callbacks that are not approval button presses.
func ParseDecision(payload []byte) (Decision, bool, error) {
	var cb goslack.InteractionCallback
	if err := json.Unmarshal(payload, &cb); err != nil {
		return Decision{}, false, fmt.Errorf("failed to parse interaction callback: %w", err)
	}

	if cb.Type != goslack.InteractionTypeBlockActions {
		return Decision{}, false, nil
	}

	for _, action := range cb.ActionCallback.BlockActions {
		if action.ActionID != actionApprove && action.ActionID != actionDeny {
			continue
		}
		return Decision{
			ActionID:    action.Value,
			Approved:    action.ActionID == actionApprove,
			UserID:      cb.User.ID,
			MessageTS:   cb.Message.Timestamp,
			ResponseURL: cb.ResponseURL,
		}, true, nil
	}
	return Decision{}, false, nil
}
