package pipeline

import (
	"context"
	"fmt"

	"github.com/elliebot/relay/pkg/approval"
)

// Resolution is the outcome of answering a pending confirmation.
type Resolution struct {
	Action   approval.PendingAction
	Approved bool

	// FollowUp is the text to run through a new turn so the model
	// learns the verdict and, on approval, carries the action out.
	FollowUp string
}

// ResolveApproval answers a pending confirmation by id. The prompting
// message is edited in place when its transport handle is known, so the
// buttons disappear and the card shows the verdict. Returns false when
// the id is unknown, meaning the action was already resolved or expired.
func (p *Pipeline) ResolveApproval(ctx context.Context, actionID string, approved bool) (Resolution, bool) {
	action, ok := p.approvals.Remove(actionID)
	if !ok {
		p.logger.Info("Decision for unknown action, likely expired", "action_id", actionID)
		return Resolution{}, false
	}

	p.editPrompt(ctx, action, approved)

	verdict := "approved"
	instruction := "Carry it out now and report the result."
	if !approved {
		verdict = "denied"
		instruction = "Do not perform it. Acknowledge briefly."
	}
	return Resolution{
		Action:   action,
		Approved: approved,
		FollowUp: fmt.Sprintf("The user %s the proposed action: %s. %s",
			verdict, action.Description, instruction),
	}, true
}

// editPrompt rewrites the confirmation card so stale approve/deny
// buttons cannot be pressed twice.
func (p *Pipeline) editPrompt(ctx context.Context, action approval.PendingAction, approved bool) {
	h := action.Handle
	if h.Channel == "" || h.ExternalID == "" {
		return
	}
	tr, err := p.transports.Get(h.Channel)
	if err != nil {
		return
	}

	text := fmt.Sprintf("✅ Approved: %s", action.Description)
	if !approved {
		text = fmt.Sprintf("❌ Denied: %s", action.Description)
	}
	if err := tr.Edit(ctx, h.ExternalID, text); err != nil {
		p.logger.Warn("Failed to edit confirmation prompt",
			"action_id", action.ID, "channel", h.Channel, "error", err)
	}
}
