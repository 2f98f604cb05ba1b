package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliebot/relay/ent/message"
	testdb "github.com/elliebot/relay/test/database"
)

// TestServiceIntegration exercises the persistence services together
// against a real PostgreSQL schema.
func TestServiceIntegration(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	messages := NewMessageService(client.Client)
	conversations := NewConversationService(client.Client)
	sessions := NewAgentSessionService(client.Client)
	events := NewEventService(client.Client)

	t.Run("message history round trip", func(t *testing.T) {
		_, err := messages.SaveUser(ctx, "telegram", "remind me about the dentist", nil)
		require.NoError(t, err)
		reply, err := messages.SaveAssistant(ctx, "telegram", "Noted, dentist on Thursday.", map[string]interface{}{
			"agent": "general",
		})
		require.NoError(t, err)
		assert.Equal(t, message.RoleAssistant, reply.Role)

		history, err := messages.RecentHistory(ctx, "telegram", 10)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, message.RoleUser, history[0].Role)
		assert.Equal(t, "Noted, dentist on Thursday.", history[1].Content)
	})

	t.Run("delivery record merge keeps metadata", func(t *testing.T) {
		row, err := messages.SaveAssistant(ctx, "web", "done", map[string]interface{}{
			"agent": "coder",
		})
		require.NoError(t, err)

		err = messages.MergeDeliveryRecord(ctx, row.ID, map[string]interface{}{
			"status":   "delivered",
			"attempts": 1,
		})
		require.NoError(t, err)

		updated, err := client.Client.Message.Get(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, "delivered", updated.DeliveryStatus)
		assert.Equal(t, "coder", updated.Metadata["agent"])
		assert.Equal(t, "delivered", updated.Metadata["status"])
	})

	t.Run("conversation lifecycle", func(t *testing.T) {
		first, err := conversations.GetOrCreateActive(ctx, "slack")
		require.NoError(t, err)
		again, err := conversations.GetOrCreateActive(ctx, "slack")
		require.NoError(t, err)
		assert.Equal(t, first.ID, again.ID, "open conversation is reused")

		cctx, err := conversations.CurrentContext(ctx, "slack")
		require.NoError(t, err)
		assert.True(t, cctx.Active)
		assert.Equal(t, first.ID, cctx.ConversationID)

		closedID, err := conversations.CloseActive(ctx, "slack")
		require.NoError(t, err)
		assert.Equal(t, first.ID, closedID)

		// Closing twice is a no-op.
		require.NoError(t, conversations.Close(ctx, first.ID))

		// Context falls back to the most recently closed conversation.
		cctx, err = conversations.CurrentContext(ctx, "slack")
		require.NoError(t, err)
		assert.False(t, cctx.Active)
		assert.Equal(t, first.ID, cctx.ConversationID)

		// Nothing left to close.
		closedID, err = conversations.CloseActive(ctx, "slack")
		require.NoError(t, err)
		assert.Empty(t, closedID)

		next, err := conversations.GetOrCreateActive(ctx, "slack")
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, next.ID, "closed conversations are terminal")
	})

	t.Run("consolidation block bookkeeping", func(t *testing.T) {
		a, err := messages.SaveUser(ctx, "voice", "call the plumber", nil)
		require.NoError(t, err)
		b, err := messages.SaveAssistant(ctx, "voice", "Calling now.", nil)
		require.NoError(t, err)

		batch, err := messages.UnsummarizedBatch(ctx, "voice", 50)
		require.NoError(t, err)
		require.Len(t, batch, 2)
		assert.Equal(t, a.ID, batch[0].ID, "oldest first")

		block, err := conversations.CreateBlock(ctx, "voice", "general",
			a.CreatedAt, b.CreatedAt, 2)
		require.NoError(t, err)
		require.NoError(t, conversations.SetSummary(ctx, block.ID, "Arranged a plumber visit."))

		ids := []string{a.ID, b.ID}
		require.NoError(t, messages.AssignConversation(ctx, ids, block.ID))
		require.NoError(t, messages.MarkSummarized(ctx, ids))

		batch, err = messages.UnsummarizedBatch(ctx, "voice", 50)
		require.NoError(t, err)
		assert.Empty(t, batch)

		purged, err := messages.PurgeSummarizedBefore(ctx, time.Now().Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 2, purged)
	})

	t.Run("agent session handover and attribution", func(t *testing.T) {
		start := time.Now().Add(-time.Minute)

		first, err := sessions.EnsureActive(ctx, "telegram", "general")
		require.NoError(t, err)
		same, err := sessions.EnsureActive(ctx, "telegram", "general")
		require.NoError(t, err)
		assert.Equal(t, first.ID, same.ID, "same agent keeps its session")

		handover, err := sessions.EnsureActive(ctx, "telegram", "coder")
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, handover.ID)

		agent, err := sessions.AttributeWindow(ctx, "telegram", start, time.Now())
		require.NoError(t, err)
		assert.Equal(t, "coder", agent)

		agent, err = sessions.AttributeWindow(ctx, "assistant", start, time.Now())
		require.NoError(t, err)
		assert.Equal(t, "general", agent, "no sessions defaults to general")

		expired, err := sessions.ExpireIdle(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, expired, "only the active session expires")
	})

	t.Run("event catchup and retention", func(t *testing.T) {
		for _, payload := range []string{`{"seq":1}`, `{"seq":2}`, `{"seq":3}`} {
			_, err := client.Client.Event.Create().
				SetChannel("events").
				SetPayload(payload).
				Save(ctx)
			require.NoError(t, err)
		}

		all, err := events.EventsSince(ctx, "events", 0, 100)
		require.NoError(t, err)
		require.Len(t, all, 3)

		tail, err := events.EventsSince(ctx, "events", all[0].ID, 100)
		require.NoError(t, err)
		require.Len(t, tail, 2)
		assert.Equal(t, `{"seq":2}`, tail[0].Payload)

		purged, err := events.PurgeBefore(ctx, time.Now().Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 3, purged)
	})
}

// TestExecutionPlanService covers plan persistence for multi-step runs.
func TestExecutionPlanService(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	plans := NewExecutionPlanService(client.Client)

	steps := []map[string]interface{}{
		{"agent": "researcher", "instruction": "find flights"},
		{"agent": "writer", "instruction": "summarize options"},
	}
	plan, err := plans.Create(ctx, "web", "pipeline", steps)
	require.NoError(t, err)
	assert.Equal(t, "running", string(plan.Status))

	steps[0]["status"] = "completed"
	plans.UpdateSteps(ctx, plan.ID, steps)

	plans.Finish(ctx, plan.ID, "completed", "Found three options, summarized.")

	reloaded, err := client.Client.ExecutionPlan.Get(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", string(reloaded.Status))
	assert.NotNil(t, reloaded.CompletedAt)
	assert.Equal(t, "Found three options, summarized.", reloaded.PartialOutput)
}
