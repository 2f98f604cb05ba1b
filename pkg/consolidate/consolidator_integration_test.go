package consolidate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliebot/relay/pkg/gateway"
	"github.com/elliebot/relay/pkg/memory"
	"github.com/elliebot/relay/pkg/search"
	"github.com/elliebot/relay/pkg/services"
	testdb "github.com/elliebot/relay/test/database"
)

// scriptedExtractor replays one canned model reply per invocation.
type scriptedExtractor struct {
	replies []string
	calls   int
}

func (m *scriptedExtractor) Invoke(_ context.Context, _ string, _ gateway.Options) (*gateway.Result, error) {
	reply := m.replies[m.calls]
	m.calls++
	return &gateway.Result{Text: reply, Outcome: gateway.OutcomeSuccess}, nil
}

func TestRunRollsBackBlockOnExtractionFailure(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)

	messages := services.NewMessageService(client.Client)
	conversations := services.NewConversationService(client.Client)
	sessions := services.NewAgentSessionService(client.Client)
	memories := memory.NewStore(client.Client, search.Disabled{})

	model := &scriptedExtractor{replies: []string{
		"I could not produce the requested output.",
		`{"summary": "Planned the router upgrade.", "memories": [{"type": "fact", "content": "User runs OpenWrt at home"}]}`,
	}}
	c := New(messages, conversations, sessions, memories, model, nil)

	for _, text := range []string{"my router keeps dropping wifi", "it's an old archer c7", "ok let's plan an upgrade"} {
		_, err := messages.SaveUser(ctx, "telegram", text, nil)
		require.NoError(t, err)
	}

	// First run: the model reply has no JSON, so the block fails and
	// must leave the database exactly as it found it.
	report, err := c.Run(ctx, "telegram")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Blocks)
	assert.Equal(t, 1, report.BlocksFailed)
	assert.Equal(t, 0, report.MemoriesInserted)

	rows, err := client.Client.Message.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Nil(t, row.ConversationID)
		assert.False(t, row.Summarized)
	}
	convCount, err := client.Client.Conversation.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, convCount, "rolled-back block must not leave a conversation row")

	// Second run picks the same block up again and commits it.
	report, err = c.Run(ctx, "telegram")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Blocks)
	assert.Zero(t, report.BlocksFailed)
	assert.Equal(t, 2, report.MemoriesInserted)

	rows, err = client.Client.Message.Query().All(ctx)
	require.NoError(t, err)
	for _, row := range rows {
		require.NotNil(t, row.ConversationID)
		assert.True(t, row.Summarized)
	}
	conv, err := client.Client.Conversation.Query().Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, conv.Summary)
	assert.Equal(t, "Planned the router upgrade.", *conv.Summary)
}
