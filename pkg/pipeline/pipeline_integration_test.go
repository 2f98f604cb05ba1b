package pipeline

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliebot/relay/ent/memoryrecord"
	"github.com/elliebot/relay/pkg/approval"
	"github.com/elliebot/relay/pkg/config"
	"github.com/elliebot/relay/pkg/database"
	"github.com/elliebot/relay/pkg/delivery"
	"github.com/elliebot/relay/pkg/gateway"
	"github.com/elliebot/relay/pkg/memory"
	"github.com/elliebot/relay/pkg/prompt"
	"github.com/elliebot/relay/pkg/search"
	"github.com/elliebot/relay/pkg/services"
	"github.com/elliebot/relay/pkg/transport"
	testdb "github.com/elliebot/relay/test/database"
)

type scriptedModel struct {
	reply string
	err   error

	mu      sync.Mutex
	prompts []string
}

func (m *scriptedModel) Invoke(_ context.Context, p string, _ gateway.Options) (*gateway.Result, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, p)
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return &gateway.Result{Text: m.reply, Outcome: gateway.OutcomeSuccess}, nil
}

type recordingDeliverer struct {
	mu    sync.Mutex
	sends []string
}

func (d *recordingDeliverer) Deliver(_ context.Context, text string, opts delivery.Options) delivery.Result {
	d.mu.Lock()
	d.sends = append(d.sends, text)
	d.mu.Unlock()
	return delivery.Result{Status: delivery.StatusSent, Channel: opts.Channel, Attempts: 1}
}

type turnFixture struct {
	pipe      *Pipeline
	deliverer *recordingDeliverer
	client    *database.Client
	approvals *approval.Store
}

func newTurnFixture(t *testing.T, model Invoker) *turnFixture {
	client := testdb.NewTestClient(t)
	cfg := config.DefaultConfig()

	messages := services.NewMessageService(client.Client)
	conversations := services.NewConversationService(client.Client)
	sessions := services.NewAgentSessionService(client.Client)
	memories := memory.NewStore(client.Client, search.Disabled{})
	approvals := approval.NewStore(time.Hour, nil)
	deliverer := &recordingDeliverer{}

	pipe := New(*cfg, Deps{
		Messages:      messages,
		Conversations: conversations,
		Sessions:      sessions,
		Memories:      memories,
		Approvals:     approvals,
		Deliverer:     deliverer,
		Model:         model,
		Classifier:    NewKeywordClassifier(cfg.Agents),
		Assembler:     prompt.NewAssembler(cfg.Search.FetchTimeout),
		Sources: DefaultSources(SourceDeps{
			Messages: messages,
			Memories: memories,
			Search:   search.Disabled{},
			Timezone: time.UTC,
		}),
		Transports: transport.NewRegistry(),
	})

	return &turnFixture{pipe: pipe, deliverer: deliverer, client: client, approvals: approvals}
}

func TestHandleTurnPersistsAndDelivers(t *testing.T) {
	model := &scriptedModel{
		reply: "Saved it. [REMEMBER: the wifi password is hunter2] [CONFIRM: order new router]",
	}
	fx := newTurnFixture(t, model)
	ctx := context.Background()

	result, err := fx.pipe.HandleTurn(ctx, TurnRequest{
		Channel: transport.ChannelTelegram,
		Text:    "remember the wifi password is hunter2",
	})
	require.NoError(t, err)

	assert.Equal(t, "Saved it.", result.Reply, "markers are stripped from the reply")
	assert.Equal(t, "general", result.Agent)
	require.NotNil(t, result.Delivery)
	assert.Equal(t, delivery.StatusSent, result.Delivery.Status)

	require.Len(t, model.prompts, 1)
	assert.Contains(t, model.prompts[0], "remember the wifi password is hunter2")

	// One reply plus one text-fallback confirmation prompt: no transport
	// on the registry supports cards.
	require.Len(t, fx.deliverer.sends, 2)
	assert.Equal(t, "Saved it.", fx.deliverer.sends[0])
	assert.Contains(t, fx.deliverer.sends[1], "order new router")

	require.Len(t, result.Confirmations, 1)
	_, ok := fx.approvals.Get(result.Confirmations[0].ID)
	assert.True(t, ok, "confirmation is registered as a pending action")

	stored, err := fx.client.Client.MemoryRecord.Query().
		Where(memoryrecord.TypeEQ(memoryrecord.TypeFact)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "the wifi password is hunter2", stored.Content)
	assert.Equal(t, "general", stored.SourceAgent)
}

func TestHandleTurnSkipDelivery(t *testing.T) {
	model := &scriptedModel{reply: "Here synchronously."}
	fx := newTurnFixture(t, model)

	result, err := fx.pipe.HandleTurn(context.Background(), TurnRequest{
		Channel:      transport.ChannelSlack,
		Text:         "quick one",
		SkipDelivery: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Here synchronously.", result.Reply)
	assert.Nil(t, result.Delivery)
	assert.Empty(t, fx.deliverer.sends)
}

func TestHandleTurnModelFailureBecomesReply(t *testing.T) {
	model := &scriptedModel{err: context.DeadlineExceeded}
	fx := newTurnFixture(t, model)

	result, err := fx.pipe.HandleTurn(context.Background(), TurnRequest{
		Channel: transport.ChannelTelegram,
		Text:    "hello?",
	})
	require.NoError(t, err, "model failures never fail the turn")
	assert.Contains(t, result.Reply, "ran into an error")
	require.Len(t, fx.deliverer.sends, 1, "the failure text is still delivered")
}

func TestHandleTurnRoutesByKeyword(t *testing.T) {
	model := &scriptedModel{reply: "Looking into it."}
	fx := newTurnFixture(t, model)

	result, err := fx.pipe.HandleTurn(context.Background(), TurnRequest{
		Channel: transport.ChannelWeb,
		Text:    "research the best standing desks and compare prices",
	})
	require.NoError(t, err)
	assert.Equal(t, "research", result.Agent)
}

func TestHandleTurnAssignsConversation(t *testing.T) {
	model := &scriptedModel{reply: "Hi."}
	fx := newTurnFixture(t, model)
	ctx := context.Background()

	_, err := fx.pipe.HandleTurn(ctx, TurnRequest{Channel: transport.ChannelVoice, Text: "hello"})
	require.NoError(t, err)
	_, err = fx.pipe.HandleTurn(ctx, TurnRequest{Channel: transport.ChannelVoice, Text: "still there?"})
	require.NoError(t, err)

	conv, err := fx.pipe.conversations.GetOrCreateActive(ctx, transport.ChannelVoice)
	require.NoError(t, err)

	rows, err := fx.pipe.messages.RecentHistory(ctx, transport.ChannelVoice, 10)
	require.NoError(t, err)
	require.Len(t, rows, 4, "two user turns and two replies")
	for _, row := range rows {
		require.NotNil(t, row.ConversationID)
		assert.Equal(t, conv.ID, *row.ConversationID)
	}
}
