// Package pipeline orchestrates one user turn: persist, route,
// assemble context, invoke the model, post-process markers, and
// deliver the reply.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/elliebot/relay/ent"
	"github.com/elliebot/relay/ent/syncqueueitem"
	"github.com/elliebot/relay/pkg/approval"
	"github.com/elliebot/relay/pkg/config"
	"github.com/elliebot/relay/pkg/delivery"
	"github.com/elliebot/relay/pkg/dispatch"
	"github.com/elliebot/relay/pkg/extract"
	"github.com/elliebot/relay/pkg/gateway"
	"github.com/elliebot/relay/pkg/memory"
	"github.com/elliebot/relay/pkg/prompt"
	"github.com/elliebot/relay/pkg/services"
	"github.com/elliebot/relay/pkg/transport"
)

// Invoker is the gateway surface the pipeline calls.
type Invoker interface {
	Invoke(ctx context.Context, p string, opts gateway.Options) (*gateway.Result, error)
}

// Enqueuer records tracker-sync work; fire-and-forget.
type Enqueuer interface {
	Enqueue(ctx context.Context, action syncqueueitem.Action, targetID string, payload map[string]interface{})
}

// MemoryWriter is the memory-store surface the pipeline needs.
type MemoryWriter interface {
	InsertWithDedup(ctx context.Context, params memory.InsertParams) (memory.Result, error)
	CompleteGoal(ctx context.Context, query, agent string) (*ent.MemoryRecord, error)
}

// Deliverer sends replies out.
type Deliverer interface {
	Deliver(ctx context.Context, text string, opts delivery.Options) delivery.Result
}

// TurnRequest is one inbound user message.
type TurnRequest struct {
	Channel  string
	Text     string
	Metadata map[string]interface{}

	// Handle lets confirmation prompts be edited later.
	Handle approval.TransportHandle

	// SkipDelivery returns the reply to the caller instead of sending
	// it through the delivery engine. Used by webhook transports that
	// answer synchronously.
	SkipDelivery bool
}

// Confirmation is one pending approve/deny proposal produced by a turn.
type Confirmation struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// TurnResult is what a completed turn produced.
type TurnResult struct {
	Reply              string
	Confirmations      []Confirmation
	AssistantMessageID string
	Agent              string
	Delivery           *delivery.Result
}

// Pipeline wires the turn steps together.
type Pipeline struct {
	cfg config.Config

	messages      *services.MessageService
	conversations *services.ConversationService
	sessions      *services.AgentSessionService
	memories      MemoryWriter
	approvals     *approval.Store
	deliverer     Deliverer
	model         Invoker
	classifier    Classifier
	assembler     *prompt.Assembler
	sources       SourceFactory
	heartbeat     *dispatch.Heartbeat
	idle          *dispatch.IdleTimers
	pending       *delivery.PendingResponses
	queue         Enqueuer
	transports    *transport.Registry
	playbooks     PlaybookRunner

	logger *slog.Logger
}

// SourceFactory builds the context fetchers for one turn.
type SourceFactory func(in prompt.Input) prompt.Sources

// PlaybookRunner handles invisible ELLIE:: trailer commands. Optional.
type PlaybookRunner func(ctx context.Context, cmd extract.PlaybookCommand, channel string)

// Deps bundles the pipeline's collaborators.
type Deps struct {
	Messages      *services.MessageService
	Conversations *services.ConversationService
	Sessions      *services.AgentSessionService
	Memories      MemoryWriter
	Approvals     *approval.Store
	Deliverer     Deliverer
	Model         Invoker
	Classifier    Classifier
	Assembler     *prompt.Assembler
	Sources       SourceFactory
	Heartbeat     *dispatch.Heartbeat
	Idle          *dispatch.IdleTimers
	Pending       *delivery.PendingResponses
	Queue         Enqueuer
	Transports    *transport.Registry
	Playbooks     PlaybookRunner
}

// New creates the pipeline.
func New(cfg config.Config, deps Deps) *Pipeline {
	return &Pipeline{
		cfg:           cfg,
		messages:      deps.Messages,
		conversations: deps.Conversations,
		sessions:      deps.Sessions,
		memories:      deps.Memories,
		approvals:     deps.Approvals,
		deliverer:     deps.Deliverer,
		model:         deps.Model,
		classifier:    deps.Classifier,
		assembler:     deps.Assembler,
		sources:       deps.Sources,
		heartbeat:     deps.Heartbeat,
		idle:          deps.Idle,
		pending:       deps.Pending,
		queue:         deps.Queue,
		transports:    deps.Transports,
		playbooks:     deps.Playbooks,
		logger:        slog.Default().With("component", "pipeline"),
	}
}

// HandleTurn runs one full user turn. It never returns an error for
// model-side failures: those become user-facing reply text. An error
// here means the turn could not even be recorded.
func (p *Pipeline) HandleTurn(ctx context.Context, req TurnRequest) (*TurnResult, error) {
	if p.pending != nil {
		p.pending.Acknowledge(req.Channel)
	}

	conv, err := p.conversations.GetOrCreateActive(ctx, req.Channel)
	if err != nil {
		return nil, err
	}

	userMsg, err := p.messages.SaveUser(ctx, req.Channel, req.Text, req.Metadata)
	if err != nil {
		return nil, err
	}
	if err := p.messages.AssignConversation(ctx, []string{userMsg.ID}, conv.ID); err != nil {
		p.logger.Warn("Failed to assign conversation to user message", "error", err)
	}

	agent := p.route(ctx, req.Text)
	if _, err := p.sessions.EnsureActive(ctx, req.Channel, agent); err != nil {
		p.logger.Warn("Failed to ensure agent session", "agent", agent, "error", err)
	}

	in := prompt.Input{
		Channel:      req.Channel,
		Agent:        agent,
		UserMessage:  req.Text,
		AllowedTools: p.cfg.Model.AllowedTools,
	}
	assembled := p.assembler.Assemble(ctx, in, p.sources(in))

	res := p.invokeWithHeartbeat(ctx, req.Channel, assembled)

	result := &TurnResult{Agent: agent}
	if res.Outcome == gateway.OutcomeSuccess {
		parsed := extract.Parse(res.Text)
		result.Reply = parsed.CleanedText
		result.Confirmations = p.postProcess(ctx, req, agent, parsed)
	} else {
		// Failure text from the gateway is already user-presentable.
		result.Reply = res.Text
	}

	assistantMsg, err := p.messages.SaveAssistant(ctx, req.Channel, result.Reply, map[string]interface{}{
		"agent":   agent,
		"outcome": string(res.Outcome),
	})
	if err != nil {
		p.logger.Error("Failed to persist assistant message", "error", err)
	} else {
		result.AssistantMessageID = assistantMsg.ID
		if err := p.messages.AssignConversation(ctx, []string{assistantMsg.ID}, conv.ID); err != nil {
			p.logger.Warn("Failed to assign conversation to reply", "error", err)
		}
	}

	if !req.SkipDelivery {
		dr := p.Deliver(ctx, req.Channel, result)
		result.Delivery = &dr
	}

	if p.idle != nil {
		p.idle.Touch(req.Channel)
	}
	return result, nil
}

// Deliver sends a turn result's reply and confirmation prompts.
// Exposed separately so the webhook race coordinator can deliver a
// late result through the fallback path.
func (p *Pipeline) Deliver(ctx context.Context, channel string, result *TurnResult) delivery.Result {
	dr := p.deliverer.Deliver(ctx, result.Reply, delivery.Options{
		Channel:   channel,
		Fallback:  true,
		MessageID: result.AssistantMessageID,
	})

	for _, c := range result.Confirmations {
		p.deliverConfirmation(ctx, channel, c)
	}
	return dr
}

func (p *Pipeline) deliverConfirmation(ctx context.Context, channel string, c Confirmation) {
	tr, err := p.transports.Get(channel)
	if err == nil {
		if cs, ok := tr.(transport.ConfirmationSender); ok {
			externalID, err := cs.SendConfirmation(ctx, c.ID, c.Description)
			if err == nil {
				p.rememberHandle(c.ID, channel, externalID)
				return
			}
			p.logger.Warn("Confirmation card failed, falling back to text",
				"action_id", c.ID, "error", err)
		}
	}

	text := fmt.Sprintf("Approve? %s\nReply yes/no with id %s", c.Description, c.ID)
	p.deliverer.Deliver(ctx, text, delivery.Options{
		Channel:             channel,
		SkipPendingResponse: true,
	})
}

// rememberHandle updates the stored action with the prompting
// message's external id so expiry can clean the prompt up.
func (p *Pipeline) rememberHandle(actionID, channel, externalID string) {
	action, ok := p.approvals.Get(actionID)
	if !ok {
		return
	}
	action.Handle = approval.TransportHandle{Channel: channel, ExternalID: externalID}
	p.approvals.Put(action)
}

// route classifies the message onto an agent, falling back to the
// default on any classifier trouble.
func (p *Pipeline) route(ctx context.Context, text string) string {
	agent, err := p.classifier.Classify(ctx, text)
	if err != nil || agent == "" {
		if err != nil {
			p.logger.Warn("Classifier unavailable, using default agent", "error", err)
		}
		return p.cfg.Agents.Default
	}
	for _, known := range p.cfg.Agents.Known {
		if agent == known {
			return agent
		}
	}
	return p.cfg.Agents.Default
}

// invokeWithHeartbeat wraps the model call in the typing keepalive.
// The stop is guaranteed even if the invocation panics.
func (p *Pipeline) invokeWithHeartbeat(ctx context.Context, channel, assembled string) *gateway.Result {
	if p.heartbeat != nil {
		stop := p.heartbeat.Keep(ctx, channel)
		defer stop()
	}

	res, err := p.model.Invoke(ctx, assembled, gateway.Options{Resume: true})
	if err != nil {
		p.logger.Error("Model invocation failed to start", "error", err)
		return &gateway.Result{
			Text:    "I ran into an error and couldn't process that. Please try again.",
			Outcome: gateway.OutcomeFailed,
		}
	}
	return res
}

// postProcess persists every extracted intent and registers pending
// confirmations. Individual failures are logged, never surfaced: the
// reply itself already succeeded.
func (p *Pipeline) postProcess(ctx context.Context, req TurnRequest, agent string, parsed extract.Result) []Confirmation {
	for _, m := range parsed.Memories {
		_, err := p.memories.InsertWithDedup(ctx, memory.InsertParams{
			Type:        "fact",
			Content:     m.Content,
			SourceAgent: agent,
			Visibility:  string(m.Visibility),
		})
		if err != nil {
			p.logger.Warn("Failed to store memory intent", "error", err)
		}
	}

	for _, g := range parsed.Goals {
		res, err := p.memories.InsertWithDedup(ctx, memory.InsertParams{
			Type:        "goal",
			Content:     g.Content,
			SourceAgent: agent,
			Deadline:    g.Deadline,
		})
		if err != nil {
			p.logger.Warn("Failed to store goal", "error", err)
			continue
		}
		if res.Action == memory.ActionInserted && p.queue != nil {
			payload := map[string]interface{}{
				"name":         g.Content,
				"external_ref": res.ID,
			}
			if g.Deadline != nil {
				payload["target_date"] = g.Deadline.Format("2006-01-02")
			}
			p.queue.Enqueue(ctx, syncqueueitem.ActionCreateIssue, "", payload)
		}
	}

	for _, done := range parsed.Completions {
		goal, err := p.memories.CompleteGoal(ctx, done, agent)
		if err != nil {
			p.logger.Warn("Failed to complete goal", "query", done, "error", err)
			continue
		}
		if goal == nil {
			p.logger.Info("Completion matched no active goal", "query", done)
			continue
		}
		if p.queue != nil {
			p.queue.Enqueue(ctx, syncqueueitem.ActionStateChange, "", map[string]interface{}{
				"target_ref": goal.ID,
				"state":      "completed",
			})
		}
	}

	for _, obs := range parsed.Observations {
		_, err := p.memories.InsertWithDedup(ctx, memory.InsertParams{
			Type:        "fact",
			Content:     obs.Content,
			SourceAgent: agent,
			Metadata: map[string]interface{}{
				"observation_type": obs.Type,
				"confidence":       obs.Confidence,
			},
		})
		if err != nil {
			p.logger.Warn("Failed to store observation", "error", err)
		}
	}

	var confirmations []Confirmation
	for _, desc := range parsed.Confirmations {
		action := approval.PendingAction{
			ID:          uuid.New().String(),
			Description: desc,
			Agent:       agent,
			Channel:     req.Channel,
			Handle:      req.Handle,
			CreatedAt:   time.Now(),
		}
		p.approvals.Put(action)
		confirmations = append(confirmations, Confirmation{ID: action.ID, Description: desc})
	}

	for _, cmd := range parsed.Playbooks {
		if p.playbooks != nil {
			p.playbooks(ctx, cmd, req.Channel)
		} else {
			p.logger.Info("Playbook command ignored", "command", cmd.Name)
		}
	}

	return confirmations
}
