// Ellie relay server: bridges chat transports (Telegram, browser chat,
// enterprise chat, telephony) to the claude subprocess, persists
// conversations, and runs the consolidation and memory machinery.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/elliebot/relay/ent/executionplan"
	"github.com/elliebot/relay/pkg/api"
	"github.com/elliebot/relay/pkg/approval"
	"github.com/elliebot/relay/pkg/chatbot"
	"github.com/elliebot/relay/pkg/cleanup"
	"github.com/elliebot/relay/pkg/config"
	"github.com/elliebot/relay/pkg/consolidate"
	"github.com/elliebot/relay/pkg/database"
	"github.com/elliebot/relay/pkg/delivery"
	"github.com/elliebot/relay/pkg/dispatch"
	"github.com/elliebot/relay/pkg/events"
	"github.com/elliebot/relay/pkg/extract"
	"github.com/elliebot/relay/pkg/gateway"
	"github.com/elliebot/relay/pkg/lockfile"
	"github.com/elliebot/relay/pkg/memory"
	"github.com/elliebot/relay/pkg/pipeline"
	"github.com/elliebot/relay/pkg/prompt"
	"github.com/elliebot/relay/pkg/search"
	"github.com/elliebot/relay/pkg/services"
	"github.com/elliebot/relay/pkg/slackchat"
	"github.com/elliebot/relay/pkg/syncqueue"
	"github.com/elliebot/relay/pkg/tracker"
	"github.com/elliebot/relay/pkg/transport"
	"github.com/elliebot/relay/pkg/voice"
	"github.com/elliebot/relay/pkg/webchat"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(*configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Starting relay", "http_port", cfg.Server.Port, "config_dir", *configDir)

	// 2. Single-instance lock. Two relays polling the same bot token
	// steal each other's updates, so contention is fatal.
	lock, err := lockfile.Acquire(cfg.Relay.LockFile)
	if err != nil {
		slog.Error("Failed to acquire instance lock", "error", err)
		os.Exit(1)
	}
	defer func() { _ = lock.Release() }()

	loc, err := time.LoadLocation(cfg.Relay.Timezone)
	if err != nil {
		slog.Warn("Unknown timezone, using UTC", "timezone", cfg.Relay.Timezone)
		loc = time.UTC
	}

	// 3. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 4. Domain services
	messageService := services.NewMessageService(dbClient.Client)
	conversationService := services.NewConversationService(dbClient.Client)
	sessionService := services.NewAgentSessionService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	planService := services.NewExecutionPlanService(dbClient.Client)

	var searchClient search.Client = search.Disabled{}
	if cfg.Search.Enabled {
		searchClient = search.NewPostgresClient(dbClient.DB())
	}
	memoryStore := memory.NewStore(dbClient.Client, searchClient)
	slog.Info("Services initialized", "search_enabled", cfg.Search.Enabled)

	// 5. Events plane: publisher, websocket fan-out, NOTIFY listener
	eventPublisher := events.NewPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, 10*time.Second)
	notifyListener := events.NewListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	connManager.SetListener(notifyListener)

	// 6. Transports
	registry := transport.NewRegistry()
	telegramTransport := chatbot.NewTransport(cfg.Channels.Telegram)
	if telegramTransport != nil {
		registry.Register(telegramTransport)
	}
	if slackTransport := slackchat.NewTransport(cfg.Channels.Slack); slackTransport != nil {
		registry.Register(slackTransport)
	}
	registry.Register(webchat.NewTransport(eventPublisher))
	slog.Info("Transports registered", "channels", registry.Channels())

	// 7. Model gateway and dispatcher
	recoveryLocks := gateway.NewRecoveryLocks()
	modelGateway := gateway.New(cfg.Model, recoveryLocks)

	dispatcher := dispatch.NewDispatcher()
	dispatcher.Start(ctx)

	// 8. Delivery: pending-response nudging, retry engine, heartbeat
	pending := delivery.NewPendingResponses(cfg.Relay, func(channel string, count int) {
		tr, err := registry.Get(channel)
		if err != nil {
			return
		}
		nudgeCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		if _, err := tr.Send(nudgeCtx, "Just checking in, did you see my last message?"); err != nil {
			slog.Warn("Nudge send failed", "channel", channel, "error", err)
		}
	})
	pending.Start(ctx)

	engine := delivery.NewEngine(cfg.Delivery, registry, messageService, pending)
	heartbeat := dispatch.NewHeartbeat(registry, cfg.Relay.TypingInterval)

	// 9. Approval store; expired prompts lose their buttons
	approvals := approval.NewStore(cfg.Relay.ApprovalTTL, func(action approval.PendingAction) {
		h := action.Handle
		if h.Channel == "" || h.ExternalID == "" {
			return
		}
		tr, err := registry.Get(h.Channel)
		if err != nil {
			return
		}
		editCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		if err := tr.Edit(editCtx, h.ExternalID, "⌛ Expired: "+action.Description); err != nil {
			slog.Warn("Failed to edit expired prompt", "action_id", action.ID, "error", err)
		}
	})
	approvals.Start(ctx)

	// 10. Tracker sync queue
	trackerClient := tracker.New(cfg.Tracker)
	syncWorker := syncqueue.NewWorker(dbClient.Client, trackerClient, recoveryLocks, cfg.SyncQueue)
	syncWorker.Start(ctx)

	// 11. Consolidation machinery. The consolidator variable is bound
	// late because the idle timers that trigger it are pipeline deps.
	var consolidator *consolidate.Consolidator
	runConsolidation := func(runCtx context.Context, channel string) {
		if consolidator == nil {
			return
		}
		report, err := consolidator.Run(runCtx, channel)
		if err != nil {
			slog.Error("Consolidation run failed", "channel", channel, "error", err)
			return
		}
		if report.Blocks == 0 {
			return
		}
		if err := eventPublisher.ConsolidationCompleted(runCtx, events.ConsolidationPayload{
			Channel:          channel,
			Blocks:           report.Blocks,
			MemoriesInserted: report.MemoriesInserted,
		}); err != nil {
			slog.Warn("Failed to publish consolidation event", "error", err)
		}
	}

	idle := dispatch.NewIdleTimers(cfg.Relay.IdleTimeout, func(channel string) {
		go runConsolidation(context.WithoutCancel(ctx), channel)
	})

	// 12. Turn pipeline with multi-step orchestration for playbooks
	var orchestrator *pipeline.Orchestrator
	playbooks := func(pbCtx context.Context, cmd extract.PlaybookCommand, channel string) {
		mode, steps, err := parsePlan(cmd)
		if err != nil {
			slog.Warn("Ignoring malformed playbook command", "command", cmd.Name, "error", err)
			return
		}
		go func() {
			if err := orchestrator.Run(context.WithoutCancel(pbCtx), channel, mode, steps); err != nil {
				slog.Error("Multi-step run failed", "channel", channel, "error", err)
			}
		}()
	}

	pipe := pipeline.New(*cfg, pipeline.Deps{
		Messages:      messageService,
		Conversations: conversationService,
		Sessions:      sessionService,
		Memories:      memoryStore,
		Approvals:     approvals,
		Deliverer:     engine,
		Model:         modelGateway,
		Classifier:    pipeline.NewKeywordClassifier(cfg.Agents),
		Assembler:     prompt.NewAssembler(cfg.Search.FetchTimeout),
		Sources: pipeline.DefaultSources(pipeline.SourceDeps{
			Messages: messageService,
			Memories: memoryStore,
			Search:   searchClient,
			Status:   dispatcher.Status,
			Timezone: loc,
		}),
		Heartbeat:  heartbeat,
		Idle:       idle,
		Pending:    pending,
		Queue:      syncWorker,
		Transports: registry,
		Playbooks:  playbooks,
	})
	orchestrator = pipeline.NewOrchestrator(pipe, planService)

	consolidator = consolidate.New(
		messageService, conversationService, sessionService, memoryStore, modelGateway,
		func() {
			// Summaries change what context the next prompt should carry;
			// a resumed model session would keep stale history.
			if err := modelGateway.Sessions().Clear(); err != nil {
				slog.Warn("Failed to clear model session after consolidation", "error", err)
			}
		},
	)
	consolidator.Start(ctx, cfg.Relay.ConsolidationInterval)

	// submitTurn queues a full turn (with delivery) behind the model gate.
	submitTurn := func(channel, text string, metadata map[string]interface{}) {
		dispatcher.Submit(&dispatch.Item{
			Channel: channel,
			Preview: text,
			OnQueued: func(position int) {
				tr, err := registry.Get(channel)
				if err != nil {
					return
				}
				ackCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
				defer cancel()
				_, _ = tr.Send(ackCtx, fmt.Sprintf("I'm on it. Position %d in queue.", position))
				publishQueueStatus(ctx, eventPublisher, dispatcher)
			},
			Run: func(runCtx context.Context) {
				if _, err := pipe.HandleTurn(runCtx, pipeline.TurnRequest{
					Channel:  channel,
					Text:     text,
					Metadata: metadata,
				}); err != nil {
					slog.Error("Turn failed", "channel", channel, "error", err)
				}
				publishQueueStatus(ctx, eventPublisher, dispatcher)
			},
		})
	}

	// 13. Voice: telephony stream handler behind the speech service
	var voiceHandler *voice.Handler
	if speech := voice.NewSpeechClient(cfg.Channels.Voice); speech != nil {
		voiceTurn := func(turnCtx context.Context, text string) (string, error) {
			return runGatedTurn(turnCtx, dispatcher, pipe, transport.ChannelVoice, text)
		}
		voiceHandler = voice.NewHandler(speech, speech, voiceTurn, func(endCtx context.Context) {
			runConsolidation(endCtx, transport.ChannelVoice)
		})
		registry.Register(voice.NewTransport(voiceHandler))
		slog.Info("Voice enabled")
	}

	// 14. Browser chat inbound over the websocket
	connManager.SetMessageHandler(func(msgCtx context.Context, text string) {
		bg := context.WithoutCancel(msgCtx)
		if err := eventPublisher.MessageCreated(bg, events.MessageCreatedPayload{
			MessageID: uuid.New().String(),
			Channel:   transport.ChannelWeb,
			Role:      "user",
			Content:   text,
		}); err != nil {
			slog.Warn("Failed to publish web user message", "error", err)
		}
		submitTurn(transport.ChannelWeb, text, nil)
	})

	// 15. HTTP server
	apiServer := api.NewServer(*cfg, dbClient, pipe, dispatcher, conversationService, connManager)
	apiServer.SetConsolidator(consolidator)
	apiServer.SetEventPublisher(eventPublisher)
	apiServer.SetTransports(registry)
	if voiceHandler != nil {
		apiServer.SetVoiceHandler(voiceHandler)
	}

	// 16. Chat-bot long polling
	var poller *chatbot.Poller
	if telegramTransport != nil {
		poller = chatbot.NewPoller(telegramTransport.Client(), func(pollCtx context.Context, in chatbot.Inbound) {
			handleBotUpdate(pollCtx, in, botDeps{
				client:     telegramTransport.Client(),
				speech:     voice.NewSpeechClient(cfg.Channels.Voice),
				apiServer:  apiServer,
				submitTurn: submitTurn,
			})
		})
		poller.Start(ctx)
	}

	// 17. Retention cleanup
	cleanupService := cleanup.NewService(cfg.Retention, eventService, messageService, sessionService, syncWorker)
	cleanupService.Start(ctx)

	// 18. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Server.Port
		slog.Info("HTTP server listening", "addr", addr)
		if err := apiServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Relay started successfully", "channels", registry.Channels())

	// 19. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 20. Graceful shutdown: stop intake first, then drain the turn in
	// flight, then the background services, then the HTTP server.
	if poller != nil {
		poller.Stop()
	}

	drainCtx, drainCancel := context.WithTimeout(ctx, 30*time.Second)
	defer drainCancel()
	dispatcherDone := make(chan struct{})
	go func() {
		dispatcher.Stop()
		close(dispatcherDone)
	}()
	select {
	case <-dispatcherDone:
		slog.Info("Dispatcher stopped gracefully")
	case <-drainCtx.Done():
		slog.Warn("Dispatcher drain timeout exceeded")
	}

	consolidator.Stop()
	cleanupService.Stop()
	syncWorker.Stop()
	approvals.Stop()
	pending.Stop()
	idle.Stop()

	listenerCtx, listenerCancel := context.WithTimeout(ctx, 5*time.Second)
	defer listenerCancel()
	if err := notifyListener.Stop(listenerCtx); err != nil {
		slog.Error("NOTIFY listener shutdown error", "error", err)
	}

	httpCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := apiServer.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// runGatedTurn pushes a turn through the dispatcher and waits for it,
// skipping delivery so the caller can use the reply inline.
func runGatedTurn(ctx context.Context, d *dispatch.Dispatcher, pipe *pipeline.Pipeline, channel, text string) (string, error) {
	type outcome struct {
		reply string
		err   error
	}
	done := make(chan outcome, 1)

	d.Submit(&dispatch.Item{
		Channel: channel,
		Preview: text,
		Run: func(context.Context) {
			result, err := pipe.HandleTurn(ctx, pipeline.TurnRequest{
				Channel:      channel,
				Text:         text,
				SkipDelivery: true,
			})
			if err != nil {
				done <- outcome{err: err}
				return
			}
			done <- outcome{reply: result.Reply}
		},
	})

	select {
	case out := <-done:
		return out.reply, out.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// publishQueueStatus mirrors the dispatcher snapshot to browser clients.
func publishQueueStatus(ctx context.Context, pub *events.Publisher, d *dispatch.Dispatcher) {
	snap := d.Status()
	payload := events.QueueStatusPayload{
		Busy:        snap.Busy,
		QueueLength: snap.QueueLength,
	}
	if snap.Current != nil {
		payload.Current = snap.Current.Channel
	}
	if err := pub.QueueStatus(ctx, payload); err != nil {
		slog.Warn("Failed to publish queue status", "error", err)
	}
}

// parsePlan turns a PLAN playbook command into orchestrator input.
// Args carry JSON: {"mode":"pipeline","steps":[{"agent":..,"instruction":..}]}.
func parsePlan(cmd extract.PlaybookCommand) (executionplan.Mode, []pipeline.StepSpec, error) {
	if cmd.Name != "PLAN" {
		return "", nil, fmt.Errorf("unknown playbook command %q", cmd.Name)
	}

	var plan struct {
		Mode  string              `json:"mode"`
		Steps []pipeline.StepSpec `json:"steps"`
	}
	if err := json.Unmarshal([]byte(cmd.Args), &plan); err != nil {
		return "", nil, fmt.Errorf("malformed plan args: %w", err)
	}
	if len(plan.Steps) == 0 {
		return "", nil, fmt.Errorf("plan has no steps")
	}

	switch plan.Mode {
	case "pipeline", "":
		return executionplan.ModePipeline, plan.Steps, nil
	case "fanout":
		return executionplan.ModeFanout, plan.Steps, nil
	case "critic_loop":
		return executionplan.ModeCriticLoop, plan.Steps, nil
	default:
		return "", nil, fmt.Errorf("unknown plan mode %q", plan.Mode)
	}
}

// botDeps bundles what the chat-bot update handler needs.
type botDeps struct {
	client     *chatbot.Client
	speech     *voice.SpeechClient
	apiServer  *api.Server
	submitTurn func(channel, text string, metadata map[string]interface{})
}

// handleBotUpdate routes one normalized chat-bot update.
func handleBotUpdate(ctx context.Context, in chatbot.Inbound, deps botDeps) {
	switch in.Kind {
	case chatbot.KindText:
		deps.submitTurn(transport.ChannelTelegram, in.Text, nil)

	case chatbot.KindVoice:
		if deps.speech == nil {
			_, _ = deps.client.SendMessage(ctx, "I can't listen to voice notes right now.")
			return
		}
		audio, _, err := deps.client.DownloadFile(ctx, in.FileID)
		if err != nil {
			slog.Warn("Voice note download failed", "error", err)
			return
		}
		text, err := deps.speech.Transcribe(ctx, audio)
		if err != nil || text == "" {
			_, _ = deps.client.SendMessage(ctx, "Sorry, I couldn't make out that voice note.")
			return
		}
		deps.submitTurn(transport.ChannelTelegram, text, map[string]interface{}{
			"source": "voice_note",
		})

	case chatbot.KindPhoto, chatbot.KindDocument:
		text := in.Text
		if text == "" {
			text = fmt.Sprintf("[received file: %s]", in.FileName)
		}
		deps.submitTurn(transport.ChannelTelegram, text, map[string]interface{}{
			"file_id":   in.FileID,
			"file_name": in.FileName,
		})

	case chatbot.KindCallback:
		if err := deps.client.AnswerCallback(ctx, in.CallbackID, ""); err != nil {
			slog.Warn("Failed to answer callback", "error", err)
		}
		deps.apiServer.ResolveDecision(ctx, transport.ChannelTelegram, in.ActionID, in.Approved)
	}
}
