// Package api exposes the relay's HTTP surface: health and queue
// introspection, admin operations on conversations and consolidation,
// the browser chat websocket, the telephony media-stream websocket, and
// the inbound webhooks for enterprise chat and the voice assistant.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/elliebot/relay/pkg/config"
	"github.com/elliebot/relay/pkg/consolidate"
	"github.com/elliebot/relay/pkg/database"
	"github.com/elliebot/relay/pkg/dispatch"
	"github.com/elliebot/relay/pkg/events"
	"github.com/elliebot/relay/pkg/pipeline"
	"github.com/elliebot/relay/pkg/race"
	"github.com/elliebot/relay/pkg/services"
	"github.com/elliebot/relay/pkg/transport"
	"github.com/elliebot/relay/pkg/voice"
)

// Server is the relay's HTTP server.
type Server struct {
	cfg           config.Config
	dbClient      *database.Client
	pipeline      *pipeline.Pipeline
	dispatcher    *dispatch.Dispatcher
	conversations *services.ConversationService
	connManager   *events.ConnectionManager
	race          *race.Coordinator

	// Optional collaborators, wired with setters after construction.
	consolidator *consolidate.Consolidator
	publisher    *events.Publisher
	transports   *transport.Registry
	voiceHandler *voice.Handler

	echo       *echo.Echo
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates the HTTP server and registers its routes.
func NewServer(
	cfg config.Config,
	dbClient *database.Client,
	pipe *pipeline.Pipeline,
	dispatcher *dispatch.Dispatcher,
	conversations *services.ConversationService,
	connManager *events.ConnectionManager,
) *Server {
	s := &Server{
		cfg:           cfg,
		dbClient:      dbClient,
		pipeline:      pipe,
		dispatcher:    dispatcher,
		conversations: conversations,
		connManager:   connManager,
		race:          race.New(cfg.Server.WebhookDeadline),
		logger:        slog.Default().With("component", "api"),
	}

	e := echo.New()
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)
	e.GET("/queue-status", s.queueStatusHandler)

	e.POST("/api/consolidate", s.consolidateHandler)
	e.POST("/api/conversation/close", s.conversationCloseHandler)
	e.GET("/api/conversation/context", s.conversationContextHandler)

	e.GET("/ws", s.wsHandler)
	e.GET("/voice/stream", s.voiceStreamHandler)

	e.POST("/webhook/chat", s.chatWebhookHandler)
	e.POST("/webhook/assistant", s.assistantWebhookHandler)

	s.echo = e
	return s
}

// SetConsolidator wires in the consolidator for the admin trigger.
func (s *Server) SetConsolidator(c *consolidate.Consolidator) {
	s.consolidator = c
}

// SetEventPublisher wires in the event publisher so webhook handlers
// can broadcast approval resolutions to browser clients.
func (s *Server) SetEventPublisher(p *events.Publisher) {
	s.publisher = p
}

// SetTransports wires in the transport registry for health reporting
// and channel-wide consolidation.
func (s *Server) SetTransports(r *transport.Registry) {
	s.transports = r
}

// SetVoiceHandler wires in the telephony stream handler. The voice
// routes respond 503 when it is absent.
func (s *Server) SetVoiceHandler(h *voice.Handler) {
	s.voiceHandler = h
}

// Start listens on addr and serves until Shutdown. Blocks; returns
// http.ErrServerClosed after a clean shutdown.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
