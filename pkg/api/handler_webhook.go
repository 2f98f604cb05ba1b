package api

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/elliebot/relay/pkg/dispatch"
	"github.com/elliebot/relay/pkg/events"
	"github.com/elliebot/relay/pkg/pipeline"
	"github.com/elliebot/relay/pkg/race"
	"github.com/elliebot/relay/pkg/slackchat"
	"github.com/elliebot/relay/pkg/transport"
	"github.com/elliebot/relay/pkg/voice"
)

// maxWebhookBody bounds inbound webhook payloads. Slack events are a few
// KB; anything near the limit is garbage or abuse.
const maxWebhookBody = 1 << 20

// chatWebhookHandler handles POST /webhook/chat: enterprise chat events
// and approval card interactivity, both signed with the same secret.
//
// Message events race the pipeline against the webhook deadline. The
// winner writes the synchronous body exactly once; a late result is
// delivered through the delivery engine with fallback enabled.
func (s *Server) chatWebhookHandler(c *echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read request body")
	}

	secret := s.cfg.Channels.Slack.SigningSecret
	if secret == "" {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "enterprise chat webhook is not configured")
	}
	if err := slackchat.VerifySignature(c.Request().Header, body, secret); err != nil {
		s.logger.Warn("Rejected webhook with bad signature", "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "signature verification failed")
	}

	// Interactivity posts arrive form-encoded with the callback JSON in
	// a payload field; event callbacks are plain JSON.
	contentType := c.Request().Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") {
		return s.handleChatDecision(c, body)
	}
	return s.handleChatEvent(c, body)
}

func (s *Server) handleChatDecision(c *echo.Context, body []byte) error {
	// Signature verification consumed the raw body, so the form is
	// parsed from the same bytes rather than the drained request.
	form, err := url.ParseQuery(string(body))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form payload")
	}

	decision, ok, err := slackchat.ParseDecision([]byte(form.Get("payload")))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed interaction payload")
	}
	if !ok {
		// Not an approval interaction; acknowledge and move on.
		return c.NoContent(http.StatusOK)
	}

	s.ResolveDecision(c.Request().Context(), transport.ChannelSlack, decision.ActionID, decision.Approved)
	return c.NoContent(http.StatusOK)
}

// ResolveDecision answers a pending action and queues the follow-up turn
// that tells the model the verdict. Shared by the webhook interactivity
// path and the chat-bot callback poller.
func (s *Server) ResolveDecision(ctx context.Context, channel, actionID string, approved bool) {
	res, ok := s.pipeline.ResolveApproval(ctx, actionID, approved)
	if !ok {
		return
	}

	if s.publisher != nil {
		if err := s.publisher.ApprovalResolved(ctx, events.ApprovalResolvedPayload{
			ApprovalID: actionID,
			Channel:    channel,
			Approved:   approved,
		}); err != nil {
			s.logger.Warn("Failed to publish approval resolution", "error", err)
		}
	}

	followUp := res.FollowUp
	s.dispatcher.Submit(&dispatch.Item{
		Channel: channel,
		Preview: followUp,
		Run: func(runCtx context.Context) {
			if _, err := s.pipeline.HandleTurn(runCtx, pipeline.TurnRequest{
				Channel: channel,
				Text:    followUp,
			}); err != nil {
				s.logger.Error("Approval follow-up turn failed", "action_id", actionID, "error", err)
			}
		},
	})
}

func (s *Server) handleChatEvent(c *echo.Context, body []byte) error {
	inbound, err := slackchat.ParseInbound(body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed events payload")
	}

	switch inbound.Kind {
	case "challenge":
		return c.String(http.StatusOK, inbound.Challenge)

	case "message":
		if inbound.FromBot || inbound.Text == "" {
			return c.NoContent(http.StatusOK)
		}
		return s.raceTurn(c, transport.ChannelSlack, inbound.Text)

	default:
		return c.NoContent(http.StatusOK)
	}
}

// raceTurn runs one webhook-origin turn through the race coordinator and
// writes the synchronous reply. The turn itself goes through the
// dispatcher so webhook traffic obeys the same one-at-a-time model gate
// as every other channel.
func (s *Server) raceTurn(c *echo.Context, channel, text string) error {
	var handlerErr error

	turn := func(turnCtx context.Context) (*pipeline.TurnResult, error) {
		return s.dispatchTurn(turnCtx, channel, text)
	}

	respond := func(r race.Response) {
		handlerErr = c.JSON(http.StatusOK, WebhookReply{
			Text:         r.Text,
			Acknowledged: r.Acknowledged,
		})
	}

	late := func(lateCtx context.Context, result *pipeline.TurnResult, err error) {
		if err != nil {
			s.logger.Error("Late webhook turn failed", "channel", channel, "error", err)
			return
		}
		s.pipeline.Deliver(lateCtx, channel, result)
	}

	s.race.Run(c.Request().Context(), turn, respond, late)
	return handlerErr
}

// dispatchTurn submits a turn to the dispatcher and waits for it.
// Delivery is skipped so the reply can go back on the live connection;
// the race coordinator reroutes it through the delivery engine only
// when the connection already got the acknowledgement.
func (s *Server) dispatchTurn(ctx context.Context, channel, text string) (*pipeline.TurnResult, error) {
	type outcome struct {
		result *pipeline.TurnResult
		err    error
	}
	done := make(chan outcome, 1)

	s.dispatcher.Submit(&dispatch.Item{
		Channel: channel,
		Preview: text,
		Run: func(context.Context) {
			result, err := s.pipeline.HandleTurn(ctx, pipeline.TurnRequest{
				Channel:      channel,
				Text:         text,
				SkipDelivery: true,
			})
			done <- outcome{result, err}
		},
	})

	// A stopped dispatcher drops the submission without running it, so
	// the wait must also observe cancellation.
	select {
	case out := <-done:
		return out.result, out.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// assistantWebhookHandler handles POST /webhook/assistant: one-shot
// voice-assistant intents that need a spoken answer within the
// assistant platform's patience window.
func (s *Server) assistantWebhookHandler(c *echo.Context) error {
	var req voice.AssistantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	text := req.TurnText()
	if text == "" {
		return c.JSON(http.StatusOK, voice.AssistantResponse{
			Speech:     "I didn't catch that.",
			EndSession: true,
		})
	}

	var handlerErr error
	respond := func(r race.Response) {
		handlerErr = c.JSON(http.StatusOK, voice.AssistantResponse{
			Speech:     r.Text,
			EndSession: true,
		})
	}

	late := func(lateCtx context.Context, result *pipeline.TurnResult, err error) {
		if err != nil {
			s.logger.Error("Late assistant turn failed", "error", err)
			return
		}
		// The assistant session is gone; the answer goes to the fallback
		// chat channel instead.
		s.pipeline.Deliver(lateCtx, transport.ChannelAssistant, result)
	}

	turn := func(turnCtx context.Context) (*pipeline.TurnResult, error) {
		return s.dispatchTurn(turnCtx, transport.ChannelAssistant, text)
	}

	s.race.Run(c.Request().Context(), turn, respond, late)
	return handlerErr
}
