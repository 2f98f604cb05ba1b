package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

type consolidateRequest struct {
	// Channel limits the run to one chat channel. Empty runs every
	// channel with a registered transport.
	Channel string `json:"channel"`
}

// consolidateHandler handles POST /api/consolidate, the admin trigger
// for the same pass the idle and batch timers run.
func (s *Server) consolidateHandler(c *echo.Context) error {
	if s.consolidator == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "consolidation is not configured")
	}

	var req consolidateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	channels := []string{req.Channel}
	if req.Channel == "" {
		if s.transports == nil {
			return echo.NewHTTPError(http.StatusBadRequest, "channel is required")
		}
		channels = s.transports.Channels()
	}

	resp := ConsolidateResponse{Reports: make(map[string]ConsolidateReport, len(channels))}
	for _, ch := range channels {
		report, err := s.consolidator.Run(c.Request().Context(), ch)
		entry := ConsolidateReport{
			Blocks:           report.Blocks,
			BlocksFailed:     report.BlocksFailed,
			MessagesCovered:  report.MessagesCovered,
			MemoriesInserted: report.MemoriesInserted,
		}
		if err != nil {
			entry.Error = err.Error()
		}
		resp.Reports[ch] = entry
	}
	return c.JSON(http.StatusOK, resp)
}

type closeConversationRequest struct {
	ConversationID string `json:"conversation_id"`
	Channel        string `json:"channel"`
}

// conversationCloseHandler handles POST /api/conversation/close. Closing
// by id targets a specific conversation; closing by channel ends whatever
// conversation is currently active there.
func (s *Server) conversationCloseHandler(c *echo.Context) error {
	var req closeConversationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	switch {
	case req.ConversationID != "":
		if err := s.conversations.Close(c.Request().Context(), req.ConversationID); err != nil {
			return mapServiceError(err)
		}
		return c.JSON(http.StatusOK, CloseConversationResponse{
			ConversationID: req.ConversationID,
			Closed:         true,
		})

	case req.Channel != "":
		id, err := s.conversations.CloseActive(c.Request().Context(), req.Channel)
		if err != nil {
			return mapServiceError(err)
		}
		if id == "" {
			return echo.NewHTTPError(http.StatusNotFound, "no active conversation on channel")
		}
		return c.JSON(http.StatusOK, CloseConversationResponse{
			ConversationID: id,
			Closed:         true,
		})

	default:
		return echo.NewHTTPError(http.StatusBadRequest, "conversation_id or channel is required")
	}
}

// conversationContextHandler handles GET /api/conversation/context.
func (s *Server) conversationContextHandler(c *echo.Context) error {
	channel := c.QueryParam("channel")
	if channel == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "channel query parameter is required")
	}

	out, err := s.conversations.CurrentContext(c.Request().Context(), channel)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, out)
}
