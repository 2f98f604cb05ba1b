package api

import (
	"net/http"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"
)

// wsHandler upgrades browser chat connections and delegates to the
// ConnectionManager, which owns subscriptions, catchup, and inbound
// message routing for the lifetime of the socket.
func (s *Server) wsHandler(c *echo.Context) error {
	if s.connManager == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "WebSocket not available")
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		// The relay fronts a single user behind a private reverse proxy;
		// origin checks happen there.
		InsecureSkipVerify: true,
	})
	if err != nil {
		return err
	}

	// HandleConnection blocks until the WebSocket closes.
	s.connManager.HandleConnection(c.Request().Context(), conn)
	return nil
}

// voiceStreamHandler upgrades the telephony media-stream websocket.
// One call at a time; a newer stream's start frame takes over the slot.
func (s *Server) voiceStreamHandler(c *echo.Context) error {
	if s.voiceHandler == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "voice is not enabled")
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		return err
	}

	s.voiceHandler.HandleStream(c.Request().Context(), conn)
	return nil
}
