package http

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// Realtime handles GET /api/v1/realtime. It upgrades to a WebSocket and
// streams the events published for the authenticated user until either side
// closes. Clients only ever send control frames.
func (s *Server) Realtime(c echo.Context) error {
	actor := actorOf(c)
	if err := actor.Validate(); err != nil {
		return s.fail(c, err)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already answered the client.
		s.logger.WarnContext(c.Request().Context(), "websocket upgrade failed", "error", err)
		return nil
	}
	defer conn.Close()

	sub := s.hub.Subscribe(actor.ID().String())
	defer sub.Close()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-sub.C():
			if !ok {
				return nil
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return nil
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		case <-closed:
			if dropped := sub.Dropped(); dropped > 0 {
				s.logger.InfoContext(c.Request().Context(), "realtime client disconnected",
					"user_id", actor.ID().String(), "dropped", dropped)
			}
			return nil
		case <-c.Request().Context().Done():
			return nil
		}
	}
}
