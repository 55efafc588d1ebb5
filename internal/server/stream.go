package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mfeld/parity-pulse/internal/ticker"
)

// streamInterval is how often the ticker stream pushes a fresh frame.
const streamInterval = 3 * time.Second

// handleTickerStream upgrades to a websocket and pushes a re-jittered
// default feed on a fixed cadence until the client goes away.
func (s *Server) handleTickerStream(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer func() { _ = conn.Close() }()

	feed := ticker.DefaultFeed()
	if err := conn.WriteJSON(feed); err != nil {
		return
	}

	t := time.NewTicker(streamInterval)
	defer t.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case <-t.C:
			feed = ticker.Jitter(feed)
			if err := conn.WriteJSON(feed); err != nil {
				return
			}
		}
	}
}
