// Package websocket serves typeahead word suggestions over a socket so
// a frontend can query as the user types without per-keystroke HTTP
// round trips.
package websocket

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Suggester matches pkg/similarity: empty results on degradation,
// never an error.
type Suggester interface {
	Suggest(ctx context.Context, query string, limit int) []string
}

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type suggestRequest struct {
	Query string `json:"q"`
	Limit int    `json:"limit"`
}

type suggestResponse struct {
	Query   string   `json:"q"`
	Matches []string `json:"matches"`
}

// ServeSuggest upgrades the connection and answers each incoming
// {"q":...,"limit":...} frame with the ranked suggestions for it.
// Unlike the HTTP endpoint there is no page to fall back to, so the
// loop simply closes on any read or write failure.
func ServeSuggest(suggester Suggester, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Warn("websocket upgrade failed", "err", err)
			return
		}
		defer conn.Close()

		conn.SetReadLimit(maxMessageSize)
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		for {
			var req suggestRequest
			if err := conn.ReadJSON(&req); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Warn("websocket read failed", "err", err)
				}
				return
			}
			conn.SetReadDeadline(time.Now().Add(pongWait))

			matches := []string{}
			if req.Query != "" {
				if got := suggester.Suggest(c.Request.Context(), req.Query, req.Limit); got != nil {
					matches = got
				}
			}

			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(suggestResponse{Query: req.Query, Matches: matches}); err != nil {
				log.Warn("websocket write failed", "err", err)
				return
			}
		}
	}
}
