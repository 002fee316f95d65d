package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"
	"github.com/spikenet-labs/serverdesk/websocket"
)

var upgrader = gorilla.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type StatusFeedHandler struct {
	feed *websocket.Feed
}

func NewStatusFeedHandler(feed *websocket.Feed) *StatusFeedHandler {
	return &StatusFeedHandler{feed: feed}
}

// GET /ws/requests
// Streams request status transitions to the operator console.
func (h *StatusFeedHandler) Stream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("Failed to upgrade websocket:", err)
		return
	}

	h.feed.Register(conn)
	defer func() {
		h.feed.Unregister(conn)
		conn.Close()
	}()

	// The feed only pushes; reads just detect the client going away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
