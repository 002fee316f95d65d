// Package websocket pushes request status transitions to connected operator
// consoles, so partial provisioning failures are visible without polling.
package websocket

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/spikenet-labs/serverdesk/models"
)

// StatusEvent is one lifecycle transition of a request.
type StatusEvent struct {
	RequestID uint                 `json:"request_id"`
	Status    models.RequestStatus `json:"status"`
	IP        string               `json:"ip,omitempty"`
	Error     string               `json:"error,omitempty"`
}

// Feed fans status events out to every connected client.
type Feed struct {
	mu    sync.RWMutex
	conns map[*websocket.Conn]struct{}
}

func NewFeed() *Feed {
	return &Feed{conns: make(map[*websocket.Conn]struct{})}
}

func (f *Feed) Register(conn *websocket.Conn) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.conns[conn] = struct{}{}
}

func (f *Feed) Unregister(conn *websocket.Conn) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.conns, conn)
}

// Publish sends the event to all clients. Write failures drop the client;
// delivery is best-effort.
func (f *Feed) Publish(event StatusEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for conn := range f.conns {
		if err := conn.WriteJSON(event); err != nil {
			log.Printf("status feed write error: %v", err)
			conn.Close()
			delete(f.conns, conn)
		}
	}
}
