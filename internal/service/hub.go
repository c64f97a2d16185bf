package service

import (
	"log"
	"sync"

	"chessd/internal/ws"
)

// Writer is the connection surface the hub writes to. *websocket.Conn
// satisfies it; tests substitute an in-memory recorder.
type Writer interface {
	WriteJSON(v interface{}) error
}

// hub tracks which connections subscribe to which game.
type hub struct {
	mu   sync.RWMutex
	subs map[string]map[Writer]bool
}

func newHub() *hub {
	return &hub{
		subs: make(map[string]map[Writer]bool),
	}
}

func (h *hub) subscribe(gameID string, w Writer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subs[gameID] == nil {
		h.subs[gameID] = make(map[Writer]bool)
	}
	h.subs[gameID][w] = true
}

func (h *hub) unsubscribe(gameID string, w Writer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.subs[gameID], w)
	if len(h.subs[gameID]) == 0 {
		delete(h.subs, gameID)
	}
}

// broadcast sends msg to every subscriber of the game. Writes happen on a
// snapshot of the subscriber set taken under the lock, so a slow
// connection never blocks subscription changes.
func (h *hub) broadcast(gameID string, msg ws.Message) {
	h.mu.RLock()
	writers := make([]Writer, 0, len(h.subs[gameID]))
	for w := range h.subs[gameID] {
		writers = append(writers, w)
	}
	h.mu.RUnlock()

	for _, w := range writers {
		if err := w.WriteJSON(msg); err != nil {
			log.Printf("ws: broadcast to subscriber failed: %v", err)
		}
	}
}

func (h *hub) subscriberCount(gameID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs[gameID])
}
