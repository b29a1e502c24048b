package websocket

import (
	"encoding/json"
	"sync"

	"github.com/dom/snowseeker/internal/favorites"
	"github.com/dom/snowseeker/internal/metrics"
	log "github.com/sirupsen/logrus"
)

// Hub fans favorite changes out to every connected client.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	stop       chan struct{}
	done       chan struct{} // closed when Run() exits
	stopped    bool
	snapshot   func() []string
	seq        int
	mu         sync.RWMutex
}

// NewHub creates a hub. snapshot supplies the current favorite ids sent to
// each client when it connects.
func NewHub(snapshot func() []string) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
		snapshot:   snapshot,
	}
}

func (h *Hub) Run() {
	defer close(h.done) // Signal that Run() has exited

	for {
		select {
		case <-h.stop:
			h.mu.Lock()
			h.stopped = true
			for client := range h.clients {
				client.Close()
			}
			h.clients = make(map[*Client]bool)
			h.mu.Unlock()
			metrics.WSClientCount.Set(0)
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mu.Unlock()
			metrics.WSClientCount.Set(float64(count))

			client.Send(h.stateSync(client))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Close()
			}
			count := len(h.clients)
			h.mu.Unlock()
			metrics.WSClientCount.Set(float64(count))

		case data := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				if !client.trySend(data) {
					// Slow consumer; drop it rather than block everyone else.
					log.Warnf("websocket: dropping client %s, send buffer full", client.ID())
					delete(h.clients, client)
					client.Close()
				}
			}
			count := len(h.clients)
			h.mu.Unlock()
			metrics.WSClientCount.Set(float64(count))
		}
	}
}

// Stop gracefully shuts down the hub and disconnects every client.
// It blocks until Run has returned.
func (h *Hub) Stop() {
	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		return
	}
	h.stopped = true
	h.mu.Unlock()

	close(h.stop)
	<-h.done // Wait for Run() to finish
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		client.Close()
	}
}

// Unregister safely unregisters a client, handling the case where the hub may be stopped.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// BroadcastFavoriteChanged is a favorites.Observer.
func (h *Hub) BroadcastFavoriteChanged(change favorites.Change) {
	msg, err := NewMessage(MessageTypeFavoriteChanged, FavoriteChangedPayload{
		ResortID:   change.ResortID,
		IsFavorite: change.Favorite,
		IDs:        change.IDs,
	})
	if err != nil {
		log.Errorf("websocket: failed to build favorite change message: %v", err)
		return
	}

	h.mu.Lock()
	h.seq++
	msg.Seq = h.seq
	h.mu.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Errorf("websocket: failed to marshal favorite change: %v", err)
		return
	}

	select {
	case h.broadcast <- data:
	case <-h.done:
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) stateSync(client *Client) *Message {
	ids := []string{}
	if h.snapshot != nil {
		ids = h.snapshot()
	}

	h.mu.RLock()
	seq := h.seq
	h.mu.RUnlock()

	msg, _ := NewMessage(MessageTypeStateSync, StateSyncPayload{
		ClientID: client.ID(),
		IDs:      ids,
	})
	msg.Seq = seq
	return msg
}
