package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// Event is a message pushed to subscribers. The type tag ends up in the
// serialized payload so dashboard clients can route on it.
type Event interface {
	EventType() string
}

// Hub fans typed events out to connected dashboard clients. Events are
// serialized once per publish, not per client.
type Hub struct {
	clients    map[*Client]struct{}
	events     chan Event
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		events:     make(chan Event, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mu.Lock()
			h.clients[client] = struct{}{}
			total := len(h.clients)
			h.mu.Unlock()
			if h.logger != nil {
				h.logger.Printf("ws=hub step=register clients=%d", total)
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.outbox)
			}
			total := len(h.clients)
			h.mu.Unlock()
			if h.logger != nil {
				h.logger.Printf("ws=hub step=unregister clients=%d", total)
			}

		case evt := <-h.events:
			payload, err := json.Marshal(evt)
			if err != nil {
				if h.logger != nil {
					h.logger.Printf("ws=hub step=marshal status=error event=%s err=%v", evt.EventType(), err)
				}
				continue
			}

			h.mu.RLock()
			subscribers := make([]*Client, 0, len(h.clients))
			for c := range h.clients {
				subscribers = append(subscribers, c)
			}
			h.mu.RUnlock()

			for _, client := range subscribers {
				select {
				case client.outbox <- payload:
				default:
					// A full outbox means the peer stopped reading.
					h.unregister <- client
				}
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// Publish enqueues evt for fan-out; it drops the event instead of blocking
// the caller when the hub is saturated.
func (h *Hub) Publish(evt Event) {
	if h == nil || evt == nil {
		return
	}
	select {
	case h.events <- evt:
	default:
		if h.logger != nil {
			h.logger.Printf("ws=hub step=publish status=dropped event=%s", evt.EventType())
		}
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
