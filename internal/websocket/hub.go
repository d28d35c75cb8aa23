// Package websocket fans live dashboard updates out to connected browsers.
package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Tick is one live metrics update for a campaign, broadcast to every open
// dashboard.
type Tick struct {
	Type       string `json:"type"`
	CampaignID int64  `json:"campaign_id"`
	Campaign   string `json:"campaign"`
	Reach      int64  `json:"reach"`
	Clicks     int64  `json:"clicks"`
}

// Hub maintains the set of active connections and broadcasts ticks to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	logger  *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		logger:  logger,
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

// Unregister removes a client and closes its send channel.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// Broadcast sends a tick to all connected clients. Slow clients drop the
// tick rather than stalling the broadcaster.
func (h *Hub) Broadcast(t Tick) {
	data, err := json.Marshal(t)
	if err != nil {
		h.logger.Error("marshal tick", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients {
		select {
		case c.send <- data:
		default:
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
