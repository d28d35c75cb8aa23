// Package metrics feeds the dashboard's live campaign numbers. The backend
// exposes no metrics resource yet, so the feed random-walks plausible
// reach/click counters for the active campaign fixtures.
package metrics

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/muzads/muzads/internal/model"
	"github.com/muzads/muzads/internal/websocket"
)

// Ticker periodically broadcasts one metrics tick per active campaign.
type Ticker struct {
	hub      *websocket.Hub
	interval time.Duration
	logger   *slog.Logger

	// current counters, keyed by campaign ID
	reach  map[int64]int64
	clicks map[int64]int64
}

func NewTicker(hub *websocket.Hub, interval time.Duration, logger *slog.Logger) *Ticker {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	t := &Ticker{
		hub:      hub,
		interval: interval,
		logger:   logger,
		reach:    make(map[int64]int64),
		clicks:   make(map[int64]int64),
	}
	for _, c := range model.ActiveCampaigns() {
		t.reach[c.ID] = 1000 + rand.Int63n(40000)
		t.clicks[c.ID] = 50 + rand.Int63n(1500)
	}
	return t
}

// Run broadcasts until ctx is cancelled. Skips work while nobody is
// connected.
func (t *Ticker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.logger.Info("metrics ticker started", "interval", t.interval)
	for {
		select {
		case <-ticker.C:
			if t.hub.ClientCount() == 0 {
				continue
			}
			t.step()
		case <-ctx.Done():
			t.logger.Info("metrics ticker stopped")
			return
		}
	}
}

func (t *Ticker) step() {
	for _, c := range model.ActiveCampaigns() {
		t.reach[c.ID] += rand.Int63n(120)
		if rand.Intn(3) == 0 {
			t.clicks[c.ID] += rand.Int63n(8)
		}
		t.hub.Broadcast(websocket.Tick{
			Type:       "campaign_metrics",
			CampaignID: c.ID,
			Campaign:   c.Name,
			Reach:      t.reach[c.ID],
			Clicks:     t.clicks[c.ID],
		})
	}
}
