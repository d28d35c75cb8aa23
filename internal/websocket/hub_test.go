package websocket

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
)

func testHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRegisterUnregister(t *testing.T) {
	h := testHub()
	c := &Client{hub: h, send: make(chan []byte, 1)}

	h.Register(c)
	if got := h.ClientCount(); got != 1 {
		t.Fatalf("count = %d, want 1", got)
	}

	h.Unregister(c)
	if got := h.ClientCount(); got != 0 {
		t.Fatalf("count = %d, want 0", got)
	}
	if _, ok := <-c.send; ok {
		t.Error("send channel should be closed after unregister")
	}

	// double unregister must not panic or double-close
	h.Unregister(c)
}

func TestBroadcastDeliversTick(t *testing.T) {
	h := testHub()
	c := &Client{hub: h, send: make(chan []byte, 1)}
	h.Register(c)

	h.Broadcast(Tick{Type: "campaign_metrics", CampaignID: 1, Campaign: "Summer Launch", Reach: 1200, Clicks: 34})

	select {
	case raw := <-c.send:
		var tick Tick
		if err := json.Unmarshal(raw, &tick); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if tick.Type != "campaign_metrics" || tick.CampaignID != 1 || tick.Reach != 1200 {
			t.Errorf("tick = %+v", tick)
		}
	default:
		t.Fatal("no tick delivered")
	}
}

func TestBroadcastDropsForSlowClient(t *testing.T) {
	h := testHub()
	slow := &Client{hub: h, send: make(chan []byte)} // unbuffered, never drained
	h.Register(slow)

	// Must return immediately, dropping the tick, instead of stalling on
	// the full channel. A blocking Broadcast hangs the test.
	h.Broadcast(Tick{Type: "campaign_metrics", CampaignID: 2})
}
