package ws

import (
	"encoding/json"
	"testing"
	"time"
)

func waitForClients(t *testing.T, h *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if h.ClientCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("hub never reached %d clients", want)
}

func TestHubPublishReachesSubscribers(t *testing.T) {
	h := NewHub(nil)
	go h.Run()

	// The pumps are not started; the outbox is read directly.
	c := NewClient(h, nil)
	h.Register(c)
	waitForClients(t, h, 1)

	h.Publish(DemandUpdatedEvent{
		Type:         demandUpdatedType,
		UpdatedCount: 12,
		FailedCount:  1,
	})

	select {
	case payload := <-c.outbox:
		var evt DemandUpdatedEvent
		if err := json.Unmarshal(payload, &evt); err != nil {
			t.Fatalf("bad payload: %v", err)
		}
		if evt.Type != demandUpdatedType || evt.UpdatedCount != 12 || evt.FailedCount != 1 {
			t.Fatalf("unexpected event: %+v", evt)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("event never reached the subscriber")
	}
}

func TestHubUnregisterClosesOutbox(t *testing.T) {
	h := NewHub(nil)
	go h.Run()

	c := NewClient(h, nil)
	h.Register(c)
	waitForClients(t, h, 1)

	h.Unregister(c)
	waitForClients(t, h, 0)

	select {
	case _, open := <-c.outbox:
		if open {
			t.Fatalf("expected closed outbox after unregister")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("outbox never closed")
	}
}

func TestNotifyWithoutHubIsNoop(t *testing.T) {
	SetDefaultHub(nil)
	NotifyDemandUpdated(3, 0)
}
