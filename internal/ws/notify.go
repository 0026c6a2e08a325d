package ws

import (
	"sync/atomic"
	"time"
)

// DemandUpdatedEvent announces that an aggregation pass finished and scores
// changed.
type DemandUpdatedEvent struct {
	Type         string `json:"type"`
	UpdatedCount int    `json:"updated_count"`
	FailedCount  int    `json:"failed_count"`
	Timestamp    string `json:"timestamp"`
}

const demandUpdatedType = "demand_updated"

func (e DemandUpdatedEvent) EventType() string { return demandUpdatedType }

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyDemandUpdated publishes the end of an aggregation pass. A nil hub
// (no server running, e.g. the CLI aggregator) makes this a no-op.
func NotifyDemandUpdated(updated, failed int) {
	h := defaultHub.Load()
	if h == nil {
		return
	}
	h.Publish(DemandUpdatedEvent{
		Type:         demandUpdatedType,
		UpdatedCount: updated,
		FailedCount:  failed,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	})
}
