package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// ScreeningCompletedEvent tells connected dashboards that a batch of
// resumes finished scoring and results can be refetched.
type ScreeningCompletedEvent struct {
	Type      string `json:"type"`
	JobID     string `json:"job_id"`
	Processed int    `json:"processed"`
	Failed    int    `json:"failed"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifyScreeningCompleted(jobID uuid.UUID, processed, failed int) {
	h := defaultHub.Load()
	if h == nil {
		return
	}
	if jobID == uuid.Nil {
		return
	}

	evt := ScreeningCompletedEvent{
		Type:      "screening_completed",
		JobID:     jobID.String(),
		Processed: processed,
		Failed:    failed,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
