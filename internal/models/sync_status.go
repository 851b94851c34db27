package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// SyncOutcome is the terminal state of one sync invocation.
type SyncOutcome string

const (
	SyncPending   SyncOutcome = "pending"
	SyncCompleted SyncOutcome = "completed"
	SyncTimedOut  SyncOutcome = "timedOut"
	SyncFailed    SyncOutcome = "failed"
)

// SyncStatus tracks the state of one sync invocation for a radar. Owned by a
// single in-flight coordinator call; the persisted journal keeps the latest
// record per radar.
type SyncStatus struct {
	RadarID       string      `json:"radar_id"`
	Outcome       SyncOutcome `json:"outcome"`
	Attempts      int         `json:"attempts"`
	MaxAttempts   int         `json:"max_attempts"`
	InitialMarker string      `json:"initial_marker,omitempty"`
	Message       string      `json:"message,omitempty"`
	StartedAt     time.Time   `json:"started_at,omitempty"`
	FinishedAt    time.Time   `json:"finished_at,omitempty"`
}

// String returns the JSON string representation of the sync status
func (s *SyncStatus) String() string {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal sync status: %v"}`, err)
	}
	return string(data)
}
