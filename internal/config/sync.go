package config

import "time"

// SyncConfig holds the polling budget for radar sync coordination. The
// overall designed timeout is MaxPollAttempts * PollInterval; individual
// network calls only carry the HTTP client default.
type SyncConfig struct {
	PollInterval    time.Duration
	MaxPollAttempts int
	// SyncDeadline bounds one detached background sync invocation.
	SyncDeadline time.Duration
	// ProgressLimit caps the retained progress entries per radar.
	ProgressLimit int
}

// DefaultSyncConfig returns the default sync configuration
func DefaultSyncConfig() *SyncConfig {
	return &SyncConfig{
		PollInterval:    3 * time.Second,
		MaxPollAttempts: 12,
		SyncDeadline:    5 * time.Minute,
		ProgressLimit:   50,
	}
}
