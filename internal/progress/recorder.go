package progress

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Entry is one recorded progress notification.
type Entry struct {
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Recorder is an append-only progress log. It decouples the orchestrator's
// progress reporting from any rendering concern: a sink callback appends
// here, and the facade reads entries back whenever the UI asks. Safe for a
// callback that fires after the requesting UI context is gone.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
	limit   int
	logger  *logrus.Logger
}

// NewRecorder creates a recorder retaining at most limit entries.
func NewRecorder(limit int, logger *logrus.Logger) *Recorder {
	if limit <= 0 {
		limit = 50
	}
	return &Recorder{
		limit:  limit,
		logger: logger,
	}
}

// Record appends a progress message, dropping the oldest entries beyond the
// retention limit.
func (r *Recorder) Record(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, Entry{Message: message, At: time.Now()})
	if len(r.entries) > r.limit {
		r.entries = r.entries[len(r.entries)-r.limit:]
	}

	if r.logger != nil {
		r.logger.WithField("progress", message).Info("Sync progress")
	}
}

// Entries returns a copy of the recorded entries, oldest first.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Reset clears the recorded entries, typically at the start of a new sync
// invocation.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}
