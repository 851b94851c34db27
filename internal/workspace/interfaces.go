package workspace

import (
	"context"

	"github.com/aletheia-labs/radar-workspace/internal/models"
)

// RadarGateway is the slice of the upstream API the sync coordinator needs:
// the radar resource (for marker snapshots and polls), the sync trigger and
// the items refresh.
type RadarGateway interface {
	// GetRadar reads the radar resource, including its lastUpdated marker
	GetRadar(ctx context.Context, radarID string) (*models.Radar, error)

	// TriggerSync starts the background sweep; a returned error means the
	// trigger was rejected
	TriggerSync(ctx context.Context, radarID string) error

	// ListItems fetches the radar's captured items
	ListItems(ctx context.Context, radarID string) ([]models.CapturedItem, error)
}

// BriefingFetcher fetches the workspace briefing for a radar
type BriefingFetcher interface {
	GetBriefing(ctx context.Context, radarID string) (*models.Briefing, error)
}

// ThreadLister lists the conversation threads scoped to a radar, most
// recent first
type ThreadLister interface {
	ListThreads(ctx context.Context, radarID string) ([]models.ConversationThread, error)
}

// SessionLoader loads the full history of one conversation thread
type SessionLoader interface {
	LoadSession(ctx context.Context, threadID string) (*models.SessionHistory, error)
}

// ProgressFunc receives human-readable progress notifications. Callers must
// treat it defensively: it may fire after the UI context that requested the
// operation is gone, but it is called a bounded number of times and then
// stops.
type ProgressFunc func(message string)
