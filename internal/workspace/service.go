package workspace

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aletheia-labs/radar-workspace/internal/config"
	"github.com/aletheia-labs/radar-workspace/internal/db"
	"github.com/aletheia-labs/radar-workspace/internal/errors"
	"github.com/aletheia-labs/radar-workspace/internal/models"
	"github.com/aletheia-labs/radar-workspace/internal/progress"
)

// internalThreadTitlePrefixes marks transient system sessions that should
// never appear in the user-facing thread list.
var internalThreadTitlePrefixes = []string{
	"System sweeping",
	"System thinking",
}

// Service coordinates sync runs, workspace resolution and persistence. It
// enforces the single-outstanding-sync-per-radar rule and owns the durable
// collections the orchestrator core returns deltas for.
type Service struct {
	coordinator *Coordinator
	resolver    *Resolver
	store       db.Store
	cfg         *config.SyncConfig
	logger      *logrus.Logger

	mu        sync.Mutex
	inFlight  map[string]bool
	recorders map[string]*progress.Recorder
}

// NewService creates a new workspace service
func NewService(coordinator *Coordinator, resolver *Resolver, store db.Store, cfg *config.SyncConfig, logger *logrus.Logger) *Service {
	return &Service{
		coordinator: coordinator,
		resolver:    resolver,
		store:       store,
		cfg:         cfg,
		logger:      logger,
		inFlight:    make(map[string]bool),
		recorders:   make(map[string]*progress.Recorder),
	}
}

// StartSync launches a detached sync run for the radar. It returns
// immediately once the run is accepted; the outcome lands in the sync
// journal and can be read back via SyncStatus, with progress via Progress.
// A second start while one is outstanding returns SyncInProgressError.
func (s *Service) StartSync(ctx context.Context, radarID string) error {
	if radarID == "" {
		return errors.NewValidationError("radar id cannot be empty", nil)
	}

	s.mu.Lock()
	if s.inFlight[radarID] {
		s.mu.Unlock()
		return errors.NewSyncInProgressError(radarID)
	}
	s.inFlight[radarID] = true
	rec := s.recorderLocked(radarID)
	s.mu.Unlock()

	rec.Reset()

	pending := &models.SyncStatus{
		RadarID:     radarID,
		Outcome:     models.SyncPending,
		MaxAttempts: s.cfg.MaxPollAttempts,
		StartedAt:   time.Now(),
	}
	if err := s.store.SaveSyncStatus(ctx, pending); err != nil {
		s.logger.WithError(err).WithField("radar", radarID).Warn("Could not journal pending sync")
	}

	// The run is deliberately detached from the requesting context: closing
	// the page that asked for the sweep must not abandon it.
	go s.runSync(radarID, rec)

	return nil
}

func (s *Service) runSync(radarID string, rec *progress.Recorder) {
	defer func() {
		s.mu.Lock()
		delete(s.inFlight, radarID)
		s.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.SyncDeadline)
	defer cancel()

	logger := s.logger.WithFields(logrus.Fields{
		"radar":  radarID,
		"action": "background_sync",
	})

	result, err := s.coordinator.RequestSync(ctx, radarID, rec.Record)
	if err != nil {
		// The run context may already be dead here; journal on a fresh one.
		logger.WithError(err).Error("Sync run aborted")
		s.journal(context.Background(), &models.SyncStatus{
			RadarID:     radarID,
			Outcome:     models.SyncFailed,
			MaxAttempts: s.cfg.MaxPollAttempts,
			Message:     err.Error(),
			StartedAt:   time.Now(),
			FinishedAt:  time.Now(),
		}, logger)
		return
	}

	s.journal(context.Background(), &result.Status, logger)

	if result.Status.Outcome == models.SyncCompleted && len(result.Items) > 0 {
		docs := Project(result.Items)
		if err := s.store.SaveDocuments(context.Background(), radarID, docs); err != nil {
			logger.WithError(err).Warn("Could not persist projected documents")
		}
	}
}

func (s *Service) journal(ctx context.Context, status *models.SyncStatus, logger *logrus.Entry) {
	if err := s.store.SaveSyncStatus(ctx, status); err != nil {
		logger.WithError(err).Warn("Could not journal sync outcome")
	}
}

// SyncStatus returns the latest journal entry for a radar, or nil when the
// radar has never been synced.
func (s *Service) SyncStatus(ctx context.Context, radarID string) (*models.SyncStatus, error) {
	if radarID == "" {
		return nil, errors.NewValidationError("radar id cannot be empty", nil)
	}
	return s.store.GetSyncStatus(ctx, radarID)
}

// Progress returns the recorded progress entries for the radar's most recent
// sync run, oldest first.
func (s *Service) Progress(radarID string) []progress.Entry {
	s.mu.Lock()
	rec := s.recorderLocked(radarID)
	s.mu.Unlock()
	return rec.Entries()
}

func (s *Service) recorderLocked(radarID string) *progress.Recorder {
	rec, ok := s.recorders[radarID]
	if !ok {
		rec = progress.NewRecorder(s.cfg.ProgressLimit, s.logger)
		s.recorders[radarID] = rec
	}
	return rec
}

// OpenWorkspace resolves the resume-or-fresh decision for a radar and
// returns the assembled workspace state: seeded messages, the radar's
// threads and the combined document list (persisted radar documents first,
// then any session-scoped ones from a resumed history).
func (s *Service) OpenWorkspace(ctx context.Context, radarID string) (*models.WorkspaceState, error) {
	state, err := s.resolver.Resolve(ctx, radarID)
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveThreads(ctx, state.Threads); err != nil {
		s.logger.WithError(err).WithField("radar", radarID).Warn("Could not persist fetched threads")
	}

	radarDocs, err := s.store.ListDocuments(ctx, radarID)
	if err != nil {
		s.logger.WithError(err).WithField("radar", radarID).Warn("Could not load persisted documents")
		radarDocs = nil
	}
	state.Documents = CombineCategories(radarDocs, state.Documents)

	return state, nil
}

// Documents returns the persisted projected documents for a radar.
func (s *Service) Documents(ctx context.Context, radarID string) ([]models.ProjectedDocument, error) {
	if radarID == "" {
		return nil, errors.NewValidationError("radar id cannot be empty", nil)
	}
	return s.store.ListDocuments(ctx, radarID)
}

// Threads returns the global thread list with internal system sessions
// filtered out.
func (s *Service) Threads(ctx context.Context) ([]models.ConversationThread, error) {
	threads, err := s.store.ListThreads(ctx)
	if err != nil {
		return nil, err
	}
	return FilterInternalThreads(threads), nil
}

// FilterInternalThreads drops threads created by background machinery:
// sync-generated session ids and system status titles.
func FilterInternalThreads(threads []models.ConversationThread) []models.ConversationThread {
	filtered := make([]models.ConversationThread, 0, len(threads))
	for _, t := range threads {
		if strings.HasPrefix(t.ID, "sync_") {
			continue
		}
		if hasInternalTitle(t.Title) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

func hasInternalTitle(title string) bool {
	for _, prefix := range internalThreadTitlePrefixes {
		if strings.HasPrefix(title, prefix) {
			return true
		}
	}
	return false
}
