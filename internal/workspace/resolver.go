package workspace

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/aletheia-labs/radar-workspace/internal/errors"
	"github.com/aletheia-labs/radar-workspace/internal/models"
)

const sessionLoadFailedMessage = "I couldn't restore our previous conversation for this radar. " +
	"The history may be temporarily unavailable; you can keep working here and I'll save this as a new thread."

// Resolver decides, when a radar workspace is opened, whether to resume the
// prior conversation or start clean. The upstream exposes no explicit
// scenario enum beyond a best-effort hint string; anything other than
// exactly "resuming" degrades to the safer fresh-start path.
type Resolver struct {
	briefings BriefingFetcher
	threads   ThreadLister
	sessions  SessionLoader
	logger    *logrus.Logger
}

// NewResolver creates a new workspace resumption resolver
func NewResolver(briefings BriefingFetcher, threads ThreadLister, sessions SessionLoader, logger *logrus.Logger) *Resolver {
	return &Resolver{
		briefings: briefings,
		threads:   threads,
		sessions:  sessions,
		logger:    logger,
	}
}

// Resolve fetches the briefing and the radar's threads, then either loads
// the most recent thread's history with the briefing prepended, or seeds a
// fresh session with the briefing as its only message. Briefing and thread
// fetch failures degrade silently to a cold start; only a failure of the
// session-loading delegate is surfaced, as an assistant-role error message.
func (r *Resolver) Resolve(ctx context.Context, radarID string) (*models.WorkspaceState, error) {
	if radarID == "" {
		return nil, errors.NewValidationError("radar id cannot be empty", nil)
	}

	logger := r.logger.WithFields(logrus.Fields{
		"radar":  radarID,
		"action": "resolve_workspace",
	})

	briefing := r.fetchBriefing(ctx, radarID, logger)
	threads := r.fetchThreads(ctx, radarID, logger)

	if briefing.Scenario == models.ScenarioResuming && len(threads) > 0 {
		return r.resumeThread(ctx, radarID, briefing, threads, logger), nil
	}

	// Fresh start: hint was "new" (or unrecognized), or "resuming" arrived
	// with zero threads, an inconsistent but possible server state.
	logger.WithField("scenario", briefing.Scenario).Info("Starting fresh workspace session")
	return &models.WorkspaceState{
		RadarID:   radarID,
		SessionID: uuid.NewString(),
		Resumed:   false,
		Messages: []models.Message{
			{
				ID:      uuid.NewString(),
				Role:    models.RoleAssistant,
				Content: briefing.Summary,
			},
		},
		Threads: threads,
	}, nil
}

func (r *Resolver) fetchBriefing(ctx context.Context, radarID string, logger *logrus.Entry) *models.Briefing {
	briefing, err := r.briefings.GetBriefing(ctx, radarID)
	if err != nil {
		logger.WithError(err).Warn("Briefing fetch failed, degrading to cold start")
		return &models.Briefing{Summary: "", Scenario: models.ScenarioNew}
	}
	if briefing.Scenario != models.ScenarioResuming {
		briefing.Scenario = models.ScenarioNew
	}
	return briefing
}

func (r *Resolver) fetchThreads(ctx context.Context, radarID string, logger *logrus.Entry) []models.ConversationThread {
	// Ordering (most recent first) is the collaborator's contract; it is
	// deliberately not re-sorted here so an upstream ordering bug stays
	// visible instead of being masked.
	threads, err := r.threads.ListThreads(ctx, radarID)
	if err != nil {
		logger.WithError(err).Warn("Thread fetch failed, treating as zero threads")
		return nil
	}
	return threads
}

func (r *Resolver) resumeThread(ctx context.Context, radarID string, briefing *models.Briefing, threads []models.ConversationThread, logger *logrus.Entry) *models.WorkspaceState {
	latest := threads[0]
	state := &models.WorkspaceState{
		RadarID:   radarID,
		SessionID: latest.ID,
		Resumed:   true,
		Threads:   threads,
	}

	history, err := r.sessions.LoadSession(ctx, latest.ID)
	if err != nil {
		logger.WithError(err).WithField("thread", latest.ID).Error("Session load failed during resumption")
		state.Messages = []models.Message{
			{
				ID:      uuid.NewString(),
				Role:    models.RoleAssistant,
				Content: sessionLoadFailedMessage,
			},
		}
		return state
	}

	logger.WithFields(logrus.Fields{
		"thread":   latest.ID,
		"messages": len(history.Messages),
	}).Info("Resuming prior conversation")

	// The briefing leads so the user sees what changed since last time
	// without losing prior context.
	state.Messages = make([]models.Message, 0, len(history.Messages)+1)
	state.Messages = append(state.Messages, models.Message{
		ID:      uuid.NewString(),
		Role:    models.RoleAssistant,
		Content: briefing.Summary,
	})
	state.Messages = append(state.Messages, history.Messages...)
	state.Documents = history.Documents
	return state
}

// MergeThreads merges freshly fetched threads into an existing list,
// de-duplicating by id. Existing entries win and keep their position; unseen
// fetched threads are appended in fetched order.
func MergeThreads(existing, fetched []models.ConversationThread) []models.ConversationThread {
	merged := make([]models.ConversationThread, 0, len(existing)+len(fetched))
	seen := make(map[string]struct{}, len(existing))

	for _, t := range existing {
		merged = append(merged, t)
		seen[t.ID] = struct{}{}
	}
	for _, t := range fetched {
		if _, ok := seen[t.ID]; ok {
			continue
		}
		merged = append(merged, t)
		seen[t.ID] = struct{}{}
	}
	return merged
}
