package workspace

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aletheia-labs/radar-workspace/internal/config"
	"github.com/aletheia-labs/radar-workspace/internal/errors"
	"github.com/aletheia-labs/radar-workspace/internal/models"
)

// SyncResult is the terminal state of one RequestSync invocation plus, on
// completion, the refreshed item list for downstream projection.
type SyncResult struct {
	Status models.SyncStatus
	Items  []models.CapturedItem
}

// Coordinator drives one remote background sweep to observable completion.
// The upstream exposes no reliable job status fields; the one invariant it
// offers is that the radar's lastUpdated marker changes when a sweep lands,
// so a marker change is the sole completion signal.
type Coordinator struct {
	gateway RadarGateway
	cfg     *config.SyncConfig
	logger  *logrus.Logger
}

// NewCoordinator creates a new sync coordinator
func NewCoordinator(gateway RadarGateway, cfg *config.SyncConfig, logger *logrus.Logger) *Coordinator {
	return &Coordinator{
		gateway: gateway,
		cfg:     cfg,
		logger:  logger,
	}
}

// RequestSync triggers a sweep for the radar and polls until the marker
// changes or the attempt budget is exhausted. Polls are strictly sequential
// and each one waits the fixed interval first; transient poll failures are
// swallowed and consume an attempt. The returned error is non-nil only for
// invalid input or context cancellation; trigger rejection and timeout are
// reported through the result outcome and onProgress.
//
// At most one RequestSync per radar may be outstanding; callers enforce
// this (see Service).
func (c *Coordinator) RequestSync(ctx context.Context, radarID string, onProgress ProgressFunc) (*SyncResult, error) {
	if radarID == "" {
		return nil, errors.NewValidationError("radar id cannot be empty", nil)
	}
	if onProgress == nil {
		onProgress = func(string) {}
	}

	logger := c.logger.WithFields(logrus.Fields{
		"radar":  radarID,
		"action": "request_sync",
	})

	result := &SyncResult{
		Status: models.SyncStatus{
			RadarID:     radarID,
			Outcome:     models.SyncPending,
			MaxAttempts: c.cfg.MaxPollAttempts,
			StartedAt:   time.Now(),
		},
	}

	// Snapshot the marker before triggering. An unreadable radar does not
	// abort the sync: the sweep may still be triggerable, and any later
	// marker value will differ from the empty snapshot.
	marker := ""
	if radar, err := c.gateway.GetRadar(ctx, radarID); err != nil {
		logger.WithError(err).Warn("Could not snapshot radar marker, proceeding with empty snapshot")
	} else {
		marker = radar.LastUpdated
	}
	result.Status.InitialMarker = marker

	if err := c.gateway.TriggerSync(ctx, radarID); err != nil {
		msg := fmt.Sprintf("Radar sweep could not be started: %v", err)
		logger.WithError(err).Error("Sync trigger rejected")
		onProgress(msg)
		result.Status.Outcome = models.SyncFailed
		result.Status.Message = msg
		result.Status.FinishedAt = time.Now()
		return result, nil
	}

	logger.Info("Sync triggered, polling for marker change")
	onProgress("Radar sweep started, watching for new findings...")

	for attempt := 1; attempt <= c.cfg.MaxPollAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.cfg.PollInterval):
		}
		result.Status.Attempts = attempt

		radar, err := c.gateway.GetRadar(ctx, radarID)
		if err != nil {
			// Transient poll failures consume an attempt; they never reset
			// or extend the budget.
			logger.WithError(err).WithField("attempt", attempt).Debug("Poll failed, counting attempt")
			continue
		}

		if radar.LastUpdated != marker {
			logger.WithFields(logrus.Fields{
				"attempt":    attempt,
				"new_marker": radar.LastUpdated,
			}).Info("Marker change observed, sweep complete")
			result.Items = c.refreshItems(ctx, radarID, logger)

			msg := fmt.Sprintf("Radar sweep complete: %d items captured", len(result.Items))
			onProgress(msg)
			result.Status.Outcome = models.SyncCompleted
			result.Status.Message = msg
			result.Status.FinishedAt = time.Now()
			return result, nil
		}
	}

	msg := "Radar sweep timed out; the background process may still be running"
	logger.WithField("attempts", c.cfg.MaxPollAttempts).Warn("Sync poll budget exhausted without marker change")
	onProgress(msg)
	result.Status.Outcome = models.SyncTimedOut
	result.Status.Message = msg
	result.Status.FinishedAt = time.Now()
	return result, nil
}

// refreshItems performs the single post-completion items refresh. A failed
// refresh does not demote the completed outcome; the items are simply not
// current yet.
func (c *Coordinator) refreshItems(ctx context.Context, radarID string, logger *logrus.Entry) []models.CapturedItem {
	items, err := c.gateway.ListItems(ctx, radarID)
	if err != nil {
		logger.WithError(err).Warn("Items refresh after sweep completion failed")
		return nil
	}
	return items
}
