package workspace

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aletheia-labs/radar-workspace/internal/config"
	apperrors "github.com/aletheia-labs/radar-workspace/internal/errors"
	"github.com/aletheia-labs/radar-workspace/internal/models"
)

const testRadarID = "radar-42"

// stubGateway scripts GetRadar responses per call and records interactions.
type stubGateway struct {
	mu sync.Mutex

	// markerAfter flips the returned marker once getCalls passes it; a
	// negative value means the marker never changes.
	markerAfter int
	getErrs     map[int]error
	getCalls    int

	triggerErr   error
	triggerCalls int

	items    []models.CapturedItem
	itemsErr error
}

func (g *stubGateway) GetRadar(ctx context.Context, radarID string) (*models.Radar, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.getCalls++
	if err, ok := g.getErrs[g.getCalls]; ok {
		return nil, err
	}
	marker := "marker-initial"
	if g.markerAfter >= 0 && g.getCalls > g.markerAfter {
		marker = "marker-changed"
	}
	return &models.Radar{ID: radarID, LastUpdated: marker}, nil
}

func (g *stubGateway) TriggerSync(ctx context.Context, radarID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.triggerCalls++
	return g.triggerErr
}

func (g *stubGateway) ListItems(ctx context.Context, radarID string) ([]models.CapturedItem, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.itemsErr != nil {
		return nil, g.itemsErr
	}
	return g.items, nil
}

func testSyncConfig() *config.SyncConfig {
	return &config.SyncConfig{
		PollInterval:    time.Millisecond,
		MaxPollAttempts: 4,
		SyncDeadline:    time.Second,
		ProgressLimit:   50,
	}
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestRequestSyncEmptyRadarID(t *testing.T) {
	c := NewCoordinator(&stubGateway{markerAfter: -1}, testSyncConfig(), testLogger())

	result, err := c.RequestSync(context.Background(), "", nil)

	assert.Nil(t, result)
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestRequestSyncTriggerRejected(t *testing.T) {
	gw := &stubGateway{markerAfter: -1, triggerErr: errors.New("503 Service Unavailable")}
	c := NewCoordinator(gw, testSyncConfig(), testLogger())

	var messages []string
	result, err := c.RequestSync(context.Background(), testRadarID, func(msg string) {
		messages = append(messages, msg)
	})

	require.NoError(t, err)
	assert.Equal(t, models.SyncFailed, result.Status.Outcome)
	assert.Contains(t, result.Status.Message, "503 Service Unavailable")
	// The snapshot read is the only GetRadar call; rejection skips polling.
	assert.Equal(t, 1, gw.getCalls)
	assert.Zero(t, result.Status.Attempts)
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "could not be started")
}

func TestRequestSyncMarkerChangeCompletes(t *testing.T) {
	// Call 1 is the snapshot; the marker flips at poll 3 (call 4).
	gw := &stubGateway{
		markerAfter: 3,
		items: []models.CapturedItem{
			{ID: "item-1", Title: "Attention Survey"},
			{ID: "item-2", Title: "Weekly Digest"},
		},
	}
	c := NewCoordinator(gw, testSyncConfig(), testLogger())

	var messages []string
	result, err := c.RequestSync(context.Background(), testRadarID, func(msg string) {
		messages = append(messages, msg)
	})

	require.NoError(t, err)
	assert.Equal(t, models.SyncCompleted, result.Status.Outcome)
	assert.Equal(t, 3, result.Status.Attempts)
	assert.Equal(t, "marker-initial", result.Status.InitialMarker)
	assert.Len(t, result.Items, 2)
	assert.Contains(t, messages[len(messages)-1], "2 items captured")
}

func TestRequestSyncBudgetExhausted(t *testing.T) {
	gw := &stubGateway{markerAfter: -1}
	cfg := testSyncConfig()
	c := NewCoordinator(gw, cfg, testLogger())

	result, err := c.RequestSync(context.Background(), testRadarID, nil)

	require.NoError(t, err)
	assert.Equal(t, models.SyncTimedOut, result.Status.Outcome)
	assert.Equal(t, cfg.MaxPollAttempts, result.Status.Attempts)
	assert.Contains(t, result.Status.Message, "timed out")
	// Snapshot plus exactly MaxPollAttempts polls, never more.
	assert.Equal(t, cfg.MaxPollAttempts+1, gw.getCalls)
}

func TestRequestSyncTransientFailuresConsumeAttempts(t *testing.T) {
	// Polls 1 and 2 (calls 2 and 3) fail; the budget is not extended.
	gw := &stubGateway{
		markerAfter: -1,
		getErrs: map[int]error{
			2: errors.New("connection reset"),
			3: errors.New("connection reset"),
		},
	}
	cfg := testSyncConfig()
	c := NewCoordinator(gw, cfg, testLogger())

	result, err := c.RequestSync(context.Background(), testRadarID, nil)

	require.NoError(t, err)
	assert.Equal(t, models.SyncTimedOut, result.Status.Outcome)
	assert.Equal(t, cfg.MaxPollAttempts+1, gw.getCalls)
}

func TestRequestSyncUnreadableSnapshotStillCompletes(t *testing.T) {
	// The snapshot read fails, so the empty marker is compared against
	// whatever the first successful poll returns.
	gw := &stubGateway{
		markerAfter: -1,
		getErrs:     map[int]error{1: errors.New("radar unreadable")},
	}
	c := NewCoordinator(gw, testSyncConfig(), testLogger())

	result, err := c.RequestSync(context.Background(), testRadarID, nil)

	require.NoError(t, err)
	assert.Equal(t, models.SyncCompleted, result.Status.Outcome)
	assert.Equal(t, 1, result.Status.Attempts)
	assert.Empty(t, result.Status.InitialMarker)
}

func TestRequestSyncItemsRefreshFailureKeepsCompleted(t *testing.T) {
	gw := &stubGateway{markerAfter: 1, itemsErr: errors.New("items endpoint down")}
	c := NewCoordinator(gw, testSyncConfig(), testLogger())

	result, err := c.RequestSync(context.Background(), testRadarID, nil)

	require.NoError(t, err)
	assert.Equal(t, models.SyncCompleted, result.Status.Outcome)
	assert.Nil(t, result.Items)
}

func TestRequestSyncContextCancellation(t *testing.T) {
	gw := &stubGateway{markerAfter: -1}
	cfg := testSyncConfig()
	cfg.PollInterval = time.Hour
	c := NewCoordinator(gw, cfg, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	result, err := c.RequestSync(ctx, testRadarID, nil)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
}
