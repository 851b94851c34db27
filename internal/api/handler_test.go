package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/aletheia-labs/radar-workspace/internal/errors"
	"github.com/aletheia-labs/radar-workspace/internal/models"
	"github.com/aletheia-labs/radar-workspace/internal/progress"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeService struct {
	startErr    error
	startedWith string

	status    *models.SyncStatus
	statusErr error

	entries []progress.Entry

	state    *models.WorkspaceState
	stateErr error

	docs    []models.ProjectedDocument
	docsErr error

	threads    []models.ConversationThread
	threadsErr error
}

func (f *fakeService) StartSync(ctx context.Context, radarID string) error {
	f.startedWith = radarID
	return f.startErr
}

func (f *fakeService) SyncStatus(ctx context.Context, radarID string) (*models.SyncStatus, error) {
	return f.status, f.statusErr
}

func (f *fakeService) Progress(radarID string) []progress.Entry {
	return f.entries
}

func (f *fakeService) OpenWorkspace(ctx context.Context, radarID string) (*models.WorkspaceState, error) {
	return f.state, f.stateErr
}

func (f *fakeService) Documents(ctx context.Context, radarID string) ([]models.ProjectedDocument, error) {
	return f.docs, f.docsErr
}

func (f *fakeService) Threads(ctx context.Context) ([]models.ConversationThread, error) {
	return f.threads, f.threadsErr
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func performRequest(svc WorkspaceService, method, path string) *httptest.ResponseRecorder {
	router := SetupRouter(NewHandler(svc, testLogger()))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestTriggerRadarSyncAccepted(t *testing.T) {
	svc := &fakeService{}

	w := performRequest(svc, http.MethodPost, "/api/v1/radars/r1/sync")

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "r1", svc.startedWith)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "started", body["status"])
}

func TestTriggerRadarSyncConflictWhenInFlight(t *testing.T) {
	svc := &fakeService{startErr: apperrors.NewSyncInProgressError("r1")}

	w := performRequest(svc, http.MethodPost, "/api/v1/radars/r1/sync")

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestTriggerRadarSyncValidationError(t *testing.T) {
	svc := &fakeService{startErr: apperrors.NewValidationError("radar id cannot be empty", nil)}

	w := performRequest(svc, http.MethodPost, "/api/v1/radars/r1/sync")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRadarSyncStatusNotFound(t *testing.T) {
	svc := &fakeService{status: nil}

	w := performRequest(svc, http.MethodGet, "/api/v1/radars/r1/sync")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRadarSyncStatusWithProgress(t *testing.T) {
	svc := &fakeService{
		status:  &models.SyncStatus{RadarID: "r1", Outcome: models.SyncCompleted, Attempts: 3},
		entries: []progress.Entry{{Message: "Radar sweep started, watching for new findings..."}},
	}

	w := performRequest(svc, http.MethodGet, "/api/v1/radars/r1/sync")

	require.Equal(t, http.StatusOK, w.Code)
	var body SyncStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, models.SyncCompleted, body.Status.Outcome)
	require.Len(t, body.Progress, 1)
}

func TestOpenWorkspace(t *testing.T) {
	svc := &fakeService{state: &models.WorkspaceState{
		RadarID:   "r1",
		SessionID: "s1",
		Resumed:   true,
		Messages:  []models.Message{{ID: "m1", Role: models.RoleAssistant, Content: "hello"}},
	}}

	w := performRequest(svc, http.MethodGet, "/api/v1/radars/r1/workspace")

	require.Equal(t, http.StatusOK, w.Code)
	var state models.WorkspaceState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.True(t, state.Resumed)
	assert.Equal(t, "s1", state.SessionID)
}

func TestOpenWorkspaceValidationError(t *testing.T) {
	svc := &fakeService{stateErr: apperrors.NewValidationError("radar id cannot be empty", nil)}

	w := performRequest(svc, http.MethodGet, "/api/v1/radars/r1/workspace")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRadarDocumentsEmptyIsArray(t *testing.T) {
	svc := &fakeService{}

	w := performRequest(svc, http.MethodGet, "/api/v1/radars/r1/documents")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestListThreads(t *testing.T) {
	svc := &fakeService{threads: []models.ConversationThread{
		{ID: "t1", Title: "Chat"},
	}}

	w := performRequest(svc, http.MethodGet, "/api/v1/threads")

	require.Equal(t, http.StatusOK, w.Code)
	var threads []models.ConversationThread
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &threads))
	require.Len(t, threads, 1)
	assert.Equal(t, "t1", threads[0].ID)
}
