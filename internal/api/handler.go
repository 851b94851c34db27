package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/aletheia-labs/radar-workspace/internal/errors"
	"github.com/aletheia-labs/radar-workspace/internal/models"
	"github.com/aletheia-labs/radar-workspace/internal/progress"
)

// WorkspaceService is the service surface the HTTP facade exposes.
type WorkspaceService interface {
	StartSync(ctx context.Context, radarID string) error
	SyncStatus(ctx context.Context, radarID string) (*models.SyncStatus, error)
	Progress(radarID string) []progress.Entry
	OpenWorkspace(ctx context.Context, radarID string) (*models.WorkspaceState, error)
	Documents(ctx context.Context, radarID string) ([]models.ProjectedDocument, error)
	Threads(ctx context.Context) ([]models.ConversationThread, error)
}

// ErrorResponse is the uniform error payload
type ErrorResponse struct {
	Error string `json:"error"`
}

// SyncStatusResponse pairs the journaled outcome with the progress trail of
// the most recent run.
type SyncStatusResponse struct {
	Status   *models.SyncStatus `json:"status"`
	Progress []progress.Entry   `json:"progress"`
}

type Handler struct {
	service WorkspaceService
	logger  *logrus.Logger
}

func NewHandler(service WorkspaceService, logger *logrus.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// TriggerRadarSync starts a background sweep for a radar
// @Summary Trigger a radar sweep
// @Description Start a background sweep for the radar and poll it to completion server-side
// @Tags radars
// @Accept json
// @Produce json
// @Param id path string true "Radar ID"
// @Success 202 {object} map[string]string "Sweep started"
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "A sweep is already in flight"
// @Failure 500 {object} ErrorResponse
// @Router /radars/{id}/sync [post]
func (h *Handler) TriggerRadarSync(c *gin.Context) {
	radarID := c.Param("id")

	err := h.service.StartSync(c.Request.Context(), radarID)
	switch {
	case err == nil:
		c.JSON(http.StatusAccepted, gin.H{"status": "started", "radarId": radarID})
	case errors.IsSyncInProgress(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.IsInvalidInput(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		h.logger.WithError(err).Error("Failed to start radar sync")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start sync"})
	}
}

// GetRadarSyncStatus returns the latest sync journal entry and progress
// @Summary Get radar sync status
// @Description Get the journaled outcome of the latest sweep plus its progress notifications
// @Tags radars
// @Accept json
// @Produce json
// @Param id path string true "Radar ID"
// @Success 200 {object} SyncStatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Radar has never been synced"
// @Failure 500 {object} ErrorResponse
// @Router /radars/{id}/sync [get]
func (h *Handler) GetRadarSyncStatus(c *gin.Context) {
	radarID := c.Param("id")

	status, err := h.service.SyncStatus(c.Request.Context(), radarID)
	if err != nil {
		if errors.IsInvalidInput(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		h.logger.WithError(err).Error("Failed to read sync status")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read sync status"})
		return
	}
	if status == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no sync recorded for radar: " + radarID})
		return
	}

	c.JSON(http.StatusOK, SyncStatusResponse{
		Status:   status,
		Progress: h.service.Progress(radarID),
	})
}

// OpenWorkspace resolves and returns the workspace state for a radar
// @Summary Open a radar workspace
// @Description Resolve resume-or-fresh for the radar and return the seeded session, threads and documents
// @Tags radars
// @Accept json
// @Produce json
// @Param id path string true "Radar ID"
// @Success 200 {object} models.WorkspaceState
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /radars/{id}/workspace [get]
func (h *Handler) OpenWorkspace(c *gin.Context) {
	radarID := c.Param("id")

	state, err := h.service.OpenWorkspace(c.Request.Context(), radarID)
	if err != nil {
		if errors.IsInvalidInput(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		h.logger.WithError(err).Error("Failed to open workspace")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to open workspace"})
		return
	}

	c.JSON(http.StatusOK, state)
}

// ListRadarDocuments returns the persisted projected documents for a radar
// @Summary List radar documents
// @Description Get the display-ready documents projected from the radar's captured items
// @Tags radars
// @Accept json
// @Produce json
// @Param id path string true "Radar ID"
// @Success 200 {array} models.ProjectedDocument
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /radars/{id}/documents [get]
func (h *Handler) ListRadarDocuments(c *gin.Context) {
	radarID := c.Param("id")

	docs, err := h.service.Documents(c.Request.Context(), radarID)
	if err != nil {
		if errors.IsInvalidInput(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		h.logger.WithError(err).Error("Failed to list documents")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list documents"})
		return
	}
	if docs == nil {
		docs = []models.ProjectedDocument{}
	}

	c.JSON(http.StatusOK, docs)
}

// ListThreads returns the global conversation thread list
// @Summary List conversation threads
// @Description Get all user-facing conversation threads, internal system sessions filtered out
// @Tags threads
// @Accept json
// @Produce json
// @Success 200 {array} models.ConversationThread
// @Failure 500 {object} ErrorResponse
// @Router /threads [get]
func (h *Handler) ListThreads(c *gin.Context) {
	threads, err := h.service.Threads(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list threads")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list threads"})
		return
	}
	if threads == nil {
		threads = []models.ConversationThread{}
	}

	c.JSON(http.StatusOK, threads)
}
