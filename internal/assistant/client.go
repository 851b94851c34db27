package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/aletheia-labs/radar-workspace/internal/models"
)

// Client is a typed client for the upstream research assistant API. A bearer
// credential is attached to every request; individual calls carry only the
// HTTP client default timeout, the overall poll budget lives in the
// coordinator.
type Client struct {
	client  *http.Client
	baseURL string
	logger  *logrus.Logger
}

// ClientOption allows configuring the assistant client
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client, primarily for tests.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.client = httpClient
	}
}

// NewClient creates a new assistant client with the given base URL and token
func NewClient(baseURL, token string, logger *logrus.Logger, opts ...ClientOption) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	httpClient := oauth2.NewClient(context.Background(), ts)
	httpClient.Timeout = 30 * time.Second

	client := &Client{
		client:  httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

func (c *Client) get(ctx context.Context, path string, query url.Values, result interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return NewAssistantError(0, "request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewAssistantError(resp.StatusCode, "failed to read response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return NewAssistantError(resp.StatusCode, string(body), nil)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return NewAssistantError(resp.StatusCode, "failed to decode response", err)
		}
	}

	return nil
}

// GetRadar reads the radar resource, including the lastUpdated change
// sentinel used by sync polling.
func (c *Client) GetRadar(ctx context.Context, radarID string) (*models.Radar, error) {
	if radarID == "" {
		return nil, NewValidationError("radarID", "cannot be empty")
	}

	var radar models.Radar
	if err := c.get(ctx, "/api/radars/"+url.PathEscape(radarID), nil, &radar); err != nil {
		if apiErr, ok := err.(*AssistantError); ok && apiErr.StatusCode == http.StatusNotFound {
			return nil, NewRadarNotFoundError(radarID)
		}
		return nil, err
	}
	if radar.ID == "" {
		radar.ID = radarID
	}

	return &radar, nil
}

// TriggerSync asks the upstream to start a background sweep for the radar.
// Any 2xx status counts as an accepted trigger; on rejection the returned
// error carries the server's status text verbatim so the caller can surface
// it in progress reporting.
func (c *Client) TriggerSync(ctx context.Context, radarID string) error {
	if radarID == "" {
		return NewValidationError("radarID", "cannot be empty")
	}

	endpoint := c.baseURL + "/api/radars/" + url.PathEscape(radarID) + "/sync"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return NewAssistantError(0, "request failed", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return NewAssistantError(resp.StatusCode, resp.Status, nil)
	}

	return nil
}

// ListItems fetches the captured items for a radar.
func (c *Client) ListItems(ctx context.Context, radarID string) ([]models.CapturedItem, error) {
	if radarID == "" {
		return nil, NewValidationError("radarID", "cannot be empty")
	}

	var items []models.CapturedItem
	if err := c.get(ctx, "/api/radars/"+url.PathEscape(radarID)+"/items", nil, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// GetBriefing fetches the workspace briefing for a radar. Callers are
// expected to degrade a failure to an empty briefing with a "new" scenario.
func (c *Client) GetBriefing(ctx context.Context, radarID string) (*models.Briefing, error) {
	query := url.Values{}
	if radarID != "" {
		query.Set("radar_id", radarID)
	}

	var briefing models.Briefing
	if err := c.get(ctx, "/api/radars/briefing", query, &briefing); err != nil {
		return nil, err
	}

	return &briefing, nil
}

// ListThreads fetches the conversation threads for a radar, most recent
// first as ordered by the upstream. The ordering is not re-checked here.
func (c *Client) ListThreads(ctx context.Context, radarID string) ([]models.ConversationThread, error) {
	query := url.Values{}
	if radarID != "" {
		query.Set("radar_id", radarID)
	}

	var payload struct {
		Threads []models.ConversationThread `json:"threads"`
	}
	if err := c.get(ctx, "/api/threads", query, &payload); err != nil {
		return nil, err
	}

	return payload.Threads, nil
}

// LoadSession loads the full message history and session-scoped documents
// for a thread.
func (c *Client) LoadSession(ctx context.Context, threadID string) (*models.SessionHistory, error) {
	if threadID == "" {
		return nil, NewValidationError("threadID", "cannot be empty")
	}

	var history models.SessionHistory
	if err := c.get(ctx, "/api/session/"+url.PathEscape(threadID), nil, &history); err != nil {
		return nil, err
	}

	return &history, nil
}
