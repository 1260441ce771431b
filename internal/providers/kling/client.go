package kling

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Damandeep1313/Kling2.0/internal/infra"
)

// ErrNoTaskID indicates that the provider accepted the request but did not
// return a task identifier.
var ErrNoTaskID = errors.New("kling: response carried no task id")

const text2videoPath = "/v1/videos/text2video"

// Options configures the Kling text-to-video client.
type Options struct {
	BaseURL        string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	PollInterval   time.Duration
	RequestTimeout time.Duration
}

// Client performs HTTP calls to the Kling text-to-video API. Authentication
// is per call: every method takes the bearer token issued for the inbound
// request it serves.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	logger       *infra.Logger
	pollInterval time.Duration
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.klingai.com"
	}
	pollInterval := opts.PollInterval
	if pollInterval <= 0 {
		pollInterval = 5 * time.Second
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{
		baseURL:      baseURL,
		httpClient:   httpClient,
		logger:       logger,
		pollInterval: pollInterval,
	}
}

// CreateTask submits one generation request and returns the provider-assigned
// task ID. Exactly one attempt is made; retries only ever happen at the
// polling stage, once a task exists.
func (c *Client) CreateTask(ctx context.Context, token string, req TaskRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("kling: encode request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+text2videoPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("kling: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	c.logger.Info().
		Str("prompt", req.Prompt).
		Int("duration", req.Duration).
		Str("resolution", req.Resolution).
		Int("frame_rate", req.FrameRate).
		Str("style", req.Style).
		Msg("kling: submitting video generation task")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("kling: http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("kling: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("kling: create task status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var decoded createTaskResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("kling: decode response: %w", err)
	}
	if decoded.Data.TaskID == "" {
		return "", ErrNoTaskID
	}
	c.logger.Info().Str("task_id", decoded.Data.TaskID).Msg("kling: task submitted")
	return decoded.Data.TaskID, nil
}

// GetTaskStatus fetches one status observation for a submitted task.
func (c *Client) GetTaskStatus(ctx context.Context, token, taskID string) (TaskStatus, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+text2videoPath+"/"+taskID, nil)
	if err != nil {
		return TaskStatus{}, fmt.Errorf("kling: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return TaskStatus{}, fmt.Errorf("kling: http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return TaskStatus{}, fmt.Errorf("kling: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return TaskStatus{}, fmt.Errorf("kling: task status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var decoded taskStatusResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return TaskStatus{}, fmt.Errorf("kling: decode response: %w", err)
	}
	status := TaskStatus{
		Status:  decoded.Data.TaskStatus,
		Message: decoded.Data.TaskStatusMsg,
	}
	if videos := decoded.Data.TaskResult.Videos; len(videos) > 0 {
		status.VideoURL = videos[0].URL
	}
	return status, nil
}
