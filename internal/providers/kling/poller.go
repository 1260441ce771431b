package kling

import (
	"context"
	"fmt"
	"time"

	"github.com/Damandeep1313/Kling2.0/internal/domain"
)

// WaitForVideo polls the task until a video URL is available. Transport
// errors, non-2xx responses and unknown statuses are treated as still
// pending and retried after the poll interval; only an explicit provider
// failure or context cancellation ends the loop early. A terminal-success
// status whose result carries no URL keeps polling, the provider publishes
// the URL slightly after flipping the status.
func (c *Client) WaitForVideo(ctx context.Context, token, taskID string) (string, error) {
	c.logger.Info().
		Str("task_id", taskID).
		Dur("interval", c.pollInterval).
		Msg("kling: waiting for video generation to complete")

	for {
		status, err := c.GetTaskStatus(ctx, token, taskID)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			c.logger.Warn().Err(err).Str("task_id", taskID).Msg("kling: status check failed, retrying")
		case status.Failed():
			if status.Message != "" {
				return "", fmt.Errorf("%w: %s", domain.ErrTaskFailed, status.Message)
			}
			return "", domain.ErrTaskFailed
		case status.Succeeded():
			if status.VideoURL != "" {
				c.logger.Info().Str("task_id", taskID).Str("url", status.VideoURL).Msg("kling: video is ready")
				return status.VideoURL, nil
			}
			c.logger.Info().Str("task_id", taskID).Msg("kling: task ready but url not provided yet, retrying")
		default:
			c.logger.Debug().Str("task_id", taskID).Str("status", status.Status).Msg("kling: task still pending")
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.pollInterval):
		}
	}
}
