package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Damandeep1313/Kling2.0/internal/auth"
	"github.com/Damandeep1313/Kling2.0/internal/providers/kling"
)

const (
	headerAccessKey = "X-API-KEY-AK"
	headerSecretKey = "X-API-KEY-SK"
)

func defaultTaskRequest() kling.TaskRequest {
	return kling.TaskRequest{
		Prompt:     "A sikh guy performing martial arts",
		Duration:   5,
		Resolution: "720p",
		FrameRate:  24,
		Style:      "cinematic",
	}
}

// GenerateVideo runs the whole pipeline for one caller: sign a short-lived
// bearer token from the caller's key material, submit the task, then hold
// the request open while polling until the video URL exists. The caller sees
// only pre-submission and submission-time failures; post-submission errors
// are retried inside the poll window.
func (a *App) GenerateVideo(w http.ResponseWriter, r *http.Request) {
	ak := r.Header.Get(headerAccessKey)
	sk := r.Header.Get(headerSecretKey)
	if ak == "" || sk == "" {
		a.error(w, http.StatusBadRequest, "Missing API keys in headers")
		return
	}

	task := defaultTaskRequest()
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil && !errors.Is(err, io.EOF) {
		a.error(w, http.StatusBadRequest, "invalid payload")
		return
	}

	token, err := auth.Sign(ak, sk)
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to sign provider token")
		a.error(w, http.StatusBadRequest, err.Error())
		return
	}

	taskID, err := a.Kling.CreateTask(r.Context(), token, task)
	if err != nil {
		a.Logger.Error().Err(err).Msg("video task submission failed")
		a.error(w, http.StatusInternalServerError, "Failed to generate video task.")
		return
	}

	ctx := r.Context()
	if a.PollMaxWait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.PollMaxWait)
		defer cancel()
	}
	videoURL, err := a.Kling.WaitForVideo(ctx, token, taskID)
	if err != nil {
		a.Logger.Error().Err(err).Str("task_id", taskID).Msg("video generation did not complete")
		a.error(w, http.StatusBadRequest, err.Error())
		return
	}

	a.json(w, http.StatusOK, map[string]string{
		"message":   "Video generation complete",
		"video_url": videoURL,
	})
}
