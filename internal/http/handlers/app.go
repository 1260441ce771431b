package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Damandeep1313/Kling2.0/internal/infra"
	"github.com/Damandeep1313/Kling2.0/internal/providers/kling"
)

// App carries the handler dependencies: the provider client and the bound on
// how long one request may stay suspended in the poll loop.
type App struct {
	Kling       *kling.Client
	Logger      *infra.Logger
	PollMaxWait time.Duration
}

func NewApp(client *kling.Client, logger *infra.Logger, pollMaxWait time.Duration) *App {
	return &App{Kling: client, Logger: logger, PollMaxWait: pollMaxWait}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, map[string]string{"error": msg})
}
