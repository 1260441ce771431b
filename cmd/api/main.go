package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Damandeep1313/Kling2.0/internal/http/handlers"
	httpapi "github.com/Damandeep1313/Kling2.0/internal/http/httpapi"
	"github.com/Damandeep1313/Kling2.0/internal/infra"
	"github.com/Damandeep1313/Kling2.0/internal/providers/kling"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	client := kling.NewClient(kling.Options{
		BaseURL:      cfg.KlingBaseURL,
		Logger:       &logger,
		PollInterval: cfg.PollInterval,
	})

	app := handlers.NewApp(client, &logger, cfg.PollMaxWait)

	router := httpapi.NewRouter(app, cfg, logger)

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
