package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"lookbook/internal/http/handlers"
	"lookbook/internal/http/httpapi"
	"lookbook/internal/infra"
	"lookbook/internal/providers/tuzi"
	"lookbook/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	runner := infra.NewSQLRunner(dbpool, logger)
	tokens := store.NewTokenStore(runner)
	if err := tokens.EnsureSchema(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to ensure schema")
	}

	editor, err := tuzi.NewClient(tuzi.Options{
		APIKey:         cfg.TuziAPIKey,
		BaseURL:        cfg.TuziBaseURL,
		Model:          cfg.TuziModel,
		Logger:         &logger,
		RequestTimeout: cfg.UpstreamTimeout,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build upstream client")
	}

	app := handlers.NewApp(cfg, logger, tokens, editor)
	router := httpapi.NewRouter(app)
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
