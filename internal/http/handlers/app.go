package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"lookbook/internal/domain"
	"lookbook/internal/infra"
	"lookbook/internal/providers/tuzi"
)

// Store is the persistence contract the handlers depend on.
type Store interface {
	GetByKey(ctx context.Context, key string) (*domain.Token, error)
	ConsumeQuota(ctx context.Context, key, url, prompt string) (int, error)
	ListImages(ctx context.Context, tokenID uuid.UUID) ([]domain.Image, error)
}

// ImageEditor performs the upstream image edit call.
type ImageEditor interface {
	EditImage(ctx context.Context, req tuzi.EditRequest) (*tuzi.EditResult, error)
}

// App carries the dependencies shared by all HTTP handlers.
type App struct {
	Config *infra.Config
	Logger zerolog.Logger
	Store  Store
	Editor ImageEditor
}

func NewApp(cfg *infra.Config, logger zerolog.Logger, store Store, editor ImageEditor) *App {
	return &App{Config: cfg, Logger: logger, Store: store, Editor: editor}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, map[string]string{"error": msg})
}

// maskKey redacts a token key for log output, keeping only the last four
// characters so operators can correlate requests without exposing the secret.
func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "..." + key[len(key)-4:]
}
