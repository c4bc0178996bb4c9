package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"lookbook/internal/domain"
)

type historyRequest struct {
	TokenKey string `json:"tokenKey"`
}

type historyItem struct {
	URL       string    `json:"url"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"createdAt"`
}

type historyResponse struct {
	Success        bool          `json:"success"`
	History        []historyItem `json:"history"`
	RemainingQuota int           `json:"remainingQuota"`
}

// History returns the token's generated images, most recent first, along with
// its current quota. Read-only.
func (a *App) History(w http.ResponseWriter, r *http.Request) {
	var req historyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.TokenKey == "" {
		a.error(w, http.StatusBadRequest, "tokenKey is required")
		return
	}

	token, err := a.Store.GetByKey(r.Context(), req.TokenKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusUnauthorized, "invalid token")
			return
		}
		a.Logger.Error().Err(err).Msg("token lookup failed")
		a.error(w, http.StatusInternalServerError, "internal error")
		return
	}

	images, err := a.Store.ListImages(r.Context(), token.ID)
	if err != nil {
		a.Logger.Error().Err(err).Str("token", maskKey(token.Key)).Msg("failed to load history")
		a.error(w, http.StatusInternalServerError, "internal error")
		return
	}

	history := make([]historyItem, 0, len(images))
	for _, img := range images {
		history = append(history, historyItem{
			URL:       img.URL,
			Prompt:    img.Prompt,
			CreatedAt: img.CreatedAt,
		})
	}

	a.json(w, http.StatusOK, historyResponse{
		Success:        true,
		History:        history,
		RemainingQuota: token.Quota,
	})
}
