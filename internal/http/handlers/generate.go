package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"lookbook/internal/domain"
	"lookbook/internal/imagegen"
	"lookbook/internal/providers/tuzi"
)

type generateRequest struct {
	TokenKey    string `json:"tokenKey"`
	ImageBase64 string `json:"imageBase64"`
	UserPrompt  string `json:"userPrompt"`
	Gender      string `json:"gender"`
	Age         string `json:"age"`
}

type generateResponse struct {
	Success        bool   `json:"success"`
	ImageURL       string `json:"imageUrl"`
	RemainingQuota int    `json:"remainingQuota"`
}

// Generate runs one try-on generation: validate, check quota, call the
// upstream editor, then consume one quota unit and record the image. Every
// successful call costs one unit; retries are never free.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.TokenKey == "" || req.ImageBase64 == "" {
		a.error(w, http.StatusBadRequest, "tokenKey and imageBase64 are required")
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
	if token.Quota <= 0 {
		a.error(w, http.StatusForbidden, "token quota exhausted")
		return
	}

	prompt := imagegen.ComposePrompt(req.Age, req.Gender, req.UserPrompt)

	imageData, imageMIME, err := imagegen.DecodeDataURI(req.ImageBase64)
	if err != nil {
		a.Logger.Error().Err(err).Msg("invalid image upload")
		a.error(w, http.StatusInternalServerError, "invalid image payload")
		return
	}

	a.Logger.Info().
		Str("token", maskKey(token.Key)).
		Int("quota", token.Quota).
		Str("prompt", prompt).
		Msg("starting generation")

	result, err := a.Editor.EditImage(r.Context(), tuzi.EditRequest{
		Prompt:    prompt,
		ImageData: imageData,
		ImageMIME: imageMIME,
	})
	if err != nil {
		a.Logger.Error().Err(err).Str("token", maskKey(token.Key)).Msg("upstream generation failed")
		a.error(w, http.StatusInternalServerError, upstreamErrorMessage(err))
		return
	}

	remaining, err := a.Store.ConsumeQuota(r.Context(), req.TokenKey, result.URL, prompt)
	if err != nil {
		if errors.Is(err, domain.ErrQuotaExceeded) {
			// A concurrent request consumed the last unit between our quota
			// check and the conditional decrement.
			a.error(w, http.StatusForbidden, "token quota exhausted")
			return
		}
		a.Logger.Error().Err(err).Str("token", maskKey(token.Key)).Msg("failed to record generation")
		a.error(w, http.StatusInternalServerError, "internal error")
		return
	}

	a.Logger.Info().
		Str("token", maskKey(token.Key)).
		Str("image_url", result.URL).
		Int("remaining_quota", remaining).
		Msg("generation succeeded")

	a.json(w, http.StatusOK, generateResponse{
		Success:        true,
		ImageURL:       result.URL,
		RemainingQuota: remaining,
	})
}

// upstreamErrorMessage extracts a user-presentable message from a provider
// error, substituting a generic one when there is no detail to pass through.
func upstreamErrorMessage(err error) string {
	msg := strings.TrimSpace(strings.TrimPrefix(err.Error(), "tuzi:"))
	if msg == "" {
		return "image generation failed"
	}
	return msg
}
