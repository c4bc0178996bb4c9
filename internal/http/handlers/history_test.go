package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"lookbook/internal/domain"
)

func TestHistoryValidation(t *testing.T) {
	app := newTestApp(newStubStore(), &stubEditor{})

	rr := postJSON(t, app.History, map[string]any{})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestHistoryUnknownToken(t *testing.T) {
	app := newTestApp(newStubStore(), &stubEditor{})

	rr := postJSON(t, app.History, map[string]any{"tokenKey": "LOOK-2026-DEADBEEF"})

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rr.Code)
	}
}

func TestHistoryEmpty(t *testing.T) {
	store := newStubStore(&domain.Token{ID: uuid.New(), Key: "LOOK-2026-AAAA1111", Quota: 7})
	app := newTestApp(store, &stubEditor{})

	rr := postJSON(t, app.History, map[string]any{"tokenKey": "LOOK-2026-AAAA1111"})

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `"history":[]`) {
		t.Fatalf("empty history should serialize as [], got %s", rr.Body.String())
	}
	var resp historyResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.RemainingQuota != 7 {
		t.Fatalf("remainingQuota = %d, want 7", resp.RemainingQuota)
	}
}

func TestHistoryReturnsImagesNewestFirst(t *testing.T) {
	tokenID := uuid.New()
	store := newStubStore(&domain.Token{ID: tokenID, Key: "LOOK-2026-AAAA1111", Quota: 2})
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		// Prepend so the slice mirrors the store's createdAt DESC ordering.
		store.images[tokenID] = append([]domain.Image{{
			ID:        uuid.New(),
			TokenID:   tokenID,
			URL:       "https://cdn.example/" + string(rune('a'+i)) + ".png",
			Prompt:    "prompt",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}}, store.images[tokenID]...)
	}
	app := newTestApp(store, &stubEditor{})

	rr := postJSON(t, app.History, map[string]any{"tokenKey": "LOOK-2026-AAAA1111"})

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp historyResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatal("success = false")
	}
	if len(resp.History) != 3 {
		t.Fatalf("history len = %d, want 3", len(resp.History))
	}
	for i := 1; i < len(resp.History); i++ {
		if resp.History[i].CreatedAt.After(resp.History[i-1].CreatedAt) {
			t.Fatalf("history not ordered newest first: %v before %v",
				resp.History[i-1].CreatedAt, resp.History[i].CreatedAt)
		}
	}
	if resp.RemainingQuota != 2 {
		t.Fatalf("remainingQuota = %d, want 2", resp.RemainingQuota)
	}
}

func TestHistoryStoreFailure(t *testing.T) {
	store := newStubStore(&domain.Token{ID: uuid.New(), Key: "LOOK-2026-AAAA1111", Quota: 1})
	store.listErr = errors.New("connection reset")
	app := newTestApp(store, &stubEditor{})

	rr := postJSON(t, app.History, map[string]any{"tokenKey": "LOOK-2026-AAAA1111"})

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
}
