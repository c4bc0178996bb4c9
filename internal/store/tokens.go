package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"lookbook/internal/domain"
	"lookbook/internal/infra"
	"lookbook/internal/sqlinline"
)

// TokenStore persists tokens and their generated-image history.
type TokenStore struct {
	db infra.SQLExecutor
}

// NewTokenStore creates a TokenStore over the given SQL executor.
func NewTokenStore(db infra.SQLExecutor) *TokenStore {
	return &TokenStore{db: db}
}

// EnsureSchema creates the tokens and images tables if they do not exist.
func (s *TokenStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, sqlinline.QEnsureSchema)
	return err
}

// GetByKey fetches a token by its opaque key. Returns domain.ErrNotFound
// when no token matches.
func (s *TokenStore) GetByKey(ctx context.Context, key string) (*domain.Token, error) {
	row := s.db.QueryRow(ctx, sqlinline.QSelectTokenByKey, key)
	var t domain.Token
	if err := row.Scan(&t.ID, &t.Key, &t.Quota, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Create mints a new token with the given key and initial quota.
func (s *TokenStore) Create(ctx context.Context, key string, quota int) (uuid.UUID, error) {
	row := s.db.QueryRow(ctx, sqlinline.QInsertToken, key, quota)
	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// ConsumeQuota decrements the token's quota by one and records the generated
// image, in a single statement so the two writes cannot diverge. The
// decrement only applies while quota > 0; when the conditional update matches
// no row (unknown key, or a concurrent request consumed the last unit) it
// returns domain.ErrQuotaExceeded. The returned count is the quota after the
// decrement, taken from the same statement rather than a re-read.
func (s *TokenStore) ConsumeQuota(ctx context.Context, key, url, prompt string) (int, error) {
	row := s.db.QueryRow(ctx, sqlinline.QConsumeQuota, key, url, prompt)
	var tokenID uuid.UUID
	var remaining int
	if err := row.Scan(&tokenID, &remaining); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrQuotaExceeded
		}
		return 0, err
	}
	return remaining, nil
}

// ListImages returns the token's generated images, most recent first.
func (s *TokenStore) ListImages(ctx context.Context, tokenID uuid.UUID) ([]domain.Image, error) {
	rows, err := s.db.Query(ctx, sqlinline.QSelectTokenImages, tokenID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := []domain.Image{}
	for rows.Next() {
		var img domain.Image
		if err := rows.Scan(&img.ID, &img.TokenID, &img.URL, &img.Prompt, &img.CreatedAt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return images, nil
}
