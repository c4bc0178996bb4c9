package domain

import (
	"time"

	"github.com/google/uuid"
)

// Token is a quota-bearing access credential. Tokens are minted out-of-band
// by the tokengen tool and are only ever mutated by the generation workflow,
// which decrements Quota by one per successful generation.
type Token struct {
	ID        uuid.UUID
	Key       string
	Quota     int
	CreatedAt time.Time
}

// Image records one generated artifact owned by a Token. Rows are written
// exactly once and never updated.
type Image struct {
	ID        uuid.UUID
	TokenID   uuid.UUID
	URL       string
	Prompt    string
	CreatedAt time.Time
}
