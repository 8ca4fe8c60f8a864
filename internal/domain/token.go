package domain

import "time"

// RefreshToken is an opaque long-lived credential exchanged for new
// access tokens. Rotated on every use.
type RefreshToken struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired returns true if the token is no longer exchangeable.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
