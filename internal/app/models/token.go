package models

import "time"

// RefreshToken is a stored, revocable refresh token
type RefreshToken struct {
	Token      string
	UserID     int64
	ExpiryDate time.Time
	IsRevoked  bool
	CreatedAt  time.Time
}

// IsValid checks whether the token can still be exchanged
func (rt *RefreshToken) IsValid() bool {
	return !rt.IsRevoked && rt.ExpiryDate.After(time.Now())
}
