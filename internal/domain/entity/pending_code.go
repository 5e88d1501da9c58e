package entity

import (
	"time"

	"github.com/google/uuid"
)

// PendingCode maps a connection code to a family while a handshake is open.
type PendingCode struct {
	Code      string    `json:"code"`
	FamilyID  uuid.UUID `json:"family_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the code is past its deadline at now.
func (p *PendingCode) IsExpired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}
