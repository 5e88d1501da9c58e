package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device is a watcher device registered for push notifications under a
// family's connection code.
type Device struct {
	ID             uuid.UUID `json:"id"`
	ConnectionCode string    `json:"connection_code"` // Lookup key used by the fan-out.
	FamilyID       uuid.UUID `json:"family_id"`
	DeviceID       string    `json:"device_id"` // Client-side device identifier.
	Token          string    `json:"fcm_token"` // Firebase Cloud Messaging token.
	Platform       string    `json:"platform"`  // ios, android.
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CompanionDevice is a legacy per-family approval record that carries a token.
type CompanionDevice struct {
	Token    string `json:"token"`
	Approved bool   `json:"approved"`
}
