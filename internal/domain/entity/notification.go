package entity

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// MessageKind names the logical notification being fanned out.
type MessageKind string

const (
	MessageInactivity MessageKind = "inactivity"
)

// Payload is the structured data delivered with a push message.
type Payload map[string]string

// InactivityPayload carries the alert context watchers need.
func InactivityPayload(f *Family, hoursInactive int) Payload {
	payload := Payload{
		"family_id":      f.ID.String(),
		"subject_name":   f.SubjectName,
		"hours_inactive": strconv.Itoa(hoursInactive),
	}

	if f.LastLocation != nil {
		payload["latitude"] = strconv.FormatFloat(f.LastLocation.Latitude, 'f', 6, 64)
		payload["longitude"] = strconv.FormatFloat(f.LastLocation.Longitude, 'f', 6, 64)
		payload["location_at"] = f.LastLocation.At.UTC().Format(time.RFC3339)
	}

	return payload
}

// RecipientOutcome is the result of one send.
type RecipientOutcome struct {
	Token     string `json:"token"` // Truncated for logs and responses.
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// DispatchReport aggregates one notify call.
type DispatchReport struct {
	ID           uuid.UUID          `json:"id"`
	FamilyID     uuid.UUID          `json:"family_id"`
	Kind         MessageKind        `json:"kind"`
	Strategy     string             `json:"strategy,omitempty"` // Recipient source that produced the tokens.
	Sent         int                `json:"sent"`
	Total        int                `json:"total"`
	PerRecipient []RecipientOutcome `json:"per_recipient"`
	DispatchedAt time.Time          `json:"dispatched_at"`
}

const visibleTokenChars = 8

// TruncateToken keeps the first characters of a push token for diagnostics.
func TruncateToken(token string) string {
	if len(token) <= visibleTokenChars {
		return token
	}

	return token[:visibleTokenChars] + "..."
}
