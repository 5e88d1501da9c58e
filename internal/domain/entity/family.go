// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ApprovalState is the watcher's pairing decision. It is written once.
type ApprovalState string

const (
	ApprovalUnset    ApprovalState = "unset"
	ApprovalApproved ApprovalState = "approved"
	ApprovalRejected ApprovalState = "rejected"
)

// Decided reports whether a watcher has approved or rejected.
func (s ApprovalState) Decided() bool {
	return s == ApprovalApproved || s == ApprovalRejected
}

// ParseDecision accepts only the two watcher decisions.
func ParseDecision(raw string) (ApprovalState, bool) {
	switch ApprovalState(raw) {
	case ApprovalApproved:
		return ApprovalApproved, true
	case ApprovalRejected:
		return ApprovalRejected, true
	default:
		return "", false
	}
}

// Family is the unit of monitoring: one primary device and its watchers.
type Family struct {
	ID              uuid.UUID       `json:"id"`                         // Immutable identifier created at setup.
	ConnectionCode  string          `json:"connection_code"`            // 4-digit pairing code; kept after pairing.
	SubjectName     string          `json:"subject_name"`               // Display name of the monitored person.
	RecipientTokens []string        `json:"recipient_tokens,omitempty"` // Legacy embedded push tokens.
	Settings        MonitorSettings `json:"settings"`
	LastActivityAt  *time.Time      `json:"last_activity_at,omitempty"`
	LastLocation    *Location       `json:"last_location,omitempty"`
	AlertState      AlertState      `json:"alert_state"`
	ApprovalState   ApprovalState   `json:"approval_state"`
	PairedAt        *time.Time      `json:"paired_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// IsPaired reports whether a watcher approved this family.
func (f *Family) IsPaired() bool {
	return f.ApprovalState == ApprovalApproved
}

// HoursInactive returns whole hours since the last activity signal, floored.
// ok is false when no baseline exists. Activity stamped in the future counts as zero.
func (f *Family) HoursInactive(now time.Time) (hours int, ok bool) {
	if f.LastActivityAt == nil {
		return 0, false
	}

	elapsed := now.Sub(*f.LastActivityAt)
	if elapsed < 0 {
		return 0, true
	}

	return int(elapsed / time.Hour), true
}
