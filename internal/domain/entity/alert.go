package entity

import "time"

// AlertState is the per-family inactivity alert. IsActive only flips
// false->true through Raise and true->false through Clear.
type AlertState struct {
	IsActive      bool       `json:"is_active"`
	RaisedAt      *time.Time `json:"raised_at,omitempty"`
	HoursInactive *int       `json:"hours_inactive,omitempty"`
	ClearedAt     *time.Time `json:"cleared_at,omitempty"`
}

// RaisedAlert builds the state persisted when inactivity crosses the threshold.
func RaisedAlert(now time.Time, hoursInactive int) AlertState {
	return AlertState{
		IsActive:      true,
		RaisedAt:      &now,
		HoursInactive: &hoursInactive,
	}
}

// ClearedAlert builds the state persisted when activity resumes.
func ClearedAlert(now time.Time) AlertState {
	return AlertState{
		IsActive:  false,
		ClearedAt: &now,
	}
}

// AlertDecision is the outcome of evaluating one family at one instant.
type AlertDecision int

const (
	DecisionNone       AlertDecision = iota // Nothing to persist.
	DecisionNoBaseline                      // No activity ever recorded.
	DecisionSuppressed                      // Over threshold inside the sleep window.
	DecisionHold                            // Over threshold and already active.
	DecisionRaise
	DecisionClear
)

func (d AlertDecision) String() string {
	switch d {
	case DecisionNoBaseline:
		return "no_baseline"
	case DecisionSuppressed:
		return "suppressed"
	case DecisionHold:
		return "hold"
	case DecisionRaise:
		return "raise"
	case DecisionClear:
		return "clear"
	default:
		return "none"
	}
}

// EvaluateAlert decides what a tick must do for f at now. localNow is now in
// the subject's zone and is only used for the sleep window.
func EvaluateAlert(f *Family, now, localNow time.Time) (AlertDecision, int) {
	hours, ok := f.HoursInactive(now)
	if !ok {
		return DecisionNoBaseline, 0
	}

	if hours > f.Settings.AlertThresholdHours {
		switch {
		case IsSuppressed(localNow, f.Settings.SleepWindow):
			return DecisionSuppressed, hours
		case f.AlertState.IsActive:
			return DecisionHold, hours
		default:
			return DecisionRaise, hours
		}
	}

	if f.AlertState.IsActive {
		return DecisionClear, hours
	}

	return DecisionNone, hours
}
