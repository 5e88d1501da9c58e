// Package pairing is the primary-device side of the pairing handshake:
// issue a code, wait for the watcher decision and clean up on timeout.
package pairing

import "lifeline/internal/domain/entity"

// State of one handshake attempt
type State int32

const (
	StateIdle State = iota
	StateCodeIssued
	StateWaitingForApproval
	StateApproved
	StateRejected
	StateTimedOut
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCodeIssued:
		return "code_issued"
	case StateWaitingForApproval:
		return "waiting_for_approval"
	case StateApproved:
		return "approved"
	case StateRejected:
		return "rejected"
	case StateTimedOut:
		return "timed_out"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether the attempt is over.
func (s State) Terminal() bool {
	return s >= StateApproved
}

// Retryable reports whether a new attempt may start from s.
func (s State) Retryable() bool {
	return s == StateRejected || s == StateTimedOut || s == StateCancelled
}

func stateFor(approval entity.ApprovalState) (State, bool) {
	switch approval {
	case entity.ApprovalApproved:
		return StateApproved, true
	case entity.ApprovalRejected:
		return StateRejected, true
	default:
		return StateWaitingForApproval, false
	}
}
