package usecase

import (
	"context"
	"time"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// CodeRegistryUsecase hands out and resolves 4-digit connection codes.
type CodeRegistryUsecase interface {
	// GenerateCode returns a code that is currently free. It fails with
	// ErrCodeSpaceExhausted once the attempt budget is spent.
	GenerateCode(ctx context.Context) (string, error)

	// IssueCode generates a code and stores its PendingCode for familyID.
	IssueCode(ctx context.Context, familyID uuid.UUID) (*entity.PendingCode, error)

	// Lookup resolves a code to its family, or ErrCodeNotFound.
	Lookup(ctx context.Context, code string) (*entity.Family, error)

	// Expire deletes the pending entry held by familyID. A missing entry, or
	// one that now belongs to another family, is not an error.
	Expire(ctx context.Context, code string, familyID uuid.UUID) error

	// PurgeExpired removes expired entries and their never-paired families.
	PurgeExpired(ctx context.Context, now time.Time) (int, error)
}

// SetupInput is what the primary device submits to start pairing.
type SetupInput struct {
	SubjectName     string
	Settings        *entity.MonitorSettings // nil uses service defaults
	RecipientTokens []string
}

// SetupResult is the issued code and the created family.
type SetupResult struct {
	Family    *entity.Family `json:"family"`
	Code      string         `json:"code"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DecisionInput is the watcher's approve or reject call.
type DecisionInput struct {
	Code     string
	Decision entity.ApprovalState
	Device   *DeviceInfo // registered under the code on approval
}

// DecisionResult reports the family after the decision. AlreadyDecided marks a no-op.
type DecisionResult struct {
	Family         *entity.Family `json:"family"`
	AlreadyDecided bool           `json:"already_decided"`
	Device         *entity.Device `json:"device,omitempty"`
}

// PairingUsecase is the server side of the pairing handshake.
type PairingUsecase interface {
	// SetupFamily creates an unpaired family and issues its connection code.
	SetupFamily(ctx context.Context, in *SetupInput) (*SetupResult, error)

	// SetApproval records the watcher decision exactly once.
	SetApproval(ctx context.Context, in *DecisionInput) (*DecisionResult, error)

	// GetApproval returns the current approval state (polling path).
	GetApproval(ctx context.Context, familyID uuid.UUID) (entity.ApprovalState, error)

	// WatchApproval streams approval changes until ctx is done (subscription path).
	WatchApproval(ctx context.Context, familyID uuid.UUID, onChange func(entity.ApprovalState)) error

	// CancelPairing expires familyID's code and deletes the family if it
	// never paired. It never touches another family holding the same code.
	CancelPairing(ctx context.Context, code string, familyID uuid.UUID) error
}
