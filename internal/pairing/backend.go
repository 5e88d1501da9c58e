package pairing

import (
	"context"
	"time"

	"lifeline/internal/domain/entity"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
)

// Backend is what the handshake needs from the server.
type Backend interface {
	SetupFamily(ctx context.Context, in *usecase.SetupInput) (*usecase.SetupResult, error)
	GetApproval(ctx context.Context, familyID uuid.UUID) (entity.ApprovalState, error)
	// WatchApproval blocks and reports approval changes until ctx is done.
	WatchApproval(ctx context.Context, familyID uuid.UUID, onChange func(entity.ApprovalState)) error
	// CancelPairing expires familyID's code and drops the family if it never
	// paired. A code since reissued to another family is left alone.
	CancelPairing(ctx context.Context, code string, familyID uuid.UUID) error
	RecordActivity(ctx context.Context, familyID uuid.UUID, at time.Time) error
}

type localBackend struct {
	usecase.PairingUsecase
	familyUC usecase.FamilyUsecase
}

// NewLocalBackend runs the handshake against in-process usecases.
func NewLocalBackend(pairingUC usecase.PairingUsecase, familyUC usecase.FamilyUsecase) Backend {
	return &localBackend{PairingUsecase: pairingUC, familyUC: familyUC}
}

func (b *localBackend) RecordActivity(ctx context.Context, familyID uuid.UUID, at time.Time) error {
	return b.familyUC.RecordActivity(ctx, familyID, at)
}
