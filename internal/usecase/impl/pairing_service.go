package impl

import (
	"context"
	"log/slog"
	"time"

	"lifeline/config"
	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/errors"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// pairingService implements the PairingUsecase interface.
type pairingService struct {
	registry         usecase.CodeRegistryUsecase
	familyRepo       repository.FamilyRepository
	deviceRepo       repository.DeviceRepository
	defaultThreshold int
	logger           *slog.Logger
	now              func() time.Time
}

// PairingServiceParams holds dependencies for PairingService, injected by Fx.
type PairingServiceParams struct {
	fx.In

	Registry   usecase.CodeRegistryUsecase
	FamilyRepo repository.FamilyRepository
	DeviceRepo repository.DeviceRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewPairingService creates the server side of the pairing handshake
func NewPairingService(params PairingServiceParams) usecase.PairingUsecase {
	threshold := config.DefaultAlertThresholdHours
	if params.Config != nil && params.Config.Monitor != nil && params.Config.Monitor.DefaultAlertThresholdHours > 0 {
		threshold = params.Config.Monitor.DefaultAlertThresholdHours
	}

	return &pairingService{
		registry:         params.Registry,
		familyRepo:       params.FamilyRepo,
		deviceRepo:       params.DeviceRepo,
		defaultThreshold: threshold,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (srv *pairingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SetupFamily issues the code first so a family never exists without one.
func (srv *pairingService) SetupFamily(ctx context.Context, in *usecase.SetupInput) (*usecase.SetupResult, error) {
	settings := entity.MonitorSettings{
		MonitoringEnabled:   true,
		AlertThresholdHours: srv.defaultThreshold,
	}
	if in.Settings != nil {
		settings = *in.Settings
	}
	if err := settings.Validate(); err != nil {
		return nil, domainerrors.ErrInvalidSettings.WithDetails(err.Error())
	}

	familyID := uuid.New()

	pending, err := srv.registry.IssueCode(ctx, familyID)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	family := &entity.Family{
		ID:              familyID,
		ConnectionCode:  pending.Code,
		SubjectName:     in.SubjectName,
		RecipientTokens: in.RecipientTokens,
		Settings:        settings,
		ApprovalState:   entity.ApprovalUnset,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := srv.familyRepo.CreateFamily(ctx, family); err != nil {
		if expireErr := srv.registry.Expire(ctx, pending.Code, familyID); expireErr != nil {
			srv.log(ctx).Warn("Failed to release code after family creation failed",
				slog.String("code", pending.Code),
				slog.Any("error", expireErr),
			)
		}

		return nil, domainerrors.NewPersistenceError(err, "create family")
	}

	srv.log(ctx).Info("Family created, waiting for approval",
		slog.String("family_id", familyID.String()),
		slog.String("code", pending.Code),
		slog.Time("expires_at", pending.ExpiresAt),
	)

	return &usecase.SetupResult{
		Family:    family,
		Code:      pending.Code,
		ExpiresAt: pending.ExpiresAt,
	}, nil
}

// SetApproval writes the watcher decision once. Later calls leave the first
// decision in place and report AlreadyDecided.
func (srv *pairingService) SetApproval(ctx context.Context, in *usecase.DecisionInput) (*usecase.DecisionResult, error) {
	if !in.Decision.Decided() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("decision must be approved or rejected")
	}

	family, err := srv.registry.Lookup(ctx, in.Code)
	if err != nil {
		return nil, err
	}

	var alreadyDecided bool
	now := srv.now()

	updated, err := srv.familyRepo.UpdateFamily(ctx, family.ID, func(f *entity.Family) error {
		alreadyDecided = f.ApprovalState.Decided()
		if alreadyDecided {
			return repository.ErrSkipUpdate
		}

		f.ApprovalState = in.Decision
		f.UpdatedAt = now
		if in.Decision == entity.ApprovalApproved {
			pairedAt := now
			f.PairedAt = &pairedAt
		}

		return nil
	})
	if errors.Is(err, repository.ErrFamilyNotFound) {
		return nil, domainerrors.ErrCodeNotFound
	}
	if err != nil {
		return nil, domainerrors.NewPersistenceError(err, "set approval")
	}

	result := &usecase.DecisionResult{Family: updated, AlreadyDecided: alreadyDecided}

	if alreadyDecided {
		srv.log(ctx).Info("Approval already decided",
			slog.String("family_id", updated.ID.String()),
			slog.String("state", string(updated.ApprovalState)),
		)
	} else {
		srv.log(ctx).Info("Approval decided",
			slog.String("family_id", updated.ID.String()),
			slog.String("state", string(updated.ApprovalState)),
		)
	}

	if !updated.IsPaired() {
		return result, nil
	}

	if !alreadyDecided {
		// The family keeps its code; only the pending entry goes.
		if err := srv.registry.Expire(ctx, updated.ConnectionCode, updated.ID); err != nil {
			srv.log(ctx).Warn("Failed to expire pending code after approval",
				slog.String("code", updated.ConnectionCode),
				slog.Any("error", err),
			)
		}
	}

	// Registration also runs on repeated approvals so a watcher can retry it.
	if in.Device != nil && in.Device.FCMToken != "" {
		device, err := srv.deviceRepo.UpsertDevice(ctx, newDevice(updated, in.Device, now))
		if err != nil {
			return nil, domainerrors.NewPersistenceError(err, "register watcher device")
		}
		result.Device = device
	}

	return result, nil
}

// GetApproval is the polling read of the handshake.
func (srv *pairingService) GetApproval(ctx context.Context, familyID uuid.UUID) (entity.ApprovalState, error) {
	family, err := srv.familyRepo.FindFamilyByID(ctx, familyID)
	if errors.Is(err, repository.ErrFamilyNotFound) {
		return "", domainerrors.ErrFamilyNotFound
	}
	if err != nil {
		return "", domainerrors.NewPersistenceError(err, "find family")
	}

	return family.ApprovalState, nil
}

// WatchApproval is the push path of the handshake.
func (srv *pairingService) WatchApproval(ctx context.Context, familyID uuid.UUID, onChange func(entity.ApprovalState)) error {
	err := srv.familyRepo.WatchApproval(ctx, familyID, onChange)
	if errors.Is(err, repository.ErrFamilyNotFound) {
		return domainerrors.ErrFamilyNotFound
	}
	if err != nil {
		return domainerrors.NewPersistenceError(err, "watch approval")
	}

	return nil
}

// CancelPairing tears down familyID's unpaired handshake. The code alone is
// not trusted: once expired it may already belong to another family.
// Unknown families are a no-op.
func (srv *pairingService) CancelPairing(ctx context.Context, code string, familyID uuid.UUID) error {
	family, err := srv.familyRepo.FindFamilyByID(ctx, familyID)
	switch {
	case errors.Is(err, repository.ErrFamilyNotFound):
		// Already reclaimed; drop a lingering entry if it is still ours.
		return srv.registry.Expire(ctx, code, familyID)
	case err != nil:
		return domainerrors.NewPersistenceError(err, "find family")
	}

	if family.IsPaired() {
		return domainerrors.ErrFamilyAlreadyPaired
	}

	deleted, err := srv.familyRepo.DeleteUnpairedFamily(ctx, familyID)
	if err != nil {
		return domainerrors.NewPersistenceError(err, "delete unpaired family")
	}
	if !deleted {
		// Approved between the read and the delete.
		current, findErr := srv.familyRepo.FindFamilyByID(ctx, familyID)
		if findErr == nil && current.IsPaired() {
			return domainerrors.ErrFamilyAlreadyPaired
		}
	}

	if err := srv.registry.Expire(ctx, code, familyID); err != nil {
		return err
	}

	srv.log(ctx).Info("Pairing cancelled",
		slog.String("family_id", familyID.String()),
		slog.String("code", code),
	)

	return nil
}
