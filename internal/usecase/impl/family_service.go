package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/errors"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
)

type familyService struct {
	familyRepo repository.FamilyRepository
	logger     *slog.Logger
	now        func() time.Time
}

// NewFamilyService creates the subject-facing family service
func NewFamilyService(familyRepo repository.FamilyRepository, logger *slog.Logger) usecase.FamilyUsecase {
	return &familyService{
		familyRepo: familyRepo,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *familyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *familyService) GetFamily(ctx context.Context, id uuid.UUID) (*entity.Family, error) {
	family, err := s.familyRepo.FindFamilyByID(ctx, id)
	if err != nil {
		return nil, mapFamilyErr(err, "find family")
	}

	return family, nil
}

func (s *familyService) UpdateSettings(ctx context.Context, id uuid.UUID, settings entity.MonitorSettings) (*entity.Family, error) {
	if err := settings.Validate(); err != nil {
		return nil, domainerrors.ErrInvalidSettings.WithDetails(err.Error())
	}

	if err := s.familyRepo.UpdateSettings(ctx, id, settings); err != nil {
		return nil, mapFamilyErr(err, "update settings")
	}

	s.log(ctx).Info("Monitor settings updated",
		slog.String("family_id", id.String()),
		slog.Bool("monitoring_enabled", settings.MonitoringEnabled),
		slog.Int("alert_threshold_hours", settings.AlertThresholdHours),
	)

	return s.GetFamily(ctx, id)
}

// RecordActivity only moves lastActivityAt forward. Signals from the future
// are clamped to now so a skewed device clock cannot suppress alerts.
func (s *familyService) RecordActivity(ctx context.Context, id uuid.UUID, at time.Time) error {
	now := s.now()
	if at.IsZero() || at.After(now) {
		at = now
	}

	_, err := s.familyRepo.UpdateFamily(ctx, id, func(f *entity.Family) error {
		if f.LastActivityAt != nil && !at.After(*f.LastActivityAt) {
			return repository.ErrSkipUpdate
		}

		activityAt := at
		f.LastActivityAt = &activityAt
		f.UpdatedAt = now

		return nil
	})
	if err != nil {
		return mapFamilyErr(err, "record activity")
	}

	return nil
}

func (s *familyService) RecordLocation(ctx context.Context, id uuid.UUID, latitude, longitude float64, at time.Time) error {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
	}

	if at.IsZero() || at.After(s.now()) {
		at = s.now()
	}

	location := entity.Location{Latitude: latitude, Longitude: longitude, At: at}
	if err := s.familyRepo.UpdateLocation(ctx, id, location); err != nil {
		return mapFamilyErr(err, "record location")
	}

	return nil
}

func mapFamilyErr(err error, op string) error {
	if errors.Is(err, repository.ErrFamilyNotFound) {
		return domainerrors.ErrFamilyNotFound
	}

	return domainerrors.NewPersistenceError(err, op)
}
