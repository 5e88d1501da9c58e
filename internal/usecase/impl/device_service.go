package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"lifeline/internal/domain/constants"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/errors"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	registry   usecase.CodeRegistryUsecase
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
	now        func() time.Time
}

// NewDeviceService creates a new device service instance
func NewDeviceService(
	registry usecase.CodeRegistryUsecase,
	deviceRepo repository.DeviceRepository,
	logger *slog.Logger,
) usecase.DeviceUsecase {
	return &deviceService{
		registry:   registry,
		deviceRepo: deviceRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// RegisterDevice registers a new device or refreshes the token of an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, code string, deviceInfo *usecase.DeviceInfo) (*entity.Device, error) {
	if deviceInfo == nil || strings.TrimSpace(deviceInfo.FCMToken) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcm_token is required")
	}

	family, err := s.registry.Lookup(ctx, code)
	if err != nil {
		return nil, err
	}
	if !family.IsPaired() {
		return nil, domainerrors.ErrCodeNotFound.WithDetails("family is not paired")
	}

	device, err := s.deviceRepo.UpsertDevice(ctx, newDevice(family, deviceInfo, s.now()))
	if err != nil {
		return nil, domainerrors.NewPersistenceError(err, "upsert device")
	}

	s.logger.Info("Device registered",
		slog.String("family_id", family.ID.String()),
		slog.String("device_id", device.DeviceID),
		slog.String("token", entity.TruncateToken(device.Token)),
	)

	return device, nil
}

// RemoveDevice deletes a registration
func (s *deviceService) RemoveDevice(ctx context.Context, id uuid.UUID) error {
	err := s.deviceRepo.DeleteDevice(ctx, id)
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return domainerrors.ErrDeviceNotFound
	}
	if err != nil {
		return domainerrors.NewPersistenceError(err, "delete device")
	}

	return nil
}

// newDevice builds a registration under the family's connection code. The
// repository keys registrations by code and client device ID, so the ID set
// here is kept only for new records.
func newDevice(family *entity.Family, info *usecase.DeviceInfo, now time.Time) *entity.Device {
	platform := strings.ToLower(info.Platform)
	switch platform {
	case constants.PlatformIOS, constants.PlatformAndroid:
	default:
		platform = ""
	}

	return &entity.Device{
		ID:             uuid.New(),
		ConnectionCode: family.ConnectionCode,
		FamilyID:       family.ID,
		DeviceID:       info.DeviceID,
		Token:          info.FCMToken,
		Platform:       platform,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
