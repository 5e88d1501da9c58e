package repository

import (
	"context"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
)

// DeviceRepository stores watcher device registrations.
type DeviceRepository interface {
	// UpsertDevice creates or refreshes the registration for (connection code, device ID).
	UpsertDevice(ctx context.Context, device *entity.Device) (*entity.Device, error)

	// FindDeviceByID retrieves a registration by its ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindDevicesByConnectionCode lists registrations for a connection code.
	FindDevicesByConnectionCode(ctx context.Context, code string) ([]*entity.Device, error)

	// DeleteDevice removes a registration by ID.
	DeleteDevice(ctx context.Context, id uuid.UUID) error

	// DeleteDevicesByToken removes every registration carrying one of tokens.
	DeleteDevicesByToken(ctx context.Context, tokens []string) (int, error)
}
