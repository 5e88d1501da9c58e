package usecase

import (
	"context"
	"time"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// FamilyUsecase covers the subject-facing reads and writes on a family.
type FamilyUsecase interface {
	// GetFamily retrieves a family by ID.
	GetFamily(ctx context.Context, id uuid.UUID) (*entity.Family, error)

	// UpdateSettings validates and stores monitoring settings.
	UpdateSettings(ctx context.Context, id uuid.UUID, settings entity.MonitorSettings) (*entity.Family, error)

	// RecordActivity advances lastActivityAt. Older signals are ignored.
	RecordActivity(ctx context.Context, id uuid.UUID, at time.Time) error

	// RecordLocation stores the last reported position.
	RecordLocation(ctx context.Context, id uuid.UUID, latitude, longitude float64, at time.Time) error
}

// DeviceUsecase defines the interface for watcher device management
type DeviceUsecase interface {
	// RegisterDevice registers or refreshes a watcher device under a connection code.
	RegisterDevice(ctx context.Context, code string, deviceInfo *DeviceInfo) (*entity.Device, error)

	// RemoveDevice deletes a registration.
	RemoveDevice(ctx context.Context, id uuid.UUID) error
}
