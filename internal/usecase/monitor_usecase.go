package usecase

import (
	"context"
	"time"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// TickReport summarizes one scheduler pass.
type TickReport struct {
	Now         time.Time     `json:"now"`
	Families    int           `json:"families"`
	Raised      int           `json:"raised"`
	Cleared     int           `json:"cleared"`
	Held        int           `json:"held"`
	Suppressed  int           `json:"suppressed"`
	NoBaseline  int           `json:"no_baseline"`
	Unchanged   int           `json:"unchanged"`
	Failed      int           `json:"failed"`
	Notified    int           `json:"notified"` // Raised alerts with at least one successful send
	PurgedCodes int           `json:"purged_codes"`
	Duration    time.Duration `json:"duration"`
}

// MonitorUsecase is the survival-monitoring scheduler.
type MonitorUsecase interface {
	// Tick evaluates every monitored family at now. It only fails when the
	// family list itself cannot be loaded.
	Tick(ctx context.Context, now time.Time) (*TickReport, error)

	// ResendAlert re-sends the inactivity notification of an active alert.
	ResendAlert(ctx context.Context, familyID uuid.UUID) (*entity.DispatchReport, error)
}

// NotificationUsecase is the notification fan-out.
type NotificationUsecase interface {
	// Notify resolves the family's recipients and sends kind to each of them.
	// Per-recipient failures are reported, not returned.
	Notify(ctx context.Context, familyID uuid.UUID, kind entity.MessageKind, payload entity.Payload) (*entity.DispatchReport, error)

	// GetDispatchHistory returns recent fan-out reports from the audit log.
	GetDispatchHistory(ctx context.Context, familyID uuid.UUID, limit int) ([]*entity.DispatchReport, error)
}
