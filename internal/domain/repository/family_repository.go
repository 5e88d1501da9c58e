// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for family persistence.
var (
	// ErrFamilyNotFound is returned when a family document does not exist.
	ErrFamilyNotFound = errors.New("family not found")
	// ErrSkipUpdate is returned by a FamilyMutation to leave the record untouched.
	ErrSkipUpdate = errors.New("skip update")
)

// FamilyMutation edits a family inside an atomic read-modify-write. It may be
// invoked more than once when the store retries on contention, so it must only
// depend on the family it is handed.
type FamilyMutation func(family *entity.Family) error

// FamilyRepository defines the document-store operations on families.
type FamilyRepository interface {
	// CreateFamily persists a new family. The ID must already be set.
	CreateFamily(ctx context.Context, family *entity.Family) error

	// FindFamilyByID retrieves a family by ID.
	FindFamilyByID(ctx context.Context, id uuid.UUID) (*entity.Family, error)

	// FindPairedFamilyByCode retrieves the approved family holding code.
	FindPairedFamilyByCode(ctx context.Context, code string) (*entity.Family, error)

	// FindMonitoredFamilies returns every family with monitoring enabled.
	FindMonitoredFamilies(ctx context.Context) ([]*entity.Family, error)

	// UpdateFamily applies mutate atomically and returns the resulting family.
	// A mutation returning ErrSkipUpdate commits nothing and is not an error.
	UpdateFamily(ctx context.Context, id uuid.UUID, mutate FamilyMutation) (*entity.Family, error)

	// UpdateSettings merges the settings field only.
	UpdateSettings(ctx context.Context, id uuid.UUID, settings entity.MonitorSettings) error

	// UpdateLocation merges the lastLocation field only.
	UpdateLocation(ctx context.Context, id uuid.UUID, location entity.Location) error

	// DeleteUnpairedFamily atomically deletes the family unless it is approved.
	// deleted is false for paired or missing families.
	DeleteUnpairedFamily(ctx context.Context, id uuid.UUID) (deleted bool, err error)

	// WatchApproval calls onChange with the approval state on every change
	// until ctx is done. It returns nil on cancellation.
	WatchApproval(ctx context.Context, id uuid.UUID, onChange func(entity.ApprovalState)) error

	// FindApprovedCompanions lists the legacy companion sub-collection.
	FindApprovedCompanions(ctx context.Context, familyID uuid.UUID) ([]*entity.CompanionDevice, error)
}

// Domain-specific errors for pending code persistence.
var (
	// ErrCodeNotFound is returned when no pending entry exists for a code.
	ErrCodeNotFound = errors.New("pending code not found")
	// ErrCodeTaken is returned when creating an entry for a code that already has one.
	ErrCodeTaken = errors.New("pending code already exists")
)

// CodeRepository stores PendingCode entries keyed by the code itself.
type CodeRepository interface {
	// CreateCode inserts the entry, failing with ErrCodeTaken if one exists.
	CreateCode(ctx context.Context, code *entity.PendingCode) error

	// FindCode returns the entry for code, expired or not.
	FindCode(ctx context.Context, code string) (*entity.PendingCode, error)

	// DeleteCode removes the entry only while it is held by familyID. A
	// missing entry, or one reissued to another family, is left alone and is
	// not an error.
	DeleteCode(ctx context.Context, code string, familyID uuid.UUID) error

	// FindExpiredCodes returns up to limit entries expired at now.
	FindExpiredCodes(ctx context.Context, now time.Time, limit int) ([]*entity.PendingCode, error)
}
