package repository

import (
	"context"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// TransactionManager runs a unit of work against the relational audit store.
type TransactionManager interface {
	// Execute runs fn within a database transaction. An error from fn rolls back.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repositories bound to a specific transaction.
type RepositoryFactory interface {
	NewDispatchLogRepository() DispatchLogRepository
}

// DispatchLogRepository keeps an audit trail of notification fan-outs.
type DispatchLogRepository interface {
	// SaveReport stores the report header and one row per recipient.
	SaveReport(ctx context.Context, report *entity.DispatchReport) error

	// ListReports returns the latest reports for a family, newest first.
	ListReports(ctx context.Context, familyID uuid.UUID, limit int) ([]*entity.DispatchReport, error)
}
