// Package postgres contains the concrete implementation of the audit store using GORM and PostgreSQL.
package postgres

import (
	"context"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// dispatchLogRepository implements the repository.DispatchLogRepository interface.
type dispatchLogRepository struct {
	db *gorm.DB
}

// NewDispatchLogRepository is the constructor for dispatchLogRepository.
func NewDispatchLogRepository(db *gorm.DB) repository.DispatchLogRepository {
	return &dispatchLogRepository{
		db: db,
	}
}

// SaveReport persists the report header and its recipient rows.
func (repo *dispatchLogRepository) SaveReport(ctx context.Context, report *entity.DispatchReport) error {
	reportM := fromDispatchReportDomain(report)

	if err := repo.db.WithContext(ctx).Create(reportM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("dispatch report already recorded")
		}
		if isIncompleteRow(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("incomplete dispatch report")
		}

		return domainerrors.NewPersistenceError(err, "failed to save dispatch report")
	}

	return nil
}

// ListReports returns the latest reports of a family, newest first.
func (repo *dispatchLogRepository) ListReports(ctx context.Context, familyID uuid.UUID, limit int) ([]*entity.DispatchReport, error) {
	var reportModels []*model.DispatchReportModel

	query := repo.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("dispatched_at DESC").
		Preload("Recipients", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&reportModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list dispatch reports")
	}

	reports := make([]*entity.DispatchReport, 0, len(reportModels))
	for _, reportM := range reportModels {
		reports = append(reports, toDispatchReportDomain(reportM))
	}

	return reports, nil
}

func fromDispatchReportDomain(report *entity.DispatchReport) *model.DispatchReportModel {
	recipients := make([]model.DispatchRecipientModel, 0, len(report.PerRecipient))
	for i, outcome := range report.PerRecipient {
		recipients = append(recipients, model.DispatchRecipientModel{
			ReportID:  report.ID,
			Position:  i,
			Token:     entity.TruncateToken(outcome.Token),
			Success:   outcome.Success,
			MessageID: outcome.MessageID,
			Error:     outcome.Error,
		})
	}

	return &model.DispatchReportModel{
		ID:           report.ID,
		FamilyID:     report.FamilyID,
		Kind:         string(report.Kind),
		Strategy:     report.Strategy,
		Sent:         report.Sent,
		Total:        report.Total,
		DispatchedAt: report.DispatchedAt,
		Recipients:   recipients,
	}
}

func toDispatchReportDomain(reportM *model.DispatchReportModel) *entity.DispatchReport {
	outcomes := make([]entity.RecipientOutcome, 0, len(reportM.Recipients))
	for _, recipient := range reportM.Recipients {
		outcomes = append(outcomes, entity.RecipientOutcome{
			Token:     recipient.Token,
			Success:   recipient.Success,
			MessageID: recipient.MessageID,
			Error:     recipient.Error,
		})
	}

	return &entity.DispatchReport{
		ID:           reportM.ID,
		FamilyID:     reportM.FamilyID,
		Kind:         entity.MessageKind(reportM.Kind),
		Strategy:     reportM.Strategy,
		Sent:         reportM.Sent,
		Total:        reportM.Total,
		PerRecipient: outcomes,
		DispatchedAt: reportM.DispatchedAt,
	}
}
