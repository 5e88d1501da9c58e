package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"testing"
	"time"

	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDispatchReportMapping(t *testing.T) {
	report := &entity.DispatchReport{
		ID:       uuid.New(),
		FamilyID: uuid.New(),
		Kind:     entity.MessageInactivity,
		Strategy: "device_registrations",
		Sent:     1,
		Total:    2,
		PerRecipient: []entity.RecipientOutcome{
			{Token: "abcdefghijklmnop", Success: true, MessageID: "projects/x/messages/1"},
			{Token: "short", Error: "unregistered"},
		},
		DispatchedAt: time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC),
	}

	reportM := fromDispatchReportDomain(report)
	require.Len(t, reportM.Recipients, 2)
	assert.Equal(t, "abcdefgh...", reportM.Recipients[0].Token)
	assert.Equal(t, 1, reportM.Recipients[1].Position)
	assert.Equal(t, report.ID, reportM.Recipients[1].ReportID)

	back := toDispatchReportDomain(reportM)
	assert.Equal(t, report.ID, back.ID)
	assert.Equal(t, report.Kind, back.Kind)
	assert.Equal(t, 1, back.Sent)
	assert.Equal(t, 2, back.Total)
	assert.Equal(t, "abcdefgh...", back.PerRecipient[0].Token)
	assert.Equal(t, "unregistered", back.PerRecipient[1].Error)
}

func TestNewTransactionManager_NilDBDisablesAudit(t *testing.T) {
	assert.Nil(t, NewTransactionManager(nil))
}

func TestConstraintClassification(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "dispatch_reports_pkey" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))

	assert.True(t, isIncompleteRow(gorm.ErrCheckConstraintViolated))
	assert.True(t, isIncompleteRow(errors.New(`ERROR: null value in column "family_id" (SQLSTATE 23502)`)))
	assert.False(t, isIncompleteRow(gorm.ErrDuplicatedKey))
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&base, nil)), nil)

	requestLogger := slog.New(slog.NewJSONHandler(&scoped, nil))
	ctx := deliverycontext.WithLogger(context.Background(), requestLogger)

	l.Trace(ctx, time.Now(), func() (string, int64) { return "INSERT", 1 }, errors.New("boom"))
	assert.Contains(t, scoped.String(), "Audit query failed")
	assert.Empty(t, base.String())

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT", 0 }, gorm.ErrRecordNotFound)
	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT", 0 }, nil)
	assert.Empty(t, base.String(), "not-found and fast queries stay below warn")

	l.Warn(context.Background(), "pool %s", "busy")
	assert.Contains(t, base.String(), "pool busy")
	assert.Contains(t, base.String(), `"component":"audit"`)
}

func TestPoolWait(t *testing.T) {
	prev := sql.DBStats{WaitCount: 4, WaitDuration: 10 * time.Millisecond}

	_, _, ok := poolWait(prev, prev)
	assert.False(t, ok)

	attrs, level, ok := poolWait(prev, sql.DBStats{WaitCount: 6, WaitDuration: 110 * time.Millisecond, MaxOpenConnections: 4})
	require.True(t, ok)
	assert.Equal(t, slog.LevelWarn, level)
	assert.Contains(t, attrs, slog.Duration("avg_wait", 50*time.Millisecond))

	_, level, ok = poolWait(prev, sql.DBStats{WaitCount: 5, WaitDuration: 20 * time.Millisecond})
	require.True(t, ok)
	assert.Equal(t, slog.LevelDebug, level)
}
