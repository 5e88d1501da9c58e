package firestore

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEmulatorClient connects to the Firestore emulator named by
// FIRESTORE_EMULATOR_HOST and skips the test otherwise.
func newEmulatorClient(t *testing.T) *fs.Client {
	t.Helper()

	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set, skipping integration test")
	}

	client, err := fs.NewClient(context.Background(), "lifeline-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestFamilyRepository_Integration(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	repo := NewFamilyRepository(client, slog.Default())

	now := time.Now().UTC().Truncate(time.Millisecond)
	family := &entity.Family{
		ID:             uuid.New(),
		ConnectionCode: "9876",
		SubjectName:    "Grandpa",
		Settings:       entity.MonitorSettings{MonitoringEnabled: true, AlertThresholdHours: 12},
		ApprovalState:  entity.ApprovalUnset,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, repo.CreateFamily(ctx, family))

	updated, err := repo.UpdateFamily(ctx, family.ID, func(f *entity.Family) error {
		f.ApprovalState = entity.ApprovalApproved
		f.PairedAt = &now

		return nil
	})
	require.NoError(t, err)
	assert.True(t, updated.IsPaired())

	byCode, err := repo.FindPairedFamilyByCode(ctx, "9876")
	require.NoError(t, err)
	assert.Equal(t, family.ID, byCode.ID)

	deleted, err := repo.DeleteUnpairedFamily(ctx, family.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "paired families are never deleted")

	_, err = repo.FindFamilyByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrFamilyNotFound)
}

func TestCodeRepository_Integration(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	repo := NewCodeRepository(client, slog.Default())

	now := time.Now().UTC()
	pending := &entity.PendingCode{Code: "5555", FamilyID: uuid.New(), CreatedAt: now, ExpiresAt: now.Add(-time.Second)}
	require.NoError(t, repo.CreateCode(ctx, pending))
	t.Cleanup(func() { _ = repo.DeleteCode(ctx, "5555", pending.FamilyID) })

	assert.ErrorIs(t, repo.CreateCode(ctx, pending), repository.ErrCodeTaken)

	expired, err := repo.FindExpiredCodes(ctx, now, 10)
	require.NoError(t, err)
	assert.NotEmpty(t, expired)

	// Another family's cleanup leaves the entry alone.
	require.NoError(t, repo.DeleteCode(ctx, "5555", uuid.New()))
	held, err := repo.FindCode(ctx, "5555")
	require.NoError(t, err)
	assert.Equal(t, pending.FamilyID, held.FamilyID)

	require.NoError(t, repo.DeleteCode(ctx, "5555", pending.FamilyID))
	_, err = repo.FindCode(ctx, "5555")
	assert.ErrorIs(t, err, repository.ErrCodeNotFound)

	require.NoError(t, repo.DeleteCode(ctx, "5555", pending.FamilyID), "missing entries are not an error")
}
