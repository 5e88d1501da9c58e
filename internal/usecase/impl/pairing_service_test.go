package impl

import (
	"context"
	"testing"
	"time"

	"lifeline/config"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	mockRepo "lifeline/internal/mocks/repository"
	mockUsecase "lifeline/internal/mocks/usecase"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pairingServiceFixtures struct {
	service    *pairingService
	registry   *mockUsecase.MockCodeRegistryUsecase
	familyRepo *mockRepo.MockFamilyRepository
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestPairingService(t *testing.T) pairingServiceFixtures {
	registry := mockUsecase.NewMockCodeRegistryUsecase(t)
	familyRepo := mockRepo.NewMockFamilyRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	service := NewPairingService(PairingServiceParams{
		Registry:   registry,
		FamilyRepo: familyRepo,
		DeviceRepo: deviceRepo,
		Config:     &config.Config{Monitor: &config.MonitorConfig{DefaultAlertThresholdHours: 12}},
		Logger:     discardLogger(),
	}).(*pairingService)
	service.now = func() time.Time { return testNow }

	return pairingServiceFixtures{
		service:    service,
		registry:   registry,
		familyRepo: familyRepo,
		deviceRepo: deviceRepo,
	}
}

// applyMutation runs mutate against a copy of family the way the store would.
func applyMutation(family *entity.Family) func(context.Context, uuid.UUID, repository.FamilyMutation) (*entity.Family, error) {
	return func(_ context.Context, _ uuid.UUID, mutate repository.FamilyMutation) (*entity.Family, error) {
		current := *family
		if err := mutate(&current); err != nil {
			if errors.Is(err, repository.ErrSkipUpdate) {
				return family, nil
			}

			return nil, err
		}
		*family = current

		return family, nil
	}
}

func TestPairingService_SetupFamily_Defaults(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()

	fx.registry.EXPECT().IssueCode(ctx, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(_ context.Context, familyID uuid.UUID) (*entity.PendingCode, error) {
			return &entity.PendingCode{Code: "0042", FamilyID: familyID, ExpiresAt: testNow.Add(2 * time.Minute)}, nil
		})
	fx.familyRepo.EXPECT().CreateFamily(ctx, mock.AnythingOfType("*entity.Family")).Return(nil)

	result, err := fx.service.SetupFamily(ctx, &usecase.SetupInput{SubjectName: "Grandma"})
	require.NoError(t, err)
	assert.Equal(t, "0042", result.Code)
	assert.Equal(t, "0042", result.Family.ConnectionCode)
	assert.Equal(t, entity.ApprovalUnset, result.Family.ApprovalState)
	assert.True(t, result.Family.Settings.MonitoringEnabled)
	assert.Equal(t, 12, result.Family.Settings.AlertThresholdHours)
	assert.Equal(t, testNow.Add(2*time.Minute), result.ExpiresAt)
}

func TestPairingService_SetupFamily_InvalidSettings(t *testing.T) {
	fx := createTestPairingService(t)

	_, err := fx.service.SetupFamily(context.Background(), &usecase.SetupInput{
		Settings: &entity.MonitorSettings{AlertThresholdHours: 0},
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSettings)
}

func TestPairingService_SetupFamily_CodeSpaceExhausted(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()

	fx.registry.EXPECT().IssueCode(ctx, mock.Anything).Return(nil, domainerrors.ErrCodeSpaceExhausted)

	_, err := fx.service.SetupFamily(ctx, &usecase.SetupInput{SubjectName: "Grandma"})
	assert.ErrorIs(t, err, domainerrors.ErrCodeSpaceExhausted)
}

func TestPairingService_SetupFamily_CreateFailsReleasesCode(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()

	fx.registry.EXPECT().IssueCode(ctx, mock.Anything).Return(&entity.PendingCode{Code: "0042"}, nil)
	fx.familyRepo.EXPECT().CreateFamily(ctx, mock.Anything).Return(errors.New("unavailable"))
	fx.registry.EXPECT().Expire(ctx, "0042", mock.AnythingOfType("uuid.UUID")).Return(nil)

	_, err := fx.service.SetupFamily(ctx, &usecase.SetupInput{SubjectName: "Grandma"})
	assert.ErrorIs(t, err, domainerrors.ErrPersistenceUnavailable)
}

func TestPairingService_SetApproval_ApproveRegistersDevice(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()
	family := &entity.Family{ID: uuid.New(), ConnectionCode: "0042", ApprovalState: entity.ApprovalUnset}

	fx.registry.EXPECT().Lookup(ctx, "0042").Return(family, nil)
	fx.familyRepo.EXPECT().UpdateFamily(ctx, family.ID, mock.Anything).RunAndReturn(applyMutation(family))
	fx.registry.EXPECT().Expire(ctx, "0042", family.ID).Return(nil)
	fx.deviceRepo.EXPECT().UpsertDevice(ctx, mock.AnythingOfType("*entity.Device")).
		RunAndReturn(func(_ context.Context, d *entity.Device) (*entity.Device, error) { return d, nil })

	result, err := fx.service.SetApproval(ctx, &usecase.DecisionInput{
		Code:     "0042",
		Decision: entity.ApprovalApproved,
		Device:   &usecase.DeviceInfo{FCMToken: "watcher-token", DeviceID: "pixel"},
	})
	require.NoError(t, err)
	assert.False(t, result.AlreadyDecided)
	assert.Equal(t, entity.ApprovalApproved, result.Family.ApprovalState)
	require.NotNil(t, result.Family.PairedAt)
	assert.Equal(t, testNow, *result.Family.PairedAt)
	require.NotNil(t, result.Device)
	assert.Equal(t, "0042", result.Device.ConnectionCode)
}

func TestPairingService_SetApproval_SecondCallIsNoop(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()
	family := &entity.Family{ID: uuid.New(), ConnectionCode: "0042", ApprovalState: entity.ApprovalUnset}

	fx.registry.EXPECT().Lookup(ctx, "0042").Return(family, nil)
	fx.familyRepo.EXPECT().UpdateFamily(ctx, family.ID, mock.Anything).RunAndReturn(applyMutation(family))
	fx.registry.EXPECT().Expire(ctx, "0042", family.ID).Return(nil).Once()

	first, err := fx.service.SetApproval(ctx, &usecase.DecisionInput{Code: "0042", Decision: entity.ApprovalApproved})
	require.NoError(t, err)
	assert.False(t, first.AlreadyDecided)

	// A late rejection cannot flip an approved family.
	second, err := fx.service.SetApproval(ctx, &usecase.DecisionInput{Code: "0042", Decision: entity.ApprovalRejected})
	require.NoError(t, err)
	assert.True(t, second.AlreadyDecided)
	assert.Equal(t, entity.ApprovalApproved, second.Family.ApprovalState)
}

func TestPairingService_SetApproval_RejectKeepsCode(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()
	family := &entity.Family{ID: uuid.New(), ConnectionCode: "0042", ApprovalState: entity.ApprovalUnset}

	fx.registry.EXPECT().Lookup(ctx, "0042").Return(family, nil)
	fx.familyRepo.EXPECT().UpdateFamily(ctx, family.ID, mock.Anything).RunAndReturn(applyMutation(family))

	result, err := fx.service.SetApproval(ctx, &usecase.DecisionInput{
		Code:     "0042",
		Decision: entity.ApprovalRejected,
		Device:   &usecase.DeviceInfo{FCMToken: "ignored"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalRejected, result.Family.ApprovalState)
	assert.Nil(t, result.Family.PairedAt)
	assert.Nil(t, result.Device)
}

func TestPairingService_SetApproval_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid decision", func(t *testing.T) {
		fx := createTestPairingService(t)

		_, err := fx.service.SetApproval(ctx, &usecase.DecisionInput{Code: "0042", Decision: entity.ApprovalUnset})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("code not found", func(t *testing.T) {
		fx := createTestPairingService(t)
		fx.registry.EXPECT().Lookup(ctx, "0042").Return(nil, domainerrors.ErrCodeNotFound)

		_, err := fx.service.SetApproval(ctx, &usecase.DecisionInput{Code: "0042", Decision: entity.ApprovalApproved})
		assert.ErrorIs(t, err, domainerrors.ErrCodeNotFound)
	})

	t.Run("family deleted after lookup", func(t *testing.T) {
		fx := createTestPairingService(t)
		id := uuid.New()
		fx.registry.EXPECT().Lookup(ctx, "0042").Return(&entity.Family{ID: id}, nil)
		fx.familyRepo.EXPECT().UpdateFamily(ctx, id, mock.Anything).Return(nil, repository.ErrFamilyNotFound)

		_, err := fx.service.SetApproval(ctx, &usecase.DecisionInput{Code: "0042", Decision: entity.ApprovalApproved})
		assert.ErrorIs(t, err, domainerrors.ErrCodeNotFound)
	})

	t.Run("store unavailable", func(t *testing.T) {
		fx := createTestPairingService(t)
		id := uuid.New()
		fx.registry.EXPECT().Lookup(ctx, "0042").Return(&entity.Family{ID: id}, nil)
		fx.familyRepo.EXPECT().UpdateFamily(ctx, id, mock.Anything).Return(nil, errors.New("aborted"))

		_, err := fx.service.SetApproval(ctx, &usecase.DecisionInput{Code: "0042", Decision: entity.ApprovalApproved})
		assert.ErrorIs(t, err, domainerrors.ErrPersistenceUnavailable)
	})
}

func TestPairingService_GetApproval(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.familyRepo.EXPECT().FindFamilyByID(ctx, id).
		Return(&entity.Family{ID: id, ApprovalState: entity.ApprovalRejected}, nil).Once()

	state, err := fx.service.GetApproval(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalRejected, state)

	missing := uuid.New()
	fx.familyRepo.EXPECT().FindFamilyByID(ctx, missing).Return(nil, repository.ErrFamilyNotFound).Once()

	_, err = fx.service.GetApproval(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrFamilyNotFound)
}

func TestPairingService_WatchApproval(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.familyRepo.EXPECT().WatchApproval(ctx, id, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, onChange func(entity.ApprovalState)) error {
			onChange(entity.ApprovalUnset)
			onChange(entity.ApprovalApproved)

			return nil
		})

	var seen []entity.ApprovalState
	err := fx.service.WatchApproval(ctx, id, func(s entity.ApprovalState) { seen = append(seen, s) })
	require.NoError(t, err)
	assert.Equal(t, []entity.ApprovalState{entity.ApprovalUnset, entity.ApprovalApproved}, seen)
}

func TestPairingService_CancelPairing(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes unpaired family and expires code", func(t *testing.T) {
		fx := createTestPairingService(t)
		family := &entity.Family{ID: uuid.New(), ConnectionCode: "0042"}

		fx.familyRepo.EXPECT().FindFamilyByID(ctx, family.ID).Return(family, nil)
		fx.familyRepo.EXPECT().DeleteUnpairedFamily(ctx, family.ID).Return(true, nil)
		fx.registry.EXPECT().Expire(ctx, "0042", family.ID).Return(nil)

		require.NoError(t, fx.service.CancelPairing(ctx, "0042", family.ID))
	})

	t.Run("reclaimed family only drops its own entry", func(t *testing.T) {
		fx := createTestPairingService(t)
		id := uuid.New()

		fx.familyRepo.EXPECT().FindFamilyByID(ctx, id).Return(nil, repository.ErrFamilyNotFound)
		fx.registry.EXPECT().Expire(ctx, "0042", id).Return(nil)

		require.NoError(t, fx.service.CancelPairing(ctx, "0042", id))
	})

	t.Run("paired family is kept", func(t *testing.T) {
		fx := createTestPairingService(t)
		family := pairedFamily("0042")
		fx.familyRepo.EXPECT().FindFamilyByID(ctx, family.ID).Return(family, nil)

		assert.ErrorIs(t, fx.service.CancelPairing(ctx, "0042", family.ID), domainerrors.ErrFamilyAlreadyPaired)
	})

	t.Run("approved while cancelling", func(t *testing.T) {
		fx := createTestPairingService(t)
		family := &entity.Family{ID: uuid.New(), ConnectionCode: "0042"}

		fx.familyRepo.EXPECT().FindFamilyByID(ctx, family.ID).Return(family, nil).Once()
		fx.familyRepo.EXPECT().DeleteUnpairedFamily(ctx, family.ID).Return(false, nil)
		fx.familyRepo.EXPECT().FindFamilyByID(ctx, family.ID).
			Return(&entity.Family{ID: family.ID, ApprovalState: entity.ApprovalApproved}, nil).Once()

		assert.ErrorIs(t, fx.service.CancelPairing(ctx, "0042", family.ID), domainerrors.ErrFamilyAlreadyPaired)
	})

	t.Run("store unavailable", func(t *testing.T) {
		fx := createTestPairingService(t)
		id := uuid.New()
		fx.familyRepo.EXPECT().FindFamilyByID(ctx, id).Return(nil, errors.New("unavailable"))

		assert.ErrorIs(t, fx.service.CancelPairing(ctx, "0042", id), domainerrors.ErrPersistenceUnavailable)
	})
}

// A late cleanup from an abandoned handshake must not touch the family
// that has since been issued the same code.
func TestPairingService_CancelPairing_LeavesReissuedCode(t *testing.T) {
	ctx := context.Background()
	codeRepo := mockRepo.NewMockCodeRepository(t)
	familyRepo := mockRepo.NewMockFamilyRepository(t)
	registry := &codeRegistry{
		codeRepo:    codeRepo,
		familyRepo:  familyRepo,
		logger:      discardLogger(),
		maxAttempts: 50,
		ttl:         2 * time.Minute,
		intn:        func(int) int { return 1234 },
		now:         func() time.Time { return testNow },
	}
	service := NewPairingService(PairingServiceParams{
		Registry:   registry,
		FamilyRepo: familyRepo,
		DeviceRepo: mockRepo.NewMockDeviceRepository(t),
		Logger:     discardLogger(),
	})

	stale, current := uuid.New(), uuid.New()
	store := &memoryCodes{codes: map[string]*entity.PendingCode{
		"1234": {Code: "1234", FamilyID: current, ExpiresAt: testNow.Add(2 * time.Minute)},
	}}

	familyRepo.EXPECT().FindFamilyByID(ctx, stale).Return(nil, repository.ErrFamilyNotFound)
	codeRepo.EXPECT().DeleteCode(ctx, "1234", stale).RunAndReturn(store.delete)

	require.NoError(t, service.CancelPairing(ctx, "1234", stale))

	require.Contains(t, store.codes, "1234")
	assert.Equal(t, current, store.codes["1234"].FamilyID)
	familyRepo.AssertNotCalled(t, "DeleteUnpairedFamily", mock.Anything, current)
}
