package impl

import (
	"context"
	"testing"

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

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	registry   *mockUsecase.MockCodeRegistryUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	registry := mockUsecase.NewMockCodeRegistryUsecase(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(registry, deviceRepo, discardLogger())

	return deviceServiceFixtures{
		service:    service,
		registry:   registry,
		deviceRepo: deviceRepo,
	}
}

func pairedFamily(code string) *entity.Family {
	return &entity.Family{
		ID:             uuid.New(),
		ConnectionCode: code,
		ApprovalState:  entity.ApprovalApproved,
	}
}

func TestDeviceService_RegisterDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	family := pairedFamily("0815")
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "iOS",
	}

	fx.registry.EXPECT().Lookup(ctx, "0815").Return(family, nil)
	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.AnythingOfType("*entity.Device")).
		RunAndReturn(func(_ context.Context, device *entity.Device) (*entity.Device, error) {
			return device, nil
		})

	device, err := fx.service.RegisterDevice(ctx, "0815", deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, family.ID, device.FamilyID)
	assert.Equal(t, "0815", device.ConnectionCode)
	assert.Equal(t, deviceInfo.FCMToken, device.Token)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, "ios", device.Platform)
}

func TestDeviceService_RegisterDevice_UnknownPlatformDropped(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	fx.registry.EXPECT().Lookup(ctx, "0815").Return(pairedFamily("0815"), nil)
	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.MatchedBy(func(d *entity.Device) bool { return d.Platform == "" })).
		RunAndReturn(func(_ context.Context, device *entity.Device) (*entity.Device, error) {
			return device, nil
		})

	_, err := fx.service.RegisterDevice(ctx, "0815", &usecase.DeviceInfo{FCMToken: "tok", Platform: "symbian"})
	require.NoError(t, err)
}

func TestDeviceService_RegisterDevice_MissingToken(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.RegisterDevice(context.Background(), "0815", &usecase.DeviceInfo{DeviceID: "device-123"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeviceService_RegisterDevice_UnpairedFamily(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	family := pairedFamily("0815")
	family.ApprovalState = entity.ApprovalUnset

	fx.registry.EXPECT().Lookup(ctx, "0815").Return(family, nil)

	_, err := fx.service.RegisterDevice(ctx, "0815", &usecase.DeviceInfo{FCMToken: "tok"})
	assert.ErrorIs(t, err, domainerrors.ErrCodeNotFound)
}

func TestDeviceService_RegisterDevice_CodeNotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	fx.registry.EXPECT().Lookup(ctx, "0815").Return(nil, domainerrors.ErrCodeNotFound)

	_, err := fx.service.RegisterDevice(ctx, "0815", &usecase.DeviceInfo{FCMToken: "tok"})
	assert.ErrorIs(t, err, domainerrors.ErrCodeNotFound)
}

func TestDeviceService_RegisterDevice_RepositoryError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	fx.registry.EXPECT().Lookup(ctx, "0815").Return(pairedFamily("0815"), nil)
	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil, errors.New("firestore unavailable"))

	_, err := fx.service.RegisterDevice(ctx, "0815", &usecase.DeviceInfo{FCMToken: "tok"})
	assert.ErrorIs(t, err, domainerrors.ErrPersistenceUnavailable)
}

func TestDeviceService_RemoveDevice(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "deleted"},
		{name: "not found", repoErr: repository.ErrDeviceNotFound, wantErr: domainerrors.ErrDeviceNotFound},
		{name: "store error", repoErr: errors.New("boom"), wantErr: domainerrors.ErrPersistenceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)

			ctx := context.Background()
			id := uuid.New()
			fx.deviceRepo.EXPECT().DeleteDevice(ctx, id).Return(tt.repoErr)

			err := fx.service.RemoveDevice(ctx, id)
			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
