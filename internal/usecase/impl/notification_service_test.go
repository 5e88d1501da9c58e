package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"lifeline/config"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"
	mockRepo "lifeline/internal/mocks/repository"
	mockSvc "lifeline/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service         *notificationService
	familyRepo      *mockRepo.MockFamilyRepository
	deviceRepo      *mockRepo.MockDeviceRepository
	notificationSvc *mockSvc.MockNotificationService
}

func testNotificationConfig() *config.Config {
	return &config.Config{Notification: &config.NotificationConfig{
		PerRecipientTimeout: time.Second,
		FanoutTimeout:       2 * time.Second,
		Title:               "Lifeline",
	}}
}

func createTestNotificationService(t *testing.T, txManager repository.TransactionManager, cfg *config.Config) notificationServiceFixtures {
	familyRepo := mockRepo.NewMockFamilyRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)

	service := NewNotificationService(NotificationServiceParams{
		FamilyRepo:      familyRepo,
		DeviceRepo:      deviceRepo,
		TxManager:       txManager,
		NotificationSvc: notificationSvc,
		Config:          cfg,
		Logger:          discardLogger(),
	}).(*notificationService)
	service.now = func() time.Time { return testNow }

	return notificationServiceFixtures{
		service:         service,
		familyRepo:      familyRepo,
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
	}
}

func devicesWithTokens(code string, tokens ...string) []*entity.Device {
	devices := make([]*entity.Device, 0, len(tokens))
	for _, token := range tokens {
		devices = append(devices, &entity.Device{ID: uuid.New(), ConnectionCode: code, Token: token})
	}

	return devices
}

func TestNotificationService_Notify_PartialFailure(t *testing.T) {
	fx := createTestNotificationService(t, nil, testNotificationConfig())
	ctx := context.Background()
	family := &entity.Family{ID: uuid.New(), ConnectionCode: "0042", SubjectName: "Grandma"}
	payload := entity.InactivityPayload(family, 13)

	fx.familyRepo.EXPECT().FindFamilyByID(ctx, family.ID).Return(family, nil)
	fx.deviceRepo.EXPECT().FindDevicesByConnectionCode(ctx, "0042").
		Return(devicesWithTokens("0042", "token-A-aaaaaaaa", "token-B-bbbbbbbb", "token-C-cccccccc"), nil)
	fx.notificationSvc.EXPECT().
		SendSingleNotification(mock.Anything, mock.Anything, "Lifeline", "Grandma has not been active for 13 hours", mock.Anything).
		RunAndReturn(func(_ context.Context, token, _, _ string, data map[string]string) (string, error) {
			if data["kind"] != string(entity.MessageInactivity) {
				return "", errors.New("missing kind")
			}
			if token == "token-B-bbbbbbbb" {
				return "", errors.New("transport unavailable")
			}

			return "msg-" + token, nil
		})

	report, err := fx.service.Notify(ctx, family.ID, entity.MessageInactivity, payload)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, StrategyDeviceRegistrations, report.Strategy)
	require.Len(t, report.PerRecipient, 3)

	failed := report.PerRecipient[1]
	assert.False(t, failed.Success)
	assert.Equal(t, "token-B-...", failed.Token)
	assert.Contains(t, failed.Error, "transport unavailable")
	assert.True(t, report.PerRecipient[0].Success)
	assert.Equal(t, "msg-token-A-aaaaaaaa", report.PerRecipient[0].MessageID)
	assert.True(t, report.PerRecipient[2].Success)
}

func TestNotificationService_Notify_StrategyChain(t *testing.T) {
	ctx := context.Background()

	t.Run("companions used when no registrations", func(t *testing.T) {
		fx := createTestNotificationService(t, nil, testNotificationConfig())
		family := &entity.Family{ID: uuid.New(), ConnectionCode: "0042", RecipientTokens: []string{"embedded"}}

		fx.familyRepo.EXPECT().FindFamilyByID(ctx, family.ID).Return(family, nil)
		fx.deviceRepo.EXPECT().FindDevicesByConnectionCode(ctx, "0042").Return(nil, nil)
		fx.familyRepo.EXPECT().FindApprovedCompanions(ctx, family.ID).Return([]*entity.CompanionDevice{
			{Token: "companion", Approved: true},
			{Token: "pending", Approved: false},
		}, nil)
		fx.notificationSvc.EXPECT().SendSingleNotification(mock.Anything, "companion", mock.Anything, mock.Anything, mock.Anything).
			Return("m1", nil).Once()

		report, err := fx.service.Notify(ctx, family.ID, entity.MessageInactivity, entity.Payload{"hours_inactive": "13"})
		require.NoError(t, err)
		assert.Equal(t, StrategyCompanionDevices, report.Strategy)
		assert.Equal(t, 1, report.Total)
		assert.Equal(t, 1, report.Sent)
	})

	t.Run("failing strategies fall through to embedded tokens", func(t *testing.T) {
		fx := createTestNotificationService(t, nil, testNotificationConfig())
		family := &entity.Family{ID: uuid.New(), ConnectionCode: "0042", RecipientTokens: []string{"e1", "e1", " ", "e2"}}

		fx.familyRepo.EXPECT().FindFamilyByID(ctx, family.ID).Return(family, nil)
		fx.deviceRepo.EXPECT().FindDevicesByConnectionCode(ctx, "0042").Return(nil, errors.New("index missing"))
		fx.familyRepo.EXPECT().FindApprovedCompanions(ctx, family.ID).Return(nil, errors.New("permission denied"))
		fx.notificationSvc.EXPECT().SendSingleNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("m", nil).Times(2)

		report, err := fx.service.Notify(ctx, family.ID, entity.MessageInactivity, entity.Payload{"hours_inactive": "13"})
		require.NoError(t, err)
		assert.Equal(t, StrategyEmbeddedTokens, report.Strategy)
		assert.Equal(t, 2, report.Total)
		assert.Equal(t, 2, report.Sent)
	})

	t.Run("registrations win over companions", func(t *testing.T) {
		fx := createTestNotificationService(t, nil, testNotificationConfig())
		family := &entity.Family{ID: uuid.New(), ConnectionCode: "0042", RecipientTokens: []string{"embedded"}}

		fx.familyRepo.EXPECT().FindFamilyByID(ctx, family.ID).Return(family, nil)
		fx.deviceRepo.EXPECT().FindDevicesByConnectionCode(ctx, "0042").Return(devicesWithTokens("0042", "registered"), nil)
		fx.notificationSvc.EXPECT().SendSingleNotification(mock.Anything, "registered", mock.Anything, mock.Anything, mock.Anything).
			Return("m", nil).Once()

		report, err := fx.service.Notify(ctx, family.ID, entity.MessageInactivity, entity.Payload{})
		require.NoError(t, err)
		assert.Equal(t, StrategyDeviceRegistrations, report.Strategy)
	})

	t.Run("no recipients anywhere", func(t *testing.T) {
		fx := createTestNotificationService(t, nil, testNotificationConfig())
		family := &entity.Family{ID: uuid.New()}

		fx.familyRepo.EXPECT().FindFamilyByID(ctx, family.ID).Return(family, nil)
		fx.familyRepo.EXPECT().FindApprovedCompanions(ctx, family.ID).Return(nil, nil)

		report, err := fx.service.Notify(ctx, family.ID, entity.MessageInactivity, entity.Payload{})
		require.NoError(t, err)
		assert.Equal(t, 0, report.Total)
		assert.Empty(t, report.PerRecipient)
	})
}

func TestNotificationService_Notify_SlowRecipientDoesNotBlockOthers(t *testing.T) {
	cfg := testNotificationConfig()
	cfg.Notification.PerRecipientTimeout = 50 * time.Millisecond
	fx := createTestNotificationService(t, nil, cfg)
	ctx := context.Background()
	family := &entity.Family{ID: uuid.New(), RecipientTokens: []string{"fast", "slow"}}

	fx.familyRepo.EXPECT().FindFamilyByID(ctx, family.ID).Return(family, nil)
	fx.familyRepo.EXPECT().FindApprovedCompanions(ctx, family.ID).Return(nil, nil)
	fx.notificationSvc.EXPECT().SendSingleNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, token, _, _ string, _ map[string]string) (string, error) {
			if token == "slow" {
				<-ctx.Done()

				return "", ctx.Err()
			}

			return "ok", nil
		})

	start := time.Now()
	report, err := fx.service.Notify(ctx, family.ID, entity.MessageInactivity, entity.Payload{})
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 2, report.Total)
	assert.True(t, report.PerRecipient[0].Success)
	assert.Contains(t, report.PerRecipient[1].Error, "deadline exceeded")
}

func TestNotificationService_Notify_FanoutDeadlineReportsPartial(t *testing.T) {
	cfg := testNotificationConfig()
	cfg.Notification.FanoutTimeout = 50 * time.Millisecond
	fx := createTestNotificationService(t, nil, cfg)
	ctx := context.Background()
	family := &entity.Family{ID: uuid.New(), RecipientTokens: []string{"fast", "stuck"}}
	release := make(chan struct{})
	defer close(release)

	fx.familyRepo.EXPECT().FindFamilyByID(ctx, family.ID).Return(family, nil)
	fx.familyRepo.EXPECT().FindApprovedCompanions(ctx, family.ID).Return(nil, nil)
	fx.notificationSvc.EXPECT().SendSingleNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, token, _, _ string, _ map[string]string) (string, error) {
			if token == "stuck" {
				// Ignores its context entirely.
				<-release
			}

			return "ok", nil
		})

	report, err := fx.service.Notify(ctx, family.ID, entity.MessageInactivity, entity.Payload{})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, errFanoutDeadline, report.PerRecipient[1].Error)
}

func TestNotificationService_Notify_PanickingSenderIsContained(t *testing.T) {
	fx := createTestNotificationService(t, nil, testNotificationConfig())
	ctx := context.Background()
	family := &entity.Family{ID: uuid.New(), RecipientTokens: []string{"a", "b"}}

	fx.familyRepo.EXPECT().FindFamilyByID(ctx, family.ID).Return(family, nil)
	fx.familyRepo.EXPECT().FindApprovedCompanions(ctx, family.ID).Return(nil, nil)
	fx.notificationSvc.EXPECT().SendSingleNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, token, _, _ string, _ map[string]string) (string, error) {
			if token == "a" {
				panic("nil client")
			}

			return "ok", nil
		})

	report, err := fx.service.Notify(ctx, family.ID, entity.MessageInactivity, entity.Payload{})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Sent)
	assert.True(t, strings.HasPrefix(report.PerRecipient[0].Error, "sender panic"))
}

func TestNotificationService_Notify_PrunesUnregisteredAndAudits(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	dispatchLog := mockRepo.NewMockDispatchLogRepository(t)
	fx := createTestNotificationService(t, txManager, testNotificationConfig())
	ctx := context.Background()
	family := &entity.Family{ID: uuid.New(), ConnectionCode: "0042"}

	fx.familyRepo.EXPECT().FindFamilyByID(ctx, family.ID).Return(family, nil)
	fx.deviceRepo.EXPECT().FindDevicesByConnectionCode(ctx, "0042").Return(devicesWithTokens("0042", "live", "gone"), nil)
	fx.notificationSvc.EXPECT().SendSingleNotification(mock.Anything, "live", mock.Anything, mock.Anything, mock.Anything).Return("m", nil)
	fx.notificationSvc.EXPECT().SendSingleNotification(mock.Anything, "gone", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.Wrap(service.ErrTokenUnregistered, "registration-token-not-registered"))
	fx.deviceRepo.EXPECT().DeleteDevicesByToken(ctx, []string{"gone"}).Return(1, nil)

	txManager.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().NewDispatchLogRepository().Return(dispatchLog)
	dispatchLog.EXPECT().SaveReport(ctx, mock.MatchedBy(func(r *entity.DispatchReport) bool {
		return r.FamilyID == family.ID && r.Sent == 1 && r.Total == 2
	})).Return(nil)

	report, err := fx.service.Notify(ctx, family.ID, entity.MessageInactivity, entity.Payload{})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Sent)
}

func TestNotificationService_Notify_AuditFailureIgnored(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	fx := createTestNotificationService(t, txManager, testNotificationConfig())
	ctx := context.Background()
	family := &entity.Family{ID: uuid.New(), RecipientTokens: []string{"a"}}

	fx.familyRepo.EXPECT().FindFamilyByID(ctx, family.ID).Return(family, nil)
	fx.familyRepo.EXPECT().FindApprovedCompanions(ctx, family.ID).Return(nil, nil)
	fx.notificationSvc.EXPECT().SendSingleNotification(mock.Anything, "a", mock.Anything, mock.Anything, mock.Anything).Return("m", nil)
	txManager.EXPECT().Execute(ctx, mock.Anything).Return(errors.New("postgres down"))

	report, err := fx.service.Notify(ctx, family.ID, entity.MessageInactivity, entity.Payload{})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Sent)
}

func TestNotificationService_Notify_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("family not found", func(t *testing.T) {
		fx := createTestNotificationService(t, nil, testNotificationConfig())
		id := uuid.New()
		fx.familyRepo.EXPECT().FindFamilyByID(ctx, id).Return(nil, repository.ErrFamilyNotFound)

		_, err := fx.service.Notify(ctx, id, entity.MessageInactivity, entity.Payload{})
		assert.ErrorIs(t, err, domainerrors.ErrFamilyNotFound)
	})

	t.Run("unknown kind", func(t *testing.T) {
		fx := createTestNotificationService(t, nil, testNotificationConfig())
		family := &entity.Family{ID: uuid.New()}
		fx.familyRepo.EXPECT().FindFamilyByID(ctx, family.ID).Return(family, nil)

		_, err := fx.service.Notify(ctx, family.ID, entity.MessageKind("birthday"), entity.Payload{})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestNotificationService_GetDispatchHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("audit disabled", func(t *testing.T) {
		fx := createTestNotificationService(t, nil, testNotificationConfig())

		reports, err := fx.service.GetDispatchHistory(ctx, uuid.New(), 5)
		require.NoError(t, err)
		assert.Empty(t, reports)
	})

	t.Run("reads through the audit store", func(t *testing.T) {
		txManager := mockRepo.NewMockTransactionManager(t)
		factory := mockRepo.NewMockRepositoryFactory(t)
		dispatchLog := mockRepo.NewMockDispatchLogRepository(t)
		fx := createTestNotificationService(t, txManager, testNotificationConfig())
		familyID := uuid.New()
		want := []*entity.DispatchReport{{ID: uuid.New(), FamilyID: familyID}}

		txManager.EXPECT().Execute(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
				return fn(factory)
			})
		factory.EXPECT().NewDispatchLogRepository().Return(dispatchLog)
		dispatchLog.EXPECT().ListReports(ctx, familyID, defaultHistoryLen).Return(want, nil)

		reports, err := fx.service.GetDispatchHistory(ctx, familyID, 0)
		require.NoError(t, err)
		assert.Equal(t, want, reports)
	})
}
