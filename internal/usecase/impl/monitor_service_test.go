package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"lifeline/config"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"
	mockRepo "lifeline/internal/mocks/repository"
	mockSvc "lifeline/internal/mocks/service"
	mockUsecase "lifeline/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type monitorServiceFixtures struct {
	service    *monitorService
	familyRepo *mockRepo.MockFamilyRepository
	registry   *mockUsecase.MockCodeRegistryUsecase
	notifier   *mockUsecase.MockNotificationUsecase
	publisher  *mockSvc.MockEventPublisher
}

func createTestMonitorService(t *testing.T, concurrency int) monitorServiceFixtures {
	familyRepo := mockRepo.NewMockFamilyRepository(t)
	registry := mockUsecase.NewMockCodeRegistryUsecase(t)
	notifier := mockUsecase.NewMockNotificationUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc, err := NewMonitorService(MonitorServiceParams{
		FamilyRepo: familyRepo,
		Registry:   registry,
		Notifier:   notifier,
		Publisher:  publisher,
		Config: &config.Config{Monitor: &config.MonitorConfig{
			Concurrency:     concurrency,
			DefaultTimezone: "UTC",
		}},
		Logger: discardLogger(),
	})
	require.NoError(t, err)

	registry.EXPECT().PurgeExpired(mock.Anything, mock.Anything).Return(0, nil).Maybe()

	return monitorServiceFixtures{
		service:    svc.(*monitorService),
		familyRepo: familyRepo,
		registry:   registry,
		notifier:   notifier,
		publisher:  publisher,
	}
}

// familyStore is an in-memory document store behind the family mock.
type familyStore struct {
	mu       sync.Mutex
	families map[uuid.UUID]*entity.Family
}

func newFamilyStore(families ...*entity.Family) *familyStore {
	store := &familyStore{families: map[uuid.UUID]*entity.Family{}}
	for _, f := range families {
		store.families[f.ID] = f
	}

	return store
}

func (s *familyStore) wire(repo *mockRepo.MockFamilyRepository) {
	repo.EXPECT().FindMonitoredFamilies(mock.Anything).RunAndReturn(s.findMonitored).Maybe()
	repo.EXPECT().UpdateFamily(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(s.update).Maybe()
}

func (s *familyStore) findMonitored(context.Context) ([]*entity.Family, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Family, 0, len(s.families))
	for _, f := range s.families {
		if f.Settings.MonitoringEnabled {
			snapshot := *f
			out = append(out, &snapshot)
		}
	}

	return out, nil
}

func (s *familyStore) update(_ context.Context, id uuid.UUID, mutate repository.FamilyMutation) (*entity.Family, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.families[id]
	if !ok {
		return nil, repository.ErrFamilyNotFound
	}

	working := *current
	if err := mutate(&working); err != nil {
		if errors.Is(err, repository.ErrSkipUpdate) {
			snapshot := *current

			return &snapshot, nil
		}

		return nil, err
	}
	s.families[id] = &working
	snapshot := working

	return &snapshot, nil
}

func (s *familyStore) get(id uuid.UUID) entity.Family {
	s.mu.Lock()
	defer s.mu.Unlock()

	return *s.families[id]
}

func (s *familyStore) touch(id uuid.UUID, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.families[id].LastActivityAt = &at
}

func monitoredFamily(threshold int, lastActivity *time.Time) *entity.Family {
	return &entity.Family{
		ID:             uuid.New(),
		ConnectionCode: "0042",
		SubjectName:    "Grandma",
		ApprovalState:  entity.ApprovalApproved,
		Settings: entity.MonitorSettings{
			MonitoringEnabled:   true,
			AlertThresholdHours: threshold,
		},
		LastActivityAt: lastActivity,
	}
}

func ptrTime(t time.Time) *time.Time { return &t }

func sentReport(familyID uuid.UUID, sent, total int) *entity.DispatchReport {
	return &entity.DispatchReport{FamilyID: familyID, Kind: entity.MessageInactivity, Sent: sent, Total: total}
}

func TestMonitorService_Tick_ThresholdScenario(t *testing.T) {
	fx := createTestMonitorService(t, 4)
	ctx := context.Background()
	family := monitoredFamily(12, ptrTime(testNow.Add(-13*time.Hour)))
	family.LastLocation = &entity.Location{Latitude: 48.1, Longitude: 11.5, At: testNow.Add(-13 * time.Hour)}
	store := newFamilyStore(family)
	store.wire(fx.familyRepo)

	fx.publisher.EXPECT().PublishAlertEvent(ctx, mock.MatchedBy(func(e *service.AlertEvent) bool {
		return e.Type == service.AlertRaised && e.HoursInactive == 13 && e.Latitude != nil && *e.Latitude == 48.1
	})).Return(nil).Once()
	fx.notifier.EXPECT().
		Notify(ctx, family.ID, entity.MessageInactivity, mock.MatchedBy(func(p entity.Payload) bool {
			return p["hours_inactive"] == "13" && p["latitude"] == "48.100000"
		})).
		Return(sentReport(family.ID, 2, 2), nil).Once()

	report, err := fx.service.Tick(ctx, testNow)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Families)
	assert.Equal(t, 1, report.Raised)
	assert.Equal(t, 1, report.Notified)

	stored := store.get(family.ID)
	assert.True(t, stored.AlertState.IsActive)
	require.NotNil(t, stored.AlertState.RaisedAt)
	assert.Equal(t, testNow, *stored.AlertState.RaisedAt)
	require.NotNil(t, stored.AlertState.HoursInactive)
	assert.Equal(t, 13, *stored.AlertState.HoursInactive)
}

func TestMonitorService_Tick_HysteresisAndSilentClear(t *testing.T) {
	fx := createTestMonitorService(t, 4)
	ctx := context.Background()
	family := monitoredFamily(12, ptrTime(testNow.Add(-13*time.Hour)))
	store := newFamilyStore(family)
	store.wire(fx.familyRepo)

	fx.publisher.EXPECT().PublishAlertEvent(ctx, mock.MatchedBy(func(e *service.AlertEvent) bool {
		return e.Type == service.AlertRaised
	})).Return(nil).Once()
	fx.publisher.EXPECT().PublishAlertEvent(ctx, mock.MatchedBy(func(e *service.AlertEvent) bool {
		return e.Type == service.AlertCleared
	})).Return(nil).Once()
	fx.notifier.EXPECT().Notify(ctx, family.ID, entity.MessageInactivity, mock.Anything).
		Return(sentReport(family.ID, 1, 1), nil).Once()

	first, err := fx.service.Tick(ctx, testNow)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Raised)

	second, err := fx.service.Tick(ctx, testNow.Add(15*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 0, second.Raised)
	assert.Equal(t, 1, second.Held)

	refreshed := testNow.Add(20 * time.Minute)
	store.touch(family.ID, refreshed)

	third, err := fx.service.Tick(ctx, testNow.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, third.Cleared)

	stored := store.get(family.ID)
	assert.False(t, stored.AlertState.IsActive)
	require.NotNil(t, stored.AlertState.ClearedAt)
	assert.Equal(t, testNow.Add(30*time.Minute), *stored.AlertState.ClearedAt)

	fourth, err := fx.service.Tick(ctx, testNow.Add(45*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, fourth.Unchanged)
}

func TestMonitorService_Tick_SleepWindowDefersRaise(t *testing.T) {
	fx := createTestMonitorService(t, 4)
	ctx := context.Background()

	lastActivity := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	family := monitoredFamily(12, &lastActivity)
	family.Settings.SleepWindow = &entity.SleepWindow{
		Enabled:          true,
		StartMinuteOfDay: 22 * 60,
		EndMinuteOfDay:   6 * 60,
		ActiveWeekdays:   []int{1, 2, 3, 4, 5, 6, 7},
	}
	store := newFamilyStore(family)
	store.wire(fx.familyRepo)

	fx.publisher.EXPECT().PublishAlertEvent(ctx, mock.Anything).Return(nil).Once()
	fx.notifier.EXPECT().Notify(ctx, family.ID, entity.MessageInactivity, mock.MatchedBy(func(p entity.Payload) bool {
		return p["hours_inactive"] == "20"
	})).Return(sentReport(family.ID, 1, 1), nil).Once()

	inside, err := fx.service.Tick(ctx, time.Date(2024, 3, 4, 23, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, inside.Suppressed)
	assert.False(t, store.get(family.ID).AlertState.IsActive)

	stillInside, err := fx.service.Tick(ctx, time.Date(2024, 3, 5, 5, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, stillInside.Suppressed)

	outside, err := fx.service.Tick(ctx, time.Date(2024, 3, 5, 6, 15, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, outside.Raised)
	assert.True(t, store.get(family.ID).AlertState.IsActive)
}

func TestMonitorService_Tick_SleepWindowUsesFamilyTimezone(t *testing.T) {
	fx := createTestMonitorService(t, 4)
	ctx := context.Background()

	// 14:00 UTC is 23:00 in Tokyo.
	now := time.Date(2024, 3, 4, 14, 0, 0, 0, time.UTC)
	family := monitoredFamily(12, ptrTime(now.Add(-13*time.Hour)))
	family.Settings.Timezone = "Asia/Tokyo"
	family.Settings.SleepWindow = &entity.SleepWindow{
		Enabled:          true,
		StartMinuteOfDay: 22 * 60,
		EndMinuteOfDay:   6 * 60,
		ActiveWeekdays:   []int{1, 2, 3, 4, 5, 6, 7},
	}
	store := newFamilyStore(family)
	store.wire(fx.familyRepo)

	report, err := fx.service.Tick(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Suppressed)
}

func TestMonitorService_Tick_NoBaselineAndAtThreshold(t *testing.T) {
	fx := createTestMonitorService(t, 4)
	ctx := context.Background()

	noBaseline := monitoredFamily(12, nil)
	atThreshold := monitoredFamily(12, ptrTime(testNow.Add(-12*time.Hour-59*time.Minute)))
	store := newFamilyStore(noBaseline, atThreshold)
	store.wire(fx.familyRepo)

	report, err := fx.service.Tick(ctx, testNow)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Families)
	assert.Equal(t, 1, report.NoBaseline)
	assert.Equal(t, 1, report.Unchanged)
	assert.Equal(t, 0, report.Raised)
}

func TestMonitorService_Tick_PerFamilyIsolation(t *testing.T) {
	fx := createTestMonitorService(t, 2)
	ctx := context.Background()
	stale := ptrTime(testNow.Add(-30 * time.Hour))

	badTimezone := monitoredFamily(12, stale)
	badTimezone.Settings.Timezone = "Nowhere/Atlantis"
	storeDown := monitoredFamily(12, stale)
	notifyDown := monitoredFamily(12, stale)
	healthy := monitoredFamily(12, stale)

	fx.familyRepo.EXPECT().FindMonitoredFamilies(ctx).
		Return([]*entity.Family{badTimezone, storeDown, notifyDown, healthy}, nil)
	fx.familyRepo.EXPECT().UpdateFamily(ctx, storeDown.ID, mock.Anything).Return(nil, errors.New("aborted"))
	for _, f := range []*entity.Family{notifyDown, healthy} {
		store := newFamilyStore(f)
		fx.familyRepo.EXPECT().UpdateFamily(ctx, f.ID, mock.Anything).RunAndReturn(store.update)
	}

	fx.publisher.EXPECT().PublishAlertEvent(ctx, mock.Anything).Return(errors.New("bus down")).Times(2)
	fx.notifier.EXPECT().Notify(ctx, notifyDown.ID, entity.MessageInactivity, mock.Anything).
		Return(nil, domainerrors.ErrPersistenceUnavailable)
	fx.notifier.EXPECT().Notify(ctx, healthy.ID, entity.MessageInactivity, mock.Anything).
		Return(sentReport(healthy.ID, 1, 1), nil)

	report, err := fx.service.Tick(ctx, testNow)
	require.NoError(t, err)
	assert.Equal(t, 4, report.Families)
	assert.Equal(t, 2, report.Failed)
	assert.Equal(t, 2, report.Raised)
	assert.Equal(t, 1, report.Notified)
}

func TestMonitorService_Tick_PanicIsContained(t *testing.T) {
	fx := createTestMonitorService(t, 2)
	ctx := context.Background()
	stale := ptrTime(testNow.Add(-30 * time.Hour))
	a := monitoredFamily(12, stale)
	b := monitoredFamily(12, stale)

	fx.familyRepo.EXPECT().FindMonitoredFamilies(ctx).Return([]*entity.Family{a, b}, nil)
	fx.familyRepo.EXPECT().UpdateFamily(ctx, a.ID, mock.Anything).
		RunAndReturn(func(context.Context, uuid.UUID, repository.FamilyMutation) (*entity.Family, error) {
			panic("corrupt document")
		})
	fx.familyRepo.EXPECT().UpdateFamily(ctx, b.ID, mock.Anything).RunAndReturn(newFamilyStore(b).update)
	fx.publisher.EXPECT().PublishAlertEvent(ctx, mock.Anything).Return(nil).Once()
	fx.notifier.EXPECT().Notify(ctx, b.ID, entity.MessageInactivity, mock.Anything).Return(sentReport(b.ID, 1, 1), nil)

	report, err := fx.service.Tick(ctx, testNow)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Raised)
}

func TestMonitorService_Tick_ConcurrencyIsBounded(t *testing.T) {
	fx := createTestMonitorService(t, 3)
	ctx := context.Background()

	families := make([]*entity.Family, 0, 12)
	for range 12 {
		families = append(families, monitoredFamily(12, ptrTime(testNow.Add(-13*time.Hour))))
	}
	store := newFamilyStore(families...)

	var inFlight, peak atomic.Int32
	fx.familyRepo.EXPECT().FindMonitoredFamilies(ctx).RunAndReturn(store.findMonitored)
	fx.familyRepo.EXPECT().UpdateFamily(ctx, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, id uuid.UUID, mutate repository.FamilyMutation) (*entity.Family, error) {
			n := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)

			return store.update(ctx, id, mutate)
		})
	fx.publisher.EXPECT().PublishAlertEvent(ctx, mock.Anything).Return(nil)
	fx.notifier.EXPECT().Notify(ctx, mock.Anything, entity.MessageInactivity, mock.Anything).
		Return(sentReport(uuid.Nil, 1, 1), nil)

	report, err := fx.service.Tick(ctx, testNow)
	require.NoError(t, err)
	assert.Equal(t, 12, report.Raised)
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestMonitorService_Tick_ListFailureSurfaces(t *testing.T) {
	fx := createTestMonitorService(t, 2)
	ctx := context.Background()

	fx.familyRepo.EXPECT().FindMonitoredFamilies(ctx).Return(nil, errors.New("unavailable"))

	_, err := fx.service.Tick(ctx, testNow)
	assert.ErrorIs(t, err, domainerrors.ErrPersistenceUnavailable)
}

func TestMonitorService_Tick_PurgesExpiredCodes(t *testing.T) {
	familyRepo := mockRepo.NewMockFamilyRepository(t)
	registry := mockUsecase.NewMockCodeRegistryUsecase(t)
	svc, err := NewMonitorService(MonitorServiceParams{
		FamilyRepo: familyRepo,
		Registry:   registry,
		Notifier:   mockUsecase.NewMockNotificationUsecase(t),
		Publisher:  mockSvc.NewMockEventPublisher(t),
		Config:     &config.Config{Monitor: &config.MonitorConfig{DefaultTimezone: "UTC"}},
		Logger:     discardLogger(),
	})
	require.NoError(t, err)
	ctx := context.Background()

	familyRepo.EXPECT().FindMonitoredFamilies(ctx).Return(nil, nil)
	registry.EXPECT().PurgeExpired(ctx, testNow).Return(3, nil)

	report, err := svc.Tick(ctx, testNow)
	require.NoError(t, err)
	assert.Equal(t, 3, report.PurgedCodes)
}

func TestMonitorService_NewRejectsUnknownTimezone(t *testing.T) {
	_, err := NewMonitorService(MonitorServiceParams{
		Config: &config.Config{Monitor: &config.MonitorConfig{DefaultTimezone: "Not/AZone"}},
		Logger: discardLogger(),
	})
	assert.Error(t, err)
}

func TestMonitorService_ResendAlert(t *testing.T) {
	ctx := context.Background()

	t.Run("active alert is resent", func(t *testing.T) {
		fx := createTestMonitorService(t, 2)
		fx.service.now = func() time.Time { return testNow }
		family := monitoredFamily(12, ptrTime(testNow.Add(-15*time.Hour)))
		family.AlertState = entity.RaisedAlert(testNow.Add(-2*time.Hour), 13)

		fx.familyRepo.EXPECT().FindFamilyByID(ctx, family.ID).Return(family, nil)
		fx.notifier.EXPECT().Notify(ctx, family.ID, entity.MessageInactivity, mock.MatchedBy(func(p entity.Payload) bool {
			return p["hours_inactive"] == "15"
		})).Return(sentReport(family.ID, 1, 1), nil)

		report, err := fx.service.ResendAlert(ctx, family.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Sent)
	})

	t.Run("inactive alert is refused", func(t *testing.T) {
		fx := createTestMonitorService(t, 2)
		family := monitoredFamily(12, ptrTime(testNow))

		fx.familyRepo.EXPECT().FindFamilyByID(ctx, family.ID).Return(family, nil)

		_, err := fx.service.ResendAlert(ctx, family.ID)
		assert.ErrorIs(t, err, domainerrors.ErrAlertNotActive)
	})

	t.Run("no recipients", func(t *testing.T) {
		fx := createTestMonitorService(t, 2)
		family := monitoredFamily(12, ptrTime(testNow.Add(-15*time.Hour)))
		family.AlertState = entity.RaisedAlert(testNow, 15)

		fx.familyRepo.EXPECT().FindFamilyByID(ctx, family.ID).Return(family, nil)
		fx.notifier.EXPECT().Notify(ctx, family.ID, entity.MessageInactivity, mock.Anything).
			Return(sentReport(family.ID, 0, 0), nil)

		_, err := fx.service.ResendAlert(ctx, family.ID)
		assert.ErrorIs(t, err, domainerrors.ErrNoRecipients)
	})
}
