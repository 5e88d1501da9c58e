package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"lifeline/config"
	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"
	"lifeline/internal/errors"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type monitorService struct {
	familyRepo  repository.FamilyRepository
	registry    usecase.CodeRegistryUsecase
	notifier    usecase.NotificationUsecase
	publisher   service.EventPublisher
	concurrency int
	defaultLoc  *time.Location
	logger      *slog.Logger
	now         func() time.Time
}

// MonitorServiceParams holds dependencies for MonitorService, injected by Fx.
type MonitorServiceParams struct {
	fx.In

	FamilyRepo repository.FamilyRepository
	Registry   usecase.CodeRegistryUsecase
	Notifier   usecase.NotificationUsecase
	Publisher  service.EventPublisher
	Config     *config.Config
	Logger     *slog.Logger
}

// NewMonitorService creates the survival-monitoring scheduler. An unknown
// default timezone is a configuration error.
func NewMonitorService(params MonitorServiceParams) (usecase.MonitorUsecase, error) {
	loc, err := time.LoadLocation(params.Config.Monitor.DefaultTimezone)
	if err != nil {
		return nil, errors.Wrap(err, "monitor.defaultTimezone")
	}

	concurrency := params.Config.Monitor.Concurrency
	if concurrency <= 0 {
		concurrency = config.DefaultMonitorConcurrency
	}

	return &monitorService{
		familyRepo:  params.FamilyRepo,
		registry:    params.Registry,
		notifier:    params.Notifier,
		publisher:   params.Publisher,
		concurrency: concurrency,
		defaultLoc:  loc,
		logger:      params.Logger,
		now:         time.Now,
	}, nil
}

func (s *monitorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// familyOutcome is what one family contributed to a tick.
type familyOutcome struct {
	decision entity.AlertDecision
	failed   bool
	notified bool
}

type tickTally struct {
	mu     sync.Mutex
	report *usecase.TickReport
}

func (r *tickTally) add(out familyOutcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if out.failed {
		r.report.Failed++

		return
	}

	switch out.decision {
	case entity.DecisionRaise:
		r.report.Raised++
		if out.notified {
			r.report.Notified++
		}
	case entity.DecisionClear:
		r.report.Cleared++
	case entity.DecisionHold:
		r.report.Held++
	case entity.DecisionSuppressed:
		r.report.Suppressed++
	case entity.DecisionNoBaseline:
		r.report.NoBaseline++
	default:
		r.report.Unchanged++
	}
}

// Tick evaluates every monitored family once. Ticks may overlap; each family
// is settled by its own read-modify-write.
func (s *monitorService) Tick(ctx context.Context, now time.Time) (*usecase.TickReport, error) {
	started := s.now()

	families, err := s.familyRepo.FindMonitoredFamilies(ctx)
	if err != nil {
		return nil, domainerrors.NewPersistenceError(err, "find monitored families")
	}

	tally := &tickTally{report: &usecase.TickReport{Now: now, Families: len(families)}}

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for _, family := range families {
		g.Go(func() error {
			tally.add(s.evaluateFamily(ctx, family, now))

			return nil
		})
	}
	_ = g.Wait()

	purged, err := s.registry.PurgeExpired(ctx, now)
	if err != nil {
		s.log(ctx).Warn("Failed to purge expired codes", slog.Any("error", err))
	}

	report := tally.report
	report.PurgedCodes = purged
	report.Duration = s.now().Sub(started)

	s.log(ctx).Info("Tick finished",
		slog.Int("families", report.Families),
		slog.Int("raised", report.Raised),
		slog.Int("cleared", report.Cleared),
		slog.Int("held", report.Held),
		slog.Int("suppressed", report.Suppressed),
		slog.Int("no_baseline", report.NoBaseline),
		slog.Int("failed", report.Failed),
		slog.Int("purged_codes", report.PurgedCodes),
		slog.Duration("duration", report.Duration),
	)

	return report, nil
}

// evaluateFamily decides on the query snapshot and only opens a
// read-modify-write when the snapshot says the state should change.
func (s *monitorService) evaluateFamily(ctx context.Context, snapshot *entity.Family, now time.Time) (out familyOutcome) {
	logger := s.log(ctx).With(slog.String("family_id", snapshot.ID.String()))

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Family evaluation panicked", slog.Any("panic", r))
			out = familyOutcome{failed: true}
		}
	}()

	localNow, err := snapshot.Settings.LocalTime(now, s.defaultLoc)
	if err != nil {
		logger.Warn("Malformed monitor settings", slog.Any("error", err))

		return familyOutcome{failed: true}
	}

	decision, hours := entity.EvaluateAlert(snapshot, now, localNow)
	switch decision {
	case entity.DecisionRaise, entity.DecisionClear:
	case entity.DecisionNoBaseline:
		logger.Debug("No activity baseline yet")

		return familyOutcome{decision: decision}
	default:
		logger.Debug("Alert state unchanged",
			slog.String("decision", decision.String()),
			slog.Int("hours_inactive", hours),
		)

		return familyOutcome{decision: decision}
	}

	var final entity.AlertDecision
	updated, err := s.familyRepo.UpdateFamily(ctx, snapshot.ID, func(f *entity.Family) error {
		final = entity.DecisionNone
		if !f.Settings.MonitoringEnabled {
			return repository.ErrSkipUpdate
		}

		local, err := f.Settings.LocalTime(now, s.defaultLoc)
		if err != nil {
			return err
		}

		final, hours = entity.EvaluateAlert(f, now, local)
		switch final {
		case entity.DecisionRaise:
			f.AlertState = entity.RaisedAlert(now, hours)
		case entity.DecisionClear:
			f.AlertState = entity.ClearedAlert(now)
		default:
			return repository.ErrSkipUpdate
		}
		f.UpdatedAt = now

		return nil
	})
	if err != nil {
		logger.Warn("Failed to persist alert state", slog.Any("error", err))

		return familyOutcome{failed: true}
	}

	out = familyOutcome{decision: final}

	switch final {
	case entity.DecisionRaise:
		logger.Info("Inactivity alert raised", slog.Int("hours_inactive", hours))
		s.publish(ctx, service.AlertRaised, updated, hours, now)

		// Not retried while the alert stays active; see ResendAlert.
		report, err := s.notifier.Notify(ctx, updated.ID, entity.MessageInactivity, entity.InactivityPayload(updated, hours))
		if err != nil {
			logger.Warn("Inactivity notification failed", slog.Any("error", err))

			return out
		}
		out.notified = report.Sent > 0
		if !out.notified {
			logger.Warn("Inactivity notification reached no recipient",
				slog.Int("total", report.Total),
			)
		}
	case entity.DecisionClear:
		logger.Info("Inactivity alert cleared", slog.Int("hours_inactive", hours))
		s.publish(ctx, service.AlertCleared, updated, hours, now)
	}

	return out
}

func (s *monitorService) publish(ctx context.Context, eventType service.AlertEventType, family *entity.Family, hours int, now time.Time) {
	event := &service.AlertEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Type:          eventType,
		FamilyID:      family.ID.String(),
		SubjectName:   family.SubjectName,
		HoursInactive: hours,
		OccurredAt:    now,
	}
	if family.LastLocation != nil {
		lat, lon := family.LastLocation.Latitude, family.LastLocation.Longitude
		event.Latitude = &lat
		event.Longitude = &lon
	}

	if err := s.publisher.PublishAlertEvent(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish alert event",
			slog.String("family_id", event.FamilyID),
			slog.String("type", string(eventType)),
			slog.Any("error", err),
		)
	}
}

// ResendAlert is the explicit retry for an active alert whose notification
// did not get through. It does not touch the alert state.
func (s *monitorService) ResendAlert(ctx context.Context, familyID uuid.UUID) (*entity.DispatchReport, error) {
	family, err := s.familyRepo.FindFamilyByID(ctx, familyID)
	if err != nil {
		return nil, mapFamilyErr(err, "find family")
	}

	if !family.AlertState.IsActive {
		return nil, domainerrors.ErrAlertNotActive
	}

	hours, ok := family.HoursInactive(s.now())
	if !ok && family.AlertState.HoursInactive != nil {
		hours = *family.AlertState.HoursInactive
	}

	report, err := s.notifier.Notify(ctx, familyID, entity.MessageInactivity, entity.InactivityPayload(family, hours))
	if err != nil {
		return nil, err
	}
	if report.Total == 0 {
		return report, domainerrors.ErrNoRecipients
	}

	s.log(ctx).Info("Inactivity alert resent",
		slog.String("family_id", familyID.String()),
		slog.Int("sent", report.Sent),
		slog.Int("total", report.Total),
	)

	return report, nil
}
