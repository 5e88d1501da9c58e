package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
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
)

// Recipient strategy names, in resolution order.
const (
	StrategyDeviceRegistrations = "device_registrations"
	StrategyCompanionDevices    = "companion_devices"
	StrategyEmbeddedTokens      = "embedded_tokens"
)

const (
	errFanoutDeadline = "fan-out deadline exceeded"
	defaultHistoryLen = 20
)

// recipientStrategy resolves push tokens for a family from one source.
type recipientStrategy struct {
	name    string
	resolve func(ctx context.Context, family *entity.Family) ([]string, error)
}

type notificationService struct {
	familyRepo          repository.FamilyRepository
	deviceRepo          repository.DeviceRepository
	txManager           repository.TransactionManager
	notificationSvc     service.NotificationService
	strategies          []recipientStrategy
	title               string
	perRecipientTimeout time.Duration
	fanoutTimeout       time.Duration
	logger              *slog.Logger
	now                 func() time.Time
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	FamilyRepo      repository.FamilyRepository
	DeviceRepo      repository.DeviceRepository
	TxManager       repository.TransactionManager `optional:"true"` // nil disables the audit log
	NotificationSvc service.NotificationService
	Config          *config.Config
	Logger          *slog.Logger
}

// NewNotificationService creates the notification fan-out
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	srv := &notificationService{
		familyRepo:          params.FamilyRepo,
		deviceRepo:          params.DeviceRepo,
		txManager:           params.TxManager,
		notificationSvc:     params.NotificationSvc,
		title:               params.Config.Notification.Title,
		perRecipientTimeout: params.Config.Notification.PerRecipientTimeout,
		fanoutTimeout:       params.Config.Notification.FanoutTimeout,
		logger:              params.Logger,
		now:                 time.Now,
	}

	srv.strategies = []recipientStrategy{
		{name: StrategyDeviceRegistrations, resolve: srv.deviceRegistrationTokens},
		{name: StrategyCompanionDevices, resolve: srv.companionTokens},
		{name: StrategyEmbeddedTokens, resolve: embeddedTokens},
	}

	return srv
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Notify resolves recipients and sends to all of them concurrently.
func (s *notificationService) Notify(
	ctx context.Context,
	familyID uuid.UUID,
	kind entity.MessageKind,
	payload entity.Payload,
) (*entity.DispatchReport, error) {
	family, err := s.familyRepo.FindFamilyByID(ctx, familyID)
	if err != nil {
		return nil, mapFamilyErr(err, "find family for notification")
	}

	body, err := renderBody(family, kind, payload)
	if err != nil {
		return nil, err
	}

	strategy, tokens := s.resolveRecipients(ctx, family)

	report := &entity.DispatchReport{
		ID:           uuid.New(),
		FamilyID:     familyID,
		Kind:         kind,
		Strategy:     strategy,
		Total:        len(tokens),
		PerRecipient: []entity.RecipientOutcome{},
		DispatchedAt: s.now(),
	}

	if len(tokens) == 0 {
		s.log(ctx).Warn("No recipients resolved", slog.String("family_id", familyID.String()))
		s.audit(ctx, report)

		return report, nil
	}

	data := make(map[string]string, len(payload)+1)
	for k, v := range payload {
		data[k] = v
	}
	data["kind"] = string(kind)

	outcomes, unregistered := s.fanOut(ctx, tokens, body, data)
	report.PerRecipient = outcomes
	for _, outcome := range outcomes {
		if outcome.Success {
			report.Sent++
		}
	}

	s.log(ctx).Info("Notification fan-out finished",
		slog.String("family_id", familyID.String()),
		slog.String("kind", string(kind)),
		slog.String("strategy", strategy),
		slog.Int("sent", report.Sent),
		slog.Int("total", report.Total),
	)

	if len(unregistered) > 0 && strategy == StrategyDeviceRegistrations {
		s.pruneTokens(ctx, unregistered)
	}

	s.audit(ctx, report)

	return report, nil
}

// resolveRecipients walks the strategy chain and keeps the first non-empty result.
func (s *notificationService) resolveRecipients(ctx context.Context, family *entity.Family) (string, []string) {
	for _, strategy := range s.strategies {
		tokens, err := strategy.resolve(ctx, family)
		if err != nil {
			s.log(ctx).Warn("Recipient strategy failed",
				slog.String("family_id", family.ID.String()),
				slog.String("strategy", strategy.name),
				slog.Any("error", err),
			)

			continue
		}

		if tokens = uniqueTokens(tokens); len(tokens) > 0 {
			return strategy.name, tokens
		}
	}

	return "", nil
}

func (s *notificationService) deviceRegistrationTokens(ctx context.Context, family *entity.Family) ([]string, error) {
	if family.ConnectionCode == "" {
		return nil, nil
	}

	devices, err := s.deviceRepo.FindDevicesByConnectionCode(ctx, family.ConnectionCode)
	if err != nil {
		return nil, errors.Wrap(err, "find devices by connection code")
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.Token)
	}

	return tokens, nil
}

func (s *notificationService) companionTokens(ctx context.Context, family *entity.Family) ([]string, error) {
	companions, err := s.familyRepo.FindApprovedCompanions(ctx, family.ID)
	if err != nil {
		return nil, errors.Wrap(err, "find approved companions")
	}

	tokens := make([]string, 0, len(companions))
	for _, companion := range companions {
		if companion.Approved {
			tokens = append(tokens, companion.Token)
		}
	}

	return tokens, nil
}

func embeddedTokens(_ context.Context, family *entity.Family) ([]string, error) {
	return family.RecipientTokens, nil
}

func uniqueTokens(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}

	return out
}

type sendResult struct {
	idx          int
	outcome      entity.RecipientOutcome
	unregistered bool
}

// fanOut sends to every token at once. Recipients still running when the
// overall deadline passes are reported as failed and abandoned.
func (s *notificationService) fanOut(
	ctx context.Context,
	tokens []string,
	body string,
	data map[string]string,
) ([]entity.RecipientOutcome, []string) {
	fanCtx, cancel := context.WithTimeout(ctx, s.fanoutTimeout)
	defer cancel()

	results := make(chan sendResult, len(tokens))
	for i, token := range tokens {
		go func() {
			results <- s.sendOne(fanCtx, i, token, body, data)
		}()
	}

	outcomes := make([]entity.RecipientOutcome, len(tokens))
	received := make([]bool, len(tokens))
	var unregistered []string

collect:
	for range tokens {
		select {
		case res := <-results:
			outcomes[res.idx] = res.outcome
			received[res.idx] = true
			if res.unregistered {
				unregistered = append(unregistered, tokens[res.idx])
			}
		case <-fanCtx.Done():
			break collect
		}
	}

	for i, ok := range received {
		if !ok {
			outcomes[i] = entity.RecipientOutcome{
				Token: entity.TruncateToken(tokens[i]),
				Error: errFanoutDeadline,
			}
		}
	}

	return outcomes, unregistered
}

func (s *notificationService) sendOne(
	ctx context.Context,
	idx int,
	token, body string,
	data map[string]string,
) (res sendResult) {
	res = sendResult{idx: idx, outcome: entity.RecipientOutcome{Token: entity.TruncateToken(token)}}

	defer func() {
		if r := recover(); r != nil {
			res.outcome.Success = false
			res.outcome.Error = fmt.Sprintf("sender panic: %v", r)
		}
	}()

	sendCtx, cancel := context.WithTimeout(ctx, s.perRecipientTimeout)
	defer cancel()

	messageID, err := s.notificationSvc.SendSingleNotification(sendCtx, token, s.title, body, data)
	if err != nil {
		res.outcome.Error = domainerrors.ErrNotificationDeliveryFailed.WithDetails(err.Error()).Error()
		res.unregistered = errors.Is(err, service.ErrTokenUnregistered)

		s.log(ctx).Warn("Notification delivery failed",
			slog.String("token", res.outcome.Token),
			slog.Any("error", err),
		)

		return res
	}

	res.outcome.Success = true
	res.outcome.MessageID = messageID

	return res
}

func (s *notificationService) pruneTokens(ctx context.Context, tokens []string) {
	removed, err := s.deviceRepo.DeleteDevicesByToken(ctx, tokens)
	if err != nil {
		s.log(ctx).Warn("Failed to prune unregistered tokens", slog.Any("error", err))

		return
	}

	s.log(ctx).Info("Pruned unregistered device tokens", slog.Int("removed", removed))
}

// audit writes the report to the dispatch log. Failures never fail the send.
func (s *notificationService) audit(ctx context.Context, report *entity.DispatchReport) {
	if s.txManager == nil {
		return
	}

	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		return txRepoFactory.NewDispatchLogRepository().SaveReport(ctx, report)
	})
	if err != nil {
		s.log(ctx).Warn("Failed to write dispatch audit log",
			slog.String("report_id", report.ID.String()),
			slog.Any("error", err),
		)
	}
}

// GetDispatchHistory returns recent fan-out reports from the audit log
func (s *notificationService) GetDispatchHistory(ctx context.Context, familyID uuid.UUID, limit int) ([]*entity.DispatchReport, error) {
	if s.txManager == nil {
		return []*entity.DispatchReport{}, nil
	}
	if limit <= 0 {
		limit = defaultHistoryLen
	}

	var reports []*entity.DispatchReport
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		var listErr error
		reports, listErr = txRepoFactory.NewDispatchLogRepository().ListReports(ctx, familyID, limit)

		return listErr
	})
	if err != nil {
		return nil, domainerrors.NewPersistenceError(err, "list dispatch reports")
	}

	return reports, nil
}

func renderBody(family *entity.Family, kind entity.MessageKind, payload entity.Payload) (string, error) {
	switch kind {
	case entity.MessageInactivity:
		name := family.SubjectName
		if name == "" {
			name = "Your family member"
		}

		return fmt.Sprintf("%s has not been active for %s hours", name, payload["hours_inactive"]), nil
	default:
		return "", domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown message kind %q", kind))
	}
}
