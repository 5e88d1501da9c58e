package handler

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"lifeline/config"
	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/delivery/middleware"
	"lifeline/internal/delivery/signal"
	"lifeline/internal/domain/constants"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/errors"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MessageTypeTick asks the worker to run one monitoring pass.
const MessageTypeTick = "tick"

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// classify marks storage outages as retryable. Everything else would fail
// the same way on redelivery.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domainerrors.ErrPersistenceUnavailable) {
		return &retryableError{err: err}
	}

	return err
}

func isRetryableError(err error) bool {
	_, ok := errors.AsType[*retryableError](err)

	return ok
}

// PushHandler handles Pub/Sub push messages carrying device signals and
// scheduler ticks
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	familyUC       usecase.FamilyUsecase
	monitorUC      usecase.MonitorUsecase
	now            func() time.Time
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	FamilyUC  usecase.FamilyUsecase
	MonitorUC usecase.MonitorUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google push subscriptions attach a token
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		familyUC:       params.FamilyUC,
		monitorUC:      params.MonitorUC,
		now:            time.Now,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := middleware.VerifyGoogleToken(c.Request(), ""); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	msgType := pushMsg.Message.Attributes["type"]

	var sig *signal.Signal
	if msgType != MessageTypeTick {
		if sig, err = signal.Decode(data); err != nil {
			// Redelivery cannot fix the payload; ack it so it is dropped.
			h.logger.Warn("[Worker] Dropping malformed signal",
				slog.String("message_id", pushMsg.Message.MessageID),
				slog.Any("error", err),
			)

			return c.NoContent(http.StatusOK)
		}
		if msgType != "" {
			sig.Type = msgType
		}
		if sig.FamilyID == "" {
			sig.FamilyID = pushMsg.Message.Attributes["family_id"]
		}
		msgType = sig.Type
	}

	requestID := h.extractRequestID(ctx, &pushMsg, sig)
	ctx, reqLogger := deliverycontext.Scope(ctx, h.logger, requestID)

	reqLogger.Info("[Worker] Processing message",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("type", msgType),
	)

	if err := h.process(ctx, msgType, sig); err != nil {
		reqLogger.Error("[Worker] Failed to process message",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 makes Pub/Sub redeliver; 200 drops a message that can never succeed
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) process(ctx context.Context, msgType string, sig *signal.Signal) error {
	if msgType == MessageTypeTick {
		_, err := h.monitorUC.Tick(ctx, h.now())

		return classify(err)
	}

	return classify(signal.Apply(ctx, h.familyUC, sig))
}

// extractRequestID picks the request ID from message attributes, then the
// payload, then the push request, and generates one as a last resort.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, sig *signal.Signal) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if sig != nil && sig.RequestID != "" {
		return sig.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}
