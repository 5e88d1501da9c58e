package handler

import (
	"log/slog"
	"net/http"
	"time"

	"lifeline/internal/delivery/http/response"
	"lifeline/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TickHandlerParams holds dependencies for TickHandler, injected by Fx.
type TickHandlerParams struct {
	fx.In

	MonitorUC usecase.MonitorUsecase
	Logger    *slog.Logger
}

// TickHandler lets an external scheduler drive the monitor
type TickHandler struct {
	monitorUC usecase.MonitorUsecase
	logger    *slog.Logger
	now       func() time.Time
}

// NewTickHandler is the constructor for TickHandler
func NewTickHandler(params TickHandlerParams) *TickHandler {
	return &TickHandler{
		monitorUC: params.MonitorUC,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// Tick runs one monitoring pass and returns its report
func (h *TickHandler) Tick(c echo.Context) error {
	report, err := h.monitorUC.Tick(c.Request().Context(), h.now())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}
