package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"lifeline/internal/delivery/http/response"
	"lifeline/internal/domain/entity"
	"lifeline/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

const maxDispatchHistory = 100

// FamilyHandlerParams holds dependencies for FamilyHandler, injected by Fx.
type FamilyHandlerParams struct {
	fx.In

	PairingUC      usecase.PairingUsecase
	FamilyUC       usecase.FamilyUsecase
	MonitorUC      usecase.MonitorUsecase
	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// FamilyHandler serves the primary device's family endpoints
type FamilyHandler struct {
	pairingUC      usecase.PairingUsecase
	familyUC       usecase.FamilyUsecase
	monitorUC      usecase.MonitorUsecase
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
	now            func() time.Time
}

// NewFamilyHandler is the constructor for FamilyHandler
func NewFamilyHandler(params FamilyHandlerParams) *FamilyHandler {
	return &FamilyHandler{
		pairingUC:      params.PairingUC,
		familyUC:       params.FamilyUC,
		monitorUC:      params.MonitorUC,
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
		now:            time.Now,
	}
}

// SetupFamilyRequest represents the request body for starting a pairing
type SetupFamilyRequest struct {
	SubjectName     string           `json:"subject_name" validate:"required,max=100"`
	Settings        *SettingsRequest `json:"settings" validate:"omitempty"`
	RecipientTokens []string         `json:"recipient_tokens" validate:"max=20,dive,required"`
}

// ActivityRequest represents an activity signal. A missing time means now.
type ActivityRequest struct {
	At *time.Time `json:"at"`
}

// LocationRequest represents a position report
type LocationRequest struct {
	Latitude  float64    `json:"latitude" validate:"latitude"`
	Longitude float64    `json:"longitude" validate:"longitude"`
	At        *time.Time `json:"at"`
}

// FamilyStatusResponse is the family with derived monitoring state
type FamilyStatusResponse struct {
	Family        *entity.Family   `json:"family"`
	HoursInactive *int             `json:"hours_inactive,omitempty"`
	Location      *geojson.Feature `json:"location,omitempty"`
}

// SetupFamily creates an unpaired family and issues its connection code
func (h *FamilyHandler) SetupFamily(c echo.Context) error {
	var req SetupFamilyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid family input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	in := &usecase.SetupInput{
		SubjectName:     req.SubjectName,
		RecipientTokens: req.RecipientTokens,
	}
	if req.Settings != nil {
		settings := req.Settings.toEntity()
		in.Settings = &settings
	}

	result, err := h.pairingUC.SetupFamily(c.Request().Context(), in)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// GetFamily returns the family status
func (h *FamilyHandler) GetFamily(c echo.Context) error {
	id, ok := parseFamilyID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid family ID")
	}

	family, err := h.familyUC.GetFamily(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := &FamilyStatusResponse{Family: family}
	if hours, ok := family.HoursInactive(h.now()); ok {
		status.HoursInactive = &hours
	}
	if family.LastLocation != nil {
		status.Location = family.LastLocation.Feature()
	}

	return response.Success(c, http.StatusOK, status)
}

// UpdateSettings replaces the monitoring settings
func (h *FamilyHandler) UpdateSettings(c echo.Context) error {
	id, ok := parseFamilyID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid family ID")
	}

	var req SettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	family, err := h.familyUC.UpdateSettings(c.Request().Context(), id, req.toEntity())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, family)
}

// RecordActivity stores an activity signal from the primary device
func (h *FamilyHandler) RecordActivity(c echo.Context) error {
	id, ok := parseFamilyID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid family ID")
	}

	var req ActivityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}

	var at time.Time
	if req.At != nil {
		at = *req.At
	}

	if err := h.familyUC.RecordActivity(c.Request().Context(), id, at); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RecordLocation stores the last known position
func (h *FamilyHandler) RecordLocation(c echo.Context) error {
	id, ok := parseFamilyID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid family ID")
	}

	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	var at time.Time
	if req.At != nil {
		at = *req.At
	}

	if err := h.familyUC.RecordLocation(c.Request().Context(), id, req.Latitude, req.Longitude, at); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ResendAlert re-sends the notification of an active alert
func (h *FamilyHandler) ResendAlert(c echo.Context) error {
	id, ok := parseFamilyID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid family ID")
	}

	report, err := h.monitorUC.ResendAlert(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// GetDispatchHistory lists recent fan-out reports
func (h *FamilyHandler) GetDispatchHistory(c echo.Context) error {
	id, ok := parseFamilyID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid family ID")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxDispatchHistory {
			return response.BadRequest(c, "INVALID_LIMIT", "limit must be between 1 and 100")
		}
		limit = parsed
	}

	reports, err := h.notificationUC.GetDispatchHistory(c.Request().Context(), id, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reports)
}
