package handler

import (
	"lifeline/internal/domain/entity"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SleepWindowRequest is the do-not-disturb range in local minutes of day
type SleepWindowRequest struct {
	Enabled          bool  `json:"enabled"`
	StartMinuteOfDay int   `json:"start_minute_of_day" validate:"min=0,max=1439"`
	EndMinuteOfDay   int   `json:"end_minute_of_day" validate:"min=0,max=1439"`
	ActiveWeekdays   []int `json:"active_weekdays" validate:"dive,min=1,max=7"`
}

// SettingsRequest represents monitoring settings in request bodies
type SettingsRequest struct {
	MonitoringEnabled   bool                `json:"monitoring_enabled"`
	AlertThresholdHours int                 `json:"alert_threshold_hours" validate:"min=1,max=72"`
	SleepWindow         *SleepWindowRequest `json:"sleep_window" validate:"omitempty"`
	Timezone            string              `json:"timezone" validate:"omitempty,timezone"`
}

func (r *SettingsRequest) toEntity() entity.MonitorSettings {
	settings := entity.MonitorSettings{
		MonitoringEnabled:   r.MonitoringEnabled,
		AlertThresholdHours: r.AlertThresholdHours,
		Timezone:            r.Timezone,
	}
	if r.SleepWindow != nil {
		settings.SleepWindow = &entity.SleepWindow{
			Enabled:          r.SleepWindow.Enabled,
			StartMinuteOfDay: r.SleepWindow.StartMinuteOfDay,
			EndMinuteOfDay:   r.SleepWindow.EndMinuteOfDay,
			ActiveWeekdays:   r.SleepWindow.ActiveWeekdays,
		}
	}

	return settings
}

// DeviceRequest carries a watcher device for push registration
type DeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"omitempty,oneof=ios android"`
}

func (r *DeviceRequest) toDeviceInfo() *usecase.DeviceInfo {
	if r == nil {
		return nil
	}

	return &usecase.DeviceInfo{
		FCMToken: r.FCMToken,
		DeviceID: r.DeviceID,
		Platform: r.Platform,
	}
}

// codeParam binds and checks the :code path segment
type codeParam struct {
	Code string `param:"code" validate:"len=4,numeric"`
}

func bindCode(c echo.Context) (string, error) {
	var p codeParam
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &p); err != nil {
		return "", err
	}
	if err := c.Validate(&p); err != nil {
		return "", err
	}

	return p.Code, nil
}

func parseFamilyID(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))

	return id, err == nil
}
