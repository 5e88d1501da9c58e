package entity

import (
	"time"
	_ "time/tzdata" // IANA zones for subjects on minimal images

	"lifeline/internal/errors"
)

const (
	MinAlertThresholdHours = 1
	MaxAlertThresholdHours = 72
)

// MonitorSettings is owned by the subject and read by the scheduler.
type MonitorSettings struct {
	MonitoringEnabled   bool         `json:"monitoring_enabled"`
	AlertThresholdHours int          `json:"alert_threshold_hours"`
	SleepWindow         *SleepWindow `json:"sleep_window,omitempty"`
	Timezone            string       `json:"timezone,omitempty"` // IANA name; empty means the service default.
}

// Validate rejects settings the scheduler cannot evaluate.
func (s MonitorSettings) Validate() error {
	if s.AlertThresholdHours < MinAlertThresholdHours || s.AlertThresholdHours > MaxAlertThresholdHours {
		return errors.Errorf("alert threshold %d outside %d..%d hours",
			s.AlertThresholdHours, MinAlertThresholdHours, MaxAlertThresholdHours)
	}

	if s.SleepWindow != nil {
		if err := s.SleepWindow.Validate(); err != nil {
			return err
		}
	}

	if s.Timezone != "" {
		if _, err := time.LoadLocation(s.Timezone); err != nil {
			return errors.Wrapf(err, "timezone %q", s.Timezone)
		}
	}

	return nil
}

// LocalTime converts now into the subject's zone, falling back to def.
func (s MonitorSettings) LocalTime(now time.Time, def *time.Location) (time.Time, error) {
	if s.Timezone == "" {
		return now.In(def), nil
	}

	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "timezone %q", s.Timezone)
	}

	return now.In(loc), nil
}
