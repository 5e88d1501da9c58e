package service

import (
	"context"
	"time"
)

// AlertEventType distinguishes raise from clear.
type AlertEventType string

const (
	AlertRaised  AlertEventType = "alert.raised"
	AlertCleared AlertEventType = "alert.cleared"
)

// AlertEvent is emitted after an alert state change is persisted.
type AlertEvent struct {
	RequestID     string         `json:"request_id,omitempty"` // For distributed tracing
	Type          AlertEventType `json:"type"`
	FamilyID      string         `json:"family_id"`
	SubjectName   string         `json:"subject_name"`
	HoursInactive int            `json:"hours_inactive"`
	Latitude      *float64       `json:"latitude,omitempty"`
	Longitude     *float64       `json:"longitude,omitempty"`
	OccurredAt    time.Time      `json:"occurred_at"`
}

// EventPublisher publishes alert lifecycle events to a message bus
type EventPublisher interface {
	// PublishAlertEvent publishes one event. Delivery is best effort.
	PublishAlertEvent(ctx context.Context, event *AlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
