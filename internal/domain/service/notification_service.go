package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrTokenUnregistered marks a push token the transport will never accept again.
var ErrTokenUnregistered = errors.New("push token unregistered")

// NotificationService is the push transport: one call, one recipient.
type NotificationService interface {
	// SendSingleNotification delivers a message to token and returns the
	// transport message ID. Errors wrapping ErrTokenUnregistered mean the token
	// should be forgotten.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) (string, error)
}
