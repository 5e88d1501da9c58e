package notification

import (
	"context"

	"lifeline/internal/domain/service"
	"lifeline/internal/errors"

	"firebase.google.com/go/v4/messaging"
)

// messageSender is the part of the FCM client the service uses
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messageSender
}

// NewFirebaseService creates the FCM push transport
func NewFirebaseService(client *messaging.Client) service.NotificationService {
	return &firebaseService{
		client: client,
	}
}

// SendSingleNotification sends a push notification to a single device token
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) (string, error) {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{"apns-priority": "10"},
		},
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		// Invalid or unregistered tokens will never be accepted again
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return "", errors.Wrapf(service.ErrTokenUnregistered, "send notification: %v", err)
		}

		return "", errors.Wrap(err, "failed to send notification")
	}

	return messageID, nil
}
