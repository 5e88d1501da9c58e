package notification

import (
	"context"
	"testing"

	"lifeline/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSender struct {
	got       *messaging.Message
	messageID string
	err       error
}

func (s *stubSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	s.got = message

	return s.messageID, s.err
}

func TestFirebaseService_SendSingleNotification(t *testing.T) {
	sender := &stubSender{messageID: "projects/lifeline/messages/1"}
	svc := &firebaseService{client: sender}

	id, err := svc.SendSingleNotification(context.Background(), "token-1", "Lifeline", "body", map[string]string{"kind": "inactivity"})
	require.NoError(t, err)
	assert.Equal(t, "projects/lifeline/messages/1", id)
	assert.Equal(t, "token-1", sender.got.Token)
	assert.Equal(t, "Lifeline", sender.got.Notification.Title)
	assert.Equal(t, "inactivity", sender.got.Data["kind"])
}

func TestFirebaseService_TransportError(t *testing.T) {
	svc := &firebaseService{client: &stubSender{err: errors.New("unavailable")}}

	_, err := svc.SendSingleNotification(context.Background(), "token-1", "t", "b", nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrTokenUnregistered)
}
