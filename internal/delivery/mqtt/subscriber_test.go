package mqtt

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"lifeline/config"
	"lifeline/internal/delivery/signal"
	mockUsecase "lifeline/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSubscriber(t *testing.T) (*subscriber, *mockUsecase.MockFamilyUsecase) {
	familyUC := mockUsecase.NewMockFamilyUsecase(t)

	return &subscriber{
		cfg:      &config.MQTTConfig{Enabled: true, Broker: "tcp://localhost:1883", TopicPrefix: "lifeline/families/"},
		familyUC: familyUC,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, familyUC
}

func TestSubscriber_Topics(t *testing.T) {
	s, _ := newTestSubscriber(t)

	assert.Equal(t, []string{"lifeline/families/+/activity", "lifeline/families/+/location"}, s.topics())
}

func TestSubscriber_Handle(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("empty activity ping", func(t *testing.T) {
		s, familyUC := newTestSubscriber(t)
		familyUC.EXPECT().RecordActivity(mock.Anything, id, time.Time{}).Return(nil)

		require.NoError(t, s.handle(ctx, "lifeline/families/"+id.String()+"/activity", nil))
	})

	t.Run("location payload", func(t *testing.T) {
		s, familyUC := newTestSubscriber(t)
		at := time.Date(2026, 3, 2, 7, 30, 0, 0, time.UTC)
		familyUC.EXPECT().RecordLocation(mock.Anything, id, 48.85, 2.35, at).Return(nil)

		payload := []byte(`{"latitude":48.85,"longitude":2.35,"at":"2026-03-02T07:30:00Z"}`)
		require.NoError(t, s.handle(ctx, "lifeline/families/"+id.String()+"/location", payload))
	})

	t.Run("topic decides the family", func(t *testing.T) {
		s, familyUC := newTestSubscriber(t)
		familyUC.EXPECT().RecordActivity(mock.Anything, id, time.Time{}).Return(nil)

		payload := []byte(`{"family_id":"` + uuid.NewString() + `","type":"location"}`)
		require.NoError(t, s.handle(ctx, "lifeline/families/"+id.String()+"/activity", payload))
	})

	t.Run("foreign topics are malformed", func(t *testing.T) {
		s, _ := newTestSubscriber(t)

		for _, topic := range []string{
			"other/" + id.String() + "/activity",
			"lifeline/families/" + id.String(),
			"lifeline/families//activity",
			"lifeline/families/" + id.String() + "/activity/extra",
		} {
			assert.ErrorIs(t, s.handle(ctx, topic, nil), signal.ErrMalformed, topic)
		}
	})
}

func TestSubscriber_Disabled(t *testing.T) {
	s, _ := newTestSubscriber(t)
	s.cfg.Enabled = false

	require.NoError(t, s.Serve(context.Background()))
	require.NoError(t, s.stop(context.Background()))
}
