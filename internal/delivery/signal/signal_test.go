package signal

import (
	"context"
	"testing"
	"time"

	mockUsecase "lifeline/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	s, err := Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, s.Type)

	s, err = Decode([]byte(`{"type":"location","family_id":"x","latitude":1.5,"longitude":2.5}`))
	require.NoError(t, err)
	assert.Equal(t, TypeLocation, s.Type)
	require.NotNil(t, s.Latitude)
	assert.InDelta(t, 1.5, *s.Latitude, 1e-9)

	_, err = Decode([]byte(`{`))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	at := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	lat, lon := 25.03, 121.56

	t.Run("activity", func(t *testing.T) {
		familyUC := mockUsecase.NewMockFamilyUsecase(t)
		familyUC.EXPECT().RecordActivity(ctx, id, at).Return(nil)

		require.NoError(t, Apply(ctx, familyUC, &Signal{Type: TypeActivity, FamilyID: id.String(), At: &at}))
	})

	t.Run("location", func(t *testing.T) {
		familyUC := mockUsecase.NewMockFamilyUsecase(t)
		familyUC.EXPECT().RecordLocation(ctx, id, lat, lon, time.Time{}).Return(nil)

		require.NoError(t, Apply(ctx, familyUC, &Signal{Type: TypeLocation, FamilyID: id.String(), Latitude: &lat, Longitude: &lon}))
	})

	t.Run("malformed input", func(t *testing.T) {
		familyUC := mockUsecase.NewMockFamilyUsecase(t)

		tests := []*Signal{
			{Type: TypeActivity, FamilyID: "not-a-uuid"},
			{Type: TypeLocation, FamilyID: id.String(), Latitude: &lat},
			{Type: "heartbeat", FamilyID: id.String()},
		}
		for _, s := range tests {
			assert.ErrorIs(t, Apply(ctx, familyUC, s), ErrMalformed)
		}
	})
}
