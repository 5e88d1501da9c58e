package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"lifeline/config"
	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/usecase"
	mockUsecase "lifeline/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestTicker(t *testing.T, monitor *config.MonitorConfig, monitorUC usecase.MonitorUsecase) (*ticker, *fxtest.Lifecycle) {
	lc := fxtest.NewLifecycle(t)
	d := NewTicker(Params{
		Lc:        lc,
		Config:    &config.Config{Monitor: monitor},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		MonitorUC: monitorUC,
	})

	return d.(*ticker), lc
}

func TestTicker_RunsOnStartAndOnInterval(t *testing.T) {
	monitorUC := mockUsecase.NewMockMonitorUsecase(t)
	ticks := make(chan string, 8)

	monitorUC.EXPECT().Tick(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, now time.Time) (*usecase.TickReport, error) {
			ticks <- deliverycontext.GetRequestIDFromContext(ctx)

			return &usecase.TickReport{Now: now}, nil
		})

	tk, lc := newTestTicker(t, &config.MonitorConfig{Enabled: true, TickInterval: 20 * time.Millisecond, RunOnStart: true}, monitorUC)
	lc.RequireStart()

	served := make(chan error, 1)
	go func() { served <- tk.Serve(context.Background()) }()

	first := <-ticks
	second := <-ticks
	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second, "each tick gets its own request ID")

	lc.RequireStop()
	require.NoError(t, <-served)
}

func TestTicker_Disabled(t *testing.T) {
	monitorUC := mockUsecase.NewMockMonitorUsecase(t)

	tk, lc := newTestTicker(t, &config.MonitorConfig{Enabled: false}, monitorUC)
	lc.RequireStart()

	require.NoError(t, tk.Serve(context.Background()))
	assert.Equal(t, config.DefaultTickInterval, tk.interval)

	lc.RequireStop()
}
