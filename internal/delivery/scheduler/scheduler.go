// Package scheduler drives the monitor from an in-process ticker.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"lifeline/config"
	"lifeline/internal/delivery"
	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/usecase"

	"go.uber.org/fx"
)

// Params holds dependencies for the ticker, injected by Fx.
type Params struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	MonitorUC usecase.MonitorUsecase
}

type ticker struct {
	enabled    bool
	interval   time.Duration
	runOnStart bool
	monitorUC  usecase.MonitorUsecase
	logger     *slog.Logger
	now        func() time.Time

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewTicker creates the in-process tick delivery. It idles when
// monitor.enabled is off and an external trigger calls /internal/tick.
func NewTicker(params Params) delivery.Delivery {
	t := &ticker{
		monitorUC: params.MonitorUC,
		logger:    params.Logger,
		now:       time.Now,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	if cfg := params.Config.Monitor; cfg != nil {
		t.enabled = cfg.Enabled
		t.interval = cfg.TickInterval
		t.runOnStart = cfg.RunOnStart
	}
	if t.interval <= 0 {
		t.interval = config.DefaultTickInterval
	}

	params.Lc.Append(fx.Hook{
		OnStop: t.shutdown,
	})

	return t
}

// Serve ticks until shutdown. Ticks run one after another; a slow tick
// delays the next one instead of piling up.
func (t *ticker) Serve(ctx context.Context) error {
	defer close(t.done)

	if !t.enabled {
		t.logger.Info("In-process monitor ticker disabled")

		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-t.stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	t.logger.Info("Starting monitor ticker", slog.Duration("interval", t.interval))

	if t.runOnStart {
		t.runTick(ctx)
	}

	tk := time.NewTicker(t.interval)
	defer tk.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tk.C:
			t.runTick(ctx)
		}
	}
}

func (t *ticker) runTick(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, t.interval)
	defer cancel()
	ctx, logger := deliverycontext.Scope(ctx, t.logger, "")

	if _, err := t.monitorUC.Tick(ctx, t.now()); err != nil {
		logger.Error("Monitor tick failed", slog.Any("error", err))
	}
}

func (t *ticker) shutdown(ctx context.Context) error {
	t.stopOnce.Do(func() { close(t.stop) })

	select {
	case <-t.done:
	case <-ctx.Done():
	}

	return nil
}
