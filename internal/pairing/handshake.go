package pairing

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"lifeline/config"
	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/lifecycle"
	"lifeline/internal/errors"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrInProgress is returned by Start while an attempt is still waiting.
	ErrInProgress = errors.New("pairing handshake in progress")
	// ErrNotStarted is returned by Wait before the first Start.
	ErrNotStarted = errors.New("pairing handshake not started")
)

// Options tune one handshake
type Options struct {
	Timeout      time.Duration
	PollInterval time.Duration
	Logger       *slog.Logger
}

// deadline is Timeout from now, cut short by the code's own expiry.
func (o Options) deadline(expiresAt, now time.Time) time.Time {
	deadline := now.Add(o.Timeout)
	if !expiresAt.IsZero() && expiresAt.Before(deadline) {
		return expiresAt
	}

	return deadline
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = config.DefaultHandshakeTimeout
	}
	if o.PollInterval <= 0 {
		o.PollInterval = config.DefaultPollInterval
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	return o
}

// Result is the terminal outcome of an attempt
type Result struct {
	State    State
	FamilyID uuid.UUID
	Code     string
}

// attempt is one code's wait. The first observer to resolve it wins; every
// later resolve is a no-op.
type attempt struct {
	familyID uuid.UUID
	code     string
	deadline time.Time

	resolved atomic.Bool
	final    State // written once before done is closed
	done     chan struct{}
	stop     context.CancelFunc // ends the observers and the deadline

	cleanupOnce sync.Once
}

func (a *attempt) resolve(s State) bool {
	if !a.resolved.CompareAndSwap(false, true) {
		return false
	}

	a.final = s
	a.stop()
	close(a.done)

	return true
}

func (a *attempt) result() Result {
	return Result{State: a.final, FamilyID: a.familyID, Code: a.code}
}

// Handshake runs pairing attempts for one primary device. Attempts are
// sequential; a retry after rejection or timeout discards the old code.
type Handshake struct {
	backend Backend
	opts    Options

	mu      sync.Mutex
	current *attempt
	state   atomic.Int32
}

// NewHandshake creates an idle handshake
func NewHandshake(backend Backend, opts Options) *Handshake {
	return &Handshake{backend: backend, opts: opts.withDefaults()}
}

// State returns the state of the current attempt.
func (h *Handshake) State() State {
	return State(h.state.Load())
}

func (h *Handshake) setState(s State) {
	h.state.Store(int32(s))
}

// Start creates the family, issues its code and starts the subscription,
// the polling loop and the deadline.
func (h *Handshake) Start(ctx context.Context, in *usecase.SetupInput) (*usecase.SetupResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if prev := h.current; prev != nil {
		select {
		case <-prev.done:
		default:
			return nil, ErrInProgress
		}
		if prev.final != StateApproved {
			h.cleanup(prev)
		}
	}

	setup, err := h.backend.SetupFamily(ctx, in)
	if err != nil {
		h.setState(StateIdle)

		return nil, errors.Wrap(err, "setup family")
	}
	h.setState(StateCodeIssued)

	observeCtx, stop := context.WithCancel(context.WithoutCancel(ctx))
	a := &attempt{
		familyID: setup.Family.ID,
		code:     setup.Code,
		deadline: h.opts.deadline(setup.ExpiresAt, time.Now()),
		done:     make(chan struct{}),
		stop:     stop,
	}
	h.current = a

	logger := h.opts.Logger.With(
		slog.String("family_id", a.familyID.String()),
		slog.String("code", a.code),
	)

	h.setState(StateWaitingForApproval)
	go h.deadline(observeCtx, a, logger)
	go h.subscribe(observeCtx, a, logger)
	go h.poll(observeCtx, a, logger)

	return setup, nil
}

// finish resolves a and publishes the state only for the winning observer.
func (h *Handshake) finish(a *attempt, s State) bool {
	if !a.resolve(s) {
		return false
	}
	h.setState(s)

	return true
}

// Deadline reports when the current attempt times out, or the zero time
// before the first Start.
func (h *Handshake) Deadline() time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current == nil {
		return time.Time{}
	}

	return h.current.deadline
}

// deadline runs independently of both observers.
func (h *Handshake) deadline(ctx context.Context, a *attempt, logger *slog.Logger) {
	timer := time.NewTimer(time.Until(a.deadline))
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
		if h.finish(a, StateTimedOut) {
			logger.Info("Pairing timed out")
			h.cleanup(a)
		}
	}
}

func (h *Handshake) subscribe(ctx context.Context, a *attempt, logger *slog.Logger) {
	err := h.backend.WatchApproval(ctx, a.familyID, func(approval entity.ApprovalState) {
		if s, decided := stateFor(approval); decided && h.finish(a, s) {
			logger.Info("Pairing decided via subscription", slog.String("state", s.String()))
		}
	})
	if err != nil && ctx.Err() == nil {
		logger.Warn("Approval subscription failed, polling continues", slog.Any("error", err))
	}
}

func (h *Handshake) poll(ctx context.Context, a *attempt, logger *slog.Logger) {
	ticker := time.NewTicker(h.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		if ctx.Err() != nil {
			return
		}

		approval, err := h.backend.GetApproval(ctx, a.familyID)
		if err != nil {
			if ctx.Err() == nil {
				logger.Warn("Approval poll failed", slog.Any("error", err))
			}

			continue
		}

		if s, decided := stateFor(approval); decided && h.finish(a, s) {
			logger.Info("Pairing decided via polling", slog.String("state", s.String()))

			return
		}
	}
}

// Wait blocks until the current attempt is terminal or ctx is done. The
// attempt keeps running when ctx ends first.
func (h *Handshake) Wait(ctx context.Context) (Result, error) {
	h.mu.Lock()
	a := h.current
	h.mu.Unlock()

	if a == nil {
		return Result{}, ErrNotStarted
	}

	select {
	case <-a.done:
		return a.result(), nil
	case <-ctx.Done():
		return Result{State: h.State(), FamilyID: a.familyID, Code: a.code}, errors.WithStack(ctx.Err())
	}
}

// Cancel ends the current attempt and discards its code and unpaired
// family. Cancelling an approved attempt does nothing.
func (h *Handshake) Cancel(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	a := h.current
	if a == nil {
		return nil
	}

	h.finish(a, StateCancelled)
	<-a.done
	if a.final == StateApproved {
		return nil
	}

	return h.cleanupWith(ctx, a)
}

func (h *Handshake) cleanup(a *attempt) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := h.cleanupWith(ctx, a); err != nil {
		h.opts.Logger.Warn("Failed to discard pairing code",
			slog.String("family_id", a.familyID.String()),
			slog.Any("error", err),
		)
	}
}

func (h *Handshake) cleanupWith(ctx context.Context, a *attempt) error {
	var err error
	a.cleanupOnce.Do(func() {
		err = h.backend.CancelPairing(ctx, a.code, a.familyID)
	})

	return errors.Wrap(err, "cancel pairing")
}
