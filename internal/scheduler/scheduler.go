package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rileyhilliard/minipadd/internal/errors"
	"github.com/rileyhilliard/minipadd/internal/logger"
	"golang.org/x/sync/errgroup"
)

// State is the scheduler's lifecycle position.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateCycleInFlight
	StateCancelled
)

// String returns a human-readable label for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCycleInFlight:
		return "cycle-in-flight"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Work is one refresh cycle.
type Work func(ctx context.Context) error

// Scheduler runs Work every Period. Each cycle starts the period timer and
// the work together and waits for both, so cycles never overlap and a slow
// cycle pushes the next one back instead of queueing extra runs.
type Scheduler struct {
	Period time.Duration
	Clock  Clock
	Logger logger.Logger

	// ContinueOnError logs a failed cycle and keeps going. By default the
	// first failure stops Run.
	ContinueOnError bool

	state  atomic.Int32
	cycles atomic.Int64
}

// New creates a scheduler on the wall clock.
func New(period time.Duration, log logger.Logger) *Scheduler {
	return &Scheduler{Period: period, Clock: RealClock{}, Logger: log}
}

// State returns the current lifecycle state.
func (s *Scheduler) State() State {
	return State(s.state.Load())
}

// Cycles returns how many cycles have finished, successfully or not.
func (s *Scheduler) Cycles() int64 {
	return s.cycles.Load()
}

func (s *Scheduler) setState(st State) {
	s.state.Store(int32(st))
}

// Run drives work until ctx is cancelled or a cycle fails. Cancellation is
// checked before each cycle and while waiting out the period; a cycle that
// has already started is waited for. Returns nil on cancellation.
func (s *Scheduler) Run(ctx context.Context, work Work) error {
	if s.Period <= 0 {
		return errors.New(errors.ErrConfig, "Refresh period must be positive",
			"Set REFRESH_PERIOD to a number of seconds greater than zero")
	}
	if s.Clock == nil {
		s.Clock = RealClock{}
	}
	if s.Logger == nil {
		s.Logger = logger.Noop()
	}

	s.setState(StateRunning)
	s.Logger.Info("scheduler started: period=%s", s.Period)

	for {
		if ctx.Err() != nil {
			return s.cancelled()
		}

		err := s.cycle(ctx, work)

		if ctx.Err() != nil {
			if err != nil {
				s.Logger.Debug("cycle ended by interrupt: %v", err)
			}
			return s.cancelled()
		}

		if err != nil {
			s.setState(StateIdle)
			return err
		}
	}
}

func (s *Scheduler) cancelled() error {
	s.setState(StateCancelled)
	s.Logger.Info("scheduler stopped after %d cycles", s.Cycles())
	return nil
}

// cycle runs one work unit alongside the period timer.
func (s *Scheduler) cycle(ctx context.Context, work Work) error {
	timer := s.Clock.NewTimer(s.Period)
	defer timer.Stop()

	g, gctx := errgroup.WithContext(ctx)

	s.setState(StateCycleInFlight)
	g.Go(func() error {
		defer s.setState(StateRunning)

		start := s.Clock.Now()
		err := work(ctx)
		elapsed := s.Clock.Now().Sub(start)
		n := s.cycles.Add(1)

		if elapsed > s.Period {
			s.Logger.Warn("cycle %d took %s, longer than the %s period", n, elapsed, s.Period)
		} else {
			s.Logger.Debug("cycle %d finished in %s", n, elapsed)
		}

		if err != nil && s.ContinueOnError && ctx.Err() == nil {
			s.Logger.Error("cycle %d failed: %v", n, err)
			return nil
		}
		return err
	})

	g.Go(func() error {
		select {
		case <-timer.C():
		case <-gctx.Done():
		}
		return nil
	})

	return g.Wait()
}
