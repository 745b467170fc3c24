// Periodic refresh driver
package core

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// DriverState is the lifecycle state of a RefreshDriver.
type DriverState int

const (
	StateStopped DriverState = iota
	StateRunning
	StateTerminating
)

func (s DriverState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminating:
		return "terminating"
	default:
		return "stopped"
	}
}

// ErrDriverUsed is returned by Start on a driver that has already run. A
// fresh driver must be constructed to run again.
var ErrDriverUsed = errors.New("refresh driver cannot be restarted")

// RefreshDriver issues refresh requests at a fixed interval from its own
// goroutine. It never touches pixel data; each tick only asks the display
// layer for a redraw. Termination is cooperative: the loop observes the
// request after its current sleep or cycle completes, so in-flight work is
// allowed to finish.
type RefreshDriver struct {
	mu      sync.Mutex
	state   DriverState
	started bool

	tick     func()
	interval time.Duration
	cancel   context.CancelFunc
	ctx      context.Context
	done     chan struct{}
	logger   *logrus.Logger
}

// NewRefreshDriver creates a stopped driver that invokes tick once per
// interval while running.
func NewRefreshDriver(tick func(), logger *logrus.Logger) *RefreshDriver {
	return &RefreshDriver{
		tick:   tick,
		done:   make(chan struct{}),
		logger: logger,
	}
}

// Start launches the refresh loop. A driver runs at most once; starting a
// driver that has already run returns ErrDriverUsed.
func (d *RefreshDriver) Start(interval time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started {
		return ErrDriverUsed
	}
	d.started = true
	d.state = StateRunning
	d.interval = interval
	d.ctx, d.cancel = context.WithCancel(context.Background())

	d.logger.WithField("interval", interval.String()).Info("Refresh driver started")
	go d.run()
	return nil
}

// Terminate requests a cooperative stop. It returns immediately; the loop
// exits after the current sleep or cycle and the driver reaches the stopped
// state within one interval. Safe to call more than once.
func (d *RefreshDriver) Terminate() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != StateRunning {
		return
	}
	d.state = StateTerminating
	d.cancel()
	d.logger.Info("Refresh driver terminating")
}

// State returns the current lifecycle state.
func (d *RefreshDriver) State() DriverState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Done is closed once the loop has fully stopped.
func (d *RefreshDriver) Done() <-chan struct{} {
	return d.done
}

func (d *RefreshDriver) run() {
	defer func() {
		d.mu.Lock()
		d.state = StateStopped
		d.mu.Unlock()
		close(d.done)
		d.logger.Info("Refresh driver stopped")
	}()

	for {
		d.mu.Lock()
		running := d.state == StateRunning
		d.mu.Unlock()
		if !running {
			return
		}

		d.tick()

		if !d.sleepInterval() {
			return
		}
	}
}

// sleepInterval sleeps for the full refresh interval. An early wakeup causes
// the remaining time to be recomputed and slept again, never an early tick.
// It returns false when termination was requested during the sleep.
func (d *RefreshDriver) sleepInterval() bool {
	deadline := time.Now().Add(d.interval)

	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return true
		}

		timer := time.NewTimer(remaining)
		select {
		case <-timer.C:
		case <-d.ctx.Done():
			timer.Stop()
			return false
		}
	}
}
