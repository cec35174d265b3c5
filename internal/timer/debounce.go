// Package timer provides the debouncer behind live evaluation.
package timer

import (
	"sync"
	"time"

	"github.com/hammamikhairi/ottocalc/internal/logger"
)

// DefaultDelay is the quiet period before a debounced action runs.
const DefaultDelay = 250 * time.Millisecond

// Option configures the debouncer.
type Option func(*Debouncer)

// WithDelay sets the quiet period. A delay <= 0 disables the debouncer:
// Trigger becomes a no-op.
func WithDelay(d time.Duration) Option {
	return func(db *Debouncer) {
		db.delay = d
	}
}

// Debouncer runs an action once a burst of triggers goes quiet. It holds a
// single slot: each Trigger cancels whatever was pending and schedules
// afresh, so at most one run is ever outstanding. Safe for concurrent use.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	action  func()
	pending *time.Timer
	gen     uint64
	stopped bool
	log     *logger.Logger
}

// NewDebouncer creates a debouncer that calls action on its own goroutine.
func NewDebouncer(action func(), log *logger.Logger, opts ...Option) *Debouncer {
	d := &Debouncer{
		delay:  DefaultDelay,
		action: action,
		log:    log,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Delay returns the configured quiet period.
func (d *Debouncer) Delay() time.Duration { return d.delay }

// Trigger (re)starts the quiet period.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped || d.delay <= 0 {
		return
	}
	if d.pending != nil && d.pending.Stop() {
		d.log.Debug("debounce: superseded pending run %d", d.gen)
	}
	d.gen++
	gen := d.gen
	d.pending = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// fire runs the action unless a later Trigger or Cancel retired gen. The
// generation check covers a timer whose Stop lost the race with expiry.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.pending = nil
	d.mu.Unlock()

	d.log.Debug("debounce: firing run %d", gen)
	d.action()
}

// Pending reports whether a run is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Cancel drops the pending run, if any. Reports whether one was dropped.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancelLocked()
}

func (d *Debouncer) cancelLocked() bool {
	if d.pending == nil {
		return false
	}
	d.pending.Stop()
	d.pending = nil
	d.gen++
	return true
}

// Stop cancels any pending run and disables further triggers.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
	d.stopped = true
}
