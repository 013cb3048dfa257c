package selection

import (
	"sync"
	"time"
)

// DebounceDelay is how long a qualifying selection must stay stable
// before it fires.
const DebounceDelay = 200 * time.Millisecond

// Debouncer holds a single pending timer: each new trigger cancels and
// replaces the previous one, so only the latest selection can fire.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DebounceDelay
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fire after the debounce delay. At fire time the
// captured text is re-verified against the live selection; if the user
// changed the selection while the timer was pending, the stale fire is
// dropped.
func (d *Debouncer) Trigger(captured string, live func() string, fire func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		if live != nil && live() != captured {
			return
		}
		fire()
	})
}

// Cancel drops any pending trigger without firing it.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
