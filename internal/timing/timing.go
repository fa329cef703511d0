// Package timing measures how long individual operations take and logs the
// result, gated behind a runtime toggle so the shell can flip measurement on
// and off without restarting.
package timing

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// Toggle is the runtime on/off switch for measurement. The zero value is
// off. Atomic only because the toggle is read on every tracked operation
// and flipping it should never race with a read.
type Toggle struct {
	enabled atomic.Bool
}

// Flip inverts the toggle and returns the new state.
func (t *Toggle) Flip() bool {
	for {
		old := t.enabled.Load()
		if t.enabled.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Set forces the toggle to a state.
func (t *Toggle) Set(on bool) {
	t.enabled.Store(on)
}

// Enabled reports the current state.
func (t *Toggle) Enabled() bool {
	return t.enabled.Load()
}

// Track starts a measurement and returns the function that finishes it:
//
//	defer timing.Track(logger, toggle, "search")()
//
// When the toggle is off the returned function does nothing, so tracked
// operations cost a single atomic load.
func Track(logger *slog.Logger, t *Toggle, op string) func() {
	if !t.Enabled() {
		return func() {}
	}
	start := time.Now()
	return func() {
		logger.Info("operation timed",
			slog.String("op", op),
			slog.Duration("duration", time.Since(start)),
		)
	}
}
