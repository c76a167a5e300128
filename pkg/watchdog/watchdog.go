package watchdog

import (
	"log/slog"
	"time"
)

// NewWatchdog shuts the turbine down when no readings arrive on input
// within the interval.
func NewWatchdog[T any](interval time.Duration, shutdown func() error, input <-chan T) func() error {
	return func() error {
		t := time.NewTimer(interval)
		awake := true
		slog.Debug("watchdog started", "timeout", interval)
		for {
			select {
			case <-input:
				awake = true
			case <-t.C:
				if !awake {
					slog.Error("watchdog timeout, parking rheostat", "timeout", interval)
					if err := shutdown(); err != nil {
						return err
					}
				}
				awake = false
			}
		}
	}
}
