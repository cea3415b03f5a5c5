package events

import (
	"runtime/debug"
	"time"

	"github.com/py-app-standalone/cli/internal/logging"
	"github.com/py-app-standalone/cli/internal/runbits/panics"
)

type TimedOutError struct{}

func (et *TimedOutError) Timeout() bool {
	return true
}

func (et *TimedOutError) Error() string {
	return "timed out waiting for events"
}

// WaitForEvents runs the given cleanup functions, bailing out when the
// timeout is reached so a stuck reporter cannot hang the exit path. A
// panicking function is logged and does not stop the remaining ones.
func WaitForEvents(t time.Duration, events ...func()) error {
	wg := make(chan struct{})
	go func() {
		defer close(wg)
		for _, event := range events {
			func() {
				defer func() { panics.LogPanics(recover(), debug.Stack()) }()
				event()
			}()
		}
	}()

	select {
	case <-time.After(t):
		return &TimedOutError{}
	case <-wg:
		return nil
	}
}

// Close runs the given closer and logs any failure, for use in deferred shutdown paths
func Close(name string, closer func() error) {
	if err := closer(); err != nil {
		logging.Error("Failed to close %s: %v", name, err)
	}
}
