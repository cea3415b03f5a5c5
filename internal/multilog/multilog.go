// Package multilog logs to the log file as well as the error reporter, so
// that unexpected failures are persisted locally and triaged remotely.
package multilog

import (
	"fmt"

	"github.com/py-app-standalone/cli/internal/logging"
	"github.com/py-app-standalone/cli/internal/rollbar"
)

// Error logs at the ERROR level and reports the error
func Error(message string, args ...interface{}) {
	logging.Error(message, args...)
	rollbar.Report(fmt.Sprintf(message, args...), logging.ReadTail())
}

// Critical logs at the CRITICAL level and reports the error
func Critical(message string, args ...interface{}) {
	logging.Critical(message, args...)
	rollbar.Report(fmt.Sprintf(message, args...), logging.ReadTail())
}
