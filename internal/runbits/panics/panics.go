package panics

import (
	"fmt"
	"os"

	"github.com/py-app-standalone/cli/internal/constants"
	"github.com/py-app-standalone/cli/internal/logging"
)

// HandlePanics produces actionable output for panic events (that shouldn't happen) and returns whether a panic event has been handled
func HandlePanics(recovered interface{}, stack []byte) bool {
	if recovered != nil {
		logging.Error("Panic: %v", recovered)
		logging.Debug("Stack: %s", string(stack))

		fmt.Fprintf(os.Stderr, `An unexpected error occurred while running %s.
Error: %v
Check the error log for more information: %s
Please consider reporting your issue at: %s
`, constants.CommandName, recovered, logging.FilePath(), constants.IssuesURL)
		return true
	}
	return false
}

// LogPanics logs panic events without printing to the user, for use in
// background goroutines that should not interrupt terminal output
func LogPanics(recovered interface{}, stack []byte) bool {
	if recovered != nil {
		logging.Error("Panic: %v", recovered)
		logging.Debug("Stack: %s", string(stack))
		return true
	}
	return false
}
