// Package rollbar reports unexpected errors so they can be triaged without
// waiting for a user to file an issue. Reporting is strictly opt-in: nothing
// leaves the machine unless an access token is configured in the environment.
package rollbar

import (
	"os"

	"github.com/rollbar/rollbar-go"

	"github.com/py-app-standalone/cli/internal/condition"
	"github.com/py-app-standalone/cli/internal/constants"
)

var active bool

// Setup configures the rollbar client. It is a no-op unless the token env var
// is set and reporting hasn't been disabled.
func Setup() {
	token := os.Getenv(constants.RollbarTokenEnvVarName)
	if token == "" || os.Getenv(constants.DisableErrorReportingEnvVarName) != "" || condition.InTest() {
		return
	}

	rollbar.SetToken(token)
	rollbar.SetEnvironment(constants.BranchName)
	rollbar.SetCodeVersion(constants.Version)
	rollbar.SetServerRoot("github.com/py-app-standalone/cli")
	rollbar.SetCaptureIp(rollbar.CaptureIpNone)
	active = true
}

// Report sends an error message with the given log tail attached
func Report(message string, logTail string) {
	if !active {
		return
	}
	rollbar.Error(message, map[string]interface{}{
		"log_tail": logTail,
	})
}

// Wait blocks until all queued reports have been delivered
func Wait() {
	if !active {
		return
	}
	rollbar.Wait()
}
