package profile

import (
	"time"

	"github.com/py-app-standalone/cli/internal/logging"
)

// Measure logs the time a function took, pair it with a defer at the top of
// the function:
//
//	defer profile.Measure("runtime:Build", time.Now())
func Measure(name string, startTime time.Time) {
	logging.Debug("Profiling: %s, took: %s", name, time.Since(startTime))
}
