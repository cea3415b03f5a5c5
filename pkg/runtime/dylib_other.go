//go:build !darwin

package runtime

import (
	"github.com/py-app-standalone/cli/internal/output"
)

// Shared library install ids are a macOS concept, linux and windows builds
// rely on the text path rewrite alone.
func updateDylibIds(out output.Outputer, installRoot string) error {
	return nil
}
