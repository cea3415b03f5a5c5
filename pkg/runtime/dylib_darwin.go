//go:build darwin

package runtime

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/py-app-standalone/cli/internal/errs"
	"github.com/py-app-standalone/cli/internal/exeutils"
	"github.com/py-app-standalone/cli/internal/logging"
	"github.com/py-app-standalone/cli/internal/output"
)

// updateDylibIds rewrites the install id of every dylib under lib/ so it no
// longer embeds the absolute build path. The new id is relative to the bin
// directory the interpreter runs from.
func updateDylibIds(out output.Outputer, installRoot string) error {
	libDir := filepath.Join(installRoot, "lib")

	return filepath.WalkDir(libDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".dylib") {
			return nil
		}

		relPath, err := filepath.Rel(installRoot, path)
		if err != nil {
			return errs.Wrap(err, "Could not relativize %s", path)
		}

		logging.Debug("Updating dylib id to remove absolute path: %s", path)
		newID := "@executable_path/../" + relPath
		_, stderr, err := exeutils.ExecSimple("install_name_tool", "-id", newID, path)
		if err != nil {
			return errs.Wrap(err, "install_name_tool failed for %s, stderr: %s", path, stderr)
		}
		return nil
	})
}
