package runtime

import (
	"os"
	"path/filepath"

	"github.com/py-app-standalone/cli/internal/errs"
	"github.com/py-app-standalone/cli/internal/logging"
)

// cleanPycacheDirs removes all __pycache__ directories under the given root.
// Compiled caches hold absolute paths and get rebuilt on first run anyway.
func cleanPycacheDirs(root string) error {
	var removed []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() || filepath.Base(path) != "__pycache__" {
			return nil
		}
		if err := os.RemoveAll(path); err != nil {
			return errs.Wrap(err, "Could not remove %s", path)
		}
		removed = append(removed, path)
		return filepath.SkipDir
	})
	if err != nil {
		return errs.Wrap(err, "Could not walk %s", root)
	}

	for _, path := range removed {
		logging.Debug("Removed: %s", path)
	}
	return nil
}
