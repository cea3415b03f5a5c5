package runtime

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/py-app-standalone/cli/internal/fileutils"
	"github.com/py-app-standalone/cli/internal/locale"
	"github.com/py-app-standalone/cli/internal/logging"
	"github.com/py-app-standalone/cli/internal/output"
	"github.com/py-app-standalone/cli/internal/progress"
)

// relocate rewrites the absolute build path to the relative target path in
// the files that may embed it: everything in bin/ plus the Python sources
// under lib/. Binary files are left alone, most do not carry absolute paths
// and the interpreter does not read them at startup.
//
// Returns the files that still contain the absolute path afterwards, so the
// caller can warn about them.
func relocate(out output.Outputer, installRoot, absPath, relPath string) ([]string, error) {
	logging.Debug("Replacing all absolute paths under %s: `%s` -> `%s`", installRoot, absPath, relPath)

	targets, err := relocationTargets(installRoot)
	if err != nil {
		return nil, locale.WrapError(err, "err_relocate_failed", "", installRoot)
	}

	prog := progress.New(progressWriter(out), "Relocating", int64(len(targets)))
	defer prog.Close()

	textOnly := func(path string, contents []byte) bool {
		return !fileutils.IsBinary(contents)
	}

	for _, path := range targets {
		if err := fileutils.ReplaceAll(path, absPath, relPath, textOnly); err != nil {
			prog.Abort()
			return nil, locale.WrapError(err, "err_relocate_failed", "", installRoot)
		}
		prog.Increment()
	}

	logging.Debug("Sanity checking if any absolute paths remain")
	matches, err := fileutils.MatchesInDirectory(installRoot, absPath)
	if err != nil {
		return nil, locale.WrapError(err, "err_relocate_failed", "", installRoot)
	}
	for _, match := range matches {
		logging.Warning("Absolute path remains in: %s", match)
	}

	return matches, nil
}

// relocationTargets collects bin/* and lib/**/*.py
func relocationTargets(installRoot string) ([]string, error) {
	targets := []string{}

	binDir := filepath.Join(installRoot, "bin")
	entries, err := os.ReadDir(binDir)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(binDir, entry.Name())
		if fileutils.IsSymlink(path) {
			continue
		}
		targets = append(targets, path)
	}

	libDir := filepath.Join(installRoot, "lib")
	err = filepath.WalkDir(libDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".py") || fileutils.IsSymlink(path) {
			return nil
		}
		targets = append(targets, path)
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return targets, nil
}

// progressWriter returns where the progress bar should render. Only the
// plain outputer gets a live bar, structured output must stay parseable.
func progressWriter(out output.Outputer) io.Writer {
	if out.Type() != output.PlainFormatName || out.Config().ErrWriter == nil || !out.Config().Interactive {
		return io.Discard
	}
	return out.Config().ErrWriter
}
