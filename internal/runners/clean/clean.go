package clean

import (
	"os"
	"path/filepath"

	"github.com/py-app-standalone/cli/internal/errs"
	"github.com/py-app-standalone/cli/internal/fileutils"
	"github.com/py-app-standalone/cli/internal/locale"
	"github.com/py-app-standalone/cli/internal/logging"
	"github.com/py-app-standalone/cli/internal/output"
	"github.com/py-app-standalone/cli/internal/primer"
	"github.com/py-app-standalone/cli/internal/prompt"
	"github.com/py-app-standalone/cli/internal/rtutils/ptr"
)

type primeable interface {
	primer.Outputer
	primer.Prompter
}

type Clean struct {
	out    output.Outputer
	prompt prompt.Prompter
}

type Params struct {
	Path  string
	Force bool
}

func New(prime primeable) *Clean {
	return &Clean{
		out:    prime.Output(),
		prompt: prime.Prompt(),
	}
}

func (c *Clean) Run(params *Params) error {
	path := params.Path

	if !fileutils.DirExists(path) {
		return locale.NewInputError("err_clean_no_bundle", "", path)
	}

	// Refuse to delete directories we did not produce, unless forced. A
	// bundle always holds a cpython-* install root.
	if !params.Force && !looksLikeBundle(path) {
		return locale.NewInputError("err_clean_not_bundle", "", path)
	}

	if !params.Force {
		confirmed, err := c.prompt.Confirm(locale.Tr("clean_confirm", path), ptr.To(false))
		if err != nil {
			return errs.Wrap(err, "Delete confirmation failed")
		}
		if !confirmed {
			return errs.Silence(locale.NewInputError("clean_aborted", ""))
		}
	}

	logging.Debug("Removing bundle at %s", path)
	if err := os.RemoveAll(path); err != nil {
		return locale.WrapError(err, "err_clean_remove", "", path)
	}

	c.out.Print(locale.Tr("clean_success", path))
	return nil
}

func looksLikeBundle(path string) bool {
	matches, err := filepath.Glob(filepath.Join(path, "cpython-*"))
	if err != nil {
		return false
	}
	for _, match := range matches {
		if fileutils.DirExists(match) {
			return true
		}
	}
	return false
}
