// Package runtime builds the standalone Python bundle: it drives the
// external package manager to install a managed Python and the requested
// packages, then rewrites the absolute build paths so the result can be
// moved anywhere.
package runtime

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/gofrs/flock"

	"github.com/py-app-standalone/cli/internal/errs"
	"github.com/py-app-standalone/cli/internal/fileutils"
	"github.com/py-app-standalone/cli/internal/locale"
	"github.com/py-app-standalone/cli/internal/logging"
	"github.com/py-app-standalone/cli/internal/output"
	"github.com/py-app-standalone/cli/internal/profile"
	"github.com/py-app-standalone/cli/internal/prompt"
	"github.com/py-app-standalone/cli/internal/rtutils/ptr"
	"github.com/py-app-standalone/cli/pkg/buildspec"
)

type Setup struct {
	out    output.Outputer
	prompt prompt.Prompter
	uv     *UV
}

func NewSetup(out output.Outputer, prompt prompt.Prompter, uv *UV) *Setup {
	return &Setup{out: out, prompt: prompt, uv: uv}
}

type BuildParams struct {
	Spec  *buildspec.BuildSpec
	Force bool
}

type BuildResult struct {
	// Target is the bundle directory as the user named it
	Target string
	// TargetAbs is the resolved absolute bundle directory
	TargetAbs string
	// InstallRoot is the cpython-* directory inside the bundle
	InstallRoot string
	// Remaining lists files that still embed the absolute build path
	Remaining []string
}

// Build runs the full bundle pipeline. On failure it removes the target
// directory again if this build created it, a half-installed bundle is worse
// than no bundle.
func (s *Setup) Build(params *BuildParams) (_ *BuildResult, rerr error) {
	defer profile.Measure("runtime:Build", time.Now())

	spec := params.Spec
	target := spec.Target

	// Symlinked targets get resolved so the lock and the path rewrite
	// address the same canonical path.
	targetAbs, err := fileutils.ResolveUniquePath(target)
	if err != nil {
		return nil, errs.Wrap(err, "Could not resolve target dir %s", target)
	}

	existed := fileutils.TargetExists(targetAbs)
	if existed && !params.Force {
		if !s.prompt.IsInteractive() {
			return nil, locale.NewInputError("err_target_exists", "", target)
		}
		overwrite := locale.T("prompt_overwrite")
		abort := locale.T("prompt_abort")
		choice, err := s.prompt.Select(
			locale.Tr("build_target_exists_prompt", target),
			[]string{overwrite, abort},
			ptr.To(abort),
		)
		if err != nil {
			return nil, errs.Wrap(err, "Overwrite prompt failed")
		}
		if choice != overwrite {
			s.out.Notice(locale.T("build_aborted"))
			return nil, errs.Silence(locale.NewInputError("build_aborted", ""))
		}
	}

	if err := fileutils.MkdirUnlessExists(filepath.Dir(targetAbs)); err != nil {
		return nil, locale.WrapError(err, "err_target_create", "", target)
	}

	// Guard against concurrent builds into the same target
	lock := flock.New(targetAbs + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, errs.Wrap(err, "Could not acquire build lock for %s", targetAbs)
	}
	if !locked {
		return nil, locale.NewInputError("err_target_locked", "", target)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logging.Warning("Could not release build lock: %v", err)
		}
		os.Remove(lock.Path())
	}()

	defer func() {
		if rerr != nil && !existed {
			logging.Debug("Cleaning up partial bundle at %s", targetAbs)
			if err := os.RemoveAll(targetAbs); err != nil {
				logging.Warning("Could not clean up partial bundle: %v", err)
			}
		}
	}()

	if err := s.uv.PythonInstall(targetAbs, spec.PythonVersion); err != nil {
		return nil, err
	}

	installRoot, err := findInstallRoot(targetAbs, spec.PythonVersion)
	if err != nil {
		return nil, err
	}

	pipPath := filepath.Join(installRoot, "bin", "pip")
	if !fileutils.FileExists(pipPath) || !fileutils.IsExecutable(pipPath) {
		return nil, locale.NewError("err_pip_missing", "", installRoot, pipPath)
	}

	if err := s.uv.PipInstall(installRoot, spec.PackageArgs()); err != nil {
		return nil, err
	}

	// Compiled caches embed absolute paths and are rebuilt on first run
	if err := cleanPycacheDirs(targetAbs); err != nil {
		return nil, err
	}

	if runtime.GOOS == "darwin" {
		if err := updateDylibIds(s.out, installRoot); err != nil {
			return nil, err
		}
	}

	remaining, err := relocate(s.out, installRoot, targetAbs, relocatedPath(target, targetAbs))
	if err != nil {
		return nil, err
	}

	return &BuildResult{
		Target:      target,
		TargetAbs:   targetAbs,
		InstallRoot: installRoot,
		Remaining:   remaining,
	}, nil
}

// relocatedPath is what the absolute build path gets rewritten to. The
// target as the user typed it is used when it is already relative, otherwise
// it is relativized against the working directory so an absolute --target
// still yields a movable bundle.
func relocatedPath(target, targetAbs string) string {
	if !filepath.IsAbs(target) {
		return target
	}
	cwd, err := os.Getwd()
	if err != nil {
		return target
	}
	rel, err := filepath.Rel(cwd, targetAbs)
	if err != nil {
		return target
	}
	return rel
}

// findInstallRoot locates the cpython-<version>* directory the install
// produced inside the target dir.
func findInstallRoot(targetAbs, pythonVersion string) (string, error) {
	pattern := filepath.Join(targetAbs, "cpython-"+pythonVersion+"*")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", errs.Wrap(err, "Bad install root pattern %s", pattern)
	}

	dirs := matches[:0]
	for _, match := range matches {
		if fileutils.DirExists(match) {
			dirs = append(dirs, match)
		}
	}
	if len(dirs) == 0 {
		return "", locale.NewError("err_install_root_missing", "", targetAbs, pattern)
	}

	sort.Strings(dirs)
	return dirs[0], nil
}
