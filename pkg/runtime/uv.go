package runtime

import (
	"os"
	"os/exec"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/py-app-standalone/cli/internal/constants"
	"github.com/py-app-standalone/cli/internal/errs"
	"github.com/py-app-standalone/cli/internal/exeutils"
	"github.com/py-app-standalone/cli/internal/fileutils"
	"github.com/py-app-standalone/cli/internal/locale"
	"github.com/py-app-standalone/cli/internal/logging"
)

// Overridable for tests
var (
	execSimple  = exeutils.ExecSimple
	execPipeStd = exeutils.ExecuteAndPipeStd
	lookPath    = exec.LookPath
)

// Configurer is the part of the config instance the package manager lookup needs
type Configurer interface {
	GetString(key string) string
}

// UV wraps the external uv executable that performs the actual Python
// install and package resolution.
type UV struct {
	exe     string
	version *goversion.Version
}

// NewUV locates uv and verifies it is recent enough. Lookup order: the
// configured path, the environment override, then PATH.
func NewUV(cfg Configurer) (*UV, error) {
	exe, err := findUvExe(cfg)
	if err != nil {
		return nil, err
	}

	version, err := uvVersion(exe)
	if err != nil {
		return nil, err
	}

	minVersion := goversion.Must(goversion.NewVersion(constants.MinUvVersion))
	if version.LessThan(minVersion) {
		return nil, locale.NewInputError("err_uv_outdated", "", version.String(), constants.MinUvVersion)
	}

	logging.Debug("Using uv %s at %s", version.String(), exe)
	return &UV{exe: exe, version: version}, nil
}

func findUvExe(cfg Configurer) (string, error) {
	if cfg != nil {
		if exe := cfg.GetString(constants.UvExeConfigKey); exe != "" {
			if !fileutils.FileExists(exe) {
				return "", locale.NewInputError("err_uv_not_found", "", constants.UvExeEnvVarName)
			}
			return exe, nil
		}
	}

	if exe := os.Getenv(constants.UvExeEnvVarName); exe != "" {
		if !fileutils.FileExists(exe) {
			return "", locale.NewInputError("err_uv_not_found", "", constants.UvExeEnvVarName)
		}
		return exe, nil
	}

	exe, err := lookPath("uv")
	if err != nil {
		return "", locale.WrapInputError(err, "err_uv_not_found", "", constants.UvExeEnvVarName)
	}
	return exe, nil
}

// uvVersion parses the output of `uv --version`, eg. "uv 0.6.14 (a4cec56dc 2025-04-09)"
func uvVersion(exe string) (*goversion.Version, error) {
	stdout, stderr, err := execSimple(exe, "--version")
	if err != nil {
		return nil, errs.Wrap(err, "uv --version failed, stderr: %s", stderr)
	}

	fields := strings.Fields(strings.TrimSpace(stdout))
	if len(fields) < 2 {
		return nil, errs.New("unexpected uv --version output: %s", stdout)
	}

	version, err := goversion.NewVersion(fields[1])
	if err != nil {
		return nil, errs.Wrap(err, "could not parse uv version from: %s", stdout)
	}
	return version, nil
}

// Exe returns the path of the uv executable in use
func (u *UV) Exe() string {
	return u.exe
}

// Version returns the detected uv version
func (u *UV) Version() string {
	return u.version.String()
}

// PythonInstall installs a managed Python build into the given directory
func (u *UV) PythonInstall(installDir, pythonVersion string) error {
	return u.run(
		"python", "install",
		// These are the uv-managed standalone Python builds.
		"--managed-python",
		"--install-dir", installDir,
		pythonVersion,
	)
}

// PipInstall installs the given packages onto the Python at pythonRoot
func (u *UV) PipInstall(pythonRoot string, packages []string) error {
	args := append([]string{"pip", "install"}, packages...)
	args = append(args,
		"--python", pythonRoot,
		// The install root is a managed install rather than a venv, so pip
		// needs to be told that writing to it is intended.
		"--break-system-packages",
	)
	return u.run(args...)
}

// run executes uv with stdout/stderr forwarded to the user, as uv's own
// progress output is half the user experience of a build.
func (u *UV) run(args ...string) error {
	code, _, err := execPipeStd(u.exe, args, nil)
	if err == nil && code == 0 {
		return nil
	}
	if code > 0 {
		// uv's exit code survives to our own exit status
		err = errs.WrapExitCode(err, code)
	}
	return locale.WrapExternalError(err, "err_uv_failed", "", "uv "+strings.Join(args, " "))
}
