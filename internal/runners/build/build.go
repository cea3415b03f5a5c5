package build

import (
	"context"
	"strconv"
	"strings"

	"github.com/py-app-standalone/cli/internal/archiver"
	"github.com/py-app-standalone/cli/internal/config"
	"github.com/py-app-standalone/cli/internal/constants"
	"github.com/py-app-standalone/cli/internal/errs"
	"github.com/py-app-standalone/cli/internal/locale"
	"github.com/py-app-standalone/cli/internal/output"
	"github.com/py-app-standalone/cli/internal/primer"
	"github.com/py-app-standalone/cli/internal/prompt"
	"github.com/py-app-standalone/cli/pkg/buildspec"
	"github.com/py-app-standalone/cli/pkg/runtime"
)

type primeable interface {
	primer.Outputer
	primer.Prompter
	primer.Configurer
}

type Build struct {
	out    output.Outputer
	prompt prompt.Prompter
	cfg    *config.Instance
}

type Params struct {
	Packages []string
	Target   string
	Python   string
	SpecFile string
	Force    bool
	Archive  bool
}

func New(prime primeable) *Build {
	return &Build{
		out:    prime.Output(),
		prompt: prime.Prompt(),
		cfg:    prime.Config(),
	}
}

// resultOutput is what --output json callers get
type resultOutput struct {
	Target      string   `json:"target"`
	InstallRoot string   `json:"install_root"`
	Packages    []string `json:"packages"`
	Archive     string   `json:"archive,omitempty"`
	Remaining   []string `json:"not_relocated,omitempty"`
}

func (b *Build) Run(params *Params) error {
	spec, err := b.resolveSpec(params)
	if err != nil {
		return err
	}

	uv, err := runtime.NewUV(b.cfg)
	if err != nil {
		return err
	}

	result, err := runtime.NewSetup(b.out, b.prompt, uv).Build(&runtime.BuildParams{
		Spec:  spec,
		Force: params.Force,
	})
	if err != nil {
		return err
	}

	if len(result.Remaining) > 0 {
		b.out.Notice(locale.Tr("warn_relocate_remaining", itoa(len(result.Remaining))))
	}

	archivePath := ""
	if params.Archive {
		archivePath, err = archiver.Create(context.Background(), result.TargetAbs)
		if err != nil {
			return errs.Wrap(err, "Could not archive bundle at %s", result.TargetAbs)
		}
	}

	if b.out.Type() == output.JSONFormatName {
		b.out.Print(resultOutput{
			Target:      result.TargetAbs,
			InstallRoot: result.InstallRoot,
			Packages:    spec.PackageArgs(),
			Archive:     archivePath,
			Remaining:   result.Remaining,
		})
		return nil
	}

	b.out.Print(locale.Tr("build_success", itoa(len(spec.Requirements)), result.Target))
	if archivePath != "" {
		b.out.Print(locale.Tr("archive_success", archivePath))
	}
	return nil
}

// resolveSpec merges package args, spec file values, config defaults and
// built-in defaults, in that order of precedence.
func (b *Build) resolveSpec(params *Params) (*buildspec.BuildSpec, error) {
	packages := params.Packages
	python := params.Python
	target := params.Target

	if params.SpecFile != "" {
		if len(packages) > 0 {
			return nil, locale.NewInputError("err_specfile_args", "")
		}
		fv, err := buildspec.ReadFile(params.SpecFile)
		if err != nil {
			return nil, err
		}
		packages = fv.Packages
		if python == "" {
			python = fv.Python
		}
		if target == "" {
			target = fv.Target
		}
	}

	// Fall back to asking rather than erroring when nothing names a package
	if len(packages) == 0 && b.prompt != nil && b.prompt.IsInteractive() {
		response, err := b.prompt.Input(locale.T("build_prompt_packages"), nil)
		if err != nil {
			return nil, errs.Wrap(err, "Package prompt failed")
		}
		packages = strings.Fields(response)
	}

	if python == "" && b.cfg != nil {
		python = b.cfg.GetString(constants.DefaultPythonConfigKey)
	}
	if python == "" {
		python = constants.DefaultPythonVersion
	}
	if target == "" {
		target = constants.DefaultTargetDirName
	}

	return buildspec.New(packages, python, target)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
