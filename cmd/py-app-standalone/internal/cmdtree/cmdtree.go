// Package cmdtree wires the command surface: the root command performs the
// build, subcommands cover cleanup, version reporting and persisted defaults.
package cmdtree

import (
	"github.com/py-app-standalone/cli/internal/captain"
	"github.com/py-app-standalone/cli/internal/condition"
	"github.com/py-app-standalone/cli/internal/constants"
	"github.com/py-app-standalone/cli/internal/locale"
	"github.com/py-app-standalone/cli/internal/logging"
	"github.com/py-app-standalone/cli/internal/primer"
	"github.com/py-app-standalone/cli/internal/runners/build"
)

// CmdTree manages a tree of captain.Command instances.
type CmdTree struct {
	cmd *captain.Command
}

// New prepares a CmdTree.
func New(prime *primer.Values) *CmdTree {
	globals := newGlobalOptions()

	rootCmd := newRootCommand(prime, globals)
	rootCmd.AddChildren(
		newCleanCommand(prime),
		newVersionCommand(prime),
		newConfigCommand(prime),
	)

	return &CmdTree{cmd: rootCmd}
}

// Execute runs the CmdTree using the provided CLI arguments.
func (ct *CmdTree) Execute(args []string) error {
	return ct.cmd.Execute(args)
}

// Command returns the root command
func (ct *CmdTree) Command() *captain.Command {
	return ct.cmd
}

type globalOptions struct {
	Verbose        bool
	Output         string
	NonInteractive bool
}

func newGlobalOptions() *globalOptions {
	return &globalOptions{}
}

func newRootCommand(prime *primer.Values, globals *globalOptions) *captain.Command {
	runner := build.New(prime)

	params := build.Params{}
	return captain.NewCommand(
		constants.CommandName,
		"",
		locale.T("build_description"),
		prime,
		[]*captain.Flag{
			{
				Name:        "target",
				Shorthand:   "t",
				Description: locale.T("flag_target_description"),
				Value:       &params.Target,
			},
			{
				Name:        "python",
				Description: locale.T("flag_python_description"),
				Value:       &params.Python,
			},
			{
				Name:        "force",
				Shorthand:   "f",
				Description: locale.T("flag_force_description"),
				Value:       &params.Force,
			},
			{
				Name:        "archive",
				Description: locale.T("flag_archive_description"),
				Value:       &params.Archive,
			},
			{
				Name:        "spec-file",
				Description: locale.T("flag_specfile_description"),
				Value:       &params.SpecFile,
			},
			{
				// Name and Shorthand should be kept in sync with cmd/py-app-standalone/main.go
				Name:        "output",
				Shorthand:   "o",
				Persist:     true,
				Description: locale.T("flag_output_description"),
				Value:       &globals.Output,
			},
			{
				Name:        "verbose",
				Shorthand:   "v",
				Persist:     true,
				Description: locale.T("flag_verbose_description"),
				OnUse: func() {
					if !condition.InTest() {
						logging.CurrentHandler().SetVerbose(true)
					}
				},
				Value: &globals.Verbose,
			},
			{
				Name:        "non-interactive",
				Shorthand:   "n",
				Persist:     true,
				Description: locale.T("flag_noninteractive_description"),
				Value:       &globals.NonInteractive,
			},
		},
		[]*captain.Argument{
			{
				Name:        locale.T("arg_packages"),
				Description: locale.T("arg_packages_description"),
			},
		},
		func(ccmd *captain.Command, args []string) error {
			params.Packages = args
			return runner.Run(&params)
		},
	)
}
