package cmdtree

import (
	"github.com/py-app-standalone/cli/internal/captain"
	"github.com/py-app-standalone/cli/internal/locale"
	"github.com/py-app-standalone/cli/internal/primer"
	"github.com/py-app-standalone/cli/internal/runners/clean"
)

func newCleanCommand(prime *primer.Values) *captain.Command {
	runner := clean.New(prime)

	params := clean.Params{}
	return captain.NewCommand(
		"clean",
		"",
		locale.T("clean_description"),
		prime,
		[]*captain.Flag{
			{
				Name:        "force",
				Shorthand:   "f",
				Description: locale.T("flag_clean_force_description"),
				Value:       &params.Force,
			},
		},
		[]*captain.Argument{
			{
				Name:        locale.T("arg_clean_path"),
				Description: locale.T("arg_clean_path_description"),
				Required:    true,
				Value:       &params.Path,
			},
		},
		func(ccmd *captain.Command, args []string) error {
			return runner.Run(&params)
		},
	)
}
