package cmdtree

import (
	"github.com/py-app-standalone/cli/internal/captain"
	"github.com/py-app-standalone/cli/internal/locale"
	"github.com/py-app-standalone/cli/internal/primer"
	"github.com/py-app-standalone/cli/internal/runners/configcmd"
)

func newConfigCommand(prime *primer.Values) *captain.Command {
	cmd := captain.NewCommand(
		"config",
		"",
		locale.T("config_description"),
		prime,
		nil,
		nil,
		func(ccmd *captain.Command, args []string) error {
			return ccmd.Usage()
		},
	)

	cmd.AddChildren(
		newConfigGetCommand(prime),
		newConfigSetCommand(prime),
	)
	return cmd
}

func newConfigGetCommand(prime *primer.Values) *captain.Command {
	runner := configcmd.New(prime)

	params := configcmd.GetParams{}
	return captain.NewCommand(
		"get",
		"",
		locale.T("config_get_description"),
		prime,
		nil,
		[]*captain.Argument{
			{
				Name:        locale.T("arg_config_key"),
				Description: locale.T("arg_config_key_description"),
				Required:    true,
				Value:       &params.Key,
			},
		},
		func(ccmd *captain.Command, args []string) error {
			return runner.Get(&params)
		},
	)
}

func newConfigSetCommand(prime *primer.Values) *captain.Command {
	runner := configcmd.New(prime)

	params := configcmd.SetParams{}
	return captain.NewCommand(
		"set",
		"",
		locale.T("config_set_description"),
		prime,
		nil,
		[]*captain.Argument{
			{
				Name:        locale.T("arg_config_key"),
				Description: locale.T("arg_config_key_description"),
				Required:    true,
				Value:       &params.Key,
			},
			{
				Name:        locale.T("arg_config_value"),
				Description: locale.T("arg_config_value_description"),
				Required:    true,
				Value:       &params.Value,
			},
		},
		func(ccmd *captain.Command, args []string) error {
			return runner.Set(&params)
		},
	)
}
