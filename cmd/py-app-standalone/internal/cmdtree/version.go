package cmdtree

import (
	"github.com/py-app-standalone/cli/internal/captain"
	"github.com/py-app-standalone/cli/internal/locale"
	"github.com/py-app-standalone/cli/internal/primer"
	"github.com/py-app-standalone/cli/internal/runners/version"
)

func newVersionCommand(prime *primer.Values) *captain.Command {
	runner := version.New(prime)

	return captain.NewCommand(
		"version",
		"",
		locale.T("version_description"),
		prime,
		nil,
		nil,
		func(ccmd *captain.Command, args []string) error {
			return runner.Run()
		},
	)
}
