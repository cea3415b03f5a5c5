package configcmd

import (
	"strings"

	"github.com/py-app-standalone/cli/internal/config"
	"github.com/py-app-standalone/cli/internal/locale"
	"github.com/py-app-standalone/cli/internal/output"
	"github.com/py-app-standalone/cli/internal/primer"
)

type primeable interface {
	primer.Outputer
	primer.Configurer
}

type ConfigCmd struct {
	out output.Outputer
	cfg *config.Instance
}

func New(prime primeable) *ConfigCmd {
	return &ConfigCmd{
		out: prime.Output(),
		cfg: prime.Config(),
	}
}

type GetParams struct {
	Key string
}

func (c *ConfigCmd) Get(params *GetParams) error {
	if !config.KnownOption(params.Key) {
		return unknownKey(params.Key)
	}

	value := c.cfg.Get(params.Key)
	if value == nil {
		value = config.GetOption(params.Key).Default
	}
	c.out.Print(value)
	return nil
}

type SetParams struct {
	Key   string
	Value string
}

func (c *ConfigCmd) Set(params *SetParams) error {
	if !config.KnownOption(params.Key) {
		return unknownKey(params.Key)
	}

	if err := c.cfg.Set(params.Key, params.Value); err != nil {
		return locale.WrapError(err, "err_config_set", "", params.Key)
	}

	c.out.Print(locale.Tr("config_set_success", params.Key, params.Value))
	return nil
}

func unknownKey(key string) error {
	return locale.NewInputError("err_config_unknown_key", "", key, strings.Join(config.Registered(), ", "))
}
