package primer

import (
	"github.com/py-app-standalone/cli/internal/config"
	"github.com/py-app-standalone/cli/internal/output"
	"github.com/py-app-standalone/cli/internal/prompt"
)

type Values struct {
	output output.Outputer
	prompt prompt.Prompter
	config *config.Instance
}

func New(output output.Outputer, prompt prompt.Prompter, config *config.Instance) *Values {
	return &Values{
		output: output,
		prompt: prompt,
		config: config,
	}
}

type Outputer interface {
	Output() output.Outputer
}

type Prompter interface {
	Prompt() prompt.Prompter
}

type Configurer interface {
	Config() *config.Instance
}

func (v *Values) Output() output.Outputer {
	return v.output
}

func (v *Values) Prompt() prompt.Prompter {
	return v.prompt
}

func (v *Values) Config() *config.Instance {
	return v.config
}
