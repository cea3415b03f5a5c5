package prompt

import (
	survey "gopkg.in/AlecAivazis/survey.v1"

	"github.com/py-app-standalone/cli/internal/errs"
	"github.com/py-app-standalone/cli/internal/locale"
	"github.com/py-app-standalone/cli/internal/logging"
	"github.com/py-app-standalone/cli/internal/output"
	"github.com/py-app-standalone/cli/internal/rtutils/ptr"
)

// Prompter is the interface used to run our prompt from, useful for mocking in tests
type Prompter interface {
	Input(message string, defaultResponse *string) (string, error)
	Select(message string, choices []string, defaultChoice *string) (string, error)
	Confirm(message string, defaultChoice *bool) (bool, error)
	IsInteractive() bool
}

// Prompt is our main prompting struct
type Prompt struct {
	out           output.Outputer
	isInteractive bool
}

// New creates a new prompter
func New(out output.Outputer, isInteractive bool) Prompter {
	return &Prompt{out: out, isInteractive: isInteractive}
}

// IsInteractive checks if the prompts can be interactive or should just return default values
func (p *Prompt) IsInteractive() bool {
	return p.isInteractive
}

// Input prompts the user for input. A nil default means there is no sensible
// default, which non-interactive mode resolves to an empty response.
func (p *Prompt) Input(message string, defaultResponse *string) (string, error) {
	defaultValue := ptr.From(defaultResponse, "")
	if !p.isInteractive {
		logging.Debug("Non-interactive mode: returning default input: %s", defaultValue)
		return defaultValue, nil
	}

	var response string
	err := survey.AskOne(&survey.Input{
		Message: formatMessage(message),
		Default: defaultValue,
	}, &response, nil)
	if err != nil {
		return "", locale.WrapInputError(err, "err_prompt_aborted", "")
	}
	return response, nil
}

// Select prompts the user to select one entry from multiple choices
func (p *Prompt) Select(message string, choices []string, defaultChoice *string) (string, error) {
	defaultValue := ptr.From(defaultChoice, "")
	if !p.isInteractive {
		logging.Debug("Non-interactive mode: returning default choice: %s", defaultValue)
		return defaultValue, nil
	}

	var response string
	err := survey.AskOne(&survey.Select{
		Message: formatMessage(message),
		Options: choices,
		Default: defaultValue,
	}, &response, nil)
	if err != nil {
		return "", locale.WrapInputError(err, "err_prompt_aborted", "")
	}
	return response, nil
}

// Confirm prompts user for yes or no response.
func (p *Prompt) Confirm(message string, defaultChoice *bool) (bool, error) {
	defaultValue := ptr.From(defaultChoice, false)
	if !p.isInteractive {
		choice := locale.T("confirm_choice_no")
		if defaultValue {
			choice = locale.T("confirm_choice_yes")
		}
		p.out.Notice(locale.Tr("confirm_noninteractive", message, choice))
		return defaultValue, nil
	}

	var resp bool
	err := survey.AskOne(&survey.Confirm{
		Message: formatMessage(message),
		Default: defaultValue,
	}, &resp, nil)
	if err != nil {
		if err.Error() == "interrupt" {
			return false, locale.WrapInputError(err, "err_prompt_aborted", "")
		}
		return false, errs.Wrap(err, "Confirm prompt failed")
	}
	return resp, nil
}

// formatMessage strips any color tags so markup never leaks into survey output
func formatMessage(message string) string {
	return output.StripColorTags(message)
}
