package captain

import (
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/py-app-standalone/cli/internal/errs"
	"github.com/py-app-standalone/cli/internal/locale"
	"github.com/py-app-standalone/cli/internal/output"
	"github.com/py-app-standalone/cli/internal/primer"
)

type Executor func(cmd *Command, args []string) error

type Command struct {
	cobra *cobra.Command

	title string

	flags     []*Flag
	arguments []*Argument

	execute Executor

	out output.Outputer
}

func NewCommand(name, title, description string, prime *primer.Values, flags []*Flag, args []*Argument, executor Executor) *Command {
	// Validate args
	for idx, arg := range args {
		if idx > 0 && arg.Required && !args[idx-1].Required {
			msg := fmt.Sprintf(
				"Cannot have a non-required argument followed by a required argument.\n\n%v\n\n%v",
				arg, args[len(args)-1],
			)
			panic(msg)
		}
	}

	cmd := &Command{
		title:     title,
		execute:   executor,
		arguments: args,
		flags:     flags,
		out:       prime.Output(),
	}

	short := description
	if idx := strings.IndexByte(description, '.'); idx > 0 {
		short = description[0:idx]
	}

	cmd.cobra = &cobra.Command{
		Use:   name,
		Short: short,
		Long:  description,
		Args:  cmd.argValidator,
		RunE:  cmd.runner,

		// Silence errors and usage, we handle that ourselves
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	if err := cmd.setFlags(flags); err != nil {
		panic(err)
	}
	cmd.cobra.SetUsageFunc(cmd.usageFunc())

	return cmd
}

func (c *Command) Usage() error {
	return c.cobra.Usage()
}

func (c *Command) UsageText() string {
	return c.cobra.UsageString()
}

func (c *Command) Execute(args []string) error {
	c.cobra.SetArgs(args)
	err := c.cobra.Execute()
	c.cobra.SetArgs(nil)
	return setupSensibleErrors(err)
}

func (c *Command) AddChildren(children ...*Command) {
	for _, child := range children {
		c.cobra.AddCommand(child.cobra)
	}
}

func (c *Command) flagByName(name string) *Flag {
	for _, flag := range c.flags {
		if flag.Name == name {
			return flag
		}
	}
	return nil
}

// argValidator replaces cobra's default validation, which would reject
// arbitrary arguments on a root command that also has subcommands. Required
// arguments are checked in runner instead, where we can localize the error.
func (c *Command) argValidator(cobraCmd *cobra.Command, args []string) error {
	return nil
}

func (c *Command) runner(cobraCmd *cobra.Command, args []string) error {
	if c.title != "" {
		c.out.Notice(output.Title(c.title))
	}

	// Run OnUse functions for any flags that were set
	c.runFlags()

	for idx, arg := range c.arguments {
		if arg.Required && idx > len(args)-1 {
			return locale.NewInputError("err_arg_required", "", locale.T(arg.Name), locale.T(arg.Description))
		}

		if idx >= len(args) {
			break
		}

		switch v := arg.Value.(type) {
		case nil:
			// display-only argument, the executor consumes raw args
		case *string:
			*v = args[idx]
		case ArgMarshaler:
			if err := v.Set(args[idx]); err != nil {
				return err
			}
		default:
			return errs.New("arg: %s must be *string, or ArgMarshaler", arg.Name)
		}
	}

	return c.execute(c, args)
}

func (c *Command) runFlags() {
	if c.cobra.DisableFlagParsing {
		return
	}

	c.cobra.Flags().VisitAll(func(cobraFlag *pflag.Flag) {
		if !cobraFlag.Changed {
			return
		}

		flag := c.flagByName(cobraFlag.Name)
		if flag == nil || flag.OnUse == nil {
			return
		}

		flag.OnUse()
	})
}

// usageFunc renders the localized usage template. The template receives the
// cobra command as .Cmd and the localized argument list as .Arguments.
func (c *Command) usageFunc() func(*cobra.Command) error {
	return func(cobraCmd *cobra.Command) error {
		localizedArgs := []map[string]string{}
		for _, arg := range c.arguments {
			req := ""
			if arg.Required {
				req = "1"
			}
			localizedArgs = append(localizedArgs, map[string]string{
				"Name":        locale.T(arg.Name),
				"Description": locale.T(arg.Description),
				"Required":    req,
			})
		}

		tpl := template.New("usage_tpl")
		tpl.Funcs(template.FuncMap{
			"rpad":                    rpad,
			"trimTrailingWhitespaces": trimTrailingWhitespaces,
		})
		template.Must(tpl.Parse(locale.Tt("usage_tpl")))

		return tpl.Execute(cobraCmd.OutOrStdout(), map[string]interface{}{
			"Cmd":       cobraCmd,
			"Arguments": localizedArgs,
		})
	}
}

func rpad(s string, padding int) string {
	template := fmt.Sprintf("%%-%ds", padding)
	return fmt.Sprintf(template, s)
}

func trimTrailingWhitespaces(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
