package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/py-app-standalone/cli/cmd/py-app-standalone/internal/cmdtree"
	"github.com/py-app-standalone/cli/internal/config"
	"github.com/py-app-standalone/cli/internal/constants"
	"github.com/py-app-standalone/cli/internal/errs"
	"github.com/py-app-standalone/cli/internal/events"
	"github.com/py-app-standalone/cli/internal/locale"
	"github.com/py-app-standalone/cli/internal/logging"
	"github.com/py-app-standalone/cli/internal/multilog"
	"github.com/py-app-standalone/cli/internal/output"
	"github.com/py-app-standalone/cli/internal/primer"
	"github.com/py-app-standalone/cli/internal/profile"
	"github.com/py-app-standalone/cli/internal/prompt"
	"github.com/py-app-standalone/cli/internal/rollbar"
	"github.com/py-app-standalone/cli/internal/runbits/panics"
)

func main() {
	startTime := time.Now()

	var exitCode int

	// Set up error reporting before anything can go wrong
	rollbar.Setup()

	var cfg *config.Instance
	defer func() {
		// Handle panics gracefully, and ensure that we exit with non-zero code
		if panics.HandlePanics(recover(), debug.Stack()) {
			exitCode = 1
		}

		// ensure reporting messages are flushed and the log is closed
		if err := events.WaitForEvents(5*time.Second, rollbar.Wait, logging.Close); err != nil {
			logging.Warning("Failed waiting for events: %v", err)
		}

		if cfg != nil {
			events.Close("config", cfg.Close)
		}

		profile.Measure("main", startTime)

		os.Exit(exitCode)
	}()

	var err error
	cfg, err = config.New()
	if err != nil {
		multilog.Critical("Could not initialize config: %v", errs.JoinMessage(err))
		fmt.Fprintf(os.Stderr, "Could not load config. Error: %s\n", errs.JoinMessage(err))
		exitCode = 1
		return
	}

	// Set up our output formatter/writer
	outFlags := parseOutputFlags(os.Args)
	out, err := output.New(outFlags.Output, &output.Config{
		OutWriter:   os.Stdout,
		ErrWriter:   os.Stderr,
		Colored:     shouldColor(),
		Interactive: isInteractive(outFlags),
	})
	if err != nil {
		multilog.Critical("Could not initialize outputer: %s", errs.JoinMessage(err))
		os.Stderr.WriteString(locale.Tr("err_main_outputer", err.Error()))
		exitCode = 1
		return
	}

	// Run our main command logic, which is logic that defers to the error handling logic below
	err = run(os.Args, isInteractive(outFlags), cfg, out)
	if err != nil {
		exitCode, err = unwrapError(err)
		if err != nil {
			out.Error(errorMessage(err))
			for _, tip := range errorTips(err) {
				out.Notice("  [NOTICE]•[/RESET] " + tip)
			}
		}
	}
}

func run(args []string, isInteractive bool, cfg *config.Instance, out output.Outputer) error {
	defer profile.Measure("main:run", time.Now())

	// Set up profiling
	if os.Getenv(constants.CPUProfileEnvVarName) != "" {
		cleanup, err := profile.CPU()
		if err != nil {
			return err
		}
		defer cleanup()
	}

	logging.CurrentHandler().SetVerbose(os.Getenv(constants.VerboseEnvVarName) != "" || argsHaveVerbose(args))
	logging.Debug("ConfigPath: %s", cfg.ConfigPath())

	prompter := prompt.New(out, isInteractive)

	cmds := cmdtree.New(primer.New(out, prompter, cfg))

	err := cmds.Execute(args[1:])
	if err != nil && locale.IsInputError(err) {
		err = errs.AddTips(err, locale.Tr("err_tip_run_help", constants.CommandName))
	}
	return err
}

type outputFlags struct {
	Output         string
	NonInteractive bool
}

// parseOutputFlags pre-parses the global flags the outputer setup needs,
// because the outputer has to exist before cobra runs.
// Name and Shorthand should be kept in sync with internal/cmdtree/cmdtree.go
func parseOutputFlags(args []string) outputFlags {
	flags := outputFlags{}
	for i, arg := range args {
		switch {
		case arg == "-o" || arg == "--output":
			if i+1 < len(args) {
				flags.Output = args[i+1]
			}
		case strings.HasPrefix(arg, "--output="):
			flags.Output = strings.TrimPrefix(arg, "--output=")
		case arg == "-n" || arg == "--non-interactive":
			flags.NonInteractive = true
		}
	}
	return flags
}

func argsHaveVerbose(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "--verbose" || arg == "-v" {
			return true
		}
	}
	return false
}

func isInteractive(flags outputFlags) bool {
	return strings.ToLower(os.Getenv(constants.NonInteractiveEnvVarName)) != "true" &&
		!flags.NonInteractive &&
		term.IsTerminal(int(os.Stdin.Fd()))
}

func shouldColor() bool {
	return os.Getenv("NO_COLOR") == "" && term.IsTerminal(int(os.Stdout.Fd()))
}
