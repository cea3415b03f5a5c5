package exeutils

import (
	"bytes"
	"os"
	"os/exec"

	"github.com/py-app-standalone/cli/internal/errs"
	"github.com/py-app-standalone/cli/internal/logging"
	"github.com/py-app-standalone/cli/internal/osutils"
)

func ExecSimple(bin string, args ...string) (string, string, error) {
	return ExecSimpleFromDir("", bin, args...)
}

func ExecSimpleFromDir(dir, bin string, args ...string) (string, string, error) {
	c := exec.Command(bin, args...)
	if dir != "" {
		c.Dir = dir
	}
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		return stdout.String(), stderr.String(), errs.Wrap(err, "Exec failed")
	}

	return stdout.String(), stderr.String(), nil
}

// Execute will run the given command and with optional settings for the exec.Cmd struct
func Execute(command string, arg []string, optSetter func(cmd *exec.Cmd) error) (int, *exec.Cmd, error) {
	cmd := exec.Command(command, arg...)

	if optSetter != nil {
		if err := optSetter(cmd); err != nil {
			return -1, nil, err
		}
	}

	logging.Debug("Executing command: %s", osutils.CmdString(cmd))

	err := cmd.Run()
	if err != nil {
		logging.Debug("Executing command returned error: %v", err)
	}
	return osutils.CmdExitCode(cmd), cmd, err
}

// ExecuteAndPipeStd will run the given command and pipe stdin, stdout and stderr
func ExecuteAndPipeStd(command string, arg []string, env []string) (int, *exec.Cmd, error) {
	logging.Debug("Executing command and piping std: %s, %v", command, arg)

	return Execute(command, arg, func(cmd *exec.Cmd) error {
		cmd.Env = os.Environ()
		cmd.Env = append(cmd.Env, env...)
		cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
		return nil
	})
}
