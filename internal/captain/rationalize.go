package captain

import (
	"strings"

	"github.com/py-app-standalone/cli/internal/locale"
)

// setupSensibleErrors inspects an error value for known cobra/pflag parse
// errors and converts them to localized input errors.
func setupSensibleErrors(err error) error {
	if err == nil {
		return nil
	}

	errMsg := err.Error()

	// pflag: flag.go: output being parsed:
	// fmt.Errorf("invalid argument %q for %q flag: %v", value, flagName, err)
	invalidArg := "invalid argument "
	if strings.Contains(errMsg, invalidArg) {
		segments := strings.SplitN(errMsg, ": ", 2)

		flagText := "{unknown flag}"
		msg := "unknown error"

		if len(segments) > 0 {
			subsegs := strings.SplitN(segments[0], "for ", 2)
			if len(subsegs) > 1 {
				flagText = strings.Trim(strings.TrimSuffix(subsegs[1], " flag"), `"`)
			}
		}

		if len(segments) > 1 {
			msg = segments[1]
		}

		return locale.WrapInputError(err, "err_cmd_flag_invalid_value", "", flagText, msg)
	}

	// pflag: flag.go: output being parsed:
	// fmt.Errorf("no such flag -%v", name)
	// fmt.Errorf("unknown flag: --%s", name)
	// fmt.Errorf("unknown shorthand flag: %q in -%s", char, shorthand)
	for _, prefix := range []string{"no such flag ", "unknown flag: ", "unknown shorthand flag: "} {
		if strings.HasPrefix(errMsg, prefix) {
			flagText := strings.TrimPrefix(errMsg, prefix)
			return locale.WrapInputError(err, "err_cmd_no_such_flag", "", flagText)
		}
	}

	// cobra: command.go: output being parsed:
	// fmt.Errorf("unknown command %q for %q%s", ...)
	if strings.HasPrefix(errMsg, "unknown command ") {
		return locale.WrapInputError(err, "err_cmd_unknown_command", "", errMsg)
	}

	return err
}
