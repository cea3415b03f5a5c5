package main

import (
	"errors"

	"github.com/py-app-standalone/cli/internal/errs"
	"github.com/py-app-standalone/cli/internal/locale"
	"github.com/py-app-standalone/cli/internal/logging"
	"github.com/py-app-standalone/cli/internal/multilog"
)

// unwrapError resolves an error returned from the command tree into an exit
// code and the error to present to the user. A nil error result means the
// error was silenced and nothing should be printed.
func unwrapError(err error) (int, error) {
	if err == nil {
		return 0, nil
	}

	// Input errors are the user's own, external errors already printed
	// their diagnostics. Neither should wake anyone up.
	if locale.IsInputError(err) {
		logging.Debug("Input error: %s", errs.JoinMessage(err))
	} else if errs.IsExternalError(err) {
		logging.Error("External error: %s", errs.JoinMessage(err))
	} else {
		stack := "not provided"
		var errStack errs.Error
		if errors.As(err, &errStack) {
			stack = errStack.Stack().String()
		}
		multilog.Critical("Returning error:\n%s\nCreated at:\n%s", errs.JoinMessage(err), stack)
	}

	code := errs.UnwrapExitCode(err)

	if errs.IsSilent(err) {
		logging.Debug("Suppressing silenced error: %s", errs.JoinMessage(err))
		return code, nil
	}

	return code, err
}

// errorMessage renders the user-visible message for an error. Errors marked
// user facing are shown verbatim, everything else goes through the localized
// message chain.
func errorMessage(err error) string {
	var userFacing errs.UserFacingError
	if errors.As(err, &userFacing) {
		return userFacing.UserError()
	}
	return locale.JoinedErrorMessage(err)
}

// errorTips collects the actionable tips attached anywhere in the error chain.
func errorTips(err error) []string {
	tips := []string{}
	for _, e := range errs.Unpack(err) {
		if tipper, ok := e.(errs.ErrorTipper); ok {
			tips = append(tips, tipper.ErrorTips()...)
		}
	}
	return tips
}
