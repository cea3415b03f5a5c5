package locale

import (
	"errors"
	"strings"

	"github.com/py-app-standalone/cli/internal/errs"
	"github.com/py-app-standalone/cli/internal/osutils/stacktrace"
	"github.com/py-app-standalone/cli/internal/rtutils"
)

var _ ErrorLocalizer = &LocalizedError{}

// LocalizedError is an error that has the concept of user facing (localized) errors as well as whether an error is due
// to user input or not
type LocalizedError struct {
	wrapped     error
	tips        []string
	localized   string
	stack       *stacktrace.Stacktrace
	inputErr    bool
	externalErr bool
}

// Error is the error message
func (e *LocalizedError) Error() string {
	return e.localized
}

// LocaleError is the user facing error message, it's the same as Error() but identifies it as being user facing
func (e *LocalizedError) LocaleError() string {
	return e.localized
}

// Stack is the stacktrace leading up to where this error was triggered
func (e *LocalizedError) Stack() *stacktrace.Stacktrace {
	return e.stack
}

// Unwrap returns the parent error, if applicable
func (e *LocalizedError) Unwrap() error {
	return e.wrapped
}

// InputError returns whether this is an error due to user input
func (e *LocalizedError) InputError() bool {
	return e.inputErr
}

// ExternalError returns whether the cause of this error sits outside this codebase
func (e *LocalizedError) ExternalError() bool {
	return e.externalErr
}

func (e *LocalizedError) ErrorTips() []string {
	return e.tips
}

func (e *LocalizedError) AddTips(tips ...string) {
	e.tips = append(e.tips, tips...)
}

// ErrorLocalizer represents a localized error
type ErrorLocalizer interface {
	error
	LocaleError() string
}

// ErrorInput represents a user input error
type ErrorInput interface {
	InputError() bool
}

// NewError creates a new error, it does a locale.Tl lookup of the given id, if the lookup fails it will use the
// locale string instead
func NewError(id string, args ...string) *LocalizedError {
	return WrapError(nil, id, args...)
}

// WrapError creates a new error that wraps the given error, it does a locale.Tl lookup of the given id, if the lookup
// fails it will use the locale string instead
func WrapError(err error, id string, args ...string) *LocalizedError {
	locale := id
	if len(args) > 0 {
		locale, args = args[0], args[1:]
	}

	l := &LocalizedError{}
	l.wrapped = err
	l.tips = []string{}
	l.localized = Tl(id, locale, args...)
	l.stack = stacktrace.GetWithSkip([]string{rtutils.CurrentFile()})

	return l
}

// NewInputError is like NewError but marks it as an input error
func NewInputError(id string, args ...string) *LocalizedError {
	return WrapInputError(nil, id, args...)
}

// WrapInputError is like WrapError but marks it as an input error
func WrapInputError(err error, id string, args ...string) *LocalizedError {
	l := WrapError(err, id, args...)
	l.inputErr = true
	return l
}

// NewExternalError is like NewError but marks the cause as sitting outside
// this codebase, eg. the delegated tool failing
func NewExternalError(id string, args ...string) *LocalizedError {
	return WrapExternalError(nil, id, args...)
}

// WrapExternalError is like WrapError but marks the cause as sitting outside this codebase
func WrapExternalError(err error, id string, args ...string) *LocalizedError {
	l := WrapError(err, id, args...)
	l.externalErr = true
	return l
}

// IsError checks if the given error is an ErrorLocalizer
func IsError(err error) bool {
	_, ok := err.(ErrorLocalizer)
	return ok
}

// HasError checks the error chain for an ErrorLocalizer
func HasError(err error) bool {
	var el ErrorLocalizer
	return errors.As(err, &el)
}

// IsInputError checks if the given error contains an InputError anywhere in the unwrap stack
func IsInputError(err error) bool {
	if err == nil {
		return false
	}
	for _, err := range errs.Unpack(err) {
		errInput, ok := err.(ErrorInput)
		if ok && errInput.InputError() {
			return true
		}
	}
	return false
}

// JoinedErrorMessage joins the localized messages in the unwrap chain, which
// is what gets presented to the user.
func JoinedErrorMessage(err error) string {
	var message []string
	for _, err := range errs.Unpack(err) {
		el, ok := err.(ErrorLocalizer)
		if !ok {
			continue
		}
		message = append(message, el.LocaleError())
	}
	if len(message) == 0 {
		return Tl("err_unknown", "An unknown error occurred")
	}
	return strings.Join(message, ": ")
}

// ErrorMessage returns the localized message of the outermost localized error,
// falling back to the plain error message.
func ErrorMessage(err error) string {
	var el ErrorLocalizer
	if errors.As(err, &el) {
		return el.LocaleError()
	}
	return err.Error()
}
