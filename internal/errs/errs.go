package errs

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/py-app-standalone/cli/internal/osutils/stacktrace"
	"github.com/py-app-standalone/cli/internal/rtutils"
)

// Error enforces errors that include a stacktrace
type Error interface {
	error
	Unwrap() error
	Stack() *stacktrace.Stacktrace
}

// Errorable identifies a type as an error, because the empty interface is not a contract
type Errorable interface {
	Error() string
}

// WrapperError is what we use for errors created from this package, this does not mean every error returned from this
// package is wrapping something, it simply has the plumbing to.
type WrapperError struct {
	message string
	tips    []string
	wrapped error
	stack   *stacktrace.Stacktrace
}

func (e *WrapperError) Error() string {
	return e.message
}

// Unwrap returns the parent error, if one exists
func (e *WrapperError) Unwrap() error {
	return e.wrapped
}

// Stack returns the stacktrace for where this error was created
func (e *WrapperError) Stack() *stacktrace.Stacktrace {
	return e.stack
}

func (e *WrapperError) ErrorTips() []string {
	return e.tips
}

func (e *WrapperError) AddTips(tips ...string) {
	e.tips = append(e.tips, tips...)
}

func newError(message string, wrapTarget error) *WrapperError {
	return &WrapperError{
		message,
		[]string{},
		wrapTarget,
		stacktrace.GetWithSkip([]string{rtutils.CurrentFile()}),
	}
}

// New creates a new error, similar to errors.New
func New(message string, args ...interface{}) *WrapperError {
	return newError(fmt.Sprintf(message, args...), nil)
}

// Wrap creates a new error that wraps the given error
func Wrap(wrapTarget error, message string, args ...interface{}) *WrapperError {
	return newError(fmt.Sprintf(message, args...), wrapTarget)
}

// AddTips adds actionable suggestions to an error, wrapping it if it isn't one of ours
func AddTips(err error, tips ...string) error {
	var tipper ErrorTipper
	if !errors.As(err, &tipper) {
		err = Wrap(err, "%s", err.Error())
		tipper = err.(*WrapperError)
	}
	tipper.AddTips(tips...)
	return err
}

// ErrorTipper represents an error that can provide tips to the user
type ErrorTipper interface {
	error
	ErrorTips() []string
	AddTips(...string)
}

// Unpack will recursively unwrap the given error and return all individual errors in the chain
func Unpack(err error) []error {
	result := []error{}
	for err != nil {
		result = append(result, err)
		err = errors.Unwrap(err)
	}
	return result
}

// JoinMessage joins all error messages in the unwrap chain, giving a full
// picture of what went wrong for logging purposes.
func JoinMessage(err error) string {
	var message []string
	for _, err := range Unpack(err) {
		message = append(message, err.Error())
	}
	return strings.Join(message, ": ")
}

// Matches checks if the given error matches the given target error type.
// It acts like errors.As except it does not capture the matched value.
func Matches(err error, target interface{}) bool {
	if reflect.ValueOf(target).Kind() != reflect.Ptr {
		panic("target must be a pointer to an error type")
	}
	return errors.As(err, target)
}
