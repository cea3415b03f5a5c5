// Package output formats and writes whatever the runners want to say to the
// user. All user-visible prints go through an Outputer so that switching to
// structured output is a flag, not a rewrite.
package output

import (
	"io"

	"github.com/py-app-standalone/cli/internal/errs"
	"github.com/py-app-standalone/cli/internal/locale"
	"github.com/py-app-standalone/cli/internal/logging"
)

type Format string

// FormatName constants are tokens representing supported output formats.
const (
	PlainFormatName Format = "plain" // human readable
	JSONFormatName  Format = "json"  // plain json
)

// Outputer is the initialized formatter
type Outputer interface {
	Type() Format
	Print(value interface{})
	Error(value interface{})
	Notice(value interface{})
	Config() *Config
}

// Config is the thing we pass to Outputer constructors
type Config struct {
	OutWriter   io.Writer
	ErrWriter   io.Writer
	Colored     bool
	Interactive bool
}

// New constructs a new Outputer according to the given format name
func New(formatName string, config *Config) (Outputer, error) {
	logging.Debug("Requested outputer for %s", formatName)

	format := Format(formatName)
	switch format {
	case "", PlainFormatName:
		plain, err := NewPlain(config)
		if err != nil {
			return nil, errs.Wrap(err, "NewPlain failed")
		}
		return &plain, nil
	case JSONFormatName:
		json, err := NewJSON(config)
		if err != nil {
			return nil, errs.Wrap(err, "NewJSON failed")
		}
		return &json, nil
	}

	return nil, locale.NewInputError("err_unknown_format", "", string(formatName))
}
