package output

import (
	"encoding/json"

	"github.com/py-app-standalone/cli/internal/logging"
)

// JSON is our structured outputer, anything not JSON-marshalable is a
// programming error.
type JSON struct {
	cfg *Config
}

// NewJSON constructs a new JSON outputer
func NewJSON(config *Config) (JSON, error) {
	return JSON{config}, nil
}

// Type tells callers what type of outputer we are
func (f *JSON) Type() Format {
	return JSONFormatName
}

// Print will marshal and print the given value to the output writer
func (f *JSON) Print(value interface{}) {
	if v, ok := value.(string); ok {
		value = struct {
			Message string `json:"message"`
		}{v}
	}

	b, err := json.Marshal(value)
	if err != nil {
		logging.Error("Could not marshal value, error: %v", err)
		f.Error("Could not marshal value to JSON")
		return
	}
	f.cfg.OutWriter.Write(append(b, '\n'))
}

// Error will marshal and print the given value to the error writer
func (f *JSON) Error(value interface{}) {
	if err, ok := value.(error); ok {
		value = err.Error()
	}
	errStruct := struct {
		Error interface{} `json:"error"`
	}{value}
	b, err := json.Marshal(errStruct)
	if err != nil {
		logging.Error("Could not marshal value, error: %v", err)
		b = []byte(`{"error": "Could not marshal value to JSON"}`)
	}
	f.cfg.ErrWriter.Write(append(b, '\n'))
}

// Notice is logged but does not produce output, notices have no place in
// structured output.
func (f *JSON) Notice(value interface{}) {
	logging.Debug("JSON outputer dropped notice: %v", value)
}

// Config returns the Config used to initialize this outputer
func (f *JSON) Config() *Config {
	return f.cfg
}
