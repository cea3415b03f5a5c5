package output

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/py-app-standalone/cli/internal/locale"
	"github.com/py-app-standalone/cli/internal/logging"
)

// Plain is our human readable outputer, it takes any value and tries to
// present it as sensible text. Color tags in strings are resolved or stripped
// depending on the config.
type Plain struct {
	cfg *Config
}

// NewPlain constructs a new Plain outputer
func NewPlain(config *Config) (Plain, error) {
	return Plain{config}, nil
}

// Type tells callers what type of outputer we are
func (f *Plain) Type() Format {
	return PlainFormatName
}

// Print will marshal and print the given value to the output writer
func (f *Plain) Print(value interface{}) {
	f.write(f.cfg.OutWriter, value)
	f.write(f.cfg.OutWriter, "\n")
}

// Error will marshal and print the given value to the error writer, it
// wraps the value in an error tag unless it already has style tags
func (f *Plain) Error(value interface{}) {
	f.write(f.cfg.ErrWriter, fmt.Sprintf("[ERROR]x %s[/RESET]\n", sprintOrLog(value)))
}

// Notice is like Print, but for resulting messaging that is not the primary
// result. It goes to the error writer so structured output stays parseable.
func (f *Plain) Notice(value interface{}) {
	f.write(f.cfg.ErrWriter, value)
	f.write(f.cfg.ErrWriter, "\n")
}

// Config returns the Config used to initialize this outputer
func (f *Plain) Config() *Config {
	return f.cfg
}

func (f *Plain) write(writer io.Writer, value interface{}) {
	writeColorized(sprintOrLog(value), writer, !f.cfg.Colored)
}

func sprintOrLog(value interface{}) string {
	v, err := sprint(value)
	if err != nil {
		logging.Errorf("Could not sprint value: %v, error: %v", value, err)
		return locale.Tl("err_sprint", "Could not render value, error: {{.V0}}", err.Error())
	}
	return v
}

// sprint will marshal the given value to a string, it supports the types our
// runners actually print, anything else is an error worth noticing in review.
func sprint(value interface{}) (string, error) {
	if err, ok := value.(error); ok {
		return err.Error(), nil
	}
	if stringer, ok := value.(fmt.Stringer); ok {
		return stringer.String(), nil
	}

	valueRfl := reflect.ValueOf(value)
	switch valueRfl.Kind() {
	case reflect.Ptr, reflect.Interface:
		if valueRfl.IsNil() {
			return "", nil
		}
		return sprint(valueRfl.Elem().Interface())
	case reflect.Struct:
		return sprintStruct(value)
	case reflect.Slice, reflect.Array:
		return sprintSlice(valueRfl)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fmt.Sprintf("%d", value), nil
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%.2f", valueRfl.Float()), nil
	case reflect.Bool:
		return fmt.Sprintf("%t", valueRfl.Bool()), nil
	case reflect.String:
		return valueRfl.String(), nil
	default:
		return "", fmt.Errorf("unknown type: %s", valueRfl.Type().String())
	}
}

func sprintStruct(value interface{}) (string, error) {
	valueRfl := reflect.ValueOf(value)
	typeRfl := valueRfl.Type()
	result := []string{}
	for i := 0; i < typeRfl.NumField(); i++ {
		field := typeRfl.Field(i)
		if field.PkgPath != "" {
			continue // unexported
		}

		key := field.Name
		if tag, ok := field.Tag.Lookup("locale"); ok {
			if tag == "-" {
				continue
			}
			key = locale.Tl(tag, key)
		}

		stringValue, err := sprint(valueRfl.Field(i).Interface())
		if err != nil {
			return "", err
		}
		result = append(result, fmt.Sprintf("%s: %s", key, stringValue))
	}
	return strings.Join(result, "\n"), nil
}

func sprintSlice(valueRfl reflect.Value) (string, error) {
	result := []string{}
	for i := 0; i < valueRfl.Len(); i++ {
		stringValue, err := sprint(valueRfl.Index(i).Interface())
		if err != nil {
			return "", err
		}
		result = append(result, stringValue)
	}
	return strings.Join(result, "\n"), nil
}
