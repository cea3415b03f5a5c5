package config

import (
	"sort"

	"github.com/py-app-standalone/cli/internal/constants"
)

type Type int

const (
	String Type = iota
	Int
	Bool
)

// Option defines a registered config key together with the type its values
// are cast to on write.
type Option struct {
	Name    string
	Type    Type
	Default interface{}
}

var options = map[string]Option{}

func registerOption(name string, t Type, defaultValue interface{}) {
	options[name] = Option{Name: name, Type: t, Default: defaultValue}
}

func init() {
	registerOption(constants.UvExeConfigKey, String, "")
	registerOption(constants.DefaultPythonConfigKey, String, constants.DefaultPythonVersion)
}

// GetOption returns the registered option for the given key. Unregistered
// keys yield a plain String option so storage still works for them.
func GetOption(key string) Option {
	if opt, ok := options[key]; ok {
		return opt
	}
	return Option{Name: key, Type: String}
}

// KnownOption reports whether the given key was registered
func KnownOption(key string) bool {
	_, ok := options[key]
	return ok
}

// Registered returns all registered option names, sorted
func Registered() []string {
	names := make([]string, 0, len(options))
	for name := range options {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
