package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/py-app-standalone/cli/internal/errs"
	"github.com/py-app-standalone/cli/internal/locale"
)

func TestParseOutputFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want outputFlags
	}{
		{"no flags", []string{"pas", "requests"}, outputFlags{}},
		{"long output", []string{"pas", "--output", "json"}, outputFlags{Output: "json"}},
		{"inline output", []string{"pas", "--output=json"}, outputFlags{Output: "json"}},
		{"short output", []string{"pas", "-o", "json", "requests"}, outputFlags{Output: "json"}},
		{"non-interactive", []string{"pas", "-n", "requests"}, outputFlags{NonInteractive: true}},
		{"combined", []string{"pas", "--non-interactive", "-o", "plain"}, outputFlags{Output: "plain", NonInteractive: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseOutputFlags(tt.args))
		})
	}
}

func TestArgsHaveVerbose(t *testing.T) {
	assert.True(t, argsHaveVerbose([]string{"pas", "--verbose", "requests"}))
	assert.True(t, argsHaveVerbose([]string{"pas", "-v"}))
	assert.False(t, argsHaveVerbose([]string{"pas", "requests"}))
	assert.False(t, argsHaveVerbose([]string{"pas", "--", "-v"}))
}

func TestUnwrapError(t *testing.T) {
	code, err := unwrapError(nil)
	assert.Equal(t, 0, code)
	assert.NoError(t, err)

	plain := errs.New("boom")
	code, err = unwrapError(plain)
	assert.Equal(t, 1, code)
	assert.Equal(t, plain, err)

	code, err = unwrapError(errs.Silence(errs.New("quiet")))
	assert.Equal(t, 1, code)
	assert.NoError(t, err, "silenced errors are not surfaced")

	code, err = unwrapError(errs.WrapExitCode(errs.New("exited"), 3))
	assert.Equal(t, 3, code)
	require.Error(t, err)
}

func TestErrorMessage(t *testing.T) {
	userFacing := errs.NewUserFacing("say exactly this")
	assert.Equal(t, "say exactly this", errorMessage(userFacing))

	localized := locale.NewInputError("err_msg_test", "Something localized went wrong")
	assert.Equal(t, "Something localized went wrong", errorMessage(localized))
}

func TestUnwrapErrorExternal(t *testing.T) {
	var err error = locale.WrapExternalError(errs.WrapExitCode(errs.New("uv blew up"), 4), "err_external_test", "Delegated tool failed")
	code, err := unwrapError(err)
	assert.Equal(t, 4, code)
	require.Error(t, err, "external errors are still shown to the user")
}

func TestErrorTips(t *testing.T) {
	err := errs.AddTips(locale.NewInputError("err_tip_test", "Something went wrong"), "try again")
	assert.Equal(t, []string{"try again"}, errorTips(err))
	assert.Empty(t, errorTips(errs.New("no tips")))
}
