package captain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/py-app-standalone/cli/internal/locale"
	"github.com/py-app-standalone/cli/internal/primer"
	"github.com/py-app-standalone/cli/internal/testhelpers/outputhelper"
)

func testPrimer(catcher *outputhelper.Catcher) *primer.Values {
	return primer.New(catcher.Outputer, nil, nil)
}

func TestExecuteRunsExecutor(t *testing.T) {
	catcher := outputhelper.NewCatcher()

	ran := false
	cmd := NewCommand("test", "", "Test command", testPrimer(catcher), nil, nil,
		func(cmd *Command, args []string) error {
			ran = true
			return nil
		})

	require.NoError(t, cmd.Execute(nil))
	assert.True(t, ran)
}

func TestFlagParsing(t *testing.T) {
	catcher := outputhelper.NewCatcher()

	var target string
	force := false
	cmd := NewCommand("test", "", "Test command", testPrimer(catcher),
		[]*Flag{
			{Name: "target", Shorthand: "t", Description: "target dir", Value: &target},
			{Name: "force", Shorthand: "f", Description: "force", Value: &force},
		},
		nil,
		func(cmd *Command, args []string) error { return nil })

	require.NoError(t, cmd.Execute([]string{"--target", "/tmp/x", "-f"}))
	assert.Equal(t, "/tmp/x", target)
	assert.True(t, force)
}

func TestFlagOnUse(t *testing.T) {
	catcher := outputhelper.NewCatcher()

	verbose := false
	used := false
	cmd := NewCommand("test", "", "Test command", testPrimer(catcher),
		[]*Flag{
			{Name: "verbose", Description: "noisy", Value: &verbose, OnUse: func() { used = true }},
		},
		nil,
		func(cmd *Command, args []string) error { return nil })

	require.NoError(t, cmd.Execute(nil))
	assert.False(t, used)

	require.NoError(t, cmd.Execute([]string{"--verbose"}))
	assert.True(t, used)
}

func TestArgumentAssignment(t *testing.T) {
	catcher := outputhelper.NewCatcher()

	var name string
	cmd := NewCommand("test", "", "Test command", testPrimer(catcher), nil,
		[]*Argument{
			{Name: "name", Description: "a name", Required: true, Value: &name},
		},
		func(cmd *Command, args []string) error { return nil })

	require.NoError(t, cmd.Execute([]string{"hello"}))
	assert.Equal(t, "hello", name)
}

func TestRequiredArgumentMissing(t *testing.T) {
	catcher := outputhelper.NewCatcher()

	var name string
	cmd := NewCommand("test", "", "Test command", testPrimer(catcher), nil,
		[]*Argument{
			{Name: "name", Description: "a name", Required: true, Value: &name},
		},
		func(cmd *Command, args []string) error { return nil })

	err := cmd.Execute(nil)
	require.Error(t, err)
	assert.True(t, locale.IsInputError(err))
}

func TestUnknownFlagIsInputError(t *testing.T) {
	catcher := outputhelper.NewCatcher()

	cmd := NewCommand("test", "", "Test command", testPrimer(catcher), nil, nil,
		func(cmd *Command, args []string) error { return nil })

	err := cmd.Execute([]string{"--bogus"})
	require.Error(t, err)
	assert.True(t, locale.IsInputError(err))
}

func TestSubcommandDispatch(t *testing.T) {
	catcher := outputhelper.NewCatcher()

	ranChild := false
	parent := NewCommand("parent", "", "Parent command", testPrimer(catcher), nil, nil,
		func(cmd *Command, args []string) error { return nil })
	child := NewCommand("child", "", "Child command", testPrimer(catcher), nil, nil,
		func(cmd *Command, args []string) error {
			ranChild = true
			return nil
		})
	parent.AddChildren(child)

	require.NoError(t, parent.Execute([]string{"child"}))
	assert.True(t, ranChild)
}

func TestUsageTextListsArguments(t *testing.T) {
	catcher := outputhelper.NewCatcher()

	var name string
	cmd := NewCommand("test", "", "Test command", testPrimer(catcher), nil,
		[]*Argument{
			{Name: "name", Description: "a name", Required: true, Value: &name},
		},
		func(cmd *Command, args []string) error { return nil })

	usage := cmd.UsageText()
	assert.Contains(t, usage, "Usage:")
	assert.Contains(t, usage, "<name>")
}
