package cmdtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/py-app-standalone/cli/internal/constants"
	"github.com/py-app-standalone/cli/internal/locale"
	"github.com/py-app-standalone/cli/internal/primer"
	"github.com/py-app-standalone/cli/internal/prompt"
	"github.com/py-app-standalone/cli/internal/testhelpers/outputhelper"
)

func testCmdTree(catcher *outputhelper.Catcher) *CmdTree {
	prime := primer.New(catcher.Outputer, prompt.New(catcher.Outputer, false), nil)
	return New(prime)
}

func TestRootUsage(t *testing.T) {
	catcher := outputhelper.NewCatcher()
	ct := testCmdTree(catcher)

	usage := ct.Command().UsageText()
	assert.Contains(t, usage, constants.CommandName)
	assert.Contains(t, usage, "clean")
	assert.Contains(t, usage, "version")
	assert.Contains(t, usage, "config")
	assert.Contains(t, usage, "--target")
	assert.Contains(t, usage, "--spec-file")

	// Argument names render localized, not as raw locale ids
	assert.Contains(t, usage, "<packages>")
	assert.NotContains(t, usage, "arg_packages")
}

func TestRootRejectsInvalidPackage(t *testing.T) {
	catcher := outputhelper.NewCatcher()
	ct := testCmdTree(catcher)

	err := ct.Execute([]string{"!!not-a-package!!"})
	require.Error(t, err)
	assert.True(t, locale.IsInputError(err))
}

func TestCleanRequiresPath(t *testing.T) {
	catcher := outputhelper.NewCatcher()
	ct := testCmdTree(catcher)

	err := ct.Execute([]string{"clean"})
	require.Error(t, err)
	assert.True(t, locale.IsInputError(err))
}

func TestVersionCommand(t *testing.T) {
	catcher := outputhelper.NewCatcher()
	ct := testCmdTree(catcher)

	require.NoError(t, ct.Execute([]string{"version"}))
	assert.Contains(t, catcher.Output(), constants.Version)
}

func TestUnknownFlag(t *testing.T) {
	catcher := outputhelper.NewCatcher()
	ct := testCmdTree(catcher)

	err := ct.Execute([]string{"--definitely-not-a-flag"})
	require.Error(t, err)
	assert.True(t, locale.IsInputError(err))
}
