package build

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/py-app-standalone/cli/internal/config"
	"github.com/py-app-standalone/cli/internal/constants"
	"github.com/py-app-standalone/cli/internal/locale"
	"github.com/py-app-standalone/cli/internal/rtutils/ptr"
	"github.com/py-app-standalone/cli/internal/rtutils/singlethread"
	"github.com/py-app-standalone/cli/internal/testhelpers/outputhelper"
)

// inputPrompter plays back a canned response for the package prompt.
type inputPrompter struct {
	response string
}

func (p *inputPrompter) Input(message string, defaultResponse *string) (string, error) {
	return p.response, nil
}

func (p *inputPrompter) Select(message string, choices []string, defaultChoice *string) (string, error) {
	return ptr.From(defaultChoice, ""), nil
}

func (p *inputPrompter) Confirm(message string, defaultChoice *bool) (bool, error) {
	return ptr.From(defaultChoice, false), nil
}

func (p *inputPrompter) IsInteractive() bool {
	return true
}

func newTestBuild(t *testing.T, cfg *config.Instance) *Build {
	catcher := outputhelper.NewCatcher()
	return &Build{out: catcher.Outputer, cfg: cfg}
}

func TestResolveSpecDefaults(t *testing.T) {
	b := newTestBuild(t, nil)

	spec, err := b.resolveSpec(&Params{Packages: []string{"requests"}})
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultPythonVersion, spec.PythonVersion)
	assert.Equal(t, constants.DefaultTargetDirName, spec.Target)
	assert.Equal(t, []string{"requests"}, spec.PackageArgs())
}

func TestResolveSpecFlagsWin(t *testing.T) {
	b := newTestBuild(t, nil)

	spec, err := b.resolveSpec(&Params{
		Packages: []string{"requests"},
		Python:   "3.12",
		Target:   "/tmp/bundle",
	})
	require.NoError(t, err)
	assert.Equal(t, "3.12", spec.PythonVersion)
	assert.Equal(t, "/tmp/bundle", spec.Target)
}

func TestResolveSpecConfigDefault(t *testing.T) {
	cfg, err := config.NewCustom(t.TempDir(), singlethread.New(), true)
	require.NoError(t, err)
	defer func() { require.NoError(t, cfg.Close()) }()
	require.NoError(t, cfg.Set(constants.DefaultPythonConfigKey, "3.11"))

	b := newTestBuild(t, cfg)

	spec, err := b.resolveSpec(&Params{Packages: []string{"requests"}})
	require.NoError(t, err)
	assert.Equal(t, "3.11", spec.PythonVersion)
}

func TestResolveSpecFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
python: "3.12"
target: ./bundle
packages: [requests, cowsay-python==1.0.2]
`), 0644))

	b := newTestBuild(t, nil)

	spec, err := b.resolveSpec(&Params{SpecFile: path})
	require.NoError(t, err)
	assert.Equal(t, "3.12", spec.PythonVersion)
	assert.Equal(t, "./bundle", spec.Target)
	assert.Equal(t, []string{"requests", "cowsay-python==1.0.2"}, spec.PackageArgs())
}

func TestResolveSpecFileConflictsWithArgs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte("packages: [requests]"), 0644))

	b := newTestBuild(t, nil)

	_, err := b.resolveSpec(&Params{SpecFile: path, Packages: []string{"extra"}})
	require.Error(t, err)
	assert.True(t, locale.IsInputError(err))
}

func TestResolveSpecNoPackages(t *testing.T) {
	b := newTestBuild(t, nil)

	_, err := b.resolveSpec(&Params{})
	require.Error(t, err)
	assert.True(t, locale.IsInputError(err))
}

func TestResolveSpecPromptsForPackages(t *testing.T) {
	b := newTestBuild(t, nil)
	b.prompt = &inputPrompter{response: "requests cowsay-python==1.0.2"}

	spec, err := b.resolveSpec(&Params{})
	require.NoError(t, err)
	assert.Equal(t, []string{"requests", "cowsay-python==1.0.2"}, spec.PackageArgs())
}

func TestResolveSpecPromptEmptyResponse(t *testing.T) {
	b := newTestBuild(t, nil)
	b.prompt = &inputPrompter{response: ""}

	_, err := b.resolveSpec(&Params{})
	require.Error(t, err)
	assert.True(t, locale.IsInputError(err))
}
