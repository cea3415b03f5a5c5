package clean

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/py-app-standalone/cli/internal/locale"
	"github.com/py-app-standalone/cli/internal/prompt"
	"github.com/py-app-standalone/cli/internal/testhelpers/outputhelper"
)

func newTestClean(catcher *outputhelper.Catcher) *Clean {
	return &Clean{
		out:    catcher.Outputer,
		prompt: prompt.New(catcher.Outputer, false),
	}
}

func bundleDir(t *testing.T) string {
	dir := filepath.Join(t.TempDir(), "py-standalone")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "cpython-3.13.2-test", "bin"), 0755))
	return dir
}

func TestCleanForce(t *testing.T) {
	catcher := outputhelper.NewCatcher()
	dir := bundleDir(t)

	require.NoError(t, newTestClean(catcher).Run(&Params{Path: dir, Force: true}))
	assert.NoDirExists(t, dir)
	assert.Contains(t, catcher.Output(), "Removed")
}

func TestCleanMissingDir(t *testing.T) {
	catcher := outputhelper.NewCatcher()

	err := newTestClean(catcher).Run(&Params{Path: filepath.Join(t.TempDir(), "nope")})
	require.Error(t, err)
	assert.True(t, locale.IsInputError(err))
}

func TestCleanRefusesForeignDir(t *testing.T) {
	catcher := outputhelper.NewCatcher()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "precious.txt"), []byte("keep me"), 0644))

	err := newTestClean(catcher).Run(&Params{Path: dir})
	require.Error(t, err)
	assert.True(t, locale.IsInputError(err))
	assert.DirExists(t, dir)
}

func TestCleanNonInteractiveAborts(t *testing.T) {
	catcher := outputhelper.NewCatcher()
	dir := bundleDir(t)

	// Without --force the non-interactive confirm defaults to no
	err := newTestClean(catcher).Run(&Params{Path: dir})
	require.Error(t, err)
	assert.DirExists(t, dir)
}

func TestCleanForceSkipsBundleCheck(t *testing.T) {
	catcher := outputhelper.NewCatcher()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "anything"), []byte("x"), 0644))

	require.NoError(t, newTestClean(catcher).Run(&Params{Path: dir, Force: true}))
	assert.NoDirExists(t, dir)
}
