package configcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/py-app-standalone/cli/internal/config"
	"github.com/py-app-standalone/cli/internal/constants"
	"github.com/py-app-standalone/cli/internal/locale"
	"github.com/py-app-standalone/cli/internal/rtutils/singlethread"
	"github.com/py-app-standalone/cli/internal/testhelpers/outputhelper"
)

func newTestConfigCmd(t *testing.T) (*ConfigCmd, *outputhelper.Catcher) {
	cfg, err := config.NewCustom(t.TempDir(), singlethread.New(), true)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, cfg.Close()) })

	catcher := outputhelper.NewCatcher()
	return &ConfigCmd{out: catcher.Outputer, cfg: cfg}, catcher
}

func TestSetThenGet(t *testing.T) {
	cc, catcher := newTestConfigCmd(t)

	require.NoError(t, cc.Set(&SetParams{Key: constants.DefaultPythonConfigKey, Value: "3.12"}))
	require.NoError(t, cc.Get(&GetParams{Key: constants.DefaultPythonConfigKey}))

	assert.Contains(t, catcher.Output(), "3.12")
}

func TestGetFallsBackToDefault(t *testing.T) {
	cc, catcher := newTestConfigCmd(t)

	require.NoError(t, cc.Get(&GetParams{Key: constants.DefaultPythonConfigKey}))
	assert.Contains(t, catcher.Output(), constants.DefaultPythonVersion)
}

func TestUnknownKey(t *testing.T) {
	cc, _ := newTestConfigCmd(t)

	err := cc.Get(&GetParams{Key: "bogus.key"})
	require.Error(t, err)
	assert.True(t, locale.IsInputError(err))

	err = cc.Set(&SetParams{Key: "bogus.key", Value: "x"})
	require.Error(t, err)
	assert.True(t, locale.IsInputError(err))
}
