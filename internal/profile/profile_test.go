package profile_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/py-app-standalone/cli/internal/profile"
)

func TestCPU(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cleanup, err := profile.CPU()
	require.NoError(t, err)

	// Burn a little time so the profiler has something to sample
	deadline := time.Now().Add(20 * time.Millisecond)
	for time.Now().Before(deadline) {
	}

	require.NoError(t, cleanup())

	matches, err := filepath.Glob(filepath.Join(dir, "cpu_*.prof"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.FileExists(t, matches[0])
}
