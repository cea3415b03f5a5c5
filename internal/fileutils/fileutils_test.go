package fileutils

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func includeAll(string, []byte) bool { return true }

func TestReplaceAllTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "activate.sh")
	require.NoError(t, os.WriteFile(path, []byte("PREFIX=/opt/old/prefix\nexport PREFIX\n"), 0644))

	err := ReplaceAll(path, "/opt/old/prefix", "/new", includeAll)
	require.NoError(t, err)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "PREFIX=/new\nexport PREFIX\n", string(contents))
}

func TestReplaceAllBinaryFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "libpython.so")

	// Null-terminated string embedded in binary data.
	original := append([]byte("/opt/old/prefix/lib/python3.13"), nullByte)
	original = append(original, []byte{0x7f, 'E', 'L', 'F'}...)
	require.NoError(t, os.WriteFile(path, original, 0755))

	err := ReplaceAll(path, "/opt/old/prefix", "/new", includeAll)
	require.NoError(t, err)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, contents, len(original), "binary file must not change size")
	assert.True(t, bytes.HasPrefix(contents, []byte("/new/lib/python3.13")))
	assert.True(t, bytes.Contains(contents, []byte{0x7f, 'E', 'L', 'F'}))
}

func TestReplaceAllBinaryFileTooLong(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bin")
	require.NoError(t, os.WriteFile(path, append([]byte("/old"), nullByte), 0644))

	err := ReplaceAll(path, "/old", "/much/longer/replacement", includeAll)
	assert.Error(t, err)
}

func TestReplaceAllPreservesMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pip")
	require.NoError(t, os.WriteFile(path, []byte("#!/opt/old/bin/python3\n"), 0755))

	require.NoError(t, ReplaceAll(path, "/opt/old", "/new", includeAll))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestReplaceAllInDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "bin"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bin", "pip"), []byte("#!/old/bin/python3\n"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("nothing to see"), 0644))

	visited := []string{}
	err := ReplaceAllInDirectory(dir, "/old", "/new", func(p string, _ []byte) bool {
		visited = append(visited, p)
		return true
	})
	require.NoError(t, err)
	assert.Len(t, visited, 2)

	contents, err := os.ReadFile(filepath.Join(dir, "bin", "pip"))
	require.NoError(t, err)
	assert.Equal(t, "#!/new/bin/python3\n", string(contents))
}

func TestMatchesInDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hit"), []byte("path=/old/prefix"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "miss"), []byte("path=/new"), 0644))

	matches, err := MatchesInDirectory(dir, "/old/prefix")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, filepath.Join(dir, "hit"), matches[0])
}

func TestIsBinary(t *testing.T) {
	assert.True(t, IsBinary([]byte{'a', nullByte, 'b'}))
	assert.False(t, IsBinary([]byte("plain text")))
}

func TestExistenceChecks(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.True(t, TargetExists(dir))
	assert.True(t, TargetExists(file))
	assert.False(t, TargetExists(filepath.Join(dir, "missing")))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(dir))

	assert.True(t, DirExists(dir))
	assert.False(t, DirExists(file))
}

func TestIsDirEmpty(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, IsDirEmpty(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f"), []byte("x"), 0644))
	assert.False(t, IsDirEmpty(dir))
	assert.False(t, IsDirEmpty(filepath.Join(dir, "missing")))
}

func TestWriteFileCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "c.txt")
	require.NoError(t, WriteFile(path, []byte("hello")))

	contents, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(contents))
}

func TestTempDirUnsafe(t *testing.T) {
	d1 := TempDirUnsafe()
	defer os.RemoveAll(d1)
	d2 := TempDirUnsafe()
	defer os.RemoveAll(d2)

	assert.NotEqual(t, d1, d2)
	assert.True(t, DirExists(d1))
	assert.True(t, DirExists(d2))
}

func TestIsExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("execute bits do not exist on windows")
	}
	dir := t.TempDir()

	exe := filepath.Join(dir, "pip")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0755))
	assert.True(t, IsExecutable(exe))

	plain := filepath.Join(dir, "README")
	require.NoError(t, os.WriteFile(plain, []byte("x"), 0644))
	assert.False(t, IsExecutable(plain))

	assert.False(t, IsExecutable(filepath.Join(dir, "missing")))
}

func TestResolveUniquePath(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "real")
	require.NoError(t, os.MkdirAll(real, 0755))

	link := filepath.Join(dir, "link")
	if err := os.Symlink(real, link); err != nil {
		t.Skip("symlinks not supported here")
	}

	resolved, err := ResolveUniquePath(link)
	require.NoError(t, err)

	viaReal, err := ResolveUniquePath(real)
	require.NoError(t, err)
	assert.Equal(t, viaReal, resolved, "symlink and real path resolve to the same unique path")

	// Paths that do not exist yet still resolve to a clean absolute path
	missing, err := ResolveUniquePath(filepath.Join(dir, "not-yet"))
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(missing))
}
