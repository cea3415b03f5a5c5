package runtime

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/py-app-standalone/cli/internal/testhelpers/outputhelper"
)

func writeFile(t *testing.T, path string, contents []byte, mode os.FileMode) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, contents, mode))
}

func TestRelocate(t *testing.T) {
	installRoot := filepath.Join(t.TempDir(), "cpython-3.13.2-test")
	absPath := "/home/user/project/py-standalone"
	relPath := "./py-standalone"

	writeFile(t, filepath.Join(installRoot, "bin", "pip"),
		[]byte("#!"+absPath+"/cpython-3.13.2-test/bin/python3\n"), 0755)
	writeFile(t, filepath.Join(installRoot, "lib", "python3.13", "site.py"),
		[]byte("PREFIX = \""+absPath+"\"\n"), 0644)
	writeFile(t, filepath.Join(installRoot, "lib", "python3.13", "config", "libpython.a"),
		append([]byte(absPath), 0x00, 0x7f), 0644)
	writeFile(t, filepath.Join(installRoot, "share", "README"),
		[]byte("docs mentioning "+absPath+"\n"), 0644)

	catcher := outputhelper.NewCatcher()
	remaining, err := relocate(catcher.Outputer, installRoot, absPath, relPath)
	require.NoError(t, err)

	pip, err := os.ReadFile(filepath.Join(installRoot, "bin", "pip"))
	require.NoError(t, err)
	assert.Equal(t, "#!"+relPath+"/cpython-3.13.2-test/bin/python3\n", string(pip))

	site, err := os.ReadFile(filepath.Join(installRoot, "lib", "python3.13", "site.py"))
	require.NoError(t, err)
	assert.Equal(t, "PREFIX = \""+relPath+"\"\n", string(site))

	// The binary lib is skipped by the rewrite and the out of scope file is
	// untouched, both show up in the sanity scan.
	assert.ElementsMatch(t, []string{
		filepath.Join(installRoot, "lib", "python3.13", "config", "libpython.a"),
		filepath.Join(installRoot, "share", "README"),
	}, remaining)
}

func TestRelocateNothingToDo(t *testing.T) {
	installRoot := filepath.Join(t.TempDir(), "cpython-3.13.2-test")
	writeFile(t, filepath.Join(installRoot, "bin", "python3"), []byte("relocatable already\n"), 0755)

	catcher := outputhelper.NewCatcher()
	remaining, err := relocate(catcher.Outputer, installRoot, "/some/abs/path", ".")
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestCleanPycacheDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "lib", "__pycache__", "mod.cpython-313.pyc"), []byte{0x01}, 0644)
	writeFile(t, filepath.Join(root, "lib", "pkg", "__pycache__", "x.pyc"), []byte{0x02}, 0644)
	writeFile(t, filepath.Join(root, "lib", "pkg", "keep.py"), []byte("keep"), 0644)

	require.NoError(t, cleanPycacheDirs(root))

	assert.NoDirExists(t, filepath.Join(root, "lib", "__pycache__"))
	assert.NoDirExists(t, filepath.Join(root, "lib", "pkg", "__pycache__"))
	assert.FileExists(t, filepath.Join(root, "lib", "pkg", "keep.py"))
}
