package archiver

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bundleDir(t *testing.T) string {
	dir := filepath.Join(t.TempDir(), "py-standalone")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "bin"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bin", "python3"), []byte("#!/fake\n"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("bundle"), 0644))
	return dir
}

func TestCreateTgz(t *testing.T) {
	dir := bundleDir(t)
	archivePath := filepath.Join(t.TempDir(), "bundle.tar.gz")

	require.NoError(t, CreateTgz(context.Background(), archivePath, dir))

	f, err := os.Open(archivePath)
	require.NoError(t, err)
	defer f.Close()

	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	tr := tar.NewReader(gz)

	names := []string{}
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		names = append(names, hdr.Name)
	}

	assert.Contains(t, names, "py-standalone/README")
	assert.Contains(t, names, "py-standalone/bin/python3")
}

func TestCreateZip(t *testing.T) {
	dir := bundleDir(t)
	archivePath := filepath.Join(t.TempDir(), "bundle.zip")

	require.NoError(t, CreateZip(context.Background(), archivePath, dir))

	zr, err := zip.OpenReader(archivePath)
	require.NoError(t, err)
	defer zr.Close()

	names := []string{}
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "py-standalone/README")
	assert.Contains(t, names, "py-standalone/bin/python3")
}

func TestCreateUsesPlatformExt(t *testing.T) {
	dir := bundleDir(t)

	archivePath, err := Create(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, dir+Ext(), archivePath)
	assert.FileExists(t, archivePath)
}
