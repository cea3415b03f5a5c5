// Package archiver packs finished bundle directories using the archives library
package archiver

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/mholt/archives"

	"github.com/py-app-standalone/cli/internal/errs"
)

// Ext returns the archive extension used for the current platform
func Ext() string {
	if runtime.GOOS == "windows" {
		return ".zip"
	}
	return ".tar.gz"
}

// CreateTgz packs the given directory into a tar.gz archive. All entries are
// placed under a top level directory named after the bundle so the archive
// does not explode into the unpack directory.
func CreateTgz(ctx context.Context, archivePath, dir string) error {
	outFile, err := os.Create(archivePath)
	if err != nil {
		return errs.Wrap(err, "Could not create archive file at %s", archivePath)
	}
	defer outFile.Close()

	fileInfos, err := archives.FilesFromDisk(ctx, nil, map[string]string{
		dir: filepath.Base(dir),
	})
	if err != nil {
		return errs.Wrap(err, "Could not read files from %s", dir)
	}

	compressedArchive := archives.CompressedArchive{
		Compression: archives.Gz{},
		Archival:    archives.Tar{},
	}
	if err := compressedArchive.Archive(ctx, outFile, fileInfos); err != nil {
		return errs.Wrap(err, "Could not write archive to %s", archivePath)
	}
	return nil
}

// CreateZip packs the given directory into a zip archive, with all entries
// under a top level directory named after the bundle.
func CreateZip(ctx context.Context, archivePath, dir string) error {
	outFile, err := os.Create(archivePath)
	if err != nil {
		return errs.Wrap(err, "Could not create archive file at %s", archivePath)
	}
	defer outFile.Close()

	fileInfos, err := archives.FilesFromDisk(ctx, nil, map[string]string{
		dir: filepath.Base(dir),
	})
	if err != nil {
		return errs.Wrap(err, "Could not read files from %s", dir)
	}

	zip := &archives.Zip{}
	if err := zip.Archive(ctx, outFile, fileInfos); err != nil {
		return errs.Wrap(err, "Could not write archive to %s", archivePath)
	}
	return nil
}

// Create packs the given directory using the platform default format and
// returns the path of the archive it wrote, which is dir plus Ext().
func Create(ctx context.Context, dir string) (string, error) {
	archivePath := dir + Ext()
	if runtime.GOOS == "windows" {
		return archivePath, CreateZip(ctx, archivePath, dir)
	}
	return archivePath, CreateTgz(ctx, archivePath, dir)
}
