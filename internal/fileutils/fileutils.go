package fileutils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/google/uuid"

	"github.com/py-app-standalone/cli/internal/errs"
	"github.com/py-app-standalone/cli/internal/logging"
)

// nullByte represents the null-terminator byte
const nullByte byte = 0

// FileMode is the mode used for created files
const FileMode = 0644

// DirMode is the mode used for created dirs
const DirMode = os.ModePerm

type includeFunc func(path string, contents []byte) (include bool)

// ReplaceAll replaces all instances of search text with replacement text in a
// file, which may be a binary file.
//
// Replacements inside binary files must not change the byte length of the
// file, so the replacement gets NUL-padded up to the length of the search
// text. That makes shrinking paths safe and growing them impossible.
func ReplaceAll(filename, find string, replace string, include includeFunc) error {
	fileBytes, err := os.ReadFile(filename)
	if err != nil {
		return errs.Wrap(err, "Could not read file: %s", filename)
	}

	if !include(filename, fileBytes) {
		return nil
	}

	findBytes := []byte(find)
	replaceBytes := []byte(replace)
	replaceBytesLen := len(replaceBytes)

	// Check if the file is a binary file. If so, the search and replace byte
	// arrays must be of equal length (replacement being NUL-padded as necessary).
	var replaceRegex *regexp.Regexp
	quoteEscapeFind := regexp.QuoteMeta(find)
	if IsBinary(fileBytes) {
		logging.Debug("Assuming file '%s' is a binary file", filename)

		regexExpandBytes := []byte("${1}")
		// Must account for the expand characters (ie. '${1}') in the
		// replacement bytes in order for the binary padding to be correct
		replaceBytes = append(replaceBytes, regexExpandBytes...)

		// Replacement regex for binary files must account for null characters
		replaceRegex = regexp.MustCompile(fmt.Sprintf(`%s([^\x00]*)`, quoteEscapeFind))
		if replaceBytesLen > len(findBytes) {
			logging.Errorf("Replacement text too long: %s, original text: %s", replace, find)
			return errs.New("replacement text cannot be longer than search text in a binary file")
		} else if len(findBytes) > replaceBytesLen {
			// Pad replacement with NUL bytes.
			logging.Debug("Padding replacement text by %d byte(s)", len(findBytes)-replaceBytesLen)
			paddedReplaceBytes := make([]byte, len(findBytes)+len(regexExpandBytes))
			copy(paddedReplaceBytes, replaceBytes)
			replaceBytes = paddedReplaceBytes
		}
	} else {
		replaceRegex = regexp.MustCompile(quoteEscapeFind)
		logging.Debug("Assuming file '%s' is a text file", filename)
	}

	replaced := replaceRegex.ReplaceAll(fileBytes, replaceBytes)
	if bytes.Equal(replaced, fileBytes) {
		return nil
	}

	// Rewrite the file in place, preserving its mode.
	info, err := os.Stat(filename)
	if err != nil {
		return errs.Wrap(err, "Could not stat file: %s", filename)
	}
	if err := os.WriteFile(filename, replaced, info.Mode().Perm()); err != nil {
		return errs.Wrap(err, "Could not write file: %s", filename)
	}
	return nil
}

// ReplaceAllInDirectory walks the given directory and invokes ReplaceAll on each file
func ReplaceAllInDirectory(path, find string, replace string, include includeFunc) error {
	err := filepath.Walk(path, func(path string, f os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if f.IsDir() || IsSymlink(path) {
			return nil
		}
		return ReplaceAll(path, find, replace, include)
	})

	if err != nil {
		return errs.Wrap(err, "Could not walk: %s", path)
	}

	return nil
}

// MatchesInDirectory walks the given directory and returns the files whose
// contents contain the given text, without modifying anything.
func MatchesInDirectory(path, find string) ([]string, error) {
	findBytes := []byte(find)
	matches := []string{}
	err := filepath.Walk(path, func(path string, f os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if f.IsDir() || IsSymlink(path) {
			return nil
		}
		contents, err := os.ReadFile(path)
		if err != nil {
			return errs.Wrap(err, "Could not read file: %s", path)
		}
		if bytes.Contains(contents, findBytes) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "Could not walk: %s", path)
	}
	return matches, nil
}

// IsSymlink checks if a path is a symlink
func IsSymlink(path string) bool {
	fi, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeSymlink) == os.ModeSymlink
}

// IsBinary checks if the given bytes are for a binary file
func IsBinary(fileBytes []byte) bool {
	return bytes.IndexByte(fileBytes, nullByte) != -1
}

// TargetExists checks if the given file or folder exists
func TargetExists(path string) bool {
	_, err1 := os.Stat(path)
	_, err2 := os.Readlink(path) // os.Stat returns false on Symlinks that don't point to a valid file
	return err1 == nil || err2 == nil
}

// FileExists checks if the given file (not folder) exists
func FileExists(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}

	return fi.Mode().IsRegular()
}

// DirExists checks if the given directory exists
func DirExists(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}

	return fi.IsDir()
}

// IsExecutable determines if the file at the given path has any execute permissions.
// This function does not care about the current user's permissions.
func IsExecutable(path string) bool {
	if runtime.GOOS == "windows" {
		ext := strings.ToLower(filepath.Ext(path))
		return ext == ".exe" || ext == ".bat" || ext == ".cmd"
	}
	stat, err := os.Stat(path)
	if err != nil {
		return false
	}
	return stat.Mode()&0111 != 0
}

// IsDirEmpty reports whether the given directory exists and holds no entries
func IsDirEmpty(path string) bool {
	entries, err := os.ReadDir(path)
	if err != nil {
		return false
	}
	return len(entries) == 0
}

// MkdirUnlessExists creates the given directory if it does not already exist
func MkdirUnlessExists(path string) error {
	if DirExists(path) {
		return nil
	}
	if err := os.MkdirAll(path, DirMode); err != nil {
		return errs.Wrap(err, "MkdirAll failed for path: %s", path)
	}
	return nil
}

// WriteFile writes the given data to the given file, creating it if necessary
func WriteFile(filename string, data []byte) error {
	if err := MkdirUnlessExists(filepath.Dir(filename)); err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, FileMode); err != nil {
		return errs.Wrap(err, "WriteFile failed for path: %s", filename)
	}
	return nil
}

// ReadFile reads the content of the given file
func ReadFile(filePath string) ([]byte, error) {
	b, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errs.Wrap(err, "ReadFile %s failed", filePath)
	}
	return b, nil
}

// TempDirUnsafe returns a unique temp dir and creates it. This is unsafe in
// the sense that the caller owns cleanup.
func TempDirUnsafe() string {
	f := filepath.Join(os.TempDir(), uuid.New().String())
	if err := os.MkdirAll(f, DirMode); err != nil {
		panic(fmt.Sprintf("Could not create temp dir: %v", err))
	}
	return f
}

// ResolveUniquePath returns the absolute path with symlinks resolved where possible
func ResolveUniquePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", errs.Wrap(err, "Could not resolve absolute path: %s", path)
	}
	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		// The path may not exist yet, in which case the absolute path is as unique as it gets
		return filepath.Clean(absPath), nil
	}
	return filepath.Clean(resolved), nil
}
