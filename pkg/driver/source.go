package driver

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Source reader failures. Callers compare with errors.Cause.
var (
	ErrFileDoesNotExist = errors.New("file does not exist")
	ErrIsDirectory      = errors.New("path is a directory")
	ErrCannotReadFile   = errors.New("cannot read file")
)

// sourcePath resolves relPath to an absolute, cleaned path.
func sourcePath(relPath string) (string, error) {
	fullPath, err := filepath.Abs(relPath)
	if err != nil {
		return "", errors.Wrapf(ErrCannotReadFile, "%s: %v", relPath, err)
	}
	return fullPath, nil
}

// ReadSource returns the full text of the file at path. An empty file is
// not an error: it lexes to no tokens and parses to an empty program.
func ReadSource(path string) (string, error) {
	if path == "" {
		return "", ErrNoSourcePath
	}
	fullPath, err := sourcePath(path)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(fullPath)
	if os.IsNotExist(err) {
		return "", errors.Wrap(ErrFileDoesNotExist, path)
	}
	if err != nil {
		return "", errors.Wrapf(ErrCannotReadFile, "%s: %v", path, err)
	}
	if info.IsDir() {
		return "", errors.Wrap(ErrIsDirectory, path)
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		return "", errors.Wrapf(ErrCannotReadFile, "%s: %v", path, err)
	}
	return string(data), nil
}
