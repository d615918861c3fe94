// Package edfdiscover ascends the directory tree from a starting
// directory looking for a named file, the way dotenv-style tooling
// locates the nearest .env file above the current directory. It
// contains no parsing logic of its own.
package edfdiscover

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when name cannot be located in dir or any
// of its ancestors.
var ErrNotFound = errors.New("edfdiscover: file not found in directory or its ancestors")

// Find ascends from startDir looking for a regular file named name,
// returning its absolute path. startDir must exist; Find does not
// create directories.
func Find(startDir, name string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, name)
		info, statErr := os.Stat(candidate)
		if statErr == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// FindFrom is Find starting from the current working directory.
func FindFrom(name string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return Find(wd, name)
}
