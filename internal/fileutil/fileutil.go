// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Sentinel errors for file utility operations.
var (
	ErrStage   = errors.New("cannot stage file")
	ErrReplace = errors.New("cannot replace file")
)

// stagePattern names staging files; the '*' is replaced by os.CreateTemp.
const stagePattern = ".caddy65-*.tmp"

// StageFile writes content to a new hidden file in dir with the given mode.
// Returns the file path and a cleanup function to remove the file.
func StageFile(dir string, content []byte, mode fs.FileMode) (path string, cleanup func(), err error) {
	tmpFile, err := os.CreateTemp(dir, stagePattern)
	if err != nil {
		return "", nil, fmt.Errorf("%w: creating staging file: %w", ErrStage, err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, writeErr := tmpFile.Write(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("%w: writing staging file: %w", ErrStage, writeErr)
	}

	if syncErr := tmpFile.Sync(); syncErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("%w: syncing staging file: %w", ErrStage, syncErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("%w: closing staging file: %w", ErrStage, closeErr)
	}

	if chmodErr := os.Chmod(path, mode); chmodErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("%w: setting mode: %w", ErrStage, chmodErr)
	}

	return path, cleanup, nil
}

// ReplaceFile replaces the content of the regular file at path. The content
// is staged in the same directory and renamed over the original, so readers
// see either the old or the new file, never a partial one. The original
// permission bits are kept. Symbolic links are resolved so the link itself
// survives.
func ReplaceFile(path string, content []byte) error {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReplace, err)
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReplace, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrReplace, path)
	}

	staged, cleanup, err := StageFile(filepath.Dir(target), content, info.Mode().Perm())
	if err != nil {
		return err
	}

	if err := os.Rename(staged, target); err != nil {
		cleanup()
		return fmt.Errorf("%w: %w", ErrReplace, err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
