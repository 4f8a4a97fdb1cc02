package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// Sentinel errors for file discovery.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrNoSources          = errors.New("no assembly sources found")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// MaxWorkers caps the worker count.
const MaxWorkers = 64

// sourceExtensions are the file extensions searched for in directories.
// Files named explicitly are formatted whatever their extension.
var sourceExtensions = map[string]bool{
	".s":    true,
	".asm":  true,
	".inc":  true,
	".a65":  true,
	".ca65": true,
}

// isSource reports whether path has an assembly source extension.
func isSource(path string) bool {
	return sourceExtensions[strings.ToLower(filepath.Ext(path))]
}

// discoverFiles expands the given paths into the source files to format.
// Directories are walked recursively, skipping hidden directories. The result
// is sorted and free of duplicates.
func discoverFiles(paths []string) ([]string, error) {
	if len(paths) == 0 {
		return nil, ErrNoInput
	}

	seen := make(map[string]bool)
	var files []string
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() && isSource(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoSources, strings.Join(paths, ", "))
	}
	sort.Strings(files)
	return files, nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, MaxWorkers)
	}
	return nil
}

// resolveWorkers determines the worker count.
// Priority: explicit flag > environment > GOMAXPROCS (adjusted by
// automaxprocs for containers). Never more workers than files.
func resolveWorkers(flagWorkers, envWorkers, files int) int {
	n := flagWorkers
	if n == 0 {
		n = envWorkers
	}
	if n == 0 {
		n = runtime.GOMAXPROCS(0)
	}
	n = min(n, MaxWorkers, files)
	return max(n, 1)
}
