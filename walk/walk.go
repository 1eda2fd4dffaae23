// Package walk enumerates the files under a resource root in a stable order.
package walk

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mediaroulette/resmanifest/logger"
	"github.com/mediaroulette/resmanifest/util"
)

var (
	// ErrRootNotFound is returned when the root directory does not exist.
	ErrRootNotFound = errors.New("resources directory not found")

	// ErrRootNotDir is returned when the root exists but is not a directory.
	ErrRootNotDir = errors.New("resources path is not a directory")
)

// Func is called once per file. path is root joined with the file's
// location, so it is absolute only when root is. Returning an error stops
// the walk and is returned from Walk.
type Func func(path string) error

// Walk visits root top-down. Files of a directory are passed to fn in name
// order before any subdirectory is entered; subdirectories are entered in
// name order. Subdirectories whose name is in exclude are never entered.
// Regular files and links to them are reported. Broken links are reported
// too, so the caller fails on them rather than losing the file.
func Walk(root string, exclude []string, fn Func) error {
	if err := CheckRoot(root); err != nil {
		return err
	}
	w := walker{exclude: map[string]struct{}{}, fn: fn}
	for _, e := range exclude {
		w.exclude[e] = struct{}{}
	}
	return w.dir(root)
}

// CheckRoot verifies root exists and is a directory.
func CheckRoot(root string) error {
	if !util.Exists(root) {
		return fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}
	if !util.IsDir(root) {
		return fmt.Errorf("%w: %s", ErrRootNotDir, root)
	}
	return nil
}

type walker struct {
	exclude map[string]struct{}
	fn      Func
}

func (w *walker) dir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	files := []string{}
	dirs := []string{}
	for _, e := range entries {
		if e.IsDir() {
			if _, skip := w.exclude[e.Name()]; !skip {
				dirs = append(dirs, e.Name())
			}
		} else if e.Type().IsRegular() || reportLink(filepath.Join(dir, e.Name()), e) {
			files = append(files, e.Name())
		}
	}
	// os.ReadDir already sorts by name; keep the guarantee explicit.
	sort.Strings(files)
	sort.Strings(dirs)

	for _, f := range files {
		if err := w.fn(filepath.Join(dir, f)); err != nil {
			return err
		}
	}
	for _, d := range dirs {
		if err := w.dir(filepath.Join(dir, d)); err != nil {
			return err
		}
	}
	return nil
}

// reportLink reports whether the symlink e should be handed to the caller.
// Linked directories are not followed; links that cannot be resolved are
// reported so reading them fails later.
func reportLink(path string, e os.DirEntry) bool {
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		logger.Warn("Broken link", "path", path, "error", err)
		return true
	}
	return info.Mode().IsRegular()
}

// Rel returns path relative to root with forward slashes.
func Rel(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
