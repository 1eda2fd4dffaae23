// Package inspect turns an included file into a manifest resource.
package inspect

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/mediaroulette/resmanifest/manifest"
	"github.com/mediaroulette/resmanifest/rules"
	"github.com/mediaroulette/resmanifest/util"
)

var (
	// ErrInspect wraps any failure to read a file selected for the manifest.
	ErrInspect = errors.New("failed to inspect resource")

	// ErrInvalidPath is returned for paths that are not valid UTF-8. JSON
	// would replace the bad bytes, so two files could share one key.
	ErrInvalidPath = errors.New("path is not valid UTF-8")
)

// File hashes and sizes the file at path and classifies it by relPath.
//
// Required status comes from path patterns only, never from file content,
// so it is an approximation of what the client actually needs.
func File(path, relPath string) (manifest.Resource, error) {
	if !utf8.ValidString(relPath) {
		return manifest.Resource{}, fmt.Errorf("%w %q: %w", ErrInspect, relPath, ErrInvalidPath)
	}
	size, err := util.FileSize(path)
	if err != nil {
		return manifest.Resource{}, fmt.Errorf("%w %s: %w", ErrInspect, relPath, err)
	}
	sum, err := util.SHA256File(path)
	if err != nil {
		return manifest.Resource{}, fmt.Errorf("%w %s: %w", ErrInspect, relPath, err)
	}
	return manifest.Resource{
		Path:     relPath,
		SHA256:   sum,
		Size:     size,
		Required: rules.Required(relPath),
		Category: rules.Category(relPath),
	}, nil
}
