package manifest

import "errors"

var (
	// ErrDuplicatePath is returned when a resource path is added twice.
	ErrDuplicatePath = errors.New("duplicate resource path")

	// ErrWrite is returned when the manifest cannot be written.
	ErrWrite = errors.New("failed to write manifest")

	// ErrUnknownFormat is returned for an output format other than json or yaml.
	ErrUnknownFormat = errors.New("unknown manifest format (use json or yaml)")
)
