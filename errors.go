// Package loupe provides random-access viewing of very large text files
// through a read-only memory mapping and an incrementally built line index.
package loupe

import "errors"

// File errors
var (
	// ErrClosed indicates that the file has already been closed.
	ErrClosed = errors.New("file is closed")
)

// Index errors
var (
	// ErrInvalidLine indicates that a line number has not been indexed yet.
	ErrInvalidLine = errors.New("line not in index")
)
