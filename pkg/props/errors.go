package props

import (
	"errors"
	"fmt"
)

// ErrInvalidPath is returned when a path is malformed: absolute where a relative
// path is required, containing a reserved character, or addressing a list
// without an index.
var ErrInvalidPath = errors.New("invalid path")

// ErrNotFound is returned when a well-formed path does not exist and creation
// was not requested.
var ErrNotFound = errors.New("node not found")

// ErrLeafConflict is returned when a path tries to descend through a scalar.
var ErrLeafConflict = errors.New("path traverses a leaf value")

// ErrUnsupportedKind is returned when a value has a kind the tree cannot hold.
var ErrUnsupportedKind = errors.New("unsupported value kind")

// PathError records the path and the segment that caused a resolution failure.
type PathError struct {
	Path    string
	Segment string
	Err     error
}

func (e *PathError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("%s: %q", e.Err, e.Path)
	}
	return fmt.Sprintf("%s: %q (at %q)", e.Err, e.Path, e.Segment)
}

func (e *PathError) Unwrap() error { return e.Err }
