package plotview

import (
	"errors"
	"fmt"
)

// ErrInvalidRange indicates an axis range which is inverted or not finite.
// Rendering a view without representations and without explicit ranges
// fails with this error.
var ErrInvalidRange = errors.New("invalid axis range")

// ErrEmptyView indicates a view without representations whose ranges
// could not be determined.
var ErrEmptyView = errors.New("view has no representations")

// ErrFaceSize indicates an illegal face size or a text face block whose
// dimensions differ from the requested face size.
var ErrFaceSize = errors.New("bad face size")

// ErrUnknownFormat indicates an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// RenderError reports the failure of a single representation during
// rendering of a view.
type RenderError struct {
	Index int    // Index of the representation in the view.
	Mode  string // "vector" or "text"
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s rendering of representation %d: %v", e.Mode, e.Index, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// emptyViewError wraps ErrInvalidRange so that errors.Is reports both
// ErrInvalidRange and ErrEmptyView.
type emptyViewError struct {
	dim Dimension
	r   Range
}

func (e emptyViewError) Error() string {
	return fmt.Sprintf("%v: no data and no explicit %s range, got %s", ErrEmptyView, e.dim, e.r)
}

func (e emptyViewError) Is(target error) bool {
	return target == ErrEmptyView || target == ErrInvalidRange
}
