package geom

import (
	"errors"
	"fmt"
)

// ErrSessionClosed indicates a read session used after Close.
var ErrSessionClosed = errors.New("read session is closed")

// ErrInvalidArgument indicates input that violates an engine precondition
// (nil viewport, zero custom scale, degenerate polygon, negative tolerance).
// Callers should treat this as a programming error.
type ErrInvalidArgument struct {
	Reason string
}

func (e *ErrInvalidArgument) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Reason)
}

// ErrUnsupportedGeometry indicates a clip boundary entity whose kind is not
// one of the recognized polyline variants. Kind carries the stored entity
// kind tag for diagnostics.
type ErrUnsupportedGeometry struct {
	Kind string
}

func (e *ErrUnsupportedGeometry) Error() string {
	return fmt.Sprintf("unsupported clip boundary geometry: %q", e.Kind)
}

// ErrMissingEntity indicates an entity reference that does not resolve in
// the scene store.
type ErrMissingEntity struct {
	Ref EntityRef
}

func (e *ErrMissingEntity) Error() string {
	return fmt.Sprintf("entity %d not found in scene store", e.Ref)
}

// ErrTransformFailure wraps a lower-level failure encountered while
// resolving clip data or applying the viewport transform chain.
type ErrTransformFailure struct {
	Op  string // operation that failed, e.g. "resolve clip boundary"
	Err error  // underlying cause
}

func (e *ErrTransformFailure) Error() string {
	return fmt.Sprintf("transform failure during %s: %v", e.Op, e.Err)
}

func (e *ErrTransformFailure) Unwrap() error {
	return e.Err
}
