package viewport

import (
	"github.com/beetlebugorg/viewport/internal/geom"
)

// The engine's error taxonomy. All failures are surfaced synchronously to
// the immediate caller and are deterministic for identical input.
//
// ErrInvalidArgument flags violated preconditions and should be treated as
// a programming error. ErrUnsupportedGeometry signals a clip boundary kind
// the engine recognizes as unknown; log it and skip the viewport.
// ErrTransformFailure wraps an unexpected lower-level cause; use
// errors.As/errors.Is to walk the chain.
type (
	ErrInvalidArgument     = geom.ErrInvalidArgument
	ErrUnsupportedGeometry = geom.ErrUnsupportedGeometry
	ErrMissingEntity       = geom.ErrMissingEntity
	ErrTransformFailure    = geom.ErrTransformFailure
)

// ErrSessionClosed indicates a read session used after Close.
var ErrSessionClosed = geom.ErrSessionClosed
