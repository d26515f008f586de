package viewport

// ExtractOptions configures the InViewport convenience query.
type ExtractOptions struct {
	// Tolerance is the containment slack passed to the five-probe test.
	// It absorbs the floating-point drift the transform chain introduces
	// near the footprint boundary.
	Tolerance float64

	// Session optionally supplies a caller-managed read session. When
	// set it is borrowed for the query and never closed.
	Session ReadSession
}

// DefaultExtractOptions returns the default query options.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{
		Tolerance: 1e-9,
	}
}
