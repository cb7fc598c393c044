package solve

import "context"

// Options configures a single Solve call. It mirrors pkg/minikanren's own
// SolverConfig/DefaultSolverConfig shape: a plain struct with sensible
// zero-value-safe defaults, no file or environment parsing.
type Options struct {
	// Context bounds the underlying search. A cancelled or expired context
	// is treated as "no solution" (§5's UNKNOWN-maps-to-no-solution rule),
	// never as an error.
	Context context.Context
}

// DefaultOptions returns the Options used when a caller has none of its own:
// a background context with no deadline.
func DefaultOptions() Options {
	return Options{Context: context.Background()}
}

func (o Options) context() context.Context {
	if o.Context == nil {
		return context.Background()
	}
	return o.Context
}
