package puzzle

import "errors"

// ErrMalformedPuzzle marks the fatal, non-recoverable construction errors
// produced by Validate: out-of-bounds positions, edge/orientation
// mismatches, and symbols on non-existent cells.
var ErrMalformedPuzzle = errors.New("malformed puzzle")
