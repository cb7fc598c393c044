package solve

import "errors"

// ErrReconstruction marks a failure to walk a satisfying assignment back
// into a path (§4.7 step 3): no unvisited has_line neighbour was found
// before reaching an exit. Unreachable given a correct constraint
// emission and a correct backend.
var ErrReconstruction = errors.New("path reconstruction failed: no continuation found before reaching an exit")
