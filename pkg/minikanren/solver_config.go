package minikanren

// solver_config.go: search heuristics for the FD Solver (solver.go).

// VariableOrderingHeuristic defines strategies for selecting the next variable to assign.
type VariableOrderingHeuristic int

const (
	// HeuristicDomDeg uses domain size / degree (constraints) - smallest first
	HeuristicDomDeg VariableOrderingHeuristic = iota
	// HeuristicDom uses domain size only - smallest first
	HeuristicDom
	// HeuristicDeg uses degree (constraints) only - largest first
	HeuristicDeg
	// HeuristicLex uses lexicographic order (variable ID)
	HeuristicLex
	// HeuristicRandom names random ordering; the Solver scores it like
	// HeuristicDom (smallest domain first)
	HeuristicRandom
	// HeuristicActivity names activity-based ordering; the Solver scores it
	// like HeuristicDom (smallest domain first)
	HeuristicActivity
)

// ValueOrderingHeuristic defines strategies for ordering values within a domain.
// The Solver tries values in ascending order whatever this is set to.
type ValueOrderingHeuristic int

const (
	// ValueOrderAsc orders values ascending (1,2,3,...)
	ValueOrderAsc ValueOrderingHeuristic = iota
	// ValueOrderDesc orders values descending (...,3,2,1)
	ValueOrderDesc
	// ValueOrderRandom orders values randomly
	ValueOrderRandom
	// ValueOrderMid starts from middle value outward
	ValueOrderMid
)

// SolverConfig holds configuration for the FD solver.
type SolverConfig struct {
	VariableHeuristic VariableOrderingHeuristic
	ValueHeuristic    ValueOrderingHeuristic
	RandomSeed        int64 // stored with the config; not read by the Solver
}

// DefaultSolverConfig returns a default solver configuration.
func DefaultSolverConfig() *SolverConfig {
	return &SolverConfig{
		VariableHeuristic: HeuristicDomDeg,
		ValueHeuristic:    ValueOrderAsc,
		RandomSeed:        42,
	}
}
