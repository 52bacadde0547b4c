package domain

import "time"

// Solver settings passed alongside the declared model.
type Parameters struct {
	SolverName    string        `validate:"required"`
	TimeLimit     time.Duration `validate:"gt=0"`
	HeuristicUsed bool
	UpperBound    *float64
	SolverPath    string
}

// Represents the planned route of a single physical vehicle.
// PointIDs lists visited customers in order; the depot is implicit at both ends.
// It is immutable planning data and contains no side effects.
type Route struct {
	VehicleIndex  int
	VehicleTypeID int
	PointIDs      []int
	Load          int
	Distance      float64
	Cost          float64
}

// Solver-reported search statistics.
type Statistics struct {
	SolutionTime time.Duration
	BestLB       float64
	RootLB       float64
	RootTime     time.Duration
	NodeCount    int
}

// Solve statuses reported in Solution.Status.
const (
	StatusFeasible   = "Feasible"
	StatusInfeasible = "Infeasible"
	StatusTimeLimit  = "TimeLimit"
	StatusCutoff     = "Cutoff"
)

// Outcome of an external or built-in solve.
type Solution struct {
	RunID      string
	IsDefined  bool
	Value      float64
	Routes     []Route
	Statistics Statistics
	Status     string
}
