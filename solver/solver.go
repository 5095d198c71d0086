// ABOUTME: Solver boundary for integer-constrained linear programs
// ABOUTME: Injected capability so plan selection can swap or stub the solver

package solver

import (
	"context"
	"errors"
)

// Problem is a single-constraint integer linear program: minimize
// Objective·q subject to Cost·q ≤ Budget with integer bounds per variable.
// The three slices share one index space.
type Problem struct {
	Objective []float64
	Cost      []float64
	Budget    float64
	Bounds    []Bounds
}

// Bounds is the inclusive integer range allowed for one variable
type Bounds struct {
	Min int
	Max int
}

// Solution carries the solved variable values. Values are integral within
// the solver's tolerance but remain floats; callers round.
type Solution struct {
	X         []float64
	Objective float64
	Nodes     int
}

// Solver solves integer linear programs. Implementations must be safe for
// concurrent use.
type Solver interface {
	Solve(ctx context.Context, p Problem) (Solution, error)
}

var (
	// ErrInfeasible means no integer assignment satisfies the constraint
	ErrInfeasible = errors.New("no feasible assignment")
	// ErrUnbounded means the objective can decrease without limit
	ErrUnbounded = errors.New("objective is unbounded")
	// ErrNodeLimit means the search hit its node budget with no solution
	ErrNodeLimit = errors.New("node limit reached without a solution")
)
