// ABOUTME: Tests for the branch-and-bound integer solver
// ABOUTME: Uses small instances with hand-checked integer optima

package solver

import (
	"context"
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestBranchBound_IntegralRelaxation(t *testing.T) {
	// Minimizing cost with a binding lower bound: optimum sits at x = 2,
	// objective 2 * 6500 = 13000, no branching needed.
	p := Problem{
		Objective: []float64{6500},
		Cost:      []float64{6500},
		Budget:    20000,
		Bounds:    []Bounds{{Min: 2, Max: 10}},
	}

	sol, err := NewBranchBound().Solve(context.Background(), p)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if !almostEqual(sol.X[0], 2) {
		t.Errorf("Expected x[0] 2, got %v", sol.X[0])
	}
	if !almostEqual(sol.Objective, 13000) {
		t.Errorf("Expected objective 13000, got %v", sol.Objective)
	}
	if sol.Nodes != 1 {
		t.Errorf("Expected 1 node, got %d", sol.Nodes)
	}
}

func TestBranchBound_FractionalRelaxation(t *testing.T) {
	// max 8a + 11b s.t. 5a + 7b <= 14, a,b in [0,2].
	// The LP relaxation peaks at a=2, b=4/7 (22.29); the integer optimum
	// is a=0, b=2 with value 22 (cost 14, exactly on budget).
	p := Problem{
		Objective: []float64{-8, -11},
		Cost:      []float64{5, 7},
		Budget:    14,
		Bounds:    []Bounds{{Min: 0, Max: 2}, {Min: 0, Max: 2}},
	}

	sol, err := NewBranchBound().Solve(context.Background(), p)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if !almostEqual(sol.X[0], 0) || !almostEqual(sol.X[1], 2) {
		t.Errorf("Expected solution (0, 2), got (%v, %v)", sol.X[0], sol.X[1])
	}
	if !almostEqual(sol.Objective, -22) {
		t.Errorf("Expected objective -22, got %v", sol.Objective)
	}
	if sol.Nodes < 2 {
		t.Errorf("Expected branching to explore multiple nodes, got %d", sol.Nodes)
	}
}

func TestBranchBound_MaximizeUpToBound(t *testing.T) {
	// Maximizing gain: budget allows all ten units, upper bound binds
	p := Problem{
		Objective: []float64{-0.75},
		Cost:      []float64{6500},
		Budget:    65000,
		Bounds:    []Bounds{{Min: 2, Max: 10}},
	}

	sol, err := NewBranchBound().Solve(context.Background(), p)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if !almostEqual(sol.X[0], 10) {
		t.Errorf("Expected x[0] 10, got %v", sol.X[0])
	}
}

func TestBranchBound_Infeasible(t *testing.T) {
	// Minimum quantities alone cost 2 * 6500 = 13000, over the 5000 budget
	p := Problem{
		Objective: []float64{6500},
		Cost:      []float64{6500},
		Budget:    5000,
		Bounds:    []Bounds{{Min: 2, Max: 10}},
	}

	_, err := NewBranchBound().Solve(context.Background(), p)
	if !errors.Is(err, ErrInfeasible) {
		t.Errorf("Expected ErrInfeasible, got %v", err)
	}
}

func TestBranchBound_CrossedBounds(t *testing.T) {
	p := Problem{
		Objective: []float64{1},
		Cost:      []float64{1},
		Budget:    100,
		Bounds:    []Bounds{{Min: 3, Max: 1}},
	}

	_, err := NewBranchBound().Solve(context.Background(), p)
	if !errors.Is(err, ErrInfeasible) {
		t.Errorf("Expected ErrInfeasible, got %v", err)
	}
}

func TestBranchBound_DimensionMismatch(t *testing.T) {
	p := Problem{
		Objective: []float64{1, 2},
		Cost:      []float64{1},
		Budget:    10,
		Bounds:    []Bounds{{Min: 0, Max: 1}},
	}

	if _, err := NewBranchBound().Solve(context.Background(), p); err == nil {
		t.Error("Expected error for mismatched dimensions")
	}
}

func TestBranchBound_EmptyProblem(t *testing.T) {
	sol, err := NewBranchBound().Solve(context.Background(), Problem{Budget: 100})
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if len(sol.X) != 0 {
		t.Errorf("Expected empty solution, got %v", sol.X)
	}

	_, err = NewBranchBound().Solve(context.Background(), Problem{Budget: -1})
	if !errors.Is(err, ErrInfeasible) {
		t.Errorf("Expected ErrInfeasible for negative budget, got %v", err)
	}
}

func TestBranchBound_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := Problem{
		Objective: []float64{1},
		Cost:      []float64{1},
		Budget:    10,
		Bounds:    []Bounds{{Min: 0, Max: 5}},
	}

	_, err := NewBranchBound().Solve(ctx, p)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestBranchBound_NodeLimit(t *testing.T) {
	// The fractional instance needs branching; one node is not enough
	b := &BranchBound{MaxNodes: 1}
	p := Problem{
		Objective: []float64{-8, -11},
		Cost:      []float64{5, 7},
		Budget:    14,
		Bounds:    []Bounds{{Min: 0, Max: 2}, {Min: 0, Max: 2}},
	}

	_, err := b.Solve(context.Background(), p)
	if !errors.Is(err, ErrNodeLimit) {
		t.Errorf("Expected ErrNodeLimit, got %v", err)
	}
}

func TestMostFractional(t *testing.T) {
	if idx := mostFractional([]float64{1.0, 2.0000001, 3.0}, 1e-6); idx != -1 {
		t.Errorf("Expected -1 for integral vector, got %d", idx)
	}
	if idx := mostFractional([]float64{1.1, 2.5, 3.0}, 1e-6); idx != 1 {
		t.Errorf("Expected index 1 (most fractional), got %d", idx)
	}
}
