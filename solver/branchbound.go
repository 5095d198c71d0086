// ABOUTME: Branch-and-bound integer programming over LP relaxations
// ABOUTME: Relaxations are solved with gonum's simplex in standard form

package solver

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

const (
	defaultTol      = 1e-6
	defaultMaxNodes = 10000
)

// BranchBound is the default Solver: depth-first branch-and-bound, branching
// on the most fractional variable of each LP relaxation. When the node limit
// is reached the best integral solution found so far is returned; with none
// found the search fails with ErrNodeLimit.
type BranchBound struct {
	Tol      float64
	MaxNodes int
}

// NewBranchBound returns a solver with default tolerance and node limit
func NewBranchBound() *BranchBound {
	return &BranchBound{Tol: defaultTol, MaxNodes: defaultMaxNodes}
}

type node struct {
	lo []int
	hi []int
}

// Solve finds an integer assignment minimizing the objective within budget
func (b *BranchBound) Solve(ctx context.Context, p Problem) (Solution, error) {
	n := len(p.Objective)
	if len(p.Cost) != n || len(p.Bounds) != n {
		return Solution{}, fmt.Errorf("mismatched problem dimensions: %d objective, %d cost, %d bounds",
			n, len(p.Cost), len(p.Bounds))
	}
	if n == 0 {
		if p.Budget < 0 {
			return Solution{}, ErrInfeasible
		}
		return Solution{}, nil
	}

	tol := b.Tol
	if tol <= 0 {
		tol = defaultTol
	}
	maxNodes := b.MaxNodes
	if maxNodes <= 0 {
		maxNodes = defaultMaxNodes
	}

	root := node{lo: make([]int, n), hi: make([]int, n)}
	for i, bounds := range p.Bounds {
		root.lo[i] = bounds.Min
		root.hi[i] = bounds.Max
	}

	var (
		best    []float64
		bestObj = math.Inf(1)
		stack   = []node{root}
		nodes   int
	)

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return Solution{}, err
		}
		if nodes >= maxNodes {
			if best != nil {
				break
			}
			return Solution{}, ErrNodeLimit
		}

		nd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes++

		x, obj, err := relax(p, nd.lo, nd.hi)
		switch {
		case errors.Is(err, ErrInfeasible):
			continue
		case errors.Is(err, lp.ErrUnbounded):
			return Solution{}, ErrUnbounded
		case err != nil:
			// Other simplex failures prune the subtree
			continue
		}

		// A relaxation no better than the incumbent bounds its whole subtree
		if obj >= bestObj-1e-9 {
			continue
		}

		branch := mostFractional(x, tol)
		if branch < 0 {
			best = x
			bestObj = obj
			continue
		}

		down := node{lo: copyInts(nd.lo), hi: copyInts(nd.hi)}
		down.hi[branch] = int(math.Floor(x[branch]))
		up := node{lo: copyInts(nd.lo), hi: copyInts(nd.hi)}
		up.lo[branch] = int(math.Ceil(x[branch]))
		stack = append(stack, down, up)
	}

	if best == nil {
		return Solution{}, ErrInfeasible
	}
	return Solution{X: best, Objective: bestObj, Nodes: nodes}, nil
}

// relax solves the LP relaxation over box [lo, hi]. Variables are shifted by
// their lower bounds so the standard form needs only slack columns: one for
// the budget row and one per upper bound.
func relax(p Problem, lo, hi []int) ([]float64, float64, error) {
	n := len(p.Objective)

	residual := p.Budget
	for i := range lo {
		if lo[i] > hi[i] {
			return nil, 0, ErrInfeasible
		}
		residual -= p.Cost[i] * float64(lo[i])
	}
	if residual < 0 {
		return nil, 0, ErrInfeasible
	}

	rows := n + 1
	cols := 2*n + 1

	c := make([]float64, cols)
	offset := 0.0
	for i := 0; i < n; i++ {
		c[i] = p.Objective[i]
		offset += p.Objective[i] * float64(lo[i])
	}

	a := mat.NewDense(rows, cols, nil)
	bvec := make([]float64, rows)
	for i := 0; i < n; i++ {
		a.Set(0, i, p.Cost[i])
	}
	a.Set(0, n, 1)
	bvec[0] = residual
	for i := 0; i < n; i++ {
		a.Set(i+1, i, 1)
		a.Set(i+1, n+1+i, 1)
		bvec[i+1] = float64(hi[i] - lo[i])
	}

	optF, y, err := lp.Simplex(c, a, bvec, 0, nil)
	if err != nil {
		if errors.Is(err, lp.ErrInfeasible) {
			return nil, 0, ErrInfeasible
		}
		return nil, 0, err
	}

	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = y[i] + float64(lo[i])
	}
	return x, optF + offset, nil
}

// mostFractional returns the index of the variable farthest from an integer,
// or -1 when every value is integral within tol
func mostFractional(x []float64, tol float64) int {
	branch := -1
	worst := tol
	for i, v := range x {
		dist := math.Abs(v - math.Round(v))
		if dist > worst {
			worst = dist
			branch = i
		}
	}
	return branch
}

func copyInts(v []int) []int {
	return append([]int(nil), v...)
}
