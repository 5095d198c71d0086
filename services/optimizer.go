// ABOUTME: Budget-constrained plan selection via integer programming
// ABOUTME: Builds the priority-mode objective and absorbs solver failures

package services

import (
	"context"
	"log/slog"
	"math"

	"github.com/shopspring/decimal"

	"github.com/rescueops/sar-equipment-planner/catalog"
	"github.com/rescueops/sar-equipment-planner/models"
	"github.com/rescueops/sar-equipment-planner/solver"
)

// Objective scaling factors for the gain-seeking priority modes
const (
	efficiencyObjectiveScale = 10000
	balancedObjectiveScale   = 5000
)

// PlanOptimizer selects procurement quantities under an annual budget
type PlanOptimizer struct {
	catalog *catalog.Catalog
	solver  solver.Solver
}

// NewPlanOptimizer creates an optimizer over the catalog. A nil solver
// selects the built-in branch-and-bound.
func NewPlanOptimizer(cat *catalog.Catalog, slv solver.Solver) *PlanOptimizer {
	if slv == nil {
		slv = solver.NewBranchBound()
	}
	return &PlanOptimizer{catalog: cat, solver: slv}
}

// SelectPlan chooses a quantity for every catalog item so that total annual
// cost (at reference usage hours) fits the budget, minimizing the objective
// the priority mode selects. Any solver failure degrades to the fixed
// fallback bundle for the budget tier; it is never surfaced as an error.
func (o *PlanOptimizer) SelectPlan(ctx context.Context, budget decimal.Decimal, mode models.PriorityMode) models.QuantityAssignment {
	items := o.catalog.Items()
	n := len(items)

	problem := solver.Problem{
		Objective: make([]float64, n),
		Cost:      make([]float64, n),
		Budget:    budget.InexactFloat64(),
		Bounds:    make([]solver.Bounds, n),
	}
	for i, item := range items {
		cost := unitAnnualCost(item, ReferenceUsageHours).Total.InexactFloat64()
		problem.Cost[i] = cost
		problem.Bounds[i] = solver.Bounds{Min: item.QuantityMin, Max: item.QuantityMax}
		problem.Objective[i] = objectiveCoefficient(mode, cost, item)
	}

	sol, err := o.solver.Solve(ctx, problem)
	if err != nil {
		slog.Warn("plan solver failed, using fallback plan",
			"budget", budget, "mode", mode, "error", err)
		return FallbackPlan(budget)
	}

	plan, ok := roundedPlan(items, problem, sol)
	if !ok {
		slog.Warn("solver solution failed validation, using fallback plan",
			"budget", budget, "mode", mode)
		return FallbackPlan(budget)
	}

	slog.Debug("plan selected",
		"budget", budget, "mode", mode, "items", len(plan), "nodes", sol.Nodes)
	return plan
}

// objectiveCoefficient maps the priority mode to one variable's objective
// weight. Unknown modes get the balanced treatment.
func objectiveCoefficient(mode models.PriorityMode, unitCost float64, item models.EquipmentItem) float64 {
	gain := item.EfficiencyGain.InexactFloat64()
	switch mode {
	case models.PriorityCost:
		return unitCost
	case models.PriorityEfficiency:
		return -gain * efficiencyObjectiveScale
	default:
		return unitCost - gain*balancedObjectiveScale
	}
}

// roundedPlan rounds solver values to integers and re-checks bounds and
// budget, guarding against float noise and misbehaving injected solvers.
// Zero quantities are omitted from the returned assignment.
func roundedPlan(items []models.EquipmentItem, p solver.Problem, sol solver.Solution) (models.QuantityAssignment, bool) {
	if len(sol.X) != len(items) {
		return nil, false
	}

	total := 0.0
	plan := make(models.QuantityAssignment)
	for i, item := range items {
		qty := int(math.Round(sol.X[i]))
		if qty < item.QuantityMin || qty > item.QuantityMax {
			return nil, false
		}
		total += p.Cost[i] * float64(qty)
		if qty > 0 {
			plan[item.Key] = qty
		}
	}

	eps := 1e-6 * (1 + math.Abs(p.Budget))
	if total > p.Budget+eps {
		return nil, false
	}
	return plan, true
}
