// ABOUTME: Cost and efficiency analysis of procurement plans
// ABOUTME: Composes the cost calculator and efficiency scorer over assignments

package services

import (
	"github.com/shopspring/decimal"

	"github.com/rescueops/sar-equipment-planner/catalog"
	"github.com/rescueops/sar-equipment-planner/models"
)

// DefaultProjectionYears is the projection horizon applied when none is given
const DefaultProjectionYears = 5

// PlanAnalyzer produces the full cost and efficiency picture for a plan
type PlanAnalyzer struct {
	catalog *catalog.Catalog
	costs   *CostCalculator
	scorer  *EfficiencyScorer
}

// NewPlanAnalyzer creates an analyzer over the given catalog
func NewPlanAnalyzer(cat *catalog.Catalog) *PlanAnalyzer {
	return &PlanAnalyzer{
		catalog: cat,
		costs:   NewCostCalculator(cat),
		scorer:  NewEfficiencyScorer(cat),
	}
}

// Analyze computes per-item annual breakdowns at reference usage hours, the
// annual total, the projected total over the horizon, and efficiency
// metrics. years ≤ 0 selects DefaultProjectionYears. Items appear in sorted
// key order; zero quantities carry no cost row but their keys must still
// exist in the catalog.
func (a *PlanAnalyzer) Analyze(assignment models.QuantityAssignment, years int) (models.PlanAnalysis, error) {
	if years <= 0 {
		years = DefaultProjectionYears
	}

	metrics, err := a.scorer.Score(assignment)
	if err != nil {
		return models.PlanAnalysis{}, err
	}

	var items []models.ItemCost
	var total decimal.Decimal
	for _, key := range assignment.Keys() {
		qty := assignment[key]
		if qty == 0 {
			continue
		}
		breakdown, err := a.costs.AnnualCost(key, qty, ReferenceUsageHours)
		if err != nil {
			return models.PlanAnalysis{}, err
		}
		item, err := a.catalog.Item(key)
		if err != nil {
			return models.PlanAnalysis{}, err
		}
		items = append(items, models.ItemCost{
			Key:      key,
			Name:     item.Name,
			Group:    item.Group,
			Quantity: qty,
			Cost:     breakdown,
		})
		total = total.Add(breakdown.Total)
	}

	return models.PlanAnalysis{
		Items:              items,
		TotalAnnualCost:    total,
		ProjectionYears:    years,
		TotalProjectedCost: total.Mul(decimal.NewFromInt(int64(years))),
		Efficiency:         metrics,
	}, nil
}
