// ABOUTME: Efficiency scoring for procurement plans
// ABOUTME: Quantity-weighted capability sums with a fixed 60/40 overall blend

package services

import (
	"github.com/shopspring/decimal"

	"github.com/rescueops/sar-equipment-planner/catalog"
	"github.com/rescueops/sar-equipment-planner/models"
)

var (
	efficiencyWeight = decimal.NewFromFloat(0.6)
	responseWeight   = decimal.NewFromFloat(0.4)
)

// EfficiencyScorer accumulates capability scores over an assignment
type EfficiencyScorer struct {
	catalog *catalog.Catalog
}

// NewEfficiencyScorer creates a scorer over the given catalog
func NewEfficiencyScorer(cat *catalog.Catalog) *EfficiencyScorer {
	return &EfficiencyScorer{catalog: cat}
}

// Score sums efficiency gain and response reduction weighted by quantity.
// Every key in the assignment must exist in the catalog, including entries
// with zero quantity; only quantities above zero contribute to the scores.
func (s *EfficiencyScorer) Score(assignment models.QuantityAssignment) (models.EfficiencyMetrics, error) {
	var efficiency, response decimal.Decimal
	for _, key := range assignment.Keys() {
		item, err := s.catalog.Item(key)
		if err != nil {
			return models.EfficiencyMetrics{}, err
		}
		qty := assignment[key]
		if qty <= 0 {
			continue
		}
		q := decimal.NewFromInt(int64(qty))
		efficiency = efficiency.Add(item.EfficiencyGain.Mul(q))
		response = response.Add(item.ResponseTimeReduction.Mul(q))
	}

	return models.EfficiencyMetrics{
		EfficiencyScore:     efficiency,
		ResponseImprovement: response,
		OverallScore:        efficiency.Mul(efficiencyWeight).Add(response.Mul(responseWeight)),
	}, nil
}
