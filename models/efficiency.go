// ABOUTME: Efficiency metrics for a procurement plan
// ABOUTME: Scores are quantity-weighted sums of item capability attributes

package models

import "github.com/shopspring/decimal"

// EfficiencyMetrics summarizes the capability side of an assignment.
// OverallScore = 0.6 * EfficiencyScore + 0.4 * ResponseImprovement.
type EfficiencyMetrics struct {
	EfficiencyScore     decimal.Decimal `json:"efficiency_score"`
	ResponseImprovement decimal.Decimal `json:"response_improvement"`
	OverallScore        decimal.Decimal `json:"overall_score"`
}
