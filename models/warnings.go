// ABOUTME: Budget warnings derived from a plan analysis
// ABOUTME: Flags overruns and near-exhaustion for report rendering

package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PlanWarning flags a budget concern found in an analyzed plan
type PlanWarning struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// BudgetUtilizationPct returns the annual cost as a percentage of the budget.
// A non-positive budget yields 0.
func BudgetUtilizationPct(analysis PlanAnalysis, budget decimal.Decimal) float64 {
	if !budget.IsPositive() {
		return 0
	}
	pct, _ := analysis.TotalAnnualCost.Div(budget).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}

// GeneratePlanWarnings produces warnings for a plan evaluated against a budget
func GeneratePlanWarnings(analysis PlanAnalysis, budget decimal.Decimal) []PlanWarning {
	var warnings []PlanWarning

	if !budget.IsPositive() {
		return warnings
	}

	// Budget utilization warnings
	utilization := BudgetUtilizationPct(analysis, budget)
	if analysis.TotalAnnualCost.GreaterThan(budget) {
		warnings = append(warnings, PlanWarning{
			Severity: "critical",
			Message:  fmt.Sprintf("Annual cost exceeds budget (%.1f%% utilization)", utilization),
		})
	} else if utilization > 95 {
		warnings = append(warnings, PlanWarning{
			Severity: "warning",
			Message:  fmt.Sprintf("Budget nearly exhausted (%.1f%% utilization)", utilization),
		})
	}

	// Empty plan with budget available
	if len(analysis.Items) == 0 {
		warnings = append(warnings, PlanWarning{
			Severity: "warning",
			Message:  "Plan contains no equipment",
		})
	}

	return warnings
}
