// ABOUTME: Annual cost breakdowns and plan analysis results
// ABOUTME: Decimal money fields keep component sums exact

package models

import "github.com/shopspring/decimal"

// CostBreakdown splits an annual cost into its components. Acquisition is
// amortized over the item's lifespan; Usage assumes the reference usage hours
// unless the caller chose otherwise.
type CostBreakdown struct {
	Acquisition decimal.Decimal `json:"acquisition"`
	Maintenance decimal.Decimal `json:"maintenance"`
	Readiness   decimal.Decimal `json:"readiness"`
	Usage       decimal.Decimal `json:"usage"`
	Total       decimal.Decimal `json:"total"`
}

// Add returns the component-wise sum of two breakdowns
func (b CostBreakdown) Add(o CostBreakdown) CostBreakdown {
	return CostBreakdown{
		Acquisition: b.Acquisition.Add(o.Acquisition),
		Maintenance: b.Maintenance.Add(o.Maintenance),
		Readiness:   b.Readiness.Add(o.Readiness),
		Usage:       b.Usage.Add(o.Usage),
		Total:       b.Total.Add(o.Total),
	}
}

// ItemCost pairs one assignment entry with its annual cost breakdown
type ItemCost struct {
	Key      string         `json:"key"`
	Name     string         `json:"name"`
	Group    EquipmentGroup `json:"group"`
	Quantity int            `json:"quantity"`
	Cost     CostBreakdown  `json:"cost"`
}

// PlanAnalysis is the full cost and efficiency picture for one assignment
type PlanAnalysis struct {
	Items              []ItemCost        `json:"items"`
	TotalAnnualCost    decimal.Decimal   `json:"total_annual_cost"`
	ProjectionYears    int               `json:"projection_years"`
	TotalProjectedCost decimal.Decimal   `json:"total_projected_cost"`
	Efficiency         EfficiencyMetrics `json:"efficiency"`
}
