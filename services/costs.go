// ABOUTME: Annual cost calculation for equipment assignments
// ABOUTME: Amortizes acquisition over lifespan and scales components by quantity

package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rescueops/sar-equipment-planner/catalog"
	"github.com/rescueops/sar-equipment-planner/models"
)

// ReferenceUsageHours is the annual usage assumption applied when a caller
// does not supply explicit usage hours. The optimizer's budget constraint
// uses the same value so selected plans and their analyses agree.
const ReferenceUsageHours = 100

// ErrInvalidQuantity is returned for negative quantities
var ErrInvalidQuantity = errors.New("invalid quantity")

// CostCalculator computes annual cost breakdowns from catalog attributes
type CostCalculator struct {
	catalog *catalog.Catalog
}

// NewCostCalculator creates a calculator over the given catalog
func NewCostCalculator(cat *catalog.Catalog) *CostCalculator {
	return &CostCalculator{catalog: cat}
}

// AnnualCost returns the annual cost of holding quantity units of an item.
// usageHours ≤ 0 selects ReferenceUsageHours. Every component scales
// linearly with quantity; quantity 0 yields an all-zero breakdown.
func (c *CostCalculator) AnnualCost(key string, quantity, usageHours int) (models.CostBreakdown, error) {
	if quantity < 0 {
		return models.CostBreakdown{}, fmt.Errorf("%w: %d units of %q", ErrInvalidQuantity, quantity, key)
	}
	item, err := c.catalog.Item(key)
	if err != nil {
		return models.CostBreakdown{}, err
	}

	unit := unitAnnualCost(item, usageHours)
	qty := decimal.NewFromInt(int64(quantity))
	return models.CostBreakdown{
		Acquisition: unit.Acquisition.Mul(qty),
		Maintenance: unit.Maintenance.Mul(qty),
		Readiness:   unit.Readiness.Mul(qty),
		Usage:       unit.Usage.Mul(qty),
		Total:       unit.Total.Mul(qty),
	}, nil
}

// unitAnnualCost is the annual cost of one unit: acquisition amortized over
// the lifespan, plus maintenance, readiness, and usage at the given hours
func unitAnnualCost(item models.EquipmentItem, usageHours int) models.CostBreakdown {
	if usageHours <= 0 {
		usageHours = ReferenceUsageHours
	}
	acquisition := item.AcquisitionCost.Div(decimal.NewFromInt(int64(item.LifespanYears)))
	usage := item.UsageCostPerHour.Mul(decimal.NewFromInt(int64(usageHours)))
	return models.CostBreakdown{
		Acquisition: acquisition,
		Maintenance: item.MaintenanceCost,
		Readiness:   item.ReadinessCost,
		Usage:       usage,
		Total:       acquisition.Add(item.MaintenanceCost).Add(item.ReadinessCost).Add(usage),
	}
}
