// ABOUTME: Budget-tiered fallback procurement plans
// ABOUTME: Fixed bundles returned whenever the solver cannot produce a plan

package services

import (
	"github.com/shopspring/decimal"

	"github.com/rescueops/sar-equipment-planner/models"
)

// fallbackTier pairs a budget ceiling with its fixed bundle. Tiers are
// checked in order; the last tier has no ceiling and always matches.
type fallbackTier struct {
	ceiling decimal.Decimal
	bundle  models.QuantityAssignment
}

var fallbackTiers = []fallbackTier{
	{
		ceiling: decimal.NewFromInt(100000),
		bundle: models.QuantityAssignment{
			"backup_drone": 2,
			"gps_tracker":  5,
			"portable_gps": 4,
		},
	},
	{
		ceiling: decimal.NewFromInt(300000),
		bundle: models.QuantityAssignment{
			"backup_drone":   3,
			"gps_tracker":    8,
			"thermal_camera": 1,
			"satellite_comm": 1,
			"rf_detector":    2,
			"portable_gps":   6,
		},
	},
	{
		bundle: models.QuantityAssignment{
			"backup_drone":    4,
			"gps_tracker":     10,
			"thermal_camera":  2,
			"satellite_comm":  2,
			"rf_detector":     3,
			"portable_gps":    8,
			"offroad_vehicle": 1,
		},
	},
}

// FallbackPlan returns the fixed bundle for the budget tier, ignoring the
// priority mode. The bundles are constants independent of catalog content;
// against a custom catalog their keys may not resolve, and later analysis
// reports those as unknown items. Each call returns a fresh map.
func FallbackPlan(budget decimal.Decimal) models.QuantityAssignment {
	for _, tier := range fallbackTiers {
		if !tier.ceiling.IsZero() && budget.LessThan(tier.ceiling) {
			return tier.bundle.Clone()
		}
	}
	return fallbackTiers[len(fallbackTiers)-1].bundle.Clone()
}
