// ABOUTME: Data models for search-and-rescue equipment items
// ABOUTME: JSON-serializable structures shared by catalog, services, and reports

package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// EquipmentGroup identifies which operational unit an item belongs to
type EquipmentGroup string

const (
	GroupControlCenter EquipmentGroup = "control_center"
	GroupFieldTeam     EquipmentGroup = "field_team"
)

// Valid reports whether the group is one of the known operational units
func (g EquipmentGroup) Valid() bool {
	return g == GroupControlCenter || g == GroupFieldTeam
}

// EquipmentItem describes one procurable equipment type with its cost and
// capability attributes. Money and score fields use decimals so derived
// figures stay exact.
type EquipmentItem struct {
	Key                   string          `json:"key"`
	Name                  string          `json:"name"`
	Group                 EquipmentGroup  `json:"group"`
	AcquisitionCost       decimal.Decimal `json:"acquisition_cost"`
	MaintenanceCost       decimal.Decimal `json:"maintenance_cost"`
	ReadinessCost         decimal.Decimal `json:"readiness_cost"`
	UsageCostPerHour      decimal.Decimal `json:"usage_cost_per_hour"`
	EfficiencyGain        decimal.Decimal `json:"efficiency_gain"`
	ResponseTimeReduction decimal.Decimal `json:"response_time_reduction"`
	LifespanYears         int             `json:"lifespan_years"`
	QuantityMin           int             `json:"quantity_min"`
	QuantityMax           int             `json:"quantity_max"`
}

// Validate checks the item's attributes for internal consistency
func (e EquipmentItem) Validate() error {
	if e.Key == "" {
		return fmt.Errorf("equipment item has no key")
	}
	if e.Name == "" {
		return fmt.Errorf("equipment item %q has no name", e.Key)
	}
	if !e.Group.Valid() {
		return fmt.Errorf("equipment item %q has unknown group %q", e.Key, e.Group)
	}
	if e.AcquisitionCost.IsNegative() || e.MaintenanceCost.IsNegative() ||
		e.ReadinessCost.IsNegative() || e.UsageCostPerHour.IsNegative() {
		return fmt.Errorf("equipment item %q has a negative cost component", e.Key)
	}
	if e.EfficiencyGain.IsNegative() || e.EfficiencyGain.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("equipment item %q efficiency gain must be within [0,1], got %s", e.Key, e.EfficiencyGain)
	}
	if e.ResponseTimeReduction.IsNegative() || e.ResponseTimeReduction.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("equipment item %q response time reduction must be within [0,1], got %s", e.Key, e.ResponseTimeReduction)
	}
	if e.LifespanYears < 1 {
		return fmt.Errorf("equipment item %q lifespan must be at least 1 year, got %d", e.Key, e.LifespanYears)
	}
	if e.QuantityMin < 0 {
		return fmt.Errorf("equipment item %q minimum quantity must not be negative, got %d", e.Key, e.QuantityMin)
	}
	if e.QuantityMax < e.QuantityMin {
		return fmt.Errorf("equipment item %q quantity bounds are inverted: [%d, %d]", e.Key, e.QuantityMin, e.QuantityMax)
	}
	return nil
}
