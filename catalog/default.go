// ABOUTME: Built-in equipment catalog for search-and-rescue operations
// ABOUTME: Control-center and field-team items with cost and capability attributes

package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/rescueops/sar-equipment-planner/models"
)

// Default returns the built-in seven-item catalog. Used when no catalog
// file is configured.
func Default() *Catalog {
	c, err := New(
		models.EquipmentItem{
			Key:                   "backup_drone",
			Name:                  "Backup drone",
			Group:                 models.GroupControlCenter,
			AcquisitionCost:       decimal.NewFromInt(30000),
			MaintenanceCost:       decimal.NewFromInt(4500),
			ReadinessCost:         decimal.NewFromInt(2000),
			UsageCostPerHour:      decimal.NewFromInt(500),
			EfficiencyGain:        decimal.NewFromFloat(0.85),
			ResponseTimeReduction: decimal.NewFromFloat(0.7),
			LifespanYears:         3,
			QuantityMin:           1,
			QuantityMax:           5,
		},
		models.EquipmentItem{
			Key:                   "thermal_camera",
			Name:                  "Thermal imaging camera",
			Group:                 models.GroupControlCenter,
			AcquisitionCost:       decimal.NewFromInt(50000),
			MaintenanceCost:       decimal.NewFromInt(2500),
			ReadinessCost:         decimal.NewFromInt(1000),
			UsageCostPerHour:      decimal.NewFromInt(100),
			EfficiencyGain:        decimal.NewFromFloat(0.65),
			ResponseTimeReduction: decimal.NewFromFloat(0.3),
			LifespanYears:         5,
			QuantityMin:           0,
			QuantityMax:           3,
		},
		models.EquipmentItem{
			Key:                   "gps_tracker",
			Name:                  "GPS tracker",
			Group:                 models.GroupControlCenter,
			AcquisitionCost:       decimal.NewFromInt(2000),
			MaintenanceCost:       decimal.NewFromInt(300),
			ReadinessCost:         decimal.NewFromInt(200),
			UsageCostPerHour:      decimal.NewFromInt(50),
			EfficiencyGain:        decimal.NewFromFloat(0.75),
			ResponseTimeReduction: decimal.NewFromFloat(0.6),
			LifespanYears:         2,
			QuantityMin:           2,
			QuantityMax:           10,
		},
		models.EquipmentItem{
			Key:                   "satellite_comm",
			Name:                  "Satellite comm unit",
			Group:                 models.GroupControlCenter,
			AcquisitionCost:       decimal.NewFromInt(15000),
			MaintenanceCost:       decimal.NewFromInt(3000),
			ReadinessCost:         decimal.NewFromInt(1500),
			UsageCostPerHour:      decimal.NewFromInt(200),
			EfficiencyGain:        decimal.NewFromFloat(0.55),
			ResponseTimeReduction: decimal.NewFromFloat(0.4),
			LifespanYears:         4,
			QuantityMin:           1,
			QuantityMax:           3,
		},
		models.EquipmentItem{
			Key:                   "rf_detector",
			Name:                  "RF signal detector",
			Group:                 models.GroupFieldTeam,
			AcquisitionCost:       decimal.NewFromInt(20000),
			MaintenanceCost:       decimal.NewFromInt(1000),
			ReadinessCost:         decimal.NewFromInt(800),
			UsageCostPerHour:      decimal.NewFromInt(150),
			EfficiencyGain:        decimal.NewFromFloat(0.60),
			ResponseTimeReduction: decimal.NewFromFloat(0.5),
			LifespanYears:         4,
			QuantityMin:           1,
			QuantityMax:           4,
		},
		models.EquipmentItem{
			Key:                   "portable_gps",
			Name:                  "Portable GPS navigator",
			Group:                 models.GroupFieldTeam,
			AcquisitionCost:       decimal.NewFromInt(3000),
			MaintenanceCost:       decimal.NewFromInt(300),
			ReadinessCost:         decimal.NewFromInt(200),
			UsageCostPerHour:      decimal.NewFromInt(50),
			EfficiencyGain:        decimal.NewFromFloat(0.45),
			ResponseTimeReduction: decimal.NewFromFloat(0.35),
			LifespanYears:         3,
			QuantityMin:           3,
			QuantityMax:           8,
		},
		models.EquipmentItem{
			Key:                   "offroad_vehicle",
			Name:                  "Off-road vehicle",
			Group:                 models.GroupFieldTeam,
			AcquisitionCost:       decimal.NewFromInt(300000),
			MaintenanceCost:       decimal.NewFromInt(30000),
			ReadinessCost:         decimal.NewFromInt(10000),
			UsageCostPerHour:      decimal.NewFromInt(500),
			EfficiencyGain:        decimal.NewFromFloat(0.70),
			ResponseTimeReduction: decimal.NewFromFloat(0.65),
			LifespanYears:         8,
			QuantityMin:           0,
			QuantityMax:           2,
		},
	)
	if err != nil {
		panic(err)
	}
	return c
}
