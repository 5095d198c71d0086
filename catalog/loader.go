// ABOUTME: YAML catalog file loading and parsing
// ABOUTME: Lifts wire-format numbers into decimal domain types with validation

package catalog

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rescueops/sar-equipment-planner/models"
)

// catalogFile is the wire schema of a catalog YAML file
type catalogFile struct {
	Items []catalogEntry `yaml:"items" json:"items"`
}

// catalogEntry mirrors models.EquipmentItem with plain numbers for YAML
type catalogEntry struct {
	Key                   string  `yaml:"key" json:"key"`
	Name                  string  `yaml:"name" json:"name"`
	Group                 string  `yaml:"group" json:"group"`
	AcquisitionCost       float64 `yaml:"acquisition_cost" json:"acquisition_cost"`
	MaintenanceCost       float64 `yaml:"maintenance_cost" json:"maintenance_cost"`
	ReadinessCost         float64 `yaml:"readiness_cost" json:"readiness_cost"`
	UsageCostPerHour      float64 `yaml:"usage_cost_per_hour" json:"usage_cost_per_hour"`
	EfficiencyGain        float64 `yaml:"efficiency_gain" json:"efficiency_gain"`
	ResponseTimeReduction float64 `yaml:"response_time_reduction" json:"response_time_reduction"`
	LifespanYears         int     `yaml:"lifespan_years" json:"lifespan_years"`
	QuantityMin           int     `yaml:"quantity_min" json:"quantity_min"`
	QuantityMax           int     `yaml:"quantity_max" json:"quantity_max"`
}

// Load reads and parses a catalog YAML file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return c, nil
}

// Parse builds a catalog from YAML catalog-file content
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(file.Items) == 0 {
		return nil, fmt.Errorf("catalog contains no items")
	}

	items := make([]models.EquipmentItem, 0, len(file.Items))
	for _, entry := range file.Items {
		items = append(items, models.EquipmentItem{
			Key:                   entry.Key,
			Name:                  entry.Name,
			Group:                 models.EquipmentGroup(entry.Group),
			AcquisitionCost:       decimal.NewFromFloat(entry.AcquisitionCost),
			MaintenanceCost:       decimal.NewFromFloat(entry.MaintenanceCost),
			ReadinessCost:         decimal.NewFromFloat(entry.ReadinessCost),
			UsageCostPerHour:      decimal.NewFromFloat(entry.UsageCostPerHour),
			EfficiencyGain:        decimal.NewFromFloat(entry.EfficiencyGain),
			ResponseTimeReduction: decimal.NewFromFloat(entry.ResponseTimeReduction),
			LifespanYears:         entry.LifespanYears,
			QuantityMin:           entry.QuantityMin,
			QuantityMax:           entry.QuantityMax,
		})
	}
	return New(items...)
}
