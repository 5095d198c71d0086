// ABOUTME: Tests for plan analysis
// ABOUTME: Worked cost projections, horizon defaulting, and error propagation

package services

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rescueops/sar-equipment-planner/catalog"
	"github.com/rescueops/sar-equipment-planner/models"
)

func TestAnalyze_TotalsAndProjection(t *testing.T) {
	// Drones: 2 * 66500 = 133000; trackers: 5 * 6500 = 32500
	// Annual total 165500, five-year projection 827500
	analyzer := NewPlanAnalyzer(catalog.Default())

	analysis, err := analyzer.Analyze(models.QuantityAssignment{
		"backup_drone": 2,
		"gps_tracker":  5,
	}, 0)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	if !analysis.TotalAnnualCost.Equal(decimal.NewFromInt(165500)) {
		t.Errorf("Expected annual total 165500, got %s", analysis.TotalAnnualCost)
	}
	if analysis.ProjectionYears != 5 {
		t.Errorf("Expected default projection of 5 years, got %d", analysis.ProjectionYears)
	}
	if !analysis.TotalProjectedCost.Equal(decimal.NewFromInt(827500)) {
		t.Errorf("Expected projected total 827500, got %s", analysis.TotalProjectedCost)
	}
}

func TestAnalyze_ProjectionIsExactMultiple(t *testing.T) {
	analyzer := NewPlanAnalyzer(catalog.Default())

	analysis, err := analyzer.Analyze(models.QuantityAssignment{"satellite_comm": 2}, 0)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	want := analysis.TotalAnnualCost.Mul(decimal.NewFromInt(5))
	if !analysis.TotalProjectedCost.Equal(want) {
		t.Errorf("Expected projected total %s, got %s", want, analysis.TotalProjectedCost)
	}
}

func TestAnalyze_ExplicitYears(t *testing.T) {
	analyzer := NewPlanAnalyzer(catalog.Default())

	analysis, err := analyzer.Analyze(models.QuantityAssignment{"gps_tracker": 2}, 3)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if analysis.ProjectionYears != 3 {
		t.Errorf("Expected 3 projection years, got %d", analysis.ProjectionYears)
	}
	// 2 trackers * 6500 * 3 years = 39000
	if !analysis.TotalProjectedCost.Equal(decimal.NewFromInt(39000)) {
		t.Errorf("Expected projected total 39000, got %s", analysis.TotalProjectedCost)
	}
}

func TestAnalyze_ItemsSortedWithAttributes(t *testing.T) {
	analyzer := NewPlanAnalyzer(catalog.Default())

	analysis, err := analyzer.Analyze(models.QuantityAssignment{
		"gps_tracker":  5,
		"backup_drone": 2,
	}, 0)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	if len(analysis.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(analysis.Items))
	}
	if analysis.Items[0].Key != "backup_drone" {
		t.Errorf("Expected backup_drone first, got %s", analysis.Items[0].Key)
	}
	if analysis.Items[0].Name != "Backup drone" {
		t.Errorf("Expected display name, got %q", analysis.Items[0].Name)
	}
	if analysis.Items[0].Group != models.GroupControlCenter {
		t.Errorf("Expected control_center group, got %s", analysis.Items[0].Group)
	}
	if analysis.Items[1].Quantity != 5 {
		t.Errorf("Expected 5 trackers, got %d", analysis.Items[1].Quantity)
	}
}

func TestAnalyze_ZeroQuantityOmitted(t *testing.T) {
	analyzer := NewPlanAnalyzer(catalog.Default())

	analysis, err := analyzer.Analyze(models.QuantityAssignment{
		"backup_drone":   1,
		"thermal_camera": 0,
	}, 0)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if len(analysis.Items) != 1 {
		t.Errorf("Expected 1 item row, got %d", len(analysis.Items))
	}
}

func TestAnalyze_UnknownKey(t *testing.T) {
	analyzer := NewPlanAnalyzer(catalog.Default())

	_, err := analyzer.Analyze(models.QuantityAssignment{"jet_pack": 1}, 0)
	if !errors.Is(err, catalog.ErrUnknownItem) {
		t.Errorf("Expected ErrUnknownItem, got %v", err)
	}
}

func TestAnalyze_UnknownKeyZeroQuantity(t *testing.T) {
	analyzer := NewPlanAnalyzer(catalog.Default())

	_, err := analyzer.Analyze(models.QuantityAssignment{"jet_pack": 0}, 0)
	if !errors.Is(err, catalog.ErrUnknownItem) {
		t.Errorf("Expected ErrUnknownItem, got %v", err)
	}
}

func TestAnalyze_NegativeQuantity(t *testing.T) {
	analyzer := NewPlanAnalyzer(catalog.Default())

	_, err := analyzer.Analyze(models.QuantityAssignment{"gps_tracker": -2}, 0)
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("Expected ErrInvalidQuantity, got %v", err)
	}
}

func TestAnalyze_EmptyAssignment(t *testing.T) {
	analyzer := NewPlanAnalyzer(catalog.Default())

	analysis, err := analyzer.Analyze(models.QuantityAssignment{}, 0)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if len(analysis.Items) != 0 {
		t.Errorf("Expected no items, got %d", len(analysis.Items))
	}
	if !analysis.TotalAnnualCost.IsZero() {
		t.Errorf("Expected zero annual cost, got %s", analysis.TotalAnnualCost)
	}
}

func TestAnalyze_FallbackBundle(t *testing.T) {
	// Small bundle: 2 drones (133000) + 5 trackers (32500) + 4 handheld
	// navigators (26000) = 191500 annually, 957500 over five years
	analyzer := NewPlanAnalyzer(catalog.Default())

	analysis, err := analyzer.Analyze(FallbackPlan(decimal.NewFromInt(80000)), 0)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if !analysis.TotalAnnualCost.Equal(decimal.NewFromInt(191500)) {
		t.Errorf("Expected annual total 191500, got %s", analysis.TotalAnnualCost)
	}
	if !analysis.TotalProjectedCost.Equal(decimal.NewFromInt(957500)) {
		t.Errorf("Expected projected total 957500, got %s", analysis.TotalProjectedCost)
	}
}
