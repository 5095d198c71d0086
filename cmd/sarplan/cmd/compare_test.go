// ABOUTME: Tests for the compare command
// ABOUTME: Verifies concurrent budget evaluation, detail selection, and JSON output

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rescueops/sar-equipment-planner/models"
	"github.com/rescueops/sar-equipment-planner/report"
)

func resetCompareFlags() {
	compareBudgets = []float64{80000, 200000, 500000}
	compareMode = "balanced"
	compareDetail = 0
	catalogPath = ""
	jsonOutput = false
}

func TestRunCompare_RendersTableAndDetail(t *testing.T) {
	resetCompareFlags()
	defer resetCompareFlags()
	compareBudgets = []float64{80000, 200000}
	compareMode = "cost"

	var buf bytes.Buffer
	code := runCompare(context.Background(), &buf)

	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d\noutput: %s", code, buf.String())
	}

	out := buf.String()
	for _, want := range []string{
		"Budget Comparison",
		"$80,000.00",
		"$200,000.00",
		"Detailed Plan (cost)",
		"Total annual cost",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
}

func TestRunCompare_JSONOutput(t *testing.T) {
	resetCompareFlags()
	defer resetCompareFlags()
	compareBudgets = []float64{80000, 200000}

	jsonOutput = true

	var buf bytes.Buffer
	code := runCompare(context.Background(), &buf)

	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d\noutput: %s", code, buf.String())
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	results, ok := parsed["results"].([]interface{})
	if !ok {
		t.Fatalf("Expected results array, got %T", parsed["results"])
	}
	if len(results) != 2 {
		t.Errorf("Expected 2 results, got %d", len(results))
	}
}

func TestRunCompare_EmptyBudgets(t *testing.T) {
	resetCompareFlags()
	defer resetCompareFlags()
	compareBudgets = nil

	var buf bytes.Buffer
	code := runCompare(context.Background(), &buf)

	if code != 2 {
		t.Errorf("Expected exit code 2, got %d", code)
	}
	if !strings.Contains(buf.String(), "--budgets must not be empty") {
		t.Error("Expected empty budgets validation message")
	}
}

func TestRunCompare_NegativeBudget(t *testing.T) {
	resetCompareFlags()
	defer resetCompareFlags()
	compareBudgets = []float64{100000, -1}

	var buf bytes.Buffer
	code := runCompare(context.Background(), &buf)

	if code != 2 {
		t.Errorf("Expected exit code 2, got %d", code)
	}
	if !strings.Contains(buf.String(), "budgets must be positive") {
		t.Error("Expected budget validation message")
	}
}

func TestDetailBudget(t *testing.T) {
	budgets := []float64{80000, 200000, 500000}

	// Flag wins when set
	if got := detailBudget(budgets, 42000); got != 42000 {
		t.Errorf("Expected 42000, got %v", got)
	}

	// Default is the middle budget
	if got := detailBudget(budgets, 0); got != 200000 {
		t.Errorf("Expected 200000, got %v", got)
	}

	if got := detailBudget([]float64{50000}, 0); got != 50000 {
		t.Errorf("Expected 50000, got %v", got)
	}
}

func TestFormatCompareJSON(t *testing.T) {
	rows := []report.ComparisonRow{
		{
			Budget:   decimal.NewFromInt(100000),
			Plan:     models.QuantityAssignment{"gps_tracker": 2},
			Analysis: models.PlanAnalysis{TotalAnnualCost: decimal.NewFromInt(13000)},
		},
	}

	output := formatCompareJSON(models.PriorityBalanced, rows, decimal.NewFromInt(100000), rows[0].Analysis)

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(output), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed["mode"] != "balanced" {
		t.Errorf("Expected mode balanced, got %v", parsed["mode"])
	}
	if _, ok := parsed["detail"]; !ok {
		t.Error("Expected detail key in JSON output")
	}
}
