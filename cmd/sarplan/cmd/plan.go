// ABOUTME: Plan command for sarplan CLI
// ABOUTME: Selects a procurement plan for one budget and renders its analysis

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rescueops/sar-equipment-planner/config"
	"github.com/rescueops/sar-equipment-planner/models"
	"github.com/rescueops/sar-equipment-planner/report"
	"github.com/rescueops/sar-equipment-planner/services"
)

var (
	planBudget float64
	planMode   string
	planYears  int
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Select and analyze a procurement plan",
	Long: `Select an equipment procurement plan under the given annual budget and
render its cost and efficiency analysis.

When the optimizer cannot produce a plan, a budget-tiered fallback bundle
is used instead.

Exit codes:
  0 - Plan selected and rendered
  2 - Error (invalid input, catalog failure)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runPlan(ctx, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().Float64Var(&planBudget, "budget", 200000, "Annual budget")
	planCmd.Flags().StringVar(&planMode, "mode", "balanced", "Optimization priority: cost, efficiency, or balanced")
	planCmd.Flags().IntVar(&planYears, "years", services.DefaultProjectionYears, "Projection horizon in years")
}

// runPlan selects and analyzes one plan, writes the result, returns exit code
func runPlan(ctx context.Context, w io.Writer) int {
	mode, err := models.ParsePriorityMode(planMode)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if planBudget <= 0 {
		fmt.Fprintln(w, "Error: --budget must be positive")
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	budget := decimal.NewFromFloat(planBudget)
	plan := newOptimizer(cfg, cat).SelectPlan(ctx, budget, mode)

	analysis, err := services.NewPlanAnalyzer(cat).Analyze(plan, planYears)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatPlanJSON(budget, mode, plan, analysis))
	} else {
		report.Render(w, analysis, report.Options{
			Title:  fmt.Sprintf("Equipment Procurement Plan (%s)", mode),
			Budget: budget,
		})
	}
	return 0
}

// formatPlanJSON formats a selected plan and its analysis as JSON
func formatPlanJSON(budget decimal.Decimal, mode models.PriorityMode, plan models.QuantityAssignment, analysis models.PlanAnalysis) string {
	output := map[string]interface{}{
		"budget":   budget,
		"mode":     mode,
		"plan":     plan,
		"analysis": analysis,
	}

	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
