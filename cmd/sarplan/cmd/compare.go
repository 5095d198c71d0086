// ABOUTME: Compare command for sarplan CLI
// ABOUTME: Evaluates plans across budgets concurrently and expands one in detail

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rescueops/sar-equipment-planner/cache"
	"github.com/rescueops/sar-equipment-planner/config"
	"github.com/rescueops/sar-equipment-planner/models"
	"github.com/rescueops/sar-equipment-planner/report"
	"github.com/rescueops/sar-equipment-planner/services"
)

var (
	compareBudgets []float64
	compareMode    string
	compareDetail  float64
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare procurement plans across budgets",
	Long: `Select and analyze a procurement plan for each budget, render a comparison
table, then expand one budget into a full report.

Budgets are evaluated concurrently. Solved plans pass through a TTL cache so
the detail report reuses the comparison solve.

Exit codes:
  0 - Comparison rendered
  2 - Error (invalid input, catalog failure)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runCompare(ctx, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().Float64SliceVar(&compareBudgets, "budgets", []float64{80000, 200000, 500000}, "Budgets to compare")
	compareCmd.Flags().StringVar(&compareMode, "mode", "balanced", "Optimization priority: cost, efficiency, or balanced")
	compareCmd.Flags().Float64Var(&compareDetail, "detail", 0, "Budget to expand into a full report (default: middle budget)")
}

// runCompare evaluates every budget, writes the comparison, returns exit code
func runCompare(ctx context.Context, w io.Writer) int {
	mode, err := models.ParsePriorityMode(compareMode)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if len(compareBudgets) == 0 {
		fmt.Fprintln(w, "Error: --budgets must not be empty")
		return 2
	}
	for _, b := range compareBudgets {
		if b <= 0 {
			fmt.Fprintln(w, "Error: budgets must be positive")
			return 2
		}
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

	opt := newOptimizer(cfg, cat)
	analyzer := services.NewPlanAnalyzer(cat)

	var planCache *cache.PlanCache
	if cfg.CacheEnabled {
		planCache = cache.New(time.Duration(cfg.CacheTTLSeconds) * time.Second)
	}

	selectPlan := func(ctx context.Context, budget decimal.Decimal) models.QuantityAssignment {
		if planCache != nil {
			if plan, ok := planCache.Get(budget, mode); ok {
				return plan
			}
		}
		plan := opt.SelectPlan(ctx, budget, mode)
		if planCache != nil {
			planCache.Set(budget, mode, plan)
		}
		return plan
	}

	rows := make([]report.ComparisonRow, len(compareBudgets))
	g, gctx := errgroup.WithContext(ctx)
	for i, b := range compareBudgets {
		i, b := i, b
		g.Go(func() error {
			budget := decimal.NewFromFloat(b)
			plan := selectPlan(gctx, budget)

			analysis, err := analyzer.Analyze(plan, services.DefaultProjectionYears)
			if err != nil {
				return err
			}

			rows[i] = report.ComparisonRow{Budget: budget, Plan: plan, Analysis: analysis}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	detail := decimal.NewFromFloat(detailBudget(compareBudgets, compareDetail))
	detailPlan := selectPlan(ctx, detail)
	detailAnalysis, err := analyzer.Analyze(detailPlan, services.DefaultProjectionYears)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatCompareJSON(mode, rows, detail, detailAnalysis))
		return 0
	}

	report.RenderComparison(w, rows)
	fmt.Fprintln(w)
	report.Render(w, detailAnalysis, report.Options{
		Title:  fmt.Sprintf("Detailed Plan (%s)", mode),
		Budget: detail,
	})
	return 0
}

// detailBudget picks the budget to expand: the flag value, or the middle budget
func detailBudget(budgets []float64, flag float64) float64 {
	if flag > 0 {
		return flag
	}
	return budgets[len(budgets)/2]
}

// formatCompareJSON formats the comparison results as JSON
func formatCompareJSON(mode models.PriorityMode, rows []report.ComparisonRow, detailBudget decimal.Decimal, detail models.PlanAnalysis) string {
	results := make([]map[string]interface{}, len(rows))
	for i, row := range rows {
		results[i] = map[string]interface{}{
			"budget":   row.Budget,
			"plan":     row.Plan,
			"analysis": row.Analysis,
		}
	}

	output := map[string]interface{}{
		"mode":          mode,
		"results":       results,
		"detail_budget": detailBudget,
		"detail":        detail,
	}

	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
