// ABOUTME: Root command for sarplan CLI
// ABOUTME: Handles global flags and shared engine construction

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rescueops/sar-equipment-planner/catalog"
	"github.com/rescueops/sar-equipment-planner/config"
	"github.com/rescueops/sar-equipment-planner/services"
	"github.com/rescueops/sar-equipment-planner/solver"
)

var (
	catalogPath string
	jsonOutput  bool
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "sarplan",
	Short: "SAR equipment procurement planner",
	Long: `sarplan selects and analyzes search-and-rescue equipment procurement plans.

It optimizes equipment quantities under an annual budget, projects multi-year
costs, and renders plan reports for operations reviews.

Environment Variables:
  SARPLAN_CATALOG             Catalog YAML path (default: built-in catalog)
  SARPLAN_SOLVER_MAX_NODES    Branch-and-bound node limit (default: 10000)
  SARPLAN_SOLVER_TOL          Solver integrality tolerance (default: 1e-6)
  SARPLAN_CACHE_ENABLED       Enable the plan cache (default: true)
  SARPLAN_CACHE_TTL_SECONDS   Plan cache TTL (default: 300)
  LOG_LEVEL                   debug, info, warn, error (default: info)
  LOG_FORMAT                  json or text (default: text)`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Catalog YAML path (overrides SARPLAN_CATALOG)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// loadCatalog resolves the catalog from flag, env config, or built-in default
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	path := catalogPath
	if path == "" {
		path = cfg.CatalogPath
	}
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

// newOptimizer builds a configured solver and optimizer
func newOptimizer(cfg *config.Config, cat *catalog.Catalog) *services.PlanOptimizer {
	bb := solver.NewBranchBound()
	bb.MaxNodes = cfg.SolverMaxNodes
	bb.Tol = cfg.SolverTol
	return services.NewPlanOptimizer(cat, bb)
}
