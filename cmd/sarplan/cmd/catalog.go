// ABOUTME: Catalog command for sarplan CLI
// ABOUTME: Lists the active equipment catalog

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rescueops/sar-equipment-planner/config"
	"github.com/rescueops/sar-equipment-planner/models"
	"github.com/rescueops/sar-equipment-planner/report"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the active equipment catalog",
	Long: `List the equipment catalog the planner is using: the built-in catalog, or
the YAML catalog named by --catalog or SARPLAN_CATALOG.

Exit codes:
  0 - Catalog listed
  2 - Error (catalog failure)`,
	Run: func(cmd *cobra.Command, args []string) {
		if code := runCatalog(os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

// runCatalog writes the active catalog listing, returns exit code
func runCatalog(w io.Writer) int {
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

	if IsJSONOutput() {
		fmt.Fprintln(w, formatCatalogJSON(cat.Items()))
		return 0
	}

	report.RenderCatalog(w, cat.Items())
	return 0
}

// formatCatalogJSON formats catalog items as JSON
func formatCatalogJSON(items []models.EquipmentItem) string {
	output := map[string]interface{}{
		"items": items,
	}

	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
