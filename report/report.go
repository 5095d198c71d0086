// ABOUTME: Plan report rendering with aligned tables and cost bar charts
// ABOUTME: One-shot terminal output for analyzed procurement plans

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rescueops/sar-equipment-planner/models"
)

// Options controls report content
type Options struct {
	Title    string          // header line, defaults to "Equipment Procurement Plan"
	Budget   decimal.Decimal // positive enables the budget and warnings sections
	BarWidth int             // chart bar width, defaults to 30
}

const defaultBarWidth = 30

// Render writes the full plan report to w
func Render(w io.Writer, analysis models.PlanAnalysis, opts Options) {
	fmt.Fprint(w, Report(analysis, opts))
}

// Report builds the full plan report as a string
func Report(analysis models.PlanAnalysis, opts Options) string {
	title := opts.Title
	if title == "" {
		title = "Equipment Procurement Plan"
	}
	barWidth := opts.BarWidth
	if barWidth <= 0 {
		barWidth = defaultBarWidth
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d items, %d-year projection",
		len(analysis.Items), analysis.ProjectionYears)) + "\n\n")

	writeCostTable(&b, analysis)
	writeEfficiency(&b, analysis.Efficiency)

	if len(analysis.Items) > 0 {
		writeItemBars(&b, analysis.Items, barWidth)
		writeComposition(&b, analysis, barWidth)
	}

	if opts.Budget.IsPositive() {
		writeBudget(&b, analysis, opts.Budget)
		writeWarnings(&b, analysis, opts.Budget)
	}

	return b.String()
}

func writeCostTable(b *strings.Builder, analysis models.PlanAnalysis) {
	b.WriteString(sectionStyle.Render("Annual Costs") + "\n")
	b.WriteString(fmt.Sprintf("%-22s %-15s %5s %16s\n", "Item", "Group", "Qty", "Annual Cost"))
	b.WriteString(fmt.Sprintf("%-22s %-15s %5s %16s\n",
		strings.Repeat("-", 22), strings.Repeat("-", 15), strings.Repeat("-", 5), strings.Repeat("-", 16)))

	for _, it := range analysis.Items {
		b.WriteString(fmt.Sprintf("%-22s %-15s %5d %16s\n",
			it.Name, it.Group, it.Quantity, formatMoney(it.Cost.Total)))
	}
	if len(analysis.Items) == 0 {
		b.WriteString(mutedStyle.Render("(no equipment selected)") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%-44s %16s\n", "Total annual cost", formatMoney(analysis.TotalAnnualCost)))
	b.WriteString(fmt.Sprintf("%-44s %16s\n",
		fmt.Sprintf("Projected cost (%d years)", analysis.ProjectionYears),
		formatMoney(analysis.TotalProjectedCost)))
}

func writeEfficiency(b *strings.Builder, m models.EfficiencyMetrics) {
	b.WriteString("\n" + sectionStyle.Render("Efficiency") + "\n")
	b.WriteString(fmt.Sprintf("%-22s %8s\n", "Efficiency score", m.EfficiencyScore.StringFixed(2)))
	b.WriteString(fmt.Sprintf("%-22s %8s\n", "Response improvement", m.ResponseImprovement.StringFixed(2)))
	b.WriteString(fmt.Sprintf("%-22s %8s\n", "Overall score", m.OverallScore.StringFixed(2)))
}

// writeItemBars charts each item's annual cost scaled to the largest item
func writeItemBars(b *strings.Builder, items []models.ItemCost, width int) {
	var max float64
	for _, it := range items {
		v, _ := it.Cost.Total.Float64()
		if v > max {
			max = v
		}
	}

	b.WriteString("\n" + sectionStyle.Render("Cost by Item") + "\n")
	for _, it := range items {
		v, _ := it.Cost.Total.Float64()
		b.WriteString(fmt.Sprintf("%-22s %s %16s\n",
			it.Name, ScaledBar(v, max, width, groupColor(it.Group)), formatMoney(it.Cost.Total)))
	}
}

// writeComposition charts how the annual total splits across cost components
func writeComposition(b *strings.Builder, analysis models.PlanAnalysis, width int) {
	var comp models.CostBreakdown
	for _, it := range analysis.Items {
		comp = comp.Add(it.Cost)
	}
	if !comp.Total.IsPositive() {
		return
	}

	rows := []struct {
		label string
		value decimal.Decimal
		color lipgloss.Color
	}{
		{"Acquisition", comp.Acquisition, colorPrimary},
		{"Maintenance", comp.Maintenance, colorWarning},
		{"Readiness", comp.Readiness, colorInfo},
		{"Usage", comp.Usage, colorSecondary},
	}

	var max float64
	for _, row := range rows {
		v, _ := row.value.Float64()
		if v > max {
			max = v
		}
	}

	b.WriteString("\n" + sectionStyle.Render("Cost Composition") + "\n")
	for _, row := range rows {
		v, _ := row.value.Float64()
		share, _ := row.value.Div(comp.Total).Mul(decimal.NewFromInt(100)).Float64()
		b.WriteString(fmt.Sprintf("%-22s %s %16s %5.1f%%\n",
			row.label, ScaledBar(v, max, width, row.color), formatMoney(row.value), share))
	}
}

func writeBudget(b *strings.Builder, analysis models.PlanAnalysis, budget decimal.Decimal) {
	pct := models.BudgetUtilizationPct(analysis, budget)
	level := StatusFromPercent(pct, 95, 100)

	b.WriteString("\n" + sectionStyle.Render("Budget") + "\n")
	b.WriteString(fmt.Sprintf("%s of %s\n",
		formatMoney(analysis.TotalAnnualCost), formatMoney(budget)))

	pctStyled := lipgloss.NewStyle().Foreground(statusColor(level)).Render(fmt.Sprintf("%5.1f%%", pct))
	b.WriteString(fmt.Sprintf("%s %s %s\n", ZonedBar(pct, DefaultBarConfig()), pctStyled, StatusBadge(level)))
}

func writeWarnings(b *strings.Builder, analysis models.PlanAnalysis, budget decimal.Decimal) {
	warnings := models.GeneratePlanWarnings(analysis, budget)
	if len(warnings) == 0 {
		return
	}

	b.WriteString("\n" + sectionStyle.Render("Warnings") + "\n")
	for _, wrn := range warnings {
		level := StatusWarning
		if wrn.Severity == "critical" {
			level = StatusCritical
		}
		b.WriteString(fmt.Sprintf("%s %s\n", StatusBadge(level), wrn.Message))
	}
}

// ComparisonRow is one budget's outcome for the comparison table
type ComparisonRow struct {
	Budget   decimal.Decimal
	Plan     models.QuantityAssignment
	Analysis models.PlanAnalysis
}

// RenderComparison writes the budget comparison table to w
func RenderComparison(w io.Writer, rows []ComparisonRow) {
	fmt.Fprint(w, Comparison(rows))
}

// Comparison builds the budget comparison table as a string
func Comparison(rows []ComparisonRow) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Budget Comparison") + "\n\n")
	b.WriteString(fmt.Sprintf("%-14s %6s %16s %11s %8s\n",
		"Budget", "Units", "Annual Cost", "Utilization", "Score"))
	b.WriteString(fmt.Sprintf("%-14s %6s %16s %11s %8s\n",
		strings.Repeat("-", 14), strings.Repeat("-", 6), strings.Repeat("-", 16),
		strings.Repeat("-", 11), strings.Repeat("-", 8)))

	for _, row := range rows {
		pct := models.BudgetUtilizationPct(row.Analysis, row.Budget)
		level := StatusFromPercent(pct, 95, 100)
		pctStyled := lipgloss.NewStyle().Foreground(statusColor(level)).Render(fmt.Sprintf("%10.1f%%", pct))

		b.WriteString(fmt.Sprintf("%-14s %6d %16s %s %8s\n",
			formatMoney(row.Budget),
			row.Plan.TotalUnits(),
			formatMoney(row.Analysis.TotalAnnualCost),
			pctStyled,
			row.Analysis.Efficiency.OverallScore.StringFixed(2)))
	}

	return b.String()
}

// RenderCatalog writes the equipment catalog table to w
func RenderCatalog(w io.Writer, items []models.EquipmentItem) {
	fmt.Fprint(w, CatalogTable(items))
}

// CatalogTable builds the equipment catalog table as a string
func CatalogTable(items []models.EquipmentItem) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Equipment Catalog") + "\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d items", len(items))) + "\n\n")

	b.WriteString(fmt.Sprintf("%-15s %-22s %-15s %14s %9s %4s %4s\n",
		"Key", "Name", "Group", "Unit Cost", "Lifespan", "Min", "Max"))
	b.WriteString(fmt.Sprintf("%-15s %-22s %-15s %14s %9s %4s %4s\n",
		strings.Repeat("-", 15), strings.Repeat("-", 22), strings.Repeat("-", 15),
		strings.Repeat("-", 14), strings.Repeat("-", 9), strings.Repeat("-", 4), strings.Repeat("-", 4)))

	for _, it := range items {
		b.WriteString(fmt.Sprintf("%-15s %-22s %-15s %14s %9s %4d %4d\n",
			it.Key, it.Name, it.Group,
			formatMoney(it.AcquisitionCost),
			fmt.Sprintf("%d yr", it.LifespanYears),
			it.QuantityMin, it.QuantityMax))
	}

	return b.String()
}

func groupColor(g models.EquipmentGroup) lipgloss.Color {
	if g == models.GroupControlCenter {
		return colorInfo
	}
	return colorSecondary
}

// formatMoney renders a decimal as dollars with thousands separators
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]

	var b strings.Builder
	for i := 0; i < len(whole); i++ {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(whole[i])
	}

	out := "$" + b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}
