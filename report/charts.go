// ABOUTME: Bar and badge widgets for one-shot plan reports
// ABOUTME: Threshold-zone utilization bars and value-scaled cost bars

package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusLevel represents the severity of a status
type StatusLevel int

const (
	StatusOK StatusLevel = iota
	StatusWarning
	StatusCritical
	StatusNeutral
)

// Badge colors
var (
	badgeOKBg      = lipgloss.Color("#10B981")
	badgeOKFg      = lipgloss.Color("#FFFFFF")
	badgeWarnBg    = lipgloss.Color("#F59E0B")
	badgeWarnFg    = lipgloss.Color("#000000")
	badgeCritBg    = lipgloss.Color("#EF4444")
	badgeCritFg    = lipgloss.Color("#FFFFFF")
	badgeNeutralBg = lipgloss.Color("#6B7280")
	badgeNeutralFg = lipgloss.Color("#FFFFFF")
)

// Badge renders a colored status badge
func Badge(text string, level StatusLevel) string {
	var bg, fg lipgloss.Color

	switch level {
	case StatusOK:
		bg, fg = badgeOKBg, badgeOKFg
	case StatusWarning:
		bg, fg = badgeWarnBg, badgeWarnFg
	case StatusCritical:
		bg, fg = badgeCritBg, badgeCritFg
	default:
		bg, fg = badgeNeutralBg, badgeNeutralFg
	}

	style := lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Padding(0, 1).
		Bold(true)

	return style.Render(text)
}

// StatusBadge renders a predefined status badge (OK, WARN, CRIT)
func StatusBadge(level StatusLevel) string {
	switch level {
	case StatusOK:
		return Badge("OK", StatusOK)
	case StatusWarning:
		return Badge("WARN", StatusWarning)
	case StatusCritical:
		return Badge("CRIT", StatusCritical)
	default:
		return Badge("--", StatusNeutral)
	}
}

// StatusFromPercent returns the appropriate status level for a percentage value
func StatusFromPercent(percent, warnThreshold, critThreshold float64) StatusLevel {
	if percent >= critThreshold {
		return StatusCritical
	}
	if percent >= warnThreshold {
		return StatusWarning
	}
	return StatusOK
}

// statusColor returns the foreground color for a status level
func statusColor(level StatusLevel) lipgloss.Color {
	switch level {
	case StatusOK:
		return badgeOKBg
	case StatusWarning:
		return badgeWarnBg
	case StatusCritical:
		return badgeCritBg
	default:
		return badgeNeutralBg
	}
}

// BarConfig holds configuration for the zoned utilization bar
type BarConfig struct {
	Width         int
	WarnThreshold float64 // Percentage where warning zone starts (default 80)
	CritThreshold float64 // Percentage where critical zone starts (default 95)
	OKColor       lipgloss.Color
	WarnColor     lipgloss.Color
	CritColor     lipgloss.Color
	EmptyColor    lipgloss.Color
	ShowZones     bool // Show threshold markers in the bar
}

// DefaultBarConfig returns sensible defaults
func DefaultBarConfig() BarConfig {
	return BarConfig{
		Width:         20,
		WarnThreshold: 80,
		CritThreshold: 95,
		OKColor:       colorSecondary,
		WarnColor:     colorWarning,
		CritColor:     colorDanger,
		EmptyColor:    colorSurface,
		ShowZones:     true,
	}
}

// ZonedBar renders a utilization bar with green/amber/red threshold zones
func ZonedBar(percent float64, config BarConfig) string {
	if config.Width <= 0 {
		config.Width = 20
	}

	// Clamp percent
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100.0 * float64(config.Width))
	if filled > config.Width {
		filled = config.Width
	}

	// Zone boundaries as positions in the bar
	warnPos := int(config.WarnThreshold / 100.0 * float64(config.Width))
	critPos := int(config.CritThreshold / 100.0 * float64(config.Width))

	var bar strings.Builder
	bar.WriteString("[")

	for i := 0; i < config.Width; i++ {
		var char string
		var color lipgloss.Color

		if i < filled {
			char = "█"
			if i >= critPos {
				color = config.CritColor
			} else if i >= warnPos {
				color = config.WarnColor
			} else {
				color = config.OKColor
			}
		} else {
			if config.ShowZones && (i == warnPos || i == critPos) {
				char = "│"
				color = config.EmptyColor
			} else {
				char = "░"
				color = config.EmptyColor
			}
		}

		bar.WriteString(lipgloss.NewStyle().Foreground(color).Render(char))
	}

	bar.WriteString("]")
	return bar.String()
}

// ScaledBar renders a bar sized by value relative to max
func ScaledBar(value, max float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		width = 20
	}
	if max <= 0 || value < 0 {
		value, max = 0, 1
	}
	if value > max {
		value = max
	}

	filled := int(value / max * float64(width))

	filledStyle := lipgloss.NewStyle().Foreground(color)
	emptyStyle := lipgloss.NewStyle().Foreground(colorSurface)

	return "[" + filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled)) + "]"
}
