// ABOUTME: Shared lipgloss styles for report rendering
// ABOUTME: Defines the color palette and text styles used across sections

package report

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - Core palette
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSecondary = lipgloss.Color("#10B981") // Green
	colorWarning   = lipgloss.Color("#F59E0B") // Amber
	colorDanger    = lipgloss.Color("#EF4444") // Red
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorInfo      = lipgloss.Color("#3B82F6") // Blue
	colorSurface   = lipgloss.Color("#374151") // Dark gray

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSecondary)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)
