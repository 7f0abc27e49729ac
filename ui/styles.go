package ui

import (
	"github.com/charmbracelet/lipgloss"

	"payments-charts/dataset"
	"payments-charts/layout"
)

// Brand colours, adapted for light and dark terminals.
var (
	// Primary is the accent colour
	Primary = lipgloss.AdaptiveColor{Light: dataset.ColorSecondary, Dark: dataset.ColorPrimary}

	// Border is the default border colour
	Border = lipgloss.AdaptiveColor{Light: dataset.ColorBorder, Dark: "#3C3C3C"}

	// TextPrimary is the main text colour
	TextPrimary = lipgloss.AdaptiveColor{Light: dataset.ColorForeground, Dark: "#dddddd"}

	// TextMuted is for hints and subtle text
	TextMuted = lipgloss.AdaptiveColor{Light: dataset.ColorMutedForeground, Dark: "#9CA3AF"}

	// Warning marks omitted labels
	Warning = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}
)

// breakpointColors gives each band its own badge colour.
var breakpointColors = map[layout.Breakpoint]lipgloss.Color{
	layout.SmallMobile: lipgloss.Color("#ef4444"),
	layout.Mobile:      lipgloss.Color("#f59e0b"),
	layout.Tablet:      lipgloss.Color("#38bdf8"),
	layout.Desktop:     lipgloss.Color(dataset.ColorTertiary),
}

// TextStyles contains pre-built styles for text elements
var TextStyles = struct {
	Title   lipgloss.Style
	Primary lipgloss.Style
	Muted   lipgloss.Style
	Warning lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(Primary),
	Primary: lipgloss.NewStyle().Foreground(TextPrimary),
	Muted:   lipgloss.NewStyle().Foreground(TextMuted),
	Warning: lipgloss.NewStyle().Foreground(Warning),
}

// BadgeStyle creates a styled badge with the given colour
func BadgeStyle(color lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(color).
		Padding(0, 1)
}

// BreakpointBadge renders the name of a breakpoint as a badge.
func BreakpointBadge(bp layout.Breakpoint) string {
	return BadgeStyle(breakpointColors[bp]).Render(bp.String())
}

// SwatchStyle colours a legend swatch.
func SwatchStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// CardStyle creates a style for the preview panel
func CardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
}
