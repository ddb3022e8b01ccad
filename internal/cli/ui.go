package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/galaxy/pkg/geometry"
	"github.com/matzehuels/galaxy/pkg/tooltip"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - keys, addresses
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorGold   = lipgloss.Color("221") // Star gold - the spotlight
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - labels, status bar
	colorDim    = lipgloss.Color("240") // Dim gray - muted text, borders
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	// StyleSpotlight for the spotlighted profile.
	StyleSpotlight = lipgloss.NewStyle().Foreground(colorGold).Bold(true)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorGold)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	styleLabel   = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleKey     = lipgloss.NewStyle().Foreground(colorCyan)
	styleStatus  = lipgloss.NewStyle().Foreground(colorGray)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconStar    = "★"
	iconTile    = "█"
)

// sideIcons point from the tooltip toward its tile.
var sideIcons = map[tooltip.Side]string{
	tooltip.SideTop:    "▼",
	tooltip.SideBottom: "▲",
	tooltip.SideLeft:   "▶",
	tooltip.SideRight:  "◀",
	tooltip.SideCenter: "◆",
}

// sideLabel renders a tooltip side with its arrow, or "-" without a
// tooltip.
func sideLabel(p *tooltip.Placement) string {
	if p == nil {
		return "-"
	}
	return sideIcons[p.Side] + " " + string(p.Side)
}

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printSpotlight prints one spotlight as it happens.
func printSpotlight(name, location string, at geometry.Point) {
	fmt.Println("  " + StyleSpotlight.Render(iconStar+" "+name) + " " +
		StyleDim.Render(fmt.Sprintf("%s · %.0f,%.0f", location, at.X, at.Y)))
}

// =============================================================================
// Key-Value Output
// =============================================================================

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	fmt.Println(styleLabel.Render(key) + " " + StyleValue.Render(value))
}

// tileSwatch draws a row of tiles scaled to the tile size, capped at width
// glyphs, e.g. "█ █ █ 600px".
func tileSwatch(tile float64, columns, width int) string {
	n := min(max(columns, 1), width)
	return StyleValue.Render(strings.TrimSpace(strings.Repeat(iconTile+" ", n))) +
		" " + StyleDim.Render(fmt.Sprintf("%gpx", tile))
}

// =============================================================================
// Key Hints & Next Steps
// =============================================================================

// keyHints renders "key action" pairs for a status bar.
func keyHints(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, styleKey.Render(pairs[i])+" "+pairs[i+1])
	}
	return strings.Join(parts, " ")
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// printNewline prints an empty line.
func printNewline() {
	fmt.Println()
}
