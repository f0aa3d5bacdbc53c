package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "#8ac926" // Green
	ColorError   lipgloss.Color = "#ff595e" // Red
	ColorWarning lipgloss.Color = "#ffca3a" // Yellow
	ColorInfo    lipgloss.Color = "#1982c4" // Blue
)

// Surface and text colors, matching the dark card of the web wheel.
const (
	ColorBackground lipgloss.Color = "#1e1e1e"
	ColorSurface    lipgloss.Color = "#2a2a2a"
	ColorBorder     lipgloss.Color = "#333333"
	ColorPrimary    lipgloss.Color = "#ffffff"
	ColorSecondary  lipgloss.Color = "#b3b3b3"
	ColorMuted      lipgloss.Color = "#555555"
	ColorAccent     lipgloss.Color = "#0ea5e9" // Add button
)

// GradientColors is the frame cycle for the standalone spinner glyph.
var GradientColors = []lipgloss.Color{
	"#ff595e",
	"#ffca3a",
	"#8ac926",
	"#1982c4",
	"#6a4c93",
}

// Palette converts configured colour strings into lipgloss colours.
// An empty input yields the GradientColors cycle.
func Palette(colors []string) []lipgloss.Color {
	if len(colors) == 0 {
		out := make([]lipgloss.Color, len(GradientColors))
		copy(out, GradientColors)
		return out
	}
	out := make([]lipgloss.Color, len(colors))
	for i, c := range colors {
		out[i] = lipgloss.Color(c)
	}
	return out
}

// SetColorMode applies an output.color setting: "never" strips colour,
// "always" forces true colour even when piped, "auto" leaves detection to
// lipgloss.
func SetColorMode(mode string) {
	switch mode {
	case "never":
		DisableColors()
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

// DisableColors switches all rendering to monochrome (for --no-color).
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// SuccessStyle renders text in the success color.
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorSuccess)
}

// ErrorStyle renders text in the error color.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorError)
}

// MutedStyle renders secondary text.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorSecondary)
}
