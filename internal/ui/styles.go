package ui

import "github.com/charmbracelet/lipgloss"

// drumRows is how many sectors of the wheel are visible at once.
const drumRows = 5

// wideLayout is the terminal width at which the wheel sits beside the list.
const wideLayout = 72

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			MarginBottom(1)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	inputBoxFocusedStyle = inputBoxStyle.
				BorderForeground(ColorAccent)

	addButtonStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Background(ColorAccent).
			Bold(true).
			Padding(0, 2)

	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(ColorBorder).
				MarginTop(1)

	contestantStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	contestantSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Background(ColorSurface).
				Bold(true)

	removeMarkStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	sectorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Align(lipgloss.Center)

	placeholderSectorStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Background(ColorSurface).
				Align(lipgloss.Center)

	pointerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	spinButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#121212")).
			Background(ColorPrimary).
			Bold(true).
			Padding(0, 3).
			MarginTop(1)

	spinButtonDisabledStyle = spinButtonStyle.
				Foreground(ColorMuted).
				Background(ColorSurface)

	winnerLeadStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			MarginTop(1)

	winnerNameStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	flashStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	historyStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	panelStyle = lipgloss.NewStyle().
			Padding(0, 2)

	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(1, 2)
)

// sectorColor returns the palette colour for a sector.
func sectorColor(palette []lipgloss.Color, colorIndex int) lipgloss.Color {
	if len(palette) == 0 {
		return ColorSurface
	}
	return palette[colorIndex%len(palette)]
}
