package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/spin/internal/wheel"
)

// historyShown is how many past spins are listed under the contestants.
const historyShown = 3

// View renders the picker.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	vm := m.wheel.View()

	left := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("🎯 Wheel of Names"),
		m.renderInput(),
		m.renderContestants(),
		m.renderHistory(),
	)
	right := lipgloss.JoinVertical(lipgloss.Center,
		m.renderDrum(vm),
		renderSpinButton(vm),
		renderWinner(vm),
	)

	var body string
	if m.width >= wideLayout {
		body = lipgloss.JoinHorizontal(lipgloss.Top, panelStyle.Render(left), panelStyle.Render(right))
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, panelStyle.Render(left), panelStyle.Render(right))
	}

	parts := []string{body}
	if m.flash != "" {
		parts = append(parts, panelStyle.Render(flashStyle.Render(m.flash)))
	}
	if m.showHelp {
		parts = append(parts, helpBoxStyle.Render(m.help.FullHelpView(keys.FullHelp())))
	} else {
		parts = append(parts, panelStyle.Render(m.help.ShortHelpView(keys.ShortHelp())))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderInput() string {
	box := inputBoxStyle
	if m.focus == FocusInput {
		box = inputBoxFocusedStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		box.Render(m.input.View()),
		" ",
		addButtonStyle.Render("Add"),
	)
}

func (m Model) renderContestants() string {
	names := m.wheel.Names()
	if len(names) == 0 {
		return ""
	}

	lines := []string{sectionHeaderStyle.Render(fmt.Sprintf("Contestants (%d)", len(names)))}
	for i, name := range names {
		marker := "  "
		style := contestantStyle
		if m.focus == FocusList && i == m.selected {
			marker = SymbolCursor + " "
			style = contestantSelectedStyle
		}
		lines = append(lines, marker+style.Render(name)+" "+removeMarkStyle.Render(SymbolRemove))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderHistory() string {
	results := m.wheel.History()
	if len(results) == 0 {
		return ""
	}

	lines := []string{sectionHeaderStyle.Render("Recent spins")}
	shown := 0
	for i := len(results) - 1; i >= 0 && shown < historyShown; i-- {
		r := results[i]
		symbol := SuccessStyle().Render(SymbolSuccess)
		if !r.HasWinner() {
			symbol = ErrorStyle().Render(SymbolFail)
		}
		when := humanize.RelTime(r.FinishedAt, m.now(), "ago", "from now")
		lines = append(lines, fmt.Sprintf("%s %s %s", symbol, r.Winner, historyStyle.Render(when)))
		shown++
	}
	return strings.Join(lines, "\n")
}

// renderDrum draws the wheel edge-on: the highlighted sector in the middle
// with its neighbours above and below, wrapping around the roster.
func (m Model) renderDrum(vm wheel.ViewModel) string {
	width := m.sectorWidth()

	if len(vm.Entries) == 1 && vm.Entries[0].Placeholder {
		sector := placeholderSectorStyle.Width(width).Render("·")
		return pointerRow(sector, true)
	}

	n := len(vm.Entries)
	rows := drumRows
	if n == 1 {
		rows = 1
	}
	half := rows / 2

	lines := make([]string, 0, rows)
	for offset := -half; offset <= half; offset++ {
		idx := ((m.highlight+offset)%n + n) % n
		entry := vm.Entries[idx]
		sector := sectorStyle.
			Width(width).
			Background(sectorColor(m.palette, entry.ColorIndex)).
			Render(entry.Label)
		lines = append(lines, pointerRow(sector, offset == 0))
	}
	return strings.Join(lines, "\n")
}

// sectorWidth fits the longest label plus padding.
func (m Model) sectorWidth() int {
	width := wheel.DefaultLabelMax + len(wheel.Ellipsis)
	for _, e := range m.wheel.View().Entries {
		if w := lipgloss.Width(e.Label); w > width {
			width = w
		}
	}
	return width + 4
}

func pointerRow(sector string, active bool) string {
	if active {
		return pointerStyle.Render(SymbolPointer) + " " + sector + " " + pointerStyle.Render(SymbolPointerR)
	}
	return "  " + sector + "  "
}

func renderSpinButton(vm wheel.ViewModel) string {
	switch {
	case vm.Spinning:
		return spinButtonDisabledStyle.Render("Spinning...")
	case vm.Spinnable:
		return spinButtonStyle.Render("SPIN!")
	default:
		return spinButtonDisabledStyle.Render("SPIN!")
	}
}

// renderWinner keeps its height when there is no winner so the layout
// doesn't jump when one is declared.
func renderWinner(vm wheel.ViewModel) string {
	if !vm.HasWinner() {
		return winnerLeadStyle.Render(" ") + "\n "
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		winnerLeadStyle.Render("The winner is"),
		winnerNameStyle.Render(vm.Winner),
	)
}
