package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/spin/internal/logger"
	"github.com/rileyhilliard/spin/internal/selection"
	"github.com/rileyhilliard/spin/internal/wheel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, draws []int, names ...string) Model {
	t.Helper()
	w := wheel.New(wheel.Options{
		Names:  names,
		Source: selection.NewSequence(draws...),
		Logger: logger.Noop(),
	})
	return NewModel(w, Options{
		SpinDuration: 50 * time.Millisecond,
		MinTurns:     1,
		Logger:       logger.Noop(),
	})
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "f1":
		return tea.KeyMsg{Type: tea.KeyF1}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(m Model, s string) (Model, tea.Cmd) {
	updated, cmd := m.Update(keyPress(s))
	return updated.(Model), cmd
}

func typeName(m Model, name string) Model {
	m.input.SetValue(name)
	m, _ = press(m, "enter")
	return m
}

// runSpin feeds tick messages until the animation emits its finished event.
func runSpin(t *testing.T, m Model) (Model, spinFinishedMsg) {
	t.Helper()
	require.NotNil(t, m.spin, "expected a spin in flight")

	id := m.spin.ID
	var cmd tea.Cmd
	for range m.steps {
		var updated tea.Model
		updated, cmd = m.Update(spinTickMsg{id: id})
		m = updated.(Model)
	}
	require.NotNil(t, cmd)

	fin, ok := cmd().(spinFinishedMsg)
	require.True(t, ok, "last tick should emit spinFinishedMsg")
	return m, fin
}

func finish(m Model, fin spinFinishedMsg) Model {
	updated, _ := m.Update(fin)
	return updated.(Model)
}

func TestNewModel(t *testing.T) {
	m := newTestModel(t, nil)

	assert.Equal(t, FocusInput, m.Focus())
	assert.Equal(t, 0, m.Highlight())
	assert.Equal(t, selection.NoWinner, m.Winner())
	assert.Len(t, m.palette, len(GradientColors))
	assert.NotNil(t, m.Init())
}

func TestNewModel_Defaults(t *testing.T) {
	w := wheel.New(wheel.Options{Logger: logger.Noop()})
	m := NewModel(w, Options{})

	assert.Equal(t, DefaultSpinDuration, m.duration)
	assert.Equal(t, DefaultMinTurns, m.minTurns)
}

func TestFocus_String(t *testing.T) {
	tests := []struct {
		focus  Focus
		expect string
	}{
		{FocusInput, "input"},
		{FocusList, "list"},
		{Focus(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.focus.String())
		})
	}
}

func TestModel_AddName(t *testing.T) {
	m := newTestModel(t, nil)

	m = typeName(m, "  Alice ")
	assert.Equal(t, []string{"Alice"}, m.wheel.Names())
	assert.Empty(t, m.input.Value(), "input clears after a successful add")
	assert.Empty(t, m.flash)
}

func TestModel_AddDuplicateFlashes(t *testing.T) {
	m := newTestModel(t, nil, "Alice")

	m = typeName(m, "Alice")
	assert.Equal(t, []string{"Alice"}, m.wheel.Names())
	assert.Equal(t, "Alice", m.input.Value(), "input is kept so it can be edited")
	assert.Contains(t, m.flash, "already on the wheel")
}

func TestModel_AddBlankIsIgnored(t *testing.T) {
	m := newTestModel(t, nil)

	m = typeName(m, "   ")
	assert.Empty(t, m.wheel.Names())
	assert.Empty(t, m.flash)
}

func TestModel_TypingGoesToInput(t *testing.T) {
	m := newTestModel(t, nil)

	// List-only keys are plain text while the input has focus.
	for _, r := range "qsx" {
		m, _ = press(m, string(r))
	}
	assert.Equal(t, "qsx", m.input.Value())
	assert.False(t, m.quitting)
	assert.False(t, m.wheel.Spinning())
}

func TestModel_SwitchPane(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = press(m, "tab")
	assert.Equal(t, FocusList, m.Focus())

	m, _ = press(m, "tab")
	assert.Equal(t, FocusInput, m.Focus())
}

func TestModel_ListNavigation(t *testing.T) {
	m := newTestModel(t, nil, "Alice", "Bob", "Carol")
	m, _ = press(m, "tab")

	m, _ = press(m, "down")
	m, _ = press(m, "j")
	assert.Equal(t, 2, m.selected)

	m, _ = press(m, "down")
	assert.Equal(t, 2, m.selected, "cursor stops at the last name")

	m, _ = press(m, "up")
	m, _ = press(m, "k")
	m, _ = press(m, "up")
	assert.Equal(t, 0, m.selected)
}

func TestModel_RemoveSelected(t *testing.T) {
	m := newTestModel(t, nil, "Alice", "Bob", "Carol")
	m, _ = press(m, "tab")
	m, _ = press(m, "down")
	m, _ = press(m, "down")

	m, _ = press(m, "x")
	assert.Equal(t, []string{"Alice", "Bob"}, m.wheel.Names())
	assert.Equal(t, 1, m.selected, "cursor follows the shrinking list")

	m, _ = press(m, "ctrl+d")
	assert.Equal(t, []string{"Alice"}, m.wheel.Names())
	assert.Equal(t, 0, m.selected)
}

func TestModel_RemoveOnEmptyRoster(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = press(m, "ctrl+d")
	assert.Empty(t, m.wheel.Names())
}

func TestModel_SpinRejectedWithTooFewNames(t *testing.T) {
	tests := []struct {
		name  string
		names []string
	}{
		{"empty", nil},
		{"single", []string{"Alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, []int{0}, tt.names...)

			m, cmd := press(m, "ctrl+s")
			assert.Nil(t, cmd)
			assert.False(t, m.wheel.Spinning())
			assert.Contains(t, m.flash, "at least 2 names")
		})
	}
}

func TestModel_SpinLandsOnTarget(t *testing.T) {
	m := newTestModel(t, []int{2}, "Alice", "Bob", "Carol", "Dave")

	m, cmd := press(m, "ctrl+s")
	require.NotNil(t, cmd)
	require.True(t, m.wheel.Spinning())
	assert.Equal(t, 2, m.spin.Target)
	assert.Len(t, m.steps, StepsToTarget(0, 2, 4, 1))

	m, fin := runSpin(t, m)
	assert.Equal(t, 2, m.Highlight(), "highlight stops on the target before completion")
	assert.True(t, m.wheel.Spinning(), "still spinning until the finished event is handled")

	m = finish(m, fin)
	assert.False(t, m.wheel.Spinning())
	assert.Equal(t, "Carol", m.Winner())
	assert.Nil(t, m.spin)
	assert.Contains(t, m.View(), "The winner is")
}

func TestModel_SpinFromList(t *testing.T) {
	m := newTestModel(t, []int{1}, "Alice", "Bob")
	m, _ = press(m, "tab")

	m, cmd := press(m, " ")
	require.NotNil(t, cmd)
	assert.True(t, m.wheel.Spinning())
}

func TestModel_SecondSpinWhileSpinningIsRejected(t *testing.T) {
	m := newTestModel(t, []int{1, 0}, "Alice", "Bob")

	m, _ = press(m, "ctrl+s")
	first := m.spin

	m, cmd := press(m, "ctrl+s")
	assert.Nil(t, cmd)
	assert.Same(t, first, m.spin)
	assert.Contains(t, m.flash, "still spinning")
}

func TestModel_FinishedEventIsSingleFire(t *testing.T) {
	m := newTestModel(t, []int{1, 0}, "Alice", "Bob")

	m, _ = press(m, "ctrl+s")
	m, fin := runSpin(t, m)
	m = finish(m, fin)
	require.Equal(t, "Bob", m.Winner())
	require.Len(t, m.wheel.History(), 1)

	// A replayed event must not finish anything again.
	m = finish(m, fin)
	assert.Equal(t, "Bob", m.Winner())
	assert.Len(t, m.wheel.History(), 1)
}

func TestModel_StaleTicksAreIgnored(t *testing.T) {
	m := newTestModel(t, []int{1}, "Alice", "Bob")
	m, _ = press(m, "ctrl+s")

	updated, cmd := m.Update(spinTickMsg{id: "not-this-spin"})
	m = updated.(Model)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Highlight())
	assert.Equal(t, 0, m.step)
}

func TestModel_RemoveMidSpinYieldsNoWinner(t *testing.T) {
	m := newTestModel(t, []int{2}, "Alice", "Bob", "Carol")

	m, _ = press(m, "ctrl+s")
	require.Equal(t, 2, m.spin.Target)

	m, _ = press(m, "tab")
	m, _ = press(m, "down")
	m, _ = press(m, "down")
	m, _ = press(m, "x")
	require.Equal(t, []string{"Alice", "Bob"}, m.wheel.Names())

	m, fin := runSpin(t, m)
	m = finish(m, fin)

	assert.False(t, m.wheel.Spinning())
	assert.Equal(t, selection.NoWinner, m.Winner())
	assert.Contains(t, m.flash, "no winner")
	assert.NotContains(t, m.View(), "The winner is")
}

func TestModel_SentinelLookalikeShowsBanner(t *testing.T) {
	m := newTestModel(t, []int{0}, selection.NoWinner, "Bob")

	m, _ = press(m, "ctrl+s")
	m, fin := runSpin(t, m)
	m = finish(m, fin)

	assert.True(t, m.HasWinner())
	assert.Empty(t, m.flash)
	assert.Contains(t, m.View(), "The winner is")
}

func TestModel_AddClearsWinner(t *testing.T) {
	m := newTestModel(t, []int{0}, "Alice", "Bob")

	m, _ = press(m, "ctrl+s")
	m, fin := runSpin(t, m)
	m = finish(m, fin)
	require.Equal(t, "Alice", m.Winner())

	m = typeName(m, "Carol")
	assert.Equal(t, selection.NoWinner, m.Winner())
}

func TestModel_ToggleHelp(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = press(m, "?")
	assert.False(t, m.showHelp, "? is text while typing a name")
	assert.Equal(t, "?", m.input.Value())

	m, _ = press(m, "f1")
	assert.True(t, m.showHelp)

	m, _ = press(m, "tab")
	m, _ = press(m, "?")
	assert.False(t, m.showHelp)
}

func TestModel_Quit(t *testing.T) {
	tests := []struct {
		name  string
		list  bool
		key   string
		quits bool
	}{
		{"ctrl+c from input", false, "ctrl+c", true},
		{"esc from input", false, "esc", true},
		{"q from list", true, "q", true},
		{"q from input types", false, "q", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, nil)
			if tt.list {
				m, _ = press(m, "tab")
			}
			m, cmd := press(m, tt.key)
			assert.Equal(t, tt.quits, m.quitting)
			if tt.quits {
				require.NotNil(t, cmd)
				assert.Equal(t, tea.Quit(), cmd())
				assert.Empty(t, m.View())
			}
		})
	}
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(t, nil)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 100, m.help.Width)
}
