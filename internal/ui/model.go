package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/spin/internal/logger"
	"github.com/rileyhilliard/spin/internal/selection"
	"github.com/rileyhilliard/spin/internal/wheel"
)

// Default animation settings used when Options leaves them zero.
const (
	DefaultSpinDuration = 4 * time.Second
	DefaultMinTurns     = 3
	nameCharLimit       = 64
)

// Options configures the picker.
type Options struct {
	Palette      []string
	SpinDuration time.Duration
	MinTurns     int
	Logger       logger.Logger
}

// spinTickMsg advances the highlight one sector for the spin with ID.
type spinTickMsg struct {
	id string
}

// spinFinishedMsg is the one-shot "spin finished" event. It carries the
// handle so the model can complete exactly that spin.
type spinFinishedMsg struct {
	spin *selection.Spin
}

// Model is the Bubble Tea spinner view for a wheel of names.
type Model struct {
	wheel   *wheel.Wheel
	input   textinput.Model
	help    help.Model
	palette []lipgloss.Color
	log     logger.Logger

	focus    Focus
	selected int // contestant cursor
	showHelp bool
	quitting bool
	width    int
	height   int
	flash    string
	now      func() time.Time

	// Animation state for the in-flight spin.
	spin      *selection.Spin
	highlight int
	steps     []time.Duration
	step      int
	duration  time.Duration
	minTurns  int
}

// NewModel creates a picker bound to w.
func NewModel(w *wheel.Wheel, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter a name"
	ti.Prompt = SymbolCursor + " "
	ti.CharLimit = nameCharLimit
	ti.Focus()

	duration := opts.SpinDuration
	if duration <= 0 {
		duration = DefaultSpinDuration
	}
	minTurns := opts.MinTurns
	if minTurns <= 0 {
		minTurns = DefaultMinTurns
	}

	return Model{
		wheel:    w,
		input:    ti,
		help:     help.New(),
		palette:  Palette(opts.Palette),
		log:      logger.OrDefault(opts.Logger),
		focus:    FocusInput,
		now:      time.Now,
		duration: duration,
		minTurns: minTurns,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}
		if m.focus == FocusInput {
			var inputCmd tea.Cmd
			m.input, inputCmd = m.input.Update(msg)
			return m, inputCmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case spinTickMsg:
		return m, m.advance(msg)

	case spinFinishedMsg:
		m.finish(msg.spin)
		return m, nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// HandleKeyMsg processes keyboard input. Returns true if the key was handled.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	inList := m.focus == FocusList

	switch {
	case key.Matches(msg, keys.Quit), inList && key.Matches(msg, keys.QuitList):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, keys.ToggleHelp) && (inList || msg.String() == "f1"):
		m.showHelp = !m.showHelp
		return true, nil

	case key.Matches(msg, keys.SwitchPane):
		m.toggleFocus()
		return true, nil

	case key.Matches(msg, keys.Spin), inList && key.Matches(msg, keys.SpinList):
		return true, m.startSpin()

	case key.Matches(msg, keys.Remove), inList && key.Matches(msg, keys.RemoveList):
		m.removeSelected()
		return true, nil

	case !inList && key.Matches(msg, keys.Add):
		m.addFromInput()
		return true, nil

	case inList && key.Matches(msg, keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return true, nil

	case inList && key.Matches(msg, keys.Down):
		if m.selected < m.wheel.Len()-1 {
			m.selected++
		}
		return true, nil
	}

	return false, nil
}

func (m *Model) toggleFocus() {
	if m.focus == FocusInput {
		m.focus = FocusList
		m.input.Blur()
		return
	}
	m.focus = FocusInput
	m.input.Focus()
}

// addFromInput adds the typed name and clears the input on success.
func (m *Model) addFromInput() {
	raw := m.input.Value()
	if m.wheel.AddName(raw) {
		m.input.SetValue("")
		m.flash = ""
		return
	}
	if name := strings.TrimSpace(raw); name != "" {
		m.flash = fmt.Sprintf("%s is already on the wheel", name)
	}
}

// removeSelected removes the contestant under the cursor.
func (m *Model) removeSelected() {
	names := m.wheel.Names()
	if m.selected < 0 || m.selected >= len(names) {
		return
	}
	name := names[m.selected]
	if !m.wheel.RemoveName(name) {
		return
	}
	if m.selected >= m.wheel.Len() && m.selected > 0 {
		m.selected--
	}
	m.flash = ""
	if n := m.wheel.Len(); n > 0 {
		m.highlight %= n
	} else {
		m.highlight = 0
	}
}

// startSpin asks the wheel for a spin and plans the animation toward its
// committed target.
func (m *Model) startSpin() tea.Cmd {
	spin, err := m.wheel.Spin()
	if err != nil {
		m.flash = spinRejection(err)
		m.log.Debug("spin rejected in view: %v", err)
		return nil
	}

	m.spin = spin
	m.steps = PlanSpin(m.highlight, spin.Target, spin.Entries, m.minTurns, m.duration)
	m.step = 0
	m.flash = ""
	return m.tickCmd(spin.ID, m.steps[0])
}

// advance moves the highlight one sector. After the last planned step it
// emits the finished event for the spin.
func (m *Model) advance(msg spinTickMsg) tea.Cmd {
	if m.spin == nil || msg.id != m.spin.ID {
		return nil
	}

	if n := m.wheel.Len(); n > 0 {
		m.highlight = (m.highlight + 1) % n
	}
	m.step++

	if m.step >= len(m.steps) {
		spin := m.spin
		return func() tea.Msg { return spinFinishedMsg{spin: spin} }
	}
	return m.tickCmd(msg.id, m.steps[m.step])
}

// finish delivers the completion to the wheel. Repeat deliveries are
// dropped by the spin handle itself.
func (m *Model) finish(spin *selection.Spin) {
	_, ok := m.wheel.Finish(spin)
	if !ok {
		return
	}
	if m.spin == spin {
		m.spin = nil
		m.steps = nil
		m.step = 0
	}
	if spin.Target < m.wheel.Len() {
		m.highlight = spin.Target
	}
	if !m.wheel.HasWinner() {
		m.flash = "The wheel changed mid-spin, so there's no winner. Spin again!"
	}
}

func (m Model) tickCmd(id string, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return spinTickMsg{id: id}
	})
}

// Winner returns the wheel's declared winner.
func (m Model) Winner() string {
	return m.wheel.Winner()
}

// HasWinner reports whether the wheel has a declared winner.
func (m Model) HasWinner() bool {
	return m.wheel.HasWinner()
}

// Focus returns which pane has focus.
func (m Model) Focus() Focus {
	return m.focus
}

// Highlight returns the sector under the pointer.
func (m Model) Highlight() int {
	return m.highlight
}

func spinRejection(err error) string {
	switch {
	case errors.Is(err, selection.ErrAlreadySpinning):
		return "Hang on, the wheel is still spinning"
	case errors.Is(err, selection.ErrNotEnoughEntries):
		return fmt.Sprintf("Add at least %d names to spin", selection.MinEntries)
	default:
		return err.Error()
	}
}
