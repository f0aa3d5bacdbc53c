package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// SpinnerState represents the current state of a spinner.
type SpinnerState int

const (
	SpinnerPending SpinnerState = iota
	SpinnerInProgress
	SpinnerSuccess
	SpinnerFailed
)

// Spinner animation frames - half-circle rotation
var spinnerFrames = []string{"◐", "◓", "◑", "◒"}

// spinnerInterval is the frame rate of the line spinner.
const spinnerInterval = 80 * time.Millisecond

// Spinner is the line-mode spinner view used by 'spin pick'. While running it
// flicks through the wheel's labels next to a rotating glyph; Success or
// Fail replaces the line with the final result.
type Spinner struct {
	mu           sync.Mutex
	label        string
	cycle        []string
	colors       []lipgloss.Color
	state        SpinnerState
	frame        int
	startTime    time.Time
	stopChan     chan struct{}
	doneChan     chan struct{}
	output       func(string)
	running      bool
	lastRendered string
}

// NewSpinner creates a new spinner with the given label.
// Output defaults to fmt.Print; use SetOutput to customize.
func NewSpinner(label string) *Spinner {
	return &Spinner{
		label:  label,
		state:  SpinnerPending,
		colors: GradientColors,
		output: func(s string) { fmt.Print(s) },
	}
}

// SetOutput sets the output function for the spinner.
func (s *Spinner) SetOutput(fn func(string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.output = fn
}

// SetCycle sets the labels flicked through while spinning, and the colours
// used for each position.
func (s *Spinner) SetCycle(labels []string, colors []lipgloss.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cycle = labels
	if len(colors) > 0 {
		s.colors = colors
	}
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.state = SpinnerInProgress
	s.startTime = time.Now()
	s.stopChan = make(chan struct{})
	s.doneChan = make(chan struct{})
	s.mu.Unlock()

	s.render()

	go s.animate()
}

// Stop halts the spinner animation without changing state.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopChan)
	s.mu.Unlock()

	<-s.doneChan
}

// Success stops the spinner and prints the final label as a success.
func (s *Spinner) Success(label string) {
	s.finish(SpinnerSuccess, label)
}

// Fail stops the spinner and prints the final label as a failure.
func (s *Spinner) Fail(label string) {
	s.finish(SpinnerFailed, label)
}

func (s *Spinner) finish(state SpinnerState, label string) {
	s.Stop()
	s.mu.Lock()
	s.state = state
	if label != "" {
		s.label = label
	}
	s.mu.Unlock()
	s.renderFinal()
}

// State returns the current spinner state.
func (s *Spinner) State() SpinnerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Elapsed returns the time since the spinner started.
func (s *Spinner) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.startTime.IsZero() {
		return 0
	}
	return time.Since(s.startTime)
}

// Label returns the spinner's label.
func (s *Spinner) Label() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.label
}

func (s *Spinner) animate() {
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()
	defer close(s.doneChan)

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.frame++
			s.mu.Unlock()
			s.render()
		}
	}
}

func (s *Spinner) render() {
	s.mu.Lock()
	defer s.mu.Unlock()

	symbol := spinnerFrames[s.frame%len(spinnerFrames)]
	color := s.colors[s.frame%len(s.colors)]
	style := lipgloss.NewStyle().Foreground(color)

	line := fmt.Sprintf("\r%s %s...", style.Render(symbol), s.label)
	if len(s.cycle) > 0 {
		current := s.cycle[s.frame%len(s.cycle)]
		line += " " + lipgloss.NewStyle().Foreground(color).Bold(true).Render(current)
	}

	s.clearLine()
	s.output(line)
	s.lastRendered = line
}

func (s *Spinner) renderFinal() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var symbol string
	var style lipgloss.Style

	switch s.state {
	case SpinnerSuccess:
		symbol = SymbolSuccess
		style = lipgloss.NewStyle().Foreground(ColorSuccess)
	case SpinnerFailed:
		symbol = SymbolFail
		style = lipgloss.NewStyle().Foreground(ColorError)
	default:
		symbol = SymbolPending
		style = lipgloss.NewStyle().Foreground(ColorMuted)
	}

	timing := formatDuration(time.Since(s.startTime))
	timingStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	s.clearLine()
	s.output(fmt.Sprintf("%s %s %s\n",
		style.Render(symbol),
		s.label,
		timingStyle.Render(timing),
	))
}

// clearLine blanks the previously rendered line. Caller holds mu.
func (s *Spinner) clearLine() {
	if s.lastRendered == "" {
		return
	}
	clearLen := lipgloss.Width(s.lastRendered)
	s.output("\r" + strings.Repeat(" ", clearLen) + "\r")
}

// formatDuration formats a duration for display (e.g., "0.3s", "1.2s").
func formatDuration(d time.Duration) string {
	secs := d.Seconds()
	if secs < 0.1 {
		return fmt.Sprintf("%.2fs", secs)
	}
	return fmt.Sprintf("%.1fs", secs)
}
