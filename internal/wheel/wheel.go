// Package wheel is the single state record behind a wheel of names. It owns
// the roster and the selection controller, applies the rule that any roster
// change voids the previous result, and derives the view-model a spinner
// view renders.
package wheel

import (
	"strings"

	"github.com/rileyhilliard/spin/internal/logger"
	"github.com/rileyhilliard/spin/internal/roster"
	"github.com/rileyhilliard/spin/internal/selection"
)

// Options configures a Wheel.
type Options struct {
	Names       []string
	Source      selection.Source
	Logger      logger.Logger
	PaletteSize int
	LabelMax    int
}

// Wheel combines the roster and the spin state machine.
type Wheel struct {
	names *roster.Roster
	ctrl  *selection.Controller
	log   logger.Logger

	paletteSize int
	labelMax    int
}

// New creates a wheel preloaded with opts.Names.
func New(opts Options) *Wheel {
	log := logger.OrDefault(opts.Logger)
	w := &Wheel{
		names:       roster.New(opts.Names...),
		ctrl:        selection.New(selection.WithSource(opts.Source), selection.WithLogger(log)),
		log:         log,
		paletteSize: opts.PaletteSize,
		labelMax:    opts.LabelMax,
	}
	if w.paletteSize <= 0 {
		w.paletteSize = DefaultPaletteSize
	}
	if w.labelMax <= 0 {
		w.labelMax = DefaultLabelMax
	}
	return w
}

// AddName adds a trimmed, unique name. A successful add voids the winner.
func (w *Wheel) AddName(raw string) bool {
	if !w.names.Add(raw) {
		w.log.Debug("add rejected: %q", raw)
		return false
	}
	w.ctrl.ClearWinner()
	w.log.Debug("added %q (%d names)", strings.TrimSpace(raw), w.names.Len())
	return true
}

// RemoveName removes name. A successful remove voids the winner even while
// a spin is running.
func (w *Wheel) RemoveName(name string) bool {
	if !w.names.Remove(name) {
		w.log.Debug("remove missed: %q", name)
		return false
	}
	w.ctrl.ClearWinner()
	if w.ctrl.Spinning() {
		w.log.Warn("removed %q while spinning toward index %d", name, w.ctrl.TargetIndex())
	} else {
		w.log.Debug("removed %q (%d names)", name, w.names.Len())
	}
	return true
}

// Names returns a snapshot of the roster.
func (w *Wheel) Names() []string {
	return w.names.List()
}

// Len returns the number of names.
func (w *Wheel) Len() int {
	return w.names.Len()
}

// Spinnable reports whether Spin would be accepted right now.
func (w *Wheel) Spinnable() bool {
	return w.ctrl.IsSpinnable(w.names)
}

// Spin starts a spin. The returned handle goes to the spinner view and must
// be passed back to Finish once the animation stops.
func (w *Wheel) Spin() (*selection.Spin, error) {
	return w.ctrl.RequestSpin(w.names)
}

// Finish delivers the completion event for spin. It reports false when spin
// was already finished or is not the active spin.
func (w *Wheel) Finish(spin *selection.Spin) (string, bool) {
	return spin.Complete(w.names)
}

// Winner returns the declared winner or selection.NoWinner.
func (w *Wheel) Winner() string {
	return w.ctrl.CurrentWinner()
}

// HasWinner reports whether a winner is declared.
func (w *Wheel) HasWinner() bool {
	return w.ctrl.HasWinner()
}

// Spinning reports whether a spin is in progress.
func (w *Wheel) Spinning() bool {
	return w.ctrl.Spinning()
}

// Active returns the in-flight spin handle, or nil.
func (w *Wheel) Active() *selection.Spin {
	return w.ctrl.Active()
}

// History returns the spins finished during this session.
func (w *Wheel) History() []selection.Result {
	return w.ctrl.History()
}

