package selection

import (
	"time"

	"github.com/google/uuid"
)

func newSpinID() string {
	return uuid.NewString()
}

// Spin is the completion handle for one accepted spin request. It fires at
// most once: the first Complete call finishes the spin, later calls are
// ignored.
type Spin struct {
	ID        string
	Target    int
	Entries   int // roster length when the target was drawn
	StartedAt time.Time

	ctrl *Controller
	done bool
}

// Complete delivers the "spin finished" event. It returns the declared
// winner and true the first time it is called on the active spin. Any other
// call returns NoWinner and false without touching the controller.
func (s *Spin) Complete(r Roster) (string, bool) {
	if s == nil || s.done || s.ctrl == nil || s.ctrl.active != s {
		return NoWinner, false
	}
	s.done = true
	return s.ctrl.finish(s, r), true
}

// Done reports whether Complete has already fired.
func (s *Spin) Done() bool {
	return s.done
}

// Result records one finished spin.
type Result struct {
	SpinID     string
	Winner     string
	Declared   bool // false when the target fell outside the roster
	Index      int
	StartedAt  time.Time
	FinishedAt time.Time
}

// HasWinner reports whether the spin produced a winner.
func (r Result) HasWinner() bool {
	return r.Declared
}

// Duration is how long the spin ran.
func (r Result) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
