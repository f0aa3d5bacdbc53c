package selection

import (
	"errors"
	"fmt"
	"time"

	"github.com/rileyhilliard/spin/internal/logger"
)

// NoWinner is the winner value reported when nothing has been declared.
// A roster may legitimately contain the same string, so callers decide
// "declared" with HasWinner rather than by comparing against it.
const NoWinner = "N/A"

// MinEntries is the fewest names a roster needs before it can be spun.
const MinEntries = 2

// Sentinel errors returned when a spin request is rejected. A rejected
// request never changes controller state.
var (
	ErrAlreadySpinning  = errors.New("wheel is already spinning")
	ErrNotEnoughEntries = errors.New("not enough entries to spin")
	ErrIndexOutOfRange  = errors.New("random source returned an index out of range")
)

// Roster is the read-only view of the names being spun.
type Roster interface {
	Len() int
	At(i int) (string, bool)
}

// SpinState is the controller's position in the spin lifecycle.
type SpinState int

const (
	Idle SpinState = iota
	Spinning
)

// String returns a human-readable state name.
func (s SpinState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Spinning:
		return "spinning"
	default:
		return "unknown"
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithSource sets the random source used to pick target indexes.
func WithSource(src Source) Option {
	return func(c *Controller) {
		if src != nil {
			c.source = src
		}
	}
}

// WithLogger sets the logger for state transitions.
func WithLogger(l logger.Logger) Option {
	return func(c *Controller) {
		c.log = logger.OrDefault(l)
	}
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithIDs overrides how spin IDs are generated.
func WithIDs(next func() string) Option {
	return func(c *Controller) {
		if next != nil {
			c.newID = next
		}
	}
}

// Controller is the spin state machine. It reads rosters but never mutates
// them. It is not safe for concurrent use; callers drive it from a single
// event loop.
type Controller struct {
	state    SpinState
	active   *Spin
	winner   string
	declared bool
	history  []Result

	source Source
	log    logger.Logger
	now    func() time.Time
	newID  func() string
}

// New creates an idle controller with no winner.
func New(opts ...Option) *Controller {
	c := &Controller{
		state:  Idle,
		winner: NoWinner,
		source: DefaultSource(),
		log:    logger.Default(),
		now:    time.Now,
		newID:  newSpinID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsSpinnable reports whether a spin request would currently be accepted.
func (c *Controller) IsSpinnable(r Roster) bool {
	return c.state == Idle && r.Len() >= MinEntries
}

// RequestSpin commits a uniformly random target index and moves to Spinning.
// The returned Spin must be completed exactly once when the animation ends.
func (c *Controller) RequestSpin(r Roster) (*Spin, error) {
	if c.state == Spinning {
		c.log.Debug("spin rejected: already spinning")
		return nil, ErrAlreadySpinning
	}
	n := r.Len()
	if n < MinEntries {
		c.log.Debug("spin rejected: %d entries, need %d", n, MinEntries)
		return nil, fmt.Errorf("%w: have %d, need %d", ErrNotEnoughEntries, n, MinEntries)
	}

	target := c.source.IntN(n)
	if target < 0 || target >= n {
		c.log.Warn("random source returned %d for %d entries", target, n)
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, target, n)
	}

	spin := &Spin{
		ID:        c.newID(),
		Target:    target,
		Entries:   n,
		StartedAt: c.now(),
		ctrl:      c,
	}
	c.state = Spinning
	c.active = spin
	c.winner = NoWinner
	c.declared = false

	c.log.Debug("spin %s started: target %d of %d", spin.ID, target, n)
	return spin, nil
}

// OnSpinComplete finishes the active spin, if any, and returns the winner.
// When the controller is idle it returns the current winner unchanged.
func (c *Controller) OnSpinComplete(r Roster) string {
	if c.active == nil {
		return c.winner
	}
	winner, _ := c.active.Complete(r)
	return winner
}

// finish is called by Spin.Complete for the active spin only.
func (c *Controller) finish(s *Spin, r Roster) string {
	c.state = Idle
	c.active = nil

	winner, ok := r.At(s.Target)
	if !ok {
		c.log.Warn("spin %s: index %d no longer in roster of %d", s.ID, s.Target, r.Len())
		winner = NoWinner
	}
	c.winner = winner
	c.declared = ok

	c.history = append(c.history, Result{
		SpinID:     s.ID,
		Winner:     winner,
		Declared:   ok,
		Index:      s.Target,
		StartedAt:  s.StartedAt,
		FinishedAt: c.now(),
	})
	c.log.Debug("spin %s finished: winner %q", s.ID, winner)
	return winner
}

// ClearWinner resets the declared winner to NoWinner. The roster owner calls
// it whenever the roster changes. Spin state is left alone.
func (c *Controller) ClearWinner() {
	c.winner = NoWinner
	c.declared = false
}

// CurrentWinner returns the declared winner, or NoWinner.
func (c *Controller) CurrentWinner() string {
	return c.winner
}

// HasWinner reports whether a winner is currently declared.
func (c *Controller) HasWinner() bool {
	return c.declared
}

// State returns the current spin state.
func (c *Controller) State() SpinState {
	return c.state
}

// Spinning reports whether a spin is in progress.
func (c *Controller) Spinning() bool {
	return c.state == Spinning
}

// TargetIndex returns the committed index of the active spin, or -1 when idle.
func (c *Controller) TargetIndex() int {
	if c.active == nil {
		return -1
	}
	return c.active.Target
}

// Active returns the in-flight spin, or nil.
func (c *Controller) Active() *Spin {
	return c.active
}

// History returns the finished spins, oldest first.
func (c *Controller) History() []Result {
	out := make([]Result, len(c.history))
	copy(out, c.history)
	return out
}
