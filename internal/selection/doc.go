// Package selection owns the spin state machine: whether the wheel is idle
// or spinning, which index the current spin will land on, and who won the
// last finished spin.
//
// # Lifecycle
//
// A Controller starts Idle with no winner. RequestSpin checks that the wheel
// is idle and the roster has at least MinEntries names, draws a target index
// from its Source, moves to Spinning and clears the winner. The caller hands
// the returned *Spin to whatever animates the wheel. When the animation ends
// the caller invokes Spin.Complete exactly once; the controller returns to
// Idle and declares the name at the target index the winner.
//
//	spin, err := ctrl.RequestSpin(names)
//	if err != nil {
//	    return err // ErrAlreadySpinning or ErrNotEnoughEntries
//	}
//	// ... animate towards spin.Target ...
//	winner, _ := spin.Complete(names)
//
// # Stale indexes
//
// The roster may shrink while a spin is running. Completion re-reads the
// roster and yields NoWinner if the committed index no longer exists.
//
// # Randomness
//
// Draws come from an injected Source. DefaultSource is auto-seeded,
// NewSeededSource replays a fixed seed, and Sequence feeds exact values in
// tests.
package selection
