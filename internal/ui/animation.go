package ui

import "time"

// minStepDelay keeps the first frames from collapsing to nothing on long
// rosters.
const minStepDelay = 10 * time.Millisecond

// StepsToTarget returns how many one-sector moves take the highlight from
// `from` to `target` on a wheel of n sectors after minTurns full laps.
func StepsToTarget(from, target, n, minTurns int) int {
	if n <= 0 {
		return 0
	}
	if minTurns < 1 {
		minTurns = 1
	}
	offset := ((target-from)%n + n) % n
	return minTurns*n + offset
}

// PlanSpin returns the delay before each highlight move. Delays grow
// (cubic ease-out) so the wheel decelerates into the target, and add up to
// roughly total.
func PlanSpin(from, target, n, minTurns int, total time.Duration) []time.Duration {
	steps := StepsToTarget(from, target, n, minTurns)
	if steps == 0 {
		return nil
	}

	weights := make([]float64, steps)
	var sum float64
	for i := range weights {
		p := float64(i) / float64(steps)
		weights[i] = 1 + 12*p*p*p
		sum += weights[i]
	}

	delays := make([]time.Duration, steps)
	for i, w := range weights {
		d := time.Duration(float64(total) * w / sum)
		if d < minStepDelay {
			d = minStepDelay
		}
		delays[i] = d
	}
	return delays
}
