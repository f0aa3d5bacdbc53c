package selection

import (
	"math/rand/v2"
	"sync"
)

// Source draws uniform random integers. IntN must return a value in [0, n)
// for n > 0, with every value equally likely.
type Source interface {
	IntN(n int) int
}

// runtimeSource uses the auto-seeded top-level generator from math/rand/v2.
type runtimeSource struct{}

func (runtimeSource) IntN(n int) int {
	return rand.IntN(n)
}

// DefaultSource returns the process-wide, randomly seeded source.
func DefaultSource() Source {
	return runtimeSource{}
}

// seededSource is a PCG generator with a fixed seed, used for --seed replays.
type seededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededSource returns a reproducible source. Two sources built from the
// same seed produce the same sequence of draws.
func NewSeededSource(seed uint64) Source {
	return &seededSource{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *seededSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Sequence replays a fixed list of draws, cycling when it runs out.
// It does not check the values against n; the controller does.
type Sequence struct {
	values []int
	pos    int
}

// NewSequence returns a Sequence that yields values in order.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// IntN returns the next value in the sequence, or 0 when it is empty.
func (s *Sequence) IntN(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

