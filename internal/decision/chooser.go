package decision

import "math/rand/v2"

// Chooser picks an index in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Chooser interface {
	IntN(n int) int
}

type globalChooser struct{}

func (globalChooser) IntN(n int) int {
	return rand.IntN(n)
}

// NewChooser returns a Chooser backed by the automatically seeded global source.
func NewChooser() Chooser {
	return globalChooser{}
}

// NewSeededChooser returns a reproducible Chooser.
func NewSeededChooser(seed uint64) Chooser {
	return rand.New(rand.NewPCG(seed, seed))
}
