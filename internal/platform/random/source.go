// Package random abstracts the uniform random source used for lineup picks
// so tests can substitute a deterministic sequence.
package random

import "math/rand/v2"

// Source yields a uniform integer in [0, n). n must be > 0.
type Source interface {
	Intn(n int) int
}

type mathSource struct{}

// NewSource returns the production source backed by math/rand/v2.
func NewSource() Source {
	return mathSource{}
}

func (mathSource) Intn(n int) int {
	return rand.IntN(n)
}

// Sequence is a deterministic Source for tests. Each call consumes the next
// scripted value modulo n; an exhausted sequence keeps returning 0.
type Sequence struct {
	values []int
	next   int
}

func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		panic("random: Intn called with non-positive n")
	}
	if s.next >= len(s.values) {
		return 0
	}
	v := s.values[s.next] % n
	s.next++
	if v < 0 {
		v += n
	}
	return v
}
