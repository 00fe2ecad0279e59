// Package fakegentest provides a Source with a scripted draw sequence for
// tests that need to steer composite generators down a specific path.
package fakegentest

import "fmt"

// Scripted replays fixed int and bool draws. IntN and Bool consume from
// separate queues and panic when a queue runs dry or a scripted int falls
// outside [0, n).
type Scripted struct {
	ints  []int
	bools []bool
}

// NewScripted returns a Source that replays ints and bools in order.
func NewScripted(ints []int, bools []bool) *Scripted {
	return &Scripted{ints: ints, bools: bools}
}

func (s *Scripted) IntN(n int) int {
	if len(s.ints) == 0 {
		panic(fmt.Sprintf("fakegentest: unexpected IntN(%d) draw, int script exhausted", n))
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("fakegentest: scripted int %d out of range for IntN(%d)", v, n))
	}
	return v
}

func (s *Scripted) Bool() bool {
	if len(s.bools) == 0 {
		panic("fakegentest: unexpected Bool draw, bool script exhausted")
	}
	v := s.bools[0]
	s.bools = s.bools[1:]
	return v
}

// Remaining reports how many scripted draws were not consumed.
func (s *Scripted) Remaining() (ints, bools int) {
	return len(s.ints), len(s.bools)
}
