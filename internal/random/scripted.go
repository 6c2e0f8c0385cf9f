package random

// Scripted replays a fixed sequence of values. Each Between call consumes the
// next value and clamps it into [low, high); NextInt consumes it unchanged.
// Once exhausted the sequence restarts. Intended for tests that need exact rolls.
type Scripted struct {
	Values []int
	next   int
}

// NewScripted creates a Scripted source over values.
func NewScripted(values ...int) *Scripted {
	return &Scripted{Values: values}
}

func (s *Scripted) pop() int {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}

// NextInt returns the next scripted value.
func (s *Scripted) NextInt() int {
	return s.pop()
}

// Between returns the next scripted value clamped into [low, high).
func (s *Scripted) Between(low, high int) int {
	v := s.pop()
	if high <= low {
		return low
	}
	if v < low {
		return low
	}
	if v >= high {
		return high - 1
	}
	return v
}
