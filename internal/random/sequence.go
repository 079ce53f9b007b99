package random

// Sequence is a Source that replays a fixed list of raw draws, starting over
// when the list is exhausted. Every method consumes exactly one draw, which
// makes the order of generator calls observable in tests.
//
// An empty Sequence always draws 0.
type Sequence struct {
	draws []uint64
	pos   int
}

var _ Source = (*Sequence)(nil)

// NewSequence creates a Sequence over a copy of draws.
func NewSequence(draws ...uint64) *Sequence {
	return &Sequence{draws: append([]uint64(nil), draws...)}
}

// Consumed reports how many draws have been taken so far.
func (s *Sequence) Consumed() int {
	return s.pos
}

func (s *Sequence) next() uint64 {
	if len(s.draws) == 0 {
		s.pos++
		return 0
	}

	v := s.draws[s.pos%len(s.draws)]
	s.pos++

	return v
}

func (s *Sequence) IntN(n int) int {
	if n <= 0 {
		panic("invalid argument to IntN")
	}

	return int(s.next() % uint64(n))
}

func (s *Sequence) Uint64() uint64 {
	return s.next()
}

func (s *Sequence) Uint64N(n uint64) uint64 {
	if n == 0 {
		panic("invalid argument to Uint64N")
	}

	return s.next() % n
}

// Float64 maps the low 53 bits of the draw onto [0, 1).
func (s *Sequence) Float64() float64 {
	return float64(s.next()&(1<<53-1)) / (1 << 53)
}
