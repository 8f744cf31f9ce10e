package maze

// Stream is the seeded pseudo-random source behind edge weights.
//
// It is a 48-bit linear congruential generator. The arithmetic is pinned down
// exactly, so a seed names one maze forever: changing any constant here
// changes every maze ever generated from a recorded seed.
type Stream struct {
	state uint64
}

const (
	lcgMultiplier = 0x5DEECE66D
	lcgIncrement  = 0xB
	lcgMask       = (1 << 48) - 1
)

// NewStream returns a stream positioned at the start of seed's sequence.
func NewStream(seed int64) *Stream {
	s := &Stream{}
	s.Seed(seed)
	return s
}

// Seed restarts the stream at the beginning of seed's sequence.
func (s *Stream) Seed(seed int64) {
	s.state = (uint64(seed) ^ lcgMultiplier) & lcgMask
}

// next advances the state and returns its top bits as a signed 32-bit value.
func (s *Stream) next(bits uint) int32 {
	s.state = (s.state*lcgMultiplier + lcgIncrement) & lcgMask
	return int32(s.state >> (48 - bits))
}

// Intn returns a uniform value in [0, n). It panics unless 0 < n <= MaxInt32.
func (s *Stream) Intn(n int) int {
	if n <= 0 || n > 1<<31-1 {
		panic("maze: Stream.Intn bound out of range")
	}
	bound := int32(n)
	if bound&-bound == bound {
		return int((int64(bound) * int64(s.next(31))) >> 31)
	}
	for {
		bits := s.next(31)
		val := bits % bound
		// Reject draws from the final partial block; the sum overflows there.
		if bits-val+(bound-1) >= 0 {
			return int(val)
		}
	}
}
