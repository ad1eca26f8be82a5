package catalogue

const (
	fnvOffsetBasis uint32 = 2166136261
	fnvPrime       uint32 = 16777619
)

// Rand is a xorshift32 generator whose state is an FNV-1a fold of a seed string.
// The sequence is a pure function of (seed, call index).
type Rand struct {
	state uint32
}

// NewRand seeds a generator from s, folding one code point at a time.
func NewRand(s string) *Rand {
	h := fnvOffsetBasis
	for _, r := range s {
		h ^= uint32(r)
		h *= fnvPrime
	}
	return &Rand{state: h}
}

// Float64 advances the state and returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return float64(x) / 4294967296.0
}

// Intn returns a value in [0, n). n must be positive.
func (r *Rand) Intn(n int) int {
	return int(r.Float64() * float64(n))
}
