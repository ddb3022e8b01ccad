package spotlight

// DefaultAttempts bounds the draws Pick makes to avoid a repeat.
const DefaultAttempts = 10

// Source draws uniform integers in [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type Source interface {
	IntN(n int) int
}

// Pick draws an index uniformly from [0, n), redrawing while it equals prev.
// At most attempts draws are made; if every draw collides the repeat is
// accepted. Pick returns -1 when n <= 0 and 0 without drawing when n == 1.
func Pick(src Source, n, prev, attempts int) int {
	switch {
	case n <= 0:
		return -1
	case n == 1:
		return 0
	}

	idx := src.IntN(n)
	for i := 1; i < attempts && idx == prev; i++ {
		idx = src.IntN(n)
	}
	return idx
}
