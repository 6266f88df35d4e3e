package model

// Source is the randomness used for generation and refills.
// *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// RandIn draws uniformly from [lo, hi].
func RandIn(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}
