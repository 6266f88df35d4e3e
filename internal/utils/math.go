package utils

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Max3 returns the largest of a, b and c.
func Max3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
