package common

// Epsilon floors divisors derived from tuning values.
const Epsilon = 0.0001

// Lerp interpolates from a to b. t is clamped to [0, 1] so a large
// rate*dt never overshoots the target.
func Lerp(a, b, t float64) float64 {
	return a + Clamp01(t)*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

