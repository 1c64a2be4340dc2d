package daily

import "math"

// Generate returns count indices in [0, poolSize) drawn from the sine-based
// generator: the counter starts at seed, and each draw takes the fractional
// part of sin(counter)*10000, scales it by poolSize and floors it. Duplicates
// are kept.
//
// Histories are only portable if every implementation yields the same
// sequence, so this must stay a plain float64 sin/floor pipeline. Go's
// math.Sin and other libms may differ in the last ulp; a draw whose scaled
// value sits within that distance of an integer boundary could differ.
func Generate(seed, count, poolSize int) []int {
	if count <= 0 || poolSize <= 0 {
		return []int{}
	}
	out := make([]int, count)
	counter := seed
	for i := range out {
		x := math.Sin(float64(counter)) * 10000
		frac := x - math.Floor(x)
		idx := int(math.Floor(frac * float64(poolSize)))
		// frac can round up to 1.0 for tiny negative x.
		if idx >= poolSize {
			idx = poolSize - 1
		}
		out[i] = idx
		counter++
	}
	return out
}
