package physics

// Float64Source is the subset of *rand.Rand used for weighted picks.
type Float64Source interface {
	Float64() float64
}

// WeightedPick returns an index into weights chosen proportionally to its weight.
// Walks the weights subtracting from a uniform draw; rounding leftovers fall on the last item.
func WeightedPick(rng Float64Source, weights []float64) int {
	if len(weights) == 0 {
		return -1
	}
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r <= 0 {
			return i
		}
	}
	return len(weights) - 1
}

// Chance reports whether a uniform draw falls below p.
func Chance(rng Float64Source, p float64) bool {
	return rng.Float64() < p
}
