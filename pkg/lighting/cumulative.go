package lighting

// CumulativeDistribution selects an index from a set of non-negative
// weights proportional to each weight. Kept as its own small type (rather
// than inlined into the sampler) because both strategies below could, in
// principle, reuse it for different weight sets.
type CumulativeDistribution struct {
	cdf   []float64
	total float64
}

// NewCumulativeDistribution builds the running-sum table over weights.
func NewCumulativeDistribution(weights []float64) CumulativeDistribution {
	cdf := make([]float64, len(weights))
	sum := 0.0
	for i, w := range weights {
		sum += w
		cdf[i] = sum
	}
	return CumulativeDistribution{cdf: cdf, total: sum}
}

// Total returns the sum of all weights.
func (c CumulativeDistribution) Total() float64 { return c.total }

// Sample picks the first index whose cumulative weight exceeds u*Total,
// given u in [0,1). Returns false if the distribution has zero total
// weight (no index can be selected).
func (c CumulativeDistribution) Sample(u float64) (int, bool) {
	if c.total <= 0 {
		return 0, false
	}
	target := u * c.total
	for i, cp := range c.cdf {
		if target < cp {
			return i, true
		}
	}
	return len(c.cdf) - 1, true
}
