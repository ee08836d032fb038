package absint

import L "github.com/cs-au-dk/enclosure/analysis/lattice"

var four = L.Elements().Singleton(4)

// ApproximatePi encloses π, using that π/4 is the probability that a
// point drawn uniformly from the unit square lies in the unit disk.
func ApproximatePi(iterations int) L.Interval {
	return four.Mult(ProbabilityNonnegative(QuarterDisk, UnitSquare(), iterations))
}

// ApproximatePi encloses π under the given configuration, and also
// returns the result of the underlying search.
func (c SearchConfig) ApproximatePi() (L.Interval, Result) {
	res := c.Search(QuarterDisk, UnitSquare())
	return four.Mult(res.Bound), res
}
