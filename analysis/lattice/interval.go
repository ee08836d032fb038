package lattice

import (
	"fmt"
	"math"
	"strconv"
)

// epsilon is the machine epsilon of float64, i. e. the distance between
// 1 and the next representable number.
const epsilon = 0x1p-52

// Interval is a closed range of reals [low, high], with low ≤ high.
// Intervals are immutable: every operation yields a new interval.
//
// Arithmetic operations are conservative. Every result is inflated
// outwards by the magnitude of each bound times the machine epsilon,
// such that the exact real result is always enclosed, even though the
// bounds are computed with floating-point primitives.
type Interval struct {
	low  float64
	high float64
}

// Interval creates the interval [low, high]. Panics if low > high,
// or if either bound is NaN.
func (elementFactory) Interval(low, high float64) Interval {
	if !(low <= high) {
		panic(fmt.Errorf("%w: [%v, %v]", errInvalidInterval, low, high))
	}
	return Interval{low: low, high: high}
}

// Singleton creates the interval [x, x].
func (elementFactory) Singleton(x float64) Interval {
	return elFact.Interval(x, x)
}

// Low returns the lower bound.
func (i Interval) Low() float64 {
	return i.low
}

// High returns the upper bound.
func (i Interval) High() float64 {
	return i.high
}

func (i Interval) String() string {
	return "[" + colorize.Const(formatBound(i.low)) +
		", " + colorize.Const(formatBound(i.high)) + "]"
}

func formatBound(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// Eq checks that both bounds coincide.
func (i Interval) Eq(o Interval) bool {
	return i.low == o.low && i.high == o.high
}

// Leq computes i ⊑ o, i. e. whether i is contained in o.
func (i Interval) Leq(o Interval) bool {
	return o.low <= i.low && i.high <= o.high
}

// Contains checks whether x ∈ i.
func (i Interval) Contains(x float64) bool {
	return i.low <= x && x <= i.high
}

// Join computes i ⊔ o, the smallest interval containing both i and o.
// No arithmetic is performed, so the result is not inflated.
func (i Interval) Join(o Interval) Interval {
	return Interval{
		low:  min(i.low, o.low),
		high: max(i.high, o.high),
	}
}

// inflate widens both bounds outwards by their own magnitude times the
// machine epsilon. Applied exactly once to the result of every operation
// performing floating-point arithmetic.
func (i Interval) inflate() Interval {
	return elFact.Interval(
		i.low-math.Abs(i.low)*epsilon,
		i.high+math.Abs(i.high)*epsilon,
	)
}

// Plus computes i + o:
//
//	[l1, h1] + [l2, h2] = [l1 + l2, h1 + h2]
func (i Interval) Plus(o Interval) Interval {
	return Interval{
		low:  i.low + o.low,
		high: i.high + o.high,
	}.inflate()
}

// Minus computes i - o:
//
//	[l1, h1] - [l2, h2] = [l1 - h2, h1 - l2]
func (i Interval) Minus(o Interval) Interval {
	return Interval{
		low:  i.low - o.high,
		high: i.high - o.low,
	}.inflate()
}

// Mult computes i * o. Multiplication is not monotonic when signs are
// mixed, so all four products of bounds are considered:
//
//	[l1, h1] * [l2, h2] = [min P, max P], P = {l1l2, l1h2, h1l2, h1h2}
func (i Interval) Mult(o Interval) Interval {
	ll, lh := i.low*o.low, i.low*o.high
	hl, hh := i.high*o.low, i.high*o.high
	return Interval{
		low:  min(ll, lh, hl, hh),
		high: max(ll, lh, hl, hh),
	}.inflate()
}

// CanBeNonnegative checks whether the interval contains some x ≥ 0.
func (i Interval) CanBeNonnegative() bool {
	return i.high >= 0
}

// CanBeNegative checks whether the interval contains some x < 0.
func (i Interval) CanBeNegative() bool {
	return i.low < 0
}

// Length yields an interval enclosing high - low.
func (i Interval) Length() Interval {
	d := i.high - i.low
	return Interval{low: d, high: d}.inflate()
}

// Width is the scalar high - low, without any error accounting.
func (i Interval) Width() float64 {
	return i.high - i.low
}

// Midpoint returns (low + high) / 2 as a scalar. Only suitable for
// ordering and bisection, not for further interval arithmetic.
func (i Interval) Midpoint() float64 {
	return (i.low + i.high) / 2
}

// Split bisects the interval at its midpoint. Both halves share the
// midpoint as a common bound.
func (i Interval) Split() (Interval, Interval) {
	mid := i.Midpoint()
	return elFact.Interval(i.low, mid), elFact.Interval(mid, i.high)
}

// Sum adds up all the given intervals, starting from [0, 0].
func Sum(is ...Interval) Interval {
	res := elFact.Singleton(0)
	for _, i := range is {
		res = res.Plus(i)
	}
	return res
}
