package absint

import (
	"math"
	"math/rand"
	"testing"

	L "github.com/cs-au-dk/enclosure/analysis/lattice"

	"github.com/stretchr/testify/require"
)

var strategies = []Strategy{BestFirst, BreadthFirst}

func TestSearchSoundness(t *testing.T) {
	for _, integrand := range Integrands() {
		for _, strategy := range strategies {
			for _, budget := range []int{0, 1, 2, 10, 100, 1000, 5000} {
				res := SearchConfig{Iterations: budget, Strategy: strategy}.
					Search(integrand.Extension, integrand.Domain)

				require.Truef(t, res.Bound.Contains(integrand.Exact),
					"%s (%s, %d iterations): %v ∉ %s",
					integrand.Name, strategy, budget, integrand.Exact, res.Bound)
				require.LessOrEqual(t, res.Iterations, budget)
			}
		}
	}
}

func TestSearchMonotonicTightening(t *testing.T) {
	const tol = 1e-12

	for _, name := range []string{"quarter-disk", "half-plane", "vertical-line"} {
		integrand, err := LookupIntegrand(name)
		require.NoError(t, err)

		for _, strategy := range strategies {
			var prev L.Interval
			for budget := 0; budget <= 2000; budget += 50 {
				res := SearchConfig{Iterations: budget, Strategy: strategy}.
					Search(integrand.Extension, integrand.Domain)

				if budget > 0 {
					require.GreaterOrEqualf(t, res.Bound.Low(), prev.Low()-tol,
						"%s (%s): %d iterations yield %s, fewer yield %s", name, strategy, budget, res.Bound, prev)
					require.LessOrEqualf(t, res.Bound.High(), prev.High()+tol,
						"%s (%s): %d iterations yield %s, fewer yield %s", name, strategy, budget, res.Bound, prev)
				}
				prev = res.Bound
			}
		}
	}
}

func TestSearchInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(11))

	for _, strategy := range strategies {
		res := SearchConfig{Iterations: 2000, Strategy: strategy}.Search(QuarterDisk, UnitSquare())

		var resolved []L.Box2D
		for iter := res.Resolved.Iterator(); !iter.Done(); {
			_, box := iter.Next()
			require.Falsef(t, QuarterDisk(box).CanBeNegative(), "resolved box %s", box)
			require.True(t, box.X().Leq(UnitSquare().X()) && box.Y().Leq(UnitSquare().Y()))
			resolved = append(resolved, box)
		}

		// Every point of the quarter disk is covered by a resolved or a
		// pending box.
		for i := 0; i < 5000; i++ {
			x, y := r.Float64(), r.Float64()
			if x*x+y*y > 0.999 {
				continue
			}

			covered := false
			for _, boxes := range [][]L.Box2D{resolved, res.Pending} {
				for _, box := range boxes {
					if box.Contains(x, y) {
						covered = true
						break
					}
				}
			}
			require.Truef(t, covered, "(%v, %v) is not covered (%s)", x, y, strategy)
		}

		lower := L.Elements().Singleton(0)
		for _, box := range resolved {
			lower = lower.Plus(box.Area())
		}
		require.True(t, lower.Eq(res.Lower))
		require.True(t, res.Bound.Eq(res.Lower.Join(res.Upper)))
	}
}

func TestApproximatePi(t *testing.T) {
	pi := ApproximatePi(100_000)

	require.Truef(t, pi.Contains(math.Pi), "π ∉ %s", pi)
	require.InDelta(t, math.Pi, pi.Low(), 0.01)
	require.InDelta(t, math.Pi, pi.High(), 0.01)
}

func TestApproximatePiConfigured(t *testing.T) {
	pi, res := SearchConfig{Iterations: 1000, Metrics: true}.ApproximatePi()

	require.True(t, pi.Contains(math.Pi))
	require.True(t, pi.Eq(ApproximatePi(1000)))
	require.Equal(t, 1000, res.Metrics.Iterations())
	require.Equal(t, OUTCOME_BUDGET, res.Metrics.Outcome)
}

func TestSearchDegenerateDomain(t *testing.T) {
	point := L.Elements().BoxFinite(0.5, 0.5, 0.5, 0.5)
	straddling := func(L.Box2D) L.Interval {
		return L.Elements().Interval(-1, 1)
	}

	for _, f := range []Extension{Constant(1), Constant(-1), straddling, QuarterDisk} {
		for _, budget := range []int{0, 1, 1000} {
			bound := ProbabilityNonnegative(f, point, budget)
			require.Truef(t, bound.Eq(L.Elements().Singleton(0)), "bound %s on a point", bound)
		}
	}
}

func TestSearchAllNegative(t *testing.T) {
	// -(x - 1/2)² - 1/1000 is negative everywhere, but its interval
	// extension on the whole domain straddles zero.
	f := func(b L.Box2D) L.Interval {
		d := b.X().Minus(half)
		return L.Elements().Singleton(-1e-3).Minus(d.Mult(d))
	}

	for _, strategy := range strategies {
		res := SearchConfig{Iterations: 10_000, Strategy: strategy, Metrics: true}.Search(f, UnitSquare())

		require.True(t, res.Bound.Eq(L.Elements().Singleton(0)), "bound %s", res.Bound)
		require.Equal(t, 0, res.Resolved.Len())
		require.Empty(t, res.Pending)
		require.Equal(t, OUTCOME_EXHAUSTED, res.Metrics.Outcome)
		require.Less(t, res.Iterations, 10_000)
	}

	bound := ProbabilityNonnegative(Constant(-1), UnitSquare(), 1)
	require.True(t, bound.Eq(L.Elements().Singleton(0)), "bound %s", bound)
}

func TestSearchNoIterations(t *testing.T) {
	res := SearchConfig{}.Search(QuarterDisk, UnitSquare())

	require.Equal(t, 0, res.Iterations)
	require.Len(t, res.Pending, 1)
	require.Equal(t, 0.0, res.Bound.Low())
	require.True(t, res.Bound.Contains(1))
	require.Nil(t, res.Metrics)
}

func TestSearchMetrics(t *testing.T) {
	res := SearchConfig{Iterations: 500, Metrics: true}.Search(HalfPlane, UnitSquare())
	m := res.Metrics

	require.True(t, m.Enabled())
	require.Equal(t, res.Iterations, m.Iterations())
	require.Equal(t, m.Iterations(), m.Resolved()+m.Split()+m.Dropped())
	require.Equal(t, res.Resolved.Len(), m.Resolved())
	// Every split adds three boxes to the frontier, every other
	// classification removes one.
	require.Equal(t, 1+3*m.Split()-m.Resolved()-m.Dropped(), len(res.Pending))
	require.GreaterOrEqual(t, m.PeakFrontier(), len(res.Pending))
	require.Equal(t, OUTCOME_BUDGET, m.Outcome)

	var disabled *Metrics
	require.False(t, disabled.Enabled())
	require.Equal(t, 0, disabled.Iterations())
}

func TestSearchProgress(t *testing.T) {
	type snapshot struct {
		progress Progress
		resolved int
	}
	var reports []snapshot

	SearchConfig{
		Iterations:    35,
		ProgressEvery: 10,
		OnProgress: func(p Progress) {
			reports = append(reports, snapshot{p, p.Resolved.Len()})
		},
	}.Search(QuarterDisk, UnitSquare())

	require.Len(t, reports, 4)
	for i, it := range []int{10, 20, 30, 35} {
		require.Equal(t, it, reports[i].progress.Iteration)
		require.Equal(t, 35, reports[i].progress.Budget)
		require.Equal(t, i == 3, reports[i].progress.Done)
		// Snapshots are unaffected by the remainder of the search.
		require.Equal(t, reports[i].resolved, reports[i].progress.Resolved.Len())
	}
	require.LessOrEqual(t, reports[0].resolved, reports[3].resolved)
	require.LessOrEqual(t, reports[0].progress.Lower().Low(), reports[3].progress.Lower().Low())
}
