package absint

import (
	"fmt"

	L "github.com/cs-au-dk/enclosure/analysis/lattice"
	"github.com/cs-au-dk/enclosure/utils/pq"
	"github.com/cs-au-dk/enclosure/utils/worklist"

	"github.com/benbjohnson/immutable"
)

// workItem is an unresolved box, together with its position in the
// search tree.
type workItem struct {
	// priority is the negated area midpoint, such that a min-priority
	// queue yields the largest box first.
	priority float64
	box      L.Box2D
	id       int
	parent   int
}

// frontier holds the unresolved boxes of a search.
type frontier interface {
	Add(workItem)
	GetNext() workItem
	IsEmpty() bool
	Len() int
	ForEach(func(workItem))
}

var (
	_ frontier = (*pq.PriorityQueue[workItem])(nil)
	_ frontier = (*worklist.Worklist[workItem])(nil)
)

func (s Strategy) frontier() frontier {
	switch s {
	case BestFirst:
		q := pq.Empty[workItem](func(a, b workItem) bool {
			return a.priority < b.priority
		})
		return &q
	case BreadthFirst:
		w := worklist.Empty[workItem]()
		return &w
	}
	panic(fmt.Errorf("%w: unknown strategy %d", errInternal, s))
}

// Step describes the examination of a single box.
type Step struct {
	// Iteration is the 1-based iteration at which the box was examined.
	Iteration int
	// ID identifies the box in the search tree. The domain has ID 0.
	ID int
	// Parent is the ID of the box that was quartered to produce this box,
	// or -1 for the domain.
	Parent         int
	Box            L.Box2D
	Image          L.Interval
	Classification Classification
}

// Result of a probability bound search.
type Result struct {
	// Bound encloses the area on which the function is non-negative.
	Bound L.Interval
	// Lower encloses the total area of resolved boxes.
	Lower L.Interval
	// Upper encloses the total area of resolved and pending boxes.
	Upper L.Interval
	// Resolved contains the boxes on which the function is non-negative.
	Resolved *immutable.List[L.Box2D]
	// Pending contains the boxes that were not yet classified.
	Pending []L.Box2D
	// Iterations is the number of examined boxes.
	Iterations int
	// Metrics is nil unless enabled in the configuration.
	Metrics *Metrics
}

// ProbabilityNonnegative encloses the area of the part of the domain on
// which the function with interval extension f is non-negative, examining
// at most the given number of boxes. For a domain of unit area, this is
// the probability that f is non-negative at a uniformly drawn point.
func ProbabilityNonnegative(f Extension, domain L.Box2D, iterations int) L.Interval {
	return SearchConfig{Iterations: iterations}.Search(f, domain).Bound
}

// Search performs a branch-and-bound search over the domain.
//
// Before the loop and after every iteration, the following holds:
//   - f is non-negative on every resolved box.
//   - If f is non-negative at some point of the domain, the point is in
//     a resolved box or a pending box.
//   - Resolved and pending boxes are pairwise disjoint, except for shared
//     edges, and contained in the domain.
//
// The lower bound is therefore the area of the resolved boxes, and the
// upper bound additionally includes the area of all pending boxes.
// Running out of iterations only widens the bound.
func (c SearchConfig) Search(f Extension, domain L.Box2D) Result {
	metrics := c.initMetrics()
	resolved := immutable.NewList[L.Box2D]()
	queue := c.Strategy.frontier()

	nextID := 0
	enqueue := func(box L.Box2D, parent int) {
		queue.Add(workItem{
			priority: -box.Area().Midpoint(),
			box:      box,
			id:       nextID,
			parent:   parent,
		})
		nextID++
	}
	enqueue(domain, -1)

	progress := func(i int, done bool) {
		if c.OnProgress != nil {
			c.OnProgress(Progress{
				Iteration: i,
				Budget:    c.Iterations,
				Resolved:  resolved,
				Pending:   queue.Len(),
				Done:      done,
			})
		}
	}

	i := 0
	for ; i < c.Iterations && !queue.IsEmpty(); i++ {
		item := queue.GetNext()
		image := f(item.box)

		var class Classification
		switch {
		case !image.CanBeNegative():
			class = Nonnegative
			resolved = resolved.Append(item.box)
		case image.CanBeNonnegative():
			class = Ambiguous
			for _, quarter := range item.box.Split() {
				enqueue(quarter, item.id)
			}
		default:
			class = Negative
		}

		metrics.record(class, queue.Len())
		if c.OnStep != nil {
			c.OnStep(Step{
				Iteration:      i + 1,
				ID:             item.id,
				Parent:         item.parent,
				Box:            item.box,
				Image:          image,
				Classification: class,
			})
		}
		if c.ProgressEvery > 0 && (i+1)%c.ProgressEvery == 0 {
			progress(i+1, false)
		}
	}

	lower := sumAreas(resolved)

	pending := make([]L.Box2D, 0, queue.Len())
	queue.ForEach(func(item workItem) {
		pending = append(pending, item.box)
	})
	unresolved := L.Elements().Singleton(0)
	for _, box := range pending {
		unresolved = unresolved.Plus(box.Area())
	}
	upper := lower.Plus(unresolved)

	metrics.done(queue.IsEmpty())
	progress(i, true)

	return Result{
		Bound:      lower.Join(upper),
		Lower:      lower,
		Upper:      upper,
		Resolved:   resolved,
		Pending:    pending,
		Iterations: i,
		Metrics:    metrics,
	}
}

// sumAreas encloses the total area of the given boxes.
func sumAreas(boxes *immutable.List[L.Box2D]) L.Interval {
	sum := L.Elements().Singleton(0)
	for iter := boxes.Iterator(); !iter.Done(); {
		_, box := iter.Next()
		sum = sum.Plus(box.Area())
	}
	return sum
}
