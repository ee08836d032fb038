package absint

import (
	"fmt"
	"io"
	"strconv"

	L "github.com/cs-au-dk/enclosure/analysis/lattice"
	"github.com/cs-au-dk/enclosure/utils/dot"
)

// formatInterval prints an interval with six significant digits and
// without colours, which suffices to identify boxes in traces.
func formatInterval(i L.Interval) string {
	return fmt.Sprintf("[%.6g, %.6g]", i.Low(), i.High())
}

func formatBox(b L.Box2D) string {
	return formatInterval(b.X()) + "×" + formatInterval(b.Y())
}

func (s Step) String() string {
	return fmt.Sprintf("#%d box %d (parent %d): %s ↦ %s %s",
		s.Iteration, s.ID, s.Parent,
		formatBox(s.Box), formatInterval(s.Image), s.Classification)
}

// Trace returns a step callback writing every step to w.
func Trace(w io.Writer) func(Step) {
	return func(s Step) {
		fmt.Fprintln(w, s)
	}
}

// SearchTree records the steps of a search, in order to visualize the
// subdivision of the domain.
type SearchTree struct {
	steps []Step
}

// Record is a step callback, to be used as SearchConfig.OnStep.
func (t *SearchTree) Record(s Step) {
	t.steps = append(t.steps, s)
}

// Len returns the number of recorded steps.
func (t *SearchTree) Len() int {
	return len(t.steps)
}

var fillcolor = map[Classification]string{
	Nonnegative: "palegreen",
	Ambiguous:   "lightyellow",
	Negative:    "lightcoral",
}

// ToDot constructs a graph with a node per examined box, and an edge
// from every quartered box to each of its examined quarters.
func (t *SearchTree) ToDot(title string) *dot.DotGraph {
	g := &dot.DotGraph{
		Title: title,
		Options: map[string]string{
			"rankdir": "TB",
		},
	}

	nodes := make(map[int]*dot.DotNode, len(t.steps))
	for _, s := range t.steps {
		node := &dot.DotNode{
			ID: "b" + strconv.Itoa(s.ID),
			Attrs: dot.DotAttrs{
				"label":     fmt.Sprintf("#%d %s\n↦ %s", s.Iteration, formatBox(s.Box), formatInterval(s.Image)),
				"fillcolor": fillcolor[s.Classification],
			},
		}
		nodes[s.ID] = node
		g.Nodes = append(g.Nodes, node)
	}

	for _, s := range t.steps {
		parent, ok := nodes[s.Parent]
		if !ok {
			continue
		}
		g.Edges = append(g.Edges, &dot.DotEdge{
			From:  parent,
			To:    nodes[s.ID],
			Attrs: dot.DotAttrs{},
		})
	}

	return g
}
