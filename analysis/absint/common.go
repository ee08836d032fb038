package absint

import (
	"errors"

	L "github.com/cs-au-dk/enclosure/analysis/lattice"
	"github.com/cs-au-dk/enclosure/utils"

	"github.com/fatih/color"
)

var opts = utils.Opts()

var (
	errInternal         = errors.New("internal error")
	errUnknownIntegrand = errors.New("unknown integrand")
)

var colorize = struct {
	Nonnegative func(...interface{}) string
	Ambiguous   func(...interface{}) string
	Negative    func(...interface{}) string
}{
	Nonnegative: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgGreen).SprintFunc())(is...)
	},
	Ambiguous: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgYellow).SprintFunc())(is...)
	},
	Negative: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiRed).SprintFunc())(is...)
	},
}

// Extension is an interval extension of a function ℝ² → ℝ. For every
// point p in the box b, the extension must yield an interval containing
// the value of the function at p. The soundness of the search depends
// entirely on this contract.
type Extension = func(L.Box2D) L.Interval

// Strategy determines the order in which unresolved boxes are refined.
type Strategy int

const (
	// BestFirst refines the box with the largest area first.
	BestFirst Strategy = iota
	// BreadthFirst refines boxes in the order they were created.
	BreadthFirst
)

func (s Strategy) String() string {
	switch s {
	case BestFirst:
		return "best-first"
	case BreadthFirst:
		return "breadth-first"
	}
	return "unknown"
}

// Classification is the outcome of examining a box.
type Classification int

const (
	// Nonnegative boxes are retired; the function is non-negative on all of them.
	Nonnegative Classification = iota
	// Ambiguous boxes are quartered and the quarters queued for refinement.
	Ambiguous
	// Negative boxes are dropped; the function is negative on all of them.
	Negative
)

func (c Classification) String() string {
	switch c {
	case Nonnegative:
		return colorize.Nonnegative("non-negative")
	case Ambiguous:
		return colorize.Ambiguous("ambiguous")
	case Negative:
		return colorize.Negative("negative")
	}
	return "unknown"
}

// SearchConfig configures the probability bound search.
type SearchConfig struct {
	// Iterations bounds the number of boxes examined.
	Iterations int
	Strategy   Strategy
	// Metrics enables collection of search metrics.
	Metrics bool
	// ProgressEvery determines how many iterations pass between calls
	// to OnProgress. OnProgress is also called once when the search ends.
	ProgressEvery int
	OnProgress    func(Progress)
	// OnStep is called after every examined box.
	OnStep func(Step)
}

// ConfigFromOpts constructs a search configuration from the command line options.
func ConfigFromOpts() SearchConfig {
	c := SearchConfig{
		Iterations:    opts.Iterations(),
		Metrics:       opts.Metrics(),
		ProgressEvery: opts.Progress(),
	}
	if opts.Strategy().BreadthFirst() {
		c.Strategy = BreadthFirst
	}
	return c
}
