package utils

import (
	"flag"
	"fmt"
	"log"
	"strings"
)

type options struct {
	iterations   uint
	progress     uint
	integrand    string
	domain       string
	strategy     string
	task         string
	outputFormat string
	output       string
	trace        bool
	metrics      bool
	noColorize   bool
	httpDebug    bool
	verbose      bool
	visualize    bool

	// Populated by ParseArgs from the domain flag.
	domainBounds [4]float64
	hasDomain    bool
}

const (
	_APPROXIMATE_PI = iota
	_PROBABILITY
	_SEARCH_TO_DOT
)

const (
	_STRATEGY_BEST_FIRST = iota
	_STRATEGY_BREADTH_FIRST
)

func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if opts.noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprintf(strings.Repeat("%s", len(is)), is...)
		}
	}
	return col
}

var task = []struct{ flag, explanation string }{{
	"approximate-pi",
	"Encloses π by bounding the area of the unit quarter-disk",
}, {
	"probability",
	"Encloses the probability that the integrand selected with -integrand is non-negative on the domain",
}, {
	"search-to-dot",
	"Runs the search and renders the tree of examined boxes",
}}

var strategy = []struct{ flag, explanation string }{{
	"best-first",
	"Always refine the box with the largest area next",
}, {
	"breadth-first",
	"Refine boxes in the order they were created",
}}

var opts = &options{}

type optInterface struct{}

type taskInterface struct{}

type strategyInterface struct{}

func Opts() optInterface {
	return optInterface{}
}

func (optInterface) NoColorize() bool {
	return opts.noColorize
}
func (optInterface) Iterations() int {
	return int(opts.iterations)
}
func (optInterface) Progress() int {
	return int(opts.progress)
}
func (optInterface) Integrand() string {
	return opts.integrand
}

// Domain returns the bounds x0, x1, y0, y1 given with -domain.
// The second return value is false if no domain was given.
func (optInterface) Domain() ([4]float64, bool) {
	return opts.domainBounds, opts.hasDomain
}
func (optInterface) OutputFormat() string {
	return opts.outputFormat
}
func (optInterface) Output() string {
	return opts.output
}
func (optInterface) Trace() bool {
	return opts.trace
}
func (optInterface) Metrics() bool {
	return opts.metrics
}
func (optInterface) HttpDebug() bool {
	return opts.httpDebug
}
func (optInterface) Verbose() bool {
	return opts.verbose
}
func (optInterface) Visualize() bool {
	return opts.visualize
}
func (optInterface) Task() taskInterface {
	return taskInterface{}
}
func (taskInterface) IsApproximatePi() bool {
	return opts.task == task[_APPROXIMATE_PI].flag
}
func (taskInterface) IsProbability() bool {
	return opts.task == task[_PROBABILITY].flag
}
func (taskInterface) IsSearchToDot() bool {
	return opts.task == task[_SEARCH_TO_DOT].flag
}
func (optInterface) Strategy() strategyInterface {
	return strategyInterface{}
}
func (strategyInterface) BestFirst() bool {
	return opts.strategy == strategy[_STRATEGY_BEST_FIRST].flag
}
func (strategyInterface) BreadthFirst() bool {
	return opts.strategy == strategy[_STRATEGY_BREADTH_FIRST].flag
}

func init() {
	taskFlag := "\n"
	for _, task := range task {
		taskFlag += task.flag + " -- " + task.explanation + "\n"
	}
	taskFlag += "\n"
	strategyFlag := "\n"
	for _, strategy := range strategy {
		strategyFlag += strategy.flag + " -- " + strategy.explanation + "\n"
	}
	strategyFlag += "\n"

	flag.UintVar(&(opts.iterations), "iterations", 100_000, "Number of boxes examined before the search gives up refining.")
	flag.UintVar(&(opts.progress), "progress", 0, "Report progress every given number of iterations (0 disables progress reports).")
	flag.StringVar(&(opts.integrand), "integrand", "quarter-disk", "Integrand used by the probability task. Use -task=probability -integrand=list to show all integrands.")
	flag.StringVar(&(opts.domain), "domain", "", `Domain box as "x0,x1,y0,y1". Defaults to the domain of the integrand.`)
	flag.StringVar(&(opts.strategy), "strategy", strategy[_STRATEGY_BEST_FIRST].flag, "Order in which boxes are refined. Options:"+strategyFlag)
	flag.StringVar(&(opts.task), "task", task[_APPROXIMATE_PI].flag, "Set the task to do during execution. Options:"+taskFlag)
	flag.StringVar(&(opts.outputFormat), "format", "svg", "output file format [svg | png | jpg | dot]")
	flag.StringVar(&(opts.output), "output", "", "output file name, without extension, for search-to-dot.")
	flag.BoolVar(&(opts.trace), "trace", false, "Log the classification of every examined box")
	flag.BoolVar(&(opts.metrics), "metrics", false, "Enable collection of search metrics")
	flag.BoolVar(&(opts.noColorize), "no-colorize", false, "Disable pretty printer colorization")
	flag.BoolVar(&(opts.verbose), "verbose", false, "enable verbose output")
	flag.BoolVar(&(opts.visualize), "visualize", false, "enable visualization via XDot")
	flag.BoolVar(&(opts.httpDebug), "http-debug", false, "Start an http/pprof server for debugging")

	// Set up logging
	log.SetFlags(log.Ltime | log.Lshortfile)
}

func ParseArgs() {
	// Calling flag.Parse in init messes up unit tests.
	// See https://stackoverflow.com/questions/60235896/flag-provided-but-not-defined-test-v
	flag.Parse()

	validTask := false
	for _, task := range task {
		if task.flag == opts.task {
			validTask = true
			break
		}
	}

	if !validTask {
		log.Fatalf("Value \"%s\" is not valid for -task", opts.task)
	}

	validStrategy := false
	for _, strategy := range strategy {
		if strategy.flag == opts.strategy {
			validStrategy = true
			break
		}
	}

	if !validStrategy {
		log.Fatalf("Value \"%s\" is not valid for -strategy", opts.strategy)
	}

	if opts.domain != "" {
		bounds, err := ParseDomain(opts.domain)
		if err != nil {
			log.Fatalf("Value \"%s\" is not valid for -domain: %v", opts.domain, err)
		}
		opts.domainBounds, opts.hasDomain = bounds, true
	}

	if Opts().Task().IsSearchToDot() {
		opts.noColorize = true
	}
}

func (optInterface) OnVerbose(do func()) {
	if Opts().Verbose() {
		do()
	}
}
