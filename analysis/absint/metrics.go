package absint

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Metrics encodes mechanisms for logging search metrics.
type Metrics struct {
	iterations   int
	resolved     int
	split        int
	dropped      int
	peakFrontier int
	time         time.Duration
	timer        time.Time
	Outcome      string
}

// Encoding of metric outcomes.
var (
	OUTCOME_EXHAUSTED = "Worklist exhausted"
	OUTCOME_BUDGET    = "Iteration budget reached"
)

// initMetrics returns a fresh Metrics object if enabled in the
// configuration, and nil otherwise.
func (c SearchConfig) initMetrics() *Metrics {
	if !c.Metrics {
		return nil
	}
	return &Metrics{
		peakFrontier: 1,
		timer:        time.Now(),
	}
}

// Enabled checks whether the Metrics object is available.
func (m *Metrics) Enabled() bool {
	return m != nil
}

// record accounts for the classification of a box, after which the
// frontier holds the given number of boxes.
func (m *Metrics) record(class Classification, frontier int) {
	if m == nil {
		return
	}
	m.iterations++
	switch class {
	case Nonnegative:
		m.resolved++
	case Ambiguous:
		m.split++
	case Negative:
		m.dropped++
	}
	m.peakFrontier = max(m.peakFrontier, frontier)
}

// done stops the timer and determines the outcome.
func (m *Metrics) done(exhausted bool) {
	if m == nil {
		return
	}
	m.time = time.Since(m.timer)
	if exhausted {
		m.Outcome = OUTCOME_EXHAUSTED
	} else {
		m.Outcome = OUTCOME_BUDGET
	}
}

func (m *Metrics) Iterations() int {
	if m == nil {
		return 0
	}
	return m.iterations
}

func (m *Metrics) Resolved() int {
	if m == nil {
		return 0
	}
	return m.resolved
}

func (m *Metrics) Split() int {
	if m == nil {
		return 0
	}
	return m.split
}

func (m *Metrics) Dropped() int {
	if m == nil {
		return 0
	}
	return m.dropped
}

// PeakFrontier is the largest number of simultaneously pending boxes.
func (m *Metrics) PeakFrontier() int {
	if m == nil {
		return 0
	}
	return m.peakFrontier
}

// Performance returns the search running time.
func (m *Metrics) Performance() string {
	if m == nil {
		return ""
	}
	return m.time.String()
}

func (m *Metrics) String() string {
	if m == nil {
		return "Metrics disabled"
	}
	return fmt.Sprintf("Outcome: %s\nTime: %s\nIterations: %s\n"+
		"  non-negative: %s\n  ambiguous: %s\n  negative: %s\nPeak frontier: %s\n",
		m.Outcome,
		m.Performance(),
		humanize.Comma(int64(m.iterations)),
		humanize.Comma(int64(m.resolved)),
		humanize.Comma(int64(m.split)),
		humanize.Comma(int64(m.dropped)),
		humanize.Comma(int64(m.peakFrontier)))
}
