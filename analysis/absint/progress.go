package absint

import (
	"fmt"

	L "github.com/cs-au-dk/enclosure/analysis/lattice"

	"github.com/benbjohnson/immutable"
	"github.com/dustin/go-humanize"
)

// Progress is a snapshot of a running search.
type Progress struct {
	// Iteration is the number of boxes examined so far.
	Iteration int
	Budget    int
	// Resolved is a persistent snapshot of the resolved boxes. Later
	// iterations of the search do not affect it.
	Resolved *immutable.List[L.Box2D]
	// Pending is the number of boxes awaiting refinement.
	Pending int
	// Done is set for the final report of a search.
	Done bool
}

// Lower encloses the area of the boxes resolved at the time of the snapshot.
func (p Progress) Lower() L.Interval {
	return sumAreas(p.Resolved)
}

func (p Progress) String() string {
	percent := 100.0
	if p.Budget > 0 {
		percent = float64(p.Iteration) / float64(p.Budget) * 100
	}
	return fmt.Sprintf("%s/%s iterations (%.1f%%), %s resolved, %s pending",
		humanize.Comma(int64(p.Iteration)),
		humanize.Comma(int64(p.Budget)),
		percent,
		humanize.Comma(int64(p.Resolved.Len())),
		humanize.Comma(int64(p.Pending)))
}
