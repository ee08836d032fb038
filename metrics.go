package main

import (
	"fmt"

	ai "github.com/cs-au-dk/enclosure/analysis/absint"
	"github.com/cs-au-dk/enclosure/utils/dot"

	"github.com/fatih/color"
)

func gatherMetrics(res ai.Result) {
	if !opts.Metrics() || !res.Metrics.Enabled() {
		return
	}

	msg := "================ Results =====================\n\n"
	msg += res.Metrics.String()
	msg += "Lower bound: " + res.Lower.String() + "\n"
	msg += "Upper bound: " + res.Upper.String() + "\n"

	var colorize func(string, ...interface{}) string
	switch width := res.Bound.Width(); {
	case width <= 1e-3:
		colorize = color.GreenString
	case width <= 1e-2:
		colorize = color.YellowString
	default:
		colorize = color.HiRedString
	}
	msg += "Enclosure width: " + colorize("%g", res.Bound.Width()) + "\n"

	fmt.Println(msg)
}

func dotToImage(src []byte) (string, error) {
	return dot.DotToImage(opts.Output(), opts.OutputFormat(), src)
}
