package main

import (
	"bytes"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	ai "github.com/cs-au-dk/enclosure/analysis/absint"
	L "github.com/cs-au-dk/enclosure/analysis/lattice"
	"github.com/cs-au-dk/enclosure/utils"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"net/http"
	_ "net/http/pprof"
)

var opts = utils.Opts()

func main() {
	utils.ParseArgs()

	if opts.HttpDebug() {
		go func() {
			log.Println(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	config := ai.ConfigFromOpts()
	if opts.Progress() > 0 {
		config.OnProgress = func(p ai.Progress) {
			log.Println(p)
		}
	}
	if opts.Trace() {
		config.OnStep = ai.Trace(os.Stdout)
	}

	opts.OnVerbose(func() {
		log.Printf("Search strategy: %s, iteration budget: %s",
			config.Strategy, humanize.Comma(int64(config.Iterations)))
	})

	start := time.Now()

	switch task := opts.Task(); {
	case task.IsApproximatePi():
		pi, res := config.ApproximatePi()
		fmt.Printf("Pi is between %s and %s.\n",
			color.GreenString("%v", pi.Low()),
			color.GreenString("%v", pi.High()))
		opts.OnVerbose(func() {
			fmt.Println("Enclosure width:", color.YellowString("%g", pi.Width()))
		})
		gatherMetrics(res)

	case task.IsProbability():
		if opts.Integrand() == "list" {
			listIntegrands()
			return
		}

		integrand, domain := selectIntegrand()
		res := config.Search(integrand.Extension, domain)
		printProbability(integrand, domain, res)
		gatherMetrics(res)

	case task.IsSearchToDot():
		searchToDot(config)
	}

	opts.OnVerbose(func() {
		utils.TimeTrack(start, "Task "+color.BlueString("%s", "execution"))
	})
}

// selectIntegrand finds the integrand given with -integrand, and the
// domain given with -domain, defaulting to that of the integrand.
func selectIntegrand() (ai.Integrand, L.Box2D) {
	integrand, err := ai.LookupIntegrand(opts.Integrand())
	if err != nil {
		log.Fatalln(err)
	}

	domain := integrand.Domain
	if bounds, ok := opts.Domain(); ok {
		domain = L.Elements().BoxFinite(bounds[0], bounds[1], bounds[2], bounds[3])
	}
	return integrand, domain
}

func listIntegrands() {
	fmt.Println("Available integrands:")
	for _, integrand := range ai.Integrands() {
		fmt.Printf("  %s -- %s, on %s\n",
			color.HiCyanString(integrand.Name), integrand.Description, integrand.Domain)
	}
}

func printProbability(integrand ai.Integrand, domain L.Box2D, res ai.Result) {
	fmt.Println("Integrand:", color.HiCyanString(integrand.Name), "on", domain)
	fmt.Printf("Non-negative area is between %s and %s.\n",
		color.GreenString("%v", res.Bound.Low()),
		color.GreenString("%v", res.Bound.High()))
	fmt.Printf("%s boxes resolved, %s pending after %s iterations.\n",
		humanize.Comma(int64(res.Resolved.Len())),
		humanize.Comma(int64(len(res.Pending))),
		humanize.Comma(int64(res.Iterations)))

	if domain == integrand.Domain && !math.IsNaN(integrand.Exact) {
		if res.Bound.Contains(integrand.Exact) {
			fmt.Println("Exact value", color.GreenString("%v", integrand.Exact), "is enclosed.")
		} else {
			// Only possible if the interval extension is unsound.
			fmt.Println("Exact value", color.HiRedString("%v", integrand.Exact), "is NOT enclosed.")
		}
	}
}

func searchToDot(config ai.SearchConfig) {
	tree := &ai.SearchTree{}
	trace := config.OnStep
	config.OnStep = func(s ai.Step) {
		tree.Record(s)
		if trace != nil {
			trace(s)
		}
	}

	integrand, domain := selectIntegrand()
	res := config.Search(integrand.Extension, domain)
	log.Printf("Examined %s boxes, bound %s", humanize.Comma(int64(tree.Len())), res.Bound)

	g := tree.ToDot(fmt.Sprintf("%s on %s, %d iterations", integrand.Name, domain, res.Iterations))
	if opts.Visualize() {
		g.ShowDot()
		return
	}

	var buf bytes.Buffer
	if err := g.WriteDot(&buf); err != nil {
		log.Fatalln(err)
	}
	img, err := dotToImage(buf.Bytes())
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Println("Search tree written to", color.HiCyanString(img))
}
