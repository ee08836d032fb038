package absint

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	L "github.com/cs-au-dk/enclosure/analysis/lattice"
)

func TestLookupIntegrand(t *testing.T) {
	for _, integrand := range Integrands() {
		found, err := LookupIntegrand(integrand.Name)
		if err != nil {
			t.Errorf("%s: %v", integrand.Name, err)
		} else if found.Name != integrand.Name {
			t.Errorf("looking up %s yields %s", integrand.Name, found.Name)
		}
	}

	if _, err := LookupIntegrand("saddle"); !errors.Is(err, errUnknownIntegrand) {
		t.Errorf("looking up an unknown integrand yields %v", err)
	}

	if !sort.SliceIsSorted(Integrands(), func(i, j int) bool {
		return Integrands()[i].Name < Integrands()[j].Name
	}) {
		t.Errorf("integrands are not sorted by name")
	}
}

// The catalogue extensions enclose their function on random boxes.
func TestIntegrandsAreExtensions(t *testing.T) {
	r := rand.New(rand.NewSource(5))

	scalar := map[string]func(x, y float64) float64{
		"quarter-disk":      func(x, y float64) float64 { return 1 - x*x - y*y },
		"half-plane":        func(x, y float64) float64 { return x - y },
		"vertical-line":     func(x, y float64) float64 { return x - 0.5 },
		"constant-positive": func(x, y float64) float64 { return 1 },
		"constant-negative": func(x, y float64) float64 { return -1 },
	}

	for _, integrand := range Integrands() {
		f, ok := scalar[integrand.Name]
		if !ok {
			t.Fatalf("no scalar version of %s", integrand.Name)
		}

		for i := 0; i < 1000; i++ {
			x0, x1 := r.Float64(), r.Float64()
			y0, y1 := r.Float64(), r.Float64()
			if x0 > x1 {
				x0, x1 = x1, x0
			}
			if y0 > y1 {
				y0, y1 = y1, y0
			}
			box := L.Elements().BoxFinite(x0, x1, y0, y1)

			px := x0 + r.Float64()*(x1-x0)
			py := y0 + r.Float64()*(y1-y0)
			if !box.Contains(px, py) {
				continue
			}

			if v := f(px, py); !integrand.Extension(box).Contains(v) {
				t.Fatalf("%s(%v, %v) = %v ∉ %s", integrand.Name, px, py, v, integrand.Extension(box))
			}
		}
	}
}
