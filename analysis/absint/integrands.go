package absint

import (
	"fmt"
	"math"
	"sort"

	L "github.com/cs-au-dk/enclosure/analysis/lattice"
)

// Integrand is a named interval extension, together with the domain it
// is usually studied on.
type Integrand struct {
	Name        string
	Description string
	Extension   Extension
	Domain      L.Box2D
	// Exact is the area of the part of Domain on which the function is
	// non-negative, or NaN if unknown.
	Exact float64
}

var (
	one  = L.Elements().Singleton(1)
	half = L.Elements().Singleton(0.5)
)

// UnitSquare is [0, 1] × [0, 1].
func UnitSquare() L.Box2D {
	return L.Elements().BoxFinite(0, 1, 0, 1)
}

// QuarterDisk extends 1 - x² - y², which is non-negative exactly on the
// unit disk.
func QuarterDisk(b L.Box2D) L.Interval {
	return one.Minus(b.X().Mult(b.X())).Minus(b.Y().Mult(b.Y()))
}

// HalfPlane extends x - y.
func HalfPlane(b L.Box2D) L.Interval {
	return b.X().Minus(b.Y())
}

// VerticalLine extends x - 1/2.
func VerticalLine(b L.Box2D) L.Interval {
	return b.X().Minus(half)
}

// Constant extends the constant function c.
func Constant(c float64) Extension {
	i := L.Elements().Singleton(c)
	return func(L.Box2D) L.Interval {
		return i
	}
}

var integrands = map[string]Integrand{
	"quarter-disk": {
		Name:        "quarter-disk",
		Description: "1 - x² - y², non-negative on a quarter of the unit disk (π/4)",
		Extension:   QuarterDisk,
		Domain:      UnitSquare(),
		Exact:       math.Pi / 4,
	},
	"half-plane": {
		Name:        "half-plane",
		Description: "x - y, non-negative below the diagonal (1/2)",
		Extension:   HalfPlane,
		Domain:      UnitSquare(),
		Exact:       0.5,
	},
	"vertical-line": {
		Name:        "vertical-line",
		Description: "x - 1/2, non-negative on the right half (1/2)",
		Extension:   VerticalLine,
		Domain:      UnitSquare(),
		Exact:       0.5,
	},
	"constant-positive": {
		Name:        "constant-positive",
		Description: "1, non-negative everywhere (1)",
		Extension:   Constant(1),
		Domain:      UnitSquare(),
		Exact:       1,
	},
	"constant-negative": {
		Name:        "constant-negative",
		Description: "-1, negative everywhere (0)",
		Extension:   Constant(-1),
		Domain:      UnitSquare(),
		Exact:       0,
	},
}

// Integrands lists the catalogue of integrands, sorted by name.
func Integrands() []Integrand {
	res := make([]Integrand, 0, len(integrands))
	for _, i := range integrands {
		res = append(res, i)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Name < res[j].Name
	})
	return res
}

// LookupIntegrand finds the integrand with the given name.
func LookupIntegrand(name string) (Integrand, error) {
	i, ok := integrands[name]
	if !ok {
		return Integrand{}, fmt.Errorf("%w: %q", errUnknownIntegrand, name)
	}
	return i, nil
}
