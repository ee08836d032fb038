package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var errMalformedDomain = errors.New("malformed domain")

// ParseDomain parses a box given as "x0,x1,y0,y1" into its four bounds.
// Bounds must be finite, with x0 ≤ x1 and y0 ≤ y1.
func ParseDomain(s string) (bounds [4]float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return bounds, fmt.Errorf("%w: expected 4 comma separated bounds, found %d", errMalformedDomain, len(parts))
	}

	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return bounds, fmt.Errorf("%w: bound %d: %v", errMalformedDomain, i, err)
		}
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return bounds, fmt.Errorf("%w: bound %d is not finite", errMalformedDomain, i)
		}
		bounds[i] = v
	}

	if bounds[0] > bounds[1] {
		return bounds, fmt.Errorf("%w: x0 = %v exceeds x1 = %v", errMalformedDomain, bounds[0], bounds[1])
	}
	if bounds[2] > bounds[3] {
		return bounds, fmt.Errorf("%w: y0 = %v exceeds y1 = %v", errMalformedDomain, bounds[2], bounds[3])
	}

	return bounds, nil
}
