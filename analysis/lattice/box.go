package lattice

// Box2D is a closed axis-aligned rectangle x × y.
type Box2D struct {
	x Interval
	y Interval
}

// Box creates the box x × y.
func (elementFactory) Box(x, y Interval) Box2D {
	return Box2D{x: x, y: y}
}

// BoxFinite creates the box [x0, x1] × [y0, y1].
func (elementFactory) BoxFinite(x0, x1, y0, y1 float64) Box2D {
	return Box2D{
		x: elFact.Interval(x0, x1),
		y: elFact.Interval(y0, y1),
	}
}

func (b Box2D) X() Interval {
	return b.x
}

func (b Box2D) Y() Interval {
	return b.y
}

func (b Box2D) String() string {
	return b.x.String() + colorize.Attr("×") + b.y.String()
}

// Area encloses the area of the box. Both side lengths carry rounding
// uncertainty, so the area is itself an interval.
func (b Box2D) Area() Interval {
	return b.x.Length().Mult(b.y.Length())
}

// Contains checks whether the point (px, py) lies in the box.
func (b Box2D) Contains(px, py float64) bool {
	return b.x.Contains(px) && b.y.Contains(py)
}

// Split quarters the box by bisecting both axes. The quarters cover the
// box exactly and only overlap on the bisecting lines. The order is
//
//	(x₁, y₁), (x₁, y₂), (x₂, y₁), (x₂, y₂)
func (b Box2D) Split() [4]Box2D {
	x1, x2 := b.x.Split()
	y1, y2 := b.y.Split()
	return [4]Box2D{
		{x: x1, y: y1},
		{x: x1, y: y2},
		{x: x2, y: y1},
		{x: x2, y: y2},
	}
}
