package lattice

type (
	// factory a structure that implements methods from which to access
	// the element factory.
	factory struct{}

	// elementFactory is a structure that implements methods for creating
	// intervals and boxes.
	elementFactory struct{}
)

// elFact is a singleton instantiation of the element factory.
var elFact = elementFactory{}

// Element gives access to the element factory.
func (factory) Element() elementFactory {
	return elFact
}

// Create returns a factory for which the methods are used
// to create intervals and boxes.
func Create() factory {
	return factory{}
}

// Elements is a shorthand for Create().Element().
func Elements() elementFactory {
	return elFact
}
