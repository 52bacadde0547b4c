package domain

// Immutable planar coordinates of a benchmark point.
type Coordinates struct {
	X float64
	Y float64
}
