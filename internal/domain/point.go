package domain

// DepotID is the id of the depot; it is always the first point.
const DepotID = 0

// Represents a location of the routing graph: the depot or a customer.
// Ids are dense zero-based positions in the input. For time-windowed
// instances TWEnd of a customer already includes its service time.
// A Point is created once during parsing and never mutated.
type Point struct {
	ID int
	Coordinates
	Demand      int
	ServiceTime float64
	TWBegin     float64
	TWEnd       float64
}

func (p Point) IsDepot() bool { return p.ID == DepotID }
