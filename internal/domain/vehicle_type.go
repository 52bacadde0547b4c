package domain

// Describes one kind of vehicle of the fleet.
// Ids start at 1; 0 is reserved. Vehicles start and end at the depot.
// Time-window fields are only meaningful for time-windowed instances.
type VehicleType struct {
	ID           int     `validate:"gte=1"`
	StartPointID int     `validate:"eq=0"`
	EndPointID   int     `validate:"eq=0"`
	Capacity     int     `validate:"gte=0"`
	MaxNumber    int     `validate:"gte=0"`
	FixedCost    float64 `validate:"gte=0"`
	VarCostDist  float64 `validate:"gte=0"`
	VarCostTime  float64 `validate:"gte=0"`
	TWBegin      float64
	TWEnd        float64
	ServiceTime  float64
}
