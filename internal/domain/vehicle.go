package domain

import "fmt"

// A single physical vehicle of the flattened fleet.
// Types with MaxNumber k contribute k consecutive vehicles.
type Vehicle struct {
	Index       int
	TypeID      int
	Capacity    int
	FixedCost   float64
	VarCostDist float64
	VarCostTime float64
}

// Mutable load state of one vehicle during route construction.
type LoadedVehicle struct {
	Vehicle
	Load     int
	PointIDs []int
}

func NewLoadedVehicle(v Vehicle) *LoadedVehicle {
	return &LoadedVehicle{Vehicle: v}
}

// Fits reports whether a demand can be added without exceeding capacity.
func (v *LoadedVehicle) Fits(demand int) bool {
	return v.Load+demand <= v.Capacity
}

// Load a single customer onto the vehicle.
func (v *LoadedVehicle) Visit(p Point) error {
	if p.IsDepot() {
		return fmt.Errorf("load vehicle: vehicle %d cannot visit the depot as a customer", v.Index)
	}
	if !v.Fits(p.Demand) {
		return fmt.Errorf(
			"load vehicle: vehicle %d is at capacity (capacity=%d load=%d demand=%d)",
			v.Index, v.Capacity, v.Load, p.Demand,
		)
	}
	v.Load += p.Demand
	v.PointIDs = append(v.PointIDs, p.ID)
	return nil
}

// Capacities returns one capacity entry per physical vehicle.
func Capacities(fleet []Vehicle) []int {
	out := make([]int, len(fleet))
	for i, v := range fleet {
		out[i] = v.Capacity
	}
	return out
}

// FixedCosts returns one fixed cost entry per physical vehicle.
func FixedCosts(fleet []Vehicle) []float64 {
	out := make([]float64, len(fleet))
	for i, v := range fleet {
		out[i] = v.FixedCost
	}
	return out
}

// VarCosts returns one distance cost entry per physical vehicle.
func VarCosts(fleet []Vehicle) []float64 {
	out := make([]float64, len(fleet))
	for i, v := range fleet {
		out[i] = v.VarCostDist
	}
	return out
}
