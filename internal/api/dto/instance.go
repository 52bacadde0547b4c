package dto

import "time"

type ParseRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Dialect string `json:"dialect" validate:"omitempty,oneof=auto cvrp cvrptw hfvrp"`
	Content string `json:"content" validate:"required"`

	// IncludeMatrix adds the dense distance and time matrices to the response.
	IncludeMatrix bool `json:"include_matrix"`
}

// FleetResponse lists one entry per physical vehicle.
type FleetResponse struct {
	Capacities []int     `json:"capacities"`
	FixedCosts []float64 `json:"fixed_costs"`
	VarCosts   []float64 `json:"var_costs"`
}

type InstanceResponse struct {
	Name         string `json:"name"`
	Dialect      string `json:"dialect"`
	Points       int    `json:"points"`
	Customers    int    `json:"customers"`
	VehicleTypes int    `json:"vehicle_types"`
	FleetSize    int    `json:"fleet_size"`
	Links        int    `json:"links"`
	Timed        bool   `json:"timed"`
	Saved        bool   `json:"saved"`

	Fleet     FleetResponse `json:"fleet"`
	Distances [][]float64   `json:"distances,omitempty"`
	Times     [][]float64   `json:"times,omitempty"`
}

type InstanceSummaryResponse struct {
	Name         string    `json:"name"`
	Dialect      string    `json:"dialect"`
	Points       int       `json:"points"`
	VehicleTypes int       `json:"vehicle_types"`
	FleetSize    int       `json:"fleet_size"`
	Timed        bool      `json:"timed"`
	LoadedAt     time.Time `json:"loaded_at"`
}

type ListInstancesResponse struct {
	Instances []InstanceSummaryResponse `json:"instances"`
}
