package dto

import "time"

// SolveRequest names a catalog instance or carries the file content inline.
type SolveRequest struct {
	Instance         string   `json:"instance" validate:"required_without=Content"`
	Content          string   `json:"content" validate:"required_without=Instance"`
	Dialect          string   `json:"dialect" validate:"omitempty,oneof=auto cvrp cvrptw hfvrp"`
	Solver           string   `json:"solver"`
	TimeLimitSeconds float64  `json:"time_limit_seconds" validate:"gte=0,lte=3600"`
	Heuristic        bool     `json:"heuristic"`
	UpperBound       *float64 `json:"upper_bound" validate:"omitempty,gte=0"`
}

type RouteResponse struct {
	Vehicle       int     `json:"vehicle"`
	VehicleTypeID int     `json:"vehicle_type_id"`
	Customers     []int   `json:"customers"`
	Load          int     `json:"load"`
	Distance      float64 `json:"distance"`
	Cost          float64 `json:"cost"`
}

type SolveResponse struct {
	RunID          string          `json:"run_id"`
	Instance       string          `json:"instance"`
	Solver         string          `json:"solver"`
	Status         string          `json:"status"`
	Defined        bool            `json:"defined"`
	Value          float64         `json:"value"`
	SolutionTimeMS int64           `json:"solution_time_ms"`
	Improved       bool            `json:"improved"`
	Routes         []RouteResponse `json:"routes"`
}

type ResultResponse struct {
	RunID          string    `json:"run_id"`
	Solver         string    `json:"solver"`
	Heuristic      bool      `json:"heuristic"`
	Defined        bool      `json:"defined"`
	Value          float64   `json:"value"`
	Status         string    `json:"status"`
	SolutionTimeMS int64     `json:"solution_time_ms"`
	RecordedAt     time.Time `json:"recorded_at"`
}

type ResultsResponse struct {
	Instance string           `json:"instance"`
	Best     *ResultResponse  `json:"best"`
	Recent   []ResultResponse `json:"recent"`
}
