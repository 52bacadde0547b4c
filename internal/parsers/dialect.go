package parsers

import (
	"fmt"
	"strings"
	"vrp-instance-service/internal/geometry"
)

// Dialect identifies a benchmark file grammar.
type Dialect int

const (
	DialectAuto Dialect = iota
	DialectCVRP
	DialectCVRPTW
	DialectHFVRP
)

var dialectNames = map[Dialect]string{
	DialectAuto:   "auto",
	DialectCVRP:   "cvrp",
	DialectCVRPTW: "cvrptw",
	DialectHFVRP:  "hfvrp",
}

func (d Dialect) String() string {
	if name, ok := dialectNames[d]; ok {
		return name
	}
	return fmt.Sprintf("dialect(%d)", int(d))
}

// ParseDialect maps a case-insensitive name to a Dialect.
func ParseDialect(s string) (Dialect, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DialectAuto, nil
	}
	for d, name := range dialectNames {
		if name == s {
			return d, nil
		}
	}
	return DialectAuto, fmt.Errorf("parse dialect: unknown dialect %q", s)
}

// Metric returns the distance convention of the dialect's benchmark family.
func (d Dialect) Metric() geometry.Metric {
	switch d {
	case DialectCVRPTW:
		return geometry.FloorOneDecimal{}
	case DialectHFVRP:
		return geometry.RoundedEuclidean{Digits: 3}
	default:
		return geometry.RoundedEuclidean{Digits: 0}
	}
}

// State names a step of a reader's state machine.
type State int

const (
	StateExpectKeyword State = iota
	StateReadHeader
	StateReadCoordinates
	StateReadDemands
	StateReadDepot
	StateReadCustomers
	StateReadFleet
	StateDone
)

var stateNames = map[State]string{
	StateExpectKeyword:   "expect_keyword",
	StateReadHeader:      "read_header",
	StateReadCoordinates: "read_coordinates",
	StateReadDemands:     "read_demands",
	StateReadDepot:       "read_depot",
	StateReadCustomers:   "read_customers",
	StateReadFleet:       "read_fleet",
	StateDone:            "done",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
