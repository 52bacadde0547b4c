package parsers

import (
	"fmt"
	"vrp-instance-service/internal/domain"
)

// Format names of the concrete grammars, including HFVRP sub-dialects.
const (
	FormatCVRP         = "cvrp"
	FormatCVRPTW       = "cvrptw"
	FormatHFVRPClassic = "hfvrp-classic"
	FormatHFVRPLarge   = "hfvrp-large"
)

// RawInstance holds the records read from one file, before the graph is built.
// Points are in file order with the depot first; VehicleTypes ids start at 1.
type RawInstance struct {
	Name         string
	Dialect      Dialect
	Format       string
	Timed        bool
	Points       []domain.Point
	VehicleTypes []domain.VehicleType
}

// FormatDialect maps a format name back to its dialect.
func FormatDialect(format string) (Dialect, error) {
	switch format {
	case FormatCVRP:
		return DialectCVRP, nil
	case FormatCVRPTW:
		return DialectCVRPTW, nil
	case FormatHFVRPClassic, FormatHFVRPLarge:
		return DialectHFVRP, nil
	}
	return DialectAuto, fmt.Errorf("format %q: %w", format, ErrUnknownDialect)
}
