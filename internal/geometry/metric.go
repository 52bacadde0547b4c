// Package geometry computes point-to-point distances under the numeric
// conventions used by the benchmark families.
//
// The conventions are not interchangeable: each dialect selects one
// explicitly, and a wrong choice yields a well-formed but numerically wrong
// instance.
package geometry

import (
	"fmt"
	"math"
	"vrp-instance-service/internal/domain"
)

// Metric computes the distance between two points.
// Implementations are pure and safe for concurrent use.
type Metric interface {
	Distance(a, b domain.Coordinates) float64
	String() string
}

// Euclidean returns the full-precision straight-line distance.
func Euclidean(a, b domain.Coordinates) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// RoundedEuclidean rounds the Euclidean distance to Digits decimal places,
// half to even. Digits = 0 yields integral distances.
type RoundedEuclidean struct {
	Digits int
}

func (m RoundedEuclidean) Distance(a, b domain.Coordinates) float64 {
	return Round(Euclidean(a, b), m.Digits)
}

func (m RoundedEuclidean) String() string {
	return fmt.Sprintf("rounded_euclidean(%d)", m.Digits)
}

// FloorOneDecimal truncates the Euclidean distance to one decimal place.
// This is the Solomon time-window benchmark convention.
type FloorOneDecimal struct{}

func (FloorOneDecimal) Distance(a, b domain.Coordinates) float64 {
	return math.Floor(Euclidean(a, b)*10) / 10
}

func (FloorOneDecimal) String() string { return "floor_one_decimal_euclidean" }

// Round rounds v to digits decimal places using round-half-to-even.
func Round(v float64, digits int) float64 {
	if digits <= 0 {
		return math.RoundToEven(v)
	}
	scale := math.Pow(10, float64(digits))
	return math.RoundToEven(v*scale) / scale
}
