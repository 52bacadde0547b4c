package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInstance marks an Instance that violates a structural invariant.
var ErrInvalidInstance = errors.New("invalid instance")

// Instance is the canonical graph model assembled from one benchmark file.
//
// Points[0] is the depot. Links hold every unordered point pair exactly once.
// Distances is symmetric with a zero diagonal. Times is non-nil only for
// time-windowed instances and folds in the service time of the origin point.
// Fleet expands VehicleTypes into one entry per physical vehicle.
//
// An Instance is immutable after assembly and owns all of its entities.
type Instance struct {
	Name         string
	Dialect      string
	Points       []Point
	VehicleTypes []VehicleType
	Links        []Link
	Distances    *Matrix
	Times        *Matrix
	Fleet        []Vehicle
}

func (in *Instance) Depot() Point { return in.Points[DepotID] }

func (in *Instance) Customers() []Point { return in.Points[DepotID+1:] }

func (in *Instance) Timed() bool { return in.Times != nil }

func (in *Instance) FleetSize() int { return len(in.Fleet) }

// Validate checks every structural invariant of the aggregate.
func (in *Instance) Validate() error {
	if in == nil {
		return fmt.Errorf("validate instance: nil instance: %w", ErrInvalidInstance)
	}

	n := len(in.Points)
	if n == 0 {
		return fmt.Errorf("validate instance: no depot: %w", ErrInvalidInstance)
	}
	for i, p := range in.Points {
		if p.ID != i {
			return fmt.Errorf("validate instance: point at position %d has id %d: %w", i, p.ID, ErrInvalidInstance)
		}
	}

	if in.Distances == nil || in.Distances.Size() != n {
		return fmt.Errorf("validate instance: distance matrix must be %dx%d: %w", n, n, ErrInvalidInstance)
	}
	for i := 0; i < n; i++ {
		if in.Distances.At(i, i) != 0 {
			return fmt.Errorf("validate instance: distance diagonal (%d,%d) is not zero: %w", i, i, ErrInvalidInstance)
		}
		for j := i + 1; j < n; j++ {
			if in.Distances.At(i, j) != in.Distances.At(j, i) {
				return fmt.Errorf("validate instance: distance (%d,%d) is not symmetric: %w", i, j, ErrInvalidInstance)
			}
		}
	}

	if in.Times != nil && in.Times.Size() != n {
		return fmt.Errorf("validate instance: time matrix must be %dx%d: %w", n, n, ErrInvalidInstance)
	}

	if want := n * (n - 1) / 2; len(in.Links) != want {
		return fmt.Errorf("validate instance: %d links, want %d: %w", len(in.Links), want, ErrInvalidInstance)
	}
	seen := make(map[[2]int]struct{}, len(in.Links))
	for _, l := range in.Links {
		a, b := l.StartPointID, l.EndPointID
		if a == b {
			return fmt.Errorf("validate instance: self link on point %d: %w", a, ErrInvalidInstance)
		}
		if a > b {
			a, b = b, a
		}
		if a < 0 || b >= n {
			return fmt.Errorf("validate instance: link %q references unknown point: %w", l.Name, ErrInvalidInstance)
		}
		key := [2]int{a, b}
		if _, ok := seen[key]; ok {
			return fmt.Errorf("validate instance: duplicate link %d-%d: %w", a, b, ErrInvalidInstance)
		}
		seen[key] = struct{}{}
	}

	total := 0
	for i, vt := range in.VehicleTypes {
		if vt.ID != i+1 {
			return fmt.Errorf("validate instance: vehicle type at position %d has id %d: %w", i, vt.ID, ErrInvalidInstance)
		}
		if vt.StartPointID != DepotID || vt.EndPointID != DepotID {
			return fmt.Errorf("validate instance: vehicle type %d does not start and end at the depot: %w", vt.ID, ErrInvalidInstance)
		}
		total += vt.MaxNumber
	}
	if total != len(in.Fleet) {
		return fmt.Errorf("validate instance: fleet has %d vehicles, vehicle types allow %d: %w", len(in.Fleet), total, ErrInvalidInstance)
	}

	return nil
}
