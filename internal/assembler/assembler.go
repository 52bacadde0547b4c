// Package assembler turns raw parsed records into the canonical Instance:
// the complete link list, dense distance (and time) matrices and the
// flattened per-vehicle fleet.
package assembler

import (
	"errors"
	"fmt"
	"strconv"
	"vrp-instance-service/internal/domain"
	"vrp-instance-service/internal/geometry"
	"vrp-instance-service/internal/parsers"

	"github.com/go-playground/validator/v10"
)

// MaxFleetSize bounds the flattened fleet of one instance.
const MaxFleetSize = 1 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

type options struct {
	metric geometry.Metric
}

// Option customizes Build.
type Option func(*options)

// WithMetric overrides the dialect's distance convention.
func WithMetric(m geometry.Metric) Option {
	return func(o *options) { o.metric = m }
}

// Build assembles an Instance from raw records. Every unordered point pair
// gets one Link; the work and memory are O(n²) in the number of points.
//
// For timed instances the time matrix entry (i,j) is distance(i,j) plus the
// service time of point i, so it is asymmetric.
func Build(raw *parsers.RawInstance, opts ...Option) (*domain.Instance, error) {
	if raw == nil {
		return nil, errors.New("build instance: raw instance is nil")
	}
	if len(raw.Points) == 0 {
		return nil, errors.New("build instance: no depot")
	}

	o := options{metric: raw.Dialect.Metric()}
	for _, opt := range opts {
		opt(&o)
	}

	points := append([]domain.Point(nil), raw.Points...)
	for i, p := range points {
		if p.ID != i {
			return nil, fmt.Errorf("build instance: point at position %d has id %d", i, p.ID)
		}
	}

	n := len(points)
	dist := domain.NewMatrix(n)
	var times *domain.Matrix
	if raw.Timed {
		times = domain.NewMatrix(n)
	}

	links := make([]domain.Link, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := o.metric.Distance(points[i].Coordinates, points[j].Coordinates)
			link := domain.Link{
				Name:         "L" + strconv.Itoa(len(links)),
				StartPointID: points[i].ID,
				EndPointID:   points[j].ID,
				Distance:     d,
			}

			dist.Set(i, j, d)
			dist.Set(j, i, d)

			if times != nil {
				link.Time = d
				times.Set(i, j, d+points[i].ServiceTime)
				times.Set(j, i, d+points[j].ServiceTime)
			}
			links = append(links, link)
		}
	}

	types := append([]domain.VehicleType(nil), raw.VehicleTypes...)
	fleetSize := 0
	for _, vt := range types {
		if err := validate.Struct(vt); err != nil {
			return nil, fmt.Errorf("build instance: vehicle type %d: %w", vt.ID, err)
		}
		if vt.MaxNumber > MaxFleetSize-fleetSize {
			return nil, fmt.Errorf("build instance: vehicle type %d: fleet exceeds %d vehicles", vt.ID, MaxFleetSize)
		}
		fleetSize += vt.MaxNumber
	}

	inst := &domain.Instance{
		Name:         raw.Name,
		Dialect:      raw.Format,
		Points:       points,
		VehicleTypes: types,
		Links:        links,
		Distances:    dist,
		Times:        times,
		Fleet:        Flatten(types),
	}

	if err := inst.Validate(); err != nil {
		return nil, fmt.Errorf("build instance: %w", err)
	}
	return inst, nil
}

// Flatten expands vehicle types into one entry per physical vehicle, in type
// order, MaxNumber entries per type.
func Flatten(types []domain.VehicleType) []domain.Vehicle {
	total := 0
	for _, vt := range types {
		total += max(vt.MaxNumber, 0)
	}

	fleet := make([]domain.Vehicle, 0, total)
	for _, vt := range types {
		for k := 0; k < vt.MaxNumber; k++ {
			fleet = append(fleet, domain.Vehicle{
				Index:       len(fleet),
				TypeID:      vt.ID,
				Capacity:    vt.Capacity,
				FixedCost:   vt.FixedCost,
				VarCostDist: vt.VarCostDist,
				VarCostTime: vt.VarCostTime,
			})
		}
	}
	return fleet
}
