package solver

import (
	"context"
	"fmt"
	"vrp-instance-service/internal/domain"
)

// Declaration kinds recorded by Recorder.
const (
	DeclVehicleType = "vehicle_type"
	DeclDepot       = "depot"
	DeclCustomer    = "customer"
	DeclLink        = "link"
)

type Declaration struct {
	Kind string
	ID   int
	Name string
}

// Recorder is a Solver that only records what it is told.
// Solve returns Result, or an undefined solution when Result is nil.
// FailOn makes the declaration of that kind return an error.
type Recorder struct {
	Declarations []Declaration
	Params       *domain.Parameters
	Result       *domain.Solution
	FailOn       string
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(d Declaration) error {
	if r.FailOn == d.Kind {
		return fmt.Errorf("recorder: %s %d rejected", d.Kind, d.ID)
	}
	r.Declarations = append(r.Declarations, d)
	return nil
}

func (r *Recorder) AddVehicleType(vt domain.VehicleType) error {
	return r.record(Declaration{Kind: DeclVehicleType, ID: vt.ID})
}

func (r *Recorder) AddDepot(p domain.Point) error {
	return r.record(Declaration{Kind: DeclDepot, ID: p.ID})
}

func (r *Recorder) AddCustomer(p domain.Point) error {
	return r.record(Declaration{Kind: DeclCustomer, ID: p.ID})
}

func (r *Recorder) AddLink(l domain.Link) error {
	return r.record(Declaration{Kind: DeclLink, ID: l.StartPointID, Name: l.Name})
}

func (r *Recorder) SetParameters(p domain.Parameters) error {
	r.Params = &p
	return nil
}

func (r *Recorder) Solve(ctx context.Context) (*domain.Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.Result != nil {
		return r.Result, nil
	}
	return &domain.Solution{IsDefined: false, Status: domain.StatusInfeasible}, nil
}

// Count returns how many declarations of kind were recorded.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, d := range r.Declarations {
		if d.Kind == kind {
			n++
		}
	}
	return n
}
