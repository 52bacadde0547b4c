package ports

import (
	"context"
	"errors"
	"time"
	"vrp-instance-service/internal/domain"
	"vrp-instance-service/internal/parsers"
)

var ErrInstanceNotFound = errors.New("instance not found")

// Catalog entry for a stored instance.
type InstanceSummary struct {
	Name         string
	Dialect      string
	Points       int
	VehicleTypes int
	FleetSize    int
	Timed        bool
	LoadedAt     time.Time
}

// Port: persistence for parsed instances.
//
// Only points and vehicle types are stored; links and matrices are derived
// and rebuilt by the assembler on load.
type InstanceRepository interface {
	// Insert or replace the instance under its name.
	SaveInstance(ctx context.Context, inst *domain.Instance) error
	// List catalog entries ordered by name.
	ListInstances(ctx context.Context) ([]InstanceSummary, error)
	// Return the stored records of one instance or ErrInstanceNotFound.
	GetInstance(ctx context.Context, name string) (*parsers.RawInstance, error)
}
