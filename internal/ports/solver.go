package ports

import (
	"context"
	"vrp-instance-service/internal/domain"
)

// Solver builds its model from declarations and then searches for a solution.
// Solve must honor ctx cancellation in addition to Parameters.TimeLimit.
type Solver interface {
	ModelBuilder
	SetParameters(p domain.Parameters) error
	Solve(ctx context.Context) (*domain.Solution, error)
}
