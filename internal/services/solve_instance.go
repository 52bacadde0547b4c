package services

import (
	"context"
	"errors"
	"fmt"
	"vrp-instance-service/internal/domain"
	"vrp-instance-service/internal/platform/obs"
	"vrp-instance-service/internal/ports"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// SolveInstance validates params, declares inst to solver and runs it under
// a deadline of params.TimeLimit.
func SolveInstance(
	ctx context.Context,
	inst *domain.Instance,
	solver ports.Solver,
	params domain.Parameters,
) (_ *domain.Solution, err error) {
	defer obs.Time(ctx, "instance.solve")(&err)

	if solver == nil {
		return nil, errors.New("solve instance: solver must be non-nil")
	}
	if err := validate.Struct(params); err != nil {
		return nil, fmt.Errorf("solve instance: invalid parameters: %w", err)
	}

	if err := solver.SetParameters(params); err != nil {
		return nil, fmt.Errorf("solve instance: set parameters: %w", err)
	}
	if err := Declare(inst, solver); err != nil {
		return nil, fmt.Errorf("solve instance: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, params.TimeLimit)
	defer cancel()

	sol, err := solver.Solve(ctx)
	if err != nil {
		return nil, fmt.Errorf("solve instance %q: %w", inst.Name, err)
	}
	return sol, nil
}

// ResultFromSolution flattens a solve outcome into the record kept by a
// ResultStore.
func ResultFromSolution(inst *domain.Instance, params domain.Parameters, sol *domain.Solution) ports.ResultRecord {
	return ports.ResultRecord{
		RunID:        sol.RunID,
		Instance:     inst.Name,
		Solver:       params.SolverName,
		Heuristic:    params.HeuristicUsed,
		Defined:      sol.IsDefined,
		Value:        sol.Value,
		SolutionTime: sol.Statistics.SolutionTime,
		BestLB:       sol.Statistics.BestLB,
		RootLB:       sol.Statistics.RootLB,
		RootTime:     sol.Statistics.RootTime,
		Nodes:        sol.Statistics.NodeCount,
		Status:       sol.Status,
	}
}
