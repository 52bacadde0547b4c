package services

import (
	"context"
	"testing"
	"time"
	"vrp-instance-service/internal/adapters/solver"
	"vrp-instance-service/internal/domain"
	"vrp-instance-service/internal/parsers"
)

func loadTriangle(t *testing.T) *domain.Instance {
	t.Helper()
	inst, err := LoadInstanceFile(context.Background(), "../parsers/testdata/triangle.vrp", parsers.DialectCVRP)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return inst
}

func TestDeclareOrder(t *testing.T) {
	inst := loadTriangle(t)
	rec := solver.NewRecorder()

	if err := Declare(inst, rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	kinds := []string{
		solver.DeclVehicleType,
		solver.DeclDepot,
		solver.DeclCustomer, solver.DeclCustomer,
		solver.DeclLink, solver.DeclLink, solver.DeclLink,
	}
	if len(rec.Declarations) != len(kinds) {
		t.Fatalf("declarations = %d, want %d", len(rec.Declarations), len(kinds))
	}
	for i, k := range kinds {
		if rec.Declarations[i].Kind != k {
			t.Fatalf("declaration %d kind = %q, want %q", i, rec.Declarations[i].Kind, k)
		}
	}
	if rec.Declarations[2].ID != 1 || rec.Declarations[3].ID != 2 {
		t.Fatalf("customers declared out of order: %+v", rec.Declarations[2:4])
	}
	if rec.Declarations[4].Name != "L0" {
		t.Fatalf("first link = %q, want L0", rec.Declarations[4].Name)
	}
}

func TestDeclareStopsOnBuilderError(t *testing.T) {
	inst := loadTriangle(t)
	rec := &solver.Recorder{FailOn: solver.DeclCustomer}

	if err := Declare(inst, rec); err == nil {
		t.Fatal("expected error")
	}
	if rec.Count(solver.DeclLink) != 0 {
		t.Fatalf("links declared after a failed customer")
	}
}

func TestDeclareRejectsEmptyInstance(t *testing.T) {
	if err := Declare(&domain.Instance{}, solver.NewRecorder()); err == nil {
		t.Fatal("expected error")
	}
	if err := Declare(nil, solver.NewRecorder()); err == nil {
		t.Fatal("expected error")
	}
}

func TestSolveInstanceValidatesParameters(t *testing.T) {
	inst := loadTriangle(t)

	cases := []struct {
		name   string
		params domain.Parameters
	}{
		{"missing solver name", domain.Parameters{TimeLimit: time.Second}},
		{"zero time limit", domain.Parameters{SolverName: "greedy"}},
		{"negative time limit", domain.Parameters{SolverName: "greedy", TimeLimit: -time.Second}},
	}
	for _, tc := range cases {
		rec := solver.NewRecorder()
		if _, err := SolveInstance(context.Background(), inst, rec, tc.params); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if len(rec.Declarations) != 0 {
			t.Fatalf("%s: instance declared despite invalid parameters", tc.name)
		}
	}
}

func TestSolveInstance(t *testing.T) {
	inst := loadTriangle(t)
	ub := 12.5
	params := domain.Parameters{SolverName: "recorder", TimeLimit: time.Second, HeuristicUsed: true, UpperBound: &ub}

	rec := solver.NewRecorder()
	rec.Result = &domain.Solution{RunID: "run-1", IsDefined: true, Value: 12, Status: domain.StatusFeasible}

	sol, err := SolveInstance(context.Background(), inst, rec, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sol.Value != 12 {
		t.Fatalf("value = %v, want 12", sol.Value)
	}
	if rec.Params == nil || rec.Params.SolverName != "recorder" || *rec.Params.UpperBound != ub {
		t.Fatalf("parameters not forwarded: %+v", rec.Params)
	}
	if rec.Count(solver.DeclLink) != 3 {
		t.Fatalf("links declared = %d, want 3", rec.Count(solver.DeclLink))
	}

	r := ResultFromSolution(inst, params, sol)
	if r.Instance != "triangle-n3" || r.Solver != "recorder" || !r.Heuristic || r.RunID != "run-1" || r.Value != 12 {
		t.Fatalf("unexpected result record: %+v", r)
	}
}

func TestSolveInstanceWithGreedy(t *testing.T) {
	inst := loadTriangle(t)
	params := domain.Parameters{SolverName: "greedy", TimeLimit: time.Second}

	sol, err := SolveInstance(context.Background(), inst, solver.NewGreedy(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Demands 2 and 3 fit one vehicle: 0 -> 1 -> 2 -> 0 is 3 + 5 + 4.
	if !sol.IsDefined || sol.Value != 12 {
		t.Fatalf("solution = %+v, want defined with value 12", sol)
	}
}
