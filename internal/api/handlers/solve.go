package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"
	"vrp-instance-service/internal/api/dto"
	"vrp-instance-service/internal/assembler"
	"vrp-instance-service/internal/domain"
	"vrp-instance-service/internal/parsers"
	"vrp-instance-service/internal/ports"
	"vrp-instance-service/internal/services"
)

const defaultSolver = "greedy"

type SolveHandler struct {
	Repo             ports.InstanceRepository
	Results          ports.ResultStore
	NewSolver        func(name string) (ports.Solver, error)
	DefaultTimeLimit time.Duration
}

// Solve loads an instance (from the catalog or inline content), runs the
// requested solver and records the outcome.
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}

	var req dto.SolveRequest
	if !decodeBody(w, r, &req) {
		return
	}

	inst, ok := h.load(w, r, req)
	if !ok {
		return
	}

	name := req.Solver
	if name == "" {
		name = defaultSolver
	}
	if h.NewSolver == nil {
		writeError(w, r, http.StatusServiceUnavailable, "solver not configured")
		return
	}
	s, err := h.NewSolver(name)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	limit := h.DefaultTimeLimit
	if req.TimeLimitSeconds > 0 {
		limit = time.Duration(req.TimeLimitSeconds * float64(time.Second))
	}
	if limit <= 0 {
		limit = time.Minute
	}

	params := domain.Parameters{
		SolverName:    name,
		TimeLimit:     limit,
		HeuristicUsed: req.Heuristic,
		UpperBound:    req.UpperBound,
	}

	sol, err := services.SolveInstance(r.Context(), inst, s, params)
	if err != nil {
		log.Printf("solve failed: instance=%s solver=%s err=%v", inst.Name, name, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	improved := false
	if h.Results != nil {
		improved, err = h.Results.Record(r.Context(), services.ResultFromSolution(inst, params, sol))
		if err != nil {
			// The solve itself succeeded; a lost record is logged only.
			log.Printf("record result failed: instance=%s run_id=%s err=%v", inst.Name, sol.RunID, err)
		}
	}

	res := dto.SolveResponse{
		RunID:          sol.RunID,
		Instance:       inst.Name,
		Solver:         name,
		Status:         sol.Status,
		Defined:        sol.IsDefined,
		Value:          sol.Value,
		SolutionTimeMS: sol.Statistics.SolutionTime.Milliseconds(),
		Improved:       improved,
		Routes:         make([]dto.RouteResponse, 0, len(sol.Routes)),
	}
	for _, rt := range sol.Routes {
		res.Routes = append(res.Routes, dto.RouteResponse{
			Vehicle:       rt.VehicleIndex,
			VehicleTypeID: rt.VehicleTypeID,
			Customers:     rt.PointIDs,
			Load:          rt.Load,
			Distance:      rt.Distance,
			Cost:          rt.Cost,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *SolveHandler) load(w http.ResponseWriter, r *http.Request, req dto.SolveRequest) (*domain.Instance, bool) {
	if req.Content != "" {
		d, err := parsers.ParseDialect(req.Dialect)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return nil, false
		}
		name := req.Instance
		if name == "" {
			name = "inline"
		}
		inst, err := services.LoadInstance(r.Context(), name, d, req.Content)
		if err != nil {
			writeParseError(w, r, err)
			return nil, false
		}
		return inst, true
	}

	if h.Repo == nil {
		writeError(w, r, http.StatusServiceUnavailable, "instance catalog not configured")
		return nil, false
	}

	raw, err := h.Repo.GetInstance(r.Context(), req.Instance)
	if errors.Is(err, ports.ErrInstanceNotFound) {
		writeError(w, r, http.StatusNotFound, "instance not found")
		return nil, false
	}
	if err != nil {
		log.Printf("get instance failed: name=%s err=%v", req.Instance, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return nil, false
	}

	inst, err := assembler.Build(raw)
	if err != nil {
		log.Printf("rebuild instance failed: name=%s err=%v", req.Instance, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return nil, false
	}
	return inst, true
}
