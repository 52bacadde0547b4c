package api

import (
	"net/http"
	"time"
	"vrp-instance-service/internal/api/handlers"
	"vrp-instance-service/internal/ports"
)

// Dependencies of the HTTP surface. Repo and Results may be nil; the
// endpoints that need them then answer 503.
type Deps struct {
	Repo             ports.InstanceRepository
	Results          ports.ResultStore
	NewSolver        func(name string) (ports.Solver, error)
	DefaultTimeLimit time.Duration
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	instanceHandler := &handlers.InstanceHandler{Repo: d.Repo}
	solveHandler := &handlers.SolveHandler{
		Repo:             d.Repo,
		Results:          d.Results,
		NewSolver:        d.NewSolver,
		DefaultTimeLimit: d.DefaultTimeLimit,
	}
	resultHandler := &handlers.ResultHandler{Results: d.Results}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/instances", instanceHandler.Serve)
	mux.HandleFunc("/solve", solveHandler.Solve)
	mux.HandleFunc("/results", resultHandler.Get)

	return requestIDMiddleware(loggingMiddleware(mux))
}
