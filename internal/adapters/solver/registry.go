package solver

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"vrp-instance-service/internal/ports"
)

var ErrUnknownSolver = errors.New("unknown solver")

var registry = map[string]func() ports.Solver{
	"greedy": func() ports.Solver { return NewGreedy() },
}

// New returns a fresh solver by name.
func New(name string) (ports.Solver, error) {
	f, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("solver %q: %w", name, ErrUnknownSolver)
	}
	return f(), nil
}

// Names lists the registered solvers.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
