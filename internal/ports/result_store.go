package ports

import (
	"context"
	"errors"
	"time"
)

var ErrNoResult = errors.New("no result recorded")

// One solve outcome, as printed on the result line.
type ResultRecord struct {
	RunID        string
	Instance     string
	Solver       string
	Heuristic    bool
	Defined      bool
	Value        float64
	SolutionTime time.Duration
	BestLB       float64
	RootLB       float64
	RootTime     time.Duration
	Nodes        int
	Status       string
	RecordedAt   time.Time
}

// Port: best-known results per instance.
type ResultStore interface {
	// Record stores r and reports whether it improved the best known value.
	Record(ctx context.Context, r ResultRecord) (improved bool, err error)
	// Best returns the lowest-value defined record for instance or ErrNoResult.
	Best(ctx context.Context, instance string) (ResultRecord, error)
	// Recent returns up to limit records for instance, newest first.
	Recent(ctx context.Context, instance string, limit int) ([]ResultRecord, error)
}
