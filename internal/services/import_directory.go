package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"vrp-instance-service/internal/parsers"
	"vrp-instance-service/internal/platform/obs"
	"vrp-instance-service/internal/ports"

	"golang.org/x/sync/errgroup"
)

// ImportFailure is a file that could not be parsed.
type ImportFailure struct {
	File string
	Err  error
}

type ImportReport struct {
	Imported []string
	Failed   []ImportFailure
}

// ImportDirectory loads every regular, non-hidden file in dir and saves the
// instances to repo, with at most workers parses in flight.
//
// A file that fails to parse is reported in Failed and does not stop the
// import. A repository error cancels the remaining work and is returned.
func ImportDirectory(
	ctx context.Context,
	dir string,
	d parsers.Dialect,
	workers int,
	repo ports.InstanceRepository,
) (_ *ImportReport, err error) {
	defer obs.Time(ctx, "instance.import")(&err)

	if repo == nil {
		return nil, errors.New("import directory: repository must be non-nil")
	}
	if workers < 1 {
		workers = 1
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("import directory: read %q: %w", dir, err)
	}

	var (
		mu     sync.Mutex
		report = &ImportReport{}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		e := e
		path := filepath.Join(dir, e.Name())

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			inst, err := LoadInstanceFile(gctx, path, d)
			if err != nil {
				log.Printf("import directory: skip file=%s err=%v", path, err)
				mu.Lock()
				report.Failed = append(report.Failed, ImportFailure{File: e.Name(), Err: err})
				mu.Unlock()
				return nil
			}

			if err := repo.SaveInstance(gctx, inst); err != nil {
				return fmt.Errorf("import directory: save %q: %w", inst.Name, err)
			}

			mu.Lock()
			report.Imported = append(report.Imported, inst.Name)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.Sort(report.Imported)
	slices.SortFunc(report.Failed, func(a, b ImportFailure) int { return strings.Compare(a.File, b.File) })
	return report, nil
}
