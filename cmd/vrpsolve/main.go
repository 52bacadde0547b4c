package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
	"vrp-instance-service/internal/adapters/results"
	"vrp-instance-service/internal/adapters/solver"
	"vrp-instance-service/internal/adapters/source"
	"vrp-instance-service/internal/config"
	"vrp-instance-service/internal/domain"
	"vrp-instance-service/internal/parsers"
	"vrp-instance-service/internal/ports"
	"vrp-instance-service/internal/services"

	"github.com/redis/go-redis/v9"
)

const header = "instance_name solver_name ext_heuristic solution_value solution_time best_lb root_lb root_time nb_branch_and_bound_nodes status"

// vrpsolve loads one benchmark file, solves it and prints the result line.
//
//	vrpsolve -i data/A-n32-k5.vrp [-d cvrp] [-s greedy] [-e 30] [-b yes] [-u 784] [-p /opt/solver]
func main() {
	config.Load()

	if err := run(context.Background(), os.Args[1:], os.Stdout, nil); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	instancePath string
	dialect      parsers.Dialect
	params       domain.Parameters
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("vrpsolve", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		path       = fs.String("i", "", "instance file path")
		dialect    = fs.String("d", "auto", "instance dialect: auto, cvrp, cvrptw, hfvrp")
		solverName = fs.String("s", "greedy", "solver name ("+strings.Join(solver.Names(), ", ")+")")
		seconds    = fs.Float64("e", config.GetDuration("SOLVE_TIME_LIMIT", 30*time.Second).Seconds(), "time limit in seconds")
		disable    = fs.String("b", "no", "disable the built-in heuristic: yes or no")
		bound      = fs.Float64("u", -1, "upper bound, -1 for none")
		solverPath = fs.String("p", "", "external solver binary path")
	)
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if strings.TrimSpace(*path) == "" {
		return options{}, errors.New("vrpsolve: -i instance path is required")
	}
	d, err := parsers.ParseDialect(*dialect)
	if err != nil {
		return options{}, fmt.Errorf("vrpsolve: %w", err)
	}
	if *seconds <= 0 {
		return options{}, fmt.Errorf("vrpsolve: time limit must be positive, got %v", *seconds)
	}

	o := options{
		instancePath: *path,
		dialect:      d,
		params: domain.Parameters{
			SolverName:    *solverName,
			TimeLimit:     time.Duration(*seconds * float64(time.Second)),
			HeuristicUsed: *disable != "yes",
			SolverPath:    *solverPath,
		},
	}
	if *bound != -1 {
		ub := *bound
		o.params.UpperBound = &ub
	}
	return o, nil
}

// run solves one instance. store may be nil; when REDIS_ADDR is set and no
// store is given, results are recorded in Redis.
func run(ctx context.Context, args []string, stdout io.Writer, store ports.ResultStore) error {
	o, err := parseArgs(args, os.Stderr)
	if err != nil {
		return err
	}

	if o.params.HeuristicUsed {
		fmt.Fprintln(stdout, "Built-in heuristic is enabled")
	} else {
		fmt.Fprintln(stdout, "Built-in heuristic is disabled")
	}

	inst, err := load(ctx, o)
	if err != nil {
		return err
	}

	s, err := solver.New(o.params.SolverName)
	if err != nil {
		return err
	}
	sol, err := services.SolveInstance(ctx, inst, s, o.params)
	if err != nil {
		return err
	}

	if store == nil {
		if addr := config.Get("REDIS_ADDR", ""); addr != "" {
			client := redis.NewClient(&redis.Options{Addr: addr})
			defer client.Close()
			store = results.NewRedisStore(client)
		}
	}
	if store != nil {
		if _, err := store.Record(ctx, services.ResultFromSolution(inst, o.params, sol)); err != nil {
			log.Printf("record result failed: instance=%s err=%v", inst.Name, err)
		}
	}

	if !sol.IsDefined {
		fmt.Fprintf(stdout, "%s: no solution (status=%s)\n", o.instancePath, sol.Status)
		return nil
	}

	fmt.Fprintln(stdout, header)
	fmt.Fprintln(stdout, resultLine(o.instancePath, o.params, sol))
	return nil
}

// load reads -i from disk, or downloads it when it is an http(s) URL.
func load(ctx context.Context, o options) (*domain.Instance, error) {
	if strings.HasPrefix(o.instancePath, "http://") || strings.HasPrefix(o.instancePath, "https://") {
		src := source.NewHTTPSource(config.GetDuration("FETCH_TIMEOUT", 30*time.Second))
		return services.LoadInstanceFrom(ctx, src, o.instancePath, o.dialect)
	}
	return services.LoadInstanceFile(ctx, o.instancePath, o.dialect)
}

// resultLine formats the ten space-separated result columns. ext_heuristic
// reports whether an external upper bound was supplied.
func resultLine(path string, p domain.Parameters, sol *domain.Solution) string {
	st := sol.Statistics
	cols := []string{
		path,
		p.SolverName,
		strconv.FormatBool(p.UpperBound != nil),
		strconv.FormatFloat(sol.Value, 'f', -1, 64),
		strconv.FormatFloat(st.SolutionTime.Seconds(), 'f', 3, 64),
		strconv.FormatFloat(st.BestLB, 'f', -1, 64),
		strconv.FormatFloat(st.RootLB, 'f', -1, 64),
		strconv.FormatFloat(st.RootTime.Seconds(), 'f', 3, 64),
		strconv.Itoa(st.NodeCount),
		sol.Status,
	}
	return strings.Join(cols, " ")
}
