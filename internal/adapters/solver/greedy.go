package solver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
	"vrp-instance-service/internal/assembler"
	"vrp-instance-service/internal/domain"

	"github.com/google/uuid"
)

// Greedy is the built-in Solver: a nearest-neighbor construction over the
// flattened fleet.
//
// Vehicles are used in fleet order. Each one leaves the depot and repeatedly
// moves to the closest unserved customer that still fits its capacity and,
// for vehicle types with an operating window, can be served inside its time
// window with time left to return to the depot. It does not attempt global
// optimization; the result is deterministic for a given declaration sequence.
type Greedy struct {
	types     []domain.VehicleType
	depot     *domain.Point
	customers []domain.Point
	dist      map[[2]int]float64
	params    *domain.Parameters
}

func NewGreedy() *Greedy {
	return &Greedy{dist: make(map[[2]int]float64)}
}

func (g *Greedy) AddVehicleType(vt domain.VehicleType) error {
	if g.depot != nil {
		return errors.New("greedy solver: vehicle types must be declared before the depot")
	}
	if vt.ID != len(g.types)+1 {
		return fmt.Errorf("greedy solver: vehicle type id %d, want %d", vt.ID, len(g.types)+1)
	}
	g.types = append(g.types, vt)
	return nil
}

func (g *Greedy) AddDepot(p domain.Point) error {
	if g.depot != nil {
		return errors.New("greedy solver: depot already declared")
	}
	if !p.IsDepot() {
		return fmt.Errorf("greedy solver: depot id %d, want %d", p.ID, domain.DepotID)
	}
	g.depot = &p
	return nil
}

func (g *Greedy) AddCustomer(p domain.Point) error {
	if g.depot == nil {
		return errors.New("greedy solver: customer declared before the depot")
	}
	if p.ID != len(g.customers)+1 {
		return fmt.Errorf("greedy solver: customer id %d, want %d", p.ID, len(g.customers)+1)
	}
	g.customers = append(g.customers, p)
	return nil
}

func (g *Greedy) AddLink(l domain.Link) error {
	n := len(g.customers) + 1
	if g.depot == nil {
		return errors.New("greedy solver: link declared before the depot")
	}
	a, b := l.StartPointID, l.EndPointID
	if a == b || a < 0 || b < 0 || a >= n || b >= n {
		return fmt.Errorf("greedy solver: link %s has invalid endpoints %d-%d", l.Name, a, b)
	}
	key := linkKey(a, b)
	if _, ok := g.dist[key]; ok {
		return fmt.Errorf("greedy solver: duplicate link %d-%d", key[0], key[1])
	}
	g.dist[key] = l.Distance
	return nil
}

func (g *Greedy) SetParameters(p domain.Parameters) error {
	g.params = &p
	return nil
}

// Solve builds routes until every customer is served, the fleet is used up
// or ctx is done.
func (g *Greedy) Solve(ctx context.Context) (*domain.Solution, error) {
	start := time.Now()

	if g.params == nil {
		return nil, errors.New("greedy solver: parameters not set")
	}
	if g.depot == nil {
		return nil, errors.New("greedy solver: no depot declared")
	}

	points := append([]domain.Point{*g.depot}, g.customers...)
	n := len(points)
	if want := n * (n - 1) / 2; len(g.dist) != want {
		return nil, fmt.Errorf("greedy solver: %d links declared, want %d", len(g.dist), want)
	}

	served := make([]bool, n)
	remaining := n - 1
	status := domain.StatusFeasible
	routes := []domain.Route{}

	for _, v := range assembler.Flatten(g.types) {
		if remaining == 0 {
			break
		}
		if ctx.Err() != nil {
			break
		}

		r := g.route(v, g.types[v.TypeID-1], points, served)
		if len(r.PointIDs) == 0 {
			continue
		}
		remaining -= len(r.PointIDs)
		routes = append(routes, r)
	}

	switch {
	case remaining > 0 && ctx.Err() != nil:
		status = domain.StatusTimeLimit
	case remaining > 0:
		status = domain.StatusInfeasible
	}

	value := 0.0
	for _, r := range routes {
		value += r.Cost
	}

	sol := &domain.Solution{
		RunID:  uuid.NewString(),
		Routes: routes,
		Status: status,
	}
	if status == domain.StatusFeasible {
		if ub := g.params.UpperBound; ub != nil && value > *ub {
			sol.Status = domain.StatusCutoff
		} else {
			sol.IsDefined = true
			sol.Value = value
		}
	}
	// No bounds are computed; BestLB and RootLB stay zero.
	sol.Statistics = domain.Statistics{SolutionTime: time.Since(start)}
	return sol, nil
}

// route runs the nearest-neighbor step for one vehicle, marking the customers
// it serves in served.
func (g *Greedy) route(v domain.Vehicle, vt domain.VehicleType, points []domain.Point, served []bool) domain.Route {
	timed := vt.TWEnd > 0
	lv := domain.NewLoadedVehicle(v)

	var (
		cur   = domain.DepotID
		clock = vt.TWBegin
		total = 0.0
	)

	for {
		best := -1
		bestDist := math.Inf(1)
		bestBegin := 0.0

		for j := 1; j < len(points); j++ {
			p := points[j]
			if served[j] || !lv.Fits(p.Demand) {
				continue
			}

			d := g.distance(cur, j)
			begin := 0.0
			if timed {
				arrive := clock + points[cur].ServiceTime + d
				begin = max(arrive, p.TWBegin)
				if begin+p.ServiceTime > p.TWEnd {
					continue
				}
				if begin+p.ServiceTime+g.distance(j, domain.DepotID) > vt.TWEnd {
					continue
				}
			}

			// Strict comparison keeps the lowest id on ties.
			if d < bestDist {
				best, bestDist, bestBegin = j, d, begin
			}
		}

		if best < 0 {
			break
		}
		if err := lv.Visit(points[best]); err != nil {
			break
		}

		served[best] = true
		total += bestDist
		clock = bestBegin
		cur = best
	}

	r := domain.Route{VehicleIndex: v.Index, VehicleTypeID: v.TypeID}
	if len(lv.PointIDs) == 0 {
		return r
	}

	back := g.distance(cur, domain.DepotID)
	total += back

	duration := 0.0
	if timed {
		duration = clock + points[cur].ServiceTime + back - vt.TWBegin
	}

	r.PointIDs = lv.PointIDs
	r.Load = lv.Load
	r.Distance = total
	r.Cost = v.FixedCost + v.VarCostDist*total + v.VarCostTime*duration
	return r
}

func (g *Greedy) distance(i, j int) float64 {
	if i == j {
		return 0
	}
	return g.dist[linkKey(i, j)]
}

func linkKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}
