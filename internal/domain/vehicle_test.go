package domain

import "testing"

func TestLoadedVehicleVisit(t *testing.T) {
	// build test data
	c1 := Point{ID: 1, Demand: 4}
	c2 := Point{ID: 2, Demand: 5}
	c3 := Point{ID: 3, Demand: 2}

	v := NewLoadedVehicle(Vehicle{Index: 0, TypeID: 1, Capacity: 10})

	// call the method under test
	for _, p := range []Point{c1, c2} {
		if err := v.Visit(p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// verify behavior
	if v.Load != 9 {
		t.Fatalf("load = %d, want 9", v.Load)
	}
	if len(v.PointIDs) != 2 || v.PointIDs[0] != 1 || v.PointIDs[1] != 2 {
		t.Fatalf("point ids = %v, want [1 2]", v.PointIDs)
	}

	if err := v.Visit(c3); err == nil {
		t.Fatalf("expected capacity error for demand %d", c3.Demand)
	}
	if v.Load != 9 {
		t.Errorf("failed visit changed load to %d", v.Load)
	}

	if err := v.Visit(Point{ID: DepotID}); err == nil {
		t.Errorf("expected error visiting the depot")
	}
}

func TestFleetArrays(t *testing.T) {
	fleet := []Vehicle{
		{Index: 0, TypeID: 1, Capacity: 20, FixedCost: 20, VarCostDist: 1},
		{Index: 1, TypeID: 1, Capacity: 20, FixedCost: 20, VarCostDist: 1},
		{Index: 2, TypeID: 2, Capacity: 30, FixedCost: 35, VarCostDist: 1.1},
	}

	caps := Capacities(fleet)
	if len(caps) != 3 || caps[2] != 30 {
		t.Fatalf("capacities = %v", caps)
	}
	if fc := FixedCosts(fleet); fc[0] != 20 || fc[2] != 35 {
		t.Errorf("fixed costs = %v", fc)
	}
	if vc := VarCosts(fleet); vc[2] != 1.1 {
		t.Errorf("var costs = %v", vc)
	}
}
