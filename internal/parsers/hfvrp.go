package parsers

import (
	"fmt"
	"vrp-instance-service/internal/domain"
	"vrp-instance-service/internal/tokenizer"
)

const (
	keywordVehicleKinds     = "VEHICLE_KINDS"
	keywordCapacities       = "CAPACITIES"
	keywordFixedCosts       = "FIXED_COSTS"
	keywordVariableCosts    = "VARIABLE_COSTS"
	keywordNumberOfVehicles = "NUMBER_OF_VEHICLES"
)

// ReadHFVRP parses a heterogeneous fleet file. A leading NAME token selects
// the keyworded large-instance layout; anything else is the classic layout.
func ReadHFVRP(s *tokenizer.Stream) (*RawInstance, error) {
	if first, ok := s.Peek(); ok && first == keywordName {
		return readHFVRPLarge(s)
	}
	return readHFVRPClassic(s)
}

// hfLargeParser reads the keyworded layout:
//
//	NAME : XH-n101
//	DIMENSION : 101
//	VEHICLE_KINDS : 3
//	CAPACITIES 50 100 150
//	FIXED_COSTS 100 200 300
//	VARIABLE_COSTS 1.0 1.1 1.2
//	NUMBER_OF_VEHICLES 10 5 3
//	EDGE_WEIGHT_TYPE : EUC_2D
//	NODE_COORD_SECTION
//	...
//	DEMAND_SECTION
//	...
//	DEPOT_SECTION
//	1
//	-1
type hfLargeParser struct {
	*reader
	name        string
	nbPoints    int
	kinds       int
	edgeWeight  bool
	capacities  []int
	fixedCosts  []float64
	varCosts    []float64
	maxVehicles []int
	points      []domain.Point
}

func readHFVRPLarge(s *tokenizer.Stream) (*RawInstance, error) {
	p := &hfLargeParser{reader: newReader(s, DialectHFVRP), nbPoints: -1, kinds: -1}

	for p.state != StateDone {
		var err error
		switch p.state {
		case StateExpectKeyword:
			err = p.header()
		case StateReadCoordinates:
			err = p.coordinates()
		case StateReadDemands:
			err = p.demands()
		case StateReadDepot:
			err = p.depot()
		default:
			err = fmt.Errorf("parse %s: unexpected state %s", p.dialect, p.state)
		}
		if err != nil {
			return nil, err
		}
	}

	types := make([]domain.VehicleType, 0, len(p.capacities))
	for k := 0; k < p.kinds; k++ {
		types = append(types, domain.VehicleType{
			ID:           k + 1,
			StartPointID: domain.DepotID,
			EndPointID:   domain.DepotID,
			Capacity:     p.capacities[k],
			MaxNumber:    p.maxVehicles[k],
			FixedCost:    p.fixedCosts[k],
			VarCostDist:  p.varCosts[k],
		})
	}

	return &RawInstance{
		Name:         p.name,
		Dialect:      DialectHFVRP,
		Format:       FormatHFVRPLarge,
		Points:       p.points,
		VehicleTypes: types,
	}, nil
}

func (p *hfLargeParser) header() error {
	tok, err := p.next(sectionNodeCoord)
	if err != nil {
		return err
	}

	name, attached := keyword(tok)
	switch name {
	case keywordName:
		p.separator(attached)
		p.name, err = p.next("name")
	case keywordDimension:
		p.separator(attached)
		var dim int
		dim, err = p.int(keywordDimension)
		if dim >= 1 {
			p.nbPoints = dim - 1
		}
	case keywordVehicleKinds:
		p.separator(attached)
		p.kinds, err = p.int(keywordVehicleKinds)
	case keywordCapacities:
		p.capacities, err = readList(p, attached, p.int)
	case keywordFixedCosts:
		p.fixedCosts, err = readList(p, attached, p.float)
	case keywordVariableCosts:
		p.varCosts, err = readList(p, attached, p.float)
	case keywordNumberOfVehicles:
		p.maxVehicles, err = readList(p, attached, p.int)
	case keywordEdgeWeightType:
		err = p.edgeWeightType(attached)
		p.edgeWeight = err == nil
	case sectionNodeCoord:
		err = p.checkHeader()
		p.state = StateReadCoordinates
	}
	return err
}

// readList reads one value per vehicle kind. VEHICLE_KINDS must come first.
func readList[T any](p *hfLargeParser, attached bool, read func(string) (T, error)) ([]T, error) {
	if p.kinds < 0 {
		return nil, p.fail(ErrMalformedSection, keywordVehicleKinds, "", nil)
	}
	p.separator(attached)
	out := make([]T, 0, p.capHint(p.kinds, 1))
	for k := 0; k < p.kinds; k++ {
		v, err := read("vehicle kind value")
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (p *hfLargeParser) checkHeader() error {
	switch {
	case p.nbPoints < 0:
		return p.fail(ErrMalformedSection, keywordDimension, sectionNodeCoord, nil)
	case p.kinds < 1:
		return p.fail(ErrMalformedSection, keywordVehicleKinds, sectionNodeCoord, nil)
	case len(p.capacities) != p.kinds:
		return p.fail(ErrMalformedSection, keywordCapacities, sectionNodeCoord, nil)
	case len(p.fixedCosts) != p.kinds:
		return p.fail(ErrMalformedSection, keywordFixedCosts, sectionNodeCoord, nil)
	case len(p.varCosts) != p.kinds:
		return p.fail(ErrMalformedSection, keywordVariableCosts, sectionNodeCoord, nil)
	case len(p.maxVehicles) != p.kinds:
		return p.fail(ErrMalformedSection, keywordNumberOfVehicles, sectionNodeCoord, nil)
	case !p.edgeWeight:
		return p.fail(ErrMalformedSection, keywordEdgeWeightType, sectionNodeCoord, nil)
	}
	return nil
}

// coordinates reads nbPoints+1 records "index x y" with integer coordinates.
func (p *hfLargeParser) coordinates() error {
	p.points = make([]domain.Point, 0, p.capHint(p.nbPoints, 3)+1)
	for i := 0; i <= p.nbPoints; i++ {
		if err := p.index(i + 1); err != nil {
			return err
		}
		x, err := p.int("x")
		if err != nil {
			return err
		}
		y, err := p.int("y")
		if err != nil {
			return err
		}
		p.points = append(p.points, domain.Point{
			ID:          i,
			Coordinates: domain.Coordinates{X: float64(x), Y: float64(y)},
		})
	}
	p.state = StateReadDemands
	return nil
}

func (p *hfLargeParser) demands() error {
	if err := p.expect(sectionDemand); err != nil {
		return err
	}
	for i := 0; i <= p.nbPoints; i++ {
		if err := p.index(i + 1); err != nil {
			return err
		}
		d, err := p.int("demand")
		if err != nil {
			return err
		}
		p.points[i].Demand = d
	}
	p.state = StateReadDepot
	return nil
}

func (p *hfLargeParser) depot() error {
	if err := p.depotSection(); err != nil {
		return err
	}
	p.state = StateDone
	return nil
}

// hfClassicParser reads the positional layout:
//
//	<n>
//	0 <x> <y> <demand>
//	1 <x> <y> <demand>
//	...
//	n <x> <y> <demand>
//	<vehicle types>
//	<capacity> <fixed cost> <variable cost> <min number> <max number>
//	...
type hfClassicParser struct {
	*reader
	nbPoints int
	points   []domain.Point
	types    []domain.VehicleType
}

func readHFVRPClassic(s *tokenizer.Stream) (*RawInstance, error) {
	p := &hfClassicParser{reader: newReader(s, DialectHFVRP)}
	p.state = StateReadHeader

	for p.state != StateDone {
		var err error
		switch p.state {
		case StateReadHeader:
			p.nbPoints, err = p.int("point count")
			p.state = StateReadDepot
		case StateReadDepot:
			err = p.depot()
		case StateReadCustomers:
			err = p.customers()
		case StateReadFleet:
			err = p.fleet()
		default:
			err = fmt.Errorf("parse %s: unexpected state %s", p.dialect, p.state)
		}
		if err != nil {
			return nil, err
		}
	}

	return &RawInstance{
		Dialect:      DialectHFVRP,
		Format:       FormatHFVRPClassic,
		Points:       p.points,
		VehicleTypes: p.types,
	}, nil
}

func (p *hfClassicParser) depot() error {
	if p.nbPoints < 0 {
		return p.fail(ErrMalformedSection, "non-negative point count", fmt.Sprint(p.nbPoints), nil)
	}
	depot, err := p.point(domain.DepotID)
	if err != nil {
		return err
	}
	p.points = make([]domain.Point, 0, p.capHint(p.nbPoints, 4)+1)
	p.points = append(p.points, depot)
	p.state = StateReadCustomers
	return nil
}

func (p *hfClassicParser) customers() error {
	for i := 1; i <= p.nbPoints; i++ {
		c, err := p.point(i)
		if err != nil {
			return err
		}
		p.points = append(p.points, c)
	}
	p.state = StateReadFleet
	return nil
}

// point reads one "index x y demand" record with 0-based indices.
func (p *hfClassicParser) point(id int) (domain.Point, error) {
	pt := domain.Point{ID: id}
	if err := p.index(id); err != nil {
		return pt, err
	}
	x, err := p.int("x")
	if err != nil {
		return pt, err
	}
	y, err := p.int("y")
	if err != nil {
		return pt, err
	}
	if pt.Demand, err = p.int("demand"); err != nil {
		return pt, err
	}
	pt.Coordinates = domain.Coordinates{X: float64(x), Y: float64(y)}
	return pt, nil
}

// fleet reads the vehicle type count and one five-field record per type.
// The minimum number of vehicles is read and discarded.
func (p *hfClassicParser) fleet() error {
	count, err := p.int("vehicle type count")
	if err != nil {
		return err
	}
	if count < 0 {
		return p.fail(ErrMalformedSection, "non-negative vehicle type count", fmt.Sprint(count), nil)
	}

	p.types = make([]domain.VehicleType, 0, p.capHint(count, 5))
	for k := 1; k <= count; k++ {
		vt := domain.VehicleType{ID: k, StartPointID: domain.DepotID, EndPointID: domain.DepotID}
		if vt.Capacity, err = p.int("capacity"); err != nil {
			return err
		}
		if vt.FixedCost, err = p.float("fixed cost"); err != nil {
			return err
		}
		if vt.VarCostDist, err = p.float("variable cost"); err != nil {
			return err
		}
		if _, err = p.next("minimum number"); err != nil {
			return err
		}
		if vt.MaxNumber, err = p.int("maximum number"); err != nil {
			return err
		}
		p.types = append(p.types, vt)
	}
	p.state = StateDone
	return nil
}
