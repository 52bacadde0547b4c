package parsers

import (
	"fmt"
	"vrp-instance-service/internal/domain"
	"vrp-instance-service/internal/tokenizer"
)

// cvrpParser reads CVRPLIB files:
//
//	NAME : A-n32-k5
//	DIMENSION : 32
//	CAPACITY : 100
//	EDGE_WEIGHT_TYPE : EUC_2D
//	NODE_COORD_SECTION
//	1 82 76
//	...
//	DEMAND_SECTION
//	1 0
//	...
//	DEPOT_SECTION
//	1
//	-1
type cvrpParser struct {
	*reader
	name       string
	dimension  int
	capacity   int
	edgeWeight bool
	points     []domain.Point
}

// ReadCVRP parses a Euclidean CVRP file. A single vehicle type is synthesized
// with capacity CAPACITY, DIMENSION vehicles and unit distance cost.
func ReadCVRP(s *tokenizer.Stream) (*RawInstance, error) {
	p := &cvrpParser{reader: newReader(s, DialectCVRP), dimension: -1, capacity: -1}

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

	return &RawInstance{
		Name:    p.name,
		Dialect: DialectCVRP,
		Format:  FormatCVRP,
		Points:  p.points,
		VehicleTypes: []domain.VehicleType{{
			ID:           1,
			StartPointID: domain.DepotID,
			EndPointID:   domain.DepotID,
			Capacity:     p.capacity,
			MaxNumber:    p.dimension,
			VarCostDist:  1,
		}},
	}, nil
}

// header consumes one header token. Unknown keywords and their values are
// skipped until NODE_COORD_SECTION.
func (p *cvrpParser) header() error {
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
		p.dimension, err = p.int(keywordDimension)
	case keywordCapacity:
		p.separator(attached)
		p.capacity, err = p.int(keywordCapacity)
	case keywordEdgeWeightType:
		err = p.edgeWeightType(attached)
		p.edgeWeight = err == nil
	case sectionNodeCoord:
		err = p.checkHeader()
		p.state = StateReadCoordinates
	}
	return err
}

func (p *cvrpParser) checkHeader() error {
	switch {
	case p.dimension < 1:
		return p.fail(ErrMalformedSection, keywordDimension, sectionNodeCoord, nil)
	case p.capacity < 0:
		return p.fail(ErrMalformedSection, keywordCapacity, sectionNodeCoord, nil)
	case !p.edgeWeight:
		return p.fail(ErrMalformedSection, keywordEdgeWeightType, sectionNodeCoord, nil)
	}
	return nil
}

// coordinates reads DIMENSION records "index x y" with 1-based indices.
func (p *cvrpParser) coordinates() error {
	p.points = make([]domain.Point, 0, p.capHint(p.dimension, 3))
	for i := 0; i < p.dimension; i++ {
		if err := p.index(i + 1); err != nil {
			return err
		}
		x, err := p.float("x")
		if err != nil {
			return err
		}
		y, err := p.float("y")
		if err != nil {
			return err
		}
		p.points = append(p.points, domain.Point{ID: i, Coordinates: domain.Coordinates{X: x, Y: y}})
	}
	p.state = StateReadDemands
	return nil
}

// demands reads DEMAND_SECTION followed by DIMENSION records "index demand".
func (p *cvrpParser) demands() error {
	if err := p.expect(sectionDemand); err != nil {
		return err
	}
	for i := 0; i < p.dimension; i++ {
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

func (p *cvrpParser) depot() error {
	if err := p.depotSection(); err != nil {
		return err
	}
	p.state = StateDone
	return nil
}
