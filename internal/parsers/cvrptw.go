package parsers

import (
	"fmt"
	"vrp-instance-service/internal/domain"
	"vrp-instance-service/internal/tokenizer"
)

const (
	// Tokens before the vehicle record: name, VEHICLE, NUMBER, CAPACITY.
	solomonVehicleHeader = 4
	// Tokens between the vehicle record and the depot fields: the 12 column
	// header words and the depot's customer number.
	solomonCustomerHeader = 13
)

// cvrptwParser reads Solomon files:
//
//	C101
//	VEHICLE
//	NUMBER     CAPACITY
//	  25         200
//	CUSTOMER
//	CUST NO.  XCOORD.   YCOORD.    DEMAND   READY TIME  DUE DATE   SERVICE   TIME
//	    0      40         50          0          0       1236          0
//	    1      45         68         10        912        967         90
//
// The file has no customer count; records continue to the end of the file.
type cvrptwParser struct {
	*reader
	name      string
	maxNumber int
	capacity  int
	points    []domain.Point
}

// ReadCVRPTW parses a Solomon time-windowed file. Each customer's TWEnd is
// stored as due date plus service time. A single vehicle type uses the
// depot's window as its operating window.
func ReadCVRPTW(s *tokenizer.Stream) (*RawInstance, error) {
	p := &cvrptwParser{reader: newReader(s, DialectCVRPTW)}
	p.state = StateReadHeader

	for p.state != StateDone {
		var err error
		switch p.state {
		case StateReadHeader:
			err = p.header()
		case StateReadDepot:
			err = p.depot()
		case StateReadCustomers:
			err = p.customer()
		default:
			err = fmt.Errorf("parse %s: unexpected state %s", p.dialect, p.state)
		}
		if err != nil {
			return nil, err
		}
	}

	depot := p.points[domain.DepotID]
	return &RawInstance{
		Name:    p.name,
		Dialect: DialectCVRPTW,
		Format:  FormatCVRPTW,
		Timed:   true,
		Points:  p.points,
		VehicleTypes: []domain.VehicleType{{
			ID:           1,
			StartPointID: domain.DepotID,
			EndPointID:   domain.DepotID,
			Capacity:     p.capacity,
			MaxNumber:    p.maxNumber,
			TWBegin:      depot.TWBegin,
			TWEnd:        depot.TWEnd,
			ServiceTime:  depot.ServiceTime,
			VarCostDist:  1,
			VarCostTime:  0,
		}},
	}, nil
}

func (p *cvrptwParser) header() error {
	var err error
	if p.name, err = p.next("instance name"); err != nil {
		return err
	}
	if err = p.skip(solomonVehicleHeader-1, "vehicle header"); err != nil {
		return err
	}
	if p.maxNumber, err = p.int("vehicle number"); err != nil {
		return err
	}
	if p.capacity, err = p.int("vehicle capacity"); err != nil {
		return err
	}
	if err = p.skip(solomonCustomerHeader, "customer header"); err != nil {
		return err
	}
	p.state = StateReadDepot
	return nil
}

// depot reads x, y, demand, ready time, due date and service time.
func (p *cvrptwParser) depot() error {
	depot, err := p.record(domain.DepotID)
	if err != nil {
		return err
	}
	p.points = []domain.Point{depot}
	p.state = StateReadCustomers
	return nil
}

// customer reads one "number x y demand ready due service" record. End of
// stream before a record starts is the normal end of the customer list;
// inside a record it is an error.
func (p *cvrptwParser) customer() error {
	if p.s.Done() {
		p.state = StateDone
		return nil
	}
	if _, err := p.next("customer number"); err != nil {
		return err
	}

	c, err := p.record(len(p.points))
	if err != nil {
		return err
	}
	c.TWEnd += c.ServiceTime
	p.points = append(p.points, c)
	return nil
}

func (p *cvrptwParser) record(id int) (domain.Point, error) {
	var (
		pt  = domain.Point{ID: id}
		err error
	)
	if pt.X, err = p.float("x"); err != nil {
		return pt, err
	}
	if pt.Y, err = p.float("y"); err != nil {
		return pt, err
	}
	if pt.Demand, err = p.int("demand"); err != nil {
		return pt, err
	}
	if pt.TWBegin, err = p.float("ready time"); err != nil {
		return pt, err
	}
	if pt.TWEnd, err = p.float("due date"); err != nil {
		return pt, err
	}
	if pt.ServiceTime, err = p.float("service time"); err != nil {
		return pt, err
	}
	return pt, nil
}
