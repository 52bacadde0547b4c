package ports

import "vrp-instance-service/internal/domain"

// ModelBuilder receives an Instance as an ordered sequence of declarations:
// vehicle types, then the depot, then each customer, then each link.
// Solvers that build their own internal model implement it.
type ModelBuilder interface {
	AddVehicleType(vt domain.VehicleType) error
	AddDepot(p domain.Point) error
	AddCustomer(p domain.Point) error
	AddLink(l domain.Link) error
}
