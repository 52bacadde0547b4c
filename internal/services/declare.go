package services

import (
	"errors"
	"fmt"
	"vrp-instance-service/internal/domain"
	"vrp-instance-service/internal/ports"
)

// Declare feeds inst to b as additive declarations, in the order vehicle
// types, depot, customers, links. The first builder error stops the sequence.
func Declare(inst *domain.Instance, b ports.ModelBuilder) error {
	if inst == nil || len(inst.Points) == 0 {
		return errors.New("declare instance: instance has no depot")
	}
	if b == nil {
		return errors.New("declare instance: builder must be non-nil")
	}

	for _, vt := range inst.VehicleTypes {
		if err := b.AddVehicleType(vt); err != nil {
			return fmt.Errorf("declare instance: vehicle type %d: %w", vt.ID, err)
		}
	}

	if err := b.AddDepot(inst.Depot()); err != nil {
		return fmt.Errorf("declare instance: depot: %w", err)
	}

	for _, c := range inst.Customers() {
		if err := b.AddCustomer(c); err != nil {
			return fmt.Errorf("declare instance: customer %d: %w", c.ID, err)
		}
	}

	for _, l := range inst.Links {
		if err := b.AddLink(l); err != nil {
			return fmt.Errorf("declare instance: link %s: %w", l.Name, err)
		}
	}

	return nil
}
