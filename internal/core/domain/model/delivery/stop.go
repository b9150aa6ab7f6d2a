package delivery

import (
	"errors"

	"coldroute/internal/core/domain/model/kernel"
)

// ErrStopIsNotConstructed is returned when a Stop instance was not created
// through the NewStop factory function.
var ErrStopIsNotConstructed = errors.New("Stop must be created via NewStop constructor")

// Stop is one delivery destination within a run: the customer being visited,
// their coordinate, and per-stop commercial details. A stop exists only as
// part of a delivery draft; removing the customer from the draft destroys it.
type Stop struct {
	customerID    kernel.UUID
	location      kernel.GeoPoint
	deliveryPrice float64
	notes         string

	isConstructed bool
}

// NewStop creates a stop for the given customer and coordinate.
func NewStop(customerID kernel.UUID, location kernel.GeoPoint, deliveryPrice float64, notes string) (Stop, error) {
	if err := errors.Join(customerID.Validate(), location.Validate()); err != nil {
		return Stop{}, err
	}

	return Stop{
		customerID:    customerID,
		location:      location,
		deliveryPrice: deliveryPrice,
		notes:         notes,
		isConstructed: true,
	}, nil
}

// Validate ensures the Stop was created through NewStop.
func (s Stop) Validate() error {
	if !s.isConstructed {
		return ErrStopIsNotConstructed
	}
	return nil
}

// CustomerID returns the visited customer's identifier.
func (s Stop) CustomerID() kernel.UUID {
	return s.customerID
}

// Location returns the stop coordinate.
func (s Stop) Location() kernel.GeoPoint {
	return s.location
}

// DeliveryPrice returns the price charged for this stop.
func (s Stop) DeliveryPrice() float64 {
	return s.deliveryPrice
}

// Notes returns free-text notes for the driver.
func (s Stop) Notes() string {
	return s.notes
}

// RoutedStop is a stop annotated with its place in a composed route: a dense
// 0-based sequence index consistent with ascending distance from the depot.
// Routed stops are recomputed from scratch on every stop-set change, never
// mutated incrementally.
type RoutedStop struct {
	Stop                Stop
	SequenceIndex       int
	DistanceFromDepotKm float64
}
