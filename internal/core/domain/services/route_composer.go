package services

import (
	"sort"

	"coldroute/internal/core/domain/model/delivery"
	"coldroute/internal/core/domain/model/kernel"
)

// RouteComposer is a domain service that orders a delivery run's stops by
// distance from the warehouse of origin.
//
// The route is a single global sort of all stops by great-circle distance
// from the origin, ascending. It is not a traveling-salesman tour: the
// distance is always measured from the origin, never from the previous stop.
// Ties keep their input order.
//
// Example usage:
//
//	composer := NewRouteComposer()
//	routed, err := composer.Compose(stops, depot)
//	if err != nil {
//	    return err
//	}
//	// routed[0] is the stop nearest the depot
type RouteComposer struct{}

// NewRouteComposer creates a new RouteComposer instance.
func NewRouteComposer() RouteComposer {
	return RouteComposer{}
}

// Compose annotates every stop with its distance from origin and a dense
// 0-based sequence index consistent with ascending distance. With one stop or
// none the input order is returned unchanged, still annotated.
func (c RouteComposer) Compose(stops []delivery.Stop, origin kernel.GeoPoint) ([]delivery.RoutedStop, error) {
	if err := origin.Validate(); err != nil {
		return nil, err
	}

	routed := make([]delivery.RoutedStop, 0, len(stops))
	for _, stop := range stops {
		if err := stop.Validate(); err != nil {
			return nil, err
		}
		distance, err := origin.DistanceKm(stop.Location())
		if err != nil {
			return nil, err
		}
		routed = append(routed, delivery.RoutedStop{
			Stop:                stop,
			DistanceFromDepotKm: distance,
		})
	}

	if len(routed) > 1 {
		sort.SliceStable(routed, func(i, j int) bool {
			return routed[i].DistanceFromDepotKm < routed[j].DistanceFromDepotKm
		})
	}

	for i := range routed {
		routed[i].SequenceIndex = i
	}

	return routed, nil
}
