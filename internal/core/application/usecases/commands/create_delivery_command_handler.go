package commands

import (
	"context"

	"coldroute/internal/core/domain/model/delivery"
	"coldroute/internal/core/domain/model/kernel"
	"coldroute/internal/core/domain/services"
)

// CreateDeliveryCommandHandler handles planning of new delivery runs.
// It resolves stop customers to their coordinates, composes the route from
// the depot, and persists the run with its routed stops.
type CreateDeliveryCommandHandler struct {
	uowFactory    UoWFactory
	routeComposer services.RouteComposer
	depot         kernel.GeoPoint
}

// NewCreateDeliveryCommandHandler creates a handler for delivery planning.
// The depot coordinate is the route origin for every composed run.
func NewCreateDeliveryCommandHandler(
	uowFactory UoWFactory, routeComposer services.RouteComposer, depot kernel.GeoPoint,
) (CreateDeliveryCommandHandler, error) {
	if err := depot.Validate(); err != nil {
		return CreateDeliveryCommandHandler{}, err
	}

	return CreateDeliveryCommandHandler{
		uowFactory:    uowFactory,
		routeComposer: routeComposer,
		depot:         depot,
	}, nil
}

// Handle processes the delivery planning command.
// The assigned driver and every named customer must exist; the customers'
// stored coordinates drive the route.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if cmd.DriverID() != nil {
		if _, err := uow.DriverRepository().Get(ctx, *cmd.DriverID()); err != nil {
			return err
		}
	}

	stops, err := h.resolveStops(ctx, uow, cmd.Stops())
	if err != nil {
		return err
	}

	routed, err := h.routeComposer.Compose(stops, h.depot)
	if err != nil {
		return err
	}

	aggregate, err := delivery.NewDelivery(cmd.DeliveryID(), cmd.DriverID(), cmd.DeliveryDate())
	if err != nil {
		return err
	}
	if err = aggregate.SetRoute(routed); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *CreateDeliveryCommandHandler) resolveStops(
	ctx context.Context, uow UoW, inputs []StopInput,
) ([]delivery.Stop, error) {
	ids := make([]kernel.UUID, 0, len(inputs))
	for _, input := range inputs {
		ids = append(ids, input.CustomerID)
	}

	customers, err := uow.CustomerRepository().GetAll(ctx, ids)
	if err != nil {
		return nil, err
	}
	locations := make(map[kernel.UUID]kernel.GeoPoint, len(customers))
	for _, c := range customers {
		locations[c.ID()] = c.Location()
	}

	stops := make([]delivery.Stop, 0, len(inputs))
	for _, input := range inputs {
		stop, err := delivery.NewStop(input.CustomerID, locations[input.CustomerID], input.DeliveryPrice, input.Notes)
		if err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}
	return stops, nil
}
