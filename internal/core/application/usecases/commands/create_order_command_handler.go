package commands

import (
	"context"

	"coldroute/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for opening draft orders.
// When the command names a customer, the customer must exist before the draft
// is persisted.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for draft order creation.
// Requires a UoWFactory since the handler reads customers and writes orders.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the draft creation command.
// Uses transaction to ensure the order is properly persisted or rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	if cmd.CustomerID() != nil {
		if _, err := uow.CustomerRepository().Get(ctx, *cmd.CustomerID()); err != nil {
			return err
		}
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.ExpectedDeliveryDate(), cmd.Notes())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
