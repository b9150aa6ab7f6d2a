package commands

import (
	"context"

	"coldroute/internal/core/domain/model/order"
)

// AddOrderLineCommandHandler handles adding product lines to draft orders.
// Only drafts accept new lines; the order domain rejects edits after
// confirmation.
type AddOrderLineCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddOrderLineCommandHandler creates a handler for line addition.
// Requires an OrderUoWFactory for transactional persistence.
func NewAddOrderLineCommandHandler(uowFactory OrderUoWFactory) AddOrderLineCommandHandler {
	return AddOrderLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the line addition command.
// Loads the order, appends the line, and persists the whole aggregate.
func (h *AddOrderLineCommandHandler) Handle(ctx context.Context, cmd AddOrderLineCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	line, err := order.NewLine(cmd.LineID(), cmd.ProductName(), cmd.VariantRaw(), cmd.Quantity(), cmd.UnitPrice())
	if err != nil {
		return err
	}

	if err = aggregate.AddLine(line); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
