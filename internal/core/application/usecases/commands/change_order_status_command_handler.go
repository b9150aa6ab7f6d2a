package commands

import (
	"context"
	"fmt"

	"coldroute/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler handles order lifecycle transitions.
// Transition rules live on the aggregate; the handler only routes the
// requested target status to the matching domain operation.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
// Requires an OrderUoWFactory for transactional persistence.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	switch cmd.TargetStatus() {
	case order.Confirmed:
		err = aggregate.Confirm()
	case order.Fulfilled:
		err = aggregate.Fulfill()
	case order.Cancelled:
		err = aggregate.Cancel()
	default:
		err = fmt.Errorf("%w: %s", ErrTargetStatusIsInvalid, cmd.TargetStatus())
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
