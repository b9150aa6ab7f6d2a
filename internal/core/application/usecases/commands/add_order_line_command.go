package commands

import (
	"errors"

	"coldroute/internal/core/domain/model/kernel"
	"coldroute/internal/pkg/guard"
)

var (
	ErrAddOrderLineCommandIsNotConstructed = errors.New(
		"AddOrderLineCommand must be created via NewAddOrderLineCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
)

// AddOrderLineCommand represents a request to add a product line to a draft
// order. The variant blob is carried as-is; its shape is interpreted by the
// domain when sizes and warehouses are resolved.
type AddOrderLineCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	lineID      kernel.UUID
	productName string
	variantRaw  string
	quantity    int
	unitPrice   float64

	guard guard.ConstructorGuard
}

// NewAddOrderLineCommand creates a command to add a line to a draft order.
// Validates identifiers and the product name; quantity and price bounds are
// enforced by the order domain.
func NewAddOrderLineCommand(
	orderID, lineID kernel.UUID, productName, variantRaw string, quantity int, unitPrice float64,
) (AddOrderLineCommand, error) {
	cmd := AddOrderLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLineID(lineID),
		cmd.setProductName(productName),
	); err != nil {
		return AddOrderLineCommand{}, err
	}

	cmd.variantRaw = variantRaw
	cmd.quantity = quantity
	cmd.unitPrice = unitPrice
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderLineCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AddOrderLineCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LineID returns the identifier for the new line.
func (c AddOrderLineCommand) LineID() kernel.UUID {
	return c.lineID
}

// ProductName returns the catalog product name as entered.
func (c AddOrderLineCommand) ProductName() string {
	return c.productName
}

// VariantRaw returns the raw variant metadata blob, possibly empty.
func (c AddOrderLineCommand) VariantRaw() string {
	return c.variantRaw
}

// Quantity returns the number of units ordered.
func (c AddOrderLineCommand) Quantity() int {
	return c.quantity
}

// UnitPrice returns the per-unit price.
func (c AddOrderLineCommand) UnitPrice() float64 {
	return c.unitPrice
}

func (c *AddOrderLineCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderLineCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

func (c *AddOrderLineCommand) setProductName(productName string) error {
	if productName == "" {
		return ErrProductNameIsRequired
	}

	c.productName = productName
	return nil
}
