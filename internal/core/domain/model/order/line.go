package order

import (
	"errors"

	"coldroute/internal/core/domain/model/kernel"
	"coldroute/internal/pkg/errs"
	"coldroute/internal/pkg/normalize"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine or RestoreLine factory functions.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is an order line item: a free-text product name, an optional variant
// metadata blob, a quantity, and a unit price. Lines belong to an Order
// aggregate and are persisted with it.
type Line struct {
	id          kernel.UUID
	productName string
	variant     Variant
	quantity    int
	unitPrice   float64

	isConstructed bool
}

// NewLine creates an order line with validation.
// Product name must be non-empty, quantity within [1, maxLineQuantity], unit
// price non-negative. The variant blob may be empty; it is parsed leniently
// and never rejected.
func NewLine(id kernel.UUID, productName, variantRaw string, quantity int, unitPrice float64) (*Line, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if productName == "" {
		return nil, errs.NewValueIsRequiredError("productName")
	}
	if quantity <= 0 || quantity > maxLineQuantity {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxLineQuantity)
	}
	if unitPrice < 0 {
		return nil, errs.NewValueIsInvalidError("unitPrice")
	}

	return &Line{
		id:            id,
		productName:   productName,
		variant:       ParseVariant(variantRaw),
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// Legacy rows occasionally carry bulk supplier quantities; anything above
// this is a data-entry error.
const maxLineQuantity = 10000

// Validate ensures the Line was created through a factory function.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// ProductName returns the raw product name as entered.
func (l *Line) ProductName() string {
	return l.productName
}

// Variant returns the parsed variant metadata.
func (l *Line) Variant() Variant {
	return l.variant
}

// Quantity returns the ordered quantity.
func (l *Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price per unit.
func (l *Line) UnitPrice() float64 {
	return l.unitPrice
}

// TotalPrice returns quantity times unit price.
func (l *Line) TotalPrice() float64 {
	return float64(l.quantity) * l.unitPrice
}

// ResolvedSize returns the normalized dimension key for this line: the size
// carried by the variant metadata, or, when the variant yields nothing, the
// size derived from the product name text. Some historical data encodes the
// size directly in the name, so the name fallback is deliberate.
func (l *Line) ResolvedSize() string {
	if size := l.variant.Size(); size != "" {
		return size
	}
	return normalize.Size(l.productName)
}
