package http

import (
	"time"

	"github.com/google/uuid"
)

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Location carries a WGS84 coordinate pair.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Created is the body of successful create responses.
type Created struct {
	ID uuid.UUID `json:"id"`
}

// NewCustomer is the request body for registering a customer.
type NewCustomer struct {
	Name     string   `json:"name"`
	Phone    string   `json:"phone"`
	Address  string   `json:"address"`
	Location Location `json:"location"`
}

// Customer is one row of the customer listing.
type Customer struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	Address  string    `json:"address"`
	Location Location  `json:"location"`
}

// NewDriver is the request body for registering a driver.
type NewDriver struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Notes    string `json:"notes,omitempty"`
}

// Driver is one row of the driver listing.
type Driver struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewOrder is the request body for opening a draft order.
type NewOrder struct {
	CustomerID           *uuid.UUID `json:"customer_id,omitempty"`
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date,omitempty"`
	Notes                string     `json:"notes,omitempty"`
}

// NewOrderItem is the request body for adding a line to a draft order.
type NewOrderItem struct {
	ProductName string  `json:"product_name"`
	Variant     string  `json:"variant,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// OrderStatusChange is the request body for moving an order through its
// lifecycle.
type OrderStatusChange struct {
	Status string `json:"status"`
}

// NewDeliveryStop names one customer to visit on a new delivery run.
type NewDeliveryStop struct {
	CustomerID    uuid.UUID `json:"customer_id"`
	DeliveryPrice float64   `json:"delivery_price,omitempty"`
	Notes         string    `json:"notes,omitempty"`
}

// NewDelivery is the request body for planning a delivery run. The stop
// order is irrelevant; the composed route decides the visiting sequence.
type NewDelivery struct {
	DriverID     *uuid.UUID        `json:"driver_id,omitempty"`
	DeliveryDate *time.Time        `json:"delivery_date,omitempty"`
	Stops        []NewDeliveryStop `json:"stops"`
}

// Reservation is one matched in-flight order line holding stock against the
// queried product.
type Reservation struct {
	OrderID              uuid.UUID  `json:"order_id"`
	Status               string     `json:"status"`
	CustomerName         *string    `json:"customer_name,omitempty"`
	ProductName          string     `json:"product_name"`
	Size                 string     `json:"size"`
	Quantity             int        `json:"quantity"`
	CreatedAt            time.Time  `json:"created_at"`
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date,omitempty"`
	TotalAmount          *float64   `json:"total_amount,omitempty"`
	LowConfidence        bool       `json:"low_confidence"`
}

// ReservedCount is one aggregated reservation bucket.
type ReservedCount struct {
	WarehouseID string `json:"warehouse_id"`
	ProductName string `json:"product_name"`
	Size        string `json:"size"`
	Reserved    int    `json:"reserved"`
}
