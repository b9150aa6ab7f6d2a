package customer_test

import (
	"testing"

	"coldroute/internal/core/domain/model/customer"
	"coldroute/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	location, _ := kernel.NewGeoPoint(31.2518, 34.7913)

	t.Run("valid customer", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := customer.NewCustomer(id, "מסעדת הדרום", "050-1234567", "באר שבע", location)

		require.NoError(t, err)
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "מסעדת הדרום", c.Name())
		assert.Equal(t, "050-1234567", c.Phone())
		assert.Equal(t, "באר שבע", c.Address())
		equal, err := c.Location().IsEqual(location)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("optional fields may be empty", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "לקוח", "", "", location)

		require.NoError(t, err)
		assert.Empty(t, c.Phone())
		assert.Empty(t, c.Address())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "", "", "", location)
		require.Error(t, err)
	})

	t.Run("invalid id rejected", func(t *testing.T) {
		var id kernel.UUID
		_, err := customer.NewCustomer(id, "לקוח", "", "", location)
		require.Error(t, err)
	})

	t.Run("unconstructed location rejected", func(t *testing.T) {
		var zero kernel.GeoPoint
		_, err := customer.NewCustomer(kernel.NewUUID(), "לקוח", "", "", zero)
		require.Error(t, err)
	})
}

func TestCustomer_Validate(t *testing.T) {
	t.Run("nil customer is invalid", func(t *testing.T) {
		var c *customer.Customer
		require.ErrorIs(t, c.Validate(), customer.ErrCustomerIsNotConstructed)
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		require.ErrorIs(t, (&customer.Customer{}).Validate(), customer.ErrCustomerIsNotConstructed)
	})
}

func TestCustomer_IsEqual(t *testing.T) {
	location, _ := kernel.NewGeoPoint(31.2518, 34.7913)
	id := kernel.NewUUID()
	c1, _ := customer.NewCustomer(id, "לקוח", "", "", location)
	c2, _ := customer.NewCustomer(id, "שם אחר", "", "", location)
	c3, _ := customer.NewCustomer(kernel.NewUUID(), "לקוח", "", "", location)

	assert.True(t, c1.IsEqual(c2))
	assert.False(t, c1.IsEqual(c3))
	assert.False(t, c1.IsEqual(nil))
}
