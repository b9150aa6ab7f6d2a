package delivery_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coldroute/internal/core/domain/model/delivery"
	"coldroute/internal/core/domain/model/kernel"
)

func mustStop(t *testing.T, price float64) delivery.Stop {
	t.Helper()

	location, err := kernel.NewGeoPoint(31.2518, 34.7913)
	require.NoError(t, err)

	stop, err := delivery.NewStop(kernel.NewUUID(), location, price, "")
	require.NoError(t, err)

	return stop
}

func Test_NewDelivery(t *testing.T) {
	driverID := kernel.NewUUID()
	date := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

	d, err := delivery.NewDelivery(kernel.NewUUID(), &driverID, &date)

	require.NoError(t, err)
	assert.Equal(t, delivery.Planned, d.Status())
	assert.Equal(t, driverID, *d.DriverID())
	assert.Equal(t, date, *d.DeliveryDate())
	assert.Empty(t, d.Stops())
	assert.False(t, d.CreatedAt().IsZero())
}

func Test_NewDelivery_WithoutDriver(t *testing.T) {
	d, err := delivery.NewDelivery(kernel.NewUUID(), nil, nil)

	require.NoError(t, err)
	assert.Nil(t, d.DriverID())
	assert.Nil(t, d.DeliveryDate())
}

func Test_NewDelivery_InvalidID(t *testing.T) {
	_, err := delivery.NewDelivery(kernel.UUID{}, nil, nil)

	assert.Error(t, err)
}

func Test_Delivery_SetRoute(t *testing.T) {
	d, err := delivery.NewDelivery(kernel.NewUUID(), nil, nil)
	require.NoError(t, err)

	first := mustStop(t, 150)
	second := mustStop(t, 0)

	err = d.SetRoute([]delivery.RoutedStop{
		{Stop: first, SequenceIndex: 0, DistanceFromDepotKm: 0},
		{Stop: second, SequenceIndex: 1, DistanceFromDepotKm: 12.5},
	})

	require.NoError(t, err)
	require.Len(t, d.Stops(), 2)
	assert.True(t, d.HasStopFor(first.CustomerID()))
	assert.True(t, d.HasStopFor(second.CustomerID()))
	assert.False(t, d.HasStopFor(kernel.NewUUID()))
}

func Test_Delivery_SetRoute_DuplicateCustomer(t *testing.T) {
	d, err := delivery.NewDelivery(kernel.NewUUID(), nil, nil)
	require.NoError(t, err)

	stop := mustStop(t, 100)

	err = d.SetRoute([]delivery.RoutedStop{
		{Stop: stop, SequenceIndex: 0},
		{Stop: stop, SequenceIndex: 1},
	})

	assert.ErrorIs(t, err, delivery.ErrStopAlreadyPresent)
	assert.Empty(t, d.Stops())
}

func Test_Delivery_SetRoute_AfterCompletion(t *testing.T) {
	d, err := delivery.NewDelivery(kernel.NewUUID(), nil, nil)
	require.NoError(t, err)
	require.NoError(t, d.Complete())

	err = d.SetRoute([]delivery.RoutedStop{{Stop: mustStop(t, 50)}})

	assert.ErrorIs(t, err, delivery.ErrDeliveryIsNotEditable)
}

func Test_Delivery_AssignDriver(t *testing.T) {
	d, err := delivery.NewDelivery(kernel.NewUUID(), nil, nil)
	require.NoError(t, err)

	driverID := kernel.NewUUID()
	require.NoError(t, d.AssignDriver(driverID))
	assert.Equal(t, driverID, *d.DriverID())

	require.NoError(t, d.Cancel())
	assert.ErrorIs(t, d.AssignDriver(kernel.NewUUID()), delivery.ErrDeliveryIsNotEditable)
}

func Test_Delivery_Lifecycle(t *testing.T) {
	t.Run("complete planned run", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), nil, nil)
		require.NoError(t, err)

		require.NoError(t, d.Complete())
		assert.Equal(t, delivery.Completed, d.Status())
	})

	t.Run("cancel planned run", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), nil, nil)
		require.NoError(t, err)

		require.NoError(t, d.Cancel())
		assert.Equal(t, delivery.Canceled, d.Status())
	})

	t.Run("completed run is terminal", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), nil, nil)
		require.NoError(t, err)
		require.NoError(t, d.Complete())

		assert.Error(t, d.Complete())
		assert.Error(t, d.Cancel())
	})
}

func Test_RestoreDelivery(t *testing.T) {
	id := kernel.NewUUID()
	createdAt := time.Date(2026, time.February, 1, 10, 30, 0, 0, time.UTC)
	stop := mustStop(t, 200)
	stops := []delivery.RoutedStop{{Stop: stop, SequenceIndex: 0, DistanceFromDepotKm: 3.1}}

	d, err := delivery.RestoreDelivery(id, nil, nil, delivery.Completed, createdAt, stops)

	require.NoError(t, err)
	assert.Equal(t, id, d.ID())
	assert.Equal(t, delivery.Completed, d.Status())
	assert.Equal(t, createdAt, d.CreatedAt())
	assert.Equal(t, stops, d.Stops())
}

func Test_RestoreDelivery_InvalidStatus(t *testing.T) {
	_, err := delivery.RestoreDelivery(kernel.NewUUID(), nil, nil, delivery.StatusUnknown, time.Now(), nil)

	assert.Error(t, err)
}

func Test_StatusFromString(t *testing.T) {
	for _, name := range []string{"planned", "completed", "canceled"} {
		status, err := delivery.StatusFromString(name)
		require.NoError(t, err)
		assert.Equal(t, name, status.String())
	}

	_, err := delivery.StatusFromString("shipped")
	assert.Error(t, err)
}

func Test_NewStop_InvalidInputs(t *testing.T) {
	location, err := kernel.NewGeoPoint(32.0853, 34.7818)
	require.NoError(t, err)

	_, err = delivery.NewStop(kernel.UUID{}, location, 0, "")
	assert.Error(t, err)

	_, err = delivery.NewStop(kernel.NewUUID(), kernel.GeoPoint{}, 0, "")
	assert.Error(t, err)

	var zero delivery.Stop
	assert.ErrorIs(t, zero.Validate(), delivery.ErrStopIsNotConstructed)
}
