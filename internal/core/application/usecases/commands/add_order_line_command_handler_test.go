package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coldroute/internal/core/application/usecases/commands"
	"coldroute/internal/core/domain/model/kernel"
	"coldroute/internal/core/domain/model/order"
	"coldroute/internal/core/ports"
)

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func TestNewAddOrderLineCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	lineID := kernel.NewUUID()

	cmd, err := commands.NewAddOrderLineCommand(orderID, lineID, "מקפיא דגם A", `{"size":"70x60x180"}`, 2, 1700)

	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, lineID, cmd.LineID())
	assert.Equal(t, "מקפיא דגם A", cmd.ProductName())
	assert.Equal(t, `{"size":"70x60x180"}`, cmd.VariantRaw())
	assert.Equal(t, 2, cmd.Quantity())
	assert.InDelta(t, 1700.0, cmd.UnitPrice(), 0.0001)
}

func TestNewAddOrderLineCommand_EmptyProductName(t *testing.T) {
	_, err := commands.NewAddOrderLineCommand(kernel.NewUUID(), kernel.NewUUID(), "", "", 1, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrProductNameIsRequired)
}

func TestAddOrderLineCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewAddOrderLineCommand(orderID, kernel.NewUUID(), "מקפיא דגם A", "", 2, 1700)

	draft, err := order.NewOrder(orderID, nil, nil, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(draft, nil).Once(),
		repo.On("Update", mock.Anything, draft).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderLineCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, draft.Lines(), 1)
	assert.Equal(t, "מקפיא דגם A", draft.Lines()[0].ProductName())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddOrderLineCommandHandler_Handle_ConfirmedOrderRejected(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewAddOrderLineCommand(orderID, kernel.NewUUID(), "מקפיא דגם A", "", 2, 1700)

	confirmed, err := order.NewOrder(orderID, nil, nil, "")
	require.NoError(t, err)
	require.NoError(t, confirmed.Confirm())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(confirmed, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderLineCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrOrderIsNotEditable)
}

func TestAddOrderLineCommandHandler_Handle_GetError(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewAddOrderLineCommand(orderID, kernel.NewUUID(), "מקפיא דגם A", "", 2, 1700)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(nil, errors.New("get error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderLineCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
