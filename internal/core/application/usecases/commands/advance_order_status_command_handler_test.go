package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdvanceOrderStatusCommandHandler_Handle(t *testing.T) {
	t.Run("should transition order and persist a history entry", func(t *testing.T) {
		ctx := t.Context()
		o := testOrderTo(t, "La Matanza", "Buenos Aires", fixedNow)
		cmd, err := commands.NewAdvanceOrderStatusCommand(
			o.ID(), order.PickedUp, "Depósito Central", "Picked up by carrier")
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		factory := new(MockOrderUoWFactory)

		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			orderRepo.On("Update", ctx, o).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewAdvanceOrderStatusCommandHandler(factory, fixedClock{fixedNow})
		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.PickedUp, o.Status())
		require.Len(t, o.History(), 2)
		entry := o.History()[0]
		assert.Equal(t, order.PickedUp, entry.Status())
		assert.Equal(t, "Depósito Central", entry.Location())
		assert.Equal(t, fixedNow, entry.At())
		orderRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should reject illegal transition without persisting", func(t *testing.T) {
		ctx := t.Context()
		o := testOrderTo(t, "La Matanza", "Buenos Aires", fixedNow)
		cmd, err := commands.NewAdvanceOrderStatusCommand(
			o.ID(), order.Delivered, "Sucursal La Matanza", "")
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		factory := new(MockOrderUoWFactory)

		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewAdvanceOrderStatusCommandHandler(factory, fixedClock{fixedNow})
		err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Equal(t, order.PendingPickup, o.Status())
		require.Len(t, o.History(), 1)
		orderRepo.AssertNotCalled(t, "Update", ctx, o)
		uow.AssertNotCalled(t, "Commit", ctx)
	})

	t.Run("should return error when command was not constructed", func(t *testing.T) {
		factory := new(MockOrderUoWFactory)
		handler := commands.NewAdvanceOrderStatusCommandHandler(factory, fixedClock{fixedNow})

		err := handler.Handle(t.Context(), commands.AdvanceOrderStatusCommand{})

		require.ErrorIs(t, err, commands.ErrAdvanceOrderStatusCommandIsNotConstructed)
		factory.AssertNotCalled(t, "Create")
	})
}
