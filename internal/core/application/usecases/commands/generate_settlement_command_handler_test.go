package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/settlement"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGenerateSettlementCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ag := testAgency(t)

	// fixedNow is Friday 2024-06-21; the window is Jun 8 through Jun 14.
	o := testOrderTo(t, "Quilmes", "Buenos Aires", time.Date(2024, 6, 11, 12, 0, 0, 0, time.UTC))
	require.NoError(t, o.AssignAgency(ag.ID()))
	cmd, err := commands.NewGenerateSettlementCommand(ag.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agencyRepo := new(MockAgencyRepository)
	settlementRepo := new(MockSettlementRepository)
	uow := new(MockUoW)
	factory := new(MockSettlementUoWFactory)

	var added *settlement.Settlement
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgencyRepository").Return(agencyRepo).Once(),
		agencyRepo.On("Get", ctx, ag.ID()).Return(ag, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllByAgency", ctx, ag.ID()).Return([]*order.Order{o}, nil).Once(),
		uow.On("SettlementRepository").Return(settlementRepo).Once(),
		settlementRepo.On("CountByAgency", ctx, ag.ID()).Return(2, nil).Once(),
		uow.On("SettlementRepository").Return(settlementRepo).Once(),
		settlementRepo.On("Add", ctx, mock.AnythingOfType("*settlement.Settlement")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*settlement.Settlement) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewGenerateSettlementCommandHandler(factory, fixedClock{fixedNow})
	s, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Same(t, added, s)
	assert.Equal(t, "LIQ-AG-01-0003", s.Number())
	assert.InDelta(t, 10000.0, s.TotalSales(), 0.0001)
	assert.InDelta(t, 500.0, s.TotalCommissions(), 0.0001)
	settlementRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestGenerateSettlementCommandHandler_Handle_EmptyWindow(t *testing.T) {
	ctx := t.Context()
	ag := testAgency(t)

	o := testOrderTo(t, "Quilmes", "Buenos Aires", fixedNow) // too recent for the window
	require.NoError(t, o.AssignAgency(ag.ID()))
	cmd, err := commands.NewGenerateSettlementCommand(ag.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agencyRepo := new(MockAgencyRepository)
	settlementRepo := new(MockSettlementRepository)
	uow := new(MockUoW)
	factory := new(MockSettlementUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgencyRepository").Return(agencyRepo).Once(),
		agencyRepo.On("Get", ctx, ag.ID()).Return(ag, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllByAgency", ctx, ag.ID()).Return([]*order.Order{o}, nil).Once(),
		uow.On("SettlementRepository").Return(settlementRepo).Once(),
		settlementRepo.On("CountByAgency", ctx, ag.ID()).Return(0, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewGenerateSettlementCommandHandler(factory, fixedClock{fixedNow})
	s, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Nil(t, s)
	settlementRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}
