package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/agency"
	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLongDistanceCarrier(t *testing.T, zones ...string) *carrier.Carrier {
	t.Helper()
	scale, err := carrier.NewPayScale(0, 10, 5000)
	require.NoError(t, err)
	table, err := carrier.NewPayTable([]carrier.PayScale{scale})
	require.NoError(t, err)
	c, err := carrier.NewCarrier(kernel.NewUUID(), "TR-02", "Carrier Dos", "20-33333333-3",
		"11-4000-0003", "Scania", "CD456EF", "Transportes Dos SA", carrier.TypeLongDistance, zones, table, 500)
	require.NoError(t, err)
	return c
}

func TestBuildRoutesCommandHandler_Handle(t *testing.T) {
	t.Run("should persist one route per province pair without touching orders", func(t *testing.T) {
		ctx := t.Context()
		c := testLongDistanceCarrier(t, "Ruta Buenos Aires - Córdoba")
		o := testOrderTo(t, "Córdoba", "Córdoba", fixedNow)

		carrierRepo := new(MockCarrierRepository)
		orderRepo := new(MockOrderRepository)
		agencyRepo := new(MockAgencyRepository)
		routeRepo := new(MockRouteRepository)
		uow := new(MockUoW)
		factory := new(MockRoutingUoWFactory)

		var added *route.Route
		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("CarrierRepository").Return(carrierRepo).Once(),
			carrierRepo.On("Get", ctx, c.ID()).Return(c, nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("GetAllPendingDispatch", ctx).Return([]*order.Order{o}, nil).Once(),
			uow.On("AgencyRepository").Return(agencyRepo).Once(),
			agencyRepo.On("GetAll", ctx).Return([]*agency.Agency{}, nil).Once(),
			uow.On("RouteRepository").Return(routeRepo).Once(),
			routeRepo.On("Count", ctx).Return(3, nil).Once(),
			uow.On("RouteRepository").Return(routeRepo).Once(),
			routeRepo.On("Add", ctx, mock.AnythingOfType("*route.Route")).
				Run(func(args mock.Arguments) {
					added = args.Get(1).(*route.Route)
				}).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewBuildRoutesCommand(c.ID())
		require.NoError(t, err)

		handler := commands.NewBuildRoutesCommandHandler(factory, fixedClock{fixedNow})
		routes, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		require.Len(t, routes, 1)
		require.NotNil(t, added)
		assert.Equal(t, "R0004", added.Code())
		assert.Equal(t, "Buenos Aires - Córdoba", added.Name())
		assert.Equal(t, route.StatusPlanned, added.Status())
		assert.Equal(t, order.PendingPickup, o.Status())
		assert.Nil(t, o.Carrier())
		routeRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should commit without adds when nothing matches the carrier zones", func(t *testing.T) {
		ctx := t.Context()
		c := testLocalCarrier(t, "Zona Oeste - La Matanza")

		carrierRepo := new(MockCarrierRepository)
		orderRepo := new(MockOrderRepository)
		agencyRepo := new(MockAgencyRepository)
		routeRepo := new(MockRouteRepository)
		uow := new(MockUoW)
		factory := new(MockRoutingUoWFactory)

		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("CarrierRepository").Return(carrierRepo).Once(),
			carrierRepo.On("Get", ctx, c.ID()).Return(c, nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("GetAllPendingDispatch", ctx).Return([]*order.Order{}, nil).Once(),
			uow.On("AgencyRepository").Return(agencyRepo).Once(),
			agencyRepo.On("GetAll", ctx).Return([]*agency.Agency{}, nil).Once(),
			uow.On("RouteRepository").Return(routeRepo).Once(),
			routeRepo.On("Count", ctx).Return(0, nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewBuildRoutesCommand(c.ID())
		require.NoError(t, err)

		handler := commands.NewBuildRoutesCommandHandler(factory, fixedClock{fixedNow})
		routes, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Empty(t, routes)
		routeRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
	})
}
