package commands_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/agency"
	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/routesheet"
	"logistics/internal/core/domain/model/settlement"
	"logistics/internal/core/domain/model/tariff"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 21, 10, 0, 0, 0, time.UTC)

// fixedClock pins time for deterministic period and due-date math.
type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByTrackingCode(ctx context.Context, trackingCode string) (*order.Order, error) {
	args := m.Called(ctx, trackingCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPendingDispatch(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByAgency(ctx context.Context, agencyID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, agencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockAgencyRepository struct{ mock.Mock }

func (m *MockAgencyRepository) Add(ctx context.Context, a *agency.Agency) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAgencyRepository) Update(ctx context.Context, a *agency.Agency) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAgencyRepository) Get(ctx context.Context, id kernel.UUID) (*agency.Agency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agency.Agency), args.Error(1)
}

func (m *MockAgencyRepository) GetAll(ctx context.Context) ([]*agency.Agency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*agency.Agency), args.Error(1)
}

type MockCarrierRepository struct{ mock.Mock }

func (m *MockCarrierRepository) Add(ctx context.Context, c *carrier.Carrier) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCarrierRepository) Update(ctx context.Context, c *carrier.Carrier) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCarrierRepository) Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carrier.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) GetAll(ctx context.Context) ([]*carrier.Carrier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*carrier.Carrier), args.Error(1)
}

type MockTariffRepository struct{ mock.Mock }

func (m *MockTariffRepository) Add(ctx context.Context, entry tariff.Entry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockTariffRepository) GetTable(ctx context.Context) (tariff.Table, error) {
	args := m.Called(ctx)
	return args.Get(0).(tariff.Table), args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, r *route.Route) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRouteRepository) Update(ctx context.Context, r *route.Route) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

func (m *MockRouteRepository) GetAllByCarrier(ctx context.Context, carrierID kernel.UUID) ([]*route.Route, error) {
	args := m.Called(ctx, carrierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*route.Route), args.Error(1)
}

func (m *MockRouteRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockRouteSheetRepository struct{ mock.Mock }

func (m *MockRouteSheetRepository) Add(ctx context.Context, s *routesheet.RouteSheet) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockRouteSheetRepository) Update(ctx context.Context, s *routesheet.RouteSheet) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockRouteSheetRepository) Get(ctx context.Context, id kernel.UUID) (*routesheet.RouteSheet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*routesheet.RouteSheet), args.Error(1)
}

func (m *MockRouteSheetRepository) GetAll(ctx context.Context) ([]*routesheet.RouteSheet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*routesheet.RouteSheet), args.Error(1)
}

func (m *MockRouteSheetRepository) GetAllCompletedByCarrier(ctx context.Context, carrierID kernel.UUID) ([]*routesheet.RouteSheet, error) {
	args := m.Called(ctx, carrierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*routesheet.RouteSheet), args.Error(1)
}

type MockSettlementRepository struct{ mock.Mock }

func (m *MockSettlementRepository) Add(ctx context.Context, s *settlement.Settlement) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSettlementRepository) Update(ctx context.Context, s *settlement.Settlement) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSettlementRepository) Get(ctx context.Context, id kernel.UUID) (*settlement.Settlement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settlement.Settlement), args.Error(1)
}

func (m *MockSettlementRepository) GetAllByAgency(ctx context.Context, agencyID kernel.UUID) ([]*settlement.Settlement, error) {
	args := m.Called(ctx, agencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*settlement.Settlement), args.Error(1)
}

func (m *MockSettlementRepository) GetAllPending(ctx context.Context) ([]*settlement.Settlement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*settlement.Settlement), args.Error(1)
}

func (m *MockSettlementRepository) CountByAgency(ctx context.Context, agencyID kernel.UUID) (int, error) {
	args := m.Called(ctx, agencyID)
	return args.Int(0), args.Error(1)
}

// MockUoW satisfies every scoped unit-of-work interface in this package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) AgencyRepository() ports.AgencyRepository {
	return m.Called().Get(0).(ports.AgencyRepository)
}

func (m *MockUoW) CarrierRepository() ports.CarrierRepository {
	return m.Called().Get(0).(ports.CarrierRepository)
}

func (m *MockUoW) TariffRepository() ports.TariffRepository {
	return m.Called().Get(0).(ports.TariffRepository)
}

func (m *MockUoW) RouteRepository() ports.RouteRepository {
	return m.Called().Get(0).(ports.RouteRepository)
}

func (m *MockUoW) RouteSheetRepository() ports.RouteSheetRepository {
	return m.Called().Get(0).(ports.RouteSheetRepository)
}

func (m *MockUoW) SettlementRepository() ports.SettlementRepository {
	return m.Called().Get(0).(ports.SettlementRepository)
}

type MockPricingUoWFactory struct{ mock.Mock }

func (m *MockPricingUoWFactory) Create() commands.PricingUoW {
	return m.Called().Get(0).(commands.PricingUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	return m.Called().Get(0).(commands.DispatchUoW)
}

type MockRoutingUoWFactory struct{ mock.Mock }

func (m *MockRoutingUoWFactory) Create() commands.RoutingUoW {
	return m.Called().Get(0).(commands.RoutingUoW)
}

type MockSettlementUoWFactory struct{ mock.Mock }

func (m *MockSettlementUoWFactory) Create() commands.SettlementUoW {
	return m.Called().Get(0).(commands.SettlementUoW)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	return m.Called().Get(0).(commands.PaymentUoW)
}

type MockAgencyUoWFactory struct{ mock.Mock }

func (m *MockAgencyUoWFactory) Create() commands.AgencyUoW {
	return m.Called().Get(0).(commands.AgencyUoW)
}

type MockSettlementSweepUoWFactory struct{ mock.Mock }

func (m *MockSettlementSweepUoWFactory) Create() commands.SettlementSweepUoW {
	return m.Called().Get(0).(commands.SettlementSweepUoW)
}

type MockBlobStore struct{ mock.Mock }

func (m *MockBlobStore) Store(ctx context.Context, filename string, data []byte) (string, error) {
	args := m.Called(ctx, filename, data)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) Retrieve(ctx context.Context, locator string) ([]byte, error) {
	args := m.Called(ctx, locator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func testAgency(t *testing.T) *agency.Agency {
	t.Helper()
	place, err := kernel.NewPlace("La Matanza", "Buenos Aires")
	require.NoError(t, err)
	rates, err := agency.NewCommissionRates(5, 8, 100, 150, 10)
	require.NoError(t, err)
	a, err := agency.NewAgency(kernel.NewUUID(), "AG-01", "Agencia Oeste", place,
		"Av. Principal 1", "11-4000-0001", "9-18", "Manager", "Zona Oeste", "ag01", "secret",
		rates, 50000, time.Friday)
	require.NoError(t, err)
	return a
}

func testLocalCarrier(t *testing.T, zones ...string) *carrier.Carrier {
	t.Helper()
	scale, err := carrier.NewPayScale(0, 10, 5000)
	require.NoError(t, err)
	table, err := carrier.NewPayTable([]carrier.PayScale{scale})
	require.NoError(t, err)
	c, err := carrier.NewCarrier(kernel.NewUUID(), "TR-01", "Carrier Uno", "20-22222222-2",
		"11-4000-0002", "Sprinter", "AB123CD", "", carrier.TypeLocal, zones, table, 500)
	require.NoError(t, err)
	return c
}

func testOrderTo(t *testing.T, city, province string, createdAt time.Time) *order.Order {
	t.Helper()
	senderPlace, err := kernel.NewPlace("La Matanza", "Buenos Aires")
	require.NoError(t, err)
	recipientPlace, err := kernel.NewPlace(city, province)
	require.NoError(t, err)
	sender, err := order.NewParty("Sender", "20-12345678-9", "11-4000-0000", "Calle Falsa 123", senderPlace)
	require.NoError(t, err)
	recipient, err := order.NewParty("Recipient", "20-12345678-9", "11-4000-0000", "Av. Rivadavia 100", recipientPlace)
	require.NoError(t, err)
	pack, err := order.NewPackage(2, 1, 0, "encomienda origen", "box")
	require.NoError(t, err)
	costs, err := order.NewCost(10000, 0, 0, 0, 0)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "ENV-TEST0001", sender, recipient, pack, costs, createdAt)
	require.NoError(t, err)
	return o
}

func testTariffTable(t *testing.T) tariff.Table {
	t.Helper()
	entry, err := tariff.NewEntry(kernel.NewUUID(), 0, 25, "Buenos Aires", 1000, 0.01, 0.05, 0.21)
	require.NoError(t, err)
	table, err := tariff.NewTable([]tariff.Entry{entry})
	require.NoError(t, err)
	return table
}
