package queries_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/core/domain/model/agency"
	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/routesheet"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 21, 10, 0, 0, 0, time.UTC)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
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

type MockCarrierRepository struct {
	mock.Mock
}

func (m *MockCarrierRepository) Add(ctx context.Context, aggregate *carrier.Carrier) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCarrierRepository) Update(ctx context.Context, aggregate *carrier.Carrier) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
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

type MockRouteSheetRepository struct {
	mock.Mock
}

func (m *MockRouteSheetRepository) Add(ctx context.Context, aggregate *routesheet.RouteSheet) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRouteSheetRepository) Update(ctx context.Context, aggregate *routesheet.RouteSheet) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
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

type MockTrackingCache struct {
	mock.Mock
}

func (m *MockTrackingCache) Get(ctx context.Context, trackingCode string) ([]byte, bool, error) {
	args := m.Called(ctx, trackingCode)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *MockTrackingCache) Set(ctx context.Context, trackingCode string, payload []byte, ttl time.Duration) error {
	args := m.Called(ctx, trackingCode, payload, ttl)
	return args.Error(0)
}

func testCarrier(t *testing.T, scales ...[3]float64) *carrier.Carrier {
	t.Helper()
	payScales := make([]carrier.PayScale, 0, len(scales))
	for _, s := range scales {
		scale, err := carrier.NewPayScale(s[0], s[1], s[2])
		require.NoError(t, err)
		payScales = append(payScales, scale)
	}
	table, err := carrier.NewPayTable(payScales)
	require.NoError(t, err)
	c, err := carrier.NewCarrier(kernel.NewUUID(), "TR-01", "Carrier Uno", "20-22222222-2",
		"11-4000-0002", "Sprinter", "AB123CD", "", carrier.TypeLocal,
		[]string{"Zona Oeste - La Matanza"}, table, 500)
	require.NoError(t, err)
	return c
}

func testOrder(t *testing.T, trackingCode string, weightKg float64, quantity int) *order.Order {
	t.Helper()
	senderPlace, err := kernel.NewPlace("La Matanza", "Buenos Aires")
	require.NoError(t, err)
	recipientPlace, err := kernel.NewPlace("Morón", "Buenos Aires")
	require.NoError(t, err)
	sender, err := order.NewParty("Sender", "20-12345678-9", "11-4000-0000", "Calle Falsa 123", senderPlace)
	require.NoError(t, err)
	recipient, err := order.NewParty("Recipient", "20-12345678-9", "11-4000-0001", "Av. Rivadavia 100", recipientPlace)
	require.NoError(t, err)
	pack, err := order.NewPackage(weightKg, quantity, 0, "encomienda origen", "box")
	require.NoError(t, err)
	costs, err := order.NewCost(10000, 0, 0, 0, 0)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), trackingCode, sender, recipient, pack, costs, fixedNow)
	require.NoError(t, err)
	return o
}

func completedSheet(t *testing.T, carrierID kernel.UUID, code string, orderIDs []kernel.UUID) *routesheet.RouteSheet {
	t.Helper()
	destination, err := kernel.NewPlace("Morón", "Buenos Aires")
	require.NoError(t, err)
	completedAt := fixedNow.Add(2 * time.Hour)
	sheet, err := routesheet.RestoreRouteSheet(kernel.NewUUID(), code, destination,
		kernel.NewUUID(), &carrierID, orderIDs, routesheet.StatusCompleted,
		fixedNow, &fixedNow, &completedAt)
	require.NoError(t, err)
	return sheet
}

type MockAgencyRepository struct {
	mock.Mock
}

func (m *MockAgencyRepository) Add(ctx context.Context, aggregate *agency.Agency) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAgencyRepository) Update(ctx context.Context, aggregate *agency.Agency) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
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

func testAgencyWithCredit(t *testing.T, creditLimit, currentCredit float64) *agency.Agency {
	t.Helper()
	place, err := kernel.NewPlace("La Matanza", "Buenos Aires")
	require.NoError(t, err)
	rates, err := agency.NewCommissionRates(5, 8, 100, 150, 10)
	require.NoError(t, err)
	a, err := agency.RestoreAgency(kernel.NewUUID(), "AG-01", "Agencia Oeste", place,
		"Av. Principal 1", "11-4000-0001", "9-18", "Manager", "Zona Oeste", "ag01", "secret",
		rates, creditLimit, currentCredit, time.Friday, nil, true)
	require.NoError(t, err)
	return a
}
