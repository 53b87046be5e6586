package services_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/routesheet"
	"logistics/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteSheetPlanner_Plan(t *testing.T) {
	planner := services.NewRouteSheetPlanner()
	rates := mustRates(t, 5, 8, 100, 150, 10)

	t.Run("should group orders by recipient place", func(t *testing.T) {
		ag := mustAgency(t, "AG-01", "La Matanza", "Buenos Aires", rates, time.Friday)
		orders := []*order.Order{
			mustOrder(t, orderSpec{senderCity: "La Matanza", senderProv: "Buenos Aires",
				recipientCity: "Rosario", recipientProv: "Santa Fe", weight: 2, freight: 1000}),
			mustOrder(t, orderSpec{senderCity: "La Matanza", senderProv: "Buenos Aires",
				recipientCity: "rosario", recipientProv: "santa fe", weight: 3, freight: 1200}),
			mustOrder(t, orderSpec{senderCity: "La Matanza", senderProv: "Buenos Aires",
				recipientCity: "Córdoba", recipientProv: "Córdoba", weight: 1, freight: 900}),
		}

		sheets, err := planner.Plan(ag, orders, nil, nil, fixedNow)
		require.NoError(t, err)

		require.Len(t, sheets, 2)
		assert.Equal(t, "HR0001", sheets[0].Code())
		assert.Equal(t, "HR0002", sheets[1].Code())
		assert.Len(t, sheets[0].Orders(), 2)
		assert.Len(t, sheets[1].Orders(), 1)
		assert.Equal(t, routesheet.StatusPending, sheets[0].Status())
	})

	t.Run("should skip orders unrelated to the agency or already dispatched", func(t *testing.T) {
		ag := mustAgency(t, "AG-01", "La Matanza", "Buenos Aires", rates, time.Friday)
		unrelated := mustOrder(t, orderSpec{senderCity: "Salta", senderProv: "Salta",
			recipientCity: "Posadas", recipientProv: "Misiones", weight: 2, freight: 1000})
		dispatched := mustOrder(t, orderSpec{senderCity: "La Matanza", senderProv: "Buenos Aires",
			recipientCity: "Rosario", recipientProv: "Santa Fe", weight: 2, freight: 1000})
		require.NoError(t, dispatched.AssignCarrier(mustCarrier(t, "TR-09", carrier.TypeLocal,
			[]string{"Rosario"}, mustPayTable(t, [3]float64{0, 10, 5000}), 0).ID()))

		sheets, err := planner.Plan(ag, []*order.Order{unrelated, dispatched}, nil, nil, fixedNow)
		require.NoError(t, err)
		assert.Empty(t, sheets)
	})

	t.Run("should not duplicate a zone with an active sheet", func(t *testing.T) {
		ag := mustAgency(t, "AG-01", "La Matanza", "Buenos Aires", rates, time.Friday)
		orders := []*order.Order{mustOrder(t, orderSpec{senderCity: "La Matanza", senderProv: "Buenos Aires",
			recipientCity: "Rosario", recipientProv: "Santa Fe", weight: 2, freight: 1000})}

		first, err := planner.Plan(ag, orders, nil, nil, fixedNow)
		require.NoError(t, err)
		require.Len(t, first, 1)

		second, err := planner.Plan(ag, orders, first, nil, fixedNow)
		require.NoError(t, err)
		assert.Empty(t, second)
	})

	t.Run("should plan the zone again once the previous sheet completed", func(t *testing.T) {
		ag := mustAgency(t, "AG-01", "La Matanza", "Buenos Aires", rates, time.Friday)
		orders := []*order.Order{mustOrder(t, orderSpec{senderCity: "La Matanza", senderProv: "Buenos Aires",
			recipientCity: "Rosario", recipientProv: "Santa Fe", weight: 2, freight: 1000})}

		first, err := planner.Plan(ag, orders, nil, nil, fixedNow)
		require.NoError(t, err)
		require.Len(t, first, 1)
		require.NoError(t, first[0].AssignCarrier(mustCarrier(t, "TR-08", carrier.TypeLocal,
			[]string{"Rosario"}, mustPayTable(t, [3]float64{0, 10, 5000}), 0).ID(), fixedNow))
		require.NoError(t, first[0].Complete(fixedNow))

		second, err := planner.Plan(ag, orders, first, nil, fixedNow)
		require.NoError(t, err)
		require.Len(t, second, 1)
		assert.Equal(t, "HR0002", second[0].Code())
	})

	t.Run("should dispatch the group when a carrier qualifies", func(t *testing.T) {
		ag := mustAgency(t, "AG-01", "La Matanza", "Buenos Aires", rates, time.Friday)
		o := mustOrder(t, orderSpec{senderCity: "La Matanza", senderProv: "Buenos Aires",
			recipientCity: "Rosario", recipientProv: "Santa Fe", weight: 2, freight: 1000})
		local := mustCarrier(t, "TR-05", carrier.TypeLocal, []string{"Rosario y alrededores"},
			mustPayTable(t, [3]float64{0, 10, 5000}), 0)

		sheets, err := planner.Plan(ag, []*order.Order{o}, nil, []*carrier.Carrier{local}, fixedNow)
		require.NoError(t, err)
		require.Len(t, sheets, 1)

		sheet := sheets[0]
		assert.Equal(t, routesheet.StatusAssigned, sheet.Status())
		require.NotNil(t, sheet.Carrier())
		assert.True(t, sheet.Carrier().IsEqual(local.ID()))

		assert.Equal(t, order.InTransit, o.Status())
		require.NotNil(t, o.Carrier())
		assert.True(t, o.Carrier().IsEqual(local.ID()))
		require.NotNil(t, o.Agency())
		assert.True(t, o.Agency().IsEqual(ag.ID()))
		require.NotNil(t, o.RouteSheet())
		assert.True(t, o.RouteSheet().IsEqual(sheet.ID()))

		latest := o.History()[0]
		assert.Contains(t, latest.Description(), sheet.Code())
		assert.Contains(t, latest.Description(), local.Name())
	})

	t.Run("should leave orders untouched when no carrier qualifies", func(t *testing.T) {
		ag := mustAgency(t, "AG-01", "La Matanza", "Buenos Aires", rates, time.Friday)
		o := mustOrder(t, orderSpec{senderCity: "La Matanza", senderProv: "Buenos Aires",
			recipientCity: "Rosario", recipientProv: "Santa Fe", weight: 2, freight: 1000})

		sheets, err := planner.Plan(ag, []*order.Order{o}, nil, nil, fixedNow)
		require.NoError(t, err)
		require.Len(t, sheets, 1)

		assert.Equal(t, routesheet.StatusPending, sheets[0].Status())
		assert.Equal(t, order.PendingPickup, o.Status())
		assert.Nil(t, o.Carrier())
	})
}
