package services_test

import (
	"testing"

	"logistics/internal/core/domain/model/agency"
	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteBuilder_Build_LongDistance(t *testing.T) {
	builder := services.NewRouteBuilder()
	table := mustPayTable(t, [3]float64{0, 10, 5000})
	long := mustCarrier(t, "TR-20", carrier.TypeLongDistance,
		[]string{"Buenos Aires", "Córdoba", "Santa Fe"}, table, 500)

	t.Run("should build one route per differing province pair", func(t *testing.T) {
		orders := []*order.Order{
			mustOrder(t, orderSpec{senderCity: "La Plata", senderProv: "Buenos Aires",
				recipientCity: "Córdoba", recipientProv: "Córdoba", weight: 2, freight: 1000}),
			mustOrder(t, orderSpec{senderCity: "Quilmes", senderProv: "Buenos Aires",
				recipientCity: "Villa María", recipientProv: "Córdoba", weight: 3, freight: 1200}),
			mustOrder(t, orderSpec{senderCity: "Rosario", senderProv: "Santa Fe",
				recipientCity: "Córdoba", recipientProv: "Córdoba", weight: 1, freight: 900}),
		}

		routes, err := builder.Build(long, orders, nil, 0, fixedNow)
		require.NoError(t, err)

		require.Len(t, routes, 2)
		assert.Equal(t, "R0001", routes[0].Code())
		assert.Equal(t, "Buenos Aires", routes[0].Origin())
		assert.Equal(t, "Córdoba", routes[0].Destination())
		assert.Len(t, routes[0].Orders(), 2)
		assert.Equal(t, "R0002", routes[1].Code())
		assert.Equal(t, "Santa Fe", routes[1].Origin())
		assert.Equal(t, route.StatusPlanned, routes[0].Status())
	})

	t.Run("should exclude same-province pairs", func(t *testing.T) {
		orders := []*order.Order{mustOrder(t, orderSpec{senderCity: "La Plata", senderProv: "Buenos Aires",
			recipientCity: "Quilmes", recipientProv: "Buenos Aires", weight: 2, freight: 1000})}

		routes, err := builder.Build(long, orders, nil, 0, fixedNow)
		require.NoError(t, err)
		assert.Empty(t, routes)
	})

	t.Run("should collect distinct intermediate cities as stops", func(t *testing.T) {
		orders := []*order.Order{
			mustOrder(t, orderSpec{senderCity: "La Plata", senderProv: "Buenos Aires",
				recipientCity: "Villa María", recipientProv: "Córdoba", weight: 2, freight: 1000}),
			mustOrder(t, orderSpec{senderCity: "la plata", senderProv: "Buenos Aires",
				recipientCity: "Río Cuarto", recipientProv: "Córdoba", weight: 3, freight: 1200}),
		}

		routes, err := builder.Build(long, orders, nil, 0, fixedNow)
		require.NoError(t, err)
		require.Len(t, routes, 1)
		assert.Equal(t, []string{"La Plata", "Villa María", "Río Cuarto"}, routes[0].Stops())
	})

	t.Run("should attach agencies covering origin, stops or destination", func(t *testing.T) {
		covered := mustAgency(t, "AG-COR", "Córdoba", "Córdoba", mustRates(t, 5, 8, 100, 150, 10), 5)
		outside := mustAgency(t, "AG-MIS", "Posadas", "Misiones", mustRates(t, 5, 8, 100, 150, 10), 5)
		orders := []*order.Order{mustOrder(t, orderSpec{senderCity: "La Plata", senderProv: "Buenos Aires",
			recipientCity: "Córdoba", recipientProv: "Córdoba", weight: 2, freight: 1000})}

		routes, err := builder.Build(long, orders, []*agency.Agency{covered, outside}, 0, fixedNow)
		require.NoError(t, err)
		require.Len(t, routes, 1)
		require.Len(t, routes[0].Agencies(), 1)
		assert.True(t, routes[0].Agencies()[0].IsEqual(covered.ID()))
	})

	t.Run("should not mutate any order", func(t *testing.T) {
		o := mustOrder(t, orderSpec{senderCity: "La Plata", senderProv: "Buenos Aires",
			recipientCity: "Córdoba", recipientProv: "Córdoba", weight: 2, freight: 1000})

		_, err := builder.Build(long, []*order.Order{o}, nil, 0, fixedNow)
		require.NoError(t, err)

		assert.Equal(t, order.PendingPickup, o.Status())
		assert.Nil(t, o.Carrier())
		assert.Nil(t, o.Route())
		assert.Len(t, o.History(), 1)
	})

	t.Run("should continue codes from the existing count", func(t *testing.T) {
		orders := []*order.Order{mustOrder(t, orderSpec{senderCity: "La Plata", senderProv: "Buenos Aires",
			recipientCity: "Córdoba", recipientProv: "Córdoba", weight: 2, freight: 1000})}

		routes, err := builder.Build(long, orders, nil, 41, fixedNow)
		require.NoError(t, err)
		require.Len(t, routes, 1)
		assert.Equal(t, "R0042", routes[0].Code())
	})
}

func TestRouteBuilder_Build_Local(t *testing.T) {
	builder := services.NewRouteBuilder()
	table := mustPayTable(t, [3]float64{0, 10, 5000})
	local := mustCarrier(t, "TR-21", carrier.TypeLocal, []string{"Zona Oeste", "La Matanza"}, table, 0)

	t.Run("should group by exact recipient place with address-derived areas", func(t *testing.T) {
		orders := []*order.Order{
			mustOrder(t, orderSpec{senderCity: "Morón", senderProv: "Buenos Aires",
				recipientCity: "La Matanza", recipientProv: "Buenos Aires",
				address: "San Justo, Calle 12 450", weight: 2, freight: 1000}),
			mustOrder(t, orderSpec{senderCity: "Morón", senderProv: "Buenos Aires",
				recipientCity: "La Matanza", recipientProv: "Buenos Aires",
				address: "Ramos Mejía, Av. de Mayo 900", weight: 3, freight: 1200}),
		}

		routes, err := builder.Build(local, orders, nil, 0, fixedNow)
		require.NoError(t, err)

		require.Len(t, routes, 1)
		r := routes[0]
		assert.Equal(t, "Zona Oeste", r.Origin())
		assert.Equal(t, "La Matanza", r.Destination())
		assert.Equal(t, []string{"San Justo", "Ramos Mejía"}, r.Stops())
		assert.Len(t, r.Orders(), 2)
	})

	t.Run("should attach only agencies at the exact destination", func(t *testing.T) {
		at := mustAgency(t, "AG-MAT", "La Matanza", "Buenos Aires", mustRates(t, 5, 8, 100, 150, 10), 5)
		elsewhere := mustAgency(t, "AG-CAP", "Ciudad de Buenos Aires", "Buenos Aires", mustRates(t, 5, 8, 100, 150, 10), 5)
		orders := []*order.Order{mustOrder(t, orderSpec{senderCity: "Morón", senderProv: "Buenos Aires",
			recipientCity: "La Matanza", recipientProv: "Buenos Aires", weight: 2, freight: 1000})}

		routes, err := builder.Build(local, orders, []*agency.Agency{at, elsewhere}, 0, fixedNow)
		require.NoError(t, err)
		require.Len(t, routes, 1)
		require.Len(t, routes[0].Agencies(), 1)
		assert.True(t, routes[0].Agencies()[0].IsEqual(at.ID()))
	})

	t.Run("should skip orders outside the carrier's zones", func(t *testing.T) {
		orders := []*order.Order{mustOrder(t, orderSpec{senderCity: "Rosario", senderProv: "Santa Fe",
			recipientCity: "Rosario", recipientProv: "Santa Fe", weight: 2, freight: 1000})}

		routes, err := builder.Build(local, orders, nil, 0, fixedNow)
		require.NoError(t, err)
		assert.Empty(t, routes)
	})
}
