package services_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/agency"
	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/tariff"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 21, 10, 0, 0, 0, time.UTC)

func mustPlace(t *testing.T, city, province string) kernel.Place {
	t.Helper()
	p, err := kernel.NewPlace(city, province)
	require.NoError(t, err)
	return p
}

func mustParty(t *testing.T, name, address, city, province string) order.Party {
	t.Helper()
	p, err := order.NewParty(name, "20-12345678-9", "11-4000-0000", address, mustPlace(t, city, province))
	require.NoError(t, err)
	return p
}

type orderSpec struct {
	senderCity    string
	senderProv    string
	recipientCity string
	recipientProv string
	address       string
	weight        float64
	quantity      int
	declaredValue float64
	serviceType   string
	freight       float64
	thermoseal    float64
	createdAt     time.Time
}

func mustOrder(t *testing.T, spec orderSpec) *order.Order {
	t.Helper()
	if spec.quantity == 0 {
		spec.quantity = 1
	}
	if spec.serviceType == "" {
		spec.serviceType = "encomienda origen"
	}
	if spec.address == "" {
		spec.address = "Av. Rivadavia 100"
	}
	if spec.createdAt.IsZero() {
		spec.createdAt = fixedNow
	}

	pack, err := order.NewPackage(spec.weight, spec.quantity, spec.declaredValue, spec.serviceType, "box")
	require.NoError(t, err)
	costs, err := order.NewCost(spec.freight, 0, 0, spec.thermoseal, 0)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), "TRK-"+kernel.NewUUID().String()[:8],
		mustParty(t, "Sender", "Calle Falsa 123", spec.senderCity, spec.senderProv),
		mustParty(t, "Recipient", spec.address, spec.recipientCity, spec.recipientProv),
		pack, costs, spec.createdAt)
	require.NoError(t, err)
	return o
}

func mustRates(t *testing.T, origin, destination, ecommReceived, ecommDelivered, thermoseal float64) agency.CommissionRates {
	t.Helper()
	rates, err := agency.NewCommissionRates(origin, destination, ecommReceived, ecommDelivered, thermoseal)
	require.NoError(t, err)
	return rates
}

func mustAgency(t *testing.T, code, city, province string, rates agency.CommissionRates, weekday time.Weekday) *agency.Agency {
	t.Helper()
	a, err := agency.NewAgency(kernel.NewUUID(), code, "Agencia "+code, mustPlace(t, city, province),
		"Av. Principal 1", "11-4000-0001", "9-18", "Manager", city, code, "secret",
		rates, 50000, weekday)
	require.NoError(t, err)
	return a
}

func mustPayTable(t *testing.T, scales ...[3]float64) carrier.PayTable {
	t.Helper()
	built := make([]carrier.PayScale, 0, len(scales))
	for _, s := range scales {
		scale, err := carrier.NewPayScale(s[0], s[1], s[2])
		require.NoError(t, err)
		built = append(built, scale)
	}
	table, err := carrier.NewPayTable(built)
	require.NoError(t, err)
	return table
}

func mustCarrier(t *testing.T, code string, ctype carrier.Type, zones []string, table carrier.PayTable, bonus float64) *carrier.Carrier {
	t.Helper()
	c, err := carrier.NewCarrier(kernel.NewUUID(), code, "Carrier "+code, "20-22222222-2",
		"11-4000-0002", "Sprinter", "AB123CD", "", ctype, zones, table, bonus)
	require.NoError(t, err)
	return c
}

func mustTariffTable(t *testing.T, entries ...tariff.Entry) tariff.Table {
	t.Helper()
	table, err := tariff.NewTable(entries)
	require.NoError(t, err)
	return table
}

func mustTariffEntry(t *testing.T, fromKg, toKg float64, province string, basePrice, insuranceRate, adminFeeRate, ivaRate float64) tariff.Entry {
	t.Helper()
	e, err := tariff.NewEntry(kernel.NewUUID(), fromKg, toKg, province, basePrice, insuranceRate, adminFeeRate, ivaRate)
	require.NoError(t, err)
	return e
}
