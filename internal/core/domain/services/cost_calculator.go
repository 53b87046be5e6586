package services

import (
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/tariff"
)

// CostCalculator prices a shipment from a tariff table.
//
// Business rules:
//   - Freight is the resolved entry's base price, regardless of weight within the bracket
//   - Insurance is charged on the declared value, admin fees on the freight
//   - IVA is charged on the subtotal of all other lines, thermoseal included
//   - Thermoseal is taken as given; the 10%-of-freight cap is the caller's policy
type CostCalculator struct{}

// NewCostCalculator creates a new CostCalculator instance.
func NewCostCalculator() CostCalculator {
	return CostCalculator{}
}

// Compute resolves the tariff entry for the weight and destination province
// and derives the full cost line-up. The only failure is an empty table.
func (CostCalculator) Compute(
	table tariff.Table,
	weightKg float64,
	province string,
	declaredValue, thermoseal float64,
) (order.Cost, error) {
	entry, err := table.Resolve(weightKg, province)
	if err != nil {
		return order.Cost{}, err
	}

	freight := entry.BasePrice()
	insurance := declaredValue * entry.InsuranceRate()
	adminFees := freight * entry.AdminFeeRate()
	subtotal := freight + insurance + adminFees + thermoseal
	iva := subtotal * entry.IVARate()

	return order.NewCost(freight, insurance, adminFees, thermoseal, iva)
}
