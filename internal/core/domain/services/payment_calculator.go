package services

import (
	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/order"
)

// PaymentLine is one weight-scale bucket of a carrier payment: how many
// package copies fell into the scale and what they are worth.
type PaymentLine struct {
	ScaleLabel string
	UnitPrice  float64
	Packages   int
	Amount     float64
}

// PaymentSummary is a carrier payment broken down by weight scale. Total
// always equals the sum of the line amounts plus the delivery bonus.
type PaymentSummary struct {
	Lines []PaymentLine
	Bonus float64
	Total float64
}

// PaymentCalculator computes carrier compensation from the carrier's
// weight-scale pay table plus per-package delivery bonuses.
//
// The aggregate amount and the per-scale breakdown are both derived from the
// same allocation pass, so the two views cannot diverge. An order whose
// weight falls in a gap of the pay table contributes zero freight pay; the
// delivery bonus is still due when such an order was delivered.
type PaymentCalculator struct{}

// NewPaymentCalculator creates a new PaymentCalculator instance.
func NewPaymentCalculator() PaymentCalculator {
	return PaymentCalculator{}
}

// ComputePayment returns the total owed to the carrier for the orders:
// unit price times package quantity per matched scale, plus the delivery
// bonus times quantity for every delivered order.
func (p PaymentCalculator) ComputePayment(c *carrier.Carrier, orders []*order.Order) float64 {
	return p.Summarize(c, orders).Total
}

// Summarize allocates the orders onto the carrier's pay scales and returns
// the per-scale breakdown together with the bonus and total.
func (PaymentCalculator) Summarize(c *carrier.Carrier, orders []*order.Order) PaymentSummary {
	lineIndex := make(map[string]int)
	summary := PaymentSummary{}

	for _, o := range orders {
		pack := o.Package()
		if scale, ok := c.PayTable().ScaleFor(pack.Weight()); ok {
			label := scale.Label()
			i, seen := lineIndex[label]
			if !seen {
				i = len(summary.Lines)
				lineIndex[label] = i
				summary.Lines = append(summary.Lines, PaymentLine{
					ScaleLabel: label,
					UnitPrice:  scale.UnitPrice(),
				})
			}
			summary.Lines[i].Packages += pack.Quantity()
			summary.Lines[i].Amount += scale.UnitPrice() * float64(pack.Quantity())
		}

		if o.Status() == order.Delivered {
			summary.Bonus += c.DeliveryBonus() * float64(pack.Quantity())
		}
	}

	for _, line := range summary.Lines {
		summary.Total += line.Amount
	}
	summary.Total += summary.Bonus
	return summary
}
