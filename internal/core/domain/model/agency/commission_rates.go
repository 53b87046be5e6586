package agency

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrCommissionRatesAreNotConstructed is returned when a CommissionRates
// instance was not created through NewCommissionRates.
var ErrCommissionRatesAreNotConstructed = errors.New("CommissionRates must be created via NewCommissionRates")

// CommissionRates holds the five independent commission parameters an agency
// earns with. Percentages apply to the freight component only; the e-commerce
// commissions are fixed amounts per order.
type CommissionRates struct {
	originPercent      float64
	destinationPercent float64
	ecommerceReceived  float64
	ecommerceDelivered float64
	thermosealPercent  float64

	guard guard.ConstructorGuard
}

// NewCommissionRates creates the agency's commission parameters.
// Percentages are expressed as whole numbers (5.0 means 5%); all values must
// be non-negative.
func NewCommissionRates(
	originPercent, destinationPercent, ecommerceReceived, ecommerceDelivered, thermosealPercent float64,
) (CommissionRates, error) {
	for _, r := range []struct {
		name  string
		value float64
	}{
		{"originPercent", originPercent},
		{"destinationPercent", destinationPercent},
		{"ecommerceReceived", ecommerceReceived},
		{"ecommerceDelivered", ecommerceDelivered},
		{"thermosealPercent", thermosealPercent},
	} {
		if r.value < 0 {
			return CommissionRates{}, errs.NewValueIsInvalidErrorWithCause(r.name, fmt.Errorf("%v is negative", r.value))
		}
	}

	return CommissionRates{
		originPercent:      originPercent,
		destinationPercent: destinationPercent,
		ecommerceReceived:  ecommerceReceived,
		ecommerceDelivered: ecommerceDelivered,
		thermosealPercent:  thermosealPercent,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// OriginPercent returns the rate applied to freight of origin-collected parcels.
func (r CommissionRates) OriginPercent() float64 {
	return r.originPercent
}

// DestinationPercent returns the rate applied to freight of destination-collected parcels.
func (r CommissionRates) DestinationPercent() float64 {
	return r.destinationPercent
}

// EcommerceReceived returns the fixed commission for receiving an e-commerce order.
func (r CommissionRates) EcommerceReceived() float64 {
	return r.ecommerceReceived
}

// EcommerceDelivered returns the fixed commission added once an e-commerce
// order reaches Delivered.
func (r CommissionRates) EcommerceDelivered() float64 {
	return r.ecommerceDelivered
}

// ThermosealPercent returns the rate applied to the thermoseal charge.
func (r CommissionRates) ThermosealPercent() float64 {
	return r.thermosealPercent
}

// Validate checks if the CommissionRates were properly constructed.
func (r CommissionRates) Validate() error {
	return r.guard.Validate(ErrCommissionRatesAreNotConstructed)
}
