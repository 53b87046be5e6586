package order

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrCostIsNotConstructed is returned when a Cost instance was not created
// through the NewCost factory function.
var ErrCostIsNotConstructed = errors.New("Cost must be created via NewCost")

// Cost is a value object holding the priced breakdown of a shipment.
//
// The total is never supplied from outside: it is derived at construction as
//
//	total = freight + insurance + adminFees + thermoseal + iva
//
// so the breakdown invariant holds for every Cost that exists.
type Cost struct {
	freight    float64
	insurance  float64
	adminFees  float64
	thermoseal float64
	iva        float64
	total      float64

	guard guard.ConstructorGuard
}

// NewCost creates a Cost from its components and derives the total.
// Components must be non-negative; zeros are valid (a zero-cost order is the
// documented outcome of numeric coercion on bad input).
func NewCost(freight, insurance, adminFees, thermoseal, iva float64) (Cost, error) {
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"freight", freight},
		{"insurance", insurance},
		{"adminFees", adminFees},
		{"thermoseal", thermoseal},
		{"iva", iva},
	} {
		if c.value < 0 {
			return Cost{}, errs.NewValueIsInvalidErrorWithCause(c.name, fmt.Errorf("%v is negative", c.value))
		}
	}

	return Cost{
		freight:    freight,
		insurance:  insurance,
		adminFees:  adminFees,
		thermoseal: thermoseal,
		iva:        iva,
		total:      freight + insurance + adminFees + thermoseal + iva,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Freight returns the base freight charge.
func (c Cost) Freight() float64 {
	return c.freight
}

// Insurance returns the insurance charge.
func (c Cost) Insurance() float64 {
	return c.insurance
}

// AdminFees returns the administrative fee.
func (c Cost) AdminFees() float64 {
	return c.adminFees
}

// Thermoseal returns the thermoseal add-on charge.
func (c Cost) Thermoseal() float64 {
	return c.thermoseal
}

// IVA returns the tax amount.
func (c Cost) IVA() float64 {
	return c.iva
}

// Total returns the derived sum of all components.
func (c Cost) Total() float64 {
	return c.total
}

// Validate checks if the Cost was properly constructed.
func (c Cost) Validate() error {
	return c.guard.Validate(ErrCostIsNotConstructed)
}
