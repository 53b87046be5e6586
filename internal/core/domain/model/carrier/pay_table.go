package carrier

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrPayScaleIsNotConstructed is returned when a PayScale instance was not
// created through NewPayScale.
var ErrPayScaleIsNotConstructed = errors.New("PayScale must be created via NewPayScale")

// PayScale is one row of a carrier's pay table: an inclusive weight range and
// the price paid per package copy whose weight falls inside it.
type PayScale struct {
	fromKg    float64
	toKg      float64
	unitPrice float64

	guard guard.ConstructorGuard
}

// NewPayScale creates a PayScale for the inclusive range [fromKg, toKg].
func NewPayScale(fromKg, toKg, unitPrice float64) (PayScale, error) {
	if fromKg < 0 {
		return PayScale{}, errs.NewValueIsInvalidErrorWithCause("fromKg", fmt.Errorf("%v is negative", fromKg))
	}
	if toKg < fromKg {
		return PayScale{}, errs.NewValueIsInvalidErrorWithCause("toKg",
			fmt.Errorf("%v is lower than range start %v", toKg, fromKg))
	}
	if unitPrice < 0 {
		return PayScale{}, errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%v is negative", unitPrice))
	}

	return PayScale{
		fromKg:    fromKg,
		toKg:      toKg,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// FromKg returns the inclusive lower bound of the range.
func (s PayScale) FromKg() float64 {
	return s.fromKg
}

// ToKg returns the inclusive upper bound of the range.
func (s PayScale) ToKg() float64 {
	return s.toKg
}

// UnitPrice returns the per-package price for weights in this range.
func (s PayScale) UnitPrice() float64 {
	return s.unitPrice
}

// Contains reports whether the weight falls inside the inclusive range.
func (s PayScale) Contains(weightKg float64) bool {
	return weightKg >= s.fromKg && weightKg <= s.toKg
}

// Label renders the range for payment breakdowns, e.g. "0-5kg".
func (s PayScale) Label() string {
	return fmt.Sprintf("%g-%gkg", s.fromKg, s.toKg)
}

// Validate checks if the PayScale was properly constructed.
func (s PayScale) Validate() error {
	return s.guard.Validate(ErrPayScaleIsNotConstructed)
}

// PayTable is an ordered list of non-overlapping pay scales.
// Gaps are allowed: a weight no scale covers simply pays nothing, which is the
// documented outcome rather than an error.
type PayTable struct {
	scales []PayScale
}

// NewPayTable creates a PayTable from ordered scales.
// Scales must be valid, sorted by range start and non-overlapping.
func NewPayTable(scales []PayScale) (PayTable, error) {
	for i, s := range scales {
		if err := s.Validate(); err != nil {
			return PayTable{}, err
		}
		if i > 0 && s.fromKg < scales[i-1].toKg {
			return PayTable{}, errs.NewValueIsInvalidErrorWithCause("scales",
				fmt.Errorf("range starting at %v overlaps previous range ending at %v", s.fromKg, scales[i-1].toKg))
		}
	}

	return PayTable{scales: scales}, nil
}

// Scales returns the table rows in order.
func (t PayTable) Scales() []PayScale {
	return t.scales
}

// ScaleFor returns the first scale whose range contains the weight.
// The second return value is false when the weight falls in a gap.
func (t PayTable) ScaleFor(weightKg float64) (PayScale, bool) {
	for _, s := range t.scales {
		if s.Contains(weightKg) {
			return s, true
		}
	}
	return PayScale{}, false
}
