// Package tariff provides the tariff table: priced weight-bracket/province
// rules used to derive freight and the dependent fee rates for a shipment.
// Entries are long-lived configuration edited through administrative
// operations; duplicates are not deduplicated and the first match always wins.
package tariff

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrEntryIsNotConstructed is returned when an Entry instance was not created
// through NewEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry")

// ErrEmptyTable is returned when a lookup runs against a table with no
// entries. A configured system never has an empty table; this guards the
// first-entry fallback from indexing into nothing.
var ErrEmptyTable = errs.NewObjectNotFoundError("tariff", "empty table")

// Entry is one tariff rule: an inclusive weight range, the province it
// applies to, the base freight price, and the rates the cost derivation uses.
type Entry struct {
	id            kernel.UUID
	fromKg        float64
	toKg          float64
	province      string
	basePrice     float64
	insuranceRate float64
	adminFeeRate  float64
	ivaRate       float64

	guard guard.ConstructorGuard
}

// NewEntry creates a tariff Entry for the inclusive range [fromKg, toKg].
// Rates are fractions (0.21 means 21%).
func NewEntry(
	id kernel.UUID,
	fromKg, toKg float64,
	province string,
	basePrice, insuranceRate, adminFeeRate, ivaRate float64,
) (Entry, error) {
	if err := id.Validate(); err != nil {
		return Entry{}, err
	}
	if fromKg < 0 {
		return Entry{}, errs.NewValueIsInvalidErrorWithCause("fromKg", fmt.Errorf("%v is negative", fromKg))
	}
	if toKg < fromKg {
		return Entry{}, errs.NewValueIsInvalidErrorWithCause("toKg",
			fmt.Errorf("%v is lower than range start %v", toKg, fromKg))
	}
	if province == "" {
		return Entry{}, errs.NewValueIsRequiredError("province")
	}
	for _, r := range []struct {
		name  string
		value float64
	}{
		{"basePrice", basePrice},
		{"insuranceRate", insuranceRate},
		{"adminFeeRate", adminFeeRate},
		{"ivaRate", ivaRate},
	} {
		if r.value < 0 {
			return Entry{}, errs.NewValueIsInvalidErrorWithCause(r.name, fmt.Errorf("%v is negative", r.value))
		}
	}

	return Entry{
		id:            id,
		fromKg:        fromKg,
		toKg:          toKg,
		province:      province,
		basePrice:     basePrice,
		insuranceRate: insuranceRate,
		adminFeeRate:  adminFeeRate,
		ivaRate:       ivaRate,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// ID returns the entry's unique identifier.
func (e Entry) ID() kernel.UUID {
	return e.id
}

// FromKg returns the inclusive lower bound of the weight range.
func (e Entry) FromKg() float64 {
	return e.fromKg
}

// ToKg returns the inclusive upper bound of the weight range.
func (e Entry) ToKg() float64 {
	return e.toKg
}

// Province returns the province the entry prices.
func (e Entry) Province() string {
	return e.province
}

// BasePrice returns the freight price for the bracket.
func (e Entry) BasePrice() float64 {
	return e.basePrice
}

// InsuranceRate returns the fraction of declared value charged as insurance.
func (e Entry) InsuranceRate() float64 {
	return e.insuranceRate
}

// AdminFeeRate returns the fraction of freight charged as administrative fee.
func (e Entry) AdminFeeRate() float64 {
	return e.adminFeeRate
}

// IVARate returns the tax fraction applied to the subtotal.
func (e Entry) IVARate() float64 {
	return e.ivaRate
}

// ContainsWeight reports whether the weight falls in the inclusive range.
func (e Entry) ContainsWeight(weightKg float64) bool {
	return weightKg >= e.fromKg && weightKg <= e.toKg
}

// MatchesProvince reports whether the entry prices the given province,
// ignoring case.
func (e Entry) MatchesProvince(province string) bool {
	return strings.EqualFold(e.province, province)
}

// Validate checks if the Entry was properly constructed.
func (e Entry) Validate() error {
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// Table is an ordered tariff table. Resolution order for a lookup is fixed:
//
//  1. first entry matching both the weight range and the province
//  2. first entry whose weight range contains the weight, any province
//  3. the first entry in the table
//
// Entries are scanned in stored order and the first match wins, so duplicate
// (range, province) pairs behave exactly as configured.
type Table struct {
	entries []Entry
}

// NewTable creates a Table over the given entries, preserving their order.
func NewTable(entries []Entry) (Table, error) {
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return Table{}, err
		}
	}
	return Table{entries: entries}, nil
}

// Entries returns the table rows in stored order.
func (t Table) Entries() []Entry {
	return t.entries
}

// Resolve finds the tariff entry for a weight/province pair using the
// three-step resolution order. ErrEmptyTable is the only failure mode.
func (t Table) Resolve(weightKg float64, province string) (Entry, error) {
	if len(t.entries) == 0 {
		return Entry{}, ErrEmptyTable
	}

	for _, e := range t.entries {
		if e.ContainsWeight(weightKg) && e.MatchesProvince(province) {
			return e, nil
		}
	}

	for _, e := range t.entries {
		if e.ContainsWeight(weightKg) {
			return e, nil
		}
	}

	return t.entries[0], nil
}
