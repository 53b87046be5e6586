// Package agency provides the Agency aggregate: a physical drop-off/pickup
// point that acts as a zone gateway and earns commissions on the orders it
// handles. Agencies are long-lived configuration entities; outside of status
// flags, the only frequently mutated field is the running credit balance.
package agency

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrAgencyIsNotConstructed is returned when an Agency instance was not
// created through NewAgency or RestoreAgency.
var ErrAgencyIsNotConstructed = errors.New("Agency must be created via NewAgency constructor")

// Agency is an aggregate root for one network agency.
//
// Credit is observed, not gated: AdjustCredit applies deltas without clamping
// and WithinLimit is a purely advisory check. Nothing in the engine blocks an
// operation because the limit would be exceeded.
type Agency struct {
	id        kernel.UUID
	code      string
	name      string
	place     kernel.Place
	address   string
	phone     string
	schedule  string
	manager   string
	zoneLabel string
	username  string
	password  string

	rates             CommissionRates
	creditLimit       float64
	currentCredit     float64
	settlementWeekday time.Weekday
	lastSettlementAt  *time.Time
	active            bool
}

// NewAgency creates an active Agency with zero credit usage.
func NewAgency(
	id kernel.UUID,
	code, name string,
	place kernel.Place,
	address, phone, schedule, manager, zoneLabel string,
	username, password string,
	rates CommissionRates,
	creditLimit float64,
	settlementWeekday time.Weekday,
) (*Agency, error) {
	if err := errors.Join(
		id.Validate(),
		place.Validate(),
		rates.Validate(),
	); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if creditLimit < 0 {
		return nil, errs.NewValueIsInvalidError("creditLimit")
	}

	return &Agency{
		id:                id,
		code:              code,
		name:              name,
		place:             place,
		address:           address,
		phone:             phone,
		schedule:          schedule,
		manager:           manager,
		zoneLabel:         zoneLabel,
		username:          username,
		password:          password,
		rates:             rates,
		creditLimit:       creditLimit,
		settlementWeekday: settlementWeekday,
		active:            true,
	}, nil
}

// RestoreAgency reconstructs an Agency from persistence with its full state.
func RestoreAgency(
	id kernel.UUID,
	code, name string,
	place kernel.Place,
	address, phone, schedule, manager, zoneLabel string,
	username, password string,
	rates CommissionRates,
	creditLimit, currentCredit float64,
	settlementWeekday time.Weekday,
	lastSettlementAt *time.Time,
	active bool,
) (*Agency, error) {
	a, err := NewAgency(id, code, name, place, address, phone, schedule, manager, zoneLabel,
		username, password, rates, creditLimit, settlementWeekday)
	if err != nil {
		return nil, err
	}

	a.currentCredit = currentCredit
	a.lastSettlementAt = lastSettlementAt
	a.active = active
	return a, nil
}

// Validate ensures the Agency was created through a factory function.
func (a *Agency) Validate() error {
	if a == nil || a.code == "" {
		return ErrAgencyIsNotConstructed
	}
	return nil
}

// ID returns the agency's unique identifier.
func (a *Agency) ID() kernel.UUID {
	return a.id
}

// Code returns the short agency code used in settlement numbers.
func (a *Agency) Code() string {
	return a.code
}

// Name returns the agency's display name.
func (a *Agency) Name() string {
	return a.name
}

// Place returns the agency's city/province pair.
func (a *Agency) Place() kernel.Place {
	return a.place
}

// Address returns the street address.
func (a *Agency) Address() string {
	return a.address
}

// Phone returns the contact phone.
func (a *Agency) Phone() string {
	return a.phone
}

// Schedule returns the free-text opening hours.
func (a *Agency) Schedule() string {
	return a.schedule
}

// Manager returns the responsible manager's name.
func (a *Agency) Manager() string {
	return a.manager
}

// ZoneLabel returns the free-text zone the agency claims to cover.
func (a *Agency) ZoneLabel() string {
	return a.zoneLabel
}

// Username returns the agency's login name.
func (a *Agency) Username() string {
	return a.username
}

// Password returns the agency's stored credential.
func (a *Agency) Password() string {
	return a.password
}

// Rates returns the agency's commission parameters.
func (a *Agency) Rates() CommissionRates {
	return a.rates
}

// CreditLimit returns the configured credit ceiling.
func (a *Agency) CreditLimit() float64 {
	return a.creditLimit
}

// CurrentCredit returns the outstanding credit balance.
func (a *Agency) CurrentCredit() float64 {
	return a.currentCredit
}

// SettlementWeekday returns the weekday the weekly settlement window ends on.
func (a *Agency) SettlementWeekday() time.Weekday {
	return a.settlementWeekday
}

// LastSettlementAt returns when the last settlement was generated, or nil.
func (a *Agency) LastSettlementAt() *time.Time {
	return a.lastSettlementAt
}

// IsActive reports whether the agency participates in the network.
func (a *Agency) IsActive() bool {
	return a.active
}

// AdjustCredit adds delta (positive or negative) to the outstanding credit.
// No floor or ceiling is applied here; the limit is advisory only.
func (a *Agency) AdjustCredit(delta float64) {
	a.currentCredit += delta
}

// WithinLimit reports whether charging the given amount would keep the
// outstanding credit at or under the limit. Advisory: callers may consult it,
// the engine never enforces it.
func (a *Agency) WithinLimit(amount float64) bool {
	return a.currentCredit+amount <= a.creditLimit
}

// MarkSettled stamps the time the latest settlement was generated for the
// agency. Used by the weekly settlement run to skip agencies already settled
// in the current calendar week.
func (a *Agency) MarkSettled(at time.Time) {
	a.lastSettlementAt = &at
}

// Deactivate removes the agency from matching and settlement runs without
// deleting it.
func (a *Agency) Deactivate() {
	a.active = false
}
