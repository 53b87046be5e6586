package services

import (
	"strings"
	"time"

	"logistics/internal/core/domain/model/agency"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/settlement"
)

// SettlementCalculator folds an agency's orders of one trailing weekly window
// into a Settlement.
//
// Commission rules differ by service type and are classified by substring
// over the free-text service-type label: labels containing "ecommerce" (with
// or without the hyphen in "e-commerce") earn the fixed e-commerce
// commissions, labels containing "destino" earn the
// destination-collected percentage, everything else the origin percentage.
// Percentage commissions apply to the freight component only, never to
// insurance, admin fees or IVA. Thermoseal earns its own percentage on top,
// independent of the branch taken.
type SettlementCalculator struct{}

// NewSettlementCalculator creates a new SettlementCalculator instance.
func NewSettlementCalculator() SettlementCalculator {
	return SettlementCalculator{}
}

// PeriodEnd resolves the most recent date at or before now minus seven days
// that falls on the given weekday, normalized to midnight in now's location.
func (SettlementCalculator) PeriodEnd(now time.Time, weekday time.Weekday) time.Time {
	d := now.AddDate(0, 0, -7)
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	for d.Weekday() != weekday {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// SettledThisWeek reports whether the agency already got a settlement during
// the current calendar week, anchored on Sunday.
func (SettlementCalculator) SettledThisWeek(ag *agency.Agency, now time.Time) bool {
	last := ag.LastSettlementAt()
	if last == nil {
		return false
	}
	weekStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -int(now.Weekday()))
	return !last.Before(weekStart)
}

// Generate builds the settlement for the agency's trailing weekly window
// ending on its configured weekday. Orders assigned to the agency and
// created inside the window are included; when none fall inside, Generate
// returns nil with no error. sequence drives the per-agency settlement
// number.
func (s SettlementCalculator) Generate(
	ag *agency.Agency,
	orders []*order.Order,
	sequence int,
	now time.Time,
) (*settlement.Settlement, error) {
	periodEnd := s.PeriodEnd(now, ag.SettlementWeekday())
	periodStart := periodEnd.AddDate(0, 0, -6)
	windowEnd := periodEnd.AddDate(0, 0, 1)

	var (
		included         []kernel.UUID
		totalSales       float64
		totalCommissions float64
	)
	for _, o := range orders {
		if o.Agency() == nil || !o.Agency().IsEqual(ag.ID()) {
			continue
		}
		if o.CreatedAt().Before(periodStart) || !o.CreatedAt().Before(windowEnd) {
			continue
		}
		included = append(included, o.ID())
		totalSales += o.Costs().Total()
		totalCommissions += CommissionFor(o, ag.Rates())
	}
	if len(included) == 0 {
		return nil, nil
	}

	number := settlement.NumberFor(ag.Code(), sequence)
	return settlement.NewSettlement(kernel.NewUUID(), ag.ID(), number,
		periodStart, periodEnd, totalSales, totalCommissions, now, included)
}

// CommissionFor computes the agency commission earned on a single order.
func CommissionFor(o *order.Order, rates agency.CommissionRates) float64 {
	serviceType := strings.ToLower(o.Package().ServiceType())

	var commission float64
	switch {
	// Hyphens are stripped so "e-commerce" and "ecommerce" classify alike.
	case strings.Contains(strings.ReplaceAll(serviceType, "-", ""), "ecommerce"):
		commission = rates.EcommerceReceived()
		if o.Status() == order.Delivered {
			commission += rates.EcommerceDelivered()
		}
	case strings.Contains(serviceType, "destino"):
		commission = o.Costs().Freight() * rates.DestinationPercent() / 100
	default:
		commission = o.Costs().Freight() * rates.OriginPercent() / 100
	}

	if o.Costs().Thermoseal() > 0 {
		commission += o.Costs().Thermoseal() * rates.ThermosealPercent() / 100
	}
	return commission
}
