package services

import (
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/agency"
	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/routesheet"
)

// RouteSheetPlanner batches an agency's pending orders into route sheets, one
// per destination zone, and auto-assigns a carrier per sheet when one
// qualifies.
//
// Unlike the RouteBuilder, a sheet that gets a carrier dispatches its orders
// immediately: each one is assigned the agency and carrier, attached to the
// sheet and transitioned to InTransit. The two services keep different
// side-effect contracts on purpose.
type RouteSheetPlanner struct {
	matcher ZoneMatcher
}

// NewRouteSheetPlanner creates a new RouteSheetPlanner instance.
func NewRouteSheetPlanner() RouteSheetPlanner {
	return RouteSheetPlanner{matcher: NewZoneMatcher()}
}

// Plan creates route sheets for ag from the given orders. Only orders still
// pending dispatch whose sender or recipient matches the agency's place are
// considered; they are grouped by recipient place. A group whose destination
// already has an active sheet for this agency is skipped, which makes the
// call idempotent.
//
// sheets must hold all existing route sheets: they drive both the
// active-sheet guard and the sequential codes. Orders in dispatched groups
// are mutated in place; only the newly created sheets are returned.
func (p RouteSheetPlanner) Plan(
	ag *agency.Agency,
	orders []*order.Order,
	sheets []*routesheet.RouteSheet,
	carriers []*carrier.Carrier,
	now time.Time,
) ([]*routesheet.RouteSheet, error) {
	groups, keys := p.groupEligible(ag, orders)

	var created []*routesheet.RouteSheet
	for _, key := range keys {
		group := groups[key]
		destination := group[0].Recipient().Place()

		if hasActiveSheet(sheets, ag.ID(), destination) {
			continue
		}

		code := routesheet.CodeFor(len(sheets) + len(created) + 1)
		ids := make([]kernel.UUID, 0, len(group))
		for _, o := range group {
			ids = append(ids, o.ID())
		}

		sheet, err := routesheet.NewRouteSheet(kernel.NewUUID(), code, destination, ag.ID(), ids, now)
		if err != nil {
			return nil, err
		}

		if c := p.matcher.AutoAssignCarrier(destination, carriers); c != nil {
			if err = p.dispatch(sheet, group, ag, c, now); err != nil {
				return nil, err
			}
		}

		created = append(created, sheet)
	}

	return created, nil
}

// groupEligible collects the agency's dispatchable orders grouped by
// recipient place, keys in first-seen order.
func (p RouteSheetPlanner) groupEligible(ag *agency.Agency, orders []*order.Order) (map[string][]*order.Order, []string) {
	groups := make(map[string][]*order.Order)
	var keys []string

	for _, o := range orders {
		if !o.IsPendingDispatch() {
			continue
		}
		if !o.Recipient().Place().IsEqual(ag.Place()) && !o.Sender().Place().IsEqual(ag.Place()) {
			continue
		}

		key := strings.ToLower(o.Recipient().Place().String())
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], o)
	}

	return groups, keys
}

func (p RouteSheetPlanner) dispatch(
	sheet *routesheet.RouteSheet,
	group []*order.Order,
	ag *agency.Agency,
	c *carrier.Carrier,
	now time.Time,
) error {
	if err := sheet.AssignCarrier(c.ID(), now); err != nil {
		return err
	}

	description := fmt.Sprintf("Dispatched on route sheet %s with carrier %s", sheet.Code(), c.Name())
	for _, o := range group {
		if err := o.AssignAgency(ag.ID()); err != nil {
			return err
		}
		if err := o.AssignCarrier(c.ID()); err != nil {
			return err
		}
		if err := o.AttachToRouteSheet(sheet.ID()); err != nil {
			return err
		}
		if err := o.Transition(order.InTransit, now, ag.Place().String(), description); err != nil {
			return err
		}
	}
	return nil
}

func hasActiveSheet(sheets []*routesheet.RouteSheet, agencyID kernel.UUID, destination kernel.Place) bool {
	for _, s := range sheets {
		if s.BlocksDestination(agencyID, destination) {
			return true
		}
	}
	return false
}
