package services

import (
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/agency"
	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"
)

const maxLocalStops = 3

// RouteBuilder synthesizes carrier routes from pending orders.
//
// Long-distance carriers get one interprovincial route per differing
// (sender province, recipient province) pair; local carriers get one route
// per exact recipient place. Building a route does not flip any order's
// status: the caller that confirms pickup owns that transition, while the
// RouteSheetPlanner dispatches its orders itself.
type RouteBuilder struct{}

// NewRouteBuilder creates a new RouteBuilder instance.
func NewRouteBuilder() RouteBuilder {
	return RouteBuilder{}
}

// Build creates routes for the carrier from the eligible pending orders.
// existingCount drives the sequential route codes. Orders and agencies are
// only read, never mutated.
func (b RouteBuilder) Build(
	c *carrier.Carrier,
	orders []*order.Order,
	agencies []*agency.Agency,
	existingCount int,
	now time.Time,
) ([]*route.Route, error) {
	eligible := b.eligibleOrders(c, orders)
	if len(eligible) == 0 {
		return nil, nil
	}

	if c.IsLocal() {
		return b.buildLocal(c, eligible, agencies, existingCount, now)
	}
	return b.buildInterprovincial(c, eligible, agencies, existingCount, now)
}

// eligibleOrders keeps orders still pending pickup, without a carrier, whose
// recipient falls in a zone the carrier covers.
func (b RouteBuilder) eligibleOrders(c *carrier.Carrier, orders []*order.Order) []*order.Order {
	var eligible []*order.Order
	for _, o := range orders {
		if o.Status() != order.PendingPickup || o.Carrier() != nil {
			continue
		}
		dest := o.Recipient().Place()
		if c.IsLocal() && !c.ServesCity(dest) {
			continue
		}
		if !c.IsLocal() && !c.ServesProvince(dest) {
			continue
		}
		eligible = append(eligible, o)
	}
	return eligible
}

// buildInterprovincial groups orders by differing province pairs. Distinct
// cities seen in each group become intermediate stops, capped at
// route.MaxStops, and agencies whose city or province contains the origin,
// a stop or the destination are attached as coverage.
func (b RouteBuilder) buildInterprovincial(
	c *carrier.Carrier,
	eligible []*order.Order,
	agencies []*agency.Agency,
	existingCount int,
	now time.Time,
) ([]*route.Route, error) {
	groups := make(map[string][]*order.Order)
	var keys []string
	for _, o := range eligible {
		origin := o.Sender().Place().Province()
		dest := o.Recipient().Place().Province()
		if strings.EqualFold(origin, dest) {
			continue
		}
		key := strings.ToLower(origin) + "|" + strings.ToLower(dest)
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], o)
	}

	var routes []*route.Route
	for _, key := range keys {
		group := groups[key]
		origin := group[0].Sender().Place().Province()
		dest := group[0].Recipient().Place().Province()
		stops := collectStops(group, origin, dest, route.MaxStops)

		agencyIDs := make([]kernel.UUID, 0)
		labels := append(append([]string{origin}, stops...), dest)
		for _, a := range agencies {
			if coversAnyLabel(a, labels) {
				agencyIDs = append(agencyIDs, a.ID())
			}
		}

		r, err := newGroupRoute(c, origin, dest, stops, agencyIDs, group, existingCount+len(routes)+1, now)
		if err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}
	return routes, nil
}

// buildLocal groups orders by the exact recipient place. The carrier's first
// declared zone is the origin, and up to three address-derived areas (the
// first comma-delimited token of each recipient address) become stops.
func (b RouteBuilder) buildLocal(
	c *carrier.Carrier,
	eligible []*order.Order,
	agencies []*agency.Agency,
	existingCount int,
	now time.Time,
) ([]*route.Route, error) {
	groups := make(map[string][]*order.Order)
	var keys []string
	for _, o := range eligible {
		key := strings.ToLower(o.Recipient().Place().String())
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], o)
	}

	var routes []*route.Route
	for _, key := range keys {
		group := groups[key]
		dest := group[0].Recipient().Place()
		origin := c.Zones()[0]
		stops := collectAreas(group, maxLocalStops)

		agencyIDs := make([]kernel.UUID, 0)
		for _, a := range agencies {
			if a.Place().IsEqual(dest) {
				agencyIDs = append(agencyIDs, a.ID())
			}
		}

		r, err := newGroupRoute(c, origin, dest.City(), stops, agencyIDs, group, existingCount+len(routes)+1, now)
		if err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}
	return routes, nil
}

func newGroupRoute(
	c *carrier.Carrier,
	origin, destination string,
	stops []string,
	agencyIDs []kernel.UUID,
	group []*order.Order,
	sequence int,
	now time.Time,
) (*route.Route, error) {
	orderIDs := make([]kernel.UUID, 0, len(group))
	for _, o := range group {
		orderIDs = append(orderIDs, o.ID())
	}

	name := fmt.Sprintf("%s - %s", origin, destination)
	return route.NewRoute(kernel.NewUUID(), route.CodeFor(sequence), name,
		origin, destination, stops, c.ID(), agencyIDs, orderIDs, now)
}

// collectStops gathers distinct sender and recipient cities of the group,
// excluding the route's own endpoints, up to the cap.
func collectStops(group []*order.Order, origin, dest string, limit int) []string {
	var stops []string
	seen := make(map[string]bool)
	add := func(city string) {
		key := strings.ToLower(city)
		if len(stops) >= limit || city == "" || seen[key] ||
			strings.EqualFold(city, origin) || strings.EqualFold(city, dest) {
			return
		}
		seen[key] = true
		stops = append(stops, city)
	}
	for _, o := range group {
		add(o.Sender().Place().City())
		add(o.Recipient().Place().City())
	}
	return stops
}

// collectAreas derives delivery areas from recipient addresses: the first
// comma-delimited token of each, distinct, up to the cap.
func collectAreas(group []*order.Order, limit int) []string {
	var areas []string
	seen := make(map[string]bool)
	for _, o := range group {
		if len(areas) >= limit {
			break
		}
		area := strings.TrimSpace(strings.SplitN(o.Recipient().Address(), ",", 2)[0])
		key := strings.ToLower(area)
		if area == "" || seen[key] {
			continue
		}
		seen[key] = true
		areas = append(areas, area)
	}
	return areas
}

// coversAnyLabel reports whether the agency's city or province contains any
// of the labels, ignoring case.
func coversAnyLabel(a *agency.Agency, labels []string) bool {
	city := strings.ToLower(a.Place().City())
	province := strings.ToLower(a.Place().Province())
	for _, label := range labels {
		l := strings.ToLower(label)
		if strings.Contains(city, l) || strings.Contains(province, l) {
			return true
		}
	}
	return false
}
