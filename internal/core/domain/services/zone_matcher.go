package services

import (
	"logistics/internal/core/domain/model/agency"
	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
)

// ZoneMatcher maps a destination place to the nearest agency and to the set
// of eligible carriers. Matching is substring-based over free-text zone
// labels, which tolerates loosely-formatted labels at the cost of possible
// false positives on province names that contain each other.
//
// Absence is a regular outcome: every lookup returns nil (or an empty slice)
// rather than an error when nothing matches.
type ZoneMatcher struct{}

// NewZoneMatcher creates a new ZoneMatcher instance.
func NewZoneMatcher() ZoneMatcher {
	return ZoneMatcher{}
}

// FindAgency picks the agency closest to the place: an exact city/province
// match first, then the first agency in the same province, then the first
// agency at all. Returns nil only when the slice is empty.
func (ZoneMatcher) FindAgency(place kernel.Place, agencies []*agency.Agency) *agency.Agency {
	for _, a := range agencies {
		if a.Place().IsEqual(place) {
			return a
		}
	}
	for _, a := range agencies {
		if a.Place().SameProvince(place) {
			return a
		}
	}
	if len(agencies) > 0 {
		return agencies[0]
	}
	return nil
}

// FindCarriers returns every carrier eligible for the place: local carriers
// whose zone labels contain the city or the province, long-distance carriers
// whose zone labels contain the province. Order of the input is preserved.
func (ZoneMatcher) FindCarriers(place kernel.Place, carriers []*carrier.Carrier) []*carrier.Carrier {
	var matched []*carrier.Carrier
	for _, c := range carriers {
		if c.IsLocal() {
			if c.ServesCity(place) {
				matched = append(matched, c)
			}
			continue
		}
		if c.ServesProvince(place) {
			matched = append(matched, c)
		}
	}
	return matched
}

// AutoAssignCarrier picks the carrier for a destination: the first eligible
// local carrier, falling back to the first eligible long-distance one. There
// is no load balancing; "first qualifying" is deterministic by list order.
func (m ZoneMatcher) AutoAssignCarrier(destination kernel.Place, carriers []*carrier.Carrier) *carrier.Carrier {
	matched := m.FindCarriers(destination, carriers)
	for _, c := range matched {
		if c.IsLocal() {
			return c
		}
	}
	if len(matched) > 0 {
		return matched[0]
	}
	return nil
}
