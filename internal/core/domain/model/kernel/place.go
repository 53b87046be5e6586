package kernel

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrPlaceIsNotConstructed is returned when a Place instance was not created
// through the NewPlace factory function.
var ErrPlaceIsNotConstructed = errs.NewValueIsRequiredError("Place must be created via NewPlace")

// Place is a value object that identifies a point in the network by city and
// province. All geographic matching in the engine happens over places: agency
// lookup, carrier eligibility and route-sheet grouping.
//
// Matching is deliberately loose. Zone labels throughout the network are
// free-text, so Place compares case-insensitively and exposes substring
// helpers rather than exact equality only. This tolerates inconsistently
// formatted labels at the cost of possible false positives when one name is a
// substring of another; the trade-off is part of the system's observable
// behavior and is kept as is.
//
// Place is immutable. The zero value is invalid and must be constructed via
// NewPlace.
type Place struct {
	city     string
	province string

	guard guard.ConstructorGuard
}

// NewPlace creates a Place from a city and province.
// Both values are required; surrounding whitespace is trimmed.
func NewPlace(city, province string) (Place, error) {
	city = strings.TrimSpace(city)
	province = strings.TrimSpace(province)

	if city == "" {
		return Place{}, errs.NewValueIsRequiredError("city")
	}
	if province == "" {
		return Place{}, errs.NewValueIsRequiredError("province")
	}

	return Place{
		city:     city,
		province: province,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// City returns the city component as provided (original casing preserved).
func (p Place) City() string {
	return p.city
}

// Province returns the province component as provided (original casing preserved).
func (p Place) Province() string {
	return p.province
}

// IsEqual reports whether two places name the same city and province,
// ignoring case.
func (p Place) IsEqual(other Place) bool {
	return strings.EqualFold(p.city, other.city) &&
		strings.EqualFold(p.province, other.province)
}

// SameProvince reports whether two places are in the same province, ignoring case.
func (p Place) SameProvince(other Place) bool {
	return strings.EqualFold(p.province, other.province)
}

// CityMatches reports whether the given free-text zone label contains this
// place's city, ignoring case.
func (p Place) CityMatches(zone string) bool {
	return containsFold(zone, p.city)
}

// ProvinceMatches reports whether the given free-text zone label contains this
// place's province, ignoring case.
func (p Place) ProvinceMatches(zone string) bool {
	return containsFold(zone, p.province)
}

// String returns "city, province" for logging and history entries.
func (p Place) String() string {
	return fmt.Sprintf("%s, %s", p.city, p.province)
}

// Validate checks if the Place was properly constructed.
func (p Place) Validate() error {
	return p.guard.Validate(ErrPlaceIsNotConstructed)
}

// containsFold reports whether s contains substr under Unicode case folding.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
