// Package carrier provides the Carrier aggregate ("transportista"): an entity
// that physically moves packages, either locally within a zone or long
// distance between provinces. A carrier's eligibility for an order is decided
// by loose substring matching over its free-text zone list, and its
// compensation by an ordered weight-scale pay table plus a flat per-package
// delivery bonus.
package carrier

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Type distinguishes local (intra-zone) from long-distance (inter-province)
// carriers. The two types match zones differently and are batched by
// different route-building rules.
type Type int

const (
	// TypeUnknown represents an invalid or undefined carrier type.
	TypeUnknown Type = iota

	// TypeLocal carriers serve a city and its surroundings; they match when a
	// zone label contains the order's city or province.
	TypeLocal

	// TypeLongDistance carriers run interprovincial routes; they match when a
	// zone label contains the order's province.
	TypeLongDistance
)

// String returns the human-readable name of the carrier type.
func (t Type) String() string {
	switch t {
	case TypeLocal:
		return "Local"
	case TypeLongDistance:
		return "LongDistance"
	default:
		return "Unknown"
	}
}

// Validate checks if the Type is one of the defined carrier types.
func (t Type) Validate() error {
	if t != TypeLocal && t != TypeLongDistance {
		return errs.NewValueIsInvalidErrorWithCause("carrierType", fmt.Errorf("%d is not a valid carrier type", t))
	}
	return nil
}

// ErrCarrierIsNotConstructed is returned when a Carrier instance was not
// created through NewCarrier or RestoreCarrier.
var ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")

// Carrier is an aggregate root for one transport operator.
type Carrier struct {
	id            kernel.UUID
	code          string
	name          string
	document      string
	phone         string
	vehicle       string
	plate         string
	companyName   string
	ctype         Type
	zones         []string
	payTable      PayTable
	deliveryBonus float64
}

// NewCarrier creates a Carrier. At least one zone label is required; the
// company name is optional and usually only set for long-distance carriers.
func NewCarrier(
	id kernel.UUID,
	code, name, document, phone, vehicle, plate, companyName string,
	ctype Type,
	zones []string,
	payTable PayTable,
	deliveryBonus float64,
) (*Carrier, error) {
	if err := errors.Join(
		id.Validate(),
		ctype.Validate(),
	); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if len(zones) == 0 {
		return nil, errs.NewValueIsRequiredError("zones")
	}
	if deliveryBonus < 0 {
		return nil, errs.NewValueIsInvalidError("deliveryBonus")
	}

	return &Carrier{
		id:            id,
		code:          code,
		name:          name,
		document:      document,
		phone:         phone,
		vehicle:       vehicle,
		plate:         plate,
		companyName:   companyName,
		ctype:         ctype,
		zones:         zones,
		payTable:      payTable,
		deliveryBonus: deliveryBonus,
	}, nil
}

// Validate ensures the Carrier was created through a factory function.
func (c *Carrier) Validate() error {
	if c == nil || c.code == "" {
		return ErrCarrierIsNotConstructed
	}
	return nil
}

// IsEqual compares two carriers by identity.
func (c *Carrier) IsEqual(other *Carrier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the carrier's unique identifier.
func (c *Carrier) ID() kernel.UUID {
	return c.id
}

// Code returns the short carrier code.
func (c *Carrier) Code() string {
	return c.code
}

// Name returns the carrier's name.
func (c *Carrier) Name() string {
	return c.name
}

// Document returns the carrier's identity document.
func (c *Carrier) Document() string {
	return c.document
}

// Phone returns the contact phone.
func (c *Carrier) Phone() string {
	return c.phone
}

// Vehicle returns the free-text vehicle description.
func (c *Carrier) Vehicle() string {
	return c.vehicle
}

// Plate returns the vehicle plate.
func (c *Carrier) Plate() string {
	return c.plate
}

// CompanyName returns the optional transport company name.
func (c *Carrier) CompanyName() string {
	return c.companyName
}

// CarrierType returns whether the carrier is local or long distance.
func (c *Carrier) CarrierType() Type {
	return c.ctype
}

// Zones returns the free-text zone labels the carrier covers.
func (c *Carrier) Zones() []string {
	return c.zones
}

// PayTable returns the carrier's weight-scale pay table.
func (c *Carrier) PayTable() PayTable {
	return c.payTable
}

// DeliveryBonus returns the flat bonus paid per delivered package copy.
func (c *Carrier) DeliveryBonus() float64 {
	return c.deliveryBonus
}

// IsLocal reports whether the carrier is a local one.
func (c *Carrier) IsLocal() bool {
	return c.ctype == TypeLocal
}

// ServesCity reports whether any zone label contains the place's city or
// province (the local-carrier matching rule).
func (c *Carrier) ServesCity(place kernel.Place) bool {
	for _, zone := range c.zones {
		if place.CityMatches(zone) || place.ProvinceMatches(zone) {
			return true
		}
	}
	return false
}

// ServesProvince reports whether any zone label contains the place's province
// (the long-distance matching rule).
func (c *Carrier) ServesProvince(place kernel.Place) bool {
	for _, zone := range c.zones {
		if place.ProvinceMatches(zone) {
			return true
		}
	}
	return false
}
