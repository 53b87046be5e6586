package order

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrPartyIsNotConstructed is returned when a Party instance was not created
// through the NewParty factory function.
var ErrPartyIsNotConstructed = errors.New("Party must be created via NewParty")

// Party is a value object describing one side of a shipment: the sender or
// the recipient. It carries contact data and the place used by all geographic
// matching rules.
type Party struct {
	name     string
	document string
	phone    string
	address  string
	place    kernel.Place

	guard guard.ConstructorGuard
}

// NewParty creates a Party. Name and place are required; document, phone and
// address are free text kept as provided.
func NewParty(name, document, phone, address string, place kernel.Place) (Party, error) {
	if name == "" {
		return Party{}, errs.NewValueIsRequiredError("name")
	}
	if err := place.Validate(); err != nil {
		return Party{}, err
	}

	return Party{
		name:     name,
		document: document,
		phone:    phone,
		address:  address,
		place:    place,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Name returns the party's full name.
func (p Party) Name() string {
	return p.name
}

// Document returns the party's identity document number.
func (p Party) Document() string {
	return p.document
}

// Phone returns the party's contact phone.
func (p Party) Phone() string {
	return p.phone
}

// Address returns the party's street address.
func (p Party) Address() string {
	return p.address
}

// Place returns the party's city/province pair.
func (p Party) Place() kernel.Place {
	return p.place
}

// Validate checks if the Party was properly constructed.
func (p Party) Validate() error {
	return p.guard.Validate(ErrPartyIsNotConstructed)
}
