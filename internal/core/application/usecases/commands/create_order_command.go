package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// PartyInput carries the raw sender or recipient data of a new order.
type PartyInput struct {
	Name     string
	Document string
	Phone    string
	Address  string
	City     string
	Province string
}

// PackageInput carries the raw package data of a new order.
type PackageInput struct {
	Weight        float64
	Quantity      int
	DeclaredValue float64
	ServiceType   string
	Description   string
}

// CreateOrderCommand represents a request to register a new shipment.
// The order is priced from the tariff table and matched to the nearest
// agency while being created.
type CreateOrderCommand struct {
	orderID    kernel.UUID
	sender     PartyInput
	recipient  PartyInput
	pack       PackageInput
	thermoseal float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new shipment.
// Both parties need at least a name and a place; the package needs a
// positive quantity and a service type. Weights and values of zero are
// accepted as they are a regular outcome of input coercion at the edge.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	sender, recipient PartyInput,
	pack PackageInput,
	thermoseal float64,
) (CreateOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		validateParty("sender", sender),
		validateParty("recipient", recipient),
		validatePackage(pack),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	if thermoseal < 0 {
		return CreateOrderCommand{}, errs.NewValueIsInvalidError("thermoseal")
	}

	return CreateOrderCommand{
		orderID:    orderID,
		sender:     sender,
		recipient:  recipient,
		pack:       pack,
		thermoseal: thermoseal,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Sender returns the sender party input.
func (c CreateOrderCommand) Sender() PartyInput {
	return c.sender
}

// Recipient returns the recipient party input.
func (c CreateOrderCommand) Recipient() PartyInput {
	return c.recipient
}

// Package returns the package input.
func (c CreateOrderCommand) Package() PackageInput {
	return c.pack
}

// Thermoseal returns the requested thermoseal charge.
func (c CreateOrderCommand) Thermoseal() float64 {
	return c.thermoseal
}

func validateParty(name string, p PartyInput) error {
	if p.Name == "" {
		return errs.NewValueIsRequiredError(name + ".name")
	}
	if p.City == "" {
		return errs.NewValueIsRequiredError(name + ".city")
	}
	if p.Province == "" {
		return errs.NewValueIsRequiredError(name + ".province")
	}
	return nil
}

func validatePackage(p PackageInput) error {
	if p.Weight < 0 {
		return errs.NewValueIsInvalidError("package.weight")
	}
	if p.Quantity < 1 {
		return errs.NewValueIsInvalidError("package.quantity")
	}
	if p.DeclaredValue < 0 {
		return errs.NewValueIsInvalidError("package.declaredValue")
	}
	if p.ServiceType == "" {
		return errs.NewValueIsRequiredError("package.serviceType")
	}
	return nil
}
