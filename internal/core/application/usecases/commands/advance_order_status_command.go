package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// AdvanceOrderStatusCommand represents a request to move an order to its
// next lifecycle status, recording where and why.
type AdvanceOrderStatusCommand struct {
	orderID     kernel.UUID
	next        order.Status
	location    string
	description string

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusCommand creates a command to advance an order's status.
// Whether the transition is legal is decided by the aggregate when handled.
func NewAdvanceOrderStatusCommand(
	orderID kernel.UUID,
	next order.Status,
	location, description string,
) (AdvanceOrderStatusCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		next.Validate(),
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}
	if location == "" {
		return AdvanceOrderStatusCommand{}, errs.NewValueIsRequiredError("location")
	}

	return AdvanceOrderStatusCommand{
		orderID:     orderID,
		next:        next,
		location:    location,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c AdvanceOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Next returns the requested status.
func (c AdvanceOrderStatusCommand) Next() order.Status {
	return c.next
}

// Location returns where the status change happened.
func (c AdvanceOrderStatusCommand) Location() string {
	return c.location
}

// Description returns the free-text note for the history entry.
func (c AdvanceOrderStatusCommand) Description() string {
	return c.description
}
