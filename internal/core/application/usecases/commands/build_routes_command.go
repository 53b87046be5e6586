package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrBuildRoutesCommandIsNotConstructed = errors.New(
	"BuildRoutesCommand must be created via NewBuildRoutesCommand constructor",
)

// BuildRoutesCommand represents a request to synthesize routes for one
// carrier from the pending orders in its zones.
type BuildRoutesCommand struct {
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewBuildRoutesCommand creates a command for one carrier.
func NewBuildRoutesCommand(carrierID kernel.UUID) (BuildRoutesCommand, error) {
	if err := carrierID.Validate(); err != nil {
		return BuildRoutesCommand{}, err
	}

	return BuildRoutesCommand{
		carrierID: carrierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c BuildRoutesCommand) Validate() error {
	return c.guard.Validate(ErrBuildRoutesCommandIsNotConstructed)
}

// CarrierID returns the carrier to build routes for.
func (c BuildRoutesCommand) CarrierID() kernel.UUID {
	return c.carrierID
}
