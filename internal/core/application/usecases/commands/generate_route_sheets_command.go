package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGenerateRouteSheetsCommandIsNotConstructed = errors.New(
	"GenerateRouteSheetsCommand must be created via NewGenerateRouteSheetsCommand constructor",
)

// GenerateRouteSheetsCommand represents a request to batch an agency's
// pending orders into route sheets.
type GenerateRouteSheetsCommand struct {
	agencyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGenerateRouteSheetsCommand creates a command for one agency.
func NewGenerateRouteSheetsCommand(agencyID kernel.UUID) (GenerateRouteSheetsCommand, error) {
	if err := agencyID.Validate(); err != nil {
		return GenerateRouteSheetsCommand{}, err
	}

	return GenerateRouteSheetsCommand{
		agencyID: agencyID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateRouteSheetsCommand) Validate() error {
	return c.guard.Validate(ErrGenerateRouteSheetsCommandIsNotConstructed)
}

// AgencyID returns the agency to plan for.
func (c GenerateRouteSheetsCommand) AgencyID() kernel.UUID {
	return c.agencyID
}
