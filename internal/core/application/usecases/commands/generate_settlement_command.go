package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGenerateSettlementCommandIsNotConstructed = errors.New(
	"GenerateSettlementCommand must be created via NewGenerateSettlementCommand constructor",
)

// GenerateSettlementCommand represents a request to settle one agency's
// trailing weekly window.
type GenerateSettlementCommand struct {
	agencyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGenerateSettlementCommand creates a command for one agency.
func NewGenerateSettlementCommand(agencyID kernel.UUID) (GenerateSettlementCommand, error) {
	if err := agencyID.Validate(); err != nil {
		return GenerateSettlementCommand{}, err
	}

	return GenerateSettlementCommand{
		agencyID: agencyID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateSettlementCommand) Validate() error {
	return c.guard.Validate(ErrGenerateSettlementCommandIsNotConstructed)
}

// AgencyID returns the agency to settle.
func (c GenerateSettlementCommand) AgencyID() kernel.UUID {
	return c.agencyID
}
