package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAdjustCreditCommandIsNotConstructed = errors.New(
	"AdjustCreditCommand must be created via NewAdjustCreditCommand constructor",
)

// AdjustCreditCommand represents a request to move an agency's credit usage
// by a delta. Both directions are legal and no clamp is applied: credit is
// observed against the limit, not gated by it.
type AdjustCreditCommand struct {
	agencyID kernel.UUID
	delta    float64

	guard guard.ConstructorGuard
}

// NewAdjustCreditCommand creates a command for one credit adjustment.
func NewAdjustCreditCommand(agencyID kernel.UUID, delta float64) (AdjustCreditCommand, error) {
	if err := agencyID.Validate(); err != nil {
		return AdjustCreditCommand{}, err
	}

	return AdjustCreditCommand{
		agencyID: agencyID,
		delta:    delta,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustCreditCommand) Validate() error {
	return c.guard.Validate(ErrAdjustCreditCommandIsNotConstructed)
}

// AgencyID returns the agency whose credit moves.
func (c AdjustCreditCommand) AgencyID() kernel.UUID {
	return c.agencyID
}

// Delta returns the signed credit movement.
func (c AdjustCreditCommand) Delta() float64 {
	return c.delta
}
