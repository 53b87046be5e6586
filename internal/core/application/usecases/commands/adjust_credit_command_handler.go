package commands

import (
	"context"
)

// AdjustCreditCommandHandler applies a signed delta to an agency's credit
// usage.
type AdjustCreditCommandHandler struct {
	uowFactory AgencyUoWFactory
}

// NewAdjustCreditCommandHandler creates a handler for credit adjustments.
func NewAdjustCreditCommandHandler(uowFactory AgencyUoWFactory) AdjustCreditCommandHandler {
	return AdjustCreditCommandHandler{uowFactory: uowFactory}
}

// Handle applies the delta and persists the agency.
func (h AdjustCreditCommandHandler) Handle(ctx context.Context, cmd AdjustCreditCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	agencyRepo := uow.AgencyRepository()
	ag, err := agencyRepo.Get(ctx, cmd.AgencyID())
	if err != nil {
		return err
	}

	ag.AdjustCredit(cmd.Delta())
	if err = agencyRepo.Update(ctx, ag); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
