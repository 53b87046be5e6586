package commands

import (
	"context"

	"logistics/internal/core/domain/model/settlement"
	"logistics/internal/core/ports"
)

// AttachPaymentProofCommandHandler stores an uploaded payment receipt in the
// blob store, marks the settlement paid and relieves the agency's credit by
// the settled net amount. A blob-store failure is surfaced directly; there
// is no retry.
type AttachPaymentProofCommandHandler struct {
	uowFactory PaymentUoWFactory
	blobStore  ports.BlobStore
	clock      ports.Clock
}

// NewAttachPaymentProofCommandHandler creates a handler for proof uploads.
func NewAttachPaymentProofCommandHandler(uowFactory PaymentUoWFactory, blobStore ports.BlobStore, clock ports.Clock) AttachPaymentProofCommandHandler {
	return AttachPaymentProofCommandHandler{
		uowFactory: uowFactory,
		blobStore:  blobStore,
		clock:      clock,
	}
}

// Handle stores the proof and flips the settlement to paid, returning the
// blob locator.
func (h AttachPaymentProofCommandHandler) Handle(ctx context.Context, cmd AttachPaymentProofCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	locator, err := h.blobStore.Store(ctx, cmd.Filename(), cmd.Data())
	if err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	s, err := uow.SettlementRepository().Get(ctx, cmd.SettlementID())
	if err != nil {
		return "", err
	}

	proof, err := settlement.NewPaymentProof(cmd.Filename(), h.clock.Now(), locator)
	if err != nil {
		return "", err
	}
	if err = s.AttachProof(proof); err != nil {
		return "", err
	}
	if err = uow.SettlementRepository().Update(ctx, s); err != nil {
		return "", err
	}

	ag, err := uow.AgencyRepository().Get(ctx, s.Agency())
	if err != nil {
		return "", err
	}
	ag.AdjustCredit(-s.NetAmount())
	if err = uow.AgencyRepository().Update(ctx, ag); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}
	return locator, nil
}
