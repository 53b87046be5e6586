package queries

import (
	"context"

	"logistics/internal/core/ports"
)

// CheckCreditQueryHandler answers advisory credit checks for agencies.
// The decision itself belongs to the aggregate; the handler only loads it.
type CheckCreditQueryHandler struct {
	agencyRepo ports.AgencyRepository
}

// NewCheckCreditQueryHandler creates a handler for credit check queries.
func NewCheckCreditQueryHandler(agencyRepo ports.AgencyRepository) CheckCreditQueryHandler {
	return CheckCreditQueryHandler{agencyRepo: agencyRepo}
}

// Handle loads the agency and reports whether the prospective charge stays
// within its credit limit.
func (h CheckCreditQueryHandler) Handle(
	ctx context.Context, query CheckCreditQuery,
) (CheckCreditQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckCreditQueryResponse{}, err
	}

	ag, err := h.agencyRepo.Get(ctx, query.AgencyID())
	if err != nil {
		return CheckCreditQueryResponse{}, err
	}

	available := ag.CreditLimit() - ag.CurrentCredit()
	if available < 0 {
		available = 0
	}

	return CheckCreditQueryResponse{
		AgencyID:      ag.ID(),
		WithinLimit:   ag.WithinLimit(query.Amount()),
		CreditLimit:   ag.CreditLimit(),
		CurrentCredit: ag.CurrentCredit(),
		Available:     available,
	}, nil
}
