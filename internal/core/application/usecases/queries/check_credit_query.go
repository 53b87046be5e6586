package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCheckCreditQueryIsNotConstructed = errors.New(
	"CheckCreditQuery must be created via NewCheckCreditQuery constructor",
)

// CheckCreditQuery asks whether charging an amount to an agency would keep
// its running credit within the configured limit.
type CheckCreditQuery struct {
	agencyID kernel.UUID
	amount   float64

	guard guard.ConstructorGuard
}

// NewCheckCreditQuery creates a query for an agency credit check.
func NewCheckCreditQuery(agencyID kernel.UUID, amount float64) (CheckCreditQuery, error) {
	if err := agencyID.Validate(); err != nil {
		return CheckCreditQuery{}, err
	}
	if amount < 0 {
		return CheckCreditQuery{}, errs.NewValueIsInvalidError("amount")
	}

	return CheckCreditQuery{
		agencyID: agencyID,
		amount:   amount,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CheckCreditQuery) Validate() error {
	return q.guard.Validate(ErrCheckCreditQueryIsNotConstructed)
}

// AgencyID returns the agency to check.
func (q CheckCreditQuery) AgencyID() kernel.UUID {
	return q.agencyID
}

// Amount returns the prospective charge.
func (q CheckCreditQuery) Amount() float64 {
	return q.amount
}

// CheckCreditQueryResponse reports the advisory credit check result along
// with the numbers it was decided on.
type CheckCreditQueryResponse struct {
	AgencyID      kernel.UUID
	WithinLimit   bool
	CreditLimit   float64
	CurrentCredit float64
	Available     float64
}
