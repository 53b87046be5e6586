// Package settlement provides the Settlement aggregate: the weekly financial
// reconciliation between an agency and the network operator. A settlement
// folds the agency's orders of one trailing 7-day window into total sales,
// total commissions and the net amount owed, and tracks payment through an
// uploaded proof. An order belongs to at most one settlement per agency.
package settlement

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// Status represents the payment state of a settlement.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending: generated, waiting for the agency to pay.
	StatusPending

	// StatusPaid: a payment proof was attached. Final.
	StatusPaid

	// StatusOverdue: the due date passed while still pending.
	StatusOverdue
)

// String returns the human-readable name of the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusPaid:
		return "Paid"
	case StatusOverdue:
		return "Overdue"
	default:
		return "Unknown"
	}
}

// Validate checks if the Status is one of the defined states.
func (s Status) Validate() error {
	if s < StatusPending || s > StatusOverdue {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid settlement status", s))
	}
	return nil
}

// ErrSettlementIsNotConstructed is returned when a Settlement instance was
// not created through NewSettlement or RestoreSettlement.
var ErrSettlementIsNotConstructed = errors.New("Settlement must be created via NewSettlement constructor")

// ErrPaymentProofIsNotConstructed is returned when a PaymentProof was not
// created through NewPaymentProof.
var ErrPaymentProofIsNotConstructed = errors.New("PaymentProof must be created via NewPaymentProof")

// NumberFor renders the per-agency sequential settlement number,
// e.g. NumberFor("AG01", 3) == "LIQ-AG01-0003".
func NumberFor(agencyCode string, sequence int) string {
	return fmt.Sprintf("LIQ-%s-%04d", agencyCode, sequence)
}

// PaymentProof is a value object referencing an uploaded payment receipt in
// the blob store. Its content is never verified.
type PaymentProof struct {
	filename   string
	uploadedAt time.Time
	locator    string

	guard guard.ConstructorGuard
}

// NewPaymentProof creates a PaymentProof reference.
func NewPaymentProof(filename string, uploadedAt time.Time, locator string) (PaymentProof, error) {
	if filename == "" {
		return PaymentProof{}, errs.NewValueIsRequiredError("filename")
	}
	if locator == "" {
		return PaymentProof{}, errs.NewValueIsRequiredError("locator")
	}
	if uploadedAt.IsZero() {
		return PaymentProof{}, errs.NewValueIsRequiredError("uploadedAt")
	}

	return PaymentProof{
		filename:   filename,
		uploadedAt: uploadedAt,
		locator:    locator,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Filename returns the uploaded file's original name.
func (p PaymentProof) Filename() string {
	return p.filename
}

// UploadedAt returns when the proof was uploaded.
func (p PaymentProof) UploadedAt() time.Time {
	return p.uploadedAt
}

// Locator returns the blob-store locator of the stored bytes.
func (p PaymentProof) Locator() string {
	return p.locator
}

// Validate checks if the PaymentProof was properly constructed.
func (p PaymentProof) Validate() error {
	return p.guard.Validate(ErrPaymentProofIsNotConstructed)
}

// Settlement is the aggregate root for one weekly reconciliation.
// The net amount is derived at construction as sales minus commissions.
type Settlement struct {
	id               kernel.UUID
	agencyID         kernel.UUID
	number           string
	periodStart      time.Time
	periodEnd        time.Time
	totalSales       float64
	totalCommissions float64
	netAmount        float64
	status           Status
	generatedAt      time.Time
	dueDate          time.Time
	proof            *PaymentProof
	orderIDs         []kernel.UUID
}

// NewSettlement creates a pending Settlement for the given period and totals.
// The due date is the generation time plus seven days.
func NewSettlement(
	id, agencyID kernel.UUID,
	number string,
	periodStart, periodEnd time.Time,
	totalSales, totalCommissions float64,
	generatedAt time.Time,
	orderIDs []kernel.UUID,
) (*Settlement, error) {
	if err := errors.Join(
		id.Validate(),
		agencyID.Validate(),
	); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("number")
	}
	if periodEnd.Before(periodStart) {
		return nil, errs.NewValueIsInvalidErrorWithCause("periodEnd",
			fmt.Errorf("%s is before period start %s", periodEnd, periodStart))
	}
	if len(orderIDs) == 0 {
		return nil, errs.NewValueIsRequiredError("orderIDs")
	}

	return &Settlement{
		id:               id,
		agencyID:         agencyID,
		number:           number,
		periodStart:      periodStart,
		periodEnd:        periodEnd,
		totalSales:       totalSales,
		totalCommissions: totalCommissions,
		netAmount:        totalSales - totalCommissions,
		status:           StatusPending,
		generatedAt:      generatedAt,
		dueDate:          generatedAt.AddDate(0, 0, 7),
		orderIDs:         orderIDs,
	}, nil
}

// RestoreSettlement reconstructs a Settlement from persistence.
func RestoreSettlement(
	id, agencyID kernel.UUID,
	number string,
	periodStart, periodEnd time.Time,
	totalSales, totalCommissions float64,
	status Status,
	generatedAt, dueDate time.Time,
	proof *PaymentProof,
	orderIDs []kernel.UUID,
) (*Settlement, error) {
	s, err := NewSettlement(id, agencyID, number, periodStart, periodEnd,
		totalSales, totalCommissions, generatedAt, orderIDs)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if proof != nil {
		if err = proof.Validate(); err != nil {
			return nil, err
		}
	}

	s.status = status
	s.dueDate = dueDate
	s.proof = proof
	return s, nil
}

// Validate ensures the Settlement was created through a factory function.
func (s *Settlement) Validate() error {
	if s == nil || s.number == "" {
		return ErrSettlementIsNotConstructed
	}
	return nil
}

// ID returns the settlement's unique identifier.
func (s *Settlement) ID() kernel.UUID {
	return s.id
}

// Agency returns the owning agency's ID.
func (s *Settlement) Agency() kernel.UUID {
	return s.agencyID
}

// Number returns the per-agency settlement number (LIQ-{code}-%04d).
func (s *Settlement) Number() string {
	return s.number
}

// PeriodStart returns the first day of the settled window.
func (s *Settlement) PeriodStart() time.Time {
	return s.periodStart
}

// PeriodEnd returns the last day of the settled window.
func (s *Settlement) PeriodEnd() time.Time {
	return s.periodEnd
}

// TotalSales returns the sum of order totals in the period.
func (s *Settlement) TotalSales() float64 {
	return s.totalSales
}

// TotalCommissions returns the accumulated agency commissions.
func (s *Settlement) TotalCommissions() float64 {
	return s.totalCommissions
}

// NetAmount returns sales minus commissions.
func (s *Settlement) NetAmount() float64 {
	return s.netAmount
}

// Status returns the payment status.
func (s *Settlement) Status() Status {
	return s.status
}

// GeneratedAt returns when the settlement was generated.
func (s *Settlement) GeneratedAt() time.Time {
	return s.generatedAt
}

// DueDate returns the payment deadline (generation + 7 days).
func (s *Settlement) DueDate() time.Time {
	return s.dueDate
}

// Proof returns the attached payment proof, or nil.
func (s *Settlement) Proof() *PaymentProof {
	return s.proof
}

// Orders returns the IDs of the settled orders.
func (s *Settlement) Orders() []kernel.UUID {
	return s.orderIDs
}

// AttachProof records the uploaded payment proof and marks the settlement
// paid. The proof's content is not verified. Pending and overdue settlements
// can be paid; paying twice is rejected.
func (s *Settlement) AttachProof(proof PaymentProof) error {
	if err := proof.Validate(); err != nil {
		return err
	}
	if s.status == StatusPaid {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("settlement %s is already paid", s.number))
	}

	s.proof = &proof
	s.status = StatusPaid
	return nil
}

// MarkOverdueIfDue flips a pending settlement to Overdue once now is past the
// due date. Returns true when the status changed.
func (s *Settlement) MarkOverdueIfDue(now time.Time) bool {
	if s.status != StatusPending || !now.After(s.dueDate) {
		return false
	}
	s.status = StatusOverdue
	return true
}
