package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAttachPaymentProofCommandIsNotConstructed = errors.New(
	"AttachPaymentProofCommand must be created via NewAttachPaymentProofCommand constructor",
)

// AttachPaymentProofCommand represents a request to register an uploaded
// payment receipt against a settlement. The file content is stored as is,
// never inspected.
type AttachPaymentProofCommand struct {
	settlementID kernel.UUID
	filename     string
	data         []byte

	guard guard.ConstructorGuard
}

// NewAttachPaymentProofCommand creates a command carrying the uploaded file.
func NewAttachPaymentProofCommand(settlementID kernel.UUID, filename string, data []byte) (AttachPaymentProofCommand, error) {
	if err := settlementID.Validate(); err != nil {
		return AttachPaymentProofCommand{}, err
	}
	if filename == "" {
		return AttachPaymentProofCommand{}, errs.NewValueIsRequiredError("filename")
	}
	if len(data) == 0 {
		return AttachPaymentProofCommand{}, errs.NewValueIsRequiredError("data")
	}

	return AttachPaymentProofCommand{
		settlementID: settlementID,
		filename:     filename,
		data:         data,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachPaymentProofCommand) Validate() error {
	return c.guard.Validate(ErrAttachPaymentProofCommandIsNotConstructed)
}

// SettlementID returns the settlement being paid.
func (c AttachPaymentProofCommand) SettlementID() kernel.UUID {
	return c.settlementID
}

// Filename returns the uploaded file's original name.
func (c AttachPaymentProofCommand) Filename() string {
	return c.filename
}

// Data returns the uploaded file content.
func (c AttachPaymentProofCommand) Data() []byte {
	return c.data
}
