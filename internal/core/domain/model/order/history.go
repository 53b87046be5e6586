package order

import (
	"errors"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not
// created through the NewHistoryEntry factory function.
var ErrHistoryEntryIsNotConstructed = errors.New("HistoryEntry must be created via NewHistoryEntry")

// HistoryEntry is an immutable record of one order status event: when it
// happened, the status reached, where the package was, and a free-text
// description. The order keeps its entries newest first.
type HistoryEntry struct {
	at          time.Time
	status      Status
	location    string
	description string

	guard guard.ConstructorGuard
}

// NewHistoryEntry creates a HistoryEntry for a status event.
func NewHistoryEntry(at time.Time, status Status, location, description string) (HistoryEntry, error) {
	if at.IsZero() {
		return HistoryEntry{}, errs.NewValueIsRequiredError("at")
	}
	if err := status.Validate(); err != nil {
		return HistoryEntry{}, err
	}

	return HistoryEntry{
		at:          at,
		status:      status,
		location:    location,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// At returns the timestamp of the event.
func (h HistoryEntry) At() time.Time {
	return h.at
}

// Status returns the status the order reached with this event.
func (h HistoryEntry) Status() Status {
	return h.status
}

// Location returns where the package was when the event was recorded.
func (h HistoryEntry) Location() string {
	return h.location
}

// Description returns the free-text event description.
func (h HistoryEntry) Description() string {
	return h.description
}

// Validate checks if the HistoryEntry was properly constructed.
func (h HistoryEntry) Validate() error {
	return h.guard.Validate(ErrHistoryEntryIsNotConstructed)
}
