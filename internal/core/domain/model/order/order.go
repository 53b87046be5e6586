package order

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a single shipment moving through the network. It is the
// aggregate root that owns the shipment's parties, package, priced costs,
// assignments and status history.
//
// Order maintains these invariants:
//   - costs.Total() always equals the sum of its components (enforced by Cost)
//   - every status transition appends exactly one history entry, newest first
//   - orders are never deleted; they only advance through the status machine
//   - assignments (agency, carrier, route, route sheet) are set by the
//     dispatching flows and never cleared
type Order struct {
	id           kernel.UUID
	trackingCode string
	sender       Party
	recipient    Party
	pack         Package
	costs        Cost
	status       Status
	agencyID     *kernel.UUID
	carrierID    *kernel.UUID
	routeID      *kernel.UUID
	routeSheetID *kernel.UUID
	history      []HistoryEntry
	createdAt    time.Time

	isConstructed bool
}

// NewOrder registers a new shipment. The order starts in PendingPickup and the
// registration itself is recorded as the first history entry, timestamped with
// createdAt and located at the sender's place.
func NewOrder(
	id kernel.UUID,
	trackingCode string,
	sender, recipient Party,
	pack Package,
	costs Cost,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		sender.Validate(),
		recipient.Validate(),
		pack.Validate(),
		costs.Validate(),
	); err != nil {
		return nil, err
	}
	if trackingCode == "" {
		return nil, errs.NewValueIsRequiredError("trackingCode")
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	o := &Order{
		id:            id,
		trackingCode:  trackingCode,
		sender:        sender,
		recipient:     recipient,
		pack:          pack,
		costs:         costs,
		status:        PendingPickup,
		createdAt:     createdAt,
		isConstructed: true,
	}

	entry, err := NewHistoryEntry(createdAt, PendingPickup, sender.Place().String(), "Order registered")
	if err != nil {
		return nil, err
	}
	o.history = []HistoryEntry{entry}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with its full state.
// Unlike NewOrder it does not append a history entry; the persisted history is
// taken as is (expected newest first).
func RestoreOrder(
	id kernel.UUID,
	trackingCode string,
	sender, recipient Party,
	pack Package,
	costs Cost,
	status Status,
	agencyID, carrierID, routeID, routeSheetID *kernel.UUID,
	history []HistoryEntry,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		sender.Validate(),
		recipient.Validate(),
		pack.Validate(),
		costs.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if trackingCode == "" {
		return nil, errs.NewValueIsRequiredError("trackingCode")
	}

	for _, ref := range []*kernel.UUID{agencyID, carrierID, routeID, routeSheetID} {
		if ref != nil {
			if err := ref.Validate(); err != nil {
				return nil, err
			}
		}
	}

	return &Order{
		id:            id,
		trackingCode:  trackingCode,
		sender:        sender,
		recipient:     recipient,
		pack:          pack,
		costs:         costs,
		status:        status,
		agencyID:      agencyID,
		carrierID:     carrierID,
		routeID:       routeID,
		routeSheetID:  routeSheetID,
		history:       history,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was created through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TrackingCode returns the public tracking code.
func (o *Order) TrackingCode() string {
	return o.trackingCode
}

// Sender returns the sending party.
func (o *Order) Sender() Party {
	return o.sender
}

// Recipient returns the receiving party.
func (o *Order) Recipient() Party {
	return o.recipient
}

// Package returns the shipped package details.
func (o *Order) Package() Package {
	return o.pack
}

// Costs returns the priced cost breakdown.
func (o *Order) Costs() Cost {
	return o.costs
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Agency returns the assigned agency's ID, or nil when unassigned.
func (o *Order) Agency() *kernel.UUID {
	return o.agencyID
}

// Carrier returns the assigned carrier's ID, or nil when unassigned.
func (o *Order) Carrier() *kernel.UUID {
	return o.carrierID
}

// Route returns the ID of the route the order travels on, or nil.
func (o *Order) Route() *kernel.UUID {
	return o.routeID
}

// RouteSheet returns the ID of the route sheet the order is batched on, or nil.
func (o *Order) RouteSheet() *kernel.UUID {
	return o.routeSheetID
}

// History returns the status history, newest first.
func (o *Order) History() []HistoryEntry {
	return o.history
}

// CreatedAt returns the registration timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsPendingDispatch reports whether the order can still be picked up by a
// dispatching flow: it is waiting for pickup and neither a carrier nor a
// route has been assigned.
func (o *Order) IsPendingDispatch() bool {
	return o.status == PendingPickup && o.carrierID == nil && o.routeID == nil
}

// AssignAgency records the agency responsible for the order.
func (o *Order) AssignAgency(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}
	o.agencyID = &agencyID
	return nil
}

// AssignCarrier records the carrier that will move the order.
// Assignment itself does not change the status; the dispatching flow decides
// when the order starts moving.
func (o *Order) AssignCarrier(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}
	o.carrierID = &carrierID
	return nil
}

// AttachToRoute links the order to an interprovincial route.
func (o *Order) AttachToRoute(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	o.routeID = &routeID
	return nil
}

// AttachToRouteSheet links the order to a zone route sheet.
func (o *Order) AttachToRouteSheet(sheetID kernel.UUID) error {
	if err := sheetID.Validate(); err != nil {
		return err
	}
	o.routeSheetID = &sheetID
	return nil
}

// Transition advances the order to the next lifecycle status and appends
// exactly one history entry for the move, newest first.
//
// The transition must be allowed by the status machine; on any error the
// order is left unchanged.
func (o *Order) Transition(next Status, at time.Time, location, description string) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	entry, err := NewHistoryEntry(at, newStatus, location, description)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.history = append([]HistoryEntry{entry}, o.history...)
	return nil
}
