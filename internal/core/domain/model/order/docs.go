// Package order provides the Order aggregate: a single shipment with sender,
// recipient, package, priced costs, network assignments and an append-only
// status history.
//
// Key business rules:
//   - the cost breakdown always sums to the total (derived at construction)
//   - the status machine is PendingPickup -> PickedUp -> InTransit ->
//     AtAgency -> Delivered, with a PendingPickup -> InTransit shortcut for
//     batched route-sheet dispatch
//   - every transition appends exactly one history entry, newest first
//   - orders are never deleted
package order
