// Package services contains the stateless domain services of the
// assignment-and-billing engine: shipment pricing, zone matching, route-sheet
// and route planning, weekly settlement math and carrier payment calculation.
//
// Services operate on aggregates loaded by the application layer and return
// new or mutated aggregates; they never touch persistence themselves.
package services
