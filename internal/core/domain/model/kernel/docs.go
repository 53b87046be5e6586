// Package kernel contains shared value objects used across all domain
// aggregates: UUID identifiers and Place, the city/province pair every
// geographic rule in the engine matches against.
//
// Value objects in this package are immutable, validated at construction,
// and safe to copy and compare.
package kernel
