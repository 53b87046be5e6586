package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// AgencyRepository returns an AgencyRepository bound to the current transaction.
	AgencyRepository() AgencyRepository

	// CarrierRepository returns a CarrierRepository bound to the current transaction.
	CarrierRepository() CarrierRepository

	// TariffRepository returns a TariffRepository bound to the current transaction.
	TariffRepository() TariffRepository

	// RouteRepository returns a RouteRepository bound to the current transaction.
	RouteRepository() RouteRepository

	// RouteSheetRepository returns a RouteSheetRepository bound to the current transaction.
	RouteSheetRepository() RouteSheetRepository

	// SettlementRepository returns a SettlementRepository bound to the current transaction.
	SettlementRepository() SettlementRepository
}
