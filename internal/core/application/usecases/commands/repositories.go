// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest composition that covers the
// aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AgencyRepoFactory provides access to the agency repository within a transaction.
	AgencyRepoFactory interface {
		AgencyRepository() ports.AgencyRepository
	}

	// CarrierRepoFactory provides access to the carrier repository within a transaction.
	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	// TariffRepoFactory provides access to the tariff repository within a transaction.
	TariffRepoFactory interface {
		TariffRepository() ports.TariffRepository
	}

	// RouteRepoFactory provides access to the route repository within a transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// RouteSheetRepoFactory provides access to the route-sheet repository within a transaction.
	RouteSheetRepoFactory interface {
		RouteSheetRepository() ports.RouteSheetRepository
	}

	// SettlementRepoFactory provides access to the settlement repository within a transaction.
	SettlementRepoFactory interface {
		SettlementRepository() ports.SettlementRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PricingUoW manages transactions for order creation: pricing against
	// the tariff table and matching an agency.
	PricingUoW interface {
		TxManager
		OrderRepoFactory
		AgencyRepoFactory
		TariffRepoFactory
	}

	// PricingUoWFactory creates new pricing unit of work instances.
	PricingUoWFactory interface {
		Create() PricingUoW
	}

	// DispatchUoW manages transactions for route-sheet generation, which
	// mutates orders and sheets and reads agencies and carriers.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		AgencyRepoFactory
		CarrierRepoFactory
		RouteSheetRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// RoutingUoW manages transactions for interprovincial route building.
	RoutingUoW interface {
		TxManager
		OrderRepoFactory
		AgencyRepoFactory
		CarrierRepoFactory
		RouteRepoFactory
	}

	// RoutingUoWFactory creates new routing unit of work instances.
	RoutingUoWFactory interface {
		Create() RoutingUoW
	}

	// SettlementUoW manages transactions for weekly settlement generation.
	SettlementUoW interface {
		TxManager
		OrderRepoFactory
		AgencyRepoFactory
		SettlementRepoFactory
	}

	// SettlementUoWFactory creates new settlement unit of work instances.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}

	// PaymentUoW manages transactions for settlement payment: the
	// settlement flips to paid and the agency's credit is relieved.
	PaymentUoW interface {
		TxManager
		AgencyRepoFactory
		SettlementRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// AgencyUoW manages transactions for agency-only operations.
	AgencyUoW interface {
		TxManager
		AgencyRepoFactory
	}

	// AgencyUoWFactory creates new agency unit of work instances.
	AgencyUoWFactory interface {
		Create() AgencyUoW
	}

	// SettlementSweepUoW manages transactions for the overdue sweep.
	SettlementSweepUoW interface {
		TxManager
		SettlementRepoFactory
	}

	// SettlementSweepUoWFactory creates new sweep unit of work instances.
	SettlementSweepUoWFactory interface {
		Create() SettlementSweepUoW
	}
)
