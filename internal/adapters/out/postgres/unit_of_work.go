// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work spans one business transaction: every repository
// obtained from it runs against the same database transaction, and aggregates
// touched along the way are tracked for post-commit processing.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each Create call returns a fresh instance; concurrent operations must each
// use their own unit of work.
package postgres

import (
	"context"

	"logistics/internal/adapters/out/postgres/agencyrepo"
	"logistics/internal/adapters/out/postgres/carrierrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/routerepo"
	"logistics/internal/adapters/out/postgres/routesheetrepo"
	"logistics/internal/adapters/out/postgres/settlementrepo"
	"logistics/internal/adapters/out/postgres/tariffrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Kept for outbox-style processing after commit.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances backed by a shared GORM
// connection. Each business operation gets a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the repositories
// and tracks the aggregates modified within it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Calling Begin again on an
// instance with an active transaction is a no-op, never a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction. After
// commit the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction. Safe to
// defer after a successful commit: it then returns gorm.ErrInvalidTransaction,
// which callers discard.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository provides order persistence within the unit of work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// AgencyRepository provides agency persistence within the unit of work.
func (uow *GormUnitOfWork) AgencyRepository() ports.AgencyRepository {
	return agencyrepo.NewGormAgencyRepository(uow.conn(), uow)
}

// CarrierRepository provides carrier persistence within the unit of work.
func (uow *GormUnitOfWork) CarrierRepository() ports.CarrierRepository {
	return carrierrepo.NewGormCarrierRepository(uow.conn(), uow)
}

// TariffRepository provides tariff persistence within the unit of work.
func (uow *GormUnitOfWork) TariffRepository() ports.TariffRepository {
	return tariffrepo.NewGormTariffRepository(uow.conn())
}

// RouteRepository provides route persistence within the unit of work.
func (uow *GormUnitOfWork) RouteRepository() ports.RouteRepository {
	return routerepo.NewGormRouteRepository(uow.conn(), uow)
}

// RouteSheetRepository provides route sheet persistence within the unit of work.
func (uow *GormUnitOfWork) RouteSheetRepository() ports.RouteSheetRepository {
	return routesheetrepo.NewGormRouteSheetRepository(uow.conn(), uow)
}

// SettlementRepository provides settlement persistence within the unit of work.
func (uow *GormUnitOfWork) SettlementRepository() ports.SettlementRepository {
	return settlementrepo.NewGormSettlementRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Called by the repository implementations on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
