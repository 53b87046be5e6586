package postgres

import (
	"gorm.io/gorm"

	"logistics/internal/adapters/out/postgres/agencyrepo"
	"logistics/internal/adapters/out/postgres/carrierrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/routerepo"
	"logistics/internal/adapters/out/postgres/routesheetrepo"
	"logistics/internal/adapters/out/postgres/settlementrepo"
	"logistics/internal/adapters/out/postgres/tariffrepo"
)

// AutoMigrate creates or updates the schema for every persistence model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.HistoryEntryDTO{},
		&agencyrepo.AgencyDTO{},
		&carrierrepo.CarrierDTO{},
		&carrierrepo.PayScaleDTO{},
		&tariffrepo.TariffEntryDTO{},
		&routerepo.RouteDTO{},
		&routesheetrepo.RouteSheetDTO{},
		&settlementrepo.SettlementDTO{},
	)
}
