// Command seed loads a demo data set: the default tariff table, a pair of
// agencies and a pair of carriers. Safe to re-run; it skips anything that
// is already present.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"logistics/cmd"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/domain/model/agency"
	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tariff"
	"logistics/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)
	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.AutoMigrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	ctx := context.Background()
	uow := postgres.NewGormUnitOfWorkFactory(gormDB).Create()
	if err = uow.Begin(ctx); err != nil {
		log.Fatalf("Error opening transaction: %v", err)
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = seedTariffs(ctx, uow); err != nil {
		log.Fatalf("Error seeding tariffs: %v", err)
	}
	if err = seedAgencies(ctx, uow); err != nil {
		log.Fatalf("Error seeding agencies: %v", err)
	}
	if err = seedCarriers(ctx, uow); err != nil {
		log.Fatalf("Error seeding carriers: %v", err)
	}

	if err = uow.Commit(ctx); err != nil {
		log.Fatalf("Error committing seed: %v", err)
	}
	log.Info("Seed complete")
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}
	return cmd.Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  os.Getenv("DB_SSLMODE"),
	}
}

// seedTariffs loads the default tariff table. Entry order matters: resolution
// is first-match, so narrower provincial brackets come before the catch-all.
func seedTariffs(ctx context.Context, uow ports.UnitOfWork) error {
	table, err := uow.TariffRepository().GetTable(ctx)
	if err != nil {
		return err
	}
	if len(table.Entries()) > 0 {
		log.Info("Tariff table already loaded, skipping")
		return nil
	}

	rows := []struct {
		fromKg, toKg float64
		province     string
		basePrice    float64
	}{
		{0, 5, "Buenos Aires", 4500},
		{5, 10, "Buenos Aires", 6200},
		{10, 25, "Buenos Aires", 9800},
		{0, 5, "Córdoba", 6000},
		{5, 10, "Córdoba", 8400},
		{10, 25, "Córdoba", 13500},
		{0, 5, "Santa Fe", 5800},
		{5, 10, "Santa Fe", 8100},
		{10, 25, "Santa Fe", 13000},
	}

	for _, row := range rows {
		entry, err := tariff.NewEntry(kernel.NewUUID(), row.fromKg, row.toKg,
			row.province, row.basePrice, 0.01, 0.05, 0.21)
		if err != nil {
			return err
		}
		if err = uow.TariffRepository().Add(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}

func seedAgencies(ctx context.Context, uow ports.UnitOfWork) error {
	existing, err := uow.AgencyRepository().GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Info("Agencies already loaded, skipping")
		return nil
	}

	rates, err := agency.NewCommissionRates(5, 8, 100, 150, 10)
	if err != nil {
		return err
	}

	rows := []struct {
		code, name, city, province         string
		address, phone, zoneLabel, manager string
		username                           string
		creditLimit                        float64
		weekday                            time.Weekday
	}{
		{"AG-01", "Agencia Oeste", "La Matanza", "Buenos Aires",
			"Av. Brig. Gral. Juan Manuel de Rosas 3910", "11-4441-2200",
			"Zona Oeste - La Matanza", "M. Suárez", "ag.oeste", 150000, time.Friday},
		{"AG-02", "Agencia Córdoba Centro", "Córdoba", "Córdoba",
			"Bv. San Juan 340", "351-422-7100",
			"Córdoba Capital", "L. Ferreyra", "ag.cordoba", 200000, time.Monday},
	}

	for _, row := range rows {
		a, err := agency.NewAgency(kernel.NewUUID(), row.code, row.name,
			mustPlace(row.city, row.province),
			row.address, row.phone, "9-18", row.manager, row.zoneLabel,
			row.username, "changeme", rates, row.creditLimit, row.weekday)
		if err != nil {
			return err
		}
		if err = uow.AgencyRepository().Add(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func seedCarriers(ctx context.Context, uow ports.UnitOfWork) error {
	existing, err := uow.CarrierRepository().GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Info("Carriers already loaded, skipping")
		return nil
	}

	localTable, err := payTable([][3]float64{{0, 5, 900}, {5, 10, 1400}, {10, 25, 2300}})
	if err != nil {
		return err
	}
	local, err := carrier.NewCarrier(kernel.NewUUID(), "TR-01", "Transporte Oeste SRL",
		"30-71222333-9", "11-4441-7788", "Mercedes Sprinter", "AB123CD", "Transporte Oeste SRL",
		carrier.TypeLocal, []string{"Zona Oeste - La Matanza"}, localTable, 500)
	if err != nil {
		return err
	}
	if err = uow.CarrierRepository().Add(ctx, local); err != nil {
		return err
	}

	longTable, err := payTable([][3]float64{{0, 5, 2100}, {5, 10, 3300}, {10, 25, 5600}})
	if err != nil {
		return err
	}
	long, err := carrier.NewCarrier(kernel.NewUUID(), "TR-02", "Rutas del Centro SA",
		"30-70888999-1", "351-488-9900", "Scania R410", "AD456EF", "Rutas del Centro SA",
		carrier.TypeLongDistance, []string{"Córdoba Capital", "Córdoba"}, longTable, 800)
	if err != nil {
		return err
	}
	return uow.CarrierRepository().Add(ctx, long)
}

func payTable(rows [][3]float64) (carrier.PayTable, error) {
	scales := make([]carrier.PayScale, 0, len(rows))
	for _, row := range rows {
		scale, err := carrier.NewPayScale(row[0], row[1], row[2])
		if err != nil {
			return carrier.PayTable{}, err
		}
		scales = append(scales, scale)
	}
	return carrier.NewPayTable(scales)
}

func mustPlace(city, province string) kernel.Place {
	place, err := kernel.NewPlace(city, province)
	if err != nil {
		log.Fatalf("Error building place: %v", err)
	}
	return place
}
