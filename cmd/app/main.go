package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"logistics/cmd"
	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	if err := postgres.AutoMigrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})

	app, err := cmd.NewCompositionRoot(configs, gormDB, redisClient)
	if err != nil {
		log.Fatalf("Error building composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateProcessSettlementsCommandHandler(),
		app.CreateMarkOverdueSettlementsCommandHandler(),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:      goDotEnvVariable("REDIS_ADDR"),
		ProofStorePath: goDotEnvVariable("PROOF_STORE_PATH"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Validator = httpadapter.NewRequestValidator()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAdvanceOrderStatusCommandHandler(),
		app.CreateGenerateRouteSheetsCommandHandler(),
		app.CreateBuildRoutesCommandHandler(),
		app.CreateGenerateSettlementCommandHandler(),
		app.CreateProcessSettlementsCommandHandler(),
		app.CreateAttachPaymentProofCommandHandler(),
		app.CreateAdjustCreditCommandHandler(),
		app.CreateTrackOrderQueryHandler(),
		app.CreateGetCarrierPaymentQueryHandler(),
		app.CreateGetPaymentHistoryQueryHandler(),
		app.CreateCheckCreditQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
