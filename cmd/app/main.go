package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"coldroute/cmd"
	httpadapter "coldroute/internal/adapters/in/http"
	"coldroute/internal/adapters/out/postgres/customerrepo"
	"coldroute/internal/adapters/out/postgres/deliveryrepo"
	"coldroute/internal/adapters/out/postgres/driverrepo"
	"coldroute/internal/adapters/out/postgres/orderrepo"
	"coldroute/internal/adapters/out/postgres/snapshotrepo"
	"coldroute/internal/core/domain/services"
	"coldroute/internal/jobs"
)

const (
	defaultDepotLatitude  = 31.2518
	defaultDepotLongitude = 34.7913
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	root, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.Default()

	jobManager := jobs.NewJobManager(
		root.CreateGetReservedCountsQueryHandler(),
		root.CreateReservedCountSnapshotStore(),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, logger, configs.HTTPPort)
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
		DepotLatitude:  goDotEnvFloat("DEPOT_LAT", defaultDepotLatitude),
		DepotLongitude: goDotEnvFloat("DEPOT_LNG", defaultDepotLongitude),
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

func goDotEnvFloat(key string, fallback float64) float64 {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&driverrepo.DriverDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.StopDTO{},
		&snapshotrepo.ReservedCountSnapshotDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(root *cmd.CompositionRoot, logger *slog.Logger, port string) {
	createDeliveryHandler, err := root.CreateCreateDeliveryCommandHandler()
	if err != nil {
		log.Fatalf("Failed to build delivery handler: %v", err)
	}

	matcher := services.NewReservationMatcher(logger)

	server := httpadapter.NewServer(
		root.CreateCreateCustomerCommandHandler(),
		root.CreateCreateDriverCommandHandler(),
		root.CreateCreateOrderCommandHandler(),
		root.CreateAddOrderLineCommandHandler(),
		root.CreateChangeOrderStatusCommandHandler(),
		createDeliveryHandler,
		root.CreateGetCustomersQueryHandler(),
		root.CreateGetDriversQueryHandler(),
		root.CreateGetReservationsQueryHandler(matcher),
		root.CreateGetReservedCountsQueryHandler(),
	)

	e := echo.New()
	httpadapter.RegisterRoutes(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
