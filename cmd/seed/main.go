// Command seed fills the database with random customers, measurements and
// orders for local development.
package main

import (
	"context"
	"flag"

	"tailor/cmd"
	"tailor/internal/adapters/out/postgres"
	"tailor/internal/pkg/logger"

	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
)

func main() {
	count := flag.Int("customers", 50, "number of customers to create")
	flag.Parse()

	config, err := cmd.LoadConfig(".")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zapLogger, err := logger.New(logger.Options{Level: config.LogLevel, Env: config.AppEnv})
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	db, err := postgres.Open(config.DB().DSN())
	if err != nil {
		zapLogger.Fatal("connect to database", zap.Error(err))
	}
	if err = postgres.Migrate(db); err != nil {
		zapLogger.Fatal("migrate database", zap.Error(err))
	}

	// Order creation publishes no events.
	config.KafkaHost = ""
	app, err := cmd.NewCompositionRoot(config, db, zapLogger)
	if err != nil {
		zapLogger.Fatal("compose application", zap.Error(err))
	}

	customers := app.CreateCreateCustomerCommandHandler()
	measurements := app.CreateCreateMeasurementCommandHandler()
	orders := app.CreateCreateOrderCommandHandler()

	seeder := NewSeeder(&customers, &measurements, &orders, zapLogger.Named("seed"))
	created, err := seeder.Seed(context.Background(), *count)
	if err != nil {
		zapLogger.Fatal("seed", zap.Error(err), zap.Int("orders_created", created))
	}
	zapLogger.Info("database seeded", zap.Int("customers", *count), zap.Int("orders", created))
}
