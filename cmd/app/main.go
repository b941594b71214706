package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tailor/cmd"
	httpin "tailor/internal/adapters/in/http"
	"tailor/internal/adapters/out/postgres"
	"tailor/internal/pkg/logger"
	"tailor/internal/pkg/tracing"

	"github.com/labstack/gommon/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const serviceName = "tailor"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config, err := cmd.LoadConfig(".")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zapLogger, err := logger.New(logger.Options{
		Level: config.LogLevel,
		Path:  config.LogPath,
		Env:   config.AppEnv,
	})
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	shutdownTracing, err := tracing.Start(ctx, serviceName, config.TracerHost)
	if err != nil {
		zapLogger.Fatal("start tracing", zap.Error(err))
	}

	db, err := postgres.Open(config.DB().DSN())
	if err != nil {
		zapLogger.Fatal("connect to database", zap.Error(err))
	}
	if err = postgres.Migrate(db); err != nil {
		zapLogger.Fatal("migrate database", zap.Error(err))
	}

	app, err := cmd.NewCompositionRoot(config, db, zapLogger)
	if err != nil {
		zapLogger.Fatal("compose application", zap.Error(err))
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		zapLogger.Fatal("create jobs", zap.Error(err))
	}
	if err = jobManager.StartAll(); err != nil {
		zapLogger.Fatal("start jobs", zap.Error(err))
	}

	router, err := httpin.NewRouter(ctx, httpin.NewServer(app.CreateHTTPHandlers()), zapLogger.Named("http"))
	if err != nil {
		zapLogger.Fatal("build router", zap.Error(err))
	}

	server := &http.Server{
		Addr:              "0.0.0.0:" + config.HTTPPort,
		Handler:           otelhttp.NewHandler(router, serviceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("http server started", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Error("http server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	zapLogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err = server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("http server shutdown", zap.Error(err))
	}
	jobManager.StopAll()
	if err = app.Close(); err != nil {
		zapLogger.Error("close event publisher", zap.Error(err))
	}
	if err = shutdownTracing(shutdownCtx); err != nil {
		zapLogger.Error("tracing shutdown", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
