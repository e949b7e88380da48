package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel"
	"google.golang.org/grpc"

	"github.com/OwaisQuadri/Musharakaat/internal/application/usecase"
	"github.com/OwaisQuadri/Musharakaat/internal/domain/port"
	"github.com/OwaisQuadri/Musharakaat/internal/infrastructure/clock"
	"github.com/OwaisQuadri/Musharakaat/internal/infrastructure/config"
	"github.com/OwaisQuadri/Musharakaat/internal/infrastructure/kafka"
	"github.com/OwaisQuadri/Musharakaat/internal/infrastructure/messaging"
	grpcPresentation "github.com/OwaisQuadri/Musharakaat/internal/presentation/grpc"
	"github.com/OwaisQuadri/Musharakaat/internal/presentation/rest"
	pkgkafka "github.com/OwaisQuadri/Musharakaat/pkg/kafka"
	"github.com/OwaisQuadri/Musharakaat/pkg/observability"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// A missing .env file is normal outside local development.
	envErr := godotenv.Load()

	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.ServiceName,
	})
	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		logger.Warn("could not load .env file", "error", envErr)
	}

	logger.Info("starting musharakahd",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"kafka_enabled", cfg.Kafka.Enabled(),
	)

	// Initialize tracing.
	if cfg.Tracing.Endpoint != "" {
		shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
			ServiceName: cfg.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			Insecure:    cfg.Tracing.Insecure,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if err != nil {
			logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
		} else {
			defer func() { _ = shutdown(context.Background()) }() //nolint:errcheck // best-effort tracer shutdown
		}
	}

	// Initialize metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(ctx, observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }() //nolint:errcheck // best-effort flush

	// Wire the event publisher.
	var publisher port.EventPublisher
	readiness := map[string]rest.ReadinessCheck{}
	if cfg.Kafka.Enabled() {
		producer, err := pkgkafka.NewProducer(cfg.Kafka.Producer())
		if err != nil {
			logger.Error("failed to configure kafka producer", "error", err)
			os.Exit(1)
		}
		defer producer.Close()
		publisher = kafka.NewEventPublisher(producer, cfg.Kafka.Topic, logger)
		readiness["kafka"] = producer.Ping
	} else {
		logger.Info("KAFKA_BROKERS not set, domain events will be logged")
		publisher = messaging.NewLogEventPublisher(logger, slog.LevelInfo)
	}

	// Wire use cases.
	validate := validator.New()
	quoteUC := usecase.NewQuoteFinancingUseCase(publisher, clock.System{}, validate)
	statementUC := usecase.NewGenerateStatementUseCase(publisher, validate)

	// gRPC server.
	telemetry, err := grpcPresentation.NewTelemetry(otel.GetTracerProvider(), meterProvider)
	if err != nil {
		logger.Error("failed to create gRPC telemetry", "error", err)
		os.Exit(1)
	}
	grpcServer := grpcPresentation.NewServer(
		grpcPresentation.NewFinancingHandler(quoteUC, statementUC, logger),
		logger,
		grpcPresentation.ServerConfig{
			Reflection:   cfg.GRPCReflection,
			Interceptors: []grpc.UnaryServerInterceptor{telemetry.UnaryInterceptor()},
		},
	)

	// HTTP server (health, metrics and JSON API).
	router := rest.NewRouter(
		rest.NewHealthHandler(cfg.ServiceName, readiness, logger),
		rest.NewFinancingHandler(quoteUC, statementUC, logger),
		metricsHandler,
	)
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("musharakahd stopped")
}
