package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/aolabi/docpipe/gen/proto/documents/v1"
	"github.com/aolabi/docpipe/internal/cache"
	"github.com/aolabi/docpipe/internal/common"
	"github.com/aolabi/docpipe/internal/export"
	"github.com/aolabi/docpipe/internal/ingest"
	"github.com/aolabi/docpipe/internal/queue"
	"github.com/aolabi/docpipe/internal/repository"
	"github.com/aolabi/docpipe/internal/server"
	"github.com/aolabi/docpipe/internal/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Metadata store
	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	if cfg.Database.Migrate {
		if err := entc.Schema.Create(ctx); err != nil {
			logger.Error("schema migration failed", "error", err)
			os.Exit(1)
		}
		logger.Info("schema migration complete")
	}

	// Object store
	store, err := storage.NewMinioStorage(storage.MinioConfig{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		UseSSL:    cfg.Storage.UseSSL,
		Bucket:    cfg.Storage.Bucket,
	}, logger)
	if err != nil {
		logger.Error("configuring object store", "error", err)
		os.Exit(1)
	}

	// Task queue
	publisher := queue.NewKafkaPublisher(cfg.Queue.Brokers, cfg.Queue.Topic, logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("closing task publisher", "error", err)
		}
	}()

	// Document view cache (optional)
	var docCache *cache.DocumentCache
	if cfg.Cache.Addr != "" {
		docCache = cache.NewDocumentCache(cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.TTL, logger)
		defer docCache.Close()
	}

	docs := repository.NewDocumentRepository(entc, logger)
	coordinator := ingest.NewCoordinator(store, docs, publisher, logger)
	exporter := export.NewService(docs, logger)

	// gRPC server
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewDocumentsService(coordinator, docs, docCache, exporter, logger)
	v1.RegisterDocumentServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
