package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aolabi/docpipe/internal/common"
	"github.com/aolabi/docpipe/internal/extract"
	"github.com/aolabi/docpipe/internal/queue"
	"github.com/aolabi/docpipe/internal/repository"
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

	extractor := extract.NewExtractor(extract.Config{
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
		TessdataDir:   cfg.OCR.TessdataDir,
	}, logger)

	docs := repository.NewDocumentRepository(entc, logger)
	worker := extract.NewWorker(docs, store, extractor, cfg.OCR.WorkDir, logger)

	// One consumer loop per worker slot; the consumer group splits
	// partitions across them and across other worker processes.
	var wg sync.WaitGroup
	consumers := make([]queue.Consumer, 0, cfg.Worker.Count)
	for i := 0; i < cfg.Worker.Count; i++ {
		consumer := queue.NewKafkaConsumer(queue.ConsumerConfig{
			Brokers:      cfg.Queue.Brokers,
			Topic:        cfg.Queue.Topic,
			GroupID:      cfg.Queue.GroupID,
			RetryBackoff: cfg.Worker.RetryBackoff,
		}, worker, logger)
		consumers = append(consumers, consumer)

		wg.Add(1)
		go func(id int, c queue.Consumer) {
			defer wg.Done()
			logger.Info("worker started", "worker_id", id)
			if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("worker stopped with error", "worker_id", id, "error", err)
				stop()
				return
			}
			logger.Info("worker stopped", "worker_id", id)
		}(i+1, consumer)
	}

	<-ctx.Done()
	logger.Info("shutting down")
	wg.Wait()
	for _, c := range consumers {
		if err := c.Close(); err != nil {
			logger.Error("closing consumer", "error", err)
		}
	}
	logger.Info("stopped")
}
