package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aolabi/docpipe/internal/common"
	"github.com/aolabi/docpipe/internal/extract"
)

// runocr runs the extraction strategies against a local file, bypassing the
// pipeline. Useful for checking OCR tooling and tuning DPI/language.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runocr <path-to-file>")
		os.Exit(2)
	}
	path := os.Args[1]
	if _, err := os.Stat(path); err != nil {
		logger.Error("cannot read input file", "path", path, "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	extractor := extract.NewExtractor(extract.Config{
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
		TessdataDir:   cfg.OCR.TessdataDir,
	}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	strategy := extractor.SelectStrategy(path)
	logger.Info("extracting", "path", path, "strategy", strategy.Name())

	res, err := strategy.Extract(ctx, path)
	if err != nil {
		logger.Error("extraction failed", "error", err)
		os.Exit(1)
	}

	logger.Info("extraction done",
		"pages", res.Pages,
		"text_bytes", len(res.Text),
		"duration_ms", res.Duration.Milliseconds(),
	)
	fmt.Println(res.Text)
}
