package extract

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/aolabi/docpipe/constants"
	"github.com/aolabi/docpipe/internal/common"
)

type Config struct {
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for PDFs, default 300
	MaxPages      int    // 0 = no limit

	TessdataDir string
}

// Result summarizes one extraction.
type Result struct {
	Text     string
	Pages    int
	Format   string // constants.PDF | constants.IMAGE
	Method   string // "pdf-ocr" | "image-ocr"
	Duration time.Duration
}

// Strategy extracts machine-readable text from a staged blob on disk.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, path string) (Result, error)
}

// Dispatcher selects the extraction strategy for a storage key.
type Dispatcher interface {
	SelectStrategy(path string) Strategy
}

// Extractor owns the external OCR tooling and implements Dispatcher.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Extractor{cfg: cfg, runner: execRunner{logger: logger}, logger: logger}
}

// SelectStrategy picks by suffix: PDFs are rasterized page by page, anything
// else is treated as a single image.
func (e *Extractor) SelectStrategy(path string) Strategy {
	if constants.MapExtToFormat(filepath.Ext(path)) == constants.PDF {
		return pdfStrategy{e: e}
	}
	return imageStrategy{e: e}
}

type pdfStrategy struct{ e *Extractor }

func (s pdfStrategy) Name() string { return "pdf-ocr" }

func (s pdfStrategy) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	res, err := s.e.extractPDF(ctx, path)
	res.Duration = time.Since(start)
	return res, err
}

type imageStrategy struct{ e *Extractor }

func (s imageStrategy) Name() string { return "image-ocr" }

func (s imageStrategy) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	res, err := s.e.extractImage(ctx, path)
	res.Duration = time.Since(start)
	return res, err
}

// classifyExecErr separates tool failures the queue should retry from
// content failures it should not. A missing binary or a cancelled context is
// infrastructure; a tool rejecting its input is a content problem.
func classifyExecErr(ctx context.Context, err error, tool string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, exec.ErrNotFound):
		return common.NewAppError("TOOL_MISSING", tool+" binary not found", common.ErrUnavailable)
	case ctx.Err() != nil:
		return common.NewAppError("TOOL_INTERRUPTED", tool+" interrupted", common.ErrUnavailable)
	default:
		return common.NewAppError("CONTENT_REJECTED", tool+" could not process input", common.ErrCorruptInput)
	}
}
