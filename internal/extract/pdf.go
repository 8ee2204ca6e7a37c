package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aolabi/docpipe/constants"
	"github.com/aolabi/docpipe/internal/common"
)

// extractPDF rasterizes each page to PNG and runs text recognition per page.
// Page texts are concatenated in page order with a single newline separator.
func (e *Extractor) extractPDF(ctx context.Context, path string) (Result, error) {
	res := Result{Format: constants.PDF, Method: "pdf-ocr"}

	tmpDir, err := os.MkdirTemp("", "docpipe-pages-*")
	if err != nil {
		return res, common.NewAppError("WORKDIR", "failed to create page directory", common.ErrUnavailable)
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			e.logger.Warn("failed to remove page directory", "dir", tmpDir, "error", rmErr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png <in.pdf> <tmp/page>
	_, _, err = e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return res, classifyExecErr(ctx, err, "pdftoppm")
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	pages, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(pages)
	if e.cfg.MaxPages > 0 && len(pages) > e.cfg.MaxPages {
		pages = pages[:e.cfg.MaxPages]
	}
	if len(pages) == 0 {
		return res, common.NewAppError("PDF_EMPTY", "no pages rendered", common.ErrCorruptInput)
	}

	texts := make([]string, 0, len(pages))
	for _, page := range pages {
		txt, err := e.tesseractOCR(ctx, page)
		if err != nil {
			return res, err
		}
		texts = append(texts, Normalize(txt))
	}

	res.Text = strings.Join(texts, "\n")
	res.Pages = len(pages)
	return res, nil
}
