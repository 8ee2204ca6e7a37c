package extract

import (
	"context"

	"github.com/aolabi/docpipe/constants"
)

// extractImage decodes the blob as a single image and recognizes it once.
// An image with no recognizable text yields an empty result, not an error.
func (e *Extractor) extractImage(ctx context.Context, path string) (Result, error) {
	res := Result{Format: constants.IMAGE, Method: "image-ocr", Pages: 1}

	txt, err := e.tesseractOCR(ctx, path)
	if err != nil {
		return res, err
	}
	res.Text = Normalize(txt)
	return res, nil
}

// tesseractOCR runs text recognition on one raster image.
func (e *Extractor) tesseractOCR(ctx context.Context, path string) (string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	// tesseract <file> stdout -l <lang>
	out, _, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", classifyExecErr(ctx, err, "tesseract")
	}
	return string(out), nil
}
