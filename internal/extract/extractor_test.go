package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/aolabi/docpipe/constants"
	"github.com/aolabi/docpipe/internal/common"
)

// stubRunner fakes the external binaries: a pdftoppm call materializes page
// files under the requested prefix, a tesseract call answers with a canned
// text for the page it was given.
type stubRunner struct {
	pages        int
	pdftoppmErr  error
	tesseractErr error
	calls        []string
}

func (r *stubRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	r.calls = append(r.calls, name)
	switch name {
	case "pdftoppm":
		if r.pdftoppmErr != nil {
			return nil, []byte("stub failure"), r.pdftoppmErr
		}
		prefix := args[len(args)-1]
		for i := 1; i <= r.pages; i++ {
			page := fmt.Sprintf("%s-%d.png", prefix, i)
			if err := os.WriteFile(page, []byte("png"), 0o600); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	case "tesseract":
		if r.tesseractErr != nil {
			return nil, []byte("stub failure"), r.tesseractErr
		}
		page := filepath.Base(args[0])
		return []byte("text of " + page + "\n"), nil, nil
	default:
		return nil, nil, fmt.Errorf("unexpected command %q", name)
	}
}

func newStubbedExtractor(t *testing.T, runner Runner) *Extractor {
	t.Helper()
	e := NewExtractor(Config{}, slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
	e.runner = runner
	return e
}

func TestSelectStrategy(t *testing.T) {
	e := NewExtractor(Config{}, nil)

	tests := []struct {
		path string
		want string
	}{
		{"users/o/original/d_scan.pdf", "pdf-ocr"},
		{"users/o/original/d_SCAN.PDF", "pdf-ocr"},
		{"users/o/original/d_photo.jpg", "image-ocr"},
		{"users/o/original/d_photo.png", "image-ocr"},
		{"users/o/original/d_noext", "image-ocr"},
	}
	for _, tt := range tests {
		if got := e.SelectStrategy(tt.path).Name(); got != tt.want {
			t.Errorf("SelectStrategy(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestExtractPDF_JoinsPagesInOrder(t *testing.T) {
	runner := &stubRunner{pages: 2}
	e := newStubbedExtractor(t, runner)

	res, err := e.SelectStrategy("scan.pdf").Extract(context.Background(), "scan.pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Pages != 2 {
		t.Errorf("Pages = %d, want 2", res.Pages)
	}
	want := "text of page-1.png\ntext of page-2.png"
	if res.Text != want {
		t.Errorf("Text = %q, want %q", res.Text, want)
	}
	if res.Format != constants.PDF || res.Method != "pdf-ocr" {
		t.Errorf("Format/Method = %q/%q", res.Format, res.Method)
	}
	// one rasterization plus one recognition per page
	if len(runner.calls) != 3 {
		t.Errorf("calls = %v, want pdftoppm + 2x tesseract", runner.calls)
	}
}

func TestExtractPDF_MaxPagesCapsWork(t *testing.T) {
	runner := &stubRunner{pages: 5}
	e := newStubbedExtractor(t, runner)
	e.cfg.MaxPages = 2

	res, err := e.SelectStrategy("scan.pdf").Extract(context.Background(), "scan.pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Pages != 2 {
		t.Errorf("Pages = %d, want 2", res.Pages)
	}
	if len(runner.calls) != 3 {
		t.Errorf("calls = %v, want pdftoppm + 2x tesseract", runner.calls)
	}
}

func TestExtractPDF_NoPagesIsCorruptInput(t *testing.T) {
	runner := &stubRunner{pages: 0}
	e := newStubbedExtractor(t, runner)

	_, err := e.SelectStrategy("scan.pdf").Extract(context.Background(), "scan.pdf")
	if !errors.Is(err, common.ErrCorruptInput) {
		t.Fatalf("error = %v, want ErrCorruptInput", err)
	}
}

func TestExtract_MissingToolIsTransient(t *testing.T) {
	runner := &stubRunner{pdftoppmErr: exec.ErrNotFound, tesseractErr: exec.ErrNotFound}
	e := newStubbedExtractor(t, runner)

	for _, path := range []string{"scan.pdf", "photo.jpg"} {
		_, err := e.SelectStrategy(path).Extract(context.Background(), path)
		if !common.IsTransient(err) {
			t.Errorf("Extract(%q) error = %v, want transient", path, err)
		}
	}
}

func TestExtract_ToolRejectionIsContentError(t *testing.T) {
	runner := &stubRunner{pdftoppmErr: errors.New("exit status 1")}
	e := newStubbedExtractor(t, runner)

	_, err := e.SelectStrategy("broken.pdf").Extract(context.Background(), "broken.pdf")
	if !common.IsContentError(err) {
		t.Fatalf("error = %v, want content error", err)
	}
}

func TestExtract_CancelledContextIsTransient(t *testing.T) {
	runner := &stubRunner{pdftoppmErr: errors.New("signal: killed")}
	e := newStubbedExtractor(t, runner)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.SelectStrategy("scan.pdf").Extract(ctx, "scan.pdf")
	if !common.IsTransient(err) {
		t.Fatalf("error = %v, want transient", err)
	}
}

func TestExtractImage_SingleRun(t *testing.T) {
	runner := &stubRunner{}
	e := newStubbedExtractor(t, runner)

	res, err := e.SelectStrategy("photo.jpg").Extract(context.Background(), "photo.jpg")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Pages != 1 {
		t.Errorf("Pages = %d, want 1", res.Pages)
	}
	if res.Text != "text of photo.jpg" {
		t.Errorf("Text = %q", res.Text)
	}
	if len(runner.calls) != 1 || runner.calls[0] != "tesseract" {
		t.Errorf("calls = %v, want a single tesseract run", runner.calls)
	}
}

type emptyTextRunner struct{}

func (emptyTextRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	return []byte("  \n\n"), nil, nil
}

func TestExtractImage_NoTextIsSuccess(t *testing.T) {
	e := newStubbedExtractor(t, emptyTextRunner{})

	res, err := e.SelectStrategy("blank.png").Extract(context.Background(), "blank.png")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Text != "" {
		t.Errorf("Text = %q, want empty", res.Text)
	}
}
