package extract

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/aolabi/docpipe/internal/common"
	"github.com/aolabi/docpipe/internal/entity"
	"github.com/aolabi/docpipe/internal/ingest"
	"github.com/aolabi/docpipe/internal/queue"
	"github.com/aolabi/docpipe/internal/storage"
)

// DocumentStore is the slice of the metadata store the worker needs.
type DocumentStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) (bool, error)
	MarkProcessed(ctx context.Context, id uuid.UUID, processedPath, processedText string) (bool, error)
	MarkFailed(ctx context.Context, id uuid.UUID, message string) (bool, error)
}

// Worker owns the consumption half of the pipeline. It implements
// queue.Handler: a nil return acknowledges the delivery, a non-nil return
// keeps it in flight for redelivery.
type Worker struct {
	docs       DocumentStore
	storage    storage.ObjectStorage
	dispatcher Dispatcher
	workDir    string
	logger     *slog.Logger
}

func NewWorker(docs DocumentStore, store storage.ObjectStorage, dispatcher Dispatcher, workDir string, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	if workDir == "" {
		workDir = os.TempDir()
	}
	return &Worker{
		docs:       docs,
		storage:    store,
		dispatcher: dispatcher,
		workDir:    workDir,
		logger:     logger,
	}
}

// HandleTask processes one delivery end to end.
//
// The status flip to processing happens before any extraction work, so a
// crash mid-extraction is observable. The processed blob is written before
// the metadata flip; a crash between the two leaves the document in
// processing and the redelivered task redoes both writes idempotently.
func (w *Worker) HandleTask(ctx context.Context, task queue.ExtractionTask) error {
	docID, err := uuid.Parse(task.DocID)
	if err != nil {
		w.logger.Warn("discarding task with invalid document id", "doc_id", task.DocID)
		return nil
	}
	ownerID, err := uuid.Parse(task.OwnerID)
	if err != nil {
		w.logger.Warn("discarding task with invalid owner id", "doc_id", docID, "owner_id", task.OwnerID)
		return nil
	}

	doc, err := w.docs.GetByID(ctx, docID)
	if errors.Is(err, common.ErrNotFound) {
		w.logger.Warn("task references unknown document, discarding", "doc_id", docID)
		return nil
	}
	if err != nil {
		return err
	}
	if doc.Status.IsTerminal() {
		w.logger.Info("duplicate delivery for terminal document, discarding",
			"doc_id", docID, "status", doc.Status)
		return nil
	}

	if applied, err := w.docs.MarkProcessing(ctx, docID); err != nil {
		return err
	} else if !applied {
		// Another delivery finished this document between the read above
		// and now.
		w.logger.Info("document reached terminal state concurrently, discarding", "doc_id", docID)
		return nil
	}

	data, err := w.storage.Get(ctx, task.OriginalPath)
	if errors.Is(err, common.ErrNotFound) {
		// Retrying cannot fix a missing blob.
		return w.fail(ctx, docID, "original blob missing: "+task.OriginalPath)
	}
	if err != nil {
		return err
	}

	localPath, cleanup, err := w.stage(task.OriginalPath, data)
	if err != nil {
		return err
	}
	defer cleanup()

	strategy := w.dispatcher.SelectStrategy(task.OriginalPath)
	w.logger.Debug("extraction started", "doc_id", docID, "strategy", strategy.Name())

	res, err := strategy.Extract(ctx, localPath)
	if err != nil {
		if common.IsTransient(err) {
			return err
		}
		return w.fail(ctx, docID, err.Error())
	}

	processedPath := ingest.ProcessedKey(ownerID, docID)
	if err := w.storage.Put(ctx, processedPath, []byte(res.Text), "text/plain; charset=utf-8"); err != nil {
		// Document stays in processing; redelivery retries from the top.
		return err
	}

	applied, err := w.docs.MarkProcessed(ctx, docID, processedPath, res.Text)
	if err != nil {
		return err
	}
	if !applied {
		w.logger.Info("document already terminal, processed write skipped", "doc_id", docID)
		return nil
	}

	w.logger.Info("extraction finished",
		"doc_id", docID,
		"strategy", strategy.Name(),
		"pages", res.Pages,
		"text_bytes", len(res.Text),
		"duration_ms", res.Duration.Milliseconds(),
	)
	return nil
}

// fail records a terminal content failure. The delivery is acknowledged only
// if the failure could be recorded; otherwise it stays in flight.
func (w *Worker) fail(ctx context.Context, docID uuid.UUID, message string) error {
	if _, err := w.docs.MarkFailed(ctx, docID, message); err != nil {
		return err
	}
	w.logger.Warn("document extraction failed", "doc_id", docID, "error", message)
	return nil
}

// stage writes the blob to a scratch file so the external tools can read
// it. The original extension is preserved for strategy-specific tooling.
func (w *Worker) stage(originalPath string, data []byte) (string, func(), error) {
	dir, err := os.MkdirTemp(w.workDir, "docpipe-task-*")
	if err != nil {
		return "", nil, common.NewAppError("WORKDIR", "failed to create scratch directory", common.ErrUnavailable)
	}
	cleanup := func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			w.logger.Warn("failed to remove scratch directory", "dir", dir, "error", rmErr)
		}
	}

	path := filepath.Join(dir, "blob"+filepath.Ext(originalPath))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		cleanup()
		return "", nil, common.NewAppError("WORKDIR", "failed to stage blob", common.ErrUnavailable)
	}
	return path, cleanup, nil
}
