package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aolabi/docpipe/constants"
	"github.com/aolabi/docpipe/internal/common"
	"github.com/aolabi/docpipe/internal/entity"
	"github.com/aolabi/docpipe/internal/queue"
	"github.com/aolabi/docpipe/internal/storage"
)

// DocumentStore is the slice of the metadata store the coordinator needs.
type DocumentStore interface {
	Insert(ctx context.Context, doc *entity.Document) (*entity.Document, error)
	MarkQueued(ctx context.Context, id uuid.UUID) error
}

// Coordinator owns the upload half of the pipeline: blob write, record
// creation, task publish. Extraction happens asynchronously in the workers.
type Coordinator struct {
	storage storage.ObjectStorage
	docs    DocumentStore
	tasks   queue.Publisher
	logger  *slog.Logger
}

func NewCoordinator(store storage.ObjectStorage, docs DocumentStore, tasks queue.Publisher, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		storage: store,
		docs:    docs,
		tasks:   tasks,
		logger:  logger,
	}
}

// Submit persists the uploaded blob, creates the tracking record, and
// publishes the extraction task. The returned document reflects the status
// reached before returning; callers poll for the asynchronous outcome.
//
// Failure order matters: a blob-write failure leaves no record behind, and
// an insert failure surfaces before any task exists. A publish failure after
// the committed insert leaves the document in uploaded; the reconciliation
// sweep republishes such rows, so Submit still succeeds.
func (c *Coordinator) Submit(ctx context.Context, ownerID uuid.UUID, filename string, data []byte) (*entity.Document, error) {
	if len(data) == 0 {
		return nil, common.NewAppError("EMPTY_FILE", "file content required", common.ErrInvalidInput)
	}
	safeName := SanitizeFilename(filename)
	if safeName == "" {
		return nil, common.NewAppError("BAD_FILENAME", "filename required", common.ErrInvalidInput)
	}

	docID := uuid.New()
	originalPath := OriginalKey(ownerID, docID, safeName)

	putCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := c.storage.EnsureBucket(putCtx); err != nil {
		return nil, err
	}
	if err := c.storage.Put(putCtx, originalPath, data, ContentTypeFor(safeName)); err != nil {
		return nil, err
	}

	insertCtx, cancelInsert := context.WithTimeout(ctx, 10*time.Second)
	defer cancelInsert()
	doc, err := c.docs.Insert(insertCtx, &entity.Document{
		ID:           docID,
		OwnerID:      ownerID,
		Filename:     safeName,
		OriginalPath: originalPath,
		Status:       constants.StatusUploaded,
	})
	if err != nil {
		return nil, common.WrapError(err, "upload failed")
	}

	task := queue.ExtractionTask{
		DocID:        docID.String(),
		OwnerID:      ownerID.String(),
		OriginalPath: originalPath,
	}
	if err := c.tasks.Publish(ctx, task); err != nil {
		// Row committed, no task in flight: a detectable gap the
		// reconciliation sweep repairs from the stuck-uploaded scan.
		c.logger.Error("consistency gap: task publish failed after insert",
			"doc_id", docID, "owner_id", ownerID, "error", err)
		return doc, nil
	}

	if err := c.docs.MarkQueued(ctx, docID); err != nil {
		// The task is published; a worker will advance the status anyway.
		c.logger.Warn("mark queued failed", "doc_id", docID, "error", err)
		return doc, nil
	}
	doc.Status = constants.StatusQueued

	c.logger.Info("document submitted",
		"doc_id", docID, "owner_id", ownerID, "filename", safeName, "bytes", len(data))
	return doc, nil
}
