package extract

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/aolabi/docpipe/constants"
	"github.com/aolabi/docpipe/internal/common"
	"github.com/aolabi/docpipe/internal/entity"
	"github.com/aolabi/docpipe/internal/queue"
)

type fakeWorkerStore struct {
	doc *entity.Document

	getErr        error
	processingErr error
	processedErr  error

	processed     bool
	processedPath string
	processedText string
	failed        bool
	failedMessage string
	calls         []string
}

func (f *fakeWorkerStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	f.calls = append(f.calls, "get")
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.doc == nil || f.doc.ID != id {
		return nil, common.NewAppError("DOC_NOT_FOUND", "document not found", common.ErrNotFound)
	}
	cp := *f.doc
	return &cp, nil
}

func (f *fakeWorkerStore) MarkProcessing(ctx context.Context, id uuid.UUID) (bool, error) {
	f.calls = append(f.calls, "mark-processing")
	if f.processingErr != nil {
		return false, f.processingErr
	}
	if f.doc.Status.IsTerminal() {
		return false, nil
	}
	f.doc.Status = constants.StatusProcessing
	return true, nil
}

func (f *fakeWorkerStore) MarkProcessed(ctx context.Context, id uuid.UUID, processedPath, processedText string) (bool, error) {
	f.calls = append(f.calls, "mark-processed")
	if f.processedErr != nil {
		return false, f.processedErr
	}
	if f.doc.Status.IsTerminal() {
		return false, nil
	}
	f.doc.Status = constants.StatusProcessed
	f.processed = true
	f.processedPath = processedPath
	f.processedText = processedText
	return true, nil
}

func (f *fakeWorkerStore) MarkFailed(ctx context.Context, id uuid.UUID, message string) (bool, error) {
	f.calls = append(f.calls, "mark-failed")
	if f.doc.Status.IsTerminal() {
		return false, nil
	}
	f.doc.Status = constants.StatusFailed
	f.failed = true
	f.failedMessage = message
	return true, nil
}

type fakeBlobStore struct {
	objects map[string][]byte
	getErr  error
	putErr  error
}

func (f *fakeBlobStore) EnsureBucket(ctx context.Context) error { return nil }

func (f *fakeBlobStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.objects[key] = data
	return nil
}

func (f *fakeBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.objects[key]
	if !ok {
		return nil, common.NewAppError("OBJECT_NOT_FOUND", "object not found", common.ErrNotFound)
	}
	return data, nil
}

func (f *fakeBlobStore) Bucket() string { return "documents" }

// fixedStrategy stands in for the OCR tooling.
type fixedStrategy struct {
	text string
	err  error
}

func (s fixedStrategy) Name() string { return "fixed" }

func (s fixedStrategy) Extract(ctx context.Context, path string) (Result, error) {
	if s.err != nil {
		return Result{}, s.err
	}
	return Result{Text: s.text, Pages: 1}, nil
}

type fixedDispatcher struct{ s Strategy }

func (d fixedDispatcher) SelectStrategy(path string) Strategy { return d.s }

type workerFixture struct {
	worker *Worker
	docs   *fakeWorkerStore
	blobs  *fakeBlobStore
	task   queue.ExtractionTask
}

func newWorkerFixture(t *testing.T, strategy Strategy) *workerFixture {
	t.Helper()
	docID := uuid.New()
	ownerID := uuid.New()
	originalPath := "users/" + ownerID.String() + "/original/" + docID.String() + "_scan.pdf"

	docs := &fakeWorkerStore{doc: &entity.Document{
		ID:           docID,
		OwnerID:      ownerID,
		Filename:     "scan.pdf",
		OriginalPath: originalPath,
		Status:       constants.StatusQueued,
	}}
	blobs := &fakeBlobStore{objects: map[string][]byte{originalPath: []byte("%PDF-1.4")}}

	return &workerFixture{
		worker: NewWorker(docs, blobs, fixedDispatcher{s: strategy}, t.TempDir(), nil),
		docs:   docs,
		blobs:  blobs,
		task: queue.ExtractionTask{
			DocID:        docID.String(),
			OwnerID:      ownerID.String(),
			OriginalPath: originalPath,
		},
	}
}

func TestHandleTask_Success(t *testing.T) {
	f := newWorkerFixture(t, fixedStrategy{text: "recognized text"})

	if err := f.worker.HandleTask(context.Background(), f.task); err != nil {
		t.Fatalf("HandleTask: %v", err)
	}
	if !f.docs.processed {
		t.Fatal("document was not marked processed")
	}
	if f.docs.processedText != "recognized text" {
		t.Errorf("processed text = %q", f.docs.processedText)
	}

	wantPath := "users/" + f.task.OwnerID + "/processed/" + f.task.DocID + ".txt"
	if f.docs.processedPath != wantPath {
		t.Errorf("processed path = %q, want %q", f.docs.processedPath, wantPath)
	}
	if got := f.blobs.objects[wantPath]; string(got) != "recognized text" {
		t.Errorf("processed blob = %q", got)
	}

	// processing flip precedes the extraction result writes
	want := []string{"get", "mark-processing", "mark-processed"}
	if len(f.docs.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", f.docs.calls, want)
	}
	for i := range want {
		if f.docs.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", f.docs.calls, want)
		}
	}
}

func TestHandleTask_EmptyTextStillSucceeds(t *testing.T) {
	f := newWorkerFixture(t, fixedStrategy{text: ""})

	if err := f.worker.HandleTask(context.Background(), f.task); err != nil {
		t.Fatalf("HandleTask: %v", err)
	}
	if !f.docs.processed || f.docs.processedText != "" {
		t.Errorf("processed=%v text=%q, want processed with empty text", f.docs.processed, f.docs.processedText)
	}
}

func TestHandleTask_InvalidIDsAreDiscarded(t *testing.T) {
	f := newWorkerFixture(t, fixedStrategy{text: "x"})

	for _, task := range []queue.ExtractionTask{
		{DocID: "not-a-uuid", OwnerID: f.task.OwnerID, OriginalPath: f.task.OriginalPath},
		{DocID: f.task.DocID, OwnerID: "not-a-uuid", OriginalPath: f.task.OriginalPath},
	} {
		if err := f.worker.HandleTask(context.Background(), task); err != nil {
			t.Errorf("HandleTask(%+v) = %v, want ack", task, err)
		}
	}
	if len(f.docs.calls) != 0 {
		t.Errorf("store touched for malformed ids: %v", f.docs.calls)
	}
}

func TestHandleTask_UnknownDocumentIsDiscarded(t *testing.T) {
	f := newWorkerFixture(t, fixedStrategy{text: "x"})
	f.task.DocID = uuid.NewString()

	if err := f.worker.HandleTask(context.Background(), f.task); err != nil {
		t.Fatalf("HandleTask = %v, want ack for unknown document", err)
	}
}

func TestHandleTask_TerminalDocumentIsDiscarded(t *testing.T) {
	for _, status := range []constants.DocumentStatus{constants.StatusProcessed, constants.StatusFailed} {
		f := newWorkerFixture(t, fixedStrategy{text: "x"})
		f.docs.doc.Status = status

		if err := f.worker.HandleTask(context.Background(), f.task); err != nil {
			t.Errorf("HandleTask(%s) = %v, want ack", status, err)
		}
		if f.docs.processed || f.docs.failed {
			t.Errorf("terminal document %s was modified", status)
		}
	}
}

func TestHandleTask_MetadataReadFailureKeepsDelivery(t *testing.T) {
	f := newWorkerFixture(t, fixedStrategy{text: "x"})
	f.docs.getErr = common.NewAppError("METADATA_UNAVAILABLE", "timeout", common.ErrUnavailable)

	if err := f.worker.HandleTask(context.Background(), f.task); err == nil {
		t.Fatal("HandleTask must withhold the ack when the metadata read fails")
	}
}

func TestHandleTask_MissingBlobFailsDocument(t *testing.T) {
	f := newWorkerFixture(t, fixedStrategy{text: "x"})
	delete(f.blobs.objects, f.task.OriginalPath)

	if err := f.worker.HandleTask(context.Background(), f.task); err != nil {
		t.Fatalf("HandleTask = %v, want ack after the failure is recorded", err)
	}
	if !f.docs.failed {
		t.Fatal("document was not marked failed")
	}
	if !strings.Contains(f.docs.failedMessage, f.task.OriginalPath) {
		t.Errorf("failure message %q should name the missing blob", f.docs.failedMessage)
	}
}

func TestHandleTask_TransientBlobReadKeepsDelivery(t *testing.T) {
	f := newWorkerFixture(t, fixedStrategy{text: "x"})
	f.blobs.getErr = common.NewAppError("STORAGE_UNAVAILABLE", "connection refused", common.ErrUnavailable)

	if err := f.worker.HandleTask(context.Background(), f.task); err == nil {
		t.Fatal("HandleTask must withhold the ack on a transient blob read failure")
	}
	if f.docs.failed {
		t.Error("transient storage failure must not mark the document failed")
	}
}

func TestHandleTask_ContentErrorFailsDocument(t *testing.T) {
	contentErr := common.NewAppError("CONTENT_REJECTED", "tesseract could not process input", common.ErrCorruptInput)
	f := newWorkerFixture(t, fixedStrategy{err: contentErr})

	if err := f.worker.HandleTask(context.Background(), f.task); err != nil {
		t.Fatalf("HandleTask = %v, want ack after the failure is recorded", err)
	}
	if !f.docs.failed {
		t.Fatal("document was not marked failed")
	}
	if f.docs.doc.Status != constants.StatusFailed {
		t.Errorf("status = %q, want %q", f.docs.doc.Status, constants.StatusFailed)
	}
}

func TestHandleTask_TransientExtractionKeepsDelivery(t *testing.T) {
	toolErr := common.NewAppError("TOOL_MISSING", "tesseract binary not found", common.ErrUnavailable)
	f := newWorkerFixture(t, fixedStrategy{err: toolErr})

	if err := f.worker.HandleTask(context.Background(), f.task); err == nil {
		t.Fatal("HandleTask must withhold the ack when the tooling is unavailable")
	}
	if f.docs.failed {
		t.Error("tool outage must not mark the document failed")
	}
	if f.docs.doc.Status != constants.StatusProcessing {
		t.Errorf("status = %q, want processing until redelivery", f.docs.doc.Status)
	}
}

func TestHandleTask_ProcessedBlobWriteKeepsDelivery(t *testing.T) {
	f := newWorkerFixture(t, fixedStrategy{text: "x"})
	f.blobs.putErr = common.NewAppError("STORAGE_UNAVAILABLE", "connection refused", common.ErrUnavailable)

	if err := f.worker.HandleTask(context.Background(), f.task); err == nil {
		t.Fatal("HandleTask must withhold the ack when the processed blob write fails")
	}
	if f.docs.processed {
		t.Error("metadata must not flip to processed without the blob")
	}
}

func TestHandleTask_MetadataFlipFailureKeepsDelivery(t *testing.T) {
	f := newWorkerFixture(t, fixedStrategy{text: "x"})
	f.docs.processedErr = common.NewAppError("METADATA_UNAVAILABLE", "timeout", common.ErrUnavailable)

	if err := f.worker.HandleTask(context.Background(), f.task); err == nil {
		t.Fatal("HandleTask must withhold the ack when the processed flip fails")
	}
}

func TestHandleTask_RedeliveryAfterSuccessIsIdempotent(t *testing.T) {
	f := newWorkerFixture(t, fixedStrategy{text: "recognized text"})

	if err := f.worker.HandleTask(context.Background(), f.task); err != nil {
		t.Fatalf("first delivery: %v", err)
	}
	if err := f.worker.HandleTask(context.Background(), f.task); err != nil {
		t.Fatalf("redelivery: %v", err)
	}
	if f.docs.doc.Status != constants.StatusProcessed {
		t.Errorf("status = %q after redelivery, want %q", f.docs.doc.Status, constants.StatusProcessed)
	}
}
