package ingest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/aolabi/docpipe/constants"
	"github.com/aolabi/docpipe/internal/common"
	"github.com/aolabi/docpipe/internal/entity"
	"github.com/aolabi/docpipe/internal/queue"
)

type fakeStorage struct {
	bucketErr error
	putErr    error
	objects   map[string][]byte
	calls     *[]string
}

func newFakeStorage(calls *[]string) *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte), calls: calls}
}

func (f *fakeStorage) EnsureBucket(ctx context.Context) error {
	*f.calls = append(*f.calls, "ensure-bucket")
	return f.bucketErr
}

func (f *fakeStorage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if f.putErr != nil {
		return f.putErr
	}
	*f.calls = append(*f.calls, "put:"+key)
	f.objects[key] = data
	return nil
}

func (f *fakeStorage) Get(ctx context.Context, key string) ([]byte, error) {
	data, ok := f.objects[key]
	if !ok {
		return nil, common.NewAppError("OBJECT_NOT_FOUND", "object not found", common.ErrNotFound)
	}
	return data, nil
}

func (f *fakeStorage) Bucket() string { return "documents" }

type fakeDocStore struct {
	insertErr error
	queuedErr error
	inserted  []*entity.Document
	queued    []uuid.UUID
	calls     *[]string
}

func (f *fakeDocStore) Insert(ctx context.Context, doc *entity.Document) (*entity.Document, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	*f.calls = append(*f.calls, "insert")
	cp := *doc
	f.inserted = append(f.inserted, &cp)
	return &cp, nil
}

func (f *fakeDocStore) MarkQueued(ctx context.Context, id uuid.UUID) error {
	if f.queuedErr != nil {
		return f.queuedErr
	}
	*f.calls = append(*f.calls, "mark-queued")
	f.queued = append(f.queued, id)
	return nil
}

type fakePublisher struct {
	err       error
	published []queue.ExtractionTask
	calls     *[]string
}

func (f *fakePublisher) Publish(ctx context.Context, task queue.ExtractionTask) error {
	if f.err != nil {
		return f.err
	}
	*f.calls = append(*f.calls, "publish")
	f.published = append(f.published, task)
	return nil
}

func (f *fakePublisher) Close() error { return nil }

func newTestCoordinator() (*Coordinator, *fakeStorage, *fakeDocStore, *fakePublisher, *[]string) {
	calls := &[]string{}
	store := newFakeStorage(calls)
	docs := &fakeDocStore{calls: calls}
	pub := &fakePublisher{calls: calls}
	return NewCoordinator(store, docs, pub, nil), store, docs, pub, calls
}

func TestSubmit_Success(t *testing.T) {
	c, store, docs, pub, calls := newTestCoordinator()
	ownerID := uuid.New()

	doc, err := c.Submit(context.Background(), ownerID, "report.pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("Submit: unexpected error: %v", err)
	}

	if doc.Status != constants.StatusQueued {
		t.Errorf("status = %q, want %q", doc.Status, constants.StatusQueued)
	}
	if len(docs.inserted) != 1 {
		t.Fatalf("inserted %d documents, want 1", len(docs.inserted))
	}
	if docs.inserted[0].Status != constants.StatusUploaded {
		t.Errorf("inserted status = %q, want %q", docs.inserted[0].Status, constants.StatusUploaded)
	}

	wantPrefix := "users/" + ownerID.String() + "/original/"
	if !strings.HasPrefix(doc.OriginalPath, wantPrefix) {
		t.Errorf("original path %q missing prefix %q", doc.OriginalPath, wantPrefix)
	}
	if !strings.HasSuffix(doc.OriginalPath, "_report.pdf") {
		t.Errorf("original path %q missing filename suffix", doc.OriginalPath)
	}
	if _, ok := store.objects[doc.OriginalPath]; !ok {
		t.Error("blob was not written under the original path")
	}

	if len(pub.published) != 1 {
		t.Fatalf("published %d tasks, want 1", len(pub.published))
	}
	task := pub.published[0]
	if task.DocID != doc.ID.String() || task.OwnerID != ownerID.String() || task.OriginalPath != doc.OriginalPath {
		t.Errorf("task %+v does not reference the document", task)
	}

	// Causal order: blob write happens-before insert happens-before publish.
	want := []string{"ensure-bucket", "put:" + doc.OriginalPath, "insert", "publish", "mark-queued"}
	if len(*calls) != len(want) {
		t.Fatalf("calls = %v, want %v", *calls, want)
	}
	for i := range want {
		if (*calls)[i] != want[i] {
			t.Fatalf("calls = %v, want %v", *calls, want)
		}
	}
}

func TestSubmit_EmptyFile(t *testing.T) {
	c, store, docs, pub, _ := newTestCoordinator()

	_, err := c.Submit(context.Background(), uuid.New(), "report.pdf", nil)
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("Submit(empty) error = %v, want ErrInvalidInput", err)
	}
	if len(store.objects) != 0 || len(docs.inserted) != 0 || len(pub.published) != 0 {
		t.Error("empty upload must leave no side effects")
	}
}

func TestSubmit_UnusableFilename(t *testing.T) {
	c, _, _, _, _ := newTestCoordinator()

	_, err := c.Submit(context.Background(), uuid.New(), "...", []byte("data"))
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("Submit(bad filename) error = %v, want ErrInvalidInput", err)
	}
}

func TestSubmit_BlobWriteFails(t *testing.T) {
	c, store, docs, pub, _ := newTestCoordinator()
	store.putErr = common.NewAppError("STORAGE_UNAVAILABLE", "connection refused", common.ErrUnavailable)

	_, err := c.Submit(context.Background(), uuid.New(), "report.pdf", []byte("data"))
	if !common.IsTransient(err) {
		t.Fatalf("Submit error = %v, want transient", err)
	}
	if len(docs.inserted) != 0 {
		t.Error("no document row may exist after a failed blob write")
	}
	if len(pub.published) != 0 {
		t.Error("no task may be published after a failed blob write")
	}
}

func TestSubmit_InsertFails(t *testing.T) {
	c, _, docs, pub, _ := newTestCoordinator()
	docs.insertErr = common.NewAppError("METADATA_UNAVAILABLE", "timeout", common.ErrUnavailable)

	_, err := c.Submit(context.Background(), uuid.New(), "report.pdf", []byte("data"))
	if err == nil {
		t.Fatal("Submit must fail when the insert fails")
	}
	if len(pub.published) != 0 {
		t.Error("no task may be published when the insert failed")
	}
}

func TestSubmit_PublishFailureLeavesUploadedDocument(t *testing.T) {
	c, _, docs, pub, _ := newTestCoordinator()
	pub.err = common.NewAppError("QUEUE_UNAVAILABLE", "broker down", common.ErrUnavailable)

	doc, err := c.Submit(context.Background(), uuid.New(), "report.pdf", []byte("data"))
	if err != nil {
		t.Fatalf("Submit: the committed document survives a publish failure, got error %v", err)
	}
	if doc.Status != constants.StatusUploaded {
		t.Errorf("status = %q, want %q (the detectable gap the sweep repairs)", doc.Status, constants.StatusUploaded)
	}
	if len(docs.queued) != 0 {
		t.Error("document must not be marked queued without a published task")
	}
}

func TestSubmit_SanitizedKeyHasNoPathTraversal(t *testing.T) {
	c, _, _, pub, _ := newTestCoordinator()

	doc, err := c.Submit(context.Background(), uuid.New(), "../../etc/passwd", []byte("data"))
	if err != nil {
		t.Fatalf("Submit: unexpected error: %v", err)
	}
	if strings.Contains(doc.OriginalPath, "..") {
		t.Errorf("original path %q leaks traversal segments", doc.OriginalPath)
	}
	if !strings.HasSuffix(doc.OriginalPath, "_passwd") {
		t.Errorf("original path %q should end with the sanitized base name", doc.OriginalPath)
	}
	if len(pub.published) != 1 {
		t.Fatalf("published %d tasks, want 1", len(pub.published))
	}
}
