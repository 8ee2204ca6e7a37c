package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aolabi/docpipe/constants"
	"github.com/aolabi/docpipe/gen/ent"
	entdoc "github.com/aolabi/docpipe/gen/ent/document"
	"github.com/aolabi/docpipe/internal/common"
	"github.com/aolabi/docpipe/internal/entity"
)

// DocumentRepository is the full surface over the documents table. Consumers
// depend on their own narrower interfaces; this one exists for wiring.
type DocumentRepository interface {
	Insert(ctx context.Context, doc *entity.Document) (*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Document, error)
	MarkQueued(ctx context.Context, id uuid.UUID) error
	MarkProcessing(ctx context.Context, id uuid.UUID) (bool, error)
	MarkProcessed(ctx context.Context, id uuid.UUID, processedPath, processedText string) (bool, error)
	MarkFailed(ctx context.Context, id uuid.UUID, message string) (bool, error)
	ListStuck(ctx context.Context, before time.Time, statuses ...constants.DocumentStatus) ([]*entity.Document, error)
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &documentRepo{ent: entc, logger: logger}
}

func (r *documentRepo) Insert(ctx context.Context, doc *entity.Document) (*entity.Document, error) {
	row, err := r.ent.Document.Create().
		SetID(doc.ID).
		SetOwnerID(doc.OwnerID).
		SetFilename(doc.Filename).
		SetOriginalPath(doc.OriginalPath).
		SetStatus(string(doc.Status)).
		Save(ctx)
	if err != nil {
		r.logger.Error("document insert failed", "doc_id", doc.ID, "owner_id", doc.OwnerID, "error", err)
		return nil, mapEntErr(err)
	}
	r.logger.Info("document created", "doc_id", row.ID, "owner_id", row.OwnerID, "status", row.Status)
	return toEntity(row), nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		return nil, mapEntErr(err)
	}
	return toEntity(row), nil
}

func (r *documentRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Document, error) {
	rows, err := r.ent.Document.Query().
		Where(entdoc.OwnerID(ownerID)).
		Order(ent.Desc(entdoc.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("document list failed", "owner_id", ownerID, "error", err)
		return nil, mapEntErr(err)
	}
	docs := make([]*entity.Document, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, toEntity(row))
	}
	return docs, nil
}

// MarkQueued advances uploaded -> queued after a successful task publish.
// A document that already moved on is left alone.
func (r *documentRepo) MarkQueued(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.Document.Update().
		Where(entdoc.ID(id), entdoc.StatusEQ(string(constants.StatusUploaded))).
		SetStatus(string(constants.StatusQueued)).
		Save(ctx)
	if err != nil {
		return mapEntErr(err)
	}
	return nil
}

// MarkProcessing moves a non-terminal document to processing. Returns false
// when the row is already terminal, which tells the caller the delivery is a
// duplicate and must be discarded.
func (r *documentRepo) MarkProcessing(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.transition(ctx, id, constants.StatusProcessing, entity.Patch{})
}

// MarkProcessed flips to processed and sets both result fields in a single
// UPDATE, so no intermediate state is observable.
func (r *documentRepo) MarkProcessed(ctx context.Context, id uuid.UUID, processedPath, processedText string) (bool, error) {
	applied, err := r.transition(ctx, id, constants.StatusProcessed, entity.Patch{
		ProcessedPath: &processedPath,
		ProcessedText: &processedText,
	})
	if err == nil && applied {
		r.logger.Info("document processed", "doc_id", id, "processed_path", processedPath)
	}
	return applied, err
}

func (r *documentRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string) (bool, error) {
	applied, err := r.transition(ctx, id, constants.StatusFailed, entity.Patch{
		ErrorMessage: &message,
	})
	if err == nil && applied {
		r.logger.Warn("document failed", "doc_id", id, "error", message)
	}
	return applied, err
}

// ListStuck returns documents sitting in the given statuses since before the
// cutoff. The reconciliation sweep uses this to find rows whose task was
// never published or whose worker died mid-extraction.
func (r *documentRepo) ListStuck(ctx context.Context, before time.Time, statuses ...constants.DocumentStatus) ([]*entity.Document, error) {
	vals := make([]string, 0, len(statuses))
	for _, s := range statuses {
		vals = append(vals, string(s))
	}
	rows, err := r.ent.Document.Query().
		Where(entdoc.StatusIn(vals...), entdoc.UpdatedAtLT(before)).
		Order(ent.Asc(entdoc.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, mapEntErr(err)
	}
	docs := make([]*entity.Document, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, toEntity(row))
	}
	return docs, nil
}

// transition applies a guarded status change: terminal rows are never
// touched. The returned bool reports whether a row was updated.
func (r *documentRepo) transition(ctx context.Context, id uuid.UUID, to constants.DocumentStatus, patch entity.Patch) (bool, error) {
	upd := r.ent.Document.Update().
		Where(
			entdoc.ID(id),
			entdoc.StatusNotIn(string(constants.StatusProcessed), string(constants.StatusFailed)),
		).
		SetStatus(string(to))
	applyPatch(upd, patch)
	n, err := upd.Save(ctx)
	if err != nil {
		r.logger.Error("document transition failed", "doc_id", id, "to", to, "error", err)
		return false, mapEntErr(err)
	}
	return n > 0, nil
}

// applyPatch sets only the fields present on the patch.
func applyPatch(upd *ent.DocumentUpdate, patch entity.Patch) {
	if patch.Status != nil {
		upd.SetStatus(string(*patch.Status))
	}
	if patch.ProcessedPath != nil {
		upd.SetProcessedPath(*patch.ProcessedPath)
	}
	if patch.ProcessedText != nil {
		upd.SetProcessedText(*patch.ProcessedText)
	}
	if patch.ErrorMessage != nil {
		upd.SetErrorMessage(*patch.ErrorMessage)
	}
}

func toEntity(row *ent.Document) *entity.Document {
	return &entity.Document{
		ID:            row.ID,
		OwnerID:       row.OwnerID,
		Filename:      row.Filename,
		OriginalPath:  row.OriginalPath,
		ProcessedPath: row.ProcessedPath,
		ProcessedText: row.ProcessedText,
		Status:        constants.DocumentStatus(row.Status),
		ErrorMessage:  row.ErrorMessage,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

// mapEntErr folds ent errors into the shared taxonomy: missing rows are
// ErrNotFound, anything else is treated as a transient store failure.
func mapEntErr(err error) error {
	switch {
	case err == nil:
		return nil
	case ent.IsNotFound(err):
		return common.NewAppError("DOCUMENT_NOT_FOUND", "document not found", common.ErrNotFound)
	case ent.IsValidationError(err), ent.IsConstraintError(err):
		return common.NewAppError("DOCUMENT_INVALID", err.Error(), common.ErrInvalidInput)
	default:
		return common.NewAppError("METADATA_UNAVAILABLE", err.Error(), common.ErrUnavailable)
	}
}
