package server

import (
	"context"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	v1 "github.com/aolabi/docpipe/gen/proto/documents/v1"
	"github.com/aolabi/docpipe/internal/cache"
	"github.com/aolabi/docpipe/internal/common"
	"github.com/aolabi/docpipe/internal/entity"
	"github.com/aolabi/docpipe/internal/export"
	"github.com/aolabi/docpipe/internal/ingest"
	"github.com/aolabi/docpipe/internal/repository"
)

// DocumentsService is the gRPC surface over the ingestion pipeline and the
// document read path. Request routing and auth sit in front of it.
type DocumentsService struct {
	v1.UnimplementedDocumentServiceServer
	coordinator *ingest.Coordinator
	docs        repository.DocumentRepository
	cache       *cache.DocumentCache // nil when caching is disabled
	exporter    *export.Service
	logger      *slog.Logger
}

func NewDocumentsService(
	coordinator *ingest.Coordinator,
	docs repository.DocumentRepository,
	docCache *cache.DocumentCache,
	exporter *export.Service,
	logger *slog.Logger,
) *DocumentsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentsService{
		coordinator: coordinator,
		docs:        docs,
		cache:       docCache,
		exporter:    exporter,
		logger:      logger,
	}
}

// UploadDocument implements v1.DocumentServiceServer
func (s *DocumentsService) UploadDocument(ctx context.Context, req *v1.UploadDocumentRequest) (*v1.UploadDocumentResponse, error) {
	ownerID, err := parseOwnerID(req.GetOwnerId())
	if err != nil {
		s.logger.Error("upload request with invalid owner_id", "owner_id", req.GetOwnerId())
		return nil, err
	}
	if len(req.GetContent()) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}

	doc, err := s.coordinator.Submit(ctx, ownerID, req.GetFilename(), req.GetContent())
	if err != nil {
		s.logger.Error("upload failed", "owner_id", ownerID, "error", err)
		return nil, common.ToStatusError(err)
	}

	return &v1.UploadDocumentResponse{
		DocumentId: doc.ID.String(),
		Status:     string(doc.Status),
	}, nil
}

// GetDocument implements v1.DocumentServiceServer
func (s *DocumentsService) GetDocument(ctx context.Context, req *v1.GetDocumentRequest) (*v1.GetDocumentResponse, error) {
	id := strings.TrimSpace(req.GetDocumentId())
	docID, err := uuid.Parse(id)
	if err != nil {
		return nil, common.InvalidArgumentError("document_id must be a UUID")
	}

	if s.cache != nil {
		if doc, ok := s.cache.Get(ctx, docID); ok {
			return &v1.GetDocumentResponse{Document: toPBDocument(doc)}, nil
		}
	}

	doc, err := s.docs.GetByID(ctx, docID)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	if s.cache != nil {
		s.cache.Set(ctx, doc)
	}
	return &v1.GetDocumentResponse{Document: toPBDocument(doc)}, nil
}

// ListDocuments implements v1.DocumentServiceServer
func (s *DocumentsService) ListDocuments(ctx context.Context, req *v1.ListDocumentsRequest) (*v1.ListDocumentsResponse, error) {
	ownerID, err := parseOwnerID(req.GetOwnerId())
	if err != nil {
		return nil, err
	}

	docs, err := s.docs.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, common.ToStatusError(err)
	}

	out := make([]*v1.Document, 0, len(docs))
	for _, doc := range docs {
		out = append(out, toPBDocument(doc))
	}
	return &v1.ListDocumentsResponse{Documents: out}, nil
}

// ExportDocuments implements v1.DocumentServiceServer
func (s *DocumentsService) ExportDocuments(ctx context.Context, req *v1.ExportDocumentsRequest) (*v1.ExportDocumentsResponse, error) {
	ownerID, err := parseOwnerID(req.GetOwnerId())
	if err != nil {
		return nil, err
	}

	data, err := s.exporter.ExportDocumentsXLSX(ctx, ownerID)
	if err != nil {
		s.logger.Error("export failed", "owner_id", ownerID, "error", err)
		return nil, common.ToStatusError(err)
	}

	return &v1.ExportDocumentsResponse{
		Xlsx:     data,
		Filename: fmt.Sprintf("documents-%s-%s.xlsx", ownerID, time.Now().UTC().Format("20060102")),
	}, nil
}

func parseOwnerID(raw string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return uuid.Nil, common.InvalidArgumentError("owner_id is required")
	}
	ownerID, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("owner_id must be a UUID")
	}
	return ownerID, nil
}

func toPBDocument(doc *entity.Document) *v1.Document {
	return &v1.Document{
		Id:            doc.ID.String(),
		OwnerId:       doc.OwnerID.String(),
		Filename:      doc.Filename,
		OriginalPath:  doc.OriginalPath,
		ProcessedPath: strOrEmpty(doc.ProcessedPath),
		ProcessedText: strOrEmpty(doc.ProcessedText),
		Status:        string(doc.Status),
		ErrorMessage:  strOrEmpty(doc.ErrorMessage),
		CreatedAt:     doc.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     doc.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
