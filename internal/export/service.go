package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/aolabi/docpipe/internal/entity"
)

// DocumentLister is the slice of the metadata store the exporter needs.
type DocumentLister interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Document, error)
}

// Service produces XLSX bytes listing an owner's documents and their
// extraction outcomes.
type Service struct {
	docs   DocumentLister
	logger *slog.Logger
}

func NewService(docs DocumentLister, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docs: docs, logger: logger}
}

const sheet = "Documents"

var headers = []string{
	"Document ID",
	"Filename",
	"Status",
	"Original Path",
	"Processed Path",
	"Error",
	"Created At",
	"Updated At",
}

// ExportDocumentsXLSX returns a workbook with one row per document.
func (s *Service) ExportDocumentsXLSX(ctx context.Context, ownerID uuid.UUID) ([]byte, error) {
	start := time.Now()

	docs, err := s.docs.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	f := excelize.NewFile()
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for rowIdx, doc := range docs {
		values := []any{
			doc.ID.String(),
			doc.Filename,
			string(doc.Status),
			doc.OriginalPath,
			strOrEmpty(doc.ProcessedPath),
			strOrEmpty(doc.ErrorMessage),
			doc.CreatedAt.UTC().Format(time.RFC3339),
			doc.UpdatedAt.UTC().Format(time.RFC3339),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	s.logger.Info("documents exported",
		"owner_id", ownerID, "rows", len(docs), "duration_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
