package export

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/aolabi/docpipe/constants"
	"github.com/aolabi/docpipe/internal/entity"
)

type fakeLister struct {
	docs []*entity.Document
	err  error
}

func (f *fakeLister) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Document, error) {
	return f.docs, f.err
}

func strPtr(s string) *string { return &s }

func TestExportDocumentsXLSX(t *testing.T) {
	ownerID := uuid.New()
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	processedPath := "users/" + ownerID.String() + "/processed/doc.txt"
	docs := []*entity.Document{
		{
			ID:            uuid.New(),
			OwnerID:       ownerID,
			Filename:      "scan.pdf",
			OriginalPath:  "users/" + ownerID.String() + "/original/doc_scan.pdf",
			ProcessedPath: &processedPath,
			Status:        constants.StatusProcessed,
			CreatedAt:     created,
			UpdatedAt:     created.Add(time.Minute),
		},
		{
			ID:           uuid.New(),
			OwnerID:      ownerID,
			Filename:     "broken.jpg",
			OriginalPath: "users/" + ownerID.String() + "/original/doc_broken.jpg",
			ErrorMessage: strPtr("CONTENT_REJECTED: tesseract could not process input"),
			Status:       constants.StatusFailed,
			CreatedAt:    created,
			UpdatedAt:    created,
		},
	}

	svc := NewService(&fakeLister{docs: docs}, nil)
	data, err := svc.ExportDocumentsXLSX(context.Background(), ownerID)
	if err != nil {
		t.Fatalf("ExportDocumentsXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2 documents", len(rows))
	}

	if rows[0][0] != "Document ID" || rows[0][2] != "Status" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][1] != "scan.pdf" || rows[1][2] != string(constants.StatusProcessed) {
		t.Errorf("processed row = %v", rows[1])
	}
	if rows[1][4] != processedPath {
		t.Errorf("processed path cell = %q, want %q", rows[1][4], processedPath)
	}
	if rows[2][2] != string(constants.StatusFailed) {
		t.Errorf("failed row = %v", rows[2])
	}
	if rows[2][5] == "" {
		t.Error("failed row should carry the recorded error message")
	}
}

func TestExportDocumentsXLSX_EmptyOwner(t *testing.T) {
	svc := NewService(&fakeLister{}, nil)

	data, err := svc.ExportDocumentsXLSX(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("ExportDocumentsXLSX: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("rows = %d, want header only", len(rows))
	}
}

func TestExportDocumentsXLSX_ListerFailure(t *testing.T) {
	svc := NewService(&fakeLister{err: errors.New("connection refused")}, nil)

	if _, err := svc.ExportDocumentsXLSX(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected the lister failure to surface")
	}
}
