package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/aolabi/docpipe/constants"
)

// Document is the tracked record for one uploaded file and its extraction
// lifecycle. ProcessedPath and ProcessedText are set together, in the same
// update as the flip to processed, and stay nil otherwise.
type Document struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Filename      string
	OriginalPath  string
	ProcessedPath *string
	ProcessedText *string
	Status        constants.DocumentStatus
	ErrorMessage  *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Patch lists only the fields present in a partial update. Nil means
// "leave unchanged"; repositories apply non-nil fields only.
type Patch struct {
	Status        *constants.DocumentStatus
	ProcessedPath *string
	ProcessedText *string
	ErrorMessage  *string
}

// IsEmpty reports whether the patch carries no changes.
func (p Patch) IsEmpty() bool {
	return p.Status == nil && p.ProcessedPath == nil && p.ProcessedText == nil && p.ErrorMessage == nil
}
