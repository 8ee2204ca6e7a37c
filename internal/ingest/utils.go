package ingest

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// safeFilenameChars keeps storage keys flat and predictable. Anything
// outside this set is replaced with an underscore.
func isSafeFilenameChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '.' || r == '-' || r == '_':
		return true
	default:
		return false
	}
}

// SanitizeFilename reduces an untrusted filename to a safe storage-key
// component: base name only, restricted character set, no leading dots.
// Returns "" when nothing usable remains.
func SanitizeFilename(name string) string {
	// Strip any directory part, whichever separator the client used.
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))

	var b strings.Builder
	for _, r := range name {
		if isSafeFilenameChar(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	cleaned := strings.Trim(b.String(), "._")
	if cleaned == "" {
		return ""
	}
	return cleaned
}

// OriginalKey is the object-store key for the uploaded blob.
func OriginalKey(ownerID, docID uuid.UUID, filename string) string {
	return fmt.Sprintf("users/%s/original/%s_%s", ownerID, docID, filename)
}

// ProcessedKey is the deterministic object-store key for the extracted text.
// Keyed by document id only, so a redelivered task overwrites in place.
func ProcessedKey(ownerID, docID uuid.UUID) string {
	return fmt.Sprintf("users/%s/processed/%s.txt", ownerID, docID)
}

// ContentTypeFor guesses the MIME type from the filename extension.
func ContentTypeFor(filename string) string {
	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
