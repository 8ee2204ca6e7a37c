package ingest

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"report.pdf", "report.pdf"},
		{"photo.png", "photo.png"},
		{"my scan (1).jpeg", "my_scan__1_.jpeg"},
		{"../../etc/passwd", "passwd"},
		{`..\..\windows\system32\cmd.exe`, "cmd.exe"},
		{"/var/tmp/evil.pdf", "evil.pdf"},
		{".hidden", "hidden"},
		{"...", ""},
		{"", ""},
		{"résumé.pdf", "r_sum_.pdf"},
	}

	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStorageKeys(t *testing.T) {
	ownerID := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	docID := uuid.MustParse("7d444840-9dc0-11d1-b245-5ffdce74fad2")

	original := OriginalKey(ownerID, docID, "report.pdf")
	wantOriginal := "users/6ba7b810-9dad-11d1-80b4-00c04fd430c8/original/7d444840-9dc0-11d1-b245-5ffdce74fad2_report.pdf"
	if original != wantOriginal {
		t.Errorf("OriginalKey = %q, want %q", original, wantOriginal)
	}

	processed := ProcessedKey(ownerID, docID)
	wantProcessed := "users/6ba7b810-9dad-11d1-80b4-00c04fd430c8/processed/7d444840-9dc0-11d1-b245-5ffdce74fad2.txt"
	if processed != wantProcessed {
		t.Errorf("ProcessedKey = %q, want %q", processed, wantProcessed)
	}

	if strings.Contains(ProcessedKey(ownerID, docID), "report") {
		t.Error("processed key must not depend on the filename")
	}
}

func TestContentTypeFor(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"report.pdf", "application/pdf"},
		{"photo.png", "image/png"},
		{"blob.unknownext", "application/octet-stream"},
		{"noextension", "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := ContentTypeFor(tt.filename); got != tt.want {
			t.Errorf("ContentTypeFor(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}
