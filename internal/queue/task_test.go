package queue

import (
	"errors"
	"testing"

	"github.com/aolabi/docpipe/internal/common"
)

func TestDecodeTask_RoundTrip(t *testing.T) {
	want := ExtractionTask{
		DocID:        "6a8cbd13-7f86-4c25-9c7b-3f2f1d2a4f10",
		OwnerID:      "0b5ac4a2-55a8-4b51-a7c8-9dc86e5a2f33",
		OriginalPath: "users/0b5ac4a2-55a8-4b51-a7c8-9dc86e5a2f33/original/6a8cbd13-7f86-4c25-9c7b-3f2f1d2a4f10_scan.pdf",
	}

	data, err := EncodeTask(want)
	if err != nil {
		t.Fatalf("EncodeTask: %v", err)
	}
	got, err := DecodeTask(data)
	if err != nil {
		t.Fatalf("DecodeTask: %v", err)
	}
	if got != want {
		t.Errorf("DecodeTask = %+v, want %+v", got, want)
	}
}

func TestDecodeTask_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", `{"doc_id"`},
		{"json but not an object", `"hello"`},
		{"missing field", `{"doc_id": "a", "owner_id": "b"}`},
		{"empty field", `{"doc_id": "", "owner_id": "b", "original_path": "c"}`},
		{"wrong type", `{"doc_id": 7, "owner_id": "b", "original_path": "c"}`},
		{"unknown field", `{"doc_id": "a", "owner_id": "b", "original_path": "c", "retries": 3}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTask([]byte(tt.payload))
			if !errors.Is(err, common.ErrInvalidInput) {
				t.Errorf("DecodeTask(%s) error = %v, want ErrInvalidInput", tt.payload, err)
			}
		})
	}
}
