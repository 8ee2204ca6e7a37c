package common

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAppErrorUnwrap(t *testing.T) {
	err := NewAppError("STORAGE_UNAVAILABLE", "connection refused", ErrUnavailable)
	if !errors.Is(err, ErrUnavailable) {
		t.Error("AppError must unwrap to its cause")
	}
	wrapped := WrapError(err, "upload failed")
	if !errors.Is(wrapped, ErrUnavailable) {
		t.Error("WrapError must preserve the chain")
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{NewAppError("X", "x", ErrUnavailable), true},
		{fmt.Errorf("fetch: %w", context.DeadlineExceeded), true},
		{context.Canceled, true},
		{NewAppError("X", "x", ErrCorruptInput), false},
		{ErrNotFound, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsTransient(tt.err); got != tt.want {
			t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestIsContentError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{NewAppError("X", "x", ErrCorruptInput), true},
		{ErrUnsupportedFormat, true},
		{ErrUnavailable, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsContentError(tt.err); got != tt.want {
			t.Errorf("IsContentError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestToStatusError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"nil", nil, codes.OK},
		{"not found", NewAppError("DOC_NOT_FOUND", "gone", ErrNotFound), codes.NotFound},
		{"invalid input", NewAppError("EMPTY_FILE", "content required", ErrInvalidInput), codes.InvalidArgument},
		{"unavailable", NewAppError("QUEUE_UNAVAILABLE", "broker down", ErrUnavailable), codes.Unavailable},
		{"internal fallback", errors.New("boom"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := status.Code(ToStatusError(tt.err)); got != tt.want {
				t.Errorf("code = %v, want %v", got, tt.want)
			}
		})
	}
}
