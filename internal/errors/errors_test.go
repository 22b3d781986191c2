package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "meal not found")
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(ErrCodeUpstream, "failed to search meals", cause)

	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
	if CodeOf(err) != ErrCodeUpstream {
		t.Errorf("expected code %s, got %s", ErrCodeUpstream, CodeOf(err))
	}
}

func TestWrapWithContext(t *testing.T) {
	err := WrapWithContext(ErrCodeUpstream, "lookup failed", errors.New("timeout"), map[string]any{"id": "52772"})
	if err.Context["id"] != "52772" {
		t.Errorf("expected id in context")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeUpstream, "failed", errors.New("root cause")),
			expected: "[UPSTREAM_FAILURE] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", New(ErrCodeNotFound, "gone"))

	if !IsNotFound(wrapped) {
		t.Errorf("expected wrapped error to be not found")
	}
	if IsUpstream(wrapped) {
		t.Errorf("did not expect upstream code")
	}
	if CodeOf(errors.New("plain")) != ErrCodeInternal {
		t.Errorf("expected plain errors to map to %s", ErrCodeInternal)
	}
	if IsNotFound(nil) {
		t.Errorf("nil is not a not-found error")
	}
}
