package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodeUnknownService, "service not bound")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != CodeUnknownService {
		t.Errorf("expected code %s, got %s", CodeUnknownService, err.Code)
	}
	if err.Message != "service not bound" {
		t.Errorf("expected message 'service not bound', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(CodeCatalogUnavailable, "catalog build failed", cause)

	if err.Code != CodeCatalogUnavailable {
		t.Errorf("expected code %s, got %s", CodeCatalogUnavailable, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("connection refused")
	ctx := map[string]any{
		"source": "kubernetes",
		"id":     "oracle-1",
	}

	err := WrapWithContext(CodeSourceUnavailable, "binding fetch failed", cause, ctx)

	if err.Code != CodeSourceUnavailable {
		t.Errorf("expected code %s, got %s", CodeSourceUnavailable, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["source"] != "kubernetes" {
		t.Errorf("expected source to be kubernetes")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *BindingError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CodeUnknownService, "not bound"),
			expected: "[UNKNOWN_SERVICE] not bound",
		},
		{
			name:     "error with cause",
			err:      Wrap(CodeCatalogUnavailable, "failed", errors.New("root cause")),
			expected: "[CATALOG_UNAVAILABLE] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(CodeMalformedCredential, "bad uri", cause)

	if got := CodeOf(err); got != CodeMalformedCredential {
		t.Errorf("expected %s, got %s", CodeMalformedCredential, got)
	}

	// wrapped one more level with fmt-style chain still classifies
	outer := Wrap(CodeCatalogUnavailable, "build failed", err)
	if got := CodeOf(outer); got != CodeCatalogUnavailable {
		t.Errorf("expected outermost code, got %s", got)
	}

	if got := CodeOf(errors.New("plain")); got != "" {
		t.Errorf("expected empty code for plain error, got %s", got)
	}
}

func TestPredicates(t *testing.T) {
	if !IsMalformedCredential(New(CodeMalformedCredential, "x")) {
		t.Error("IsMalformedCredential should match")
	}
	if !IsUnknownService(New(CodeUnknownService, "x")) {
		t.Error("IsUnknownService should match")
	}
	if !IsCatalogUnavailable(New(CodeCatalogUnavailable, "x")) {
		t.Error("IsCatalogUnavailable should match")
	}
	if !IsRegistrationFailed(New(CodeRegistrationFailed, "x")) {
		t.Error("IsRegistrationFailed should match")
	}
	if !IsSourceUnavailable(New(CodeSourceUnavailable, "x")) {
		t.Error("IsSourceUnavailable should match")
	}
	if IsUnknownService(New(CodeSourceUnavailable, "x")) {
		t.Error("predicate should not match a different code")
	}
}
