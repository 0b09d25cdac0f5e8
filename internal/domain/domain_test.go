package domain

import (
	"errors"
	"testing"
)

func TestIsValidStatus(t *testing.T) {
	tests := []struct {
		status string
		valid  bool
	}{
		{"draft", true},
		{"published", true},
		{"archived", true},
		{"invalid", false},
		{"", false},
		{"PUBLISHED", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := IsValidStatus(tt.status); got != tt.valid {
				t.Errorf("IsValidStatus(%q) = %v, want %v", tt.status, got, tt.valid)
			}
		})
	}
}

func TestValidStatuses(t *testing.T) {
	expectedStatuses := []string{"draft", "published", "archived"}

	if len(ValidStatuses) != len(expectedStatuses) {
		t.Errorf("ValidStatuses has %d elements, expected %d", len(ValidStatuses), len(expectedStatuses))
	}

	for _, status := range expectedStatuses {
		found := false
		for _, s := range ValidStatuses {
			if s == status {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("ValidStatuses missing %q", status)
		}
	}
}

func TestValidationError(t *testing.T) {
	t.Run("message lists fields in stable order", func(t *testing.T) {
		err := &ValidationError{Fields: map[string]string{
			"slug":  "slug_required",
			"email": "invalid_email_format",
		}}

		want := "validation failed: email, slug"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("NewValidationError builds a single-field error", func(t *testing.T) {
		err := NewValidationError("author_id", "author_not_found")

		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected *ValidationError, got %T", err)
		}
		if validationErr.Fields["author_id"] != "author_not_found" {
			t.Errorf("Fields[author_id] = %q, want author_not_found", validationErr.Fields["author_id"])
		}
	})

	t.Run("ErrNotFound matches through wrapping", func(t *testing.T) {
		wrapped := errors.Join(errors.New("context"), ErrNotFound)
		if !errors.Is(wrapped, ErrNotFound) {
			t.Error("wrapped ErrNotFound should match errors.Is")
		}
	})
}
