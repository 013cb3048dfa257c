package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestUpstreamStatusError(t *testing.T) {
	t.Parallel()

	base := &UpstreamStatusError{Source: "dictionary", Status: 503}
	wrapped := fmt.Errorf("lookup failed: %w", base)

	var se *UpstreamStatusError
	if !errors.As(wrapped, &se) {
		t.Fatal("errors.As failed to unwrap UpstreamStatusError")
	}
	if se.Status != 503 || se.Source != "dictionary" {
		t.Errorf("unwrapped = %+v, want Source=dictionary Status=503", se)
	}
	if se.Error() != "dictionary: unexpected status 503" {
		t.Errorf("Error() = %q", se.Error())
	}
}

func TestValidationErrorUnwrap(t *testing.T) {
	t.Parallel()

	err := NewValidationError("word", "must be at least 2 characters")
	if !errors.Is(err, ErrValidation) {
		t.Error("NewValidationError does not unwrap to ErrValidation")
	}

	wrapped := fmt.Errorf("explain: %w", err)
	var ve *ValidationError
	if !errors.As(wrapped, &ve) {
		t.Fatal("errors.As failed to unwrap ValidationError")
	}
	if len(ve.Errors) != 1 || ve.Errors[0].Field != "word" {
		t.Errorf("unexpected field errors: %+v", ve.Errors)
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{ErrNotFound, ErrAlreadyExists, ErrValidation, ErrTimedOut, ErrNetwork, ErrMissingCredential, ErrMalformedUpstream}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v matches %v", a, b)
			}
		}
	}
}
