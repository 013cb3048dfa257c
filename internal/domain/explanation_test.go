package domain

import (
	"errors"
	"testing"
)

func TestExplanationRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     ExplanationRequest
		wantErr bool
	}{
		{name: "single word", req: ExplanationRequest{Term: "serendipity"}, wantErr: false},
		{name: "two words", req: ExplanationRequest{Term: "machine learning"}, wantErr: false},
		{name: "two chars minimum", req: ExplanationRequest{Term: "go"}, wantErr: false},
		{name: "trimmed before checks", req: ExplanationRequest{Term: "  ok  "}, wantErr: false},
		{name: "empty", req: ExplanationRequest{Term: ""}, wantErr: true},
		{name: "single char", req: ExplanationRequest{Term: "a"}, wantErr: true},
		{name: "single multibyte char", req: ExplanationRequest{Term: "é"}, wantErr: true},
		{name: "two multibyte chars", req: ExplanationRequest{Term: "éé"}, wantErr: false},
		{name: "only whitespace", req: ExplanationRequest{Term: "   "}, wantErr: true},
		{name: "three words", req: ExplanationRequest{Term: "one two three"}, wantErr: true},
		{name: "hyphenated counts as one word", req: ExplanationRequest{Term: "well-known"}, wantErr: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrValidation) {
				t.Errorf("Validate() error = %v, want wrapped ErrValidation", err)
			}
		})
	}
}

func TestExplanationStyleIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		style ExplanationStyle
		want  bool
	}{
		{StylePlain, true},
		{StyleTechnical, true},
		{StyleSimple, true},
		{ExplanationStyle("academic"), false},
		{ExplanationStyle(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			t.Parallel()
			if got := tt.style.IsValid(); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.style, got, tt.want)
			}
		})
	}
}

func TestSettingsHasKey(t *testing.T) {
	t.Parallel()

	if (Settings{APIKey: "sk-test"}).HasKey() == false {
		t.Error("HasKey() = false for configured key")
	}
	if (Settings{APIKey: "   "}).HasKey() {
		t.Error("HasKey() = true for blank key")
	}
	if (Settings{}).HasKey() {
		t.Error("HasKey() = true for zero value")
	}
}
