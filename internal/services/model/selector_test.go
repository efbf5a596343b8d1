package model

import (
	"testing"

	apperrors "github.com/bangohan/kondate/internal/errors"
)

func TestSelect_PriorityOrderWins(t *testing.T) {
	// gemini-pro-latest appears first in the catalog but gemini-2.5-flash is
	// higher on the priority list, so it must win.
	catalog := []Descriptor{
		{ID: "gemini-pro-latest", Methods: []string{"generateContent"}},
		{ID: "gemini-2.5-flash", Methods: []string{"generateContent"}},
	}

	got, err := Select(catalog, DefaultPriorities)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if got != "gemini-2.5-flash" {
		t.Errorf("Select() = %q, want %q", got, "gemini-2.5-flash")
	}
}

func TestSelect_FallbackToFirstCapable(t *testing.T) {
	catalog := []Descriptor{
		{ID: "legacy-model", Methods: []string{"generateContent"}},
	}

	got, err := Select(catalog, DefaultPriorities)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if got != "legacy-model" {
		t.Errorf("Select() = %q, want %q", got, "legacy-model")
	}
}

func TestSelect_FallbackUsesCatalogOrder(t *testing.T) {
	catalog := []Descriptor{
		{ID: "zulu-model", Methods: []string{"generateContent"}},
		{ID: "alpha-model", Methods: []string{"generateContent"}},
	}

	got, err := Select(catalog, DefaultPriorities)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	// Catalog order, not alphabetical.
	if got != "zulu-model" {
		t.Errorf("Select() = %q, want %q", got, "zulu-model")
	}
}

func TestSelect_SkipsIncapablePriorityMatch(t *testing.T) {
	// gemini-2.0-flash is on the priority list but only supports embedding,
	// so the lower-priority capable model must win.
	catalog := []Descriptor{
		{ID: "gemini-2.0-flash", Methods: []string{"embedText"}},
		{ID: "gemini-pro-latest", Methods: []string{"generateContent"}},
	}

	got, err := Select(catalog, DefaultPriorities)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if got != "gemini-pro-latest" {
		t.Errorf("Select() = %q, want %q", got, "gemini-pro-latest")
	}
}

func TestSelect_NoCapableModel(t *testing.T) {
	tests := []struct {
		name    string
		catalog []Descriptor
	}{
		{
			name:    "empty catalog",
			catalog: nil,
		},
		{
			name: "embedding only",
			catalog: []Descriptor{
				{ID: "embedding-only", Methods: []string{"embedText"}},
			},
		},
		{
			name: "no methods",
			catalog: []Descriptor{
				{ID: "mystery-model"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Select(tt.catalog, DefaultPriorities)
			if err == nil {
				t.Fatal("Select() expected error, got nil")
			}
			appErr, ok := err.(*apperrors.AppError)
			if !ok {
				t.Fatalf("Select() error type = %T, want *AppError", err)
			}
			if appErr.Type != apperrors.ErrorTypeNoCapableModel {
				t.Errorf("error type = %v, want %v", appErr.Type, apperrors.ErrorTypeNoCapableModel)
			}
		})
	}
}

func TestSelect_ResultAlwaysCapable(t *testing.T) {
	catalog := []Descriptor{
		{ID: "embedding-only", Methods: []string{"embedText"}},
		{ID: "gemini-2.0-flash", Methods: []string{"generateContent"}},
		{ID: "chat-only", Methods: []string{"countTokens"}},
	}

	got, err := Select(catalog, DefaultPriorities)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	for _, d := range catalog {
		if d.ID == got && !d.Supports(MethodGenerateContent) {
			t.Errorf("Select() returned incapable model %q", got)
		}
	}
	if got != "gemini-2.0-flash" {
		t.Errorf("Select() = %q, want %q", got, "gemini-2.0-flash")
	}
}

func TestSelect_Deterministic(t *testing.T) {
	catalog := []Descriptor{
		{ID: "gemini-pro-latest", Methods: []string{"generateContent"}},
		{ID: "gemini-2.5-flash", Methods: []string{"generateContent", "countTokens"}},
		{ID: "embedding-only", Methods: []string{"embedText"}},
	}

	first, err := Select(catalog, DefaultPriorities)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Select(catalog, DefaultPriorities)
		if err != nil {
			t.Fatalf("Select() error = %v", err)
		}
		if again != first {
			t.Fatalf("Select() not deterministic: %q then %q", first, again)
		}
	}
}

func TestDescriptor_Supports(t *testing.T) {
	d := Descriptor{ID: "m", Methods: []string{"generateContent", "countTokens"}}
	if !d.Supports("generateContent") {
		t.Error("expected generateContent to be supported")
	}
	if d.Supports("embedText") {
		t.Error("expected embedText to be unsupported")
	}
}
