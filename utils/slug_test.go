// File: utils/slug_test.go
package utils

import (
	"strings"
	"testing"
)

func TestCreateSlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Island Pulse Salon", "island-pulse-salon"},
		{"  Akub's  Ventures!  ", "akubs-ventures"},
		{"already-a-slug", "already-a-slug"},
		{"MiXeD CaSe 42", "mixed-case-42"},
		{"---", ""},
		{"", ""},
	}
	for _, tc := range tests {
		if got := CreateSlug(tc.name); got != tc.want {
			t.Errorf("CreateSlug(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestUnslug(t *testing.T) {
	if got := Unslug("island-pulse-salon", false); got != "island pulse salon" {
		t.Errorf("Unslug lowercase = %q", got)
	}
	if got := Unslug("island-pulse-salon", true); got != "Island Pulse Salon" {
		t.Errorf("Unslug capitalized = %q", got)
	}
}

func TestGenerateShortCode(t *testing.T) {
	code, err := GenerateShortCode("Akub Ventures")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	parts := strings.Split(code, "-")
	if len(parts) != 2 {
		t.Fatalf("expected PREFIX-SUFFIX shape, got %q", code)
	}
	if parts[0] != "AKU" {
		t.Errorf("prefix = %q, want AKU", parts[0])
	}
	if len(parts[1]) != 4 {
		t.Errorf("suffix = %q, want 4 characters", parts[1])
	}
	for _, r := range parts[1] {
		if !strings.ContainsRune(shortCodeAlphabet, r) {
			t.Errorf("suffix character %q outside alphabet", r)
		}
	}
}

func TestGenerateShortCode_ShortName(t *testing.T) {
	code, err := GenerateShortCode("Jo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(code, "JO-") {
		t.Errorf("code = %q, want JO- prefix", code)
	}
}
