package slug

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple", input: "Red Saree", want: "red-saree"},
		{name: "punctuation stripped", input: "Kurti (3-Pc) — Festive!", want: "kurti-3-pc-festive"},
		{name: "whitespace runs", input: "  Cotton   Blouse  ", want: "cotton-blouse"},
		{name: "hyphen runs", input: "a---b", want: "a-b"},
		{name: "leading trailing hyphens", input: "-trim me-", want: "trim-me"},
		{name: "unicode stripped", input: "साड़ी saree", want: "saree"},
		{name: "empty", input: "", want: ""},
		{name: "only symbols", input: "@#$%", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Make(tt.input); got != tt.want {
				t.Fatalf("Make(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMakeIsIdempotent(t *testing.T) {
	inputs := []string{
		"Red Saree",
		"Kurti (3-Pc) — Festive!",
		"  a   b--c  ",
		"already-a-slug",
		"UPPER case 123",
	}
	for _, input := range inputs {
		once := Make(input)
		if twice := Make(once); twice != once {
			t.Fatalf("Make not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestEnsurePrefersExisting(t *testing.T) {
	if got := Ensure("Custom Slug", "Fallback Name"); got != "custom-slug" {
		t.Fatalf("expected normalized existing slug, got %q", got)
	}
	if got := Ensure("  ", "Fallback Name"); got != "fallback-name" {
		t.Fatalf("expected fallback-derived slug, got %q", got)
	}
}
