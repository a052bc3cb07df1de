package main

import (
	"testing"

	"github.com/mingu600/tapu-simu/internal/battleformat"
	"github.com/mingu600/tapu-simu/internal/turnengine"
)

func TestParseFormatKindAcceptsAllFourCaseInsensitively(t *testing.T) {
	cases := map[string]battleformat.Kind{
		"singles": battleformat.Singles,
		"Doubles": battleformat.Doubles,
		"VGC":     battleformat.VGC,
		"triples": battleformat.Triples,
	}
	for input, want := range cases {
		got, err := parseFormatKind(input)
		if err != nil {
			t.Fatalf("parseFormatKind(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("parseFormatKind(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestParseFormatKindRejectsUnknown(t *testing.T) {
	if _, err := parseFormatKind("chaos"); err == nil {
		t.Fatal("expected error for unknown format kind")
	}
}

func TestParseBranchPolicyDefaultsToDeterministic(t *testing.T) {
	got, err := parseBranchPolicy("")
	if err != nil {
		t.Fatalf("parseBranchPolicy(\"\"): %v", err)
	}
	if got != turnengine.Deterministic {
		t.Fatalf("parseBranchPolicy(\"\") = %v, want Deterministic", got)
	}
}

func TestParseBranchPolicyAcceptsAllFour(t *testing.T) {
	cases := map[string]turnengine.BranchPolicy{
		"deterministic": turnengine.Deterministic,
		"crits":         turnengine.CritsOnly,
		"rolls-only":    turnengine.RollsOnly,
		"full":          turnengine.Full,
	}
	for input, want := range cases {
		got, err := parseBranchPolicy(input)
		if err != nil {
			t.Fatalf("parseBranchPolicy(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("parseBranchPolicy(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestParseBranchPolicyRejectsUnknown(t *testing.T) {
	if _, err := parseBranchPolicy("maximal"); err == nil {
		t.Fatal("expected error for unknown branch policy")
	}
}
