package engineerr

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessageIncludesKindAndCause(t *testing.T) {
	cause := errors.New("file not found")
	err := Wrap(DataError, "loading moves.json", cause)
	want := "DataError: loading moves.json: file not found"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(FormatError, "bad format", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to see through to the wrapped cause")
	}
}

func TestIsMatchesKindThroughWrapping(t *testing.T) {
	inner := New(InvalidChoice, "move index out of range")
	outer := fmt.Errorf("resolving choice: %w", inner)
	if !Is(outer, InvalidChoice) {
		t.Fatal("expected Is to find the InvalidChoice kind through fmt.Errorf wrapping")
	}
	if Is(outer, DataError) {
		t.Fatal("expected Is to reject a mismatched kind")
	}
}
