package battleformat

import (
	"encoding/json"
	"testing"
)

func TestPositionTextRoundTrips(t *testing.T) {
	cases := []Position{
		{Side: SideOne, Slot: 0},
		{Side: SideTwo, Slot: 2},
	}
	for _, p := range cases {
		text, err := p.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", p, err)
		}
		var got Position
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if got != p {
			t.Fatalf("round trip mismatch: got %v, want %v", got, p)
		}
	}
}

func TestPositionKeyedMapMarshalsAndUnmarshals(t *testing.T) {
	m := map[Position]int{
		{Side: SideOne, Slot: 0}: 10,
		{Side: SideTwo, Slot: 1}: 20,
	}
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got map[Position]int
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(got) != len(m) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(m))
	}
	for k, v := range m {
		if got[k] != v {
			t.Fatalf("got[%v] = %d, want %d", k, got[k], v)
		}
	}
}
