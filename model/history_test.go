package model

import "testing"

func TestHistoryStagnant(t *testing.T) {
	h := NewHistory(DefaultHistorySize)
	h.Record("a")
	h.Record("b")
	if h.Stagnant("a") {
		t.Errorf("Stagnant with fewer than three entries")
	}
	h.Record("c")

	tests := []struct {
		hash string
		want bool
	}{
		{"c", true}, // still life
		{"b", true}, // period 2
		{"a", true}, // period 3
		{"d", false},
	}
	for _, tt := range tests {
		if got := h.Stagnant(tt.hash); got != tt.want {
			t.Errorf("Stagnant(%q) = %v, want %v", tt.hash, got, tt.want)
		}
	}
}

func TestHistoryWindow(t *testing.T) {
	h := NewHistory(1)
	for _, s := range []string{"a", "b", "c", "d"} {
		h.Record(s)
	}
	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}
	if h.Stagnant("a") {
		t.Errorf("evicted hash still reported")
	}
	h.Clear()
	if h.Len() != 0 || h.Stagnant("d") {
		t.Errorf("Clear did not reset history")
	}
}

func TestHistoryDetectsBlinker(t *testing.T) {
	e, err := NewEngine(5, 5, WithSeed(PatternSeed(5, Blinker(1, 2)...)))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	h := NewHistory(DefaultHistorySize)
	stagnant := false
	for i := 0; i < 4; i++ {
		stagnant = h.Stagnant(e.Hash())
		h.Record(e.Hash())
		e.Advance()
	}
	if !stagnant {
		t.Errorf("blinker not detected as a cycle")
	}
}
