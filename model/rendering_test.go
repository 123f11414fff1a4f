package model

import (
	"bytes"
	"testing"
)

func TestTerminalRendererDisplay(t *testing.T) {
	e, err := NewEngine(3, 2, WithSeed(PatternSeed(3, Coordinate{0, 0}, Coordinate{2, 1})))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	var buf bytes.Buffer
	if err = NewTerminalRenderer(&buf).Display(e); err != nil {
		t.Fatalf("Display: %v", err)
	}
	want := "██    \n    ██\n"
	if got := buf.String(); got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
}

func TestTerminalRendererClear(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTerminalRenderer(&buf).Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if buf.String() != clearSequence {
		t.Errorf("Clear() wrote %q", buf.String())
	}
}
