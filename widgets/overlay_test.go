package widgets

import (
	"strings"
	"testing"
)

func TestOverlayCentersCardOverBase(t *testing.T) {
	base := strings.TrimSuffix(strings.Repeat("..........\n", 7), "\n")
	out := Overlay(base, "XX", 10, 7)
	lines := strings.Split(out, "\n")
	if len(lines) != 7 {
		t.Fatalf("line count = %d, want 7", len(lines))
	}
	if !strings.Contains(out, "XX") {
		t.Fatalf("card content missing from overlay:\n%s", out)
	}
	if !strings.HasPrefix(lines[0], "..") {
		t.Fatalf("top base row overwritten: %q", lines[0])
	}
}

func TestOverlayZeroSizeIsEmpty(t *testing.T) {
	if got := Overlay("base", "card", 0, 0); got != "" {
		t.Fatalf("Overlay(0,0) = %q, want empty", got)
	}
}

func TestCardIncludesTitle(t *testing.T) {
	out := Card("Delete Model", "are you sure?")
	if !strings.Contains(out, "Delete Model") || !strings.Contains(out, "are you sure?") {
		t.Fatalf("card missing title or body:\n%s", out)
	}
}
