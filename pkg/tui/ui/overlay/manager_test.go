package overlay

import (
	"strings"
	"testing"
)

func TestComposeAnchoredKeepsBackground(t *testing.T) {
	bg := "aaaaaa\nbbbbbb\ncccccc"
	out := Compose(bg, 6, 3, "XY\nZW", At(2, 1))

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "aaaaaa" {
		t.Fatalf("first line should be untouched, got %q", lines[0])
	}
	if lines[1] != "bbXYbb" || lines[2] != "ccZWcc" {
		t.Fatalf("unexpected overlay rows %q %q", lines[1], lines[2])
	}
}

func TestBoundsClampsAnchoredOverlayInside(t *testing.T) {
	rect := Bounds(10, 4, "abcd\nefgh", At(8, 3))
	if rect.X != 6 || rect.Y != 2 {
		t.Fatalf("expected clamped origin (6,2), got (%d,%d)", rect.X, rect.Y)
	}
	if !rect.Contains(6, 2) || !rect.Contains(9, 3) || rect.Contains(5, 2) {
		t.Fatalf("unexpected containment for %+v", rect)
	}
}

func TestBoundsCentersByDefault(t *testing.T) {
	rect := Bounds(10, 5, "ab", Placement{})
	if rect.X != 4 || rect.Y != 2 {
		t.Fatalf("expected centered origin (4,2), got (%d,%d)", rect.X, rect.Y)
	}
	if !Bounds(10, 5, "", Placement{}).Empty() {
		t.Fatalf("empty foreground should yield empty bounds")
	}
}
