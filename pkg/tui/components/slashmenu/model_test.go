package slashmenu

import (
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"

	"tableflip.dev/blocks/pkg/block"
	"tableflip.dev/blocks/pkg/editor"
	"tableflip.dev/blocks/pkg/tui/theme"
)

func openMenu(entries []block.Descriptor, highlight int) editor.MenuView {
	return editor.MenuView{Open: true, Anchor: "b-1", Filter: "/", Entries: entries, Highlight: highlight}
}

func TestClosedMenuRendersNothing(t *testing.T) {
	m := New(theme.Default().Menu, 4)
	m.Sync(editor.MenuView{}, 80, 20)
	if m.View() != "" {
		t.Fatalf("expected empty view, got %q", m.View())
	}
	if _, ok := m.EntryAt(1); ok {
		t.Fatalf("closed menu should not resolve entries")
	}
}

func TestViewListsEntriesWithinLimit(t *testing.T) {
	m := New(theme.Default().Menu, 4)
	m.Sync(openMenu(block.Catalog(), -1), 80, 20)

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 4+2 {
		t.Fatalf("expected 4 rows plus frame, got %d:\n%s", len(lines), view)
	}
	if plain := stripANSI(view); !strings.Contains(plain, "Text") || !strings.Contains(plain, "Heading 3") {
		t.Fatalf("expected first four entries, got:\n%s", view)
	}
	if strings.Contains(stripANSI(view), "Bulleted List") {
		t.Fatalf("entries past the limit should be hidden:\n%s", view)
	}
}

func TestHighlightScrollsWindow(t *testing.T) {
	m := New(theme.Default().Menu, 3)
	catalog := block.Catalog()
	m.Sync(openMenu(catalog, 5), 80, 20)

	if m.WindowStart() != 3 {
		t.Fatalf("expected window to start at 3, got %d", m.WindowStart())
	}
	if !strings.Contains(stripANSI(m.View()), marker+catalog[5].Icon) {
		t.Fatalf("expected highlight marker on %s:\n%s", catalog[5].Label, m.View())
	}
	d, ok := m.EntryAt(1)
	if !ok || d.Type != catalog[3].Type {
		t.Fatalf("expected first visible row to be %s, got %+v", catalog[3].Label, d)
	}
	if _, ok := m.EntryAt(0); ok {
		t.Fatalf("frame row should not resolve an entry")
	}
}

func TestNoResultsRow(t *testing.T) {
	m := New(theme.Default().Menu, 4)
	m.Sync(openMenu(nil, -1), 80, 20)
	if !strings.Contains(stripANSI(m.View()), EmptyText) {
		t.Fatalf("expected %q, got %q", EmptyText, m.View())
	}
	if _, ok := m.EntryAt(1); ok {
		t.Fatalf("no-results row should not resolve an entry")
	}
}

func TestWidthIsBounded(t *testing.T) {
	m := New(theme.Default().Menu, 4)
	m.Sync(openMenu(block.Catalog(), 0), 24, 20)
	for _, line := range strings.Split(m.View(), "\n") {
		if w := ansi.PrintableRuneWidth(line); w > 24 {
			t.Fatalf("line wider than 24 cells (%d): %q", w, line)
		}
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
