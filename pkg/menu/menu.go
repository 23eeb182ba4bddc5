// Package menu implements the slash-command menu: detecting a command typed
// at the start of a block, filtering the block catalog, and tracking the
// highlighted entry.
package menu

import (
	"strings"

	"tableflip.dev/blocks/pkg/block"
	"tableflip.dev/blocks/pkg/surface"
)

// Trigger is the character that opens the menu when it starts a block.
const Trigger = "/"

// Position is where the menu is anchored, in page coordinates (screen row
// plus the vertical scroll offset).
type Position struct {
	Top  int
	Left int
}

// State is the menu state machine: closed, or open on an anchor block.
type State struct {
	Open     bool
	Anchor   string
	Filter   string
	Position Position
}

// IsCommand reports whether text is a slash command. Only a leading slash
// counts.
func IsCommand(text string) bool {
	return strings.HasPrefix(text, Trigger)
}

// Filter returns the entries matching filter, keeping catalog order. A bare
// "/" matches everything. Otherwise an entry matches when its command token
// contains filter, or its lowercased label contains filter without the
// leading slash.
func Filter(entries []block.Descriptor, filter string) []block.Descriptor {
	out := make([]block.Descriptor, 0, len(entries))
	needle := strings.TrimPrefix(filter, Trigger)
	for _, e := range entries {
		if filter == Trigger ||
			strings.Contains(e.Command, filter) ||
			strings.Contains(strings.ToLower(e.Label), needle) {
			out = append(out, e)
		}
	}
	return out
}

// Menu is the slash-command state machine.
type Menu struct {
	catalog   []block.Descriptor
	state     State
	entries   []block.Descriptor
	highlight int
}

// New returns a closed menu over catalog. A nil catalog uses block.Catalog.
func New(catalog []block.Descriptor) *Menu {
	if catalog == nil {
		catalog = block.Catalog()
	}
	return &Menu{catalog: catalog, highlight: -1}
}

// Evaluate re-runs trigger detection after the anchor block's text changed.
// box is the block's on-screen bounds and scrollY the vertical scroll
// offset; the menu opens just below the block.
func (m *Menu) Evaluate(anchor, text string, box surface.Rect, scrollY int) {
	if !IsCommand(text) {
		m.Close()
		return
	}
	filter := strings.ToLower(text)
	if !m.state.Open || m.state.Filter != filter || m.state.Anchor != anchor {
		m.highlight = -1
	}
	m.state = State{
		Open:     true,
		Anchor:   anchor,
		Filter:   filter,
		Position: Position{Top: box.Bottom + scrollY, Left: box.Left},
	}
	m.entries = Filter(m.catalog, filter)
}

// Close returns the menu to the closed state.
func (m *Menu) Close() {
	m.state = State{}
	m.entries = nil
	m.highlight = -1
}

// State returns the current state.
func (m *Menu) State() State {
	return m.state
}

// IsOpen reports whether the menu is open.
func (m *Menu) IsOpen() bool {
	return m.state.Open
}

// Entries returns the filtered catalog. An open menu with no entries shows a
// "no results" placeholder instead of closing.
func (m *Menu) Entries() []block.Descriptor {
	return append([]block.Descriptor(nil), m.entries...)
}

// Highlight moves the highlighted entry by delta, wrapping around. It
// reports false when there is nothing to highlight.
func (m *Menu) Highlight(delta int) bool {
	total := len(m.entries)
	if !m.state.Open || total == 0 {
		return false
	}
	if m.highlight == -1 {
		if delta > 0 {
			m.highlight = 0
		} else {
			m.highlight = total - 1
		}
		return true
	}
	m.highlight = (m.highlight + delta) % total
	if m.highlight < 0 {
		m.highlight += total
	}
	return true
}

// HighlightIndex returns the highlighted position in Entries, or -1.
func (m *Menu) HighlightIndex() int {
	return m.highlight
}

// Highlighted returns the highlighted entry.
func (m *Menu) Highlighted() (block.Descriptor, bool) {
	if m.highlight < 0 || m.highlight >= len(m.entries) {
		return block.Descriptor{}, false
	}
	return m.entries[m.highlight], true
}
