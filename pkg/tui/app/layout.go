package app

import (
	"tableflip.dev/blocks/pkg/block"
	"tableflip.dev/blocks/pkg/editor"
	"tableflip.dev/blocks/pkg/surface"
	"tableflip.dev/blocks/pkg/tui/components/blockview"
	"tableflip.dev/blocks/pkg/tui/ui/overlay"
)

// layout sizes the panes and re-materializes block surfaces from the
// document. It is the render pass deferred focus requests wait for.
func (m *Model) layout() {
	if m.width <= 0 {
		m.width = 1
	}
	if m.height <= 0 {
		m.height = 1
	}

	totalRows := maxInt(1, m.height-1)
	debugRows := 0
	if m.debugEnabled && m.eventViewer != nil {
		debugRows = m.computeDebugHeight(totalRows)
		if debugRows > 0 {
			m.eventViewer.SetSize(m.width, debugRows)
		}
	}
	m.bodyRows = maxInt(1, totalRows-debugRows)

	snap := m.editor.Snapshot()
	m.syncSurfaces(snap)
	m.syncMenu(snap.Menu)
}

func (m *Model) syncSurfaces(snap editor.Snapshot) {
	live := make(map[string]struct{}, len(snap.Blocks))
	focusedIdx := -1
	for i, b := range snap.Blocks {
		live[b.ID] = struct{}{}
		s, ok := m.surfaces[b.ID]
		if !ok || s.IsTodo() != (b.Type == block.Todo) {
			s = blockview.New(b)
			m.surfaces[b.ID] = s
			m.registry.Register(b.ID, s)
		}
		s.Sync(b)
		if b.ID == snap.Focused {
			focusedIdx = i
		}
	}
	for _, id := range m.registry.IDs() {
		if _, ok := live[id]; !ok {
			m.registry.Unregister(id)
			delete(m.surfaces, id)
		}
	}

	m.scrollTo(focusedIdx, len(snap.Blocks))

	for i, b := range snap.Blocks {
		s := m.surfaces[b.ID]
		left := blockview.TextLeft(b, i)
		top := i - m.scroll
		s.SetBounds(surface.Rect{Top: top, Left: left, Bottom: top + 1})
		s.SetWidth(m.width - left - 1)
		if b.ID == snap.Focused {
			s.SetPlaceholder(blockview.PlaceholderFor(i))
			continue
		}
		s.SetPlaceholder("")
		s.Blur()
	}
}

func (m *Model) syncMenu(mv editor.MenuView) {
	m.menu.Sync(mv, m.width, m.bodyRows)
	if !mv.Open {
		m.menuRect = overlay.Rect{}
		return
	}
	m.menuRect = overlay.Bounds(m.width, m.bodyRows, m.menu.View(), overlay.At(mv.Left, mv.Top-m.scroll))
}

// scrollTo keeps the block at idx inside the visible rows.
func (m *Model) scrollTo(idx, total int) {
	if idx >= 0 {
		if idx < m.scroll {
			m.scroll = idx
		}
		if idx >= m.scroll+m.bodyRows {
			m.scroll = idx - m.bodyRows + 1
		}
	}
	m.scroll = clamp(m.scroll, 0, maxInt(0, total-m.bodyRows))
}

func (m *Model) computeDebugHeight(totalRows int) int {
	if totalRows <= 4 {
		return 0
	}
	minHeight := 5
	maxHeight := totalRows - 1
	if maxHeight < minHeight {
		return maxHeight
	}
	return clamp(totalRows/3, minHeight, minInt(12, maxHeight))
}

func clamp(value, lower, upper int) int {
	if upper <= 0 {
		return lower
	}
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
