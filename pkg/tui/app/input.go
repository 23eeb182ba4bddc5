package app

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/blocks/pkg/block"
	"tableflip.dev/blocks/pkg/editor"
	"tableflip.dev/blocks/pkg/surface"
	"tableflip.dev/blocks/pkg/tui/components/blockview"
)

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case "ctrl+c":
		return tea.Quit
	case "ctrl+g":
		m.toggleDebug()
		return nil
	}

	if m.editor.MenuOpen() {
		switch key {
		case "tab":
			m.editor.HighlightMenu(1)
			return nil
		case "shift+tab":
			m.editor.HighlightMenu(-1)
			return nil
		case "esc":
			m.editor.CloseMenu()
			return nil
		case "enter":
			if d, ok := m.editor.HighlightedEntry(); ok {
				m.editor.Select(d.Type)
				return nil
			}
		}
	}

	id := m.editor.Focused()
	if key == "ctrl+x" {
		m.editor.ToggleChecked(id)
		return nil
	}
	if m.editor.HandleKey(id, keyFor(key)) {
		return nil
	}

	s, ok := m.surfaces[id]
	if !ok {
		return nil
	}
	changed, cmd := s.Update(msg)
	if changed {
		m.editor.Input(id, s.Value(), m.scroll)
	}
	return cmd
}

func keyFor(key string) editor.Key {
	switch key {
	case "enter":
		return editor.KeyEnter
	case "shift+enter":
		return editor.KeyShiftEnter
	case "backspace":
		return editor.KeyBackspace
	case "up":
		return editor.KeyUp
	case "down":
		return editor.KeyDown
	default:
		return editor.KeyOther
	}
}

func (m *Model) handleClick(mouse tea.Mouse) {
	if mouse.Button != tea.MouseLeft {
		return
	}

	inside := m.menuRect.Contains(mouse.X, mouse.Y)
	m.editor.PointerDown(inside)
	if inside {
		if d, ok := m.menu.EntryAt(mouse.Y - m.menuRect.Y); ok {
			m.editor.Select(d.Type)
		}
		return
	}

	if mouse.Y < 0 || mouse.Y >= m.bodyRows {
		return
	}
	b, ok := blockAt(m.editor.Snapshot().Blocks, m.scroll+mouse.Y)
	if !ok {
		return
	}
	switch {
	case blockview.OnGutter(mouse.X):
		m.editor.InsertAfter(b.ID)
	case blockview.OnCheckbox(b, mouse.X):
		m.editor.ToggleChecked(b.ID)
	default:
		m.focusClicked(b)
	}
}

// focusClicked gives the clicked row's widget focus directly and reports it
// to the editor, the way a pointer focuses an element before any key runs.
func (m *Model) focusClicked(b block.Block) {
	s, ok := m.surfaces[b.ID]
	if !ok {
		return
	}
	h, ok := surface.Resolve(s, block.FocusTarget(b.Type))
	if !ok {
		return
	}
	surface.Focus(h, surface.CaretEnd)
	m.editor.FocusGained(b.ID)
}
