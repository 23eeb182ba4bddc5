package editor

import (
	"tableflip.dev/blocks/pkg/block"
	"tableflip.dev/blocks/pkg/focus"
	"tableflip.dev/blocks/pkg/surface"
)

// Key is a key press the editing protocol reacts to.
type Key int

const (
	KeyOther Key = iota
	KeyEnter
	KeyShiftEnter
	KeyBackspace
	KeyUp
	KeyDown
)

func (k Key) String() string {
	switch k {
	case KeyEnter:
		return "enter"
	case KeyShiftEnter:
		return "shift+enter"
	case KeyBackspace:
		return "backspace"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	default:
		return "other"
	}
}

// HandleKey runs the key protocol for the block id. It returns true when the
// surface must not apply its default behaviour for the key.
func (e *Editor) HandleKey(id string, k Key) bool {
	switch k {
	case KeyEnter:
		e.InsertAfter(id)
		e.menu.Close()
		return true
	case KeyBackspace:
		if trimmed(e.liveText(id)) != "" {
			return false
		}
		e.Delete(id)
		e.menu.Close()
		return true
	case KeyUp, KeyDown:
		dir := focus.Up
		if k == KeyDown {
			dir = focus.Down
		}
		if target, ok := e.focus.Move(dir, id); ok {
			e.focus.Focus(target, surface.CaretKeep)
		}
		return true
	default:
		return false
	}
}

// Snapshot is the read-only view of the editor handed to the renderer.
type Snapshot struct {
	Blocks  []block.Block
	Focused string
	Menu    MenuView
}

// MenuView is the projection of the slash menu. Entries may be empty while
// the menu is open.
type MenuView struct {
	Open      bool
	Anchor    string
	Filter    string
	Top       int
	Left      int
	Entries   []block.Descriptor
	Highlight int
}

// Snapshot projects the current editor state.
func (e *Editor) Snapshot() Snapshot {
	st := e.menu.State()
	mv := MenuView{Highlight: -1}
	if st.Open {
		mv = MenuView{
			Open:      true,
			Anchor:    st.Anchor,
			Filter:    st.Filter,
			Top:       st.Position.Top,
			Left:      st.Position.Left,
			Entries:   e.menu.Entries(),
			Highlight: e.menu.HighlightIndex(),
		}
	}
	return Snapshot{
		Blocks:  e.doc.Blocks(),
		Focused: e.focus.Focused(),
		Menu:    mv,
	}
}
