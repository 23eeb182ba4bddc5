// Package blockview renders blocks as terminal rows and provides the
// editable surfaces the editor core focuses and reads from.
package blockview

import (
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/blocks/pkg/block"
	"tableflip.dev/blocks/pkg/surface"
)

// Surface is the editing widget for one block, backed by a text input.
// To-do surfaces treat the row as their outer element and the input as the
// nested text element; focusing the row selects it without an editing
// caret.
type Surface struct {
	id    string
	kind  block.Type
	input textinput.Model

	rowSelected bool
	bounds      surface.Rect
	cmds        []tea.Cmd
}

var (
	_ surface.Surface = (*Surface)(nil)
	_ surface.Handle  = textElement{}
)

// New builds a surface for b.
func New(b block.Block) *Surface {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0
	ti.VirtualCursor = true
	ti.Styles.Cursor.Color = lipgloss.Color("212")
	ti.Styles.Cursor.Shape = tea.CursorBlock
	ti.Styles.Cursor.Blink = false
	ti.SetValue(b.Content)
	return &Surface{id: b.ID, kind: b.Type, input: ti}
}

// ID returns the block id the surface renders.
func (s *Surface) ID() string { return s.id }

// Type returns the block type the surface was last synced with.
func (s *Surface) Type() block.Type { return s.kind }

// IsTodo reports whether the surface has a nested text element.
func (s *Surface) IsTodo() bool { return s.kind == block.Todo }

// Sync refreshes the surface from the document without moving focus.
func (s *Surface) Sync(b block.Block) {
	s.kind = b.Type
	if s.input.Value() != b.Content {
		s.input.SetValue(b.Content)
	}
}

// Value returns what the input currently holds.
func (s *Surface) Value() string { return s.input.Value() }

// Text returns the outer element's text.
func (s *Surface) Text() string { return s.input.Value() }

// TakeFocus focuses the outer element.
func (s *Surface) TakeFocus() {
	if s.IsTodo() {
		s.input.Blur()
		s.rowSelected = true
		return
	}
	s.rowSelected = false
	s.queue(s.input.Focus())
}

func (s *Surface) queue(cmd tea.Cmd) {
	if cmd != nil {
		s.cmds = append(s.cmds, cmd)
	}
}

// TakeCmd returns the commands produced while taking focus and forgets them.
func (s *Surface) TakeCmd() tea.Cmd {
	if len(s.cmds) == 0 {
		return nil
	}
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}

// PlaceCaretAtStart moves the caret to the beginning of the input.
func (s *Surface) PlaceCaretAtStart() {
	if s.IsTodo() {
		return
	}
	s.input.CursorStart()
}

// PlaceCaretAtEnd moves the caret past the end of the input.
func (s *Surface) PlaceCaretAtEnd() {
	if s.IsTodo() {
		return
	}
	s.input.CursorEnd()
}

// TextElement returns the nested text element of a to-do surface.
func (s *Surface) TextElement() (surface.Handle, bool) {
	if !s.IsTodo() {
		return nil, false
	}
	return textElement{s: s}, true
}

// Bounds reports the on-screen box of the editable text.
func (s *Surface) Bounds() surface.Rect { return s.bounds }

// SetBounds records where the surface was laid out.
func (s *Surface) SetBounds(r surface.Rect) { s.bounds = r }

// Editing reports whether the input accepts keystrokes.
func (s *Surface) Editing() bool { return s.input.Focused() }

// Selected reports whether the surface holds focus in either element.
func (s *Surface) Selected() bool { return s.rowSelected || s.input.Focused() }

// Blur drops focus from both elements.
func (s *Surface) Blur() {
	s.rowSelected = false
	s.input.Blur()
}

// SetWidth bounds the input's visible width.
func (s *Surface) SetWidth(w int) {
	if w < 1 {
		w = 1
	}
	s.input.SetWidth(w)
}

// SetPlaceholder sets the hint shown while the input is empty.
func (s *Surface) SetPlaceholder(p string) { s.input.Placeholder = p }

// Update forwards msg to the input and reports whether the value changed.
func (s *Surface) Update(msg tea.Msg) (bool, tea.Cmd) {
	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s.input.Value() != before, cmd
}

// View renders the input.
func (s *Surface) View() string { return s.input.View() }

type textElement struct {
	s *Surface
}

func (t textElement) Text() string { return t.s.input.Value() }

func (t textElement) TakeFocus() {
	t.s.rowSelected = false
	t.s.queue(t.s.input.Focus())
}

func (t textElement) PlaceCaretAtStart() { t.s.input.CursorStart() }

func (t textElement) PlaceCaretAtEnd() { t.s.input.CursorEnd() }
