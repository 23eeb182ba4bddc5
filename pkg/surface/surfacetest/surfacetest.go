// Package surfacetest provides a recording Surface for tests.
package surfacetest

import (
	"tableflip.dev/blocks/pkg/surface"
)

// Call records one focus-related operation on a fake handle.
type Call struct {
	Element string
	Op      string
}

// Surface is an in-memory surface. Todo surfaces carry a nested text
// element; all others edit their own text.
type Surface struct {
	Value  string
	Todo   bool
	Box    surface.Rect
	Calls  []Call
	text   *element
	caret  int
	active string
}

// New builds a fake surface holding text. When todo is set the text lives in
// the nested element.
func New(text string, todo bool) *Surface {
	s := &Surface{Value: text, Todo: todo}
	s.text = &element{owner: s}
	return s
}

func (s *Surface) record(el, op string) {
	s.Calls = append(s.Calls, Call{Element: el, Op: op})
}

func (s *Surface) Text() string {
	return s.Value
}

func (s *Surface) TakeFocus() {
	s.active = "surface"
	s.record("surface", "focus")
}

func (s *Surface) PlaceCaretAtStart() {
	s.caret = 0
	s.record("surface", "caret-start")
}

func (s *Surface) PlaceCaretAtEnd() {
	s.caret = len(s.Value)
	s.record("surface", "caret-end")
}

func (s *Surface) TextElement() (surface.Handle, bool) {
	if !s.Todo {
		return nil, false
	}
	return s.text, true
}

func (s *Surface) Bounds() surface.Rect {
	return s.Box
}

// Active reports which element last took focus: "surface", "text" or "".
func (s *Surface) Active() string {
	return s.active
}

// Caret reports the caret offset after the last placement.
func (s *Surface) Caret() int {
	return s.caret
}

// Reset clears recorded calls and focus state.
func (s *Surface) Reset() {
	s.Calls = nil
	s.active = ""
}

type element struct {
	owner *Surface
}

func (e *element) Text() string {
	return e.owner.Value
}

func (e *element) TakeFocus() {
	e.owner.active = "text"
	e.owner.record("text", "focus")
}

func (e *element) PlaceCaretAtStart() {
	e.owner.caret = 0
	e.owner.record("text", "caret-start")
}

func (e *element) PlaceCaretAtEnd() {
	e.owner.caret = len(e.owner.Value)
	e.owner.record("text", "caret-end")
}
