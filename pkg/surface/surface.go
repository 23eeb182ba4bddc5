// Package surface describes the editable widgets the presentation layer
// renders for each block, and the registry the core uses to reach them.
package surface

import "tableflip.dev/blocks/pkg/block"

// Rect is an on-screen bounding box in rows and columns, relative to the
// visible area.
type Rect struct {
	Top    int
	Left   int
	Bottom int
}

// Caret says where the caret goes when a handle takes focus.
type Caret int

const (
	// CaretKeep leaves the caret wherever the widget had it.
	CaretKeep Caret = iota
	// CaretStart collapses the caret before the first character.
	CaretStart
	// CaretEnd collapses the caret after the last character.
	CaretEnd
)

func (c Caret) String() string {
	switch c {
	case CaretStart:
		return "start"
	case CaretEnd:
		return "end"
	default:
		return "keep"
	}
}

// Handle is one focusable element of a surface.
type Handle interface {
	Text() string
	TakeFocus()
	PlaceCaretAtStart()
	PlaceCaretAtEnd()
}

// Surface is the editing widget of a single block. The surface itself is the
// block's outer element; to-do surfaces also expose the text element nested
// next to their checkbox.
type Surface interface {
	Handle
	TextElement() (Handle, bool)
	Bounds() Rect
}

// Resolve picks the handle for target on s.
func Resolve(s Surface, target block.Target) (Handle, bool) {
	if s == nil {
		return nil, false
	}
	switch target {
	case block.TargetText:
		return s.TextElement()
	default:
		return s, true
	}
}

// Focus moves focus to h and positions the caret.
func Focus(h Handle, caret Caret) {
	h.TakeFocus()
	switch caret {
	case CaretStart:
		h.PlaceCaretAtStart()
	case CaretEnd:
		h.PlaceCaretAtEnd()
	}
}

// ReadText returns the live text for a block of type t, or false when the
// surface or its target element is missing.
func ReadText(s Surface, t block.Type) (string, bool) {
	h, ok := Resolve(s, block.FocusTarget(t))
	if !ok {
		return "", false
	}
	return h.Text(), true
}
