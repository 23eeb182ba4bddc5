// Package editor wires the document, focus controller and slash menu into
// the editing protocol driven by the presentation layer: content changes,
// key presses, pointer events and menu selections.
package editor

import (
	"strings"

	"github.com/rs/zerolog"

	"tableflip.dev/blocks/pkg/block"
	"tableflip.dev/blocks/pkg/document"
	"tableflip.dev/blocks/pkg/focus"
	"tableflip.dev/blocks/pkg/menu"
	"tableflip.dev/blocks/pkg/surface"
)

// Action names a structural change reported to observers.
type Action string

const (
	ActionInsert Action = "insert"
	ActionDelete Action = "delete"
	ActionUpdate Action = "update"
	ActionRetype Action = "retype"
)

// Change is reported after each mutation of the document.
type Change struct {
	Action Action
	Block  block.Block
}

// Observer receives document changes.
type Observer func(Change)

// Option configures an Editor.
type Option func(*options)

type options struct {
	log      zerolog.Logger
	docOpts  []document.Option
	catalog  []block.Descriptor
	observer Observer
}

// WithLogger sets the logger for editor and focus diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithIDSource sets how block ids are minted.
func WithIDSource(src document.IDSource) Option {
	return func(o *options) { o.docOpts = append(o.docOpts, document.WithIDSource(src)) }
}

// WithCatalog overrides the menu catalog.
func WithCatalog(c []block.Descriptor) Option {
	return func(o *options) { o.catalog = c }
}

// WithObserver registers a callback for document changes.
func WithObserver(fn Observer) Option {
	return func(o *options) { o.observer = fn }
}

// Editor is the editing core for one page.
type Editor struct {
	doc      *document.Document
	focus    *focus.Controller
	menu     *menu.Menu
	surfaces surface.Registry
	log      zerolog.Logger
	observer Observer
}

// New creates an editor for a fresh page. The single initial block starts
// focused.
func New(surfaces surface.Registry, opts ...Option) *Editor {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	doc := document.New(o.docOpts...)
	first, _ := doc.At(0)
	return &Editor{
		doc:      doc,
		focus:    focus.NewController(doc, surfaces, focus.WithLogger(o.log), focus.WithInitial(first.ID)),
		menu:     menu.New(o.catalog),
		surfaces: surfaces,
		log:      o.log,
		observer: o.observer,
	}
}

// Focused returns the id of the focused block.
func (e *Editor) Focused() string {
	return e.focus.Focused()
}

// FocusGained records that the surface of id took focus.
func (e *Editor) FocusGained(id string) {
	if e.doc.Index(id) < 0 {
		return
	}
	e.focus.SetFocused(id)
}

// Focus moves focus to id immediately.
func (e *Editor) Focus(id string, caret surface.Caret) bool {
	return e.focus.Focus(id, caret)
}

// PendingFocus reports how many deferred focus transfers are queued.
func (e *Editor) PendingFocus() int {
	return len(e.focus.Pending())
}

// Drain carries out deferred focus transfers. Call it after the surfaces
// have been re-rendered.
func (e *Editor) Drain() int {
	return e.focus.Drain()
}

// Block returns the block with id.
func (e *Editor) Block(id string) (block.Block, bool) {
	return e.doc.Get(id)
}

// InsertAfter adds an empty text block after id and asks for focus to move
// there once it has been rendered.
func (e *Editor) InsertAfter(id string) (string, bool) {
	nid, ok := e.doc.InsertAfter(id, block.Text)
	if !ok {
		e.log.Debug().Str("anchor", id).Msg("insert: unknown anchor")
		return "", false
	}
	e.log.Debug().Str("anchor", id).Str("block", nid).Msg("insert")
	e.focus.Request(nid, surface.CaretStart)
	e.notify(ActionInsert, nid)
	return nid, true
}

// Delete removes id and hands focus to the end of the block above it. With
// no block above, focus goes to the start of whatever now leads the page.
func (e *Editor) Delete(id string) {
	removed, _ := e.doc.Get(id)
	r := e.doc.Delete(id)
	if !r.Found() {
		e.log.Debug().Str("block", id).Msg("delete: unknown block")
		return
	}
	e.log.Debug().Str("block", id).Int("index", r.Index).Str("prev", r.PrevID).Msg("delete")
	switch {
	case r.PrevID != "":
		e.focus.Request(r.PrevID, surface.CaretEnd)
	case r.ReplacementID != "":
		e.focus.SetFocused(r.ReplacementID)
		e.focus.Request(r.ReplacementID, surface.CaretStart)
	case r.NextID != "":
		e.focus.Request(r.NextID, surface.CaretStart)
	}
	if e.observer != nil {
		e.observer(Change{Action: ActionDelete, Block: removed})
	}
	if r.ReplacementID != "" {
		e.notify(ActionInsert, r.ReplacementID)
	}
}

// Update merges p into the block with id.
func (e *Editor) Update(id string, p document.Patch) bool {
	if !e.doc.Update(id, p) {
		return false
	}
	e.notify(ActionUpdate, id)
	return true
}

// ToggleChecked flips the checkbox of a to-do block.
func (e *Editor) ToggleChecked(id string) bool {
	b, ok := e.doc.Get(id)
	if !ok || b.Type != block.Todo {
		return false
	}
	return e.Update(id, document.Patch{}.SetChecked(!b.IsChecked()))
}

// Input handles a content change reported by the surface of id: the text is
// committed and the slash menu re-evaluated.
func (e *Editor) Input(id, text string, scrollY int) {
	if !e.doc.Update(id, document.Patch{}.SetContent(text)) {
		return
	}
	var box surface.Rect
	if s, ok := e.surfaces.Get(id); ok {
		box = s.Bounds()
	}
	wasOpen := e.menu.IsOpen()
	e.menu.Evaluate(id, text, box, scrollY)
	if open := e.menu.IsOpen(); open != wasOpen {
		e.log.Debug().Str("block", id).Bool("open", open).Msg("menu")
	}
	e.notify(ActionUpdate, id)
}

// PointerDown handles a pointer press; presses outside the menu close it.
func (e *Editor) PointerDown(insideMenu bool) {
	if !insideMenu {
		e.menu.Close()
	}
}

// MenuOpen reports whether the slash menu is showing.
func (e *Editor) MenuOpen() bool {
	return e.menu.IsOpen()
}

// CloseMenu dismisses the slash menu.
func (e *Editor) CloseMenu() {
	e.menu.Close()
}

// HighlightMenu moves the menu highlight by delta.
func (e *Editor) HighlightMenu(delta int) bool {
	return e.menu.Highlight(delta)
}

// HighlightedEntry returns the highlighted menu entry.
func (e *Editor) HighlightedEntry() (block.Descriptor, bool) {
	if !e.menu.IsOpen() {
		return block.Descriptor{}, false
	}
	return e.menu.Highlighted()
}

// Select applies t to the block the open menu is anchored on.
func (e *Editor) Select(t block.Type) bool {
	st := e.menu.State()
	if !st.Open {
		return false
	}
	return e.ApplyType(st.Anchor, t)
}

// ApplyType changes the type of id. The text on the surface is kept unless
// it is the slash command itself, in which case the block is emptied.
// Focus returns to the block after the next render.
func (e *Editor) ApplyType(id string, t block.Type) bool {
	b, ok := e.doc.Get(id)
	if !ok {
		e.log.Debug().Str("block", id).Msg("retype: unknown block")
		return false
	}
	text := b.Content
	if s, ok := e.surfaces.Get(id); ok {
		if live, ok := surface.ReadText(s, b.Type); ok {
			text = live
		}
	}
	if menu.IsCommand(text) {
		text = ""
	}

	p := document.Patch{}.SetType(t).SetContent(text)
	if t == block.Todo {
		p = p.SetChecked(false)
	} else {
		p = p.UnsetChecked()
	}
	e.doc.Update(id, p)
	e.menu.Close()
	e.focus.Request(id, surface.CaretStart)
	e.log.Debug().Str("block", id).Stringer("from", b.Type).Stringer("to", t).Msg("retype")
	e.notify(ActionRetype, id)
	return true
}

// liveText reads the current text of id from its surface, falling back to
// the committed content.
func (e *Editor) liveText(id string) string {
	b, ok := e.doc.Get(id)
	if !ok {
		return ""
	}
	if s, ok := e.surfaces.Get(id); ok {
		if text, ok := surface.ReadText(s, b.Type); ok {
			return text
		}
	}
	return b.Content
}

func (e *Editor) notify(action Action, id string) {
	if e.observer == nil {
		return
	}
	b, ok := e.doc.Get(id)
	if !ok {
		return
	}
	e.observer(Change{Action: action, Block: b})
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
