package blockview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/blocks/pkg/block"
	"tableflip.dev/blocks/pkg/surface"
	"tableflip.dev/blocks/pkg/tui/theme"
)

func textBlock(id, content string) block.Block {
	b := block.New(id, block.Text)
	b.Content = content
	return b
}

func TestTextSurfaceFocusesInput(t *testing.T) {
	s := New(textBlock("b-1", "hello"))
	if _, ok := s.TextElement(); ok {
		t.Fatalf("text surfaces have no nested element")
	}
	surface.Focus(s, surface.CaretEnd)
	if !s.Editing() {
		t.Fatalf("expected input to take focus")
	}

	changed, _ := s.Update(tea.KeyPressMsg{Text: "!", Code: '!'})
	if !changed || s.Value() != "hello!" {
		t.Fatalf("expected typed text at end, got %q (changed=%v)", s.Value(), changed)
	}
}

func TestCaretStartInsertsAtBeginning(t *testing.T) {
	s := New(textBlock("b-1", "world"))
	surface.Focus(s, surface.CaretStart)
	s.Update(tea.KeyPressMsg{Text: ">", Code: '>'})
	if s.Value() != ">world" {
		t.Fatalf("expected caret at start, got %q", s.Value())
	}
}

func TestTodoOuterFocusSelectsRowOnly(t *testing.T) {
	s := New(block.New("b-1", block.Todo))
	s.TakeFocus()
	if s.Editing() || !s.Selected() {
		t.Fatalf("outer focus should select the row without editing")
	}
	if changed, _ := s.Update(tea.KeyPressMsg{Text: "x", Code: 'x'}); changed {
		t.Fatalf("row selection must not accept typing")
	}

	text, ok := s.TextElement()
	if !ok {
		t.Fatalf("expected nested text element")
	}
	surface.Focus(text, surface.CaretEnd)
	if !s.Editing() {
		t.Fatalf("text element focus should enable editing")
	}
	s.Update(tea.KeyPressMsg{Text: "x", Code: 'x'})
	if got, _ := surface.ReadText(s, block.Todo); got != "x" {
		t.Fatalf("expected nested text %q, got %q", "x", got)
	}
}

func TestSyncKeepsFocus(t *testing.T) {
	s := New(textBlock("b-1", "/h1"))
	s.TakeFocus()
	s.Sync(block.Block{ID: "b-1", Type: block.Heading1})
	if s.Value() != "" || s.Type() != block.Heading1 {
		t.Fatalf("unexpected sync result %q %s", s.Value(), s.Type())
	}
	if !s.Editing() {
		t.Fatalf("sync should not blur the input")
	}
	s.Blur()
	if s.Selected() {
		t.Fatalf("blur should clear focus")
	}
}

func TestMarkers(t *testing.T) {
	checked := block.New("b", block.Todo)
	checked.Checked = block.Bool(true)
	cases := []struct {
		name  string
		b     block.Block
		index int
		want  string
	}{
		{name: "text", b: block.New("b", block.Text), want: ""},
		{name: "bullet", b: block.New("b", block.Bulleted), want: "• "},
		{name: "numbered uses page position", b: block.New("b", block.Numbered), index: 4, want: "5. "},
		{name: "todo", b: block.New("b", block.Todo), want: "[ ] "},
		{name: "checked todo", b: checked, want: "[x] "},
		{name: "quote", b: block.New("b", block.Quote), want: "│ "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Marker(tc.b, tc.index); got != tc.want {
				t.Fatalf("Marker = %q, want %q", got, tc.want)
			}
			if got := TextLeft(tc.b, tc.index); got != GutterWidth+len([]rune(tc.want)) {
				t.Fatalf("TextLeft = %d", got)
			}
		})
	}
}

func TestHitTesting(t *testing.T) {
	todo := block.New("b", block.Todo)
	if !OnGutter(0) || !OnGutter(1) || OnGutter(2) {
		t.Fatalf("unexpected gutter bounds")
	}
	if !OnCheckbox(todo, 2) || !OnCheckbox(todo, 4) || OnCheckbox(todo, 5) {
		t.Fatalf("unexpected checkbox bounds")
	}
	if OnCheckbox(block.New("b", block.Text), 3) {
		t.Fatalf("only to-do rows have a checkbox")
	}
}

func TestRenderShowsGutterAndPlaceholder(t *testing.T) {
	b := block.New("b-1", block.Bulleted)
	s := New(b)
	s.SetWidth(60)
	s.SetPlaceholder(PlaceholderFor(0))
	s.TakeFocus()

	row := stripANSI(Render(s, b, 0, true, theme.Default().Block))
	if !strings.HasPrefix(row, "+ • ") {
		t.Fatalf("expected gutter and bullet, got %q", row)
	}
	if !strings.Contains(row, "start writing") {
		t.Fatalf("expected placeholder, got %q", row)
	}

	s.Blur()
	s.SetPlaceholder("")
	row = stripANSI(Render(s, b, 0, false, theme.Default().Block))
	if !strings.HasPrefix(row, "  • ") || strings.Contains(row, "commands") {
		t.Fatalf("unfocused row should hide gutter and hint, got %q", row)
	}
	if PlaceholderFor(3) != Placeholder {
		t.Fatalf("later blocks use the short hint")
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

func TestTakeCmdHandsOverFocusCommandsOnce(t *testing.T) {
	s := New(textBlock("b-1", ""))
	s.TakeFocus()
	_ = s.TakeCmd()
	if s.TakeCmd() != nil {
		t.Fatalf("commands should be handed over once")
	}

	s.queue(nil)
	if s.TakeCmd() != nil {
		t.Fatalf("nil commands should not be queued")
	}
	s.queue(func() tea.Msg { return "tick" })
	if s.TakeCmd() == nil {
		t.Fatalf("expected queued command")
	}
	if s.TakeCmd() != nil {
		t.Fatalf("queue should be empty after TakeCmd")
	}
}
