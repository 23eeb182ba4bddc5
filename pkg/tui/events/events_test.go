package events

import (
	"strings"
	"testing"

	"tableflip.dev/blocks/pkg/block"
)

func TestBlockChangeCmdCarriesRef(t *testing.T) {
	b := block.New("b-1", block.Todo)
	b.Content = "write tests"
	msg := BlockChangeCmd("editor", ChangeRetype, RefFromBlock(b))()

	change, ok := msg.(BlockChangeMsg)
	if !ok {
		t.Fatalf("unexpected message %T", msg)
	}
	if change.Block.ID != "b-1" || change.Block.Type != block.Todo {
		t.Fatalf("unexpected ref %+v", change.Block)
	}
	if got := change.Describe(); !strings.Contains(got, `action:"retype"`) || !strings.Contains(got, `type:"todo"`) {
		t.Fatalf("unexpected description %q", got)
	}
}

func TestLabelFallsBackToIDAndTruncates(t *testing.T) {
	if got := (BlockRef{ID: "b-9"}).Label(); got != "b-9" {
		t.Fatalf("expected id label, got %q", got)
	}
	long := BlockRef{ID: "b-1", Content: strings.Repeat("x", 40)}
	if got := long.Label(); len([]rune(got)) != 25 || !strings.HasSuffix(got, "…") {
		t.Fatalf("expected truncated label, got %q", got)
	}
}

func TestMenuChangeDescribe(t *testing.T) {
	closed := MenuChangeMsg{}
	if closed.Describe() != `state:"closed"` {
		t.Fatalf("unexpected closed description %q", closed.Describe())
	}
	open := MenuChangeCmd("editor", true, "b-1", "/h", 3)().(MenuChangeMsg)
	if !strings.Contains(open.Describe(), `matches:3`) {
		t.Fatalf("unexpected open description %q", open.Describe())
	}
}
