package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/blocks/pkg/block"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// ChangeType enumerates block lifecycle actions.
type ChangeType string

const (
	// ChangeCreate indicates a new block was inserted.
	ChangeCreate ChangeType = "create"
	// ChangeUpdate indicates a block's content or checkbox changed.
	ChangeUpdate ChangeType = "update"
	// ChangeRetype indicates a block changed type through the slash menu.
	ChangeRetype ChangeType = "retype"
	// ChangeDelete indicates a block was removed.
	ChangeDelete ChangeType = "delete"
)

// BlockRef describes a block in cross-component events.
type BlockRef struct {
	ID      string
	Type    block.Type
	Content string
	Checked *bool
}

// Label returns a short human-friendly identifier for the block.
func (r BlockRef) Label() string {
	if r.Content == "" {
		return r.ID
	}
	const limit = 24
	runes := []rune(r.Content)
	if len(runes) > limit {
		return string(runes[:limit]) + "…"
	}
	return r.Content
}

// RefFromBlock converts a block into an event reference.
func RefFromBlock(b block.Block) BlockRef {
	b = b.Clone()
	return BlockRef{ID: b.ID, Type: b.Type, Content: b.Content, Checked: b.Checked}
}

// BlockChangeMsg announces lifecycle changes to blocks so other components
// (and the debug log) can follow along.
type BlockChangeMsg struct {
	Component ComponentID
	Action    ChangeType
	Block     BlockRef
}

// Describe renders the change in a human-friendly format for logs.
func (m BlockChangeMsg) Describe() string {
	return fmt.Sprintf(`action:%q block:%q type:%q`, m.Action, m.Block.Label(), m.Block.Type)
}

// BlockChangeCmd wraps BlockChangeMsg in a tea.Cmd.
func BlockChangeCmd(component ComponentID, action ChangeType, ref BlockRef) tea.Cmd {
	return func() tea.Msg {
		return BlockChangeMsg{Component: component, Action: action, Block: ref}
	}
}

// MenuChangeMsg is emitted when the slash menu opens, closes or refilters.
type MenuChangeMsg struct {
	Component ComponentID
	Open      bool
	Anchor    string
	Filter    string
	Matches   int
}

// Describe implements the logging helper.
func (m MenuChangeMsg) Describe() string {
	if !m.Open {
		return `state:"closed"`
	}
	return fmt.Sprintf(`state:"open" anchor:%q filter:%q matches:%d`, m.Anchor, m.Filter, m.Matches)
}

// MenuChangeCmd wraps MenuChangeMsg.
func MenuChangeCmd(component ComponentID, open bool, anchor, filter string, matches int) tea.Cmd {
	return func() tea.Msg {
		return MenuChangeMsg{
			Component: component,
			Open:      open,
			Anchor:    anchor,
			Filter:    filter,
			Matches:   matches,
		}
	}
}

// FocusMsg indicates a block just gained editing focus.
type FocusMsg struct {
	Component ComponentID
	BlockID   string
}

// Describe implements the logging helper.
func (m FocusMsg) Describe() string {
	return fmt.Sprintf(`component:%q block:%q state:"focus"`, m.Component, m.BlockID)
}

// FocusCmd wraps a FocusMsg in a tea.Cmd helper.
func FocusCmd(component ComponentID, blockID string) tea.Cmd {
	return func() tea.Msg {
		return FocusMsg{Component: component, BlockID: blockID}
	}
}

// DebugMsg captures optional diagnostic notes emitted by components.
type DebugMsg struct {
	Component ComponentID
	Context   string
	Detail    string
}

// Describe renders the debug message in a human-readable format.
func (m DebugMsg) Describe() string {
	return fmt.Sprintf(`component:%q context:%q detail:%q`, m.Component, m.Context, m.Detail)
}

// DebugCmd wraps DebugMsg creation in a tea.Cmd helper.
func DebugCmd(component ComponentID, context, detail string) tea.Cmd {
	return func() tea.Msg {
		return DebugMsg{Component: component, Context: context, Detail: detail}
	}
}
