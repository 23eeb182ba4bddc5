// Package focus tracks which block owns editing focus and turns focus
// intents into calls on the block surfaces.
//
// Focus changes that follow a structural edit cannot run inline: the surface
// for a new or retyped block only exists after the presentation layer has
// rendered again. Those changes are queued with Request and carried out by
// Drain, which the presentation layer calls once its render pass is done.
package focus

import (
	"github.com/rs/zerolog"

	"tableflip.dev/blocks/pkg/block"
	"tableflip.dev/blocks/pkg/surface"
)

// Direction is the way Move walks through the sequence.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Reader is the read side of the document the controller needs.
type Reader interface {
	Index(id string) int
	At(i int) (block.Block, bool)
	Len() int
}

// Intent is a queued focus transfer.
type Intent struct {
	BlockID string
	Caret   surface.Caret
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for focus diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// WithInitial sets the block that starts focused.
func WithInitial(id string) Option {
	return func(c *Controller) {
		c.focused = id
	}
}

// Controller owns the focused block id and the deferred intent queue.
type Controller struct {
	doc      Reader
	surfaces surface.Registry
	log      zerolog.Logger

	focused string
	pending []Intent
}

// NewController returns a controller reading doc and driving surfaces.
func NewController(doc Reader, surfaces surface.Registry, opts ...Option) *Controller {
	c := &Controller{
		doc:      doc,
		surfaces: surfaces,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Focused returns the id of the block holding focus.
func (c *Controller) Focused() string {
	return c.focused
}

// SetFocused records a focus-gained report from the surface.
func (c *Controller) SetFocused(id string) {
	c.focused = id
}

// Move resolves the block before or after from. It reports false at either
// end of the sequence or when from is unknown.
func (c *Controller) Move(dir Direction, from string) (string, bool) {
	i := c.doc.Index(from)
	if i < 0 {
		return "", false
	}
	switch dir {
	case Up:
		i--
	default:
		i++
	}
	b, ok := c.doc.At(i)
	if !ok {
		return "", false
	}
	return b.ID, true
}

// Focus moves focus to id right away. It reports false, changing nothing,
// when the block or its surface target does not exist.
func (c *Controller) Focus(id string, caret surface.Caret) bool {
	b, ok := c.doc.At(c.doc.Index(id))
	if !ok {
		c.log.Debug().Str("block", id).Msg("focus: unknown block")
		return false
	}
	s, ok := c.surfaces.Get(id)
	if !ok {
		c.log.Debug().Str("block", id).Msg("focus: surface not materialized")
		return false
	}
	target := block.FocusTarget(b.Type)
	h, ok := surface.Resolve(s, target)
	if !ok {
		c.log.Debug().Str("block", id).Stringer("target", target).Msg("focus: target missing")
		return false
	}
	surface.Focus(h, caret)
	c.focused = id
	c.log.Debug().Str("block", id).Stringer("target", target).Stringer("caret", caret).Msg("focus")
	return true
}

// Request queues a focus transfer to run on the next Drain.
func (c *Controller) Request(id string, caret surface.Caret) {
	c.pending = append(c.pending, Intent{BlockID: id, Caret: caret})
}

// Pending returns the queued intents in order.
func (c *Controller) Pending() []Intent {
	return append([]Intent(nil), c.pending...)
}

// Drain performs and clears every queued intent, in order. Intents whose
// block or surface vanished are dropped. It returns how many succeeded.
func (c *Controller) Drain() int {
	queue := c.pending
	c.pending = nil
	done := 0
	for _, in := range queue {
		if c.Focus(in.BlockID, in.Caret) {
			done++
		}
	}
	return done
}
