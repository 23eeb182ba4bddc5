// Package document holds the ordered block sequence of a page and the pure
// mutations applied to it. It never touches focus or the editing surface.
package document

import (
	"fmt"

	"github.com/google/uuid"

	"tableflip.dev/blocks/pkg/block"
)

// IDSource mints block identifiers. Identifiers must never repeat within a
// session.
type IDSource func() string

// NewUUID is the default IDSource.
func NewUUID() string {
	return uuid.NewString()
}

// Sequence returns an IDSource producing prefix-1, prefix-2, ...
func Sequence(prefix string) IDSource {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// Option configures a Document.
type Option func(*Document)

// WithIDSource overrides how new block identifiers are generated.
func WithIDSource(src IDSource) Option {
	return func(d *Document) {
		if src != nil {
			d.nextID = src
		}
	}
}

// Document is the ordered list of blocks for one editing session. It always
// holds at least one block.
type Document struct {
	blocks []block.Block
	nextID IDSource
}

// New creates a document holding a single empty text block.
func New(opts ...Option) *Document {
	d := &Document{nextID: NewUUID}
	for _, opt := range opts {
		opt(d)
	}
	d.blocks = []block.Block{block.New(d.nextID(), block.Text)}
	return d
}

// Len returns the number of blocks.
func (d *Document) Len() int {
	return len(d.blocks)
}

// Blocks returns a read-only projection of the sequence.
func (d *Document) Blocks() []block.Block {
	out := make([]block.Block, len(d.blocks))
	for i, b := range d.blocks {
		out[i] = b.Clone()
	}
	return out
}

// Index returns the position of id, or -1.
func (d *Document) Index(id string) int {
	for i := range d.blocks {
		if d.blocks[i].ID == id {
			return i
		}
	}
	return -1
}

// At returns the block at position i.
func (d *Document) At(i int) (block.Block, bool) {
	if i < 0 || i >= len(d.blocks) {
		return block.Block{}, false
	}
	return d.blocks[i].Clone(), true
}

// Get returns the block with the given id.
func (d *Document) Get(id string) (block.Block, bool) {
	return d.At(d.Index(id))
}

// InsertAfter creates a block of type t directly after anchor and returns its
// id. It reports false and leaves the document untouched when anchor is
// unknown.
func (d *Document) InsertAfter(anchor string, t block.Type) (string, bool) {
	i := d.Index(anchor)
	if i < 0 {
		return "", false
	}
	nb := block.New(d.nextID(), t)
	d.blocks = append(d.blocks, block.Block{})
	copy(d.blocks[i+2:], d.blocks[i+1:])
	d.blocks[i+1] = nb
	return nb.ID, true
}

// Removal describes the outcome of Delete.
type Removal struct {
	// Index is the position the block occupied, or -1 if it was not found.
	Index int
	// PrevID is the block that preceded the removed one, if any.
	PrevID string
	// NextID is the block that now occupies Index, if any.
	NextID string
	// ReplacementID is set when the last remaining block was replaced by a
	// fresh empty text block instead of being removed.
	ReplacementID string
}

// Found reports whether Delete matched a block.
func (r Removal) Found() bool {
	return r.Index >= 0
}

// Delete removes the block with id. Deleting the only block swaps it for a
// new empty text block with a new id so the document is never empty.
func (d *Document) Delete(id string) Removal {
	i := d.Index(id)
	if i < 0 {
		return Removal{Index: -1}
	}
	if len(d.blocks) == 1 {
		fresh := block.New(d.nextID(), block.Text)
		d.blocks[0] = fresh
		return Removal{Index: 0, ReplacementID: fresh.ID}
	}

	r := Removal{Index: i}
	if i > 0 {
		r.PrevID = d.blocks[i-1].ID
	}
	d.blocks = append(d.blocks[:i], d.blocks[i+1:]...)
	if i < len(d.blocks) {
		r.NextID = d.blocks[i].ID
	}
	return r
}

// Update merges p into the block with id, keeping every field p leaves unset.
// It reports false when id is unknown.
func (d *Document) Update(id string, p Patch) bool {
	i := d.Index(id)
	if i < 0 {
		return false
	}
	d.blocks[i] = p.Apply(d.blocks[i])
	return true
}
