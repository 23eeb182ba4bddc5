package document

import "tableflip.dev/blocks/pkg/block"

// Patch is a partial block update. Nil fields are left untouched.
type Patch struct {
	Type    *block.Type
	Content *string
	Checked *bool
	// ClearChecked drops the checked state entirely; it wins over Checked.
	ClearChecked bool
}

// SetType returns a copy of p that changes the block type.
func (p Patch) SetType(t block.Type) Patch {
	p.Type = &t
	return p
}

// SetContent returns a copy of p that replaces the content.
func (p Patch) SetContent(s string) Patch {
	p.Content = &s
	return p
}

// SetChecked returns a copy of p that sets the checkbox state.
func (p Patch) SetChecked(v bool) Patch {
	p.Checked = &v
	p.ClearChecked = false
	return p
}

// UnsetChecked returns a copy of p that removes the checkbox state.
func (p Patch) UnsetChecked() Patch {
	p.Checked = nil
	p.ClearChecked = true
	return p
}

// Apply returns b with the patch merged in.
func (p Patch) Apply(b block.Block) block.Block {
	b = b.Clone()
	if p.Type != nil {
		b.Type = *p.Type
	}
	if p.Content != nil {
		b.Content = *p.Content
	}
	switch {
	case p.ClearChecked:
		b.Checked = nil
	case p.Checked != nil:
		b.Checked = block.Bool(*p.Checked)
	}
	return b
}
