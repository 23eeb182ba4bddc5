// Package block defines the typed unit of a page and the static catalog of
// block types offered by the slash menu.
package block

// Type identifies the variant of a block. The set is closed.
type Type int

const (
	Text Type = iota
	Heading1
	Heading2
	Heading3
	Bulleted
	Numbered
	Todo
	Quote
	Code
)

// Types lists every block type in catalog order.
func Types() []Type {
	return []Type{Text, Heading1, Heading2, Heading3, Bulleted, Numbered, Todo, Quote, Code}
}

var typeNames = [...]string{
	Text:     "text",
	Heading1: "heading1",
	Heading2: "heading2",
	Heading3: "heading3",
	Bulleted: "bulleted",
	Numbered: "numbered",
	Todo:     "todo",
	Quote:    "quote",
	Code:     "code",
}

// Valid reports whether t is one of the known block types.
func (t Type) Valid() bool {
	return t >= Text && t <= Code
}

func (t Type) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return typeNames[t]
}

// MarshalText encodes the type by name so projections stay readable as JSON.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, ok := ParseType(string(text))
	if !ok {
		return &UnknownTypeError{Name: string(text)}
	}
	*t = parsed
	return nil
}

// ParseType resolves a type name ("heading1") or a command token ("/h1").
func ParseType(s string) (Type, bool) {
	for _, t := range Types() {
		if typeNames[t] == s || t.Descriptor().Command == s {
			return t, true
		}
	}
	return Text, false
}

// UnknownTypeError is returned when decoding an unrecognised type name.
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return "block: unknown type " + `"` + e.Name + `"`
}

// Block is one addressable unit of page content.
//
// Checked is only meaningful for Todo blocks and is nil for every other type.
type Block struct {
	ID      string `json:"id"`
	Type    Type   `json:"type"`
	Content string `json:"content"`
	Checked *bool  `json:"checked,omitempty"`
}

// New returns an empty block of the given type. Todo blocks start unchecked.
func New(id string, t Type) Block {
	b := Block{ID: id, Type: t}
	if t == Todo {
		b.Checked = Bool(false)
	}
	return b
}

// IsChecked reports the checkbox state, treating an absent value as false.
func (b Block) IsChecked() bool {
	return b.Checked != nil && *b.Checked
}

// Clone returns a copy that shares no memory with b.
func (b Block) Clone() Block {
	if b.Checked != nil {
		b.Checked = Bool(*b.Checked)
	}
	return b
}

// Bool returns a pointer to v.
func Bool(v bool) *bool {
	return &v
}
