package block

// Descriptor describes one selectable entry in the slash menu.
type Descriptor struct {
	Type        Type   `json:"type"`
	Icon        string `json:"icon"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Command     string `json:"command"`
}

var catalog = [...]Descriptor{
	{Type: Text, Icon: "📄", Label: "Text", Description: "Plain text", Command: "/text"},
	{Type: Heading1, Icon: "H1", Label: "Heading 1", Description: "Big section heading", Command: "/h1"},
	{Type: Heading2, Icon: "H2", Label: "Heading 2", Description: "Medium section heading", Command: "/h2"},
	{Type: Heading3, Icon: "H3", Label: "Heading 3", Description: "Small section heading", Command: "/h3"},
	{Type: Bulleted, Icon: "•", Label: "Bulleted List", Description: "Create a simple list", Command: "/bullet"},
	{Type: Numbered, Icon: "1.", Label: "Numbered List", Description: "Create a numbered list", Command: "/number"},
	{Type: Todo, Icon: "☐", Label: "To-do List", Description: "Track tasks with checkboxes", Command: "/todo"},
	{Type: Quote, Icon: "\"", Label: "Quote", Description: "Capture a quote", Command: "/quote"},
	{Type: Code, Icon: "</>", Label: "Code", Description: "Capture a code snippet", Command: "/code"},
}

// Catalog returns the block type descriptors in menu order. The returned
// slice is a copy; the catalog itself never changes.
func Catalog() []Descriptor {
	out := make([]Descriptor, len(catalog))
	copy(out, catalog[:])
	return out
}

// Descriptor returns the catalog entry for t.
func (t Type) Descriptor() Descriptor {
	if !t.Valid() {
		return Descriptor{Type: t, Label: t.String()}
	}
	return catalog[t]
}
