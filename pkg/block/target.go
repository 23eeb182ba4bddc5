package block

// Target names the focusable part of a block's editing surface.
type Target int

const (
	// TargetSurface is the block's own editable surface.
	TargetSurface Target = iota
	// TargetText is the text element nested inside a to-do row, next to
	// the checkbox.
	TargetText
)

func (t Target) String() string {
	switch t {
	case TargetText:
		return "text"
	default:
		return "surface"
	}
}

// FocusTarget returns where focus and content reads land for a block of
// type t. This is the only place that distinguishes to-do blocks.
func FocusTarget(t Type) Target {
	switch t {
	case Todo:
		return TargetText
	default:
		return TargetSurface
	}
}
