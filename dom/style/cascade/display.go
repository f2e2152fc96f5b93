package cascade

import (
	"fmt"
	"strings"
)

// DisplayMode is a type for CSS property "display". A mode combines an
// outer display level (how a box takes part in its parent's layout) with
// flags for its inner layout.
type DisplayMode uint16

// Outer levels occupy the lower four bits, inner flags the rest.
const (
	NoMode          DisplayMode = 0      // unset or error condition
	DisplayNone     DisplayMode = 0x0001 // no box at all
	BlockMode       DisplayMode = 0x0002 // block-level
	InlineMode      DisplayMode = 0x0004 // inline-level
	InnerBlockMode  DisplayMode = 0x0010 // children are laid out as blocks
	InnerInlineMode DisplayMode = 0x0020 // children are laid out in lines
	FlowRootMode    DisplayMode = 0x0040 // block formatting context root
	ListItemMode    DisplayMode = 0x0080 // list-item
	TableMode       DisplayMode = 0x0100 // table, laid out as a block here
)

const outerMask DisplayMode = 0x000f

// displayModes maps the values accepted for property "display" to modes.
var displayModes = map[string]DisplayMode{
	"none":         DisplayNone,
	"block":        BlockMode | InnerBlockMode,
	"inline":       InlineMode | InnerInlineMode,
	"list-item":    BlockMode | ListItemMode,
	"flow-root":    BlockMode | FlowRootMode,
	"block-inline": BlockMode | InnerInlineMode,
	"inline-block": InlineMode | InnerBlockMode,
	"table":        BlockMode | TableMode,
	"inline-table": InlineMode | TableMode,
}

var flagNames = []struct {
	mode DisplayMode
	name string
}{
	{DisplayNone, "none"}, {BlockMode, "block"}, {InlineMode, "inline"},
	{InnerBlockMode, "inner-block"}, {InnerInlineMode, "inner-inline"},
	{FlowRootMode, "flow-root"}, {ListItemMode, "list-item"}, {TableMode, "table"},
}

// String lists the flags of a mode, e.g. "inline|inner-block".
func (disp DisplayMode) String() string {
	if disp == NoMode {
		return "unset"
	}
	var names []string
	for _, f := range flagNames {
		if disp.Contains(f.mode) {
			names = append(names, f.name)
		}
	}
	return strings.Join(names, "|")
}

// IsBlockLevel is true for modes taking part in a block formatting context,
// such as 'block', 'list-item' and 'table'.
func (disp DisplayMode) IsBlockLevel() bool {
	return disp&outerMask == BlockMode
}

// IsInlineLevel is true for modes taking part in line layout.
func (disp DisplayMode) IsInlineLevel() bool {
	return disp&outerMask == InlineMode
}

// EstablishesBlockContext is true for modes laying out their children as blocks.
func (disp DisplayMode) EstablishesBlockContext() bool {
	return disp.Contains(InnerBlockMode | FlowRootMode | ListItemMode | TableMode)
}

// Contains checks if a display mode has any of the flags of d set.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return disp&d != 0
}

// ParseDisplay returns the mode for a value of property "display".
// Unknown values are reported and treated as "block".
func ParseDisplay(display string) (DisplayMode, error) {
	if display == "" {
		return NoMode, nil
	}
	if d, ok := displayModes[display]; ok {
		return d, nil
	}
	return BlockMode | InnerBlockMode, fmt.Errorf("unknown display mode: %s", display)
}
