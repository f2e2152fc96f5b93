package cascade

import (
	"math"

	"github.com/npillmayer/docview/css"
)

// computeFunc computes the value of a property from its specified value.
// It returns the computed value and a flag telling if the result is valid for
// every box using the style node (node-cacheable) or only for this box.
//
// Any result which may differ between two boxes sharing a style node must be
// flagged as not node-cacheable.
type computeFunc func(n *StyleNode, specified css.Value, box Box) (css.Value, bool)

// computers is a read-only table of compute functions, filled at
// initialization time. Properties without an entry compute to their
// specified value.
var computers map[string]computeFunc

func init() {
	computers = map[string]computeFunc{
		"font-size":        computeFontSize,
		"font-weight":      computeFontWeight,
		"line-height":      computeLineHeight,
		"color":            computeForeground,
		"background-color": computeColor,
		"width":            computeLength,
		"height":           computeLength,
	}
	for _, dir := range []string{"top", "right", "bottom", "left"} {
		computers["margin-"+dir] = computeLength
		computers["padding-"+dir] = computeLength
		computers["border-"+dir+"-width"] = borderWidthComputer(dir)
		computers["border-"+dir+"-color"] = computeBorderColor
	}
	for side := Top; side <= Left; side++ {
		computers[side.String()] = offsetComputer(side)
	}
}

// parentFontSize returns the computed font size of the parent box, or the
// device's medium font size for root boxes.
func (n *StyleNode) parentFontSize(box Box) float64 {
	if parent := parentBox(box); parent != nil {
		return FontSize(parent)
	}
	pt, _ := n.tree.dev.NamedFontSize("medium").ToPt(0)
	return pt
}

// fontSize returns the computed font size for box in points.
func (n *StyleNode) fontSize(box Box) float64 {
	pt, _ := n.ComputedProperty("font-size", box).ToPt(0)
	return pt
}

// Font sizes: absolute sizes are node-cacheable, everything relative to the
// parent's font size is not.
func computeFontSize(n *StyleNode, specified css.Value, box Box) (css.Value, bool) {
	var pt, p float64
	switch m := specified.Match(); m {
	case m.Keyword("larger"):
		return css.Pt(n.parentFontSize(box) * 1.1), false
	case m.Keyword("smaller"):
		return css.Pt(n.parentFontSize(box) * 0.9), false
	case m.IsKind(css.IdentKind):
		return css.Pt(n.tree.dev.DimensionToPt(n.tree.dev.NamedFontSize(specified.Str()), 0)), true
	case m.Percentage(&p):
		return css.Pt(n.parentFontSize(box) * p), false
	case m.Length(n.parentFontSize(box), &pt):
		return css.Pt(pt), !specified.Unit().IsFontRelative()
	}
	tracer().Errorf("cannot compute font-size from %s", specified)
	return css.Pt(n.parentFontSize(box)), false
}

// Font weights are numbers. "bolder" and "lighter" are relative to the
// parent's weight.
func computeFontWeight(n *StyleNode, specified css.Value, box Box) (css.Value, bool) {
	switch m := specified.Match(); m {
	case m.Keyword("normal"):
		return css.Number(400), true
	case m.Keyword("bold"):
		return css.Number(700), true
	case m.Keyword("bolder"):
		return css.Number(math.Min(inheritedWeight(box)+300, 900)), false
	case m.Keyword("lighter"):
		return css.Number(math.Max(inheritedWeight(box)-300, 100)), false
	case m.IsKind(css.NumberKind):
		return specified, true
	}
	tracer().Errorf("cannot compute font-weight from %s", specified)
	return css.Number(400), true
}

func inheritedWeight(box Box) float64 {
	if parent := parentBox(box); parent != nil {
		return styleOf(parent).ComputedProperty("font-weight", parent).Num()
	}
	return 400
}

// Line heights: numbers and percentages multiply the box's font size,
// lengths follow the rules for lengths, "normal" passes through.
func computeLineHeight(n *StyleNode, specified css.Value, box Box) (css.Value, bool) {
	var x float64
	switch m := specified.Match(); m {
	case m.Keyword("normal"):
		return css.Normal, true
	case m.Number(&x):
		return css.Pt(x * n.fontSize(box)), false
	case m.Percentage(&x):
		return css.Pt(x * n.fontSize(box)), false
	}
	return computeLength(n, specified, box)
}

// Lengths are converted to points. Font relative lengths depend on the
// box's font size; percentages and keywords are left to the layout.
func computeLength(n *StyleNode, specified css.Value, box Box) (css.Value, bool) {
	if specified.Kind() != css.DimensionKind {
		return specified, true
	}
	if specified.Unit().IsFontRelative() {
		pt, _ := specified.ToPt(n.fontSize(box))
		return css.Pt(pt), false
	}
	return css.Pt(n.tree.dev.DimensionToPt(specified, 0)), true
}

func computeColor(n *StyleNode, specified css.Value, box Box) (css.Value, bool) {
	if c, ok := css.ParseColor(specified); ok {
		return c, true
	}
	if specified.IsIdent("currentcolor") {
		return n.ComputedProperty("color", box), false
	}
	tracer().Errorf("cannot compute color from %s", specified)
	return css.Black, true
}

// For the color property itself, "currentcolor" means "inherit".
func computeForeground(n *StyleNode, specified css.Value, box Box) (css.Value, bool) {
	if specified.IsIdent("currentcolor") {
		if parent := parentBox(box); parent != nil {
			return styleOf(parent).ComputedProperty("color", parent), false
		}
		return css.Black, false
	}
	return computeColor(n, specified, box)
}

// Border colors fall back to the computed value of "color".
func computeBorderColor(n *StyleNode, specified css.Value, box Box) (css.Value, bool) {
	if specified.IsIdent("currentcolor") {
		return n.ComputedProperty("color", box), false
	}
	return computeColor(n, specified, box)
}

// Border widths are zero if the border style of the same side is "none"
// or "hidden".
func borderWidthComputer(dir string) computeFunc {
	styleProperty := "border-" + dir + "-style"
	return func(n *StyleNode, specified css.Value, box Box) (css.Value, bool) {
		bstyle := n.ComputedProperty(styleProperty, box)
		cacheable := !n.SpecifiedProperty(styleProperty).IsInherit()
		if bstyle.IsNone() || bstyle.IsIdent("hidden") {
			return css.Pt(0), cacheable
		}
		switch m := specified.Match(); m {
		case m.Keyword("thin"):
			return css.Pt(1), cacheable
		case m.Keyword("medium"):
			return css.Pt(3), cacheable
		case m.Keyword("thick"):
			return css.Pt(5), cacheable
		}
		v, c := computeLength(n, specified, box)
		return v, c && cacheable
	}
}

// Offsets are "auto" for statically positioned boxes. Relatively positioned
// boxes resolve all four offsets in one go and store them in the box's cache.
func offsetComputer(side PosDir) computeFunc {
	return func(n *StyleNode, specified css.Value, box Box) (css.Value, bool) {
		pos := Position(n.ComputedProperty("position", box))
		cacheable := !n.SpecifiedProperty("position").IsInherit()
		switch m := pos.Match(); m {
		case m.IsKind(Static()):
			return css.Auto, cacheable
		case m.Relative(nil):
			offsets := n.relativeOffsets(box)
			return offsets[side], false
		}
		v, c := computeLength(n, specified, box)
		return v, c && cacheable
	}
}

func (n *StyleNode) relativeOffsets(box Box) [4]css.Value {
	var offsets [4]css.Value
	for side := Top; side <= Left; side++ {
		name := side.String()
		v := n.SpecifiedProperty(name)
		if v.IsInherit() {
			if parent := parentBox(box); parent != nil {
				v = styleOf(parent).ComputedProperty(name, parent)
			} else {
				v = css.Auto
			}
		}
		offsets[side], _ = computeLength(n, v, box)
	}
	rtl := n.ComputedProperty("direction", box).IsIdent("rtl")
	offsets = ResolveRelativeOffsets(offsets, rtl)
	if box != nil {
		cache := box.Cache()
		for side := Top; side <= Left; side++ {
			cache[side.String()] = offsets[side]
		}
	}
	return offsets
}
