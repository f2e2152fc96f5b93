package cascade

import (
	"github.com/npillmayer/docview/css"
)

// position is an enum type for the CSS position property.
type position uint16

// Enum values for type Position
const (
	positionUnset    position = iota
	positionStatic            // CSS static (default)
	positionRelative          // CSS relative
	positionAbsolute          // CSS absolute
	positionFixed             // CSS fixed
)

// PositionT is an option type for CSS positions.
type PositionT struct {
	kind position
}

// PosDir is either Top, Right, Bottom or Left.
type PosDir uint8

// Sides of a box, in CSS shorthand order.
const (
	Top PosDir = iota
	Right
	Bottom
	Left
)

var offsetNames = [4]string{"top", "right", "bottom", "left"}

// String returns the name of the offset property for a side, e.g. "top".
func (d PosDir) String() string {
	if d > Left {
		return "?"
	}
	return offsetNames[d]
}

/*
type PositionT
	= Undefined
	| Static
	| Relative
	| Absolute
	| Fixed
*/

// Static creates a CSS position of value `static`.
func Static() PositionT {
	return PositionT{kind: positionStatic}
}

// Relative creates a CSS position of value `relative`.
func Relative() PositionT {
	return PositionT{kind: positionRelative}
}

// Absolute creates a CSS position of value `absolute`.
func Absolute() PositionT {
	return PositionT{kind: positionAbsolute}
}

// Fixed creates a CSS position of value `fixed`.
func Fixed() PositionT {
	return PositionT{kind: positionFixed}
}

var positionMap = map[position]string{
	positionStatic:   "static",
	positionRelative: "relative",
	positionAbsolute: "absolute",
	positionFixed:    "fixed",
}

func (p PositionT) String() string {
	if s, ok := positionMap[p.kind]; ok {
		return s
	}
	return "unset"
}

// Position returns an optional position type from a property value.
// It will never return an error, even with illegal input, but instead will then
// return an unset position.
func Position(v css.Value) PositionT {
	switch v.Str() {
	case "static":
		return Static()
	case "relative":
		return Relative()
	case "absolute":
		return Absolute()
	case "fixed":
		return Fixed()
	}
	return PositionT{}
}

// IsUnset returns true if p is unset.
func (p PositionT) IsUnset() bool {
	return p.kind == positionUnset
}

// IsRelative returns true if p represents a valid relative position.
func (p PositionT) IsRelative() bool {
	return p.kind == positionRelative
}

// IsAbsolute returns true if p represents a valid absolute position.
func (p PositionT) IsAbsolute() bool {
	return p.kind == positionAbsolute
}

// IsFixed returns true if p represents a fixed position.
func (p PositionT) IsFixed() bool {
	return p.kind == positionFixed
}

// ---------------------------------------------------------------------------

// Match starts matching a position against alternatives, see css.Value.Match.
func (p PositionT) Match() *PMatcher {
	return &PMatcher{pos: p}
}

// PMatcher matches positions.
type PMatcher struct {
	pos PositionT
}

// IsKind matches if the position is of the same kind as p.
func (m *PMatcher) IsKind(p PositionT) *PMatcher {
	if m.pos.kind == p.kind {
		return m
	}
	return nil
}

// Relative matches relative positions. If o is non-nil, it will be set to
// true.
func (m *PMatcher) Relative(o *bool) *PMatcher {
	if m.pos.kind == positionRelative {
		if o != nil {
			*o = true
		}
		return m
	}
	return nil
}

// OutOfFlow matches absolute and fixed positions.
func (m *PMatcher) OutOfFlow() *PMatcher {
	if m.pos.kind == positionAbsolute || m.pos.kind == positionFixed {
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// PositionPatterns lists the results for the different kinds of positions.
type PositionPatterns[T any] struct {
	Unset    T
	Static   T
	Absolute T
	Relative T
	Fixed    T
	Default  T
}

// PositionPattern creates a match expression for a position.
func PositionPattern[T any](p PositionT) *PMatchExpr[T] {
	return &PMatchExpr[T]{pos: p}
}

// PMatchExpr is part of pattern matching for PositionT types and intended to be instantiated
// using `PositionPattern()` only.
type PMatchExpr[T any] struct {
	pos PositionT
}

// OneOf returns the pattern result matching the position.
func (m *PMatchExpr[T]) OneOf(patterns PositionPatterns[T]) T {
	switch m.pos.kind {
	case positionUnset:
		return patterns.Unset
	case positionStatic:
		return patterns.Static
	case positionAbsolute:
		return patterns.Absolute
	case positionRelative:
		return patterns.Relative
	case positionFixed:
		return patterns.Fixed
	}
	return patterns.Default
}

// --- Relative offsets ------------------------------------------------------

// ResolveRelativeOffsets resolves the offsets (top, right, bottom, left) of a
// relatively positioned box (CSS 2.1 §9.4.3):
//
//   - if both opposite offsets are auto, both are 0
//   - if one of them is auto, it becomes the negation of the other
//   - if neither is auto, the box is over-constrained: bottom is ignored, and
//     right is ignored for direction ltr, left for direction rtl.
//
func ResolveRelativeOffsets(offsets [4]css.Value, rtl bool) [4]css.Value {
	resolve := func(start, end PosDir, endWins bool) {
		s, e := offsets[start], offsets[end]
		switch {
		case s.IsAuto() && e.IsAuto():
			offsets[start], offsets[end] = css.Pt(0), css.Pt(0)
		case s.IsAuto():
			offsets[start] = negate(e)
		case e.IsAuto():
			offsets[end] = negate(s)
		case endWins:
			offsets[start] = negate(e)
		default:
			offsets[end] = negate(s)
		}
	}
	resolve(Top, Bottom, false)
	resolve(Left, Right, rtl)
	return offsets
}

func negate(v css.Value) css.Value {
	switch v.Kind() {
	case css.PercentageKind:
		return css.Percent(-v.Num())
	case css.DimensionKind:
		return css.Dimen(-v.Num(), v.Unit())
	case css.NumberKind:
		return css.Pt(-v.Num())
	}
	return v
}
