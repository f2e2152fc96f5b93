package css

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the type tag of a CSS value.
type Kind uint8

// Kinds of CSS values.
const (
	NoKind Kind = iota // the zero Value
	IdentKind
	StringKind
	NumberKind
	PercentageKind
	DimensionKind
	ColorKind
	URIKind
)

func (k Kind) String() string {
	switch k {
	case IdentKind:
		return "ident"
	case StringKind:
		return "string"
	case NumberKind:
		return "number"
	case PercentageKind:
		return "percentage"
	case DimensionKind:
		return "dimension"
	case ColorKind:
		return "color"
	case URIKind:
		return "uri"
	}
	return "none"
}

// Unit is the unit of a dimension value.
type Unit uint8

// Units of dimension values. Absolute units convert to points without
// further context, font-relative units need a font size.
const (
	NoUnit Unit = iota
	PX
	PT
	PC
	IN
	CM
	MM
	EM
	EX
)

var unitNames = [...]string{"", "px", "pt", "pc", "in", "cm", "mm", "em", "ex"}

func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return "?"
}

// ParseUnit returns the unit for a (lower case) unit name.
func ParseUnit(s string) (Unit, bool) {
	for i, n := range unitNames {
		if i > 0 && n == s {
			return Unit(i), true
		}
	}
	return NoUnit, false
}

// IsFontRelative is true for units depending on the font size.
func (u Unit) IsFontRelative() bool {
	return u == EM || u == EX
}

// Value is an immutable CSS value. Values are comparable with ==, which
// compares kind and content.
//
//    type Value
//       = Ident string
//       | String string
//       | Number float
//       | Percentage float    // fraction, 50% = 0.5
//       | Dimension float unit
//       | Color r g b a       // components in [0…1]
//       | URI string
//
type Value struct {
	kind Kind
	unit Unit
	num  float64
	str  string
	rgba [4]float64
}

// Ident creates an identifier value. Identifiers are case-insensitive and
// stored lower case.
func Ident(name string) Value {
	return Value{kind: IdentKind, str: strings.ToLower(name)}
}

// String creates a string value (without quotes).
func String(s string) Value {
	return Value{kind: StringKind, str: s}
}

// Number creates a plain number value.
func Number(n float64) Value {
	return Value{kind: NumberKind, num: n}
}

// Percent creates a percentage from a fraction, i.e. Percent(0.5) is 50%.
func Percent(fraction float64) Value {
	return Value{kind: PercentageKind, num: fraction}
}

// Dimen creates a dimension value with a unit.
func Dimen(x float64, unit Unit) Value {
	if unit == NoUnit {
		return Number(x)
	}
	return Value{kind: DimensionKind, num: x, unit: unit}
}

// Pt creates a dimension in points.
func Pt(x float64) Value {
	return Dimen(x, PT)
}

// RGBA creates a color value. Components are clamped to [0…1].
func RGBA(r, g, b, a float64) Value {
	return Value{kind: ColorKind, rgba: [4]float64{clamp01(r), clamp01(g), clamp01(b), clamp01(a)}}
}

// URI creates a URI value.
func URI(uri string) Value {
	return Value{kind: URIKind, str: uri}
}

// Frequently used keyword values.
var (
	Inherit     = Ident("inherit")
	Initial     = Ident("initial")
	Auto        = Ident("auto")
	None        = Ident("none")
	Normal      = Ident("normal")
	Comma       = Ident(",")
	Transparent = RGBA(0, 0, 0, 0)
	Black       = RGBA(0, 0, 0, 1)
)

// Kind returns the type tag of v.
func (v Value) Kind() Kind { return v.kind }

// Unit returns the unit of a dimension, NoUnit otherwise.
func (v Value) Unit() Unit { return v.unit }

// Num returns the numeric content of numbers, percentages (as fraction)
// and dimensions.
func (v Value) Num() float64 { return v.num }

// Str returns the textual content of identifiers, strings and URIs.
func (v Value) Str() string { return v.str }

// Components returns the color components of a color value.
func (v Value) Components() (r, g, b, a float64) {
	return v.rgba[0], v.rgba[1], v.rgba[2], v.rgba[3]
}

// IsZero is true for the zero Value, which denotes "no value".
func (v Value) IsZero() bool { return v.kind == NoKind }

// IsIdent checks if v is the identifier name.
func (v Value) IsIdent(name string) bool {
	return v.kind == IdentKind && v.str == name
}

// IsInherit denotes if a value is the CSS-wide keyword "inherit".
func (v Value) IsInherit() bool { return v == Inherit }

// IsInitial denotes if a value is the CSS-wide keyword "initial".
func (v Value) IsInitial() bool { return v == Initial }

// IsAuto denotes if a value is "auto".
func (v Value) IsAuto() bool { return v == Auto }

// IsNone denotes if a value is "none".
func (v Value) IsNone() bool { return v == None }

// IsLength is true for dimensions and for the unitless number 0.
func (v Value) IsLength() bool {
	return v.kind == DimensionKind || (v.kind == NumberKind && v.num == 0)
}

func (v Value) String() string {
	switch v.kind {
	case IdentKind:
		return v.str
	case StringKind:
		return `"` + strings.ReplaceAll(v.str, `"`, `\"`) + `"`
	case NumberKind:
		return fmtFloat(v.num)
	case PercentageKind:
		return fmtFloat(v.num*100) + "%"
	case DimensionKind:
		return fmtFloat(v.num) + v.unit.String()
	case ColorKind:
		r, g, b, a := v.Components()
		return "rgba(" + strconv.Itoa(int(math.Round(r*255))) + "," +
			strconv.Itoa(int(math.Round(g*255))) + "," +
			strconv.Itoa(int(math.Round(b*255))) + "," + fmtFloat(a) + ")"
	case URIKind:
		return "url(" + v.str + ")"
	}
	return "<none>"
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(math.Round(x*1e6)/1e6, 'f', -1, 64)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	} else if x > 1 {
		return 1
	}
	return x
}
