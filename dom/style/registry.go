package style

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/docview/css"
)

// ErrUnknownProperty is returned for declarations of unsupported properties.
var ErrUnknownProperty = errors.New("unknown CSS property")

// ErrInvalidDeclaration is returned for declarations with invalid values.
var ErrInvalidDeclaration = errors.New("invalid CSS declaration")

// Assignment is a validated value for a longhand property.
type Assignment struct {
	Property string
	Value    css.Value
}

// PropertyDef describes a CSS property known to the registry.
type PropertyDef struct {
	Name      string    // property name, e.g. "margin"
	Targets   []string  // longhands assigned by this property
	Inherited bool      // inherited by default
	Multi     bool      // accepts a comma-separated list of values
	Initial   css.Value // initial value (longhands only)
	expand    expander
}

// IsShorthand is true for properties assigning to more than their own name.
func (def PropertyDef) IsShorthand() bool {
	return len(def.Targets) != 1 || def.Targets[0] != def.Name
}

// expander validates the values of a declaration and maps them to assignments.
type expander func(def *PropertyDef, values []css.Value) ([]Assignment, error)

// validator checks a single value and possibly normalizes it.
type validator func(css.Value) (css.Value, bool)

var registry = map[string]*PropertyDef{}

// Lookup returns the definition of a property.
func Lookup(name string) (PropertyDef, bool) {
	def, ok := registry[name]
	if !ok {
		return PropertyDef{}, false
	}
	return *def, true
}

// IsInherited returns wether the standard behaviour for a propery is to be
// inherited or not, i.e., a call to retrieve its value will cascade.
func IsInherited(name string) bool {
	if def, ok := registry[name]; ok {
		return def.Inherited
	}
	return false
}

// InitialValue returns the CSS initial value of a longhand property or the
// zero value for unknown properties.
func InitialValue(name string) css.Value {
	if def, ok := registry[name]; ok {
		return def.Initial
	}
	return css.Value{}
}

// Longhands returns the names of all longhand properties, sorted.
func Longhands() []string {
	var names []string
	for name, def := range registry {
		if !def.IsShorthand() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Expand validates a declaration and maps it to its target longhands.
// The CSS-wide keywords "inherit" and "initial" apply to every target;
// "initial" is replaced by each target's initial value.
func Expand(d Declaration) ([]Assignment, error) {
	def, ok := registry[d.Property]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProperty, d.Property)
	}
	if len(d.Values) == 0 {
		return nil, fmt.Errorf("%w: %s without value", ErrInvalidDeclaration, d.Property)
	}
	if len(d.Values) == 1 && (d.Values[0].IsInherit() || d.Values[0].IsInitial()) {
		a := make([]Assignment, len(def.Targets))
		for i, target := range def.Targets {
			a[i].Property = target
			if d.Values[0].IsInherit() {
				a[i].Value = css.Inherit
			} else {
				a[i].Value = InitialValue(target)
			}
		}
		return a, nil
	}
	return def.expand(def, d.Values)
}

func invalid(def *PropertyDef, values []css.Value) error {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = v.String()
	}
	return fmt.Errorf("%w: %s: %s", ErrInvalidDeclaration, def.Name, strings.Join(s, " "))
}

// --- Longhands -------------------------------------------------------------

func longhand(name string, inherited bool, initial css.Value, valid validator) {
	registry[name] = &PropertyDef{
		Name:      name,
		Targets:   []string{name},
		Inherited: inherited,
		Initial:   initial,
		expand:    single(valid),
	}
}

func single(valid validator) expander {
	return func(def *PropertyDef, values []css.Value) ([]Assignment, error) {
		if len(values) != 1 {
			return nil, invalid(def, values)
		}
		v, ok := valid(values[0])
		if !ok {
			return nil, invalid(def, values)
		}
		return []Assignment{{def.Name, v}}, nil
	}
}

func keywords(kw ...string) validator {
	return func(v css.Value) (css.Value, bool) {
		for _, k := range kw {
			if v.IsIdent(k) {
				return v, true
			}
		}
		return v, false
	}
}

func oneOf(valid ...validator) validator {
	return func(v css.Value) (css.Value, bool) {
		for _, f := range valid {
			if w, ok := f(v); ok {
				return w, true
			}
		}
		return v, false
	}
}

func length(nonNegative bool) validator {
	return func(v css.Value) (css.Value, bool) {
		if !v.IsLength() || (nonNegative && v.Num() < 0) {
			return v, false
		}
		if v.Kind() == css.NumberKind {
			return css.Pt(0), true
		}
		return v, true
	}
}

func percentage(nonNegative bool) validator {
	return func(v css.Value) (css.Value, bool) {
		return v, v.Kind() == css.PercentageKind && (!nonNegative || v.Num() >= 0)
	}
}

func number(min, max float64) validator {
	return func(v css.Value) (css.Value, bool) {
		return v, v.Kind() == css.NumberKind && v.Num() >= min && v.Num() <= max
	}
}

func color(v css.Value) (css.Value, bool) {
	if v.IsIdent("currentcolor") {
		return v, true
	}
	return css.ParseColor(v)
}

func fontWeight(v css.Value) (css.Value, bool) {
	if v.Kind() == css.NumberKind {
		n := v.Num()
		return v, n >= 100 && n <= 900 && float64(int(n)/100*100) == n
	}
	return keywords("normal", "bold", "bolder", "lighter")(v)
}

// fontFamily accepts a comma-separated list of family names. Each family is
// a string or a sequence of identifiers. The list is stored as a single
// string value with families joined by commas.
func fontFamily(def *PropertyDef, values []css.Value) ([]Assignment, error) {
	var families []string
	var words []string
	flush := func() bool {
		if len(words) == 0 {
			return false
		}
		families = append(families, strings.Join(words, " "))
		words = words[:0]
		return true
	}
	for _, v := range values {
		switch {
		case v == css.Comma:
			if !flush() {
				return nil, invalid(def, values)
			}
		case v.Kind() == css.StringKind:
			if len(words) > 0 {
				return nil, invalid(def, values)
			}
			words = append(words, v.Str())
		case v.Kind() == css.IdentKind:
			words = append(words, v.Str())
		default:
			return nil, invalid(def, values)
		}
	}
	if !flush() {
		return nil, invalid(def, values)
	}
	return []Assignment{{def.Name, css.String(strings.Join(families, ","))}}, nil
}

// FontFamilies splits a computed font-family value into family names.
func FontFamilies(v css.Value) []string {
	if v.Kind() != css.StringKind && v.Kind() != css.IdentKind {
		return nil
	}
	return strings.Split(v.Str(), ",")
}

var (
	borderStyles   = keywords("none", "hidden", "dotted", "dashed", "solid", "double", "groove", "ridge", "inset", "outset")
	borderWidths   = oneOf(keywords("thin", "medium", "thick"), length(true))
	lengthOrPcnt   = oneOf(length(false), percentage(false))
	sizeOrAuto     = oneOf(keywords("auto"), length(true), percentage(true))
	offsetOrAuto   = oneOf(keywords("auto"), lengthOrPcnt)
	paddingValue   = oneOf(length(true), percentage(true))
	marginValue    = oneOf(keywords("auto"), lengthOrPcnt)
	fontSizeValues = oneOf(keywords("xx-small", "x-small", "small", "medium", "large",
		"x-large", "xx-large", "larger", "smaller"), length(true), percentage(true))
	lineHeightValue = oneOf(keywords("normal"), number(0, 1e6), length(true), percentage(true))
)

// Display values understood by the cascade, see ParseDisplay in package cascade.
var displayValues = keywords("none", "block", "inline", "list-item", "inline-block",
	"table", "inline-table", "flow-root", "block-inline")

func init() {
	medium := css.Ident("medium")
	longhand("display", false, css.Ident("inline"), displayValues)
	longhand("position", false, css.Ident("static"), keywords("static", "relative", "absolute", "fixed"))
	for _, dir := range fourDirs {
		longhand(dir, false, css.Auto, offsetOrAuto)
		longhand(p("margin", "", dir), false, css.Pt(0), marginValue)
		longhand(p("padding", "", dir), false, css.Pt(0), paddingValue)
		longhand(p("border", "width", dir), false, medium, borderWidths)
		longhand(p("border", "style", dir), false, css.None, borderStyles)
		longhand(p("border", "color", dir), false, css.Ident("currentcolor"), color)
	}
	longhand("width", false, css.Auto, sizeOrAuto)
	longhand("height", false, css.Auto, sizeOrAuto)
	longhand("color", true, css.Black, color)
	longhand("background-color", false, css.Transparent, color)
	longhand("font-size", true, medium, fontSizeValues)
	longhand("font-weight", true, css.Normal, fontWeight)
	longhand("font-style", true, css.Normal, keywords("normal", "italic", "oblique"))
	longhand("line-height", true, css.Normal, lineHeightValue)
	longhand("direction", true, css.Ident("ltr"), keywords("ltr", "rtl"))
	longhand("text-align", true, css.Ident("left"), keywords("left", "right", "center", "justify"))
	longhand("white-space", true, css.Normal, keywords("normal", "pre", "nowrap", "pre-wrap", "pre-line"))
	longhand("visibility", true, css.Ident("visible"), keywords("visible", "hidden", "collapse"))
	registry["font-family"] = &PropertyDef{
		Name:      "font-family",
		Targets:   []string{"font-family"},
		Inherited: true,
		Multi:     true,
		Initial:   css.String("serif"),
		expand:    fontFamily,
	}
	initShorthands()
}
