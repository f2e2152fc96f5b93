package style

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/docview/css"
)

// Declaration is a CSS declaration, e.g.
//
//     margin: 5px 10px !important
//
// Declarations are immutable.
type Declaration struct {
	Property  string      // property name, lower case
	Values    []css.Value // parsed values
	Important bool        // marked with "!important"
}

func (d Declaration) String() string {
	var b strings.Builder
	b.WriteString(d.Property)
	b.WriteString(":")
	for i, v := range d.Values {
		if i > 0 && v != css.Comma {
			b.WriteString(" ")
		}
		b.WriteString(v.String())
	}
	if d.Important {
		b.WriteString(" !important")
	}
	return b.String()
}

func (d Declaration) key(b *strings.Builder) {
	b.WriteString(d.Property)
	for _, v := range d.Values {
		r, g, bl, a := v.Components()
		fmt.Fprintf(b, "|%d:%d:%v:%q:%v,%v,%v,%v", v.Kind(), v.Unit(), posZero(v.Num()), v.Str(),
			posZero(r), posZero(g), posZero(bl), posZero(a))
	}
	if d.Important {
		b.WriteString("|!")
	}
	b.WriteString(";")
}

// posZero maps -0 to 0, as both compare equal.
func posZero(x float64) float64 {
	if x == 0 {
		return 0
	}
	return x
}

// --- Declaration sets ------------------------------------------------------

// DeclarationSet is an ordered, immutable sequence of declarations, forming
// one layer of the cascade. Two sets with the same content have the same Key.
// nil is a legal (empty) declaration set.
type DeclarationSet struct {
	decls []Declaration
	key   string
}

// NewDeclarationSet creates a declaration set from a list of declarations.
// The declarations are copied.
func NewDeclarationSet(decls ...Declaration) *DeclarationSet {
	set := &DeclarationSet{decls: make([]Declaration, len(decls))}
	var b strings.Builder
	for i, d := range decls {
		vals := make([]css.Value, len(d.Values))
		copy(vals, d.Values)
		d.Values = vals
		set.decls[i] = d
		d.key(&b)
	}
	set.key = b.String()
	return set
}

// Key returns a content key for a declaration set, suitable as a map key.
func (set *DeclarationSet) Key() string {
	if set == nil {
		return ""
	}
	return set.key
}

// Equal compares two sets by content.
func (set *DeclarationSet) Equal(other *DeclarationSet) bool {
	return set.Key() == other.Key()
}

// Len returns the number of declarations in the set.
func (set *DeclarationSet) Len() int {
	if set == nil {
		return 0
	}
	return len(set.decls)
}

// IsEmpty is true for sets without declarations.
func (set *DeclarationSet) IsEmpty() bool {
	return set.Len() == 0
}

// At returns the i-th declaration.
func (set *DeclarationSet) At(i int) Declaration {
	return set.decls[i]
}

// Declarations returns a copy of the declarations of set.
func (set *DeclarationSet) Declarations() []Declaration {
	if set == nil {
		return nil
	}
	decls := make([]Declaration, len(set.decls))
	copy(decls, set.decls)
	return decls
}

func (set *DeclarationSet) String() string {
	if set == nil {
		return "{}"
	}
	s := make([]string, len(set.decls))
	for i, d := range set.decls {
		s[i] = d.String()
	}
	return "{" + strings.Join(s, "; ") + "}"
}

// Assignments expands all declarations of a set into assignments to longhand
// properties. Normal and important declarations are returned separately, each
// in declaration order. Invalid declarations are dropped with a diagnostic.
func (set *DeclarationSet) Assignments() (normal, important []Assignment) {
	if set == nil {
		return
	}
	for _, d := range set.decls {
		a, err := Expand(d)
		if err != nil {
			tracer().P("property", d.Property).Errorf("dropping declaration: %v", err)
			continue
		}
		if d.Important {
			important = append(important, a...)
		} else {
			normal = append(normal, a...)
		}
	}
	return
}

// --- Parsing ---------------------------------------------------------------

// ParseDeclarations parses a list of CSS declarations, as found in a style
// attribute or in the block of a style rule, e.g.
//
//     "color: red; margin: 5px !important"
//
// Values are parsed but not validated. A declaration which cannot be parsed is
// dropped, all others are returned together with an error describing the first
// failure.
func ParseDeclarations(text string) ([]Declaration, error) {
	var decls []Declaration
	var firstErr error
	for _, chunk := range splitDeclarations(text) {
		dd, err := parser.ParseDeclarations(chunk + ";")
		if err == nil && (len(dd) != 1 || dd[0].Property == "" || dd[0].Value == "") {
			err = fmt.Errorf("%w: %q", ErrInvalidDeclaration, chunk)
		}
		if err != nil {
			tracer().Errorf("cannot parse declaration %q: %v", chunk, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		d, err := ConvertDeclaration(dd[0].Property, dd[0].Value, dd[0].Important)
		if err != nil {
			tracer().Errorf("dropping declaration %q: %v", chunk, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		decls = append(decls, d)
	}
	return decls, firstErr
}

// ConvertDeclaration creates a declaration from raw property and value text.
func ConvertDeclaration(property, value string, important bool) (Declaration, error) {
	values, err := css.ParseValues(value)
	if err != nil {
		return Declaration{}, fmt.Errorf("%w: %s: %v", ErrInvalidDeclaration, property, err)
	}
	return Declaration{
		Property:  strings.ToLower(strings.TrimSpace(property)),
		Values:    values,
		Important: important,
	}, nil
}

// ParseDeclarationSets parses declaration text and returns two layers,
// one for normal and one for important declarations. An empty layer is nil.
func ParseDeclarationSets(text string) (normal, important *DeclarationSet) {
	decls, _ := ParseDeclarations(text)
	return SplitByImportance(decls)
}

// SplitByImportance groups declarations into a normal and an important set.
// An empty set is returned as nil.
func SplitByImportance(decls []Declaration) (normal, important *DeclarationSet) {
	var n, i []Declaration
	for _, d := range decls {
		if d.Important {
			i = append(i, d)
		} else {
			n = append(n, d)
		}
	}
	if len(n) > 0 {
		normal = NewDeclarationSet(n...)
	}
	if len(i) > 0 {
		important = NewDeclarationSet(i...)
	}
	return
}

// splitDeclarations splits declaration text at top-level semicolons, i.e.
// semicolons not inside strings or parentheses. Empty chunks are dropped.
func splitDeclarations(text string) []string {
	var chunks []string
	var quote rune
	depth, start := 0, 0
	for i, r := range text {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(':
			depth++
		case r == ')' && depth > 0:
			depth--
		case r == ';' && depth == 0:
			chunks = appendChunk(chunks, text[start:i])
			start = i + 1
		}
	}
	return appendChunk(chunks, text[start:])
}

func appendChunk(chunks []string, chunk string) []string {
	chunk = strings.TrimSpace(chunk)
	if chunk == "" {
		return chunks
	}
	return append(chunks, chunk)
}
