package css

// Match starts matching a value against alternatives. Usage:
//
//     switch m := v.Match(); m {
//     case m.Keyword("auto"):
//         …
//     case m.Length(fontSize, &pt):
//         …
//     case m.Percentage(&p):
//         …
//     }
//
// Every alternative returns m if it matches and nil otherwise.
func (v Value) Match() *Matcher {
	return &Matcher{value: v}
}

// Matcher matches a value against alternatives. See Value.Match.
type Matcher struct {
	value Value
}

// IsKind matches if the value is of kind k.
func (m *Matcher) IsKind(k Kind) *Matcher {
	if m.value.kind == k {
		return m
	}
	return nil
}

// Keyword matches the identifier name.
func (m *Matcher) Keyword(name string) *Matcher {
	if m.value.IsIdent(name) {
		return m
	}
	return nil
}

// Length matches dimensions and the number 0, setting *pt (if non-nil) to
// the length in points. Font-relative units are resolved against fontSize.
func (m *Matcher) Length(fontSize float64, pt *float64) *Matcher {
	if x, ok := m.value.ToPt(fontSize); ok {
		if pt != nil {
			*pt = x
		}
		return m
	}
	return nil
}

// Number matches plain numbers.
func (m *Matcher) Number(n *float64) *Matcher {
	if m.value.kind == NumberKind {
		if n != nil {
			*n = m.value.num
		}
		return m
	}
	return nil
}

// Percentage matches percentages, setting *p to the fraction.
func (m *Matcher) Percentage(p *float64) *Matcher {
	if m.value.kind == PercentageKind {
		if p != nil {
			*p = m.value.num
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// ValuePatterns lists the results for the different shapes of a value.
// Keyword patterns (Auto, None, Inherit) take precedence over Ident.
type ValuePatterns[T any] struct {
	Auto    T
	None    T
	Inherit T
	Ident   T
	Length  T
	Percent T
	Number  T
	Color   T
	Default T
}

// ValuePattern creates a match expression for v.
func ValuePattern[T any](v Value) *MatchExpr[T] {
	return &MatchExpr[T]{value: v}
}

// MatchExpr selects one of a set of patterns for a value.
type MatchExpr[T any] struct {
	value Value
}

// OneOf returns the pattern result matching the value.
func (m *MatchExpr[T]) OneOf(patterns ValuePatterns[T]) T {
	v := m.value
	switch {
	case v == Auto:
		return patterns.Auto
	case v == None:
		return patterns.None
	case v == Inherit:
		return patterns.Inherit
	case v.kind == IdentKind:
		return patterns.Ident
	case v.IsLength():
		return patterns.Length
	case v.kind == PercentageKind:
		return patterns.Percent
	case v.kind == NumberKind:
		return patterns.Number
	case v.kind == ColorKind:
		return patterns.Color
	}
	return patterns.Default
}
