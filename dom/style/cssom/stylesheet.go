package cssom

import "github.com/npillmayer/docview/dom/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// construction of the frame tree, we introduce an interface
// for CSS stylesheets. Clients for the styling engine will have to
// provide a concrete implementation of this interface (e.g., see
// package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string                  // the prelude / selectors of the rule
	Selectors() []string               // selectors of a selector group, trimmed
	Properties() []string              // property keys, e.g. "margin-top"
	Declarations() []style.Declaration // parsed declarations in source order
	IsImportant(string) bool           // is property key marked as important?
}

// DeclarationSets splits the declarations of a rule into two cascade layers,
// one for normal and one for important declarations. Either of them may be
// nil. Declarations which are not understood by the property registry are
// dropped.
func DeclarationSets(rule Rule) (normal, important *style.DeclarationSet) {
	if rule == nil {
		return nil, nil
	}
	var valid []style.Declaration
	for _, d := range rule.Declarations() {
		if _, err := style.Expand(d); err != nil {
			tracer().Errorf("rule %q: %v", rule.Selector(), err)
			continue
		}
		valid = append(valid, d)
	}
	return style.SplitByImportance(valid)
}
