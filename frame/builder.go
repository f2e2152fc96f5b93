package frame

import (
	"sort"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/docview/dom"
	"github.com/npillmayer/docview/dom/style"
	"github.com/npillmayer/docview/dom/style/cascade"
	"github.com/npillmayer/docview/dom/style/cssom"
)

// Builder creates frames for the elements of a document, and assembles the
// cascade path of an element.
//
// A builder compiles the selectors of the document's stylesheets on first
// use, and again whenever stylesheets are added to the document.
type Builder struct {
	tree     *cascade.StyleTree
	doc      *dom.Document
	rules    []authorRule
	compiled int // number of stylesheets compiled into rules
	anon     *style.DeclarationSet
	text     *style.DeclarationSet
}

// authorRule is a compiled rule of a stylesheet.
type authorRule struct {
	selectors []cascadia.Sel
	order     int // source order over all stylesheets
	normal    *style.DeclarationSet
	important *style.DeclarationSet
}

// NewBuilder creates a frame builder for a document. Style nodes are taken
// from tree.
func NewBuilder(tree *cascade.StyleTree, doc *dom.Document) *Builder {
	anon, _ := style.ParseDeclarationSets("display: block")
	return &Builder{
		tree:     tree,
		doc:      doc,
		compiled: -1,
		anon:     anon,
		text:     style.UserAgentDeclarations(style.TextElementName),
	}
}

// StyleTree returns the style tree of a builder.
func (b *Builder) StyleTree() *cascade.StyleTree {
	return b.tree
}

// --- Cascade ---------------------------------------------------------------

func (b *Builder) compile() {
	var sheets []cssom.StyleSheet
	if b.doc != nil {
		sheets = b.doc.StyleSheets()
	}
	if len(sheets) == b.compiled {
		return
	}
	b.rules = b.rules[:0]
	order := 0
	for _, sheet := range sheets {
		for _, rule := range sheet.Rules() {
			r := authorRule{order: order}
			order++
			for _, s := range rule.Selectors() {
				sel, err := cascadia.Parse(s)
				if err != nil {
					tracer().Errorf("ignoring selector %q: %v", s, err)
					continue
				}
				r.selectors = append(r.selectors, sel)
			}
			if len(r.selectors) == 0 {
				continue
			}
			r.normal, r.important = cssom.DeclarationSets(rule)
			if r.normal.IsEmpty() && r.important.IsEmpty() {
				continue
			}
			b.rules = append(b.rules, r)
		}
	}
	b.compiled = len(sheets)
	tracer().Infof("compiled %d author rules from %d stylesheets", len(b.rules), len(sheets))
}

type match struct {
	rule        *authorRule
	specificity cascadia.Specificity
}

// matchingRules returns the author rules matching an element, ordered by
// ascending specificity, then source order. A rule with a selector group
// is matched with the most specific of its matching selectors.
func (b *Builder) matchingRules(e *dom.Element) []match {
	b.compile()
	var matches []match
	for i := range b.rules {
		r := &b.rules[i]
		matched := false
		var spec cascadia.Specificity
		for _, sel := range r.selectors {
			if !sel.Match(e.HTMLNode()) {
				continue
			}
			if s := sel.Specificity(); !matched || spec.Less(s) {
				spec = s
			}
			matched = true
		}
		if matched {
			matches = append(matches, match{rule: r, specificity: spec})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].specificity.Less(matches[j].specificity)
	})
	return matches
}

// StyleNode returns the style node for the cascade path of an element.
// Layers are, from least to most specific: user agent defaults, matching
// author rules, presentational attributes, the inline style, important
// author declarations and important inline declarations.
func (b *Builder) StyleNode(e *dom.Element) *cascade.StyleNode {
	if e == nil {
		return b.tree.Root()
	}
	if e.IsText() {
		return b.tree.StyleNode(b.text)
	}
	matches := b.matchingRules(e)
	path := make([]*style.DeclarationSet, 0, 2*len(matches)+4)
	path = append(path, style.UserAgentDeclarations(e.Name()))
	for _, m := range matches {
		path = append(path, m.rule.normal)
	}
	path = append(path, e.IntrinsicStyle())
	inline, inlineImportant := e.InlineStyle()
	path = append(path, inline)
	for _, m := range matches {
		path = append(path, m.rule.important)
	}
	path = append(path, inlineImportant)
	return b.tree.StyleNode(path...)
}

// --- Frames ----------------------------------------------------------------

// BuildFrame creates the frame subtree for an element. Every element
// receiving a frame gets a back-reference to it. Returns nil if the element
// is not displayed; frame references of the subtree are cleared in this
// case.
func (b *Builder) BuildFrame(e *dom.Element) Frame {
	if e == nil {
		return nil
	}
	box := b.build(e, e.Parent() == nil)
	if box == nil {
		return nil
	}
	tracer().Debugf("built frame %v", box)
	return box
}

func (b *Builder) build(e *dom.Element, isRoot bool) *Box {
	sn := b.StyleNode(e)
	disp, err := cascade.ParseDisplay(sn.ComputedProperty("display", nil).Str())
	if err != nil {
		tracer().Errorf("element %v: %v", e, err)
	}
	if disp == cascade.DisplayNone {
		clearFrames(e)
		return nil
	}
	kind := blockBox
	if e.IsText() {
		kind = textBox
	} else if flowsInline(disp) && !isRoot {
		kind = inlineBox
	}
	box := newBox(kind, e, sn)
	e.SetFrame(box)
	if kind == textBox {
		box.text = e.Text()
		return box
	}
	if t := e.Text(); t != "" {
		tb := newBox(textBox, e, b.tree.StyleNode(b.text))
		tb.text = t
		tb.anonymous = true
		box.add(tb)
	}
	for _, c := range e.Children() {
		if cb := b.build(c, false); cb != nil {
			box.add(cb)
		}
	}
	if kind == inlineBox {
		for _, ch := range box.boxes() {
			if ch.kind == blockBox {
				tracer().Debugf("inline element %v contains blocks, will be a block", e)
				box.kind = blockBox
				break
			}
		}
	}
	if box.kind == blockBox {
		b.wrapInlineRuns(box)
	}
	return box
}

// flowsInline is true for display modes taking part in line layout.
// Atomic inlines (inline-block) are laid out as blocks.
func flowsInline(disp cascade.DisplayMode) bool {
	return disp.IsInlineLevel() && !disp.EstablishesBlockContext()
}

// wrapInlineRuns wraps runs of inline children of a block box into
// anonymous blocks, if the box has block children as well.
func (b *Builder) wrapInlineRuns(box *Box) {
	children := box.boxes()
	var blocks, inlines int
	for _, ch := range children {
		if ch.isInline() {
			inlines++
		} else {
			blocks++
		}
	}
	if blocks == 0 || inlines == 0 {
		return
	}
	for _, ch := range children {
		ch.Node.Isolate()
	}
	var run *Box
	for _, ch := range children {
		if !ch.isInline() {
			run = nil
			box.add(ch)
			continue
		}
		if run == nil {
			run = newBox(blockBox, box.element, b.tree.StyleNode(b.anon))
			run.anonymous = true
			box.add(run)
		}
		run.add(ch)
	}
}

func clearFrames(e *dom.Element) {
	e.SetFrame(nil)
	for _, c := range e.Children() {
		clearFrames(c)
	}
}
