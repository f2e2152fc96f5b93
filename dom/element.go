package dom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/docview/dom/style"
	"github.com/npillmayer/docview/dom/style/cascade"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element is a node of the content tree. An element holds either children or
// text, never both.
type Element struct {
	doc       *Document
	name      string
	hnode     *html.Node // mirror for selector matching
	textNode  *html.Node // mirror of the text of a non-text element
	parent    *Element
	children  []*Element
	text      string
	anonymous bool
	frame     cascade.Box             // live frame of this element, if any
	inline    [2]*style.DeclarationSet // normal and important inline declarations
	intrinsic *style.DeclarationSet    // from presentational attributes
}

func newElement(doc *Document, name string) *Element {
	name = strings.ToLower(name)
	return &Element{
		doc:  doc,
		name: name,
		hnode: &html.Node{
			Type:     html.ElementNode,
			Data:     name,
			DataAtom: atom.Lookup([]byte(name)),
		},
	}
}

func newTextElement(doc *Document, text string) *Element {
	return &Element{
		doc:       doc,
		name:      style.TextElementName,
		hnode:     &html.Node{Type: html.TextNode, Data: text},
		text:      text,
		anonymous: true,
	}
}

func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	if e.IsText() {
		t := e.text
		if len(t) > 16 {
			t = t[:16] + "…"
		}
		return fmt.Sprintf("#text(%q)", t)
	}
	if id := e.ID(); id != "" {
		return fmt.Sprintf("<%s#%s>", e.name, id)
	}
	return fmt.Sprintf("<%s>", e.name)
}

// Name returns the element name, e.g. "p". Text elements are named "#text".
func (e *Element) Name() string {
	return e.name
}

// Document returns the document which created e.
func (e *Element) Document() *Document {
	return e.doc
}

// ID returns the value of the id attribute, or "".
func (e *Element) ID() string {
	return e.Attribute("id")
}

// Attribute returns the value of an attribute, or "" if it is not set.
func (e *Element) Attribute(key string) string {
	key = strings.ToLower(key)
	for _, a := range e.hnode.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Attributes returns the attributes of an element, in the order they have
// been set.
func (e *Element) Attributes() []html.Attribute {
	return append([]html.Attribute(nil), e.hnode.Attr...)
}

// Parent returns the parent element, or nil.
func (e *Element) Parent() *Element {
	return e.parent
}

// PreviousSibling returns the sibling before e, or nil.
func (e *Element) PreviousSibling() *Element {
	if e.parent == nil {
		return nil
	}
	if i := e.parent.indexOf(e); i > 0 {
		return e.parent.children[i-1]
	}
	return nil
}

// Children returns a copy of the list of child elements.
func (e *Element) Children() []*Element {
	return append([]*Element(nil), e.children...)
}

// Text returns the text held by an element. Elements with children always
// return "".
func (e *Element) Text() string {
	return e.text
}

// IsText returns true for text elements, which never have children.
func (e *Element) IsText() bool {
	return e.name == style.TextElementName
}

// IsAnonymous returns true for text elements synthesized by the tree.
func (e *Element) IsAnonymous() bool {
	return e.anonymous
}

// InlineStyle returns the declarations of the style attribute, as a normal
// and an important layer. Both may be nil.
func (e *Element) InlineStyle() (normal, important *style.DeclarationSet) {
	return e.inline[0], e.inline[1]
}

// IntrinsicStyle returns the declarations derived from presentational
// attributes, or nil.
func (e *Element) IntrinsicStyle() *style.DeclarationSet {
	return e.intrinsic
}

// HTMLNode returns the mirror of e in an HTML node tree.
func (e *Element) HTMLNode() *html.Node {
	return e.hnode
}

// Frame returns the live frame of an element, or nil.
func (e *Element) Frame() cascade.Box {
	return e.frame
}

// SetFrame sets the frame back-reference of an element. Frame builders call
// this for every element they create a frame for.
func (e *Element) SetFrame(f cascade.Box) {
	e.frame = f
}

// --- Mutations -------------------------------------------------------------

// AddChild appends a child element. If e currently holds text, the text is
// moved to an anonymous text element, inserted before c.
// If c is attached to another parent, it is removed from there first.
// Returns e to allow for chaining.
func (e *Element) AddChild(c *Element) *Element {
	if c == nil || c == e {
		return e
	}
	if e.IsText() {
		tracer().Errorf("cannot add child %v to text element", c)
		return e
	}
	if c.contains(e) {
		tracer().Errorf("cannot add ancestor %v as a child of %v", c, e)
		return e
	}
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	if e.text != "" {
		anon := newTextElement(e.doc, e.text)
		e.setOwnText("")
		e.appendChild(anon)
		tracer().Debugf("text of %v moved to anonymous text element", e)
	}
	e.appendChild(c)
	if id := c.ID(); id != "" && e.doc != nil {
		e.doc.ids[id] = c
	}
	e.notifyModified()
	return e
}

// AddText appends text to an element. Text is merged into the text of e, or
// into a trailing anonymous text child. If e has element children and no
// trailing text, a new anonymous text element is appended.
// Returns e to allow for chaining.
func (e *Element) AddText(s string) *Element {
	if s == "" {
		return e
	}
	if e.IsText() || len(e.children) == 0 {
		e.setOwnText(e.text + s)
	} else if last := e.children[len(e.children)-1]; last.IsText() && last.anonymous {
		last.setOwnText(last.text + s)
	} else {
		e.appendChild(newTextElement(e.doc, s))
	}
	e.notifyModified()
	return e
}

// RemoveChild removes a child element. Frames of the removed subtree are
// released. Returns false if c is not a child of e.
func (e *Element) RemoveChild(c *Element) bool {
	i := e.indexOf(c)
	if i < 0 {
		return false
	}
	e.children = append(e.children[:i], e.children[i+1:]...)
	e.hnode.RemoveChild(c.hnode)
	c.parent = nil
	c.walk(func(el *Element) {
		el.frame = nil
	})
	e.notifyModified()
	return true
}

// SetAttribute sets the value of an attribute. The style attribute is routed
// to SetInlineStyle. Presentational attributes, like bgcolor, will update
// the intrinsic style of the element.
func (e *Element) SetAttribute(key, value string) {
	if e.IsText() {
		tracer().Errorf("cannot set attribute %s of text element", key)
		return
	}
	key = strings.ToLower(key)
	if key == "style" {
		e.SetInlineStyle(value)
		return
	}
	if key == "id" && e.doc != nil {
		if old := e.ID(); old != "" && e.doc.ids[old] == e {
			delete(e.doc.ids, old)
		}
		if value != "" {
			e.doc.ids[value] = e
		}
	}
	e.setAttr(key, value)
	switch key {
	case "bgcolor", "color", "width", "height", "align", "border":
		e.intrinsic = style.IntrinsicDeclarations(e.name, e.hnode.Attr)
	}
	e.notifyStyleModified()
}

// SetInlineStyle sets the declarations of the style attribute of an element.
// Declarations which fail to parse are dropped.
func (e *Element) SetInlineStyle(text string) {
	if e.IsText() {
		tracer().Errorf("cannot set style of text element")
		return
	}
	e.inline[0], e.inline[1] = style.ParseDeclarationSets(text)
	e.setAttr("style", text)
	e.notifyStyleModified()
}

// --- Internals -------------------------------------------------------------

func (e *Element) appendChild(c *Element) {
	c.parent = e
	c.doc = e.doc
	e.children = append(e.children, c)
	e.hnode.AppendChild(c.hnode)
}

func (e *Element) setOwnText(s string) {
	e.text = s
	if e.IsText() {
		e.hnode.Data = s
		return
	}
	if s == "" {
		if e.textNode != nil {
			e.hnode.RemoveChild(e.textNode)
			e.textNode = nil
		}
		return
	}
	if e.textNode == nil {
		e.textNode = &html.Node{Type: html.TextNode}
		e.hnode.AppendChild(e.textNode)
	}
	e.textNode.Data = s
}

// setAttr sets an attribute of the HTML mirror. An empty value removes the
// attribute.
func (e *Element) setAttr(key, value string) {
	for i, a := range e.hnode.Attr {
		if a.Key == key {
			if value == "" {
				e.hnode.Attr = append(e.hnode.Attr[:i], e.hnode.Attr[i+1:]...)
			} else {
				e.hnode.Attr[i].Val = value
			}
			return
		}
	}
	if value != "" {
		e.hnode.Attr = append(e.hnode.Attr, html.Attribute{Key: key, Val: value})
	}
}

func (e *Element) indexOf(c *Element) int {
	for i, ch := range e.children {
		if ch == c {
			return i
		}
	}
	return -1
}

// contains returns true if other is e or a descendant of e.
func (e *Element) contains(other *Element) bool {
	for ; other != nil; other = other.parent {
		if other == e {
			return true
		}
	}
	return false
}

// walk calls f for e and every descendant of e, in document order.
func (e *Element) walk(f func(*Element)) {
	if e == nil {
		return
	}
	f(e)
	for _, ch := range e.children {
		ch.walk(f)
	}
}

// Mutations are reported only for elements within the document tree.

func (e *Element) notifyModified() {
	if e.doc != nil && e.doc.Contains(e) {
		e.doc.notifyModified(e)
	}
}

func (e *Element) notifyStyleModified() {
	if e.doc != nil && e.doc.Contains(e) {
		e.doc.notifyStyleModified(e)
	}
}
