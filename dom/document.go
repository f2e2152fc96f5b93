package dom

import (
	"github.com/npillmayer/docview/dom/style/cssom"
	"golang.org/x/net/html"
)

// Listener receives notifications about mutations of a document.
// Notifications are delivered synchronously, from within the call which
// caused the mutation.
type Listener interface {
	OnSetRoot(root *Element)           // the root element has been replaced
	OnElementModified(e *Element)      // children or text of e changed
	OnElementStyleModified(e *Element) // attributes or inline style of e changed
}

// Document is a tree of content elements plus the stylesheets applying to it.
//
// Documents are not safe for concurrent use.
type Document struct {
	root      *Element
	hdoc      *html.Node // document node of the HTML mirror
	ids       map[string]*Element
	listeners []Listener
	sheets    []cssom.StyleSheet
}

// NewDocument creates an empty document without a root element.
func NewDocument() *Document {
	return &Document{
		hdoc: &html.Node{Type: html.DocumentNode},
		ids:  make(map[string]*Element),
	}
}

// AddListener registers a listener for mutations of the document.
// Adding a listener twice has no effect.
func (doc *Document) AddListener(l Listener) {
	for _, it := range doc.listeners {
		if it == l {
			return
		}
	}
	doc.listeners = append(doc.listeners, l)
}

// RemoveListener unregisters a listener.
func (doc *Document) RemoveListener(l Listener) {
	for i, it := range doc.listeners {
		if it == l {
			doc.listeners = append(doc.listeners[:i:i], doc.listeners[i+1:]...)
			return
		}
	}
}

// CreateElement creates a new element owned by this document. The element
// will not be part of the document tree until it is added to it.
func (doc *Document) CreateElement(name string) *Element {
	return newElement(doc, name)
}

// SetRoot sets the root element of the document. A previous root is
// discarded, together with its id index.
func (doc *Document) SetRoot(e *Element) {
	if doc.root == e {
		return
	}
	if doc.root != nil {
		doc.hdoc.RemoveChild(doc.root.hnode)
	}
	doc.root = e
	doc.ids = make(map[string]*Element)
	if e != nil {
		if e.parent != nil {
			e.parent.RemoveChild(e)
		}
		e.doc = doc
		doc.hdoc.AppendChild(e.hnode)
		e.walk(func(el *Element) {
			if id := el.ID(); id != "" {
				doc.ids[id] = el
			}
		})
	}
	tracer().Debugf("document root set to %v", e)
	for _, l := range doc.snapshot() {
		l.OnSetRoot(e)
	}
}

// Root returns the root element of a document, or nil.
func (doc *Document) Root() *Element {
	return doc.root
}

// ElementByID finds the element with an id attribute within the document
// tree, or returns nil.
func (doc *Document) ElementByID(id string) *Element {
	if e, ok := doc.ids[id]; ok && e.ID() == id && doc.Contains(e) {
		return e
	}
	var found *Element
	doc.root.walk(func(el *Element) {
		if found == nil && el.ID() == id {
			found = el
		}
	})
	if found != nil {
		doc.ids[id] = found
	} else {
		delete(doc.ids, id)
	}
	return found
}

// Contains returns true if e is part of the document tree.
func (doc *Document) Contains(e *Element) bool {
	if doc.root == nil {
		return false
	}
	for ; e != nil; e = e.parent {
		if e == doc.root {
			return true
		}
	}
	return false
}

// AddStyleSheet appends an author stylesheet. Rules of later stylesheets win
// over rules of earlier ones with equal specificity. Adding a stylesheet
// re-styles the whole document, which is reported as a modification of the
// root element.
func (doc *Document) AddStyleSheet(sheet cssom.StyleSheet) {
	if sheet == nil || sheet.Empty() {
		return
	}
	doc.sheets = append(doc.sheets, sheet)
	tracer().P("rules", len(sheet.Rules())).Infof("stylesheet added to document")
	if doc.root != nil {
		doc.notifyModified(doc.root)
	}
}

// StyleSheets returns the author stylesheets of a document.
func (doc *Document) StyleSheets() []cssom.StyleSheet {
	return doc.sheets
}

// HTMLNode returns the document node of the HTML mirror.
func (doc *Document) HTMLNode() *html.Node {
	return doc.hdoc
}

// snapshot copies the listener list, so listeners may (un-)register during
// delivery without affecting it.
func (doc *Document) snapshot() []Listener {
	if len(doc.listeners) == 0 {
		return nil
	}
	return append([]Listener(nil), doc.listeners...)
}

func (doc *Document) notifyModified(e *Element) {
	for _, l := range doc.snapshot() {
		l.OnElementModified(e)
	}
}

func (doc *Document) notifyStyleModified(e *Element) {
	for _, l := range doc.snapshot() {
		l.OnElementStyleModified(e)
	}
}
