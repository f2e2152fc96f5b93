package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/docview/dom/style/cssom/douceuradapter"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse reads HTML markup and builds a document from it. The <html> element
// becomes the root of the document. Embedded <style> elements are added
// as stylesheets of the document.
//
// Head, script and style elements are not part of the content tree.
// Text consisting of whitespace only is dropped.
func Parse(r io.Reader) (*Document, error) {
	h, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("cannot parse document: %w", err)
	}
	doc := NewDocument()
	for _, sheet := range douceuradapter.ExtractStyleElements(h) {
		doc.AddStyleSheet(sheet)
	}
	var root *Element
	for n := h.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode {
			root = doc.build(n)
			break
		}
	}
	if root == nil {
		return nil, fmt.Errorf("cannot parse document: no root element")
	}
	doc.SetRoot(root)
	tracer().Debugf("parsed document with root %v", root)
	return doc, nil
}

// build creates an element for an HTML element node, recursively.
func (doc *Document) build(n *html.Node) *Element {
	e := doc.CreateElement(n.Data)
	for _, a := range n.Attr {
		if a.Namespace == "" {
			e.SetAttribute(a.Key, a.Val)
		}
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		switch ch.Type {
		case html.ElementNode:
			switch ch.DataAtom {
			case atom.Head, atom.Script, atom.Style, atom.Template:
				continue
			}
			e.AddChild(doc.build(ch))
		case html.TextNode:
			if strings.TrimSpace(ch.Data) != "" {
				e.AddText(ch.Data)
			}
		}
	}
	return e
}
