package frame

import (
	"fmt"

	"github.com/npillmayer/docview/dom"
	"github.com/npillmayer/docview/dom/style/cascade"
	"github.com/npillmayer/docview/tree"
)

type boxKind uint8

const (
	blockBox  boxKind = iota // block container
	inlineBox                // inline element, content is laid out by its container
	textBox                  // run of text
)

// Box is the reference implementation of Frame.
type Box struct {
	tree.Node[*Box] // we build on top of general purpose tree
	kind            boxKind
	element         *dom.Element
	anonymous       bool
	style           *cascade.StyleNode
	cache           cascade.Cache
	text            string // text boxes only
	dirty           bool
	cbW, cbH        float64    // containing block; cbH < 0 if unknown
	pos             point      // margin box origin, relative to the parent's content origin
	width, height   float64    // content box
	margins         [4]float64 // top, right, bottom, left
	borders         [4]float64
	paddings        [4]float64
	frags           []Rect // inline content, relative to the container's content origin
	fragLine        int    // line of the last fragment
	bbox            Rect   // absolute border box
	origin          point  // absolute content origin
}

type point struct {
	X, Y float64
}

func newBox(kind boxKind, e *dom.Element, sn *cascade.StyleNode) *Box {
	b := &Box{
		kind:    kind,
		element: e,
		style:   sn,
		cache:   make(cascade.Cache),
		dirty:   true,
		cbH:     -1,
	}
	b.Payload = b // Payload will always reference the box itself
	return b
}

func (b *Box) String() string {
	var kind string
	switch {
	case b.anonymous && b.kind == blockBox:
		kind = "anon"
	case b.kind == textBox:
		kind = "text"
	case b.kind == inlineBox:
		kind = "inline"
	default:
		kind = "block"
	}
	return fmt.Sprintf("%s%v", kind, b.element)
}

// --- cascade.Box -----------------------------------------------------------

// Style returns the style node of a box.
func (b *Box) Style() *cascade.StyleNode {
	return b.style
}

// Cache returns the cache for computed values valid for this box only.
func (b *Box) Cache() cascade.Cache {
	return b.cache
}

// ParentBox returns the parent box, or nil for the root box.
func (b *Box) ParentBox() cascade.Box {
	if p := b.parent(); p != nil {
		return p
	}
	return nil
}

var _ cascade.Box = &Box{}

// --- Frame -----------------------------------------------------------------

// SetStyle swaps the style node of a box. Computed values cached at the box
// are not affected, see PurgeStyleCache.
func (b *Box) SetStyle(sn *cascade.StyleNode) {
	b.style = sn
}

// Element returns the owning element of a box.
func (b *Box) Element() *dom.Element {
	return b.element
}

// IsAnonymous returns true for boxes not generated by an element of their
// own, i.e. anonymous blocks and text boxes for the text of an element.
func (b *Box) IsAnonymous() bool {
	return b.anonymous
}

// Parent returns the parent frame, or nil.
func (b *Box) Parent() Frame {
	if p := b.parent(); p != nil {
		return p
	}
	return nil
}

// Children returns the child frames of a box.
func (b *Box) Children() []Frame {
	nodes := b.Node.Children()
	children := make([]Frame, len(nodes))
	for i, n := range nodes {
		children[i] = n.Payload
	}
	return children
}

// IndexOfChild returns the position of a child frame, or -1.
func (b *Box) IndexOfChild(f Frame) int {
	ch, ok := f.(*Box)
	if !ok || ch == nil {
		return -1
	}
	return b.Node.IndexOfChild(&ch.Node)
}

// ReplaceChild replaces child old by f. If f is nil, old is removed.
// The box is marked dirty.
func (b *Box) ReplaceChild(old, f Frame) bool {
	o, ok := old.(*Box)
	if !ok || o == nil {
		return false
	}
	var replacement *tree.Node[*Box]
	if f != nil {
		n, ok := f.(*Box)
		if !ok {
			tracer().Errorf("cannot insert frame of type %T", f)
			return false
		}
		replacement = &n.Node
	}
	if !b.Node.ReplaceChild(&o.Node, replacement) {
		return false
	}
	b.MarkFlowDirty()
	return true
}

// RemoveChild removes a child frame.
func (b *Box) RemoveChild(old Frame) bool {
	return b.ReplaceChild(old, nil)
}

// SetContainingBlock sets the size of the containing block of a root frame.
// A negative height means: unknown.
func (b *Box) SetContainingBlock(w, h float64) {
	b.cbW, b.cbH = w, h
	b.MarkFlowDirty()
}

// MarkFlowDirty requests a flow of the box.
func (b *Box) MarkFlowDirty() {
	b.dirty = true
}

// IsFlowDirty returns true if a flow of the box has been requested.
func (b *Box) IsFlowDirty() bool {
	return b.dirty
}

// IsFlowMaster is true for the root box and for block boxes with a fixed
// width and height. The size of a flow master does not depend on its
// descendants.
func (b *Box) IsFlowMaster() bool {
	if b.parent() == nil {
		return true
	}
	if b.kind != blockBox || b.anonymous {
		return false
	}
	_, wfix := b.fixedLength("width")
	_, hfix := b.fixedLength("height")
	return wfix && hfix
}

// LayoutMetrics returns the size of the margin box.
func (b *Box) LayoutMetrics() Metrics {
	if b.kind != blockBox {
		var r Rect
		for _, f := range b.frags {
			r = r.Union(f)
		}
		return Metrics{Width: r.W, Height: r.H}
	}
	return Metrics{
		Width:  b.margins[left] + b.borders[left] + b.paddings[left] + b.width + b.paddings[right] + b.borders[right] + b.margins[right],
		Height: b.margins[top] + b.borders[top] + b.paddings[top] + b.height + b.paddings[bottom] + b.borders[bottom] + b.margins[bottom],
	}
}

// ContentOrigin returns the absolute origin of the content box, valid after
// the bounding box has been resolved. For inline boxes, this is the origin of
// the content box of the block containing them.
func (b *Box) ContentOrigin() (x, y float64) {
	return b.origin.X, b.origin.Y
}

// BoundingBox returns the absolute border box, valid after the bounding box
// has been resolved.
func (b *Box) BoundingBox() Rect {
	return b.bbox
}

var _ Frame = &Box{}

// --- Helpers ---------------------------------------------------------------

const (
	top = iota
	right
	bottom
	left
)

func (b *Box) parent() *Box {
	if n := b.Node.Parent(); n != nil {
		return n.Payload
	}
	return nil
}

func (b *Box) boxes() []*Box {
	nodes := b.Node.Children()
	children := make([]*Box, len(nodes))
	for i, n := range nodes {
		children[i] = n.Payload
	}
	return children
}

func (b *Box) add(ch *Box) {
	b.Node.AddChild(&ch.Node)
}

func (b *Box) isInline() bool {
	return b.kind != blockBox
}

// container returns the nearest block box above an inline box.
func (b *Box) container() *Box {
	p := b.parent()
	for p != nil && p.kind != blockBox {
		p = p.parent()
	}
	return p
}
