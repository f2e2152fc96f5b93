package frame

import (
	"fmt"
	"image"

	"github.com/npillmayer/docview/dom"
	"github.com/npillmayer/docview/dom/style/cascade"
	"golang.org/x/image/draw"
)

// Frame is a box of the layout tree, generated for a content element.
//
// Frames are shaped like the element tree, with the exception of anonymous
// frames, which are inserted by frame builders to wrap runs of inline
// content. Anonymous frames report the element of their parent frame.
type Frame interface {
	cascade.Box
	SetStyle(*cascade.StyleNode)         // swap the style node
	Element() *dom.Element               // owning element
	IsAnonymous() bool                   // generated by the frame builder
	Parent() Frame                       // parent frame, or nil for the root
	Children() []Frame                   // child frames
	IndexOfChild(Frame) int              // position of a child, or -1
	ReplaceChild(old, f Frame) bool      // replace a child; f == nil removes it
	RemoveChild(old Frame) bool          // remove a child
	SetContainingBlock(w, h float64)     // available space of a root frame
	Flow()                               // lay out the frame and its subtree
	MarkFlowDirty()                      // request a flow
	IsFlowDirty() bool                   // has a flow been requested?
	IsFlowMaster() bool                  // does the frame's size depend on its content only?
	PurgeStyleCache(names []string)      // drop computed values of properties
	LayoutMetrics() Metrics              // snapshot of the layout size
	ResolveBoundingBox(x, y float64)     // position the subtree, given the parent's content origin
	ContentOrigin() (x, y float64)       // absolute origin of the content box
	BoundingBox() Rect                   // absolute border box
	DrawCull(c *Canvas)                  // draw frames overlapping the canvas clip
	FramesForPoint(x, y float64) []Frame // frames containing a point, outermost first
}

// Metrics is a comparable snapshot of the layout size of a frame, in points.
type Metrics struct {
	Width, Height float64 // size of the margin box
}

// Rect is a rectangle in points.
type Rect struct {
	X, Y, W, H float64
}

// Contains returns true if a point lies within r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// IsEmpty returns true if r has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Union returns the smallest rectangle containing r and s. Empty rectangles
// are ignored.
func (r Rect) Union(s Rect) Rect {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	x0, y0 := min(r.X, s.X), min(r.Y, s.Y)
	x1, y1 := max(r.X+r.W, s.X+s.W), max(r.Y+r.H, s.Y+s.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%.2f,%.2f %.2fx%.2f]", r.X, r.Y, r.W, r.H)
}

// Canvas is the target of drawing operations.
type Canvas struct {
	Image            draw.Image
	Clip             image.Rectangle // in device pixels
	OffsetX, OffsetY float64         // viewport offset in points
	Scale            float64         // device pixels per point
}

// toDevice converts a rectangle in points to device pixels.
func (c *Canvas) toDevice(r Rect) image.Rectangle {
	x0 := int((r.X - c.OffsetX) * c.Scale)
	y0 := int((r.Y - c.OffsetY) * c.Scale)
	x1 := int((r.X + r.W - c.OffsetX) * c.Scale)
	y1 := int((r.Y + r.H - c.OffsetY) * c.Scale)
	return image.Rect(x0, y0, x1, y1)
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
