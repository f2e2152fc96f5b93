package view

import (
	"github.com/npillmayer/docview/device"
	"github.com/npillmayer/docview/dom"
	"github.com/npillmayer/docview/dom/style/cascade"
	"github.com/npillmayer/docview/frame"
	"github.com/npillmayer/schuko"
	"golang.org/x/image/draw"
)

// DocumentView presents a document on a render device. It owns the frame
// tree of the document and keeps it up to date, see package documentation.
type DocumentView struct {
	dev                device.RenderDevice
	doc                *dom.Document
	styles             *cascade.StyleTree
	builder            *frame.Builder
	root               frame.Frame
	pendingReconstruct *orderedSet[*dom.Element]
	pendingReflow      *orderedSet[frame.Frame]
	width, height      float64 // viewport size in pt
	x, y               float64 // viewport offset in pt
	stats              Stats
}

// Stats counts the work a view has done.
type Stats struct {
	Rebuilds        int // full rebuilds of the frame tree
	Reconstructions int // partial rebuilds of the frame tree
	Skipped         int // reconstructions skipped for inconsistent frame linkage
	Reflows         int // calls of Flow
}

var _ dom.Listener = &DocumentView{}

// New creates a view for a document. dev may be nil, in which case a
// reference device is used, as configured by conf. doc may be nil as well.
func New(dev device.RenderDevice, doc *dom.Document, conf schuko.Configuration) *DocumentView {
	c := ConfigFrom(conf)
	if dev == nil {
		dev = device.NewReferenceDevice(c.DPI, c.FontSize)
	}
	v := &DocumentView{
		dev:                dev,
		width:              c.Width,
		height:             c.Height,
		x:                  c.X,
		y:                  c.Y,
		pendingReconstruct: newOrderedSet[*dom.Element](),
		pendingReflow:      newOrderedSet[frame.Frame](),
	}
	v.SetDocument(doc)
	return v
}

// SetDocument replaces the document presented by the view. The view stops
// listening to the previous document and drops all of its frames.
func (v *DocumentView) SetDocument(doc *dom.Document) {
	if v.doc != nil {
		v.doc.RemoveListener(v)
		releaseFrames(v.doc.Root())
	}
	v.doc = doc
	v.styles = cascade.NewStyleTree(v.dev)
	v.builder = frame.NewBuilder(v.styles, doc)
	v.root = nil
	v.pendingReconstruct.clear()
	v.pendingReflow.clear()
	if doc == nil {
		return
	}
	doc.AddListener(v)
	if doc.Root() != nil {
		v.OnSetRoot(doc.Root())
	}
}

// Document returns the document presented by the view.
func (v *DocumentView) Document() *dom.Document {
	return v.doc
}

// Device returns the render device of the view.
func (v *DocumentView) Device() device.RenderDevice {
	return v.dev
}

// StyleTree returns the style tree shared by all frames of the view.
func (v *DocumentView) StyleTree() *cascade.StyleTree {
	return v.styles
}

// Root returns the root frame, after bringing the frame tree up to date.
func (v *DocumentView) Root() frame.Frame {
	v.updateFlow()
	return v.root
}

// Stats returns the counters of the view.
func (v *DocumentView) Stats() Stats {
	return v.stats
}

func releaseFrames(e *dom.Element) {
	if e == nil {
		return
	}
	e.SetFrame(nil)
	for _, c := range e.Children() {
		releaseFrames(c)
	}
}

// --- Viewport --------------------------------------------------------------

// ViewportWidth returns the width of the viewport in pt.
func (v *DocumentView) ViewportWidth() float64 { return v.width }

// ViewportHeight returns the height of the viewport in pt.
func (v *DocumentView) ViewportHeight() float64 { return v.height }

// ViewportX returns the horizontal scroll offset in pt.
func (v *DocumentView) ViewportX() float64 { return v.x }

// ViewportY returns the vertical scroll offset in pt.
func (v *DocumentView) ViewportY() float64 { return v.y }

// SetViewportWidth changes the width of the viewport, which is the width
// of the initial containing block. The document will be re-flowed.
func (v *DocumentView) SetViewportWidth(w float64) {
	if w == v.width {
		return
	}
	v.width = w
	v.reflowResize()
}

// SetViewportHeight changes the height of the viewport.
func (v *DocumentView) SetViewportHeight(h float64) {
	if h == v.height {
		return
	}
	v.height = h
	v.reflowResize()
}

// SetViewportX scrolls horizontally. No layout is necessary.
func (v *DocumentView) SetViewportX(x float64) { v.x = x }

// SetViewportY scrolls vertically. No layout is necessary.
func (v *DocumentView) SetViewportY(y float64) { v.y = y }

// --- Listener --------------------------------------------------------------

// OnSetRoot is called when the root element of the document has been
// replaced. A rebuild of the frame tree supersedes any pending work.
func (v *DocumentView) OnSetRoot(root *dom.Element) {
	tracer().Debugf("new root element %v", root)
	v.pendingReconstruct.clear()
	v.pendingReflow.clear()
	if root == nil {
		v.root = nil
		return
	}
	v.pendingReconstruct.add(root)
}

// OnElementModified is called when children or text of an element have
// changed. The element's frames will be reconstructed.
func (v *DocumentView) OnElementModified(e *dom.Element) {
	v.enqueueReconstruct(e)
}

func (v *DocumentView) enqueueReconstruct(e *dom.Element) {
	if e == nil {
		return
	}
	if v.rebuildPending() {
		return
	}
	if v.pendingReconstruct.add(e) {
		tracer().Debugf("pending reconstruct of %v", e)
	}
}

// OnElementStyleModified is called when attributes or the inline style of
// an element have changed.
//
// Elements without frames escalate to their nearest ancestor having a
// frame. Otherwise, if the cascade path of the element changed, the new
// style node is compared to the old one. A change of property "display"
// escalates to reconstruction of the parent element. For other changes the
// frame receives the new style node, computed values of the changed
// properties are purged, and the frame is scheduled for reflow.
func (v *DocumentView) OnElementStyleModified(e *dom.Element) {
	if v.rebuildPending() {
		return
	}
	f := frameOf(e)
	if f == nil {
		v.enqueueReconstruct(v.ancestorWithFrame(e))
		return
	}
	sn := v.builder.StyleNode(e)
	if sn == f.Style() {
		tracer().Debugf("style of %v unchanged", e)
		return
	}
	diffs := f.Style().SpecifiedDifferences(sn)
	tracer().P("element", e.String()).Debugf("style differences %v", diffs)
	for _, name := range diffs {
		if name == "display" {
			if p := e.Parent(); p != nil {
				v.enqueueReconstruct(p)
			} else {
				v.enqueueReconstruct(e)
			}
			return
		}
	}
	f.SetStyle(sn)
	f.PurgeStyleCache(diffs)
	f.MarkFlowDirty()
	v.pendingReflow.add(f)
}

// rebuildPending is true if a rebuild of the frame tree is pending, which
// subsumes any other update.
func (v *DocumentView) rebuildPending() bool {
	root := v.doc.Root()
	return root != nil && v.pendingReconstruct.contains(root)
}

// ancestorWithFrame returns the nearest ancestor of e having a live frame.
// If there is none, the root element is returned.
func (v *DocumentView) ancestorWithFrame(e *dom.Element) *dom.Element {
	if e.Parent() == nil {
		return e
	}
	for a := e.Parent(); a != nil; a = a.Parent() {
		if frameOf(a) != nil {
			return a
		}
	}
	return v.doc.Root()
}

func frameOf(e *dom.Element) frame.Frame {
	if e == nil {
		return nil
	}
	f, _ := e.Frame().(frame.Frame)
	return f
}

// --- Reconciliation --------------------------------------------------------

// updateReconstruct rebuilds the frames of all elements pending
// reconstruction.
func (v *DocumentView) updateReconstruct() {
	if v.pendingReconstruct.len() == 0 {
		return
	}
	root := v.doc.Root()
	if v.pendingReconstruct.contains(root) {
		v.pendingReconstruct.clear()
		v.rebuild(root)
		return
	}
	for _, e := range v.pendingReconstruct.drain() {
		v.reconstruct(e)
	}
}

// rebuild replaces the complete frame tree.
func (v *DocumentView) rebuild(root *dom.Element) {
	v.pendingReflow.clear()
	v.root = v.builder.BuildFrame(root)
	v.stats.Rebuilds++
	if v.root == nil {
		tracer().Infof("root element %v is not displayed", root)
		return
	}
	v.root.SetContainingBlock(v.width, v.height)
	v.pendingReflow.add(v.root)
	tracer().Infof("rebuilt frame tree for %v", root)
}

// reconstruct rebuilds the frames of an element and splices them into the
// frame tree, at the position of the old frames. Frames nested in anonymous
// wrappers are rebuilt together with their siblings, by reconstructing the
// parent element.
func (v *DocumentView) reconstruct(e *dom.Element) {
	f := frameOf(e)
	if f == nil || !v.doc.Contains(e) {
		tracer().Debugf("element %v has no frame, not reconstructed", e)
		return
	}
	pf := frameOf(e.Parent())
	if pf == nil {
		v.skip(e, "parent element has no frame")
		return
	}
	// the frame of e is a child of pf, or nested in anonymous frames below it
	slot := f
	for slot.Parent() != pf {
		up := slot.Parent()
		if up == nil || !up.IsAnonymous() {
			v.skip(e, "frame is not a descendant of the parent element's frame")
			return
		}
		slot = up
	}
	if slot != f {
		// anonymous wrappers belong to the parent element's frame
		tracer().Debugf("frame of %v is wrapped, reconstructing %v", e, e.Parent())
		if e.Parent().Parent() == nil {
			v.rebuild(e.Parent())
			return
		}
		v.reconstruct(e.Parent())
		return
	}
	if newF := v.builder.BuildFrame(e); newF == nil {
		pf.RemoveChild(f)
	} else {
		pf.ReplaceChild(f, newF)
	}
	pf.MarkFlowDirty()
	v.pendingReflow.add(pf)
	v.stats.Reconstructions++
	tracer().Debugf("reconstructed frames of %v", e)
}

func (v *DocumentView) skip(e *dom.Element, reason string) {
	tracer().P("element", e.String()).Errorf("cannot reconstruct: %s", reason)
	v.stats.Skipped++
}

// updateFlow brings the frame tree up to date: pending reconstructions are
// carried out, then every dirty frame is flowed. Starting from the frame's
// flow master, changes of layout metrics bubble up the frame tree until
// they are absorbed or the root frame is reached. Finally, bounding boxes
// are resolved top-down from the topmost frame flowed.
func (v *DocumentView) updateFlow() {
	v.updateReconstruct()
	for _, f := range v.pendingReflow.drain() {
		if !f.IsFlowDirty() || !v.isAttached(f) {
			continue
		}
		m := f
		for !m.IsFlowMaster() && m.Parent() != nil {
			m = m.Parent()
		}
		for {
			before := m.LayoutMetrics()
			m.Flow()
			v.stats.Reflows++
			after := m.LayoutMetrics()
			if before == after || m.Parent() == nil {
				break
			}
			tracer().Debugf("metrics of %v changed, flowing parent", m)
			m = m.Parent()
		}
		x, y := 0.0, 0.0
		if p := m.Parent(); p != nil {
			x, y = p.ContentOrigin()
		}
		m.ResolveBoundingBox(x, y)
	}
}

// isAttached is true if f is part of the current frame tree.
func (v *DocumentView) isAttached(f frame.Frame) bool {
	for f.Parent() != nil {
		f = f.Parent()
	}
	return f == v.root
}

// reflowResize re-flows the document for a new viewport size.
func (v *DocumentView) reflowResize() {
	v.updateReconstruct()
	if v.root == nil {
		return
	}
	v.root.SetContainingBlock(v.width, v.height)
	v.pendingReflow.add(v.root)
}

// --- Observation -----------------------------------------------------------

// Draw draws the visible part of the document onto img, whose origin is
// the upper left corner of the viewport.
func (v *DocumentView) Draw(img draw.Image) {
	v.updateFlow()
	if v.root == nil {
		return
	}
	v.root.DrawCull(&frame.Canvas{
		Image:   img,
		Clip:    img.Bounds(),
		OffsetX: v.x,
		OffsetY: v.y,
		Scale:   v.dev.DPI() / 72,
	})
}

// CanvasWidth returns the width of the laid out document in pt.
func (v *DocumentView) CanvasWidth() float64 {
	v.updateFlow()
	if v.root == nil {
		return 0
	}
	return v.root.LayoutMetrics().Width
}

// CanvasHeight returns the height of the laid out document in pt.
func (v *DocumentView) CanvasHeight() float64 {
	v.updateFlow()
	if v.root == nil {
		return 0
	}
	return v.root.LayoutMetrics().Height
}

// FramesForPoint returns all frames at a point of the viewport, outermost
// first. The point is in device pixels, relative to the viewport.
func (v *DocumentView) FramesForPoint(x, y float64) []frame.Frame {
	v.updateFlow()
	if v.root == nil {
		return nil
	}
	scale := 72 / v.dev.DPI()
	return v.root.FramesForPoint(x*scale+v.x, y*scale+v.y)
}

// ElementsForPoint returns the elements owning the frames at a point of the
// viewport, outermost first. An element spanning more than one frame (for
// example a paragraph and the lines of its text) is reported once.
func (v *DocumentView) ElementsForPoint(x, y float64) []*dom.Element {
	var elements []*dom.Element
	for _, f := range v.FramesForPoint(x, y) {
		e := f.Element()
		if e == nil {
			continue
		}
		if n := len(elements); n > 0 && elements[n-1] == e {
			continue
		}
		elements = append(elements, e)
	}
	return elements
}
