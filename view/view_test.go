package view

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/npillmayer/docview/css"
	"github.com/npillmayer/docview/dom"
	"github.com/npillmayer/docview/frame"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoParagraphs = `<html><head><style>body { margin: 0 } p { margin: 0 }</style></head>` +
	`<body><p id="a">first</p><p id="b">second</p></body></html>`

func parse(t *testing.T, markup string) *dom.Document {
	doc, err := dom.Parse(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func byID(t *testing.T, doc *dom.Document, id string) *dom.Element {
	e := doc.ElementByID(id)
	require.NotNil(t, e, "element #%s", id)
	return e
}

func newView(doc *dom.Document, width float64) *DocumentView {
	return New(nil, doc, testconfig.Conf{
		"viewport.width":  int(width),
		"viewport.height": 100,
	})
}

func TestEndToEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.view")
	defer teardown()
	//
	doc := parse(t, twoParagraphs)
	v := newView(doc, 200)
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	v.Draw(img)
	a, b := byID(t, doc, "a"), byID(t, doc, "b")
	ha := frameOf(a).LayoutMetrics().Height
	hb := frameOf(b).LayoutMetrics().Height
	assert.InDelta(t, 12.0, hb, 0.01)
	assert.InDelta(t, ha+hb, v.CanvasHeight(), 0.001, "paragraphs must not have margins")
	assert.InDelta(t, 200.0, v.CanvasWidth(), 0.001)
	t.Logf("frames:\n%s", frame.Dump(v.Root()))
	body := b.Parent()
	assert.Equal(t, []*dom.Element{doc.Root(), body, b}, v.ElementsForPoint(5, 18))
	//
	b.SetInlineStyle("display: none")
	v.Draw(img)
	t.Logf("frames:\n%s", frame.Dump(v.Root()))
	assert.InDelta(t, ha, v.CanvasHeight(), 0.001, "height must decrease by the hidden paragraph")
	assert.Empty(t, v.ElementsForPoint(5, 18))
	assert.Nil(t, b.Frame())
	assert.Equal(t, 1, v.Stats().Rebuilds)
	assert.Equal(t, 1, v.Stats().Reconstructions)
}

func TestDisplayChangeEscalation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.view")
	defer teardown()
	//
	doc := parse(t, `<html><body><p id="p">one <span id="s">two</span></p></body></html>`)
	v := newView(doc, 200)
	v.CanvasHeight()
	p, s := byID(t, doc, "p"), byID(t, doc, "s")
	require.NotNil(t, frameOf(s))
	s.SetInlineStyle("display: none")
	assert.True(t, v.pendingReconstruct.contains(p), "display change must escalate to the parent")
	assert.False(t, v.pendingReconstruct.contains(s))
	assert.Equal(t, 0, v.pendingReflow.len())
	v.CanvasHeight()
	assert.Nil(t, s.Frame())
	//
	s.SetInlineStyle("display: inline")
	assert.True(t, v.pendingReconstruct.contains(p), "element without frame must escalate to its ancestor")
	v.CanvasHeight()
	sf := frameOf(s)
	require.NotNil(t, sf)
	text := sf.Children()[0]
	assert.Equal(t, css.Black, text.Style().ComputedProperty("color", text))
	//
	reconstructions := v.Stats().Reconstructions
	p.SetInlineStyle("color: red")
	assert.Equal(t, 0, v.pendingReconstruct.len(), "color change must not reconstruct")
	assert.True(t, v.pendingReflow.contains(frameOf(p)))
	assert.True(t, frameOf(p).IsFlowDirty())
	v.CanvasHeight()
	assert.Equal(t, reconstructions, v.Stats().Reconstructions)
	red, _ := css.ParseColor(css.Ident("red"))
	assert.Equal(t, red, text.Style().ComputedProperty("color", text), "inherited color must be purged")
	assert.True(t, text == frameOf(s).Children()[0], "frames must survive a style change")
}

func TestUnchangedStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.view")
	defer teardown()
	//
	doc := parse(t, twoParagraphs)
	v := newView(doc, 200)
	v.CanvasHeight()
	a := byID(t, doc, "a")
	a.SetAttribute("title", "no styling")
	assert.Equal(t, 0, v.pendingReflow.len())
	assert.Equal(t, 0, v.pendingReconstruct.len())
}

func TestIdempotence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.view")
	defer teardown()
	//
	doc := parse(t, twoParagraphs)
	v := newView(doc, 200)
	v.CanvasHeight()
	before := v.Stats()
	a := byID(t, doc, "a")
	a.AddText(" more")
	a.AddText(" text")
	assert.Equal(t, 1, v.pendingReconstruct.len())
	v.CanvasHeight()
	v.CanvasHeight()
	assert.Equal(t, before.Reconstructions+1, v.Stats().Reconstructions)
	assert.Equal(t, before.Rebuilds, v.Stats().Rebuilds)
}

func TestReflowBubbling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.view")
	defer teardown()
	//
	doc := parse(t, `<html><body style="margin: 0">`+
		`<div id="d" style="width: 100pt; height: 50pt"><p id="p" style="margin: 0">x</p></div>`+
		`<p style="margin: 0">after</p></body></html>`)
	v := newView(doc, 200)
	assert.InDelta(t, 62.0, v.CanvasHeight(), 0.01)
	d, p := byID(t, doc, "d"), byID(t, doc, "p")
	require.True(t, frameOf(d).IsFlowMaster())
	//
	before := v.Stats()
	p.AddText(" more text")
	assert.InDelta(t, 62.0, v.CanvasHeight(), 0.01)
	assert.Equal(t, before.Reflows+1, v.Stats().Reflows, "reflow must stop at the flow master")
	//
	before = v.Stats()
	d.SetInlineStyle("width: 100pt; height: 80pt")
	assert.InDelta(t, 92.0, v.CanvasHeight(), 0.01)
	assert.Equal(t, before.Reflows+3, v.Stats().Reflows, "metrics change must bubble up to the root")
	assert.Equal(t, before.Reconstructions, v.Stats().Reconstructions)
	after := frameOf(d).Parent().Children()[1]
	assert.InDelta(t, 80.0, after.BoundingBox().Y, 0.01, "siblings must be re-positioned")
}

func TestViewportResize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.view")
	defer teardown()
	//
	doc := parse(t, `<html><head><style>body, p { margin: 0 }</style></head>`+
		`<body><p>aaaa bbbb</p></body></html>`)
	v := newView(doc, 30)
	assert.InDelta(t, 24.0, v.CanvasHeight(), 0.01)
	v.SetViewportWidth(100)
	assert.InDelta(t, 12.0, v.CanvasHeight(), 0.01)
	assert.InDelta(t, 100.0, v.CanvasWidth(), 0.01)
	assert.Equal(t, 100.0, v.ViewportWidth())
}

func TestScrolledDraw(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.view")
	defer teardown()
	//
	doc := parse(t, twoParagraphs)
	byID(t, doc, "a").Parent().SetInlineStyle("background-color: red")
	v := newView(doc, 200)
	v.SetViewportY(20)
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	v.Draw(img)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(150, 2))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(150, 6))
	b := byID(t, doc, "b")
	assert.Equal(t, b, v.ElementsForPoint(5, 0)[2], "hit testing must respect the viewport offset")
}

func TestConsistencyViolation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.view")
	defer teardown()
	//
	doc := parse(t, `<html><body><div id="d1"><p id="p">x</p></div><div id="d2">y</div></body></html>`)
	v := newView(doc, 200)
	h := v.CanvasHeight()
	p, d2 := byID(t, doc, "p"), byID(t, doc, "d2")
	p.SetFrame(d2.Frame()) // stale frame reference
	v.OnElementModified(p)
	v.OnElementModified(d2)
	assert.InDelta(t, h, v.CanvasHeight(), 0.001)
	assert.Equal(t, 1, v.Stats().Skipped)
	assert.Equal(t, 1, v.Stats().Reconstructions, "other updates must not be affected")
}

func TestSetDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.view")
	defer teardown()
	//
	doc1 := parse(t, twoParagraphs)
	v := newView(doc1, 200)
	v.CanvasHeight()
	doc2 := parse(t, `<html><body style="margin: 0"><p style="margin: 0">only</p></body></html>`)
	v.SetDocument(doc2)
	assert.Nil(t, doc1.Root().Frame())
	byID(t, doc1, "a").AddText("ignored")
	assert.Equal(t, 1, v.pendingReconstruct.len(), "only the rebuild of the new root is pending")
	assert.InDelta(t, 12.0, v.CanvasHeight(), 0.01)
	assert.True(t, v.Document() == doc2)
	//
	v.SetDocument(nil)
	assert.Equal(t, 0.0, v.CanvasHeight())
	assert.Empty(t, v.ElementsForPoint(1, 1))
}

func TestNewRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.view")
	defer teardown()
	//
	doc := parse(t, twoParagraphs)
	v := newView(doc, 200)
	v.CanvasHeight()
	root := doc.CreateElement("div")
	root.AddText("new root")
	byID(t, doc, "a").AddText("superseded")
	doc.SetRoot(root)
	assert.Equal(t, 1, v.pendingReconstruct.len())
	assert.Nil(t, doc.ElementByID("a"), "id index of the old tree must be discarded")
	root.AddText(" changed")
	assert.Equal(t, 1, v.pendingReconstruct.len(), "rebuild subsumes other reconstructions")
	assert.InDelta(t, 12.0, v.CanvasHeight(), 0.01)
	assert.Equal(t, 2, v.Stats().Rebuilds)
}

func TestConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.view")
	defer teardown()
	//
	c := ConfigFrom(nil)
	assert.Equal(t, Config{Width: 595, Height: 842, DPI: 72, FontSize: 12}, c)
	c = ConfigFrom(testconfig.Conf{
		"viewport.width": 300,
		"viewport.y":     10,
		"device.dpi":     144,
	})
	assert.Equal(t, 300.0, c.Width)
	assert.Equal(t, 842.0, c.Height)
	assert.Equal(t, 10.0, c.Y)
	assert.Equal(t, 144.0, c.DPI)
	v := New(nil, nil, testconfig.Conf{"device.dpi": 144})
	assert.Equal(t, 144.0, v.Device().DPI())
	c = ConfigFrom(testconfig.Conf{
		"viewport.width":  595.5,
		"viewport.height": "420.25",
	})
	assert.Equal(t, 595.5, c.Width, "fractional lengths must be kept")
	assert.Equal(t, 420.25, c.Height)
}

func TestExplicitInheritAfterStyleChange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.view")
	defer teardown()
	//
	doc := parse(t, `<html><body style="margin: 0">`+
		`<div id="d" style="width: 100pt"><p id="p" style="margin: 0; width: inherit">x</p></div>`+
		`</body></html>`)
	v := newView(doc, 200)
	v.CanvasHeight()
	d, p := byID(t, doc, "d"), byID(t, doc, "p")
	assert.InDelta(t, 100.0, frameOf(p).LayoutMetrics().Width, 0.01)
	d.SetInlineStyle("width: 50pt")
	v.CanvasHeight()
	pf := frameOf(p)
	assert.Equal(t, css.Pt(50), pf.Style().ComputedProperty("width", pf),
		"explicitly inherited width must follow the parent")
	assert.InDelta(t, 50.0, pf.LayoutMetrics().Width, 0.01)
}

func TestWrappedReconstruction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.view")
	defer teardown()
	//
	doc := parse(t, `<html><body><div id="d">one <span id="s">two</span><p>blk</p></div></body></html>`)
	v := newView(doc, 200)
	v.CanvasHeight()
	s := byID(t, doc, "s")
	require.True(t, frameOf(s).Parent().IsAnonymous(), "span must be wrapped with its inline siblings")
	block := doc.CreateElement("div")
	block.AddText("inner")
	s.AddChild(block)
	incremental := frame.Dump(v.Root())
	t.Logf("incremental:\n%s", incremental)
	assert.False(t, frameOf(s).Parent().IsAnonymous(), "span holding a block must not stay wrapped")
	fresh := frame.Dump(newView(doc, 200).Root())
	t.Logf("fresh:\n%s", fresh)
	assert.Equal(t, fresh, incremental, "reconstruction must yield the frame tree of a full build")
}
