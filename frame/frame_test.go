package frame

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/npillmayer/docview/css"
	"github.com/npillmayer/docview/device"
	"github.com/npillmayer/docview/dom"
	"github.com/npillmayer/docview/dom/style/cascade"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, markup string) (*dom.Document, *Builder) {
	doc, err := dom.Parse(strings.NewReader(markup))
	require.NoError(t, err)
	st := cascade.NewStyleTree(device.NewReferenceDevice(72, 12))
	return doc, NewBuilder(st, doc)
}

// layout builds, flows and positions the frames of a document.
func layout(t *testing.T, doc *dom.Document, b *Builder, width float64) *Box {
	f := b.BuildFrame(doc.Root())
	require.NotNil(t, f)
	root := f.(*Box)
	root.SetContainingBlock(width, -1)
	root.Flow()
	root.ResolveBoundingBox(0, 0)
	t.Logf("frames:\n%s", Dump(root))
	return root
}

func colorOf(name string) css.Value {
	c, _ := css.ParseColor(css.Ident(name))
	return c
}

func TestCascadeOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.frame")
	defer teardown()
	//
	doc, b := setup(t, `<html><head><style>
	  p.c { color: green !important }
	  #x { color: blue }
	  p { color: red; margin-top: 3pt }
	</style></head><body>
	<p id="x" class="c" style="color: yellow">one</p>
	<p id="y" style="color: yellow">two</p>
	<p id="z" class="d">three</p>
	<p id="w" class="c" style="color: black !important">four</p>
	</body></html>`)
	root := layout(t, doc, b, 200)
	color := func(id string) css.Value {
		e := doc.ElementByID(id)
		require.NotNil(t, e, id)
		f := e.Frame()
		require.NotNil(t, f, id)
		return f.Style().ComputedProperty("color", f)
	}
	assert.Equal(t, colorOf("green"), color("x"), "important author declaration beats inline style")
	assert.Equal(t, colorOf("yellow"), color("y"), "inline style beats author rules")
	assert.Equal(t, colorOf("red"), color("z"))
	assert.Equal(t, colorOf("black"), color("w"), "important inline style wins")
	z := doc.ElementByID("z").Frame()
	pt, ok := cascade.Length("margin-top", z)
	assert.True(t, ok)
	assert.Equal(t, 3.0, pt, "author rule beats user agent style")
	assert.Equal(t, colorOf("black"), root.Style().ComputedProperty("color", root))
}

func TestSpecificityOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.frame")
	defer teardown()
	//
	doc, b := setup(t, `<html><head><style>
	  div p { color: blue }
	  p { color: red }
	  p { color: green }
	</style></head><body><div><p id="x">one</p></div></body></html>`)
	e := doc.ElementByID("x")
	require.NotNil(t, e)
	matches := b.matchingRules(e)
	require.Len(t, matches, 3)
	assert.Equal(t, 1, matches[0].rule.order)
	assert.Equal(t, 2, matches[1].rule.order)
	assert.Equal(t, 0, matches[2].rule.order, "more specific rule must come last")
	assert.Equal(t, colorOf("blue"), b.StyleNode(e).SpecifiedProperty("color"))
}

func TestBuildFrames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.frame")
	defer teardown()
	//
	doc, b := setup(t, `<html><body><div id="d">one <span>two</span><p>three</p></div>`+
		`<p id="hidden" style="display: none">x</p></body></html>`)
	root := layout(t, doc, b, 200)
	assert.Equal(t, blockBox, root.kind)
	body := root.boxes()[0]
	require.Len(t, body.boxes(), 1, "hidden paragraph must not generate a box")
	assert.Nil(t, doc.ElementByID("hidden").Frame())
	div := body.boxes()[0]
	assert.True(t, div == doc.ElementByID("d").Frame())
	children := div.boxes()
	require.Len(t, children, 2)
	anon := children[0]
	assert.True(t, anon.IsAnonymous())
	assert.Equal(t, blockBox, anon.kind)
	assert.True(t, anon.Element() == div.Element(), "anonymous boxes report the element of their parent")
	require.Len(t, anon.boxes(), 2)
	assert.Equal(t, textBox, anon.boxes()[0].kind)
	assert.Equal(t, inlineBox, anon.boxes()[1].kind)
	assert.Equal(t, blockBox, children[1].kind)
	assert.Equal(t, 1, div.IndexOfChild(children[1]))
}

func TestInlineBecomesBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.frame")
	defer teardown()
	//
	doc, b := setup(t, `<html><body><span id="s"><div>block</div></span></body></html>`)
	layout(t, doc, b, 200)
	s := doc.ElementByID("s").Frame().(*Box)
	assert.Equal(t, blockBox, s.kind)
}

func TestLineBreaking(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.frame")
	defer teardown()
	//
	markup := `<html><head><style>body, p { margin: 0 }</style></head>` +
		`<body><p id="p">aaaa bbbb</p></body></html>`
	doc, b := setup(t, markup)
	layout(t, doc, b, 30)
	p := doc.ElementByID("p").Frame().(*Box)
	text := p.boxes()[0]
	assert.Len(t, text.frags, 2, "two words on two lines expected")
	assert.InDelta(t, 24.0, p.LayoutMetrics().Height, 0.01)
	assert.InDelta(t, 30.0, p.LayoutMetrics().Width, 0.01)
	//
	doc, b = setup(t, markup)
	layout(t, doc, b, 100)
	p = doc.ElementByID("p").Frame().(*Box)
	text = p.boxes()[0]
	require.Len(t, text.frags, 1)
	assert.InDelta(t, 51.0, text.frags[0].W, 0.01)
	assert.InDelta(t, 12.0, p.LayoutMetrics().Height, 0.01)
}

func TestTextAlignAndWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.frame")
	defer teardown()
	//
	doc, b := setup(t, `<html><head><style>body { margin: 0 }</style></head><body>`+
		`<div id="d" style="width: 60pt; margin: 0 auto; padding: 2pt; border: 1pt solid red;`+
		` text-align: center">ab</div></body></html>`)
	layout(t, doc, b, 100)
	d := doc.ElementByID("d").Frame().(*Box)
	assert.Equal(t, 60.0, d.width)
	assert.InDelta(t, 17.0, d.margins[left], 0.001, "auto margins center the box")
	bbox := d.BoundingBox()
	assert.InDelta(t, 17.0, bbox.X, 0.001)
	assert.InDelta(t, 66.0, bbox.W, 0.001)
	text := d.boxes()[0]
	require.Len(t, text.frags, 1)
	assert.InDelta(t, 24.0, text.frags[0].X, 0.01, "text must be centered")
	x, y := d.ContentOrigin()
	assert.InDelta(t, 20.0, x, 0.001)
	assert.InDelta(t, 3.0, y, 0.001)
}

func TestRelativePositionAndHitTesting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.frame")
	defer teardown()
	//
	doc, b := setup(t, `<html><head><style>body, p { margin: 0 }</style></head><body>`+
		`<p id="a">first</p><p id="b" style="position: relative; top: 10pt; left: 5pt">second</p>`+
		`</body></html>`)
	root := layout(t, doc, b, 100)
	pb := doc.ElementByID("b").Frame().(*Box)
	assert.InDelta(t, 5.0, pb.BoundingBox().X, 0.001)
	assert.InDelta(t, 22.0, pb.BoundingBox().Y, 0.01)
	frames := root.FramesForPoint(6, 23)
	require.Len(t, frames, 4)
	assert.True(t, frames[0] == root, "outermost frame first")
	assert.True(t, frames[2].Element() == doc.ElementByID("b"))
	assert.True(t, frames[3].Element() == doc.ElementByID("b"))
	assert.Len(t, root.FramesForPoint(90, 5), 3, "no text right of the first word")
	assert.Empty(t, root.FramesForPoint(5, 100))
}

func TestPurgeStyleCache(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.frame")
	defer teardown()
	//
	doc, b := setup(t, `<html><body id="body" style="font-size: 10pt">`+
		`<p id="p" style="margin-top: 1em">x</p></body></html>`)
	layout(t, doc, b, 100)
	body := doc.ElementByID("body")
	p := doc.ElementByID("p").Frame().(*Box)
	assert.Equal(t, 10.0, p.margins[top])
	old := body.Frame().Style()
	body.SetInlineStyle("font-size: 20pt")
	sn := b.StyleNode(body)
	diffs := old.SpecifiedDifferences(sn)
	assert.Equal(t, []string{"font-size"}, diffs)
	bf := body.Frame().(*Box)
	bf.SetStyle(sn)
	bf.PurgeStyleCache(diffs)
	_, cached := p.cache["margin-top"]
	assert.False(t, cached, "dependent values of descendants must be purged")
	bf.Flow()
	assert.Equal(t, 20.0, cascade.FontSize(p))
	assert.Equal(t, 20.0, p.margins[top])
}

func TestExpandDependents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.frame")
	defer teardown()
	//
	names := expandDependents([]string{"color", "border-top-style"})
	assert.Contains(t, names, "border-left-color")
	assert.Contains(t, names, "border-top-width")
	assert.NotContains(t, names, "border-left-width")
	names = expandDependents([]string{"top"})
	assert.ElementsMatch(t, []string{"top", "right", "bottom", "left"}, names)
}

func TestDrawCull(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.frame")
	defer teardown()
	//
	doc, b := setup(t, `<html><body style="margin: 0; background-color: red">`+
		`<p style="margin: 0; border-top: 2pt solid blue">x</p></body></html>`)
	root := layout(t, doc, b, 50)
	img := image.NewRGBA(image.Rect(0, 0, 50, 50))
	root.DrawCull(&Canvas{Image: img, Clip: img.Bounds(), Scale: 1})
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, img.RGBAAt(40, 1))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(40, 4))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(40, 30), "nothing drawn below the body")
}
