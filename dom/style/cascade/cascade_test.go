package cascade_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/docview/css"
	"github.com/npillmayer/docview/device"
	"github.com/npillmayer/docview/dom/style"
	"github.com/npillmayer/docview/dom/style/cascade"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// box is a minimal implementation of cascade.Box.
type box struct {
	style  *cascade.StyleNode
	cache  cascade.Cache
	parent *box
}

func newBox(sn *cascade.StyleNode, parent *box) *box {
	return &box{style: sn, cache: make(cascade.Cache), parent: parent}
}

func (b *box) Style() *cascade.StyleNode { return b.style }
func (b *box) Cache() cascade.Cache      { return b.cache }
func (b *box) ParentBox() cascade.Box {
	if b.parent == nil {
		return nil
	}
	return b.parent
}

func decls(t *testing.T, text string) *style.DeclarationSet {
	d, err := style.ParseDeclarations(text)
	require.NoError(t, err)
	return style.NewDeclarationSet(d...)
}

func TestStyleNodeSharing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.cascade")
	defer teardown()
	//
	st := cascade.NewStyleTree(device.NewReferenceDevice(72, 12))
	n1 := st.StyleNode(decls(t, "color: red"), decls(t, "margin: 0"))
	n2 := st.StyleNode(decls(t, "color: red"), decls(t, "margin: 0"))
	assert.True(t, n1 == n2, "equal cascade paths must share a style node")
	assert.Equal(t, 3, st.Size())
	n3 := st.StyleNode(decls(t, "color: red"), nil, decls(t, "margin: 1pt"))
	assert.False(t, n1 == n3)
	assert.True(t, n1.CascadeParent() == n3.CascadeParent(), "common prefix must be shared")
	assert.True(t, st.StyleNode() == st.Root())
	t.Logf("style tree:\n%s", st.Dump())
	assert.True(t, strings.Contains(st.Dump(), "margin-top") || strings.Contains(st.Dump(), "margin:"))
}

func TestSpecifiedProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.cascade")
	defer teardown()
	//
	st := cascade.NewStyleTree(nil)
	l0 := decls(t, "color: red")
	l1 := decls(t, "color: blue")
	blue, _ := css.ParseColor(css.Ident("blue"))
	red, _ := css.ParseColor(css.Ident("red"))
	assert.Equal(t, blue, st.StyleNode(l0, l1).SpecifiedProperty("color"))
	assert.Equal(t, red, st.StyleNode(l0).SpecifiedProperty("color"))
	assert.Equal(t, css.Inherit, st.Root().SpecifiedProperty("color"))
	assert.Equal(t, css.Black, st.Root().ComputedProperty("color", nil), "initial color is black")
	assert.Equal(t, css.Pt(0), st.Root().SpecifiedProperty("margin-top"))
	// important declarations win within a layer
	n := st.StyleNode(decls(t, "color: green !important; color: blue"))
	green, _ := css.ParseColor(css.Ident("green"))
	assert.Equal(t, green, n.SpecifiedProperty("color"))
}

func TestValidationRecovery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.cascade")
	defer teardown()
	//
	st := cascade.NewStyleTree(nil)
	n := st.StyleNode(decls(t, "color: not-a-color; font-size: 12pt"))
	assert.Equal(t, css.Inherit, n.SpecifiedProperty("color"))
	assert.Equal(t, css.Pt(12), n.SpecifiedProperty("font-size"))
	assert.Equal(t, css.Pt(12), n.ComputedProperty("font-size", newBox(n, nil)))
}

func TestInheritance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.cascade")
	defer teardown()
	//
	st := cascade.NewStyleTree(device.NewReferenceDevice(72, 12))
	rootStyle := st.StyleNode(decls(t, "color: red; font-size: 20pt"))
	childStyle := st.StyleNode(decls(t, "margin-top: 1em"))
	root := newBox(rootStyle, nil)
	child := newBox(childStyle, root)
	red, _ := css.ParseColor(css.Ident("red"))
	assert.Equal(t, red, childStyle.ComputedProperty("color", child))
	assert.Equal(t, red, child.cache["color"], "inherited value must be cached at the box")
	assert.Equal(t, 20.0, cascade.FontSize(child))
	assert.Equal(t, css.Pt(20), childStyle.ComputedProperty("margin-top", child))
	// a second box sharing the style node under a different parent
	root2 := newBox(st.StyleNode(decls(t, "font-size: 10pt")), nil)
	child2 := newBox(childStyle, root2)
	assert.Equal(t, css.Pt(10), childStyle.ComputedProperty("margin-top", child2),
		"em-relative values must not be shared between boxes")
	assert.Equal(t, css.Black, childStyle.ComputedProperty("color", child2))
	// the root box computes inherited properties from their initial value
	assert.Equal(t, css.Pt(12), st.Root().ComputedProperty("font-size", newBox(st.Root(), nil)))
}

func TestFontSizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.cascade")
	defer teardown()
	//
	st := cascade.NewStyleTree(device.NewReferenceDevice(72, 12))
	parent := newBox(st.StyleNode(decls(t, "font-size: 20pt")), nil)
	tests := []struct {
		decl string
		pt   float64
	}{
		{"font-size: 2em", 40},
		{"font-size: 1ex", 10},
		{"font-size: 50%", 10},
		{"font-size: larger", 22},
		{"font-size: smaller", 18},
		{"font-size: x-large", 18},
		{"font-size: 16px", 12},
	}
	for _, test := range tests {
		b := newBox(st.StyleNode(decls(t, test.decl)), parent)
		assert.InDelta(t, test.pt, cascade.FontSize(b), 0.0001, test.decl)
	}
}

func TestFontWeights(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.cascade")
	defer teardown()
	//
	st := cascade.NewStyleTree(nil)
	parent := newBox(st.StyleNode(decls(t, "font-weight: bold")), nil)
	weight := func(text string) float64 {
		n := st.StyleNode(decls(t, text))
		return n.ComputedProperty("font-weight", newBox(n, parent)).Num()
	}
	assert.Equal(t, 400.0, weight("font-weight: normal"))
	assert.Equal(t, 700.0, weight("font-weight: bold"))
	assert.Equal(t, 900.0, weight("font-weight: bolder"))
	assert.Equal(t, 400.0, weight("font-weight: lighter"))
	assert.Equal(t, 600.0, weight("font-weight: 600"))
	assert.Equal(t, 700.0, weight("color: red"), "font-weight is inherited")
}

func TestBorders(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.cascade")
	defer teardown()
	//
	st := cascade.NewStyleTree(nil)
	n := st.StyleNode(decls(t, "color: blue; border-top-width: 4pt; border-left: thick solid"))
	b := newBox(n, nil)
	assert.Equal(t, css.Pt(0), n.ComputedProperty("border-top-width", b), "border style none zeroes the width")
	assert.Equal(t, css.Pt(5), n.ComputedProperty("border-left-width", b))
	blue, _ := css.ParseColor(css.Ident("blue"))
	assert.Equal(t, blue, n.ComputedProperty("border-left-color", b), "border color falls back to color")
}

func TestRelativePosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.cascade")
	defer teardown()
	//
	st := cascade.NewStyleTree(nil)
	n := st.StyleNode(decls(t, "position: relative; top: 10pt; left: 1em; font-size: 10pt"))
	b := newBox(n, nil)
	assert.Equal(t, css.Pt(-10), n.ComputedProperty("bottom", b))
	assert.Len(t, b.cache, 5, "all four offsets plus direction expected in box cache")
	assert.Equal(t, css.Pt(10), b.cache["left"])
	assert.Equal(t, css.Pt(-10), b.cache["right"])
	static := st.StyleNode(decls(t, "top: 10pt"))
	assert.Equal(t, css.Auto, static.ComputedProperty("top", newBox(static, nil)))
}

func TestLineHeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.cascade")
	defer teardown()
	//
	st := cascade.NewStyleTree(nil)
	lh := func(text string) css.Value {
		n := st.StyleNode(decls(t, "font-size: 10pt; "+text))
		return n.ComputedProperty("line-height", newBox(n, nil))
	}
	assert.Equal(t, css.Pt(15), lh("line-height: 1.5"))
	assert.Equal(t, css.Pt(15), lh("line-height: 150%"))
	assert.Equal(t, css.Pt(20), lh("line-height: 2em"))
	assert.Equal(t, css.Normal, lh("line-height: normal"))
	assert.Equal(t, css.Pt(9), lh("line-height: 9pt"))
}

func TestSpecifiedDifferences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.cascade")
	defer teardown()
	//
	st := cascade.NewStyleTree(nil)
	ua := decls(t, "display: block; margin-top: 1em")
	n1 := st.StyleNode(ua, decls(t, "color: red"))
	n2 := st.StyleNode(ua, decls(t, "color: blue; display: none"))
	assert.Equal(t, []string{"color", "display"}, n1.SpecifiedDifferences(n2))
	assert.Empty(t, n1.SpecifiedDifferences(n1))
	n3 := st.StyleNode(ua)
	assert.Equal(t, []string{"color"}, n1.SpecifiedDifferences(n3))
}
