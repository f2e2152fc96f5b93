package style_test

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/docview/css"
	"github.com/npillmayer/docview/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestParseDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.style")
	defer teardown()
	//
	decls, err := style.ParseDeclarations("color: red; Margin: 5px 10px !important")
	require.NoError(t, err)
	require.Len(t, decls, 2)
	assert.Equal(t, "color", decls[0].Property)
	assert.Equal(t, []css.Value{css.Ident("red")}, decls[0].Values)
	assert.Equal(t, "margin", decls[1].Property)
	assert.True(t, decls[1].Important)
	//
	decls, err = style.ParseDeclarations("display:none")
	require.NoError(t, err)
	require.Len(t, decls, 1)
	assert.Equal(t, css.None, decls[0].Values[0])
}

func TestParseRecovery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.style")
	defer teardown()
	//
	decls, err := style.ParseDeclarations("color red; width: 12furlong; height: 3pt")
	assert.Error(t, err)
	require.Len(t, decls, 1, "expected only the valid declaration to survive")
	assert.Equal(t, "height", decls[0].Property)
}

func TestDeclarationSetKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.style")
	defer teardown()
	//
	a, _ := style.ParseDeclarationSets("color: red; margin: 0")
	b, _ := style.ParseDeclarationSets("color:red;margin:0;")
	c, _ := style.ParseDeclarationSets("margin: 0; color: red")
	assert.True(t, a.Equal(b), "sets with equal content must be equal")
	assert.False(t, a.Equal(c), "order of declarations matters")
	n, i := style.ParseDeclarationSets("color: red !important")
	assert.Nil(t, n)
	assert.Equal(t, 1, i.Len())
	var empty *style.DeclarationSet
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, "", empty.Key())
	// -0 and 0 compare equal and must share a key
	negZero := style.NewDeclarationSet(style.Declaration{
		Property: "margin-top",
		Values:   []css.Value{css.Pt(math.Copysign(0, -1))},
	})
	zero := style.NewDeclarationSet(style.Declaration{
		Property: "margin-top",
		Values:   []css.Value{css.Pt(0)},
	})
	assert.Equal(t, zero.Key(), negZero.Key())
	assert.True(t, zero.Equal(negZero))
}

func TestShorthandExpansion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.style")
	defer teardown()
	//
	expand := func(text string) map[string]css.Value {
		decls, err := style.ParseDeclarations(text)
		require.NoError(t, err)
		require.Len(t, decls, 1)
		a, err := style.Expand(decls[0])
		require.NoError(t, err)
		m := make(map[string]css.Value)
		for _, x := range a {
			m[x.Property] = x.Value
		}
		return m
	}
	m := expand("margin: 5px 10px")
	assert.Equal(t, css.Dimen(5, css.PX), m["margin-top"])
	assert.Equal(t, css.Dimen(10, css.PX), m["margin-right"])
	assert.Equal(t, css.Dimen(5, css.PX), m["margin-bottom"])
	assert.Equal(t, css.Dimen(10, css.PX), m["margin-left"])
	m = expand("padding: 1pt 2pt 3pt")
	assert.Equal(t, css.Pt(1), m["padding-top"])
	assert.Equal(t, css.Pt(2), m["padding-right"])
	assert.Equal(t, css.Pt(3), m["padding-bottom"])
	assert.Equal(t, css.Pt(2), m["padding-left"])
	m = expand("border-width: 1pt 2pt 3pt 4pt")
	assert.Equal(t, css.Pt(4), m["border-left-width"])
	m = expand("border-top: red 2px solid")
	assert.Equal(t, css.Dimen(2, css.PX), m["border-top-width"])
	assert.Equal(t, css.Ident("solid"), m["border-top-style"])
	assert.Equal(t, css.RGBA(1, 0, 0, 1), m["border-top-color"])
	m = expand("border: dashed")
	assert.Len(t, m, 12)
	assert.Equal(t, css.Ident("medium"), m["border-left-width"])
	m = expand("margin: inherit")
	assert.Len(t, m, 4)
	assert.Equal(t, css.Inherit, m["margin-left"])
	m = expand("font-family: \"Times New Roman\", Georgia, sans-serif")
	assert.Equal(t, css.String("Times New Roman,georgia,sans-serif"), m["font-family"])
	m = expand("color: initial")
	assert.Equal(t, css.Black, m["color"])
}

func TestValidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.style")
	defer teardown()
	//
	for _, text := range []string{"color: not-a-color", "margin: 1px 2px 3px 4px 5px",
		"padding: -3px", "font-weight: 450", "display: sideways", "border: solid solid"} {
		decls, err := style.ParseDeclarations(text)
		require.NoError(t, err)
		_, err = style.Expand(decls[0])
		assert.True(t, errors.Is(err, style.ErrInvalidDeclaration), "expected %q to be invalid, got %v", text, err)
	}
	decls, _ := style.ParseDeclarations("frobnicate: 3")
	_, err := style.Expand(decls[0])
	assert.True(t, errors.Is(err, style.ErrUnknownProperty))
	//
	set := style.NewDeclarationSet(mustParse(t, "color: not-a-color; font-size: 12pt")...)
	normal, important := set.Assignments()
	assert.Empty(t, important)
	require.Len(t, normal, 1)
	assert.Equal(t, style.Assignment{Property: "font-size", Value: css.Pt(12)}, normal[0])
}

func TestRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.style")
	defer teardown()
	//
	assert.True(t, style.IsInherited("color"))
	assert.False(t, style.IsInherited("margin-top"))
	assert.Equal(t, css.Black, style.InitialValue("color"))
	def, ok := style.Lookup("margin")
	require.True(t, ok)
	assert.True(t, def.IsShorthand())
	assert.Len(t, def.Targets, 4)
	assert.Contains(t, style.Longhands(), "border-bottom-color")
	assert.NotContains(t, style.Longhands(), "border")
}

func TestUserAgentDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.style")
	defer teardown()
	//
	assert.Equal(t, css.Ident("block"), style.UserAgentDisplay("p"))
	assert.Equal(t, css.None, style.UserAgentDisplay("head"))
	assert.Equal(t, css.Ident("inline"), style.UserAgentDisplay("span"))
	assert.Equal(t, css.Ident("inline"), style.UserAgentDisplay(style.TextElementName))
	p1 := style.UserAgentDeclarations("p")
	p2 := style.UserAgentDeclarations("P")
	assert.True(t, p1 == p2, "user agent sets should be shared")
	assert.Equal(t, 3, p1.Len())
	//
	set := style.IntrinsicDeclarations("td", []html.Attribute{
		{Key: "bgcolor", Val: "yellow"},
		{Key: "width", Val: "100"},
		{Key: "class", Val: "x"},
	})
	require.NotNil(t, set)
	assert.Equal(t, "background-color", set.At(0).Property)
	assert.Equal(t, css.Dimen(100, css.PX), set.At(1).Values[0])
	assert.Nil(t, style.IntrinsicDeclarations("td", nil))
}

func mustParse(t *testing.T, text string) []style.Declaration {
	decls, err := style.ParseDeclarations(text)
	require.NoError(t, err)
	return decls
}
