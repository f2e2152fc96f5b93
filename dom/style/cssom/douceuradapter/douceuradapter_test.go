package douceuradapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/docview/css"
	"github.com/npillmayer/docview/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var sheet = `
h1, h2 { color: blue; margin: 0 !important }
p { margin: 1em 0; color: not-a-color }
@media print { p { color: black } }
`

func TestParseStylesheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.style")
	defer teardown()
	//
	s, err := Parse(sheet)
	require.NoError(t, err)
	assert.False(t, s.Empty())
	rules := s.Rules()
	require.Len(t, rules, 2, "at-rules are skipped")
	assert.Equal(t, []string{"h1", "h2"}, rules[0].Selectors())
	assert.Equal(t, []string{"color", "margin"}, rules[0].Properties())
	assert.True(t, rules[0].IsImportant("margin"))
	assert.False(t, rules[0].IsImportant("color"))
	normal, important := cssom.DeclarationSets(rules[0])
	require.NotNil(t, normal)
	require.NotNil(t, important)
	assert.Equal(t, 1, normal.Len())
	assert.Equal(t, "margin", important.At(0).Property)
	assert.Equal(t, []css.Value{css.Number(0)}, important.At(0).Values)
}

func TestInvalidDeclarationsAreDropped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.style")
	defer teardown()
	//
	s, err := Parse(sheet)
	require.NoError(t, err)
	p := s.Rules()[1]
	normal, important := cssom.DeclarationSets(p)
	assert.Nil(t, important)
	require.NotNil(t, normal)
	assert.Equal(t, 1, normal.Len(), "invalid color must be dropped")
	assert.Equal(t, "margin", normal.At(0).Property)
}

func TestAppendRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.style")
	defer teardown()
	//
	s1, err := Parse("p { color: red }")
	require.NoError(t, err)
	s2, err := Parse("div { color: green }")
	require.NoError(t, err)
	s1.AppendRules(s2)
	rules := s1.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "div", rules[1].Selector())
}

func TestExtractStyleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.style")
	defer teardown()
	//
	doc := `<html><head><style>p { color: red }</style></head>
<body><style>div { color: green }</style><p>Hello</p></body></html>`
	h, err := html.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	sheets := ExtractStyleElements(h)
	require.Len(t, sheets, 2)
	assert.Equal(t, "p", sheets[0].Rules()[0].Selector())
	assert.Equal(t, "div", sheets[1].Rules()[0].Selector())
}
