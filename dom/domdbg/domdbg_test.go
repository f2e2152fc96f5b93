package domdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/docview/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintAndGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.dom")
	defer teardown()
	//
	doc, err := dom.Parse(strings.NewReader(`<html><body>
<p style="color: red">Hello <b>World</b></p></body></html>`))
	require.NoError(t, err)
	out := Print(doc.Root())
	t.Logf("content tree:\n%s", out)
	assert.Contains(t, out, "<body>")
	assert.Contains(t, out, "color:red")
	assert.Contains(t, out, `"World"`)
	var buf bytes.Buffer
	ToGraphViz(doc, &buf)
	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.Contains(t, dot, `"body"`)
	assert.Contains(t, dot, "color:")
	assert.True(t, strings.HasSuffix(dot, "}\n"))
}
