package tree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestChildManipulation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.frame")
	defer teardown()
	//
	root := NewNode("root")
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	root.AddChild(a).AddChild(c)
	root.InsertChildAt(1, b)
	assert.Equal(t, []*Node[string]{a, b, c}, root.Children())
	assert.Equal(t, 1, root.IndexOfChild(b))
	assert.True(t, b.Parent() == root)
	//
	d := NewNode("d")
	assert.True(t, root.ReplaceChild(b, d))
	assert.Nil(t, b.Parent())
	assert.Equal(t, []*Node[string]{a, d, c}, root.Children())
	assert.True(t, root.ReplaceChild(d, nil))
	assert.Equal(t, []*Node[string]{a, c}, root.Children())
	assert.False(t, root.ReplaceChild(d, nil))
	//
	c.Isolate()
	assert.Equal(t, 1, root.ChildCount())
	_, ok := root.Child(1)
	assert.False(t, ok)
	assert.Nil(t, root.RemoveChildAt(5))
}

func TestReparenting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.frame")
	defer teardown()
	//
	r1, r2 := NewNode(1), NewNode(2)
	ch := NewNode(3)
	r1.AddChild(ch)
	r2.AddChild(ch)
	assert.Equal(t, 0, r1.ChildCount(), "child must have been moved")
	assert.True(t, ch.Parent() == r2)
}

func TestTraversal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.frame")
	defer teardown()
	//
	root := NewNode("r")
	x, y := NewNode("x"), NewNode("y")
	root.AddChild(x).AddChild(y)
	x.AddChild(NewNode("x1")).AddChild(NewNode("x2"))
	var pre, post []string
	TopDown(root, func(n *Node[string], depth int) bool {
		pre = append(pre, n.Payload)
		return n != y
	})
	BottomUp(root, func(n *Node[string], depth int) bool {
		post = append(post, n.Payload)
		return true
	})
	assert.Equal(t, []string{"r", "x", "x1", "x2", "y"}, pre)
	assert.Equal(t, []string{"x1", "x2", "x", "y", "r"}, post)
	leafs := DescendentsWith(root, NodeIsLeaf[string]())
	assert.Len(t, leafs, 3)
	x2, _ := x.Child(1)
	assert.True(t, AncestorWith(x2, Whatever[string]()) == x)
	assert.Nil(t, AncestorWith(root, Whatever[string]()))
}
