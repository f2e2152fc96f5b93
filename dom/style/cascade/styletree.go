package cascade

import (
	"github.com/npillmayer/docview/css"
	"github.com/npillmayer/docview/device"
	"github.com/npillmayer/docview/dom/style"
	"github.com/xlab/treeprint"
)

// StyleTree is a memoizing trie of StyleNodes, keyed by sequences of
// declaration sets.
//
// StyleTrees are not safe for concurrent use; all StyleNodes of a tree share
// unsynchronized caches.
type StyleTree struct {
	dev  device.RenderDevice
	root *StyleNode
	size int
}

// NewStyleTree creates a style tree with a default root node, which carries
// no declarations. The render device is used for unit conversion and named
// font sizes.
func NewStyleTree(dev device.RenderDevice) *StyleTree {
	if dev == nil {
		dev = device.NewReferenceDevice(0, 0)
	}
	t := &StyleTree{dev: dev}
	t.root = newStyleNode(t, nil, nil)
	return t
}

// Root returns the default style node.
func (t *StyleTree) Root() *StyleNode {
	return t.root
}

// Device returns the render device of a style tree.
func (t *StyleTree) Device() device.RenderDevice {
	return t.dev
}

// Size returns the number of style nodes, including the root.
func (t *StyleTree) Size() int {
	return t.size
}

// StyleNode returns the style node for a cascade path, i.e. a sequence of
// declaration sets, ordered from least specific to most specific.
// Empty (or nil) sets are skipped.
//
// Two structurally equal paths will always yield the same StyleNode instance.
func (t *StyleTree) StyleNode(sets ...*style.DeclarationSet) *StyleNode {
	n := t.root
	for _, set := range sets {
		if set.IsEmpty() {
			continue
		}
		ch, ok := n.children[set.Key()]
		if !ok {
			ch = newStyleNode(t, n, set)
			n.children[set.Key()] = ch
			tracer().Debugf("style tree: new node at depth %d for %s", ch.depth, set)
		}
		n = ch
	}
	return n
}

// Dump returns a string representation of the trie of style nodes.
func (t *StyleTree) Dump() string {
	tp := treeprint.NewWithRoot("default")
	dumpChildren(t.root, tp)
	return tp.String()
}

func dumpChildren(n *StyleNode, branch treeprint.Tree) {
	for _, key := range sortedKeys(n.children) {
		ch := n.children[key]
		if len(ch.children) == 0 {
			branch.AddNode(ch.decls.String())
		} else {
			dumpChildren(ch, branch.AddBranch(ch.decls.String()))
		}
	}
}

// --- Style nodes -----------------------------------------------------------

// StyleNode is a node of a style tree. It holds the declarations of one
// layer of a cascade path, and links to the node of the next less specific
// layer (its cascade parent).
type StyleNode struct {
	tree          *StyleTree
	cascadeParent *StyleNode            // less specific layer of the same cascade path
	decls         *style.DeclarationSet // declarations of this layer
	specified     map[string]css.Value  // longhand values set by this layer
	nodeCache     Cache                 // computed values valid for all boxes
	children      map[string]*StyleNode // keyed by declaration set key
	depth         int
}

func newStyleNode(t *StyleTree, parent *StyleNode, set *style.DeclarationSet) *StyleNode {
	n := &StyleNode{
		tree:          t,
		cascadeParent: parent,
		decls:         set,
		specified:     make(map[string]css.Value),
		nodeCache:     make(Cache),
		children:      make(map[string]*StyleNode),
	}
	if parent != nil {
		n.depth = parent.depth + 1
	}
	normal, important := set.Assignments()
	for _, a := range normal {
		n.specified[a.Property] = a.Value
	}
	for _, a := range important {
		n.specified[a.Property] = a.Value
	}
	t.size++
	return n
}

// CascadeParent returns the style node of the next less specific layer, or nil
// for the root node.
func (n *StyleNode) CascadeParent() *StyleNode {
	return n.cascadeParent
}

// Declarations returns the declaration set of this layer (nil for the root).
func (n *StyleNode) Declarations() *style.DeclarationSet {
	return n.decls
}

// Tree returns the style tree n belongs to.
func (n *StyleNode) Tree() *StyleTree {
	return n.tree
}

func (n *StyleNode) String() string {
	return "StyleNode" + n.decls.String()
}
