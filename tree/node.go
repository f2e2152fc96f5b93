/*
Package tree implements a generic tree of mutable nodes. It serves as the
skeleton of frame trees.

Nodes carry a payload of type parameter T and maintain an ordered slice of
children. Trees are not safe for concurrent use: they are built and mutated
by a single goroutine, as is everything in a document view.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tree

import (
	"fmt"
)

// Node is the base type our tree is built of.
type Node[T comparable] struct {
	parent   *Node[T]   // parent node of this node
	children []*Node[T] // children nodes, never containing nil
	Payload  T          // nodes may carry a payload of arbitrary type
}

// NewNode creates a new tree node with a given payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends a new child node.
// The newly inserted node is connected to this node as its parent; if it has
// been attached to another parent before, it is isolated first.
// It returns the parent node to allow for chaining.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch != nil {
		ch.Isolate()
		node.children = append(node.children, ch)
		ch.parent = node
	}
	return node
}

// SetChildAt replaces the child at position i with ch. If i is out of range,
// ch is appended.
// It returns the parent node to allow for chaining.
func (node *Node[T]) SetChildAt(i int, ch *Node[T]) *Node[T] {
	if ch == nil {
		return node
	}
	if i < 0 || i >= len(node.children) {
		return node.AddChild(ch)
	}
	if node.children[i] == ch {
		return node
	}
	ch.Isolate()
	node.children[i].parent = nil
	node.children[i] = ch
	ch.parent = node
	return node
}

// InsertChildAt inserts a new child node at position i, shifting children at
// later positions. If i is out of range, ch is appended.
// It returns the parent node to allow for chaining.
func (node *Node[T]) InsertChildAt(i int, ch *Node[T]) *Node[T] {
	if ch == nil {
		return node
	}
	ch.Isolate()
	if i < 0 || i >= len(node.children) {
		return node.AddChild(ch)
	}
	node.children = append(node.children, nil) // make room for one child
	copy(node.children[i+1:], node.children[i:])
	node.children[i] = ch
	ch.parent = node
	return node
}

// RemoveChildAt removes the child at position i and returns it, or nil if
// i is out of range. Children at later positions move up.
func (node *Node[T]) RemoveChildAt(i int) *Node[T] {
	if i < 0 || i >= len(node.children) {
		return nil
	}
	ch := node.children[i]
	copy(node.children[i:], node.children[i+1:])
	node.children[len(node.children)-1] = nil
	node.children = node.children[:len(node.children)-1]
	ch.parent = nil
	return ch
}

// ReplaceChild replaces child old by ch. If ch is nil, old is removed.
// It returns false if old is not a child of node.
func (node *Node[T]) ReplaceChild(old, ch *Node[T]) bool {
	i := node.IndexOfChild(old)
	if i < 0 {
		return false
	}
	if ch == nil {
		node.RemoveChildAt(i)
	} else {
		node.SetChildAt(i, ch)
	}
	return true
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// Isolate removes a node from its parent.
// Isolate returns the isolated node.
func (node *Node[T]) Isolate() *Node[T] {
	if node != nil && node.parent != nil {
		node.parent.RemoveChildAt(node.parent.IndexOfChild(node))
	}
	return node
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node[T]) ChildCount() int {
	if node == nil {
		return 0
	}
	return len(node.children)
}

// Child returns the n-th child of a node.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	if n < 0 || node.ChildCount() <= n {
		return nil, false
	}
	return node.children[n], true
}

// Children returns a copy of the slice of children of a node.
func (node *Node[T]) Children() []*Node[T] {
	if node.ChildCount() == 0 {
		return nil
	}
	children := make([]*Node[T], len(node.children))
	copy(children, node.children)
	return children
}

// IndexOfChild returns the index of a child within the list of children
// of its parent, or -1.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	for i, child := range node.children {
		if ch == child {
			return i
		}
	}
	return -1
}
