package tree

// Predicate is a function type to match against nodes of a tree.
type Predicate[T comparable] func(node *Node[T]) bool

// Action is a function type to operate on tree nodes. If an action returns
// false, the traversal does not descend into the children of node.
type Action[T comparable] func(node *Node[T], depth int) bool

// Whatever is a predicate to match anything.
func Whatever[T comparable]() Predicate[T] {
	return func(*Node[T]) bool {
		return true
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(n *Node[T]) bool {
		return n.ChildCount() == 0
	}
}

// TopDown traverses a (sub-)tree depth first, calling action for each node
// before its children.
func TopDown[T comparable](node *Node[T], action Action[T]) {
	topDown(node, 0, action)
}

func topDown[T comparable](node *Node[T], depth int, action Action[T]) {
	if node == nil || !action(node, depth) {
		return
	}
	for _, ch := range node.children {
		topDown(ch, depth+1, action)
	}
}

// BottomUp traverses a (sub-)tree depth first, calling action for each node
// after its children. The return value of action is ignored.
func BottomUp[T comparable](node *Node[T], action Action[T]) {
	bottomUp(node, 0, action)
}

func bottomUp[T comparable](node *Node[T], depth int, action Action[T]) {
	if node == nil {
		return
	}
	for _, ch := range node.children {
		bottomUp(ch, depth+1, action)
	}
	action(node, depth)
}

// AncestorWith returns the nearest ancestor of node matching predicate, or nil.
// node itself is not considered.
func AncestorWith[T comparable](node *Node[T], predicate Predicate[T]) *Node[T] {
	if node == nil {
		return nil
	}
	for a := node.parent; a != nil; a = a.parent {
		if predicate(a) {
			return a
		}
	}
	return nil
}

// DescendentsWith collects all nodes below node matching predicate, in
// depth-first order. node itself is not considered.
func DescendentsWith[T comparable](node *Node[T], predicate Predicate[T]) []*Node[T] {
	var result []*Node[T]
	TopDown(node, func(n *Node[T], depth int) bool {
		if depth > 0 && predicate(n) {
			result = append(result, n)
		}
		return true
	})
	return result
}
