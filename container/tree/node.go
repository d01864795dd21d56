package tree

type color byte

const (
	red   color = 0
	black color = 1
)

// scope identifies the tree owning a set of nodes. Nodes and iterators
// reference the scope rather than the tree so that ownership can be handed
// over by Move and Swap without visiting every node.
type scope[E any] struct {
	tree *Tree[E]
}

// node is a single node of the binary tree. The node does not know anything
// about the ordering of the tree, no validation is done at this layer.
//
// left and right are owned by the node, parent is a back-reference which must
// always designate the node holding this one in its left or right slot, or be
// nil for the root.
type node[E any] struct {
	left   *node[E]
	right  *node[E]
	parent *node[E]
	owner  *scope[E] // nil once the node was removed from its tree
	value  E
	color  color // only maintained by balanced trees
}

// attachLeft sets n as the left child. An existing left child is overwritten
// and not released, callers must have detached it first.
func (p *node[E]) attachLeft(n *node[E]) {
	if n != nil {
		n.parent = p
	}
	p.left = n
}

// attachRight sets n as the right child. An existing right child is
// overwritten and not released, callers must have detached it first.
func (p *node[E]) attachRight(n *node[E]) {
	if n != nil {
		n.parent = p
	}
	p.right = n
}

// addLeft allocates a node holding value and attaches it as the left child.
func (p *node[E]) addLeft(value E) *node[E] {
	n := &node[E]{owner: p.owner, value: value}
	p.attachLeft(n)
	return n
}

// addRight allocates a node holding value and attaches it as the right child.
func (p *node[E]) addRight(value E) *node[E] {
	n := &node[E]{owner: p.owner, value: value}
	p.attachRight(n)
	return n
}

func (n *node[E]) isLeftChild() bool  { return n.parent != nil && n.parent.left == n }
func (n *node[E]) isRightChild() bool { return n.parent != nil && n.parent.right == n }

func leftmost[E any](n *node[E]) *node[E] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func rightmost[E any](n *node[E]) *node[E] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// successor returns the next node of the in-order sequence, or nil if n is
// the last one.
func successor[E any](n *node[E]) *node[E] {
	if n.right != nil {
		return leftmost(n.right)
	}
	for n.isRightChild() {
		n = n.parent
	}
	return n.parent
}

// predecessor returns the previous node of the in-order sequence, or nil if n
// is the first one.
func predecessor[E any](n *node[E]) *node[E] {
	if n.left != nil {
		return rightmost(n.left)
	}
	for n.isLeftChild() {
		n = n.parent
	}
	return n.parent
}

// release detaches every node of the subtree rooted at n and returns how many
// nodes were released. The children of a node are captured before the node
// itself is unlinked, so the walk never reads a released node. An explicit
// stack is used since degenerate trees may be as deep as they are large.
func release[E any](n *node[E]) int {
	if n == nil {
		return 0
	}
	count := 0
	stack := []*node[E]{n}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		n.left, n.right, n.parent, n.owner = nil, nil, nil, nil
		count++
	}
	return count
}
