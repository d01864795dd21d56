// Package tree implements an ordered binary search tree with bidirectional
// iterators, the building block of the ordered set and map containers of this
// module.
//
// Trees constructed by New are plain, unbalanced binary search trees: their
// shape depends only on the order of insertion, which makes it predictable but
// lets the height degrade to O(n) when elements are inserted in sorted order.
// Trees constructed by NewBalanced maintain red-black coloring and rebalance
// after every mutation, bounding the height to O(log n).
//
// Trees are not safe to use concurrently from multiple goroutines.
package tree

import (
	"iter"

	"github.com/cockroachdb/errors"
)

// Tree is a binary search tree containing elements of type E.
//
// The zero-value is a valid empty tree which supports lookups and iteration,
// but must be initialized prior to inserting elements. A Tree must not be
// copied by value after first use, use Clone or Assign instead.
type Tree[E any] struct {
	cmp      func(E, E) int
	root     *node[E]
	len      int
	balanced bool
	scope    *scope[E]
}

// New constructs a new unbalanced tree using the comparison function passed
// as argument to order the elements.
func New[E any](cmp func(E, E) int) *Tree[E] {
	t := new(Tree[E])
	t.Init(cmp)
	return t
}

// NewBalanced constructs a new red-black tree using the comparison function
// passed as argument to order the elements.
func NewBalanced[E any](cmp func(E, E) int) *Tree[E] {
	t := new(Tree[E])
	t.InitBalanced(cmp)
	return t
}

// Init initializes (or re-initializes) the tree as an unbalanced tree ordered
// by cmp. All elements previously held by the tree are released.
//
// Complexity: O(n)
func (t *Tree[E]) Init(cmp func(E, E) int) { t.init(cmp, false) }

// InitBalanced is like Init but configures the tree to maintain red-black
// balancing.
//
// Complexity: O(n)
func (t *Tree[E]) InitBalanced(cmp func(E, E) int) { t.init(cmp, true) }

func (t *Tree[E]) init(cmp func(E, E) int, balanced bool) {
	t.Clear()
	t.cmp = cmp
	t.balanced = balanced
	t.scope = &scope[E]{tree: t}
}

func (t *Tree[E]) ensureScope() *scope[E] {
	if t.scope == nil {
		t.scope = &scope[E]{tree: t}
	}
	return t.scope
}

// Balanced returns true if the tree maintains red-black balancing.
func (t *Tree[E]) Balanced() bool { return t.balanced }

// Compare compares a and b with the comparison function of the tree.
func (t *Tree[E]) Compare(a, b E) int { return t.cmp(a, b) }

// Len returns the number of elements in the tree.
//
// Complexity: O(1)
func (t *Tree[E]) Len() int { return t.len }

// Empty returns true if the tree holds no elements.
//
// Complexity: O(1)
func (t *Tree[E]) Empty() bool { return t.len == 0 }

// Begin returns an iterator to the smallest element of the tree, or the end
// iterator if the tree is empty.
//
// Complexity: O(h)
func (t *Tree[E]) Begin() Iterator[E] {
	if t.root == nil {
		return t.End()
	}
	return t.iter(leftmost(t.root))
}

// Last returns an iterator to the largest element of the tree, or the end
// iterator if the tree is empty.
//
// Complexity: O(h)
func (t *Tree[E]) Last() Iterator[E] {
	if t.root == nil {
		return t.End()
	}
	return t.iter(rightmost(t.root))
}

// End returns the iterator positioned past the last element of the tree.
//
// Complexity: O(1)
func (t *Tree[E]) End() Iterator[E] { return t.iter(nil) }

func (t *Tree[E]) iter(n *node[E]) Iterator[E] {
	return Iterator[E]{scope: t.ensureScope(), node: n}
}

// owns returns true if it designates an element held by the tree.
func (t *Tree[E]) owns(it Iterator[E]) bool {
	return it.node != nil && t.scope != nil && it.node.owner == t.scope
}

// Insert inserts value in the tree. When keepUnique is true and an element
// comparing equal to value already exists, the tree is not modified and the
// method returns an iterator to the existing element and false. Otherwise a
// new element is created and the method returns an iterator to it and true.
//
// When duplicates are allowed, equal values are placed after the existing
// ones in the iteration order.
//
// The tree must have been initialized by a call to New, NewBalanced, Init or
// InitBalanced or the call to Insert will panic.
//
// Complexity: O(h)
func (t *Tree[E]) Insert(value E, keepUnique bool) (Iterator[E], bool) {
	if t.cmp == nil {
		panic(errors.AssertionFailedf("tree: Insert called on an uninitialized tree"))
	}
	if t.root == nil {
		t.root = &node[E]{owner: t.ensureScope(), value: value, color: black}
		t.len = 1
		return t.iter(t.root), true
	}

	p := t.root
	for {
		c := t.cmp(value, p.value)
		if keepUnique && c == 0 {
			return t.iter(p), false
		}
		if c < 0 {
			if p.left != nil {
				p = p.left
				continue
			}
			p = p.addLeft(value)
		} else {
			if p.right != nil {
				p = p.right
				continue
			}
			p = p.addRight(value)
		}
		break
	}

	t.len++
	if t.balanced {
		t.insertFixup(p)
	}
	return t.iter(p), true
}

// Find returns an iterator to an element comparing equal to value, or the end
// iterator if no such element exists.
//
// Complexity: O(h)
func (t *Tree[E]) Find(value E) Iterator[E] {
	for n := t.root; n != nil; {
		switch c := t.cmp(value, n.value); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return t.iter(n)
		}
	}
	return t.End()
}

// LowerBound returns an iterator to the first element which does not compare
// less than value, or the end iterator if there are none.
//
// Complexity: O(h)
func (t *Tree[E]) LowerBound(value E) Iterator[E] {
	var r *node[E]
	for n := t.root; n != nil; {
		if t.cmp(n.value, value) < 0 {
			n = n.right
		} else {
			r, n = n, n.left
		}
	}
	return t.iter(r)
}

// UpperBound returns an iterator to the first element which compares greater
// than value, or the end iterator if there are none.
//
// Complexity: O(h)
func (t *Tree[E]) UpperBound(value E) Iterator[E] {
	var r *node[E]
	for n := t.root; n != nil; {
		if t.cmp(n.value, value) <= 0 {
			n = n.right
		} else {
			r, n = n, n.left
		}
	}
	return t.iter(r)
}

// Erase removes the element designated by it from the tree and returns an
// iterator to its in-order successor.
//
// The method returns ErrInvalidIterator and leaves the tree unmodified if it
// is the end iterator, or does not designate an element of this tree.
//
// Complexity: O(h)
func (t *Tree[E]) Erase(it Iterator[E]) (Iterator[E], error) {
	if !t.owns(it) {
		return t.End(), errors.Wrap(t.reject(it), "erasing")
	}
	return t.iter(t.erase(it.node)), nil
}

// EraseRange removes the elements in the range [first, last) and returns
// last. Both iterators are validated before the tree is modified: first must
// designate an element of the tree (unless first and last are equal), last
// must be an element of the tree positioned after first or the end iterator.
//
// Complexity: O(k⋅h) where k is the number of elements removed
func (t *Tree[E]) EraseRange(first, last Iterator[E]) (Iterator[E], error) {
	if last.node != nil && !t.owns(last) {
		return t.End(), errors.Wrap(t.reject(last), "erasing range ending at")
	}
	if last.node == nil && last.scope != t.scope {
		return t.End(), errors.Wrap(ErrInvalidIterator, "erasing range ending at foreign end iterator")
	}
	if first.node == last.node {
		return last, nil
	}
	if !t.owns(first) {
		return t.End(), errors.Wrap(t.reject(first), "erasing range starting at")
	}

	n := first.node
	for n != nil && n != last.node {
		n = successor(n)
	}
	if n != last.node {
		return t.End(), errors.Wrap(ErrInvalidIterator, "erasing range ending before its first element")
	}

	for n = first.node; n != last.node; {
		n = t.erase(n)
	}
	return t.iter(last.node), nil
}

func (t *Tree[E]) reject(it Iterator[E]) error {
	switch {
	case it.scope == nil:
		return errors.Wrap(ErrInvalidIterator, "zero iterator")
	case it.node == nil:
		return errors.Wrap(ErrInvalidIterator, "end iterator")
	case it.node.owner == nil:
		return errors.Wrap(ErrInvalidIterator, "iterator to erased element")
	default:
		return errors.Wrap(ErrInvalidIterator, "iterator from another tree")
	}
}

// erase splices n out of the tree and returns its in-order successor.
func (t *Tree[E]) erase(n *node[E]) *node[E] {
	var next, child, parent *node[E]
	removed := n.color

	switch {
	case n.right == nil:
		next = successor(n)
		child, parent = n.left, n.parent
		t.transplant(n, n.left)

	case n.left == nil:
		next = successor(n)
		child, parent = n.right, n.parent
		t.transplant(n, n.right)

	default:
		// The in-order successor is the left-most node of the right subtree,
		// it has no left child and takes the place of n.
		s := leftmost(n.right)
		next = s
		removed = s.color
		child = s.right

		if s.parent == n {
			parent = s
		} else {
			parent = s.parent
			t.transplant(s, s.right)
			s.attachRight(n.right)
		}
		t.transplant(n, s)
		s.attachLeft(n.left)
		s.color = n.color
	}

	n.left, n.right, n.parent, n.owner = nil, nil, nil, nil
	t.len--

	if t.balanced && removed == black {
		t.eraseFixup(child, parent)
	}
	return next
}

// transplant places v at the structural position of u, v may be nil. The
// children of u and v are not modified.
func (t *Tree[E]) transplant(u, v *node[E]) {
	switch p := u.parent; {
	case p == nil:
		t.root = v
		if v != nil {
			v.parent = nil
		}
	case p.left == u:
		p.attachLeft(v)
	default:
		p.attachRight(v)
	}
}

// Clear removes all elements from the tree. Iterators to the removed elements
// become invalid.
//
// Complexity: O(n)
func (t *Tree[E]) Clear() {
	release(t.root)
	t.root = nil
	t.len = 0
}

// Clone returns a deep copy of the tree. The copy uses the same comparison
// function and balancing mode, and shares no node with t.
//
// Complexity: O(n)
func (t *Tree[E]) Clone() *Tree[E] {
	c := new(Tree[E])
	c.Assign(t)
	return c
}

// Assign makes t a structural copy of src: same elements, same shape, same
// comparison function and balancing mode. Nodes already allocated in t are
// reused at the positions that exist in both trees, the subtrees of t which
// have no counterpart in src are released.
//
// Complexity: O(n + m)
func (t *Tree[E]) Assign(src *Tree[E]) {
	if t == src {
		return
	}
	owner := t.ensureScope()
	t.cmp, t.balanced = src.cmp, src.balanced

	type frame struct {
		slot   **node[E]
		parent *node[E]
		src    *node[E]
	}
	stack := []frame{{slot: &t.root, src: src.root}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.src == nil {
			release(*f.slot)
			*f.slot = nil
			continue
		}

		n := *f.slot
		if n == nil {
			n = &node[E]{owner: owner}
			*f.slot = n
		}
		n.value = f.src.value
		n.color = f.src.color
		n.parent = f.parent

		stack = append(stack,
			frame{slot: &n.left, parent: n, src: f.src.left},
			frame{slot: &n.right, parent: n, src: f.src.right},
		)
	}

	t.len = src.len
}

// Move transfers the elements of src to t, leaving src empty. Elements
// previously held by t are released. Iterators to elements of src remain
// valid and now designate elements of t.
//
// t takes the comparison function and balancing mode of src, unless src was
// never initialized, in which case t keeps its own.
//
// Complexity: O(n) where n is the number of elements previously held by t
func (t *Tree[E]) Move(src *Tree[E]) {
	if t == src {
		return
	}
	t.Clear()
	if src.cmp != nil {
		t.cmp, t.balanced = src.cmp, src.balanced
	}
	t.root, t.len = src.root, src.len
	t.scope = src.scope
	if t.scope != nil {
		t.scope.tree = t
	}
	src.root, src.len = nil, 0
	src.scope = &scope[E]{tree: src}
}

// Swap exchanges the content of t and other. Iterators follow the elements
// they designate.
//
// Complexity: O(1)
func (t *Tree[E]) Swap(other *Tree[E]) {
	t.cmp, other.cmp = other.cmp, t.cmp
	t.root, other.root = other.root, t.root
	t.len, other.len = other.len, t.len
	t.balanced, other.balanced = other.balanced, t.balanced
	t.scope, other.scope = other.ensureScope(), t.ensureScope()
	t.scope.tree, other.scope.tree = t, other
}

// Range calls f for each element in the tree, in the order defined by the
// comparison function. If f returns false, the iteration is stopped.
//
// Complexity: O(n)
func (t *Tree[E]) Range(f func(E) bool) {
	if t.root == nil {
		return
	}
	for n := leftmost(t.root); n != nil; n = successor(n) {
		if !f(n.value) {
			return
		}
	}
}

// All returns an iterator over the elements of the tree in ascending order.
func (t *Tree[E]) All() iter.Seq[E] { return t.Range }

// Backward returns an iterator over the elements of the tree in descending
// order.
func (t *Tree[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		if t.root == nil {
			return
		}
		for n := rightmost(t.root); n != nil; n = predecessor(n) {
			if !yield(n.value) {
				return
			}
		}
	}
}
