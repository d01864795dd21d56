package tree

// Red-black balancing of trees constructed with NewBalanced.
//
// The coloring rules are the classic ones: the root is black, a red node has
// no red child, and every path from a node down to its nil leaves crosses the
// same number of black nodes. Nil leaves count as black. Rotations relink
// nodes in place, so iterators remain valid across rebalancing.

func isRed[E any](n *node[E]) bool   { return n != nil && n.color == red }
func isBlack[E any](n *node[E]) bool { return n == nil || n.color == black }

// rotateLeft moves the right child of x to the position of x, x becomes its
// left child.
//
//	    x              y
//	   / \            / \
//	  a   y    =>    x   c
//	     / \        / \
//	    b   c      a   b
func (t *Tree[E]) rotateLeft(x *node[E]) {
	y := x.right
	x.attachRight(y.left)
	t.transplant(x, y)
	y.attachLeft(x)
}

// rotateRight is the mirror of rotateLeft.
func (t *Tree[E]) rotateRight(x *node[E]) {
	y := x.left
	x.attachLeft(y.right)
	t.transplant(x, y)
	y.attachRight(x)
}

// insertFixup restores the coloring rules after n was inserted as a red leaf.
func (t *Tree[E]) insertFixup(n *node[E]) {
	n.color = red

	for isRed(n.parent) {
		p := n.parent
		g := p.parent // p is red so it is not the root

		if p == g.left {
			if u := g.right; isRed(u) {
				p.color, u.color, g.color = black, black, red
				n = g
				continue
			}
			if n == p.right {
				n = p
				t.rotateLeft(n)
				p = n.parent
			}
			p.color, g.color = black, red
			t.rotateRight(g)
		} else {
			if u := g.left; isRed(u) {
				p.color, u.color, g.color = black, black, red
				n = g
				continue
			}
			if n == p.left {
				n = p
				t.rotateRight(n)
				p = n.parent
			}
			p.color, g.color = black, red
			t.rotateLeft(g)
		}
	}

	t.root.color = black
}

// eraseFixup restores the coloring rules after a black node was removed. x is
// the node which moved into the removed position, it may be nil, in which case
// parent designates where the nil leaf hangs.
func (t *Tree[E]) eraseFixup(x, parent *node[E]) {
	for x != t.root && isBlack(x) {
		if x == parent.left {
			w := parent.right // never nil, the removed node was black
			if isRed(w) {
				w.color, parent.color = black, red
				t.rotateLeft(parent)
				w = parent.right
			}
			if isBlack(w.left) && isBlack(w.right) {
				w.color = red
				x, parent = parent, parent.parent
				continue
			}
			if isBlack(w.right) {
				w.left.color, w.color = black, red
				t.rotateRight(w)
				w = parent.right
			}
			w.color, parent.color = parent.color, black
			w.right.color = black
			t.rotateLeft(parent)
			x = t.root
		} else {
			w := parent.left
			if isRed(w) {
				w.color, parent.color = black, red
				t.rotateRight(parent)
				w = parent.left
			}
			if isBlack(w.left) && isBlack(w.right) {
				w.color = red
				x, parent = parent, parent.parent
				continue
			}
			if isBlack(w.left) {
				w.right.color, w.color = black, red
				t.rotateLeft(w)
				w = parent.left
			}
			w.color, parent.color = parent.color, black
			w.left.color = black
			t.rotateRight(parent)
			x = t.root
		}
	}

	if x != nil {
		x.color = black
	}
}
