package tree

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidIterator is returned when an operation is given an iterator
	// which does not designate an element of the tree: the end iterator, the
	// zero value, an iterator obtained from another tree, or an iterator to
	// an element that has been erased.
	ErrInvalidIterator = errors.New("invalid iterator")

	// ErrOutOfRange is returned when advancing an iterator past the end of
	// the tree, or moving it back before the first element.
	ErrOutOfRange = errors.New("iterator out of range")
)

// Iterator is a cursor designating an element of a tree, or the position past
// its last element (the end iterator).
//
// Iterators do not own the elements they point to. An iterator remains valid
// until the element it designates is erased or the tree is cleared.
//
// The zero value is an invalid iterator which is not bound to any tree.
type Iterator[E any] struct {
	scope *scope[E]
	node  *node[E]
}

// IsEnd returns true if the iterator is the end iterator of a tree.
func (it Iterator[E]) IsEnd() bool { return it.scope != nil && it.node == nil }

// Equal returns true if it and other designate the same element, or are both
// end iterators. The zero iterator is only equal to another zero iterator.
func (it Iterator[E]) Equal(other Iterator[E]) bool {
	return it.node == other.node && (it.scope == nil) == (other.scope == nil)
}

// Value returns the element designated by the iterator.
func (it Iterator[E]) Value() (E, error) {
	var zero E
	if err := it.check("dereferencing"); err != nil {
		return zero, err
	}
	return it.node.value, nil
}

// Ref returns a pointer to the element designated by the iterator. Writes
// through the pointer must not change how the element compares to the other
// elements of the tree.
func (it Iterator[E]) Ref() (*E, error) {
	if err := it.check("dereferencing"); err != nil {
		return nil, err
	}
	return &it.node.value, nil
}

// Next returns an iterator to the in-order successor of the element. Calling
// Next on the last element yields the end iterator, calling it on the end
// iterator is an error.
func (it Iterator[E]) Next() (Iterator[E], error) {
	if it.IsEnd() {
		return it, errors.Wrap(ErrOutOfRange, "advancing end iterator")
	}
	if err := it.check("advancing"); err != nil {
		return it, err
	}
	return Iterator[E]{scope: it.scope, node: successor(it.node)}, nil
}

// Prev returns an iterator to the in-order predecessor of the element.
// Calling Prev on the end iterator yields the last element of the tree,
// calling it on the first element (or on the end of an empty tree) is an
// error.
func (it Iterator[E]) Prev() (Iterator[E], error) {
	if it.IsEnd() {
		root := it.scope.tree.root
		if root == nil {
			return it, errors.Wrap(ErrOutOfRange, "moving back from end of empty tree")
		}
		return Iterator[E]{scope: it.scope, node: rightmost(root)}, nil
	}
	if err := it.check("moving back"); err != nil {
		return it, err
	}
	prev := predecessor(it.node)
	if prev == nil {
		return it, errors.Wrap(ErrOutOfRange, "moving back from first element")
	}
	return Iterator[E]{scope: it.scope, node: prev}, nil
}

func (it Iterator[E]) check(op string) error {
	switch {
	case it.scope == nil:
		return errors.Wrapf(ErrInvalidIterator, "%s zero iterator", op)
	case it.node == nil:
		return errors.Wrapf(ErrInvalidIterator, "%s end iterator", op)
	case it.node.owner == nil:
		return errors.Wrapf(ErrInvalidIterator, "%s iterator to erased element", op)
	}
	return nil
}
