// Package treeset implements an ordered set of unique elements backed by a
// binary search tree.
package treeset

import (
	"iter"

	"github.com/ehrrsn7/containers/v2/container/tree"
)

var (
	// ErrInvalidIterator is returned when erasing or dereferencing an iterator
	// which does not designate an element of the set.
	ErrInvalidIterator = tree.ErrInvalidIterator

	// ErrOutOfRange is returned when moving an iterator past the boundaries of
	// the set.
	ErrOutOfRange = tree.ErrOutOfRange
)

// Set is an ordered collection of unique elements of type E.
//
// The zero-value is a valid empty set which supports lookups, but must be
// initialized prior to inserting elements. A Set must not be copied by value
// after first use, use Clone or Assign instead.
type Set[E any] struct{ impl tree.Tree[E] }

// New constructs a new set using the comparison function passed as argument
// to order the elements.
func New[E any](cmp func(E, E) int) *Set[E] {
	s := new(Set[E])
	s.Init(cmp)
	return s
}

// NewBalanced is like New but the set is backed by a red-black tree.
func NewBalanced[E any](cmp func(E, E) int) *Set[E] {
	s := new(Set[E])
	s.impl.InitBalanced(cmp)
	return s
}

// Of constructs a new set holding values, duplicates are ignored.
func Of[E any](cmp func(E, E) int, values ...E) *Set[E] {
	s := New(cmp)
	s.InsertAll(values...)
	return s
}

// Init initializes (or re-initializes) the set with the given comparison
// function to order the elements.
func (s *Set[E]) Init(cmp func(E, E) int) { s.impl.Init(cmp) }

// Len returns the number of elements in the set.
func (s *Set[E]) Len() int { return s.impl.Len() }

// Empty returns true if the set holds no elements.
func (s *Set[E]) Empty() bool { return s.impl.Empty() }

// Begin returns an iterator to the smallest element of the set.
func (s *Set[E]) Begin() Iterator[E] { return Iterator[E]{s.impl.Begin()} }

// End returns the iterator positioned past the largest element of the set.
func (s *Set[E]) End() Iterator[E] { return Iterator[E]{s.impl.End()} }

// Insert inserts elem in the set. The method returns an iterator to the
// element of the set equal to elem, and a boolean indicating whether elem was
// inserted.
func (s *Set[E]) Insert(elem E) (Iterator[E], bool) {
	it, inserted := s.impl.Insert(elem, true)
	return Iterator[E]{it}, inserted
}

// InsertAll inserts every value in the set.
func (s *Set[E]) InsertAll(values ...E) {
	for _, v := range values {
		s.impl.Insert(v, true)
	}
}

// Find returns an iterator to the element equal to elem, or the end iterator.
func (s *Set[E]) Find(elem E) Iterator[E] { return Iterator[E]{s.impl.Find(elem)} }

// Contains returns true if elem exists in the set.
func (s *Set[E]) Contains(elem E) bool { return !s.impl.Find(elem).IsEnd() }

// LowerBound returns an iterator to the first element not less than elem.
func (s *Set[E]) LowerBound(elem E) Iterator[E] { return Iterator[E]{s.impl.LowerBound(elem)} }

// UpperBound returns an iterator to the first element greater than elem.
func (s *Set[E]) UpperBound(elem E) Iterator[E] { return Iterator[E]{s.impl.UpperBound(elem)} }

// Erase removes the element designated by it and returns an iterator to the
// following element.
func (s *Set[E]) Erase(it Iterator[E]) (Iterator[E], error) {
	next, err := s.impl.Erase(it.it)
	return Iterator[E]{next}, err
}

// EraseValue removes elem from the set and returns the number of elements
// removed, either 0 or 1.
func (s *Set[E]) EraseValue(elem E) int {
	it := s.impl.Find(elem)
	if it.IsEnd() {
		return 0
	}
	s.impl.Erase(it)
	return 1
}

// EraseRange removes the elements in [first, last) and returns last.
func (s *Set[E]) EraseRange(first, last Iterator[E]) (Iterator[E], error) {
	next, err := s.impl.EraseRange(first.it, last.it)
	return Iterator[E]{next}, err
}

// Clear removes all elements from the set.
func (s *Set[E]) Clear() { s.impl.Clear() }

// Clone returns a deep copy of the set.
func (s *Set[E]) Clone() *Set[E] {
	c := new(Set[E])
	c.impl.Assign(&s.impl)
	return c
}

// Assign replaces the content of s with a copy of the elements of other.
func (s *Set[E]) Assign(other *Set[E]) { s.impl.Assign(&other.impl) }

// Move transfers the elements of other to s, leaving other empty.
func (s *Set[E]) Move(other *Set[E]) { s.impl.Move(&other.impl) }

// Swap exchanges the elements of s and other.
func (s *Set[E]) Swap(other *Set[E]) { s.impl.Swap(&other.impl) }

// Range calls f for each element of the set in ascending order. If f returns
// false, the iteration is stopped.
func (s *Set[E]) Range(f func(E) bool) { s.impl.Range(f) }

// All returns an iterator over the elements of the set in ascending order.
func (s *Set[E]) All() iter.Seq[E] { return s.impl.All() }

// Backward returns an iterator over the elements of the set in descending
// order.
func (s *Set[E]) Backward() iter.Seq[E] { return s.impl.Backward() }

// Compare compares a and b lexicographically, element by element, using the
// comparison function of a. It returns a negative value if a orders before b,
// a positive value if a orders after b, and zero if both sets hold equal
// elements.
func Compare[E any](a, b *Set[E]) int {
	nextA, stopA := iter.Pull(a.All())
	defer stopA()
	nextB, stopB := iter.Pull(b.All())
	defer stopB()

	cmp := a.impl.Compare
	for {
		x, okA := nextA()
		y, okB := nextB()
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return -1
		case !okB:
			return +1
		}
		if c := cmp(x, y); c != 0 {
			return c
		}
	}
}

// Equal returns true if a and b hold equal elements.
func Equal[E any](a, b *Set[E]) bool {
	return a.Len() == b.Len() && Compare(a, b) == 0
}

// Iterator is a cursor over the elements of a set.
type Iterator[E any] struct{ it tree.Iterator[E] }

// IsEnd returns true if the iterator is the end iterator of a set.
func (it Iterator[E]) IsEnd() bool { return it.it.IsEnd() }

// Equal returns true if it and other designate the same element.
func (it Iterator[E]) Equal(other Iterator[E]) bool { return it.it.Equal(other.it) }

// Value returns the element designated by the iterator.
func (it Iterator[E]) Value() (E, error) { return it.it.Value() }

// Next returns an iterator to the following element.
func (it Iterator[E]) Next() (Iterator[E], error) {
	next, err := it.it.Next()
	return Iterator[E]{next}, err
}

// Prev returns an iterator to the preceding element.
func (it Iterator[E]) Prev() (Iterator[E], error) {
	prev, err := it.it.Prev()
	return Iterator[E]{prev}, err
}
