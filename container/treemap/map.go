// Package treemap implements an ordered map backed by a binary search tree.
//
// Entries are stored as key/value pairs ordered by key only. Unlike the
// standard Go map type, iteration presents the entries in ascending key order
// and iterators can be used to walk the map in both directions.
package treemap

import (
	"iter"

	"github.com/cockroachdb/errors"
	"github.com/ehrrsn7/containers/v2/container/tree"
)

var (
	// ErrKeyNotFound is returned by At when the key does not exist in the map.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidIterator is returned when erasing or dereferencing an iterator
	// which does not designate an entry of the map.
	ErrInvalidIterator = tree.ErrInvalidIterator

	// ErrOutOfRange is returned when moving an iterator past the boundaries of
	// the map.
	ErrOutOfRange = tree.ErrOutOfRange
)

// Pair is an entry of the map.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Map is an ordered map associating keys of type K to values of type V.
//
// The zero-value is a valid empty map which supports lookups, but must be
// initialized prior to inserting keys. A Map must not be copied by value after
// first use, use Clone or Assign instead.
type Map[K, V any] struct {
	impl tree.Tree[Pair[K, V]]
}

// New constructs a new map using the given comparison function to order the
// keys.
func New[K, V any](cmp func(K, K) int) *Map[K, V] {
	m := new(Map[K, V])
	m.Init(cmp)
	return m
}

// NewBalanced is like New but the map is backed by a red-black tree.
func NewBalanced[K, V any](cmp func(K, K) int) *Map[K, V] {
	m := new(Map[K, V])
	m.impl.InitBalanced(byKey[K, V](cmp))
	return m
}

// Of constructs a new map holding pairs. When a key appears more than once,
// the first pair wins.
func Of[K, V any](cmp func(K, K) int, pairs ...Pair[K, V]) *Map[K, V] {
	m := New[K, V](cmp)
	m.InsertAll(pairs...)
	return m
}

// Init initializes (or re-initializes) the map. The comparison function
// passed as argument will be used to order the keys.
func (m *Map[K, V]) Init(cmp func(K, K) int) {
	m.impl.Init(byKey[K, V](cmp))
}

func byKey[K, V any](cmp func(K, K) int) func(Pair[K, V], Pair[K, V]) int {
	return func(a, b Pair[K, V]) int { return cmp(a.Key, b.Key) }
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int { return m.impl.Len() }

// Empty returns true if the map holds no entries.
func (m *Map[K, V]) Empty() bool { return m.impl.Empty() }

// Begin returns an iterator to the entry with the smallest key.
func (m *Map[K, V]) Begin() Iterator[K, V] { return Iterator[K, V]{m.impl.Begin()} }

// End returns the iterator positioned past the entry with the largest key.
func (m *Map[K, V]) End() Iterator[K, V] { return Iterator[K, V]{m.impl.End()} }

// Insert inserts a new entry in the map. If the key already existed, the map
// is not modified and the method returns an iterator to the existing entry
// and false.
func (m *Map[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	it, inserted := m.impl.Insert(Pair[K, V]{Key: key, Value: value}, true)
	return Iterator[K, V]{it}, inserted
}

// InsertAll inserts every pair in the map. Keys which already exist keep
// their value.
func (m *Map[K, V]) InsertAll(pairs ...Pair[K, V]) {
	for _, p := range pairs {
		m.impl.Insert(p, true)
	}
}

// Index returns a pointer to the value associated with key, inserting a
// zero value for the key first if it did not exist.
//
// The pointer remains valid until the entry is erased.
func (m *Map[K, V]) Index(key K) *V {
	var zero V
	it, _ := m.impl.Insert(Pair[K, V]{Key: key, Value: zero}, true)
	p, _ := it.Ref() // inserted or found, never end
	return &p.Value
}

// Set associates value to key, replacing the previous value if any.
func (m *Map[K, V]) Set(key K, value V) { *m.Index(key) = value }

// At returns the value associated with key, or ErrKeyNotFound if the key does
// not exist. Unlike Index, At never modifies the map.
func (m *Map[K, V]) At(key K) (V, error) {
	value, found := m.Get(key)
	if !found {
		return value, errors.Wrapf(ErrKeyNotFound, "%v", key)
	}
	return value, nil
}

// Get returns the value associated with key and a boolean indicating whether
// the key was found.
func (m *Map[K, V]) Get(key K) (value V, found bool) {
	if p, err := m.impl.Find(Pair[K, V]{Key: key}).Value(); err == nil {
		return p.Value, true
	}
	return value, false
}

// Contains returns true if key exists in the map.
func (m *Map[K, V]) Contains(key K) bool { return !m.Find(key).IsEnd() }

// Find returns an iterator to the entry with the given key, or the end
// iterator.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{m.impl.Find(Pair[K, V]{Key: key})}
}

// LowerBound returns an iterator to the first entry whose key is not less
// than key.
func (m *Map[K, V]) LowerBound(key K) Iterator[K, V] {
	return Iterator[K, V]{m.impl.LowerBound(Pair[K, V]{Key: key})}
}

// UpperBound returns an iterator to the first entry whose key is greater than
// key.
func (m *Map[K, V]) UpperBound(key K) Iterator[K, V] {
	return Iterator[K, V]{m.impl.UpperBound(Pair[K, V]{Key: key})}
}

// Erase removes the entry designated by it and returns an iterator to the
// following entry.
func (m *Map[K, V]) Erase(it Iterator[K, V]) (Iterator[K, V], error) {
	next, err := m.impl.Erase(it.it)
	return Iterator[K, V]{next}, err
}

// EraseKey removes the entry with the given key and returns the number of
// entries removed, either 0 or 1.
func (m *Map[K, V]) EraseKey(key K) int {
	it := m.impl.Find(Pair[K, V]{Key: key})
	if it.IsEnd() {
		return 0
	}
	m.impl.Erase(it)
	return 1
}

// EraseRange removes the entries in [first, last) and returns last.
func (m *Map[K, V]) EraseRange(first, last Iterator[K, V]) (Iterator[K, V], error) {
	next, err := m.impl.EraseRange(first.it, last.it)
	return Iterator[K, V]{next}, err
}

// Clear removes all entries from the map.
func (m *Map[K, V]) Clear() { m.impl.Clear() }

// Clone returns a deep copy of the map.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := new(Map[K, V])
	c.impl.Assign(&m.impl)
	return c
}

// Assign replaces the content of m with a copy of the entries of other.
func (m *Map[K, V]) Assign(other *Map[K, V]) { m.impl.Assign(&other.impl) }

// Move transfers the entries of other to m, leaving other empty.
func (m *Map[K, V]) Move(other *Map[K, V]) { m.impl.Move(&other.impl) }

// Swap exchanges the entries of m and other.
func (m *Map[K, V]) Swap(other *Map[K, V]) { m.impl.Swap(&other.impl) }

// Range calls f for each entry of the map in ascending key order. If f returns
// false, the iteration is stopped.
func (m *Map[K, V]) Range(f func(K, V) bool) {
	m.impl.Range(func(p Pair[K, V]) bool { return f(p.Key, p.Value) })
}

// All returns an iterator over the entries of the map in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] { return m.Range }

// Backward returns an iterator over the entries of the map in descending key
// order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := range m.impl.Backward() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys of the map in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		m.impl.Range(func(p Pair[K, V]) bool { return yield(p.Key) })
	}
}

// Iterator is a cursor over the entries of a map.
type Iterator[K, V any] struct{ it tree.Iterator[Pair[K, V]] }

// IsEnd returns true if the iterator is the end iterator of a map.
func (it Iterator[K, V]) IsEnd() bool { return it.it.IsEnd() }

// Equal returns true if it and other designate the same entry.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool { return it.it.Equal(other.it) }

// Pair returns the entry designated by the iterator.
func (it Iterator[K, V]) Pair() (Pair[K, V], error) { return it.it.Value() }

// Key returns the key of the entry designated by the iterator.
func (it Iterator[K, V]) Key() (K, error) {
	p, err := it.it.Value()
	return p.Key, err
}

// Value returns a pointer to the value of the entry designated by the
// iterator, which may be used to modify it in place.
func (it Iterator[K, V]) Value() (*V, error) {
	p, err := it.it.Ref()
	if err != nil {
		return nil, err
	}
	return &p.Value, nil
}

// Next returns an iterator to the following entry.
func (it Iterator[K, V]) Next() (Iterator[K, V], error) {
	next, err := it.it.Next()
	return Iterator[K, V]{next}, err
}

// Prev returns an iterator to the preceding entry.
func (it Iterator[K, V]) Prev() (Iterator[K, V], error) {
	prev, err := it.it.Prev()
	return Iterator[K, V]{prev}, err
}
