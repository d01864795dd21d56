// Package list contains the implementation of a type-safe, doubly-linked
// list.
//
// Elements of the list are allocated by the list when values are pushed or
// inserted, and returned to the program as *Element[T] handles which can be
// used to walk the list, modify the values in place, or remove and move them
// in O(1).
//
//	l := list.List[string]{}
//	l.PushBack("A")
//	l.PushBack("B")
//	l.PushBack("C")
//
//	for e := l.Front(); e != nil; e = e.Next() {
//		...
//	}
//
// Each element remembers the list it belongs to. Operations given an element
// of another list, or an element that was already removed, do not modify the
// list.
package list

import "iter"

// Element is a value held in a List.
type Element[T any] struct {
	prev, next *Element[T]
	list       *List[T]

	// The value stored with this element.
	Value T
}

// Next returns the element following e, or nil if e was the last element.
func (e *Element[T]) Next() *Element[T] {
	if e.list != nil {
		return e.next
	}
	return nil
}

// Prev returns the element preceding e, or nil if e was the first element.
func (e *Element[T]) Prev() *Element[T] {
	if e.list != nil {
		return e.prev
	}
	return nil
}

// List values are containers of objects which support insertion and removal at
// the front and back of the list, as well as removal of elements at any
// position in O(1).
//
// The zero-value is a valid, empty list.
type List[T any] struct {
	head *Element[T]
	tail *Element[T]
	size int
}

// Len returns the number of elements in the list.
func (list *List[T]) Len() int { return list.size }

// Empty returns true if the list holds no elements.
func (list *List[T]) Empty() bool { return list.size == 0 }

// Front returns the element at the front of the list, or nil if the list is
// empty.
func (list *List[T]) Front() *Element[T] { return list.head }

// Back returns the element at the back of the list, or nil if the list is
// empty.
func (list *List[T]) Back() *Element[T] { return list.tail }

// PushFront inserts value at the front of the list and returns its element.
func (list *List[T]) PushFront(value T) *Element[T] {
	e := &Element[T]{list: list, Value: value}
	list.pushFront(e)
	return e
}

// PushBack inserts value at the back of the list and returns its element.
func (list *List[T]) PushBack(value T) *Element[T] {
	e := &Element[T]{list: list, Value: value}
	list.pushBack(e)
	return e
}

// InsertBefore inserts value right before mark and returns its element. If
// mark is not part of the list, the list is not modified and the method
// returns nil.
func (list *List[T]) InsertBefore(value T, mark *Element[T]) *Element[T] {
	if mark == nil || mark.list != list {
		return nil
	}
	e := &Element[T]{list: list, Value: value}
	list.link(e, mark.prev, mark)
	return e
}

// InsertAfter inserts value right after mark and returns its element. If mark
// is not part of the list, the list is not modified and the method returns
// nil.
func (list *List[T]) InsertAfter(value T, mark *Element[T]) *Element[T] {
	if mark == nil || mark.list != list {
		return nil
	}
	e := &Element[T]{list: list, Value: value}
	list.link(e, mark, mark.next)
	return e
}

// PushFrontList inserts a copy of the values of other at the front of the
// list. other may be the list itself.
func (list *List[T]) PushFrontList(other *List[T]) {
	for i, e := other.Len(), other.Back(); i > 0; i, e = i-1, e.prev {
		list.PushFront(e.Value)
	}
}

// PushBackList inserts a copy of the values of other at the back of the list.
// other may be the list itself.
func (list *List[T]) PushBackList(other *List[T]) {
	for i, e := other.Len(), other.Front(); i > 0; i, e = i-1, e.next {
		list.PushBack(e.Value)
	}
}

// MoveToFront moves elem at the front of the list.
//
// The operation is idempotent, it does nothing if elem is already at the front
// of the list, or if elem is not part of the list.
func (list *List[T]) MoveToFront(elem *Element[T]) {
	if elem.list == list && elem != list.head {
		list.remove(elem)
		list.pushFront(elem)
	}
}

// MoveToBack moves elem at the back of the list.
//
// The operation is idempotent, it does nothing if elem is already at the back
// of the list, or if elem is not part of the list.
func (list *List[T]) MoveToBack(elem *Element[T]) {
	if elem.list == list && elem != list.tail {
		list.remove(elem)
		list.pushBack(elem)
	}
}

// RemoveFront removes the element at the front of the list and returns its
// value. The boolean is false if the list was empty.
//
// This method is a more efficient equivalent to:
//
//	list.Remove(list.Front())
func (list *List[T]) RemoveFront() (value T, ok bool) {
	if e := list.head; e != nil {
		list.remove(e)
		e.list = nil
		return e.Value, true
	}
	return value, false
}

// RemoveBack removes the element at the back of the list and returns its
// value. The boolean is false if the list was empty.
func (list *List[T]) RemoveBack() (value T, ok bool) {
	if e := list.tail; e != nil {
		list.remove(e)
		e.list = nil
		return e.Value, true
	}
	return value, false
}

// Remove removes elem from the list and returns its value.
//
// If elem is nil or not part of the list, the method does nothing.
func (list *List[T]) Remove(elem *Element[T]) (value T) {
	if elem != nil && elem.list == list {
		list.remove(elem)
		elem.list = nil
		return elem.Value
	}
	return value
}

// RemoveAll removes all elements from the list.
//
// Complexity: O(n), elements are unlinked so they can no longer be used to
// walk or modify the list.
func (list *List[T]) RemoveAll() {
	for e := list.head; e != nil; {
		next := e.next
		e.prev, e.next, e.list = nil, nil, nil
		e = next
	}
	list.reset()
}

// Clone returns a new list holding a copy of the values of the list.
func (list *List[T]) Clone() *List[T] {
	c := new(List[T])
	c.PushBackList(list)
	return c
}

// All returns an iterator over the values of the list from front to back.
func (list *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := list.head; e != nil; e = e.next {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values of the list from back to
// front.
func (list *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := list.tail; e != nil; e = e.prev {
			if !yield(e.Value) {
				return
			}
		}
	}
}

func (list *List[T]) pushFront(e *Element[T]) {
	list.link(e, nil, list.head)
}

func (list *List[T]) pushBack(e *Element[T]) {
	list.link(e, list.tail, nil)
}

// link inserts e between prev and next, either of which may be nil at the
// boundaries of the list.
func (list *List[T]) link(e, prev, next *Element[T]) {
	e.prev, e.next = prev, next

	if prev != nil {
		prev.next = e
	} else {
		list.head = e
	}

	if next != nil {
		next.prev = e
	} else {
		list.tail = e
	}

	list.size++
}

func (list *List[T]) remove(e *Element[T]) {
	prev := e.prev
	next := e.next

	e.prev = nil
	e.next = nil

	if prev != nil {
		prev.next = next
	}

	if next != nil {
		next.prev = prev
	}

	if e == list.head {
		list.head = next
	}

	if e == list.tail {
		list.tail = prev
	}

	list.size--
}

func (list *List[T]) reset() {
	list.head = nil
	list.tail = nil
	list.size = 0
}
