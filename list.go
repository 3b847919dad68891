package xlist

import "deedles.dev/xlist/internal/arena"

// List is a doubly-linked list with a cursor. A zero value List is an
// empty list that is ready to use. A List must not be copied after
// first use.
//
// A List is not safe for concurrent use.
type List[T any] struct {
	_ noCopy

	nodes              arena.Arena[T]
	head, tail, cursor arena.Ref
}

// New returns a new, empty list.
func New[T any]() *List[T] {
	return new(List[T])
}

// Len returns the number of elements in the list.
func (ls *List[T]) Len() int {
	return ls.nodes.Len()
}

// Enqueue adds v to the tail of the list and returns the new length.
// The first element added to an empty list also becomes the cursor's
// position. Otherwise, the cursor doesn't move.
func (ls *List[T]) Enqueue(v T) int {
	r := ls.nodes.Alloc(v)
	if ls.tail.IsZero() {
		ls.head = r
		ls.tail = r
		ls.cursor = r
		return ls.nodes.Len()
	}

	ls.nodes.Node(r).Prev = ls.tail
	ls.nodes.Node(ls.tail).Next = r
	ls.tail = r

	return ls.nodes.Len()
}

// GetHead removes the first element of the list and returns it. If
// the cursor was on that element, it moves to the new head. It
// returns false if the list is empty.
func (ls *List[T]) GetHead() (v T, ok bool) {
	r := ls.head
	if r.IsZero() {
		ls.mustBeEmpty("GetHead")
		return v, false
	}

	n := ls.nodes.Node(r)
	next := n.Next
	n.Next = arena.Ref{}

	if next.IsZero() {
		ls.unset()
		return ls.release("GetHead", r), true
	}

	ls.nodes.Node(next).Prev = arena.Ref{}
	ls.head = next
	if ls.cursor == r {
		ls.cursor = next
	}

	return ls.release("GetHead", r, next), true
}

// GetTail removes the last element of the list and returns it. If the
// cursor was on that element, it moves to the new tail. It returns
// false if the list is empty.
func (ls *List[T]) GetTail() (v T, ok bool) {
	r := ls.tail
	if r.IsZero() {
		ls.mustBeEmpty("GetTail")
		return v, false
	}

	n := ls.nodes.Node(r)
	prev := n.Prev
	n.Prev = arena.Ref{}

	if prev.IsZero() {
		ls.unset()
		return ls.release("GetTail", r), true
	}

	ls.nodes.Node(prev).Next = arena.Ref{}
	ls.tail = prev
	if ls.cursor == r {
		ls.cursor = prev
	}

	return ls.release("GetTail", r, prev), true
}

// Clear removes every element from the list. Views obtained before
// the call become invalid.
func (ls *List[T]) Clear() {
	ls.nodes.Reset()
	ls.unset()
}

func (ls *List[T]) unset() {
	ls.head = arena.Ref{}
	ls.tail = arena.Ref{}
	ls.cursor = arena.Ref{}
}
