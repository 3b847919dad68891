package xlist

import "deedles.dev/xlist/internal/arena"

// MoveForward moves the cursor to the next element. It returns false,
// leaving the cursor where it is, if the list is empty or the cursor
// is already at the tail.
func (ls *List[T]) MoveForward() bool {
	if ls.cursor.IsZero() {
		return false
	}

	next := ls.nodes.Node(ls.cursor).Next
	if next.IsZero() {
		return false
	}

	ls.cursor = next
	return true
}

// MoveBackward moves the cursor to the previous element. It returns
// false, leaving the cursor where it is, if the list is empty or the
// cursor is already at the head.
func (ls *List[T]) MoveBackward() bool {
	if ls.cursor.IsZero() {
		return false
	}

	prev := ls.nodes.Node(ls.cursor).Prev
	if prev.IsZero() {
		return false
	}

	ls.cursor = prev
	return true
}

// GetCurrentPosition removes the element under the cursor and returns
// it, linking its neighbors to each other. Afterwards, the cursor is
// on the element that followed the removed one or, if the removed
// element was the tail, on the element that preceded it. It returns
// false if the list is empty.
func (ls *List[T]) GetCurrentPosition() (v T, ok bool) {
	r := ls.cursor
	if r.IsZero() {
		ls.mustBeEmpty("GetCurrentPosition")
		return v, false
	}

	n := ls.nodes.Node(r)
	prev, next := n.Prev, n.Next
	n.Prev = arena.Ref{}
	n.Next = arena.Ref{}

	switch {
	case !prev.IsZero() && !next.IsZero():
		ls.nodes.Node(prev).Next = next
		ls.nodes.Node(next).Prev = prev
		ls.cursor = next

	case !prev.IsZero():
		ls.nodes.Node(prev).Next = arena.Ref{}
		ls.tail = prev
		ls.cursor = prev

	case !next.IsZero():
		ls.nodes.Node(next).Prev = arena.Ref{}
		ls.head = next
		ls.cursor = next

	default:
		ls.unset()
	}

	return ls.release("GetCurrentPosition", r, prev, next), true
}

// PeekHead returns a view of the first element without removing it.
// It returns false if the list is empty.
func (ls *List[T]) PeekHead() (View[T], bool) {
	return ls.view(ls.head)
}

// PeekTail returns a view of the last element without removing it. It
// returns false if the list is empty.
func (ls *List[T]) PeekTail() (View[T], bool) {
	return ls.view(ls.tail)
}

// PeekCurrentPosition returns a view of the element under the cursor
// without removing it. It returns false if the list is empty.
func (ls *List[T]) PeekCurrentPosition() (View[T], bool) {
	return ls.view(ls.cursor)
}

func (ls *List[T]) view(r arena.Ref) (View[T], bool) {
	if r.IsZero() {
		return View[T]{}, false
	}
	return View[T]{nodes: &ls.nodes, ref: r}, true
}
