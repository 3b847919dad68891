package xlist

import (
	"errors"

	"deedles.dev/xlist/internal/arena"
)

// ErrStaleView is the value that [View.Value] panics with when the
// element that the view refers to has already been removed from its
// list.
var ErrStaleView = errors.New("xlist: view of removed element")

// View is a read-only handle to an element that is still in a [List].
// It remains usable until the element is removed from the list.
// Removing other elements or moving the cursor doesn't affect it.
//
// The zero View refers to nothing and is never valid.
type View[T any] struct {
	nodes *arena.Arena[T]
	ref   arena.Ref
}

// Valid returns true if the element is still in the list.
func (v View[T]) Valid() bool {
	return v.nodes != nil && v.nodes.Live(v.ref)
}

// Value returns a copy of the element. It panics with [ErrStaleView]
// if the element has been removed.
func (v View[T]) Value() T {
	if !v.Valid() {
		panic(ErrStaleView)
	}
	return v.nodes.Node(v.ref).Val
}
