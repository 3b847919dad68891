package xlist

import (
	"errors"
	"testing"

	"deedles.dev/xlist/internal/arena"
	"github.com/stretchr/testify/require"
)

func requireCorrupted(t *testing.T, f func()) {
	t.Helper()

	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %#v is not an error", r)
		require.True(t, errors.Is(err, ErrCorrupted), "unexpected panic: %v", err)
	}()

	f()
}

func build(vals ...int) *List[int] {
	ls := New[int]()
	for _, v := range vals {
		ls.Enqueue(v)
	}
	return ls
}

func TestReleaseStillReferenced(t *testing.T) {
	ls := build(1, 2, 3)
	// Point the tail at the head so that removing the head leaves a
	// second reference to it behind.
	ls.tail = ls.head
	requireCorrupted(t, func() { ls.GetHead() })
}

func TestReleaseStillLinked(t *testing.T) {
	ls := build(1, 2, 3)
	mid := ls.nodes.Node(ls.head).Next
	ls.nodes.Node(ls.tail).Next = mid
	ls.nodes.Node(mid).Prev = ls.tail

	require.Error(t, ls.verify())
	requireCorrupted(t, func() { ls.GetTail() })
}

func TestReleaseNeighborBacklink(t *testing.T) {
	ls := build(1, 2, 3)
	require.True(t, ls.MoveForward())
	cur := ls.cursor
	next := ls.nodes.Node(cur).Next

	// Make the successor link back to the cursor through a path the
	// splice doesn't repair.
	ls.nodes.Node(next).Next = cur
	requireCorrupted(t, func() { ls.GetCurrentPosition() })
}

func TestLengthWithoutNodes(t *testing.T) {
	ls := build(1)
	ls.unset()

	require.Error(t, ls.verify())
	requireCorrupted(t, func() { ls.GetHead() })
	requireCorrupted(t, func() { ls.GetTail() })
	requireCorrupted(t, func() { ls.GetCurrentPosition() })
}

func TestVerify(t *testing.T) {
	ls := build(1, 2, 3)
	require.NoError(t, ls.verify())

	ls.cursor = arena.Ref{}
	require.ErrorIs(t, ls.verify(), ErrCorrupted)

	ls = build(1, 2, 3)
	ls.nodes.Node(ls.head).Prev = ls.tail
	require.ErrorIs(t, ls.verify(), ErrCorrupted)

	ls = build(1, 2, 3)
	mid := ls.nodes.Node(ls.head).Next
	ls.nodes.Node(mid).Prev = arena.Ref{}
	require.ErrorIs(t, ls.verify(), ErrCorrupted)

	var empty List[int]
	require.NoError(t, empty.verify())
	empty.cursor = ls.head
	require.ErrorIs(t, empty.verify(), ErrCorrupted)
}
