package xlist

import (
	"errors"
	"fmt"
	"log/slog"

	"deedles.dev/xlist/internal/arena"
)

// ErrCorrupted is wrapped by the errors that a [List] panics with when
// it finds that its own structure is inconsistent. Such a panic always
// indicates a bug, either in this package or in code that copied a
// List after using it.
var ErrCorrupted = errors.New("xlist: list structure corrupted")

func (ls *List[T]) corrupted(op string, r arena.Ref, msg string) {
	err := fmt.Errorf("%w: %v: node %v: %v", ErrCorrupted, op, r, msg)
	slog.Error("list consistency check failed", "op", op, "length", ls.Len(), "ref", r, "err", err)
	panic(err)
}

func (ls *List[T]) mustBeEmpty(op string) {
	if ls.Len() != 0 {
		ls.corrupted(op, arena.Ref{}, fmt.Sprintf("list has length %v but no node to remove", ls.Len()))
	}
}

// release frees r and returns its value. Before doing so, it makes
// sure that nothing refers to r anymore: not the list itself, not r's
// own links, and not any of the nodes that were adjacent to it.
func (ls *List[T]) release(op string, r arena.Ref, former ...arena.Ref) T {
	if !ls.nodes.Live(r) {
		ls.corrupted(op, r, "node is not live")
	}

	switch n := ls.nodes.Node(r); {
	case r == ls.head || r == ls.tail || r == ls.cursor:
		ls.corrupted(op, r, "node is still referenced by the list")
	case !n.Prev.IsZero() || !n.Next.IsZero():
		ls.corrupted(op, r, "node is still linked")
	}

	for _, f := range former {
		if f.IsZero() {
			continue
		}
		if !ls.nodes.Live(f) {
			ls.corrupted(op, r, fmt.Sprintf("former neighbor %v is not live", f))
		}

		n := ls.nodes.Node(f)
		if n.Prev == r || n.Next == r {
			ls.corrupted(op, r, fmt.Sprintf("node is still referenced by %v", f))
		}
	}

	return ls.nodes.Free(r)
}

// verify walks the whole list in both directions and returns an error
// describing the first structural problem it finds.
func (ls *List[T]) verify() error {
	length := ls.Len()
	if length == 0 {
		if !ls.head.IsZero() || !ls.tail.IsZero() || !ls.cursor.IsZero() {
			return fmt.Errorf("%w: empty list has head %v, tail %v, cursor %v", ErrCorrupted, ls.head, ls.tail, ls.cursor)
		}
		return nil
	}

	for _, r := range []arena.Ref{ls.head, ls.tail, ls.cursor} {
		if !ls.nodes.Live(r) {
			return fmt.Errorf("%w: list of length %v refers to node %v which is not live", ErrCorrupted, length, r)
		}
	}
	if p := ls.nodes.Node(ls.head).Prev; !p.IsZero() {
		return fmt.Errorf("%w: head %v has previous node %v", ErrCorrupted, ls.head, p)
	}
	if n := ls.nodes.Node(ls.tail).Next; !n.IsZero() {
		return fmt.Errorf("%w: tail %v has next node %v", ErrCorrupted, ls.tail, n)
	}

	var count int
	var prev arena.Ref
	var sawCursor bool
	for r := ls.head; !r.IsZero(); {
		if !ls.nodes.Live(r) {
			return fmt.Errorf("%w: node %v after %v is not live", ErrCorrupted, r, prev)
		}

		count++
		if count > length {
			return fmt.Errorf("%w: forward walk exceeded length %v", ErrCorrupted, length)
		}

		n := ls.nodes.Node(r)
		if n.Prev != prev {
			return fmt.Errorf("%w: node %v follows %v but links back to %v", ErrCorrupted, r, prev, n.Prev)
		}
		if r == ls.cursor {
			sawCursor = true
		}

		prev = r
		r = n.Next
	}
	if count != length {
		return fmt.Errorf("%w: forward walk found %v nodes, expected %v", ErrCorrupted, count, length)
	}
	if prev != ls.tail {
		return fmt.Errorf("%w: forward walk ended at %v, not tail %v", ErrCorrupted, prev, ls.tail)
	}
	if !sawCursor {
		return fmt.Errorf("%w: cursor %v is not in the list", ErrCorrupted, ls.cursor)
	}

	count = 0
	for r := ls.tail; !r.IsZero(); r = ls.nodes.Node(r).Prev {
		if !ls.nodes.Live(r) {
			return fmt.Errorf("%w: node %v is not live", ErrCorrupted, r)
		}

		count++
		if count > length {
			return fmt.Errorf("%w: backward walk exceeded length %v", ErrCorrupted, length)
		}
	}
	if count != length {
		return fmt.Errorf("%w: backward walk found %v nodes, expected %v", ErrCorrupted, count, length)
	}

	return nil
}
