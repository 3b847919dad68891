// Package arena stores linked-list nodes in a slice of slots and
// addresses them by generation-checked handles instead of pointers.
package arena

import "fmt"

// Ref refers to a node in an [Arena]. The zero Ref refers to nothing.
//
// A Ref goes stale as soon as the node it refers to is freed. Because
// every free bumps the slot's generation, a stale Ref never refers to
// a node that was later allocated into the same slot.
type Ref struct {
	// slot is the index of the slot plus one so that the zero Ref is
	// empty.
	slot uint32
	gen  uint32
}

// IsZero returns true if r refers to nothing.
func (r Ref) IsZero() bool {
	return r.slot == 0
}

func (r Ref) String() string {
	if r.IsZero() {
		return "<nil>"
	}
	return fmt.Sprintf("%d@%d", r.slot-1, r.gen)
}

// Node is a node of a doubly-linked list stored in an [Arena].
type Node[T any] struct {
	Val        T
	Prev, Next Ref
}

type slot[T any] struct {
	node Node[T]
	gen  uint32
	live bool
}

// Arena holds nodes. A zero value Arena is ready to use. An Arena is
// not safe for concurrent use.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	live  int
}

// Alloc stores v in a new node with empty links and returns a Ref to
// it. Slots of previously freed nodes are reused before the arena
// grows.
func (a *Arena[T]) Alloc(v T) Ref {
	var i uint32
	if n := len(a.free); n > 0 {
		i = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		i = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{})
	}

	s := &a.slots[i]
	s.node = Node[T]{Val: v}
	s.live = true
	a.live++

	return Ref{slot: i + 1, gen: s.gen}
}

func (a *Arena[T]) lookup(r Ref) (*slot[T], bool) {
	if r.IsZero() || int(r.slot) > len(a.slots) {
		return nil, false
	}

	s := &a.slots[r.slot-1]
	if !s.live || s.gen != r.gen {
		return nil, false
	}
	return s, true
}

// Live returns true if r refers to a node that has not been freed.
func (a *Arena[T]) Live(r Ref) bool {
	_, ok := a.lookup(r)
	return ok
}

// Node returns the node that r refers to. It panics if r is empty or
// stale.
func (a *Arena[T]) Node(r Ref) *Node[T] {
	s, ok := a.lookup(r)
	if !ok {
		panic(fmt.Errorf("arena: reference %v is not live", r))
	}
	return &s.node
}

// Free releases the node that r refers to and returns its value. The
// node's links are not inspected, so the caller is responsible for
// making sure that nothing links to it anymore. It panics if r is
// empty or stale, which includes freeing the same node twice.
func (a *Arena[T]) Free(r Ref) T {
	s, ok := a.lookup(r)
	if !ok {
		panic(fmt.Errorf("arena: free of reference %v that is not live", r))
	}

	v := s.node.Val
	s.node = Node[T]{}
	s.live = false
	s.gen++
	a.live--
	a.free = append(a.free, r.slot-1)

	return v
}

// Len returns the number of live nodes.
func (a *Arena[T]) Len() int {
	return a.live
}

// Reset frees every node at once. All existing Refs become stale.
func (a *Arena[T]) Reset() {
	for i := range a.slots {
		s := &a.slots[i]
		if !s.live {
			continue
		}

		s.node = Node[T]{}
		s.live = false
		s.gen++
	}

	// Keep the slots so that generations keep stale Refs from
	// resolving, but hand all of them out again.
	a.free = a.free[:0]
	for i := len(a.slots) - 1; i >= 0; i-- {
		a.free = append(a.free, uint32(i))
	}
	a.live = 0
}
